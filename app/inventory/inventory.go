package inventory

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mytheresa/go-shopping-cart/metrics"
	"github.com/mytheresa/go-shopping-cart/models"
)

type ProductStore interface {
	Exists(id string) bool
	GetAllProducts() []models.Product
	GetByID(id string) (*models.Product, error)
	Insert(p *models.Product) error
	Replace(p *models.Product) error
	SetStock(id string, stock int) error
	Delete(id string) error
}

type CategoryStore interface {
	GetAllCategories() []models.Category
	GetByID(id string) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	CreateCategory(category *models.Category) error
	DeleteByName(name string) error
}

// NewProduct is the admin input for a product.
type NewProduct struct {
	Name           string
	Description    string
	Unit           string
	Price          decimal.Decimal
	Suggest        decimal.Decimal
	Stock          int
	Category       string // label or ASCII key; unknown names fall back to the default tag
	Images         []string
	Specifications models.Specifications
	IsFeatured     bool
}

// StockAdjustMode selects how AdjustStock applies its amount.
type StockAdjustMode string

const (
	AdjustSet      StockAdjustMode = "set"
	AdjustAdd      StockAdjustMode = "add"
	AdjustSubtract StockAdjustMode = "subtract"
)

// Manager is the only writer of product and category state.
type Manager struct {
	products   ProductStore
	categories CategoryStore
	log        *zap.Logger
	metrics    *metrics.Metrics

	newProductID  func() string
	newCategoryID func() string
}

func NewManager(products ProductStore, categories CategoryStore, log *zap.Logger, m *metrics.Metrics) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		products:      products,
		categories:    categories,
		log:           log,
		metrics:       m,
		newProductID:  func() string { return "p" + uuid.NewString()[:8] },
		newCategoryID: func() string { return "cat" + uuid.NewString()[:8] },
	}
}

// Products returns every product in catalog order.
func (m *Manager) Products() []models.Product {
	return m.products.GetAllProducts()
}

// AddProduct validates input, assigns a fresh id and persists the catalog.
// Rating and sales start at zero.
func (m *Manager) AddProduct(input NewProduct) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	description := strings.TrimSpace(input.Description)
	unit := strings.TrimSpace(input.Unit)

	switch {
	case name == "":
		return nil, models.NewValidationError("name", "required")
	case description == "":
		return nil, models.NewValidationError("description", "required")
	case unit == "":
		return nil, models.NewValidationError("unit", "required")
	case input.Stock < 0:
		return nil, models.NewValidationError("stock", "must not be negative")
	}
	if err := validatePrices(input.Price, input.Suggest); err != nil {
		return nil, err
	}

	id := m.newProductID()
	for m.products.Exists(id) {
		id = m.newProductID()
	}

	images := input.Images
	if images == nil {
		images = []string{}
	}
	specs := input.Specifications.Clone()
	if specs == nil {
		specs = models.Specifications{}
	}

	p := &models.Product{
		ID:             id,
		Name:           name,
		Description:    description,
		Price:          input.Price,
		Suggest:        input.Suggest,
		Category:       models.ResolveProductCategory(input.Category),
		Stock:          input.Stock,
		Unit:           unit,
		Images:         images,
		Specifications: specs,
		IsFeatured:     input.IsFeatured,
		CreatedAt:      models.Now(),
	}

	if err := m.products.Insert(p); err != nil {
		return nil, err
	}

	m.metrics.RecordProductOperation("create")
	m.metrics.UpdateProductInventory(p.ID, p.Category.Key(), p.Stock)
	m.log.Info("product added", zap.String("product_id", p.ID), zap.String("name", p.Name))
	return p, nil
}

// UpdateProductStock sets the stock of id. Negative values are stored as zero.
func (m *Manager) UpdateProductStock(id string, stock int) error {
	if err := m.products.SetStock(id, stock); err != nil {
		return err
	}
	if p, err := m.products.GetByID(id); err == nil {
		m.metrics.UpdateProductInventory(p.ID, p.Category.Key(), p.Stock)
	}
	m.metrics.RecordProductOperation("update_stock")
	return nil
}

// AdjustStock applies an admin stock change and returns the updated product.
// Unlike UpdateProductStock it refuses to go below zero.
func (m *Manager) AdjustStock(id string, mode StockAdjustMode, amount int) (*models.Product, error) {
	p, err := m.products.GetByID(id)
	if err != nil {
		return nil, err
	}

	var stock int
	switch mode {
	case AdjustSet:
		stock = amount
	case AdjustAdd:
		stock = p.Stock + amount
	case AdjustSubtract:
		stock = p.Stock - amount
	default:
		return nil, models.NewValidationError("mode", "must be set, add or subtract")
	}
	if stock < 0 {
		return nil, models.NewValidationError("stock", "must not be negative")
	}

	if err := m.UpdateProductStock(id, stock); err != nil {
		return nil, err
	}
	p.Stock = stock
	return p, nil
}

// UpdateProductInfo replaces a product. The price rules of AddProduct apply.
func (m *Manager) UpdateProductInfo(p *models.Product) error {
	if p == nil {
		return models.NewValidationError("product", "required")
	}
	if err := validatePrices(p.Price, p.Suggest); err != nil {
		return err
	}
	if !p.Category.Valid() {
		return models.NewValidationError("category", "unknown category "+string(p.Category))
	}
	stored, err := m.products.GetByID(p.ID)
	if err != nil {
		return err
	}
	if err := m.products.Replace(p); err != nil {
		return err
	}
	m.metrics.RecordProductOperation("update")
	if stored.Category.Key() != p.Category.Key() {
		m.metrics.RemoveProductInventory(stored.ID, stored.Category.Key())
	}
	m.metrics.UpdateProductInventory(p.ID, p.Category.Key(), p.Stock)
	return nil
}

// DeleteProduct removes a product from the catalog.
func (m *Manager) DeleteProduct(id string) error {
	p, err := m.products.GetByID(id)
	if err != nil {
		return err
	}
	if err := m.products.Delete(id); err != nil {
		return err
	}
	m.metrics.RecordProductOperation("delete")
	m.metrics.RemoveProductInventory(p.ID, p.Category.Key())
	m.log.Info("product deleted", zap.String("product_id", id))
	return nil
}

// Categories returns every category in file order.
func (m *Manager) Categories() []models.Category {
	return m.categories.GetAllCategories()
}

// Category looks a category up by id.
func (m *Manager) Category(id string) (*models.Category, error) {
	return m.categories.GetByID(id)
}

// AddCategory creates a category. Names must be unique.
func (m *Manager) AddCategory(name, icon, description string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.NewValidationError("name", "required")
	}
	if _, err := m.categories.GetByName(name); err == nil {
		return nil, models.ErrDuplicateCategory
	} else if !errors.Is(err, models.ErrCategoryNotFound) {
		return nil, err
	}

	c := &models.Category{
		ID:          m.newCategoryID(),
		Name:        name,
		Icon:        strings.TrimSpace(icon),
		Description: strings.TrimSpace(description),
		CreatedAt:   models.Now(),
	}
	if err := m.categories.CreateCategory(c); err != nil {
		return nil, err
	}

	m.metrics.RecordCategoryOperation("create")
	m.log.Info("category added", zap.String("category_id", c.ID), zap.String("name", c.Name))
	return c, nil
}

// DeleteCategory removes the category called name. Products filed under it
// are left as they are.
func (m *Manager) DeleteCategory(name string) error {
	if err := m.categories.DeleteByName(name); err != nil {
		return err
	}
	m.metrics.RecordCategoryOperation("delete")
	m.log.Info("category deleted", zap.String("name", name))
	return nil
}

// ParseSpecifications reads one "key:value" pair per line. The value keeps
// any further colons. Blank lines are skipped.
func ParseSpecifications(text string) (models.Specifications, error) {
	specs := models.Specifications{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, models.NewValidationError("specifications", "each line must be key:value")
		}
		specs[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return specs, nil
}

func validatePrices(price, suggest decimal.Decimal) error {
	if !price.IsPositive() {
		return models.NewValidationError("price", "must be greater than 0")
	}
	if suggest.LessThan(price) {
		return models.NewValidationError("suggest", "must not be lower than price")
	}
	return nil
}
