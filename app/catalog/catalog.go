package catalog

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mytheresa/go-shopping-cart/models"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type ProductProvider interface {
	GetAllProducts() []models.Product
	GetFilteredProducts(filters models.ProductFilters) []models.Product
	GetByID(id string) (*models.Product, error)
}

// Page is one window of a filtered listing.
type Page struct {
	Total    int
	Offset   int
	Limit    int
	Products []models.Product
}

// Summary aggregates the whole catalog.
type Summary struct {
	ProductCount int
	TotalStock   int
	TotalValue   decimal.Decimal
	LowStock     int
}

// LowStockThreshold marks products that need restocking.
const LowStockThreshold = 10

type Catalog struct {
	repo ProductProvider
	log  *zap.Logger
}

func NewCatalog(r ProductProvider, log *zap.Logger) *Catalog {
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{
		repo: r,
		log:  log,
	}
}

// Products lists the catalog. When filters.Featured is set the category
// filter is ignored.
func (c *Catalog) Products(filters models.ProductFilters) []models.Product {
	return c.repo.GetFilteredProducts(filters)
}

// List returns one page of Products(filters). Offset below zero is treated
// as zero; limit is clamped to [1, MaxLimit] and 0 means DefaultLimit.
func (c *Catalog) List(offset, limit int, filters models.ProductFilters) Page {
	if offset < 0 {
		offset = 0
	}
	if limit == 0 {
		limit = DefaultLimit
	} else if limit < 1 {
		limit = 1
	} else if limit > MaxLimit {
		limit = MaxLimit
	}

	all := c.repo.GetFilteredProducts(filters)

	start := offset
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}

	return Page{
		Total:    len(all),
		Offset:   offset,
		Limit:    limit,
		Products: all[start:end],
	}
}

// Product looks a product up by id.
func (c *Catalog) Product(id string) (*models.Product, error) {
	p, err := c.repo.GetByID(id)
	if err != nil {
		c.log.Debug("product lookup failed", zap.String("product_id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

// InStock reports whether at least quantity units of id are available.
func (c *Catalog) InStock(id string, quantity int) bool {
	p, err := c.repo.GetByID(id)
	if err != nil {
		return false
	}
	return p.Stock >= quantity
}

// Summary counts products, units in stock and stock value at list price.
func (c *Catalog) Summary() Summary {
	s := Summary{TotalValue: decimal.Zero}
	for _, p := range c.repo.GetAllProducts() {
		s.ProductCount++
		s.TotalStock += p.Stock
		s.TotalValue = s.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
		if p.Stock < LowStockThreshold {
			s.LowStock++
		}
	}
	return s
}
