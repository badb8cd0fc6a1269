package models

import (
	"go.uber.org/zap"
)

// ProductsRepository is the product catalog. It owns the products file:
// the whole array is read once on construction and rewritten after every mutation.
type ProductsRepository struct {
	path     string
	log      *zap.Logger
	products map[string]*Product
	ids      []string // file order
}

// ProductFilters selects products for listing.
// Featured takes precedence: when set, Category is ignored.
type ProductFilters struct {
	Category ProductCategory
	Featured bool
}

// NewProductsRepository loads the products file at path. A missing or
// malformed file yields an empty catalog; the cause is logged, not returned.
func NewProductsRepository(path string, log *zap.Logger) *ProductsRepository {
	r := &ProductsRepository{
		path:     path,
		log:      nopIfNil(log),
		products: map[string]*Product{},
	}
	r.load()
	return r
}

func (r *ProductsRepository) load() {
	var records []Product
	exists, err := loadJSONArray(r.path, &records)
	if !exists {
		r.log.Warn("products file does not exist, starting with an empty catalog", zap.String("path", r.path))
		return
	}
	if err != nil {
		r.log.Warn("failed to load products, starting with an empty catalog", zap.String("path", r.path), zap.Error(err))
		return
	}
	for i := range records {
		p := records[i]
		p.Stock = clampStock(p.Stock)
		if _, dup := r.products[p.ID]; !dup {
			r.ids = append(r.ids, p.ID)
		}
		r.products[p.ID] = &p
	}
	r.log.Debug("products loaded", zap.String("path", r.path), zap.Int("count", len(r.ids)))
}

// Path returns the file the repository persists to.
func (r *ProductsRepository) Path() string {
	return r.path
}

// Count returns the number of products.
func (r *ProductsRepository) Count() int {
	return len(r.ids)
}

// Exists reports whether id is taken.
func (r *ProductsRepository) Exists(id string) bool {
	_, ok := r.products[id]
	return ok
}

// GetAllProducts returns copies of every product in file order.
func (r *ProductsRepository) GetAllProducts() []Product {
	out := make([]Product, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, *r.products[id].Clone())
	}
	return out
}

// GetFilteredProducts applies filters to the catalog.
func (r *ProductsRepository) GetFilteredProducts(filters ProductFilters) []Product {
	all := r.GetAllProducts()
	if filters.Featured {
		featured := make([]Product, 0, len(all))
		for _, p := range all {
			if p.IsFeatured {
				featured = append(featured, p)
			}
		}
		return featured
	}
	if filters.Category == "" {
		return all
	}
	matched := make([]Product, 0, len(all))
	for _, p := range all {
		if p.Category == filters.Category {
			matched = append(matched, p)
		}
	}
	return matched
}

// GetByID returns a copy of the product with the given id.
func (r *ProductsRepository) GetByID(id string) (*Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p.Clone(), nil
}

// Insert adds a new product and persists the catalog.
// It does not check for id collisions; callers generate unique ids.
func (r *ProductsRepository) Insert(p *Product) error {
	c := p.Clone()
	c.Stock = clampStock(c.Stock)
	if _, ok := r.products[c.ID]; !ok {
		r.ids = append(r.ids, c.ID)
	}
	r.products[c.ID] = c
	return r.Save()
}

// Replace overwrites an existing product and persists the catalog.
func (r *ProductsRepository) Replace(p *Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return ErrProductNotFound
	}
	c := p.Clone()
	c.Stock = clampStock(c.Stock)
	r.products[c.ID] = c
	return r.Save()
}

// SetStock sets the stock level, clamped at zero, and persists the catalog.
func (r *ProductsRepository) SetStock(id string, stock int) error {
	p, ok := r.products[id]
	if !ok {
		return ErrProductNotFound
	}
	p.Stock = clampStock(stock)
	return r.Save()
}

// Delete removes a product and persists the catalog.
func (r *ProductsRepository) Delete(id string) error {
	if _, ok := r.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(r.products, id)
	for i, existing := range r.ids {
		if existing == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return r.Save()
}

// Save rewrites the whole products file.
func (r *ProductsRepository) Save() error {
	records := make([]*Product, 0, len(r.ids))
	for _, id := range r.ids {
		records = append(records, r.products[id])
	}
	if err := saveJSONArray(r.path, records); err != nil {
		r.log.Error("failed to save products", zap.String("path", r.path), zap.Error(err))
		return err
	}
	return nil
}
