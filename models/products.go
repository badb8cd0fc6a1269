package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Data files hold prices as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Specifications maps an attribute name to a free-form value
// (a string, or a list of choices in the sample catalog).
type Specifications map[string]any

// Product represents a product in the catalog.
// Stock is never negative once loaded or updated.
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Suggest        decimal.Decimal `json:"suggest"`
	Category       ProductCategory `json:"category"`
	Stock          int             `json:"stock"`
	Unit           string          `json:"unit"`
	Images         []string        `json:"images"`
	Specifications Specifications  `json:"specifications"`
	Rating         float64         `json:"rating"`
	SalesCount     int             `json:"sales_count"`
	IsFeatured     bool            `json:"is_featured"`
	CreatedAt      Timestamp       `json:"created_at"`
}

// FirstImage returns the cover image, or "" when the product has none.
func (p *Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Clone returns a copy that shares no slices or maps with p.
func (p *Product) Clone() *Product {
	c := *p
	if p.Images != nil {
		c.Images = append([]string(nil), p.Images...)
	}
	c.Specifications = p.Specifications.Clone()
	return &c
}

// Clone copies the top level of the map.
func (s Specifications) Clone() Specifications {
	if s == nil {
		return nil
	}
	c := make(Specifications, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

func clampStock(stock int) int {
	if stock < 0 {
		return 0
	}
	return stock
}
