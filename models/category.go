package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ProductCategory is the closed set of tags a product can carry.
// The value is the display label, which is also what the products file stores.
type ProductCategory string

const (
	CategoryElectronics ProductCategory = "电子产品"
	CategoryFood        ProductCategory = "食品饮料"
	CategoryBooks       ProductCategory = "图书音像"
	CategoryHome        ProductCategory = "家居用品"
	CategoryClothing    ProductCategory = "服装服饰"
	CategoryShoes       ProductCategory = "鞋子"
	CategoryBeauty      ProductCategory = "美妆"
	CategoryCare        ProductCategory = "个护"
	CategoryClean       ProductCategory = "清洁"
	CategoryStationery  ProductCategory = "文具"
	CategoryFeatured    ProductCategory = "热门"
)

// DefaultProductCategory is used when a free-text category matches nothing.
const DefaultProductCategory = CategoryHome

var productCategoryKeys = []struct {
	key      string
	category ProductCategory
}{
	{"electronics", CategoryElectronics},
	{"food", CategoryFood},
	{"books", CategoryBooks},
	{"home", CategoryHome},
	{"clothing", CategoryClothing},
	{"shoes", CategoryShoes},
	{"beauty", CategoryBeauty},
	{"care", CategoryCare},
	{"clean", CategoryClean},
	{"stationery", CategoryStationery},
	{"featured", CategoryFeatured},
}

// ProductCategories lists every tag in declaration order.
func ProductCategories() []ProductCategory {
	out := make([]ProductCategory, len(productCategoryKeys))
	for i, k := range productCategoryKeys {
		out[i] = k.category
	}
	return out
}

// Valid reports whether c belongs to the closed set.
func (c ProductCategory) Valid() bool {
	for _, k := range productCategoryKeys {
		if k.category == c {
			return true
		}
	}
	return false
}

// Key returns the ASCII key of the tag, e.g. "electronics".
func (c ProductCategory) Key() string {
	for _, k := range productCategoryKeys {
		if k.category == c {
			return k.key
		}
	}
	return ""
}

// ResolveProductCategory maps a label or ASCII key to a tag.
// Anything unmatched resolves to DefaultProductCategory.
func ResolveProductCategory(name string) ProductCategory {
	name = strings.TrimSpace(name)
	for _, k := range productCategoryKeys {
		if string(k.category) == name || strings.EqualFold(k.key, name) {
			return k.category
		}
	}
	return DefaultProductCategory
}

func (c *ProductCategory) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	pc := ProductCategory(s)
	if !pc.Valid() {
		return fmt.Errorf("unknown product category %q", s)
	}
	*c = pc
	return nil
}

// Category represents an admin-managed product category.
// Names are unique among categories; ids are generated on creation.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	CreatedAt   Timestamp `json:"created_at"`
}

// DefaultCategories is what a malformed categories file degrades to.
func DefaultCategories() []Category {
	return []Category{
		{ID: "electronics", Name: "电子产品", Icon: "laptop"},
		{ID: "clothing", Name: "服装服饰", Icon: "tshirt-crew"},
		{ID: "food", Name: "食品饮料", Icon: "food"},
		{ID: "books", Name: "图书音像", Icon: "book"},
		{ID: "home", Name: "家居用品", Icon: "home"},
		{ID: "beauty", Name: "美妆个护", Icon: "face-woman"},
	}
}
