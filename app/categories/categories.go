package categories

import (
	"github.com/mytheresa/go-shopping-cart/models"
)

type CategoryProvider interface {
	GetAllCategories() []models.Category
	GetByID(id string) (*models.Category, error)
}

type ProductLister interface {
	GetAllProducts() []models.Product
}

// Listing is a category together with the number of products filed under it.
type Listing struct {
	models.Category
	ProductCount int
}

// TagCount is the number of products carrying one product category tag.
type TagCount struct {
	Tag   models.ProductCategory
	Count int
}

type Categories struct {
	repo     CategoryProvider
	products ProductLister
}

func NewCategories(r CategoryProvider, p ProductLister) *Categories {
	return &Categories{repo: r, products: p}
}

// List returns every category in file order. A product belongs to a category
// when its tag equals the category name exactly.
func (c *Categories) List() []Listing {
	counts := c.countByTag()
	categories := c.repo.GetAllCategories()

	out := make([]Listing, len(categories))
	for i, cat := range categories {
		out[i] = Listing{
			Category:     cat,
			ProductCount: counts[models.ProductCategory(cat.Name)],
		}
	}
	return out
}

// Get returns one category with its product count.
func (c *Categories) Get(id string) (*Listing, error) {
	cat, err := c.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return &Listing{
		Category:     *cat,
		ProductCount: c.countByTag()[models.ProductCategory(cat.Name)],
	}, nil
}

// Tags counts products per tag over the closed tag set, in declaration order.
// Tags without products are included with a zero count.
func (c *Categories) Tags() []TagCount {
	counts := c.countByTag()
	tags := models.ProductCategories()

	out := make([]TagCount, len(tags))
	for i, tag := range tags {
		out[i] = TagCount{Tag: tag, Count: counts[tag]}
	}
	return out
}

func (c *Categories) countByTag() map[models.ProductCategory]int {
	counts := map[models.ProductCategory]int{}
	for _, p := range c.products.GetAllProducts() {
		counts[p.Category]++
	}
	return counts
}
