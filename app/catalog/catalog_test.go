package catalog

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mytheresa/go-shopping-cart/models"
)

// --- Mock Repo ---

type MockProductRepo struct {
	SourceProducts []models.Product

	// Fields to capture call arguments
	lastCalledFilters models.ProductFilters
	lastCalledID      string
}

func (m *MockProductRepo) GetAllProducts() []models.Product {
	return append([]models.Product(nil), m.SourceProducts...)
}

func (m *MockProductRepo) GetFilteredProducts(filters models.ProductFilters) []models.Product {
	m.lastCalledFilters = filters

	var filtered []models.Product
	for _, p := range m.SourceProducts {
		if filters.Featured {
			if p.IsFeatured {
				filtered = append(filtered, p)
			}
			continue
		}
		if filters.Category != "" && p.Category != filters.Category {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func (m *MockProductRepo) GetByID(id string) (*models.Product, error) {
	m.lastCalledID = id
	for _, p := range m.SourceProducts {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, models.ErrProductNotFound
}

// --- Helpers ---

func newTestProduct(id string, category models.ProductCategory, price float64, stock int, featured bool) models.Product {
	return models.Product{
		ID:         id,
		Name:       "product " + id,
		Price:      decimal.NewFromFloat(price),
		Category:   category,
		Stock:      stock,
		IsFeatured: featured,
	}
}

func productIDs(products []models.Product) []string {
	out := []string{}
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

var allMockProducts = []models.Product{
	newTestProduct("p001", models.CategoryShoes, 19.99, 5, false),
	newTestProduct("p002", models.CategoryClothing, 24.99, 12, true),
	newTestProduct("p003", models.CategoryFood, 10.00, 0, true),
	newTestProduct("p004", models.CategoryClothing, 95.50, 30, false),
}

// --- Tests ---

func TestList(t *testing.T) {
	testCases := []struct {
		name           string
		offset         int
		limit          int
		filters        models.ProductFilters
		expectedTotal  int
		expectedIDs    []string
		expectedLimit  int
		expectedOffset int
	}{
		{
			name:          "Default page",
			expectedTotal: 4,
			expectedIDs:   []string{"p001", "p002", "p003", "p004"},
			expectedLimit: 10,
		},
		{
			name:           "Custom window",
			offset:         1,
			limit:          2,
			expectedTotal:  4,
			expectedIDs:    []string{"p002", "p003"},
			expectedLimit:  2,
			expectedOffset: 1,
		},
		{
			name:          "Out-of-bounds values are clamped",
			offset:        -10,
			limit:         200,
			expectedTotal: 4,
			expectedIDs:   []string{"p001", "p002", "p003", "p004"},
			expectedLimit: 100,
		},
		{
			name:          "Negative limit becomes one",
			limit:         -3,
			expectedTotal: 4,
			expectedIDs:   []string{"p001"},
			expectedLimit: 1,
		},
		{
			name:           "Offset past the end",
			offset:         9,
			expectedTotal:  4,
			expectedIDs:    []string{},
			expectedLimit:  10,
			expectedOffset: 9,
		},
		{
			name:           "Largest offset",
			offset:         math.MaxInt,
			limit:          10,
			expectedTotal:  4,
			expectedIDs:    []string{},
			expectedLimit:  10,
			expectedOffset: math.MaxInt,
		},
		{
			name:          "Category filter",
			filters:       models.ProductFilters{Category: models.CategoryClothing},
			expectedTotal: 2,
			expectedIDs:   []string{"p002", "p004"},
			expectedLimit: 10,
		},
		{
			name:          "Featured wins over category",
			filters:       models.ProductFilters{Category: models.CategoryShoes, Featured: true},
			expectedTotal: 2,
			expectedIDs:   []string{"p002", "p003"},
			expectedLimit: 10,
		},
		{
			name:          "Empty category",
			filters:       models.ProductFilters{Category: models.CategoryBooks},
			expectedTotal: 0,
			expectedIDs:   []string{},
			expectedLimit: 10,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			mockRepo := &MockProductRepo{SourceProducts: allMockProducts}
			c := NewCatalog(mockRepo, nil)

			// Act
			page := c.List(tc.offset, tc.limit, tc.filters)

			// Assert
			assert.Equal(t, tc.expectedTotal, page.Total)
			assert.Equal(t, tc.expectedIDs, productIDs(page.Products))
			assert.Equal(t, tc.expectedLimit, page.Limit)
			assert.Equal(t, tc.expectedOffset, page.Offset)
			assert.Equal(t, tc.filters, mockRepo.lastCalledFilters)
		})
	}
}

func TestProduct(t *testing.T) {
	testCases := []struct {
		name        string
		productID   string
		expectedErr error
	}{
		{name: "Found", productID: "p003"},
		{name: "Not found", productID: "p999", expectedErr: models.ErrProductNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &MockProductRepo{SourceProducts: allMockProducts}
			c := NewCatalog(mockRepo, nil)

			p, err := c.Product(tc.productID)

			assert.Equal(t, tc.productID, mockRepo.lastCalledID)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.productID, p.ID)
		})
	}
}

func TestInStock(t *testing.T) {
	c := NewCatalog(&MockProductRepo{SourceProducts: allMockProducts}, nil)

	assert.True(t, c.InStock("p001", 5))
	assert.False(t, c.InStock("p001", 6))
	assert.False(t, c.InStock("p003", 1))
	assert.False(t, c.InStock("missing", 1))
}

func TestSummary(t *testing.T) {
	c := NewCatalog(&MockProductRepo{SourceProducts: allMockProducts}, nil)

	s := c.Summary()

	assert.Equal(t, 4, s.ProductCount)
	assert.Equal(t, 47, s.TotalStock)
	// 19.99*5 + 24.99*12 + 0 + 95.50*30
	assert.True(t, decimal.RequireFromString("3264.83").Equal(s.TotalValue), s.TotalValue.String())
	assert.Equal(t, 2, s.LowStock)

	empty := NewCatalog(&MockProductRepo{}, nil).Summary()
	assert.Equal(t, 0, empty.ProductCount)
	assert.True(t, empty.TotalValue.IsZero())
}
