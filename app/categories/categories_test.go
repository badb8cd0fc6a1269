package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mytheresa/go-shopping-cart/models"
)

// --- Mock Repositories ---

type MockCategoryRepo struct {
	Categories []models.Category
}

func (m *MockCategoryRepo) GetAllCategories() []models.Category {
	return m.Categories
}

func (m *MockCategoryRepo) GetByID(id string) (*models.Category, error) {
	for _, c := range m.Categories {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, models.ErrCategoryNotFound
}

type MockProductRepo struct {
	Products []models.Product
}

func (m *MockProductRepo) GetAllProducts() []models.Product {
	return m.Products
}

// --- Tests ---

func TestList(t *testing.T) {
	products := &MockProductRepo{Products: []models.Product{
		{ID: "p1", Category: models.CategoryElectronics},
		{ID: "p2", Category: models.CategoryElectronics},
		{ID: "p3", Category: models.CategoryFood},
		{ID: "p4", Category: models.CategoryBeauty},
	}}

	testCases := []struct {
		name           string
		categories     []models.Category
		expectedCounts []int
	}{
		{
			name: "Counts by exact name",
			categories: []models.Category{
				{ID: "electronics", Name: "电子产品"},
				{ID: "food", Name: "食品饮料"},
				{ID: "books", Name: "图书音像"},
			},
			expectedCounts: []int{2, 1, 0},
		},
		{
			name:           "Name that is not a tag counts nothing",
			categories:     []models.Category{{ID: "beauty", Name: "美妆个护"}},
			expectedCounts: []int{0},
		},
		{
			name:           "Empty list",
			categories:     []models.Category{},
			expectedCounts: []int{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			c := NewCategories(&MockCategoryRepo{Categories: tc.categories}, products)

			// Act
			listings := c.List()

			// Assert
			counts := []int{}
			for i, l := range listings {
				assert.Equal(t, tc.categories[i].ID, l.ID)
				counts = append(counts, l.ProductCount)
			}
			assert.Equal(t, tc.expectedCounts, counts)
		})
	}
}

func TestGet(t *testing.T) {
	c := NewCategories(
		&MockCategoryRepo{Categories: []models.Category{{ID: "food", Name: "食品饮料"}}},
		&MockProductRepo{Products: []models.Product{{ID: "p1", Category: models.CategoryFood}}},
	)

	l, err := c.Get("food")
	require.NoError(t, err)
	assert.Equal(t, "食品饮料", l.Name)
	assert.Equal(t, 1, l.ProductCount)

	_, err = c.Get("missing")
	assert.ErrorIs(t, err, models.ErrCategoryNotFound)
}

func TestTags(t *testing.T) {
	c := NewCategories(&MockCategoryRepo{}, &MockProductRepo{Products: []models.Product{
		{ID: "p1", Category: models.CategoryShoes},
		{ID: "p2", Category: models.CategoryShoes},
	}})

	tags := c.Tags()

	require.Len(t, tags, len(models.ProductCategories()))
	for _, tc := range tags {
		if tc.Tag == models.CategoryShoes {
			assert.Equal(t, 2, tc.Count)
		} else {
			assert.Zero(t, tc.Count, tc.Tag)
		}
	}
}
