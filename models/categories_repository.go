package models

import (
	"go.uber.org/zap"
)

// CategoriesRepository owns the categories file.
type CategoriesRepository struct {
	path       string
	log        *zap.Logger
	categories []Category
}

// NewCategoriesRepository loads the categories file at path.
// A missing file yields no categories; a malformed one yields DefaultCategories.
func NewCategoriesRepository(path string, log *zap.Logger) *CategoriesRepository {
	r := &CategoriesRepository{path: path, log: nopIfNil(log)}
	r.load()
	return r
}

func (r *CategoriesRepository) load() {
	var records []Category
	exists, err := loadJSONArray(r.path, &records)
	switch {
	case !exists:
		r.categories = []Category{}
	case err != nil:
		r.log.Warn("failed to load categories, using defaults", zap.String("path", r.path), zap.Error(err))
		r.categories = DefaultCategories()
	default:
		r.categories = records
	}
}

// Path returns the file the repository persists to.
func (r *CategoriesRepository) Path() string {
	return r.path
}

// GetAllCategories returns the categories in file order.
func (r *CategoriesRepository) GetAllCategories() []Category {
	return append([]Category(nil), r.categories...)
}

// GetByID returns the category with the given id.
func (r *CategoriesRepository) GetByID(id string) (*Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, ErrCategoryNotFound
}

// GetByName returns the category with the given name.
func (r *CategoriesRepository) GetByName(name string) (*Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			found := c
			return &found, nil
		}
	}
	return nil, ErrCategoryNotFound
}

// CreateCategory appends a category and persists the file.
func (r *CategoriesRepository) CreateCategory(category *Category) error {
	r.categories = append(r.categories, *category)
	return r.Save()
}

// DeleteByName removes the first category with the given name and persists the file.
func (r *CategoriesRepository) DeleteByName(name string) error {
	for i, c := range r.categories {
		if c.Name == name {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return r.Save()
		}
	}
	return ErrCategoryNotFound
}

// Save rewrites the whole categories file.
func (r *CategoriesRepository) Save() error {
	if err := saveJSONArray(r.path, r.categories); err != nil {
		r.log.Error("failed to save categories", zap.String("path", r.path), zap.Error(err))
		return err
	}
	return nil
}
