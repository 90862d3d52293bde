package repository

import (
	cerrors "github.com/abgdnv/gocatalog/internal/catalog/errors"
	"github.com/abgdnv/gocatalog/internal/catalog/model"
	"github.com/abgdnv/gocatalog/internal/catalog/store"
)

// BrandRepository is the typed façade over the brand store. Brands carry
// no foreign keys, so the store needs no secondary index.
type BrandRepository struct {
	store *store.Store[model.Brand]
}

func NewBrandRepository() *BrandRepository {
	s := store.New[model.Brand](
		func(b model.Brand) int64 { return b.ID },
		func(b model.Brand, id int64) model.Brand { b.ID = id; return b },
	)
	return &BrandRepository{store: s}
}

func (r *BrandRepository) Create(b model.Brand) model.Brand {
	return r.store.Add(b)
}

// FindByID returns ErrBrandNotFound if no brand exists with the given id.
func (r *BrandRepository) FindByID(id int64) (*model.Brand, error) {
	b, ok := r.store.FindByID(id)
	if !ok {
		return nil, cerrors.ErrBrandNotFound
	}
	return &b, nil
}

func (r *BrandRepository) FindAll() []model.Brand {
	return r.store.FindAll()
}

// Update returns ErrBrandNotFound if no brand exists with the given id.
func (r *BrandRepository) Update(b model.Brand) (*model.Brand, error) {
	updated, ok := r.store.Update(b)
	if !ok {
		return nil, cerrors.ErrBrandNotFound
	}
	return &updated, nil
}

// Delete returns ErrBrandNotFound if no brand exists with the given id.
func (r *BrandRepository) Delete(id int64) error {
	if !r.store.Delete(id) {
		return cerrors.ErrBrandNotFound
	}
	return nil
}

// CategoryRepository is the typed façade over the category store.
type CategoryRepository struct {
	store *store.Store[model.Category]
}

func NewCategoryRepository() *CategoryRepository {
	s := store.New[model.Category](
		func(c model.Category) int64 { return c.ID },
		func(c model.Category, id int64) model.Category { c.ID = id; return c },
	)
	return &CategoryRepository{store: s}
}

func (r *CategoryRepository) Create(c model.Category) model.Category {
	return r.store.Add(c)
}

// FindByID returns ErrCategoryNotFound if no category exists with the given id.
func (r *CategoryRepository) FindByID(id int64) (*model.Category, error) {
	c, ok := r.store.FindByID(id)
	if !ok {
		return nil, cerrors.ErrCategoryNotFound
	}
	return &c, nil
}

func (r *CategoryRepository) FindAll() []model.Category {
	return r.store.FindAll()
}

// Update returns ErrCategoryNotFound if no category exists with the given id.
func (r *CategoryRepository) Update(c model.Category) (*model.Category, error) {
	updated, ok := r.store.Update(c)
	if !ok {
		return nil, cerrors.ErrCategoryNotFound
	}
	return &updated, nil
}

// Delete returns ErrCategoryNotFound if no category exists with the given id.
func (r *CategoryRepository) Delete(id int64) error {
	if !r.store.Delete(id) {
		return cerrors.ErrCategoryNotFound
	}
	return nil
}
