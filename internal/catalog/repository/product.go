// Package repository provides typed façades over the in-memory entity
// stores. A repository owns exactly one store, translates the store's
// absence booleans into the sentinel errors the layers above expect, and
// exposes one named finder per secondary index the entity participates in.
package repository

import (
	cerrors "github.com/abgdnv/gocatalog/internal/catalog/errors"
	"github.com/abgdnv/gocatalog/internal/catalog/model"
	"github.com/abgdnv/gocatalog/internal/catalog/store"
)

const (
	productCategoryIndex = "category"
	productBrandIndex    = "brand"
)

// ProductRepository is the typed façade over the product store.
type ProductRepository struct {
	store *store.Store[model.Product]
}

// NewProductRepository creates a product repository with a fresh store
// indexed by category and brand reference.
func NewProductRepository() *ProductRepository {
	s := store.New[model.Product](
		func(p model.Product) int64 { return p.ID },
		func(p model.Product, id int64) model.Product { p.ID = id; return p },
	)
	s.AddIndex(productCategoryIndex, func(p model.Product) string { return store.IntKey(p.CategoryID) })
	s.AddIndex(productBrandIndex, func(p model.Product) string { return store.IntKey(p.BrandID) })
	return &ProductRepository{store: s}
}

// Create stores the product and returns it with its assigned id.
func (r *ProductRepository) Create(p model.Product) model.Product {
	return r.store.Add(p)
}

// FindByID retrieves a product by its id.
// Returns ErrProductNotFound if no product exists with the given id.
func (r *ProductRepository) FindByID(id int64) (*model.Product, error) {
	p, ok := r.store.FindByID(id)
	if !ok {
		return nil, cerrors.ErrProductNotFound
	}
	return &p, nil
}

// FindAll returns all products in insertion order.
func (r *ProductRepository) FindAll() []model.Product {
	return r.store.FindAll()
}

// FindByCategory returns the products referencing the given category id.
func (r *ProductRepository) FindByCategory(categoryID int64) []model.Product {
	return r.store.FindByIndex(productCategoryIndex, store.IntKey(categoryID))
}

// FindByBrand returns the products referencing the given brand id.
func (r *ProductRepository) FindByBrand(brandID int64) []model.Product {
	return r.store.FindByIndex(productBrandIndex, store.IntKey(brandID))
}

// Update replaces the stored product carrying p's id.
// Returns ErrProductNotFound if no product exists with the given id.
func (r *ProductRepository) Update(p model.Product) (*model.Product, error) {
	updated, ok := r.store.Update(p)
	if !ok {
		return nil, cerrors.ErrProductNotFound
	}
	return &updated, nil
}

// Delete removes a product by its id.
// Returns ErrProductNotFound if no product exists with the given id.
func (r *ProductRepository) Delete(id int64) error {
	if !r.store.Delete(id) {
		return cerrors.ErrProductNotFound
	}
	return nil
}
