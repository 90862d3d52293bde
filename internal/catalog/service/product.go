// Package service implements the catalog's business rules: name
// uniqueness, referential integrity across stores and the immutability
// of a product's category and brand references. The stores themselves
// perform none of these checks.
package service

import (
	"fmt"
	"time"

	cerrors "github.com/abgdnv/gocatalog/internal/catalog/errors"
	"github.com/abgdnv/gocatalog/internal/catalog/model"
	"github.com/abgdnv/gocatalog/internal/catalog/repository"
)

// ProductService manages products. Creation validates the category and
// brand references against their owning repositories; updates never
// change them.
type ProductService struct {
	products   *repository.ProductRepository
	categories *repository.CategoryRepository
	brands     *repository.BrandRepository
	audit      *AuditService
}

// NewProductService creates a new ProductService with the provided repositories.
func NewProductService(products *repository.ProductRepository, categories *repository.CategoryRepository, brands *repository.BrandRepository, audit *AuditService) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		brands:     brands,
		audit:      audit,
	}
}

// ProductCreateDto represents the data transfer object for creating a new product.
type ProductCreateDto struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Price       int64  `json:"price"       validate:"min=0"`
	Stock       int32  `json:"stock"       validate:"min=0"`
	CategoryID  int64  `json:"category_id" validate:"required,min=1"`
	BrandID     int64  `json:"brand_id"    validate:"required,min=1"`
}

// ProductUpdateDto represents the data transfer object for updating a product.
// Category and brand references are immutable; values sent here for them
// are ignored in favor of the stored entity's.
type ProductUpdateDto struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Price       int64  `json:"price"       validate:"min=0"`
	Stock       int32  `json:"stock"       validate:"min=0"`
	CategoryID  int64  `json:"category_id"`
	BrandID     int64  `json:"brand_id"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"`
	Stock       int32     `json:"stock"`
	CategoryID  int64     `json:"category_id"`
	BrandID     int64     `json:"brand_id"`
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `json:"modified_at"`
}

// FindByID retrieves a product by its id.
// Returns ErrProductNotFound if no product exists with the given id.
func (s *ProductService) FindByID(id int64) (*ProductDto, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}
	return toProductDto(product), nil
}

// FindAll returns all products in insertion order.
func (s *ProductService) FindAll() []ProductDto {
	return toProductDtos(s.products.FindAll())
}

// FindByCategory returns the products referencing the given category id.
// A category id with no products yields an empty slice, whether or not
// the category itself exists: references are validated at write time only.
func (s *ProductService) FindByCategory(categoryID int64) []ProductDto {
	return toProductDtos(s.products.FindByCategory(categoryID))
}

// FindByBrand returns the products referencing the given brand id.
func (s *ProductService) FindByBrand(brandID int64) []ProductDto {
	return toProductDtos(s.products.FindByBrand(brandID))
}

// Create validates name uniqueness and the category/brand references,
// then stores the product. Returns ErrDuplicateName, ErrCategoryNotFound
// or ErrBrandNotFound on a violated business rule.
func (s *ProductService) Create(actor string, product ProductCreateDto) (*ProductDto, error) {
	if err := s.ensureNameFree(product.Name, 0); err != nil {
		s.audit.Record(actor, model.ActionCreate, model.OutcomeFailure, fmt.Sprintf("product %q: %v", product.Name, err))
		return nil, err
	}
	if _, err := s.categories.FindByID(product.CategoryID); err != nil {
		s.audit.Record(actor, model.ActionCreate, model.OutcomeFailure, fmt.Sprintf("product %q: category %d does not exist", product.Name, product.CategoryID))
		return nil, fmt.Errorf("failed to resolve category %d: %w", product.CategoryID, err)
	}
	if _, err := s.brands.FindByID(product.BrandID); err != nil {
		s.audit.Record(actor, model.ActionCreate, model.OutcomeFailure, fmt.Sprintf("product %q: brand %d does not exist", product.Name, product.BrandID))
		return nil, fmt.Errorf("failed to resolve brand %d: %w", product.BrandID, err)
	}

	now := time.Now().UTC()
	created := s.products.Create(model.Product{
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		StockQuantity: product.Stock,
		CategoryID:    product.CategoryID,
		BrandID:       product.BrandID,
		CreatedAt:     now,
		ModifiedAt:    now,
	})
	s.audit.Record(actor, model.ActionCreate, model.OutcomeSuccess, fmt.Sprintf("product #%d %q", created.ID, created.Name))
	return toProductDto(&created), nil
}

// Update modifies the mutable fields of an existing product: name,
// description, price and stock. The stored category and brand references
// are carried over unchanged regardless of the payload.
// Returns ErrProductNotFound if no product exists with the given id.
func (s *ProductService) Update(actor string, id int64, product ProductUpdateDto) (*ProductDto, error) {
	existing, err := s.products.FindByID(id)
	if err != nil {
		s.audit.Record(actor, model.ActionUpdate, model.OutcomeFailure, fmt.Sprintf("product #%d: not found", id))
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}
	if err := s.ensureNameFree(product.Name, id); err != nil {
		s.audit.Record(actor, model.ActionUpdate, model.OutcomeFailure, fmt.Sprintf("product #%d: %v", id, err))
		return nil, err
	}

	merged := *existing
	merged.Name = product.Name
	merged.Description = product.Description
	merged.Price = product.Price
	merged.StockQuantity = product.Stock
	merged.ModifiedAt = time.Now().UTC()

	updated, err := s.products.Update(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %d: %w", id, err)
	}
	s.audit.Record(actor, model.ActionUpdate, model.OutcomeSuccess, fmt.Sprintf("product #%d %q", updated.ID, updated.Name))
	return toProductDto(updated), nil
}

// Delete removes a product by its id.
// Returns ErrProductNotFound if no product exists with the given id.
func (s *ProductService) Delete(actor string, id int64) error {
	if err := s.products.Delete(id); err != nil {
		s.audit.Record(actor, model.ActionDelete, model.OutcomeFailure, fmt.Sprintf("product #%d: not found", id))
		return fmt.Errorf("failed to delete product with ID %d: %w", id, err)
	}
	s.audit.Record(actor, model.ActionDelete, model.OutcomeSuccess, fmt.Sprintf("product #%d", id))
	return nil
}

// ensureNameFree scans the live collection for a case-sensitive name
// match, ignoring the entity with excludeID so an update may keep its
// own name.
func (s *ProductService) ensureNameFree(name string, excludeID int64) error {
	for _, p := range s.products.FindAll() {
		if p.ID != excludeID && p.Name == name {
			return fmt.Errorf("product name %q: %w", name, cerrors.ErrDuplicateName)
		}
	}
	return nil
}

// toProductDto converts a model.Product to a ProductDto.
func toProductDto(p *model.Product) *ProductDto {
	return &ProductDto{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.StockQuantity,
		CategoryID:  p.CategoryID,
		BrandID:     p.BrandID,
		CreatedAt:   p.CreatedAt,
		ModifiedAt:  p.ModifiedAt,
	}
}

func toProductDtos(products []model.Product) []ProductDto {
	dtos := make([]ProductDto, len(products))
	for i, p := range products {
		dtos[i] = *toProductDto(&p)
	}
	return dtos
}
