package service

import (
	"fmt"

	cerrors "github.com/abgdnv/gocatalog/internal/catalog/errors"
	"github.com/abgdnv/gocatalog/internal/catalog/model"
	"github.com/abgdnv/gocatalog/internal/catalog/repository"
)

// NamedDto represents the data transfer object for a brand or category.
type NamedDto struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NamedCreateDto represents the creation payload for a brand or category.
type NamedCreateDto struct {
	Name string `json:"name" validate:"required,max=100"`
}

// BrandService manages brands and enforces brand name uniqueness.
type BrandService struct {
	brands *repository.BrandRepository
	audit  *AuditService
}

// NewBrandService creates a new BrandService with the provided repositories.
func NewBrandService(brands *repository.BrandRepository, audit *AuditService) *BrandService {
	return &BrandService{brands: brands, audit: audit}
}

// FindByID returns ErrBrandNotFound if no brand exists with the given id.
func (s *BrandService) FindByID(id int64) (*NamedDto, error) {
	brand, err := s.brands.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch brand by ID %d: %w", id, err)
	}
	return &NamedDto{ID: brand.ID, Name: brand.Name}, nil
}

// FindAll returns all brands in insertion order.
func (s *BrandService) FindAll() []NamedDto {
	brands := s.brands.FindAll()
	dtos := make([]NamedDto, len(brands))
	for i, b := range brands {
		dtos[i] = NamedDto{ID: b.ID, Name: b.Name}
	}
	return dtos
}

// Create stores a new brand. Returns ErrDuplicateName when the name is
// already carried by a live brand.
func (s *BrandService) Create(actor string, brand NamedCreateDto) (*NamedDto, error) {
	if err := s.ensureNameFree(brand.Name, 0); err != nil {
		s.audit.Record(actor, model.ActionCreate, model.OutcomeFailure, fmt.Sprintf("brand %q: %v", brand.Name, err))
		return nil, err
	}
	created := s.brands.Create(model.Brand{Name: brand.Name})
	s.audit.Record(actor, model.ActionCreate, model.OutcomeSuccess, fmt.Sprintf("brand #%d %q", created.ID, created.Name))
	return &NamedDto{ID: created.ID, Name: created.Name}, nil
}

// Update renames an existing brand.
// Returns ErrBrandNotFound or ErrDuplicateName on a violated rule.
func (s *BrandService) Update(actor string, id int64, brand NamedCreateDto) (*NamedDto, error) {
	existing, err := s.brands.FindByID(id)
	if err != nil {
		s.audit.Record(actor, model.ActionUpdate, model.OutcomeFailure, fmt.Sprintf("brand #%d: not found", id))
		return nil, fmt.Errorf("failed to fetch brand by ID %d: %w", id, err)
	}
	if err := s.ensureNameFree(brand.Name, id); err != nil {
		s.audit.Record(actor, model.ActionUpdate, model.OutcomeFailure, fmt.Sprintf("brand #%d: %v", id, err))
		return nil, err
	}
	existing.Name = brand.Name
	updated, err := s.brands.Update(*existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update brand with ID %d: %w", id, err)
	}
	s.audit.Record(actor, model.ActionUpdate, model.OutcomeSuccess, fmt.Sprintf("brand #%d %q", updated.ID, updated.Name))
	return &NamedDto{ID: updated.ID, Name: updated.Name}, nil
}

// Delete removes a brand by its id. Products referencing the brand are
// left untouched; references are validated at write time only.
// Returns ErrBrandNotFound if no brand exists with the given id.
func (s *BrandService) Delete(actor string, id int64) error {
	if err := s.brands.Delete(id); err != nil {
		s.audit.Record(actor, model.ActionDelete, model.OutcomeFailure, fmt.Sprintf("brand #%d: not found", id))
		return fmt.Errorf("failed to delete brand with ID %d: %w", id, err)
	}
	s.audit.Record(actor, model.ActionDelete, model.OutcomeSuccess, fmt.Sprintf("brand #%d", id))
	return nil
}

func (s *BrandService) ensureNameFree(name string, excludeID int64) error {
	for _, b := range s.brands.FindAll() {
		if b.ID != excludeID && b.Name == name {
			return fmt.Errorf("brand name %q: %w", name, cerrors.ErrDuplicateName)
		}
	}
	return nil
}

// CategoryService manages categories and enforces category name uniqueness.
type CategoryService struct {
	categories *repository.CategoryRepository
	audit      *AuditService
}

// NewCategoryService creates a new CategoryService with the provided repositories.
func NewCategoryService(categories *repository.CategoryRepository, audit *AuditService) *CategoryService {
	return &CategoryService{categories: categories, audit: audit}
}

// FindByID returns ErrCategoryNotFound if no category exists with the given id.
func (s *CategoryService) FindByID(id int64) (*NamedDto, error) {
	category, err := s.categories.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category by ID %d: %w", id, err)
	}
	return &NamedDto{ID: category.ID, Name: category.Name}, nil
}

// FindAll returns all categories in insertion order.
func (s *CategoryService) FindAll() []NamedDto {
	categories := s.categories.FindAll()
	dtos := make([]NamedDto, len(categories))
	for i, c := range categories {
		dtos[i] = NamedDto{ID: c.ID, Name: c.Name}
	}
	return dtos
}

// Create stores a new category. Returns ErrDuplicateName when the name
// is already carried by a live category.
func (s *CategoryService) Create(actor string, category NamedCreateDto) (*NamedDto, error) {
	if err := s.ensureNameFree(category.Name, 0); err != nil {
		s.audit.Record(actor, model.ActionCreate, model.OutcomeFailure, fmt.Sprintf("category %q: %v", category.Name, err))
		return nil, err
	}
	created := s.categories.Create(model.Category{Name: category.Name})
	s.audit.Record(actor, model.ActionCreate, model.OutcomeSuccess, fmt.Sprintf("category #%d %q", created.ID, created.Name))
	return &NamedDto{ID: created.ID, Name: created.Name}, nil
}

// Update renames an existing category.
// Returns ErrCategoryNotFound or ErrDuplicateName on a violated rule.
func (s *CategoryService) Update(actor string, id int64, category NamedCreateDto) (*NamedDto, error) {
	existing, err := s.categories.FindByID(id)
	if err != nil {
		s.audit.Record(actor, model.ActionUpdate, model.OutcomeFailure, fmt.Sprintf("category #%d: not found", id))
		return nil, fmt.Errorf("failed to fetch category by ID %d: %w", id, err)
	}
	if err := s.ensureNameFree(category.Name, id); err != nil {
		s.audit.Record(actor, model.ActionUpdate, model.OutcomeFailure, fmt.Sprintf("category #%d: %v", id, err))
		return nil, err
	}
	existing.Name = category.Name
	updated, err := s.categories.Update(*existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update category with ID %d: %w", id, err)
	}
	s.audit.Record(actor, model.ActionUpdate, model.OutcomeSuccess, fmt.Sprintf("category #%d %q", updated.ID, updated.Name))
	return &NamedDto{ID: updated.ID, Name: updated.Name}, nil
}

// Delete removes a category by its id. Products referencing the category
// are left untouched; references are validated at write time only.
// Returns ErrCategoryNotFound if no category exists with the given id.
func (s *CategoryService) Delete(actor string, id int64) error {
	if err := s.categories.Delete(id); err != nil {
		s.audit.Record(actor, model.ActionDelete, model.OutcomeFailure, fmt.Sprintf("category #%d: not found", id))
		return fmt.Errorf("failed to delete category with ID %d: %w", id, err)
	}
	s.audit.Record(actor, model.ActionDelete, model.OutcomeSuccess, fmt.Sprintf("category #%d", id))
	return nil
}

func (s *CategoryService) ensureNameFree(name string, excludeID int64) error {
	for _, c := range s.categories.FindAll() {
		if c.ID != excludeID && c.Name == name {
			return fmt.Errorf("category name %q: %w", name, cerrors.ErrDuplicateName)
		}
	}
	return nil
}
