package service

import (
	"testing"

	cerrors "github.com/abgdnv/gocatalog/internal/catalog/errors"
	"github.com/abgdnv/gocatalog/internal/catalog/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const actor = "admin@example.com"

func Test_ProductService_Create(t *testing.T) {
	// given
	f := newFixture()
	categoryID, brandID := f.seedTaxonomy()
	// when
	created, err := f.products.Create(actor, ProductCreateDto{
		Name:       "Boots",
		Price:      7990,
		Stock:      12,
		CategoryID: categoryID,
		BrandID:    brandID,
	})
	// then
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Boots", created.Name)
	assert.Equal(t, categoryID, created.CategoryID)
	assert.Equal(t, brandID, created.BrandID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.ModifiedAt)
}

func Test_ProductService_Create_DuplicateName(t *testing.T) {
	// given
	f := newFixture()
	categoryID, brandID := f.seedTaxonomy()
	dto := ProductCreateDto{Name: "Boots", Price: 7990, CategoryID: categoryID, BrandID: brandID}
	_, err := f.products.Create(actor, dto)
	require.NoError(t, err)
	// when
	_, err = f.products.Create(actor, dto)
	// then
	assert.ErrorIs(t, err, cerrors.ErrDuplicateName)
	assert.Len(t, f.productRepo.FindAll(), 1)
}

func Test_ProductService_Create_DanglingReferences(t *testing.T) {
	f := newFixture()
	categoryID, brandID := f.seedTaxonomy()

	testCases := []struct {
		name        string
		dto         ProductCreateDto
		expectError error
	}{
		{
			name:        "Error - unknown category",
			dto:         ProductCreateDto{Name: "Boots", CategoryID: 999, BrandID: brandID},
			expectError: cerrors.ErrCategoryNotFound,
		},
		{
			name:        "Error - unknown brand",
			dto:         ProductCreateDto{Name: "Boots", CategoryID: categoryID, BrandID: 999},
			expectError: cerrors.ErrBrandNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			created, err := f.products.Create(actor, tc.dto)
			// then
			assert.ErrorIs(t, err, tc.expectError)
			assert.Nil(t, created)
			assert.Empty(t, f.productRepo.FindAll())
		})
	}
}

func Test_ProductService_Update_PreservesReferences(t *testing.T) {
	// given
	f := newFixture()
	categoryID, brandID := f.seedTaxonomy()
	otherCategory := f.categoryRepo.Create(model.Category{Name: "Bags"})
	created, err := f.products.Create(actor, ProductCreateDto{
		Name: "Boots", Price: 7990, CategoryID: categoryID, BrandID: brandID,
	})
	require.NoError(t, err)
	// when: the payload tries to move the product to another category
	updated, err := f.products.Update(actor, created.ID, ProductUpdateDto{
		Name:       "Winter Boots",
		Price:      8990,
		Stock:      5,
		CategoryID: otherCategory.ID,
		BrandID:    999,
	})
	// then: mutable fields changed, references did not
	require.NoError(t, err)
	assert.Equal(t, "Winter Boots", updated.Name)
	assert.Equal(t, int64(8990), updated.Price)
	assert.Equal(t, categoryID, updated.CategoryID)
	assert.Equal(t, brandID, updated.BrandID)
	// and the category index still files the product under the original key
	byCategory := f.products.FindByCategory(categoryID)
	require.Len(t, byCategory, 1)
	assert.Equal(t, created.ID, byCategory[0].ID)
	assert.Empty(t, f.products.FindByCategory(otherCategory.ID))
}

func Test_ProductService_Update_NotFound(t *testing.T) {
	// given
	f := newFixture()
	f.seedTaxonomy()
	// when
	_, err := f.products.Update(actor, 999, ProductUpdateDto{Name: "Ghost"})
	// then
	assert.ErrorIs(t, err, cerrors.ErrProductNotFound)
	assert.Empty(t, f.productRepo.FindAll())
}

func Test_ProductService_Update_DuplicateName(t *testing.T) {
	// given
	f := newFixture()
	categoryID, brandID := f.seedTaxonomy()
	first, err := f.products.Create(actor, ProductCreateDto{Name: "Boots", CategoryID: categoryID, BrandID: brandID})
	require.NoError(t, err)
	second, err := f.products.Create(actor, ProductCreateDto{Name: "Sandals", CategoryID: categoryID, BrandID: brandID})
	require.NoError(t, err)
	// when: renaming onto a sibling's name
	_, err = f.products.Update(actor, second.ID, ProductUpdateDto{Name: first.Name})
	// then
	assert.ErrorIs(t, err, cerrors.ErrDuplicateName)
	// when: keeping one's own name is fine
	updated, err := f.products.Update(actor, second.ID, ProductUpdateDto{Name: second.Name, Price: 100})
	// then
	require.NoError(t, err)
	assert.Equal(t, int64(100), updated.Price)
}

func Test_ProductService_Delete(t *testing.T) {
	// given
	f := newFixture()
	categoryID, brandID := f.seedTaxonomy()
	created, err := f.products.Create(actor, ProductCreateDto{Name: "Boots", CategoryID: categoryID, BrandID: brandID})
	require.NoError(t, err)
	// when / then: first delete succeeds, second reports absence
	require.NoError(t, f.products.Delete(actor, created.ID))
	assert.ErrorIs(t, f.products.Delete(actor, created.ID), cerrors.ErrProductNotFound)

	_, err = f.products.FindByID(created.ID)
	assert.ErrorIs(t, err, cerrors.ErrProductNotFound)
	assert.Empty(t, f.products.FindByCategory(categoryID))
	assert.Empty(t, f.products.FindByBrand(brandID))
}

// Write-time-only referential integrity: deleting a category underneath
// a product neither cascades nor breaks the category index.
func Test_ProductService_CategoryDeletion_LeavesProductsUntouched(t *testing.T) {
	// given
	f := newFixture()
	categoryID, brandID := f.seedTaxonomy()
	created, err := f.products.Create(actor, ProductCreateDto{Name: "Boots", CategoryID: categoryID, BrandID: brandID})
	require.NoError(t, err)
	// when: the category is removed behind the service's back
	require.NoError(t, f.categoryRepo.Delete(categoryID))
	// then: the product survives and is still filed under the dead id
	byCategory := f.products.FindByCategory(categoryID)
	require.Len(t, byCategory, 1)
	assert.Equal(t, created.ID, byCategory[0].ID)
	// but creating a new product against the dead id is rejected
	_, err = f.products.Create(actor, ProductCreateDto{Name: "Sandals", CategoryID: categoryID, BrandID: brandID})
	assert.ErrorIs(t, err, cerrors.ErrCategoryNotFound)
}

func Test_ProductService_IDsNotReusedAcrossDeletes(t *testing.T) {
	// given
	f := newFixture()
	categoryID, brandID := f.seedTaxonomy()
	first, err := f.products.Create(actor, ProductCreateDto{Name: "Boots", CategoryID: categoryID, BrandID: brandID})
	require.NoError(t, err)
	require.NoError(t, f.products.Delete(actor, first.ID))
	// when
	second, err := f.products.Create(actor, ProductCreateDto{Name: "Boots", CategoryID: categoryID, BrandID: brandID})
	// then
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}
