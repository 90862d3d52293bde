package service

import (
	"testing"

	cerrors "github.com/abgdnv/gocatalog/internal/catalog/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_BrandService_Create(t *testing.T) {
	// given
	f := newFixture()
	// when
	created, err := f.brands.Create(actor, NamedCreateDto{Name: "Puma"})
	// then
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Puma", created.Name)
}

func Test_BrandService_Create_DuplicateName(t *testing.T) {
	// given
	f := newFixture()
	_, err := f.brands.Create(actor, NamedCreateDto{Name: "Puma"})
	require.NoError(t, err)
	// when: exact match is rejected, a different casing is not
	_, errDup := f.brands.Create(actor, NamedCreateDto{Name: "Puma"})
	_, errCase := f.brands.Create(actor, NamedCreateDto{Name: "puma"})
	// then
	assert.ErrorIs(t, errDup, cerrors.ErrDuplicateName)
	assert.NoError(t, errCase)
}

func Test_BrandService_Update(t *testing.T) {
	// given
	f := newFixture()
	created, err := f.brands.Create(actor, NamedCreateDto{Name: "Puma"})
	require.NoError(t, err)
	other, err := f.brands.Create(actor, NamedCreateDto{Name: "Adidas"})
	require.NoError(t, err)
	// when / then: rename works
	updated, err := f.brands.Update(actor, created.ID, NamedCreateDto{Name: "Puma SE"})
	require.NoError(t, err)
	assert.Equal(t, "Puma SE", updated.Name)
	// renaming onto a sibling's name is rejected
	_, err = f.brands.Update(actor, other.ID, NamedCreateDto{Name: "Puma SE"})
	assert.ErrorIs(t, err, cerrors.ErrDuplicateName)
	// unknown id is rejected
	_, err = f.brands.Update(actor, 999, NamedCreateDto{Name: "Ghost"})
	assert.ErrorIs(t, err, cerrors.ErrBrandNotFound)
}

func Test_BrandService_Delete(t *testing.T) {
	// given
	f := newFixture()
	created, err := f.brands.Create(actor, NamedCreateDto{Name: "Puma"})
	require.NoError(t, err)
	// when / then
	require.NoError(t, f.brands.Delete(actor, created.ID))
	assert.ErrorIs(t, f.brands.Delete(actor, created.ID), cerrors.ErrBrandNotFound)
}

func Test_CategoryService_CRUD(t *testing.T) {
	// given
	f := newFixture()
	// when
	created, err := f.categories.Create(actor, NamedCreateDto{Name: "Shoes"})
	require.NoError(t, err)
	// then
	found, err := f.categories.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shoes", found.Name)

	_, err = f.categories.Create(actor, NamedCreateDto{Name: "Shoes"})
	assert.ErrorIs(t, err, cerrors.ErrDuplicateName)

	updated, err := f.categories.Update(actor, created.ID, NamedCreateDto{Name: "Footwear"})
	require.NoError(t, err)
	assert.Equal(t, "Footwear", updated.Name)

	require.NoError(t, f.categories.Delete(actor, created.ID))
	_, err = f.categories.FindByID(created.ID)
	assert.ErrorIs(t, err, cerrors.ErrCategoryNotFound)
}

func Test_CategoryService_SeparateAllocators(t *testing.T) {
	// given: ids are allocated per collection, not globally
	f := newFixture()
	// when
	category, err := f.categories.Create(actor, NamedCreateDto{Name: "Shoes"})
	require.NoError(t, err)
	brand, err := f.brands.Create(actor, NamedCreateDto{Name: "Puma"})
	require.NoError(t, err)
	// then
	assert.Equal(t, int64(1), category.ID)
	assert.Equal(t, int64(1), brand.ID)
}
