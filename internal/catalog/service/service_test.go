package service

import (
	"io"
	"log/slog"
	"time"

	"github.com/abgdnv/gocatalog/internal/catalog/model"
	"github.com/abgdnv/gocatalog/internal/catalog/repository"
	"github.com/abgdnv/gocatalog/pkg/auth"
)

// fixture wires the full service stack onto fresh in-memory stores, one
// per test.
type fixture struct {
	products   *ProductService
	brands     *BrandService
	categories *CategoryService
	users      *UserService
	audit      *AuditService

	productRepo  *repository.ProductRepository
	brandRepo    *repository.BrandRepository
	categoryRepo *repository.CategoryRepository
	userRepo     *repository.UserRepository
	auditRepo    *repository.AuditRepository
	tokens       *auth.TokenManager
}

func newFixture() *fixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &fixture{
		productRepo:  repository.NewProductRepository(),
		brandRepo:    repository.NewBrandRepository(),
		categoryRepo: repository.NewCategoryRepository(),
		userRepo:     repository.NewUserRepository(),
		auditRepo:    repository.NewAuditRepository(),
		tokens:       auth.NewTokenManager("test-secret", "gocatalog-test", time.Hour),
	}
	f.audit = NewAuditService(f.auditRepo, f.userRepo, logger)
	f.products = NewProductService(f.productRepo, f.categoryRepo, f.brandRepo, f.audit)
	f.brands = NewBrandService(f.brandRepo, f.audit)
	f.categories = NewCategoryService(f.categoryRepo, f.audit)
	f.users = NewUserService(f.userRepo, f.tokens, f.audit)
	return f
}

// seedTaxonomy creates one category and one brand and returns their ids.
func (f *fixture) seedTaxonomy() (categoryID, brandID int64) {
	category := f.categoryRepo.Create(model.Category{Name: "Shoes"})
	brand := f.brandRepo.Create(model.Brand{Name: "Puma"})
	return category.ID, brand.ID
}

// seedActor registers a user so audit writes for that email resolve.
func (f *fixture) seedActor(email string) {
	f.userRepo.Create(model.User{Email: email, PasswordHash: "x", Role: model.RoleAdmin})
}
