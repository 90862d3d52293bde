// Package app contains the application setup for the catalog service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/abgdnv/gocatalog/internal/catalog/model"
	"github.com/abgdnv/gocatalog/internal/catalog/repository"
	"github.com/abgdnv/gocatalog/internal/catalog/service"
	"github.com/abgdnv/gocatalog/internal/catalog/transport/rest"
	"github.com/abgdnv/gocatalog/internal/config"
	"github.com/abgdnv/gocatalog/pkg/auth"
	"github.com/abgdnv/gocatalog/pkg/server"
	"github.com/go-chi/chi/v5"
)

type Dependencies struct {
	Products   *service.ProductService
	Brands     *service.BrandService
	Categories *service.CategoryService
	Users      *service.UserService
	Audit      *service.AuditService
	Tokens     *auth.TokenManager
	Logger     *slog.Logger
}

// SetupDependencies wires the in-memory stores, services and the token
// manager. All state lives in these stores for the lifetime of the
// process.
func SetupDependencies(cfg *config.Config, logger *slog.Logger) *Dependencies {
	productRepo := repository.NewProductRepository()
	brandRepo := repository.NewBrandRepository()
	categoryRepo := repository.NewCategoryRepository()
	userRepo := repository.NewUserRepository()
	auditRepo := repository.NewAuditRepository()

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiry)
	auditSvc := service.NewAuditService(auditRepo, userRepo, logger)

	return &Dependencies{
		Products:   service.NewProductService(productRepo, categoryRepo, brandRepo, auditSvc),
		Brands:     service.NewBrandService(brandRepo, auditSvc),
		Categories: service.NewCategoryService(categoryRepo, auditSvc),
		Users:      service.NewUserService(userRepo, tokens, auditSvc),
		Audit:      auditSvc,
		Tokens:     tokens,
		Logger:     logger,
	}
}

// SetupHttpHandler initializes the HTTP routes for the catalog service.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the catalog service. Reads and
// the user endpoints are public; mutations require a token and the audit
// trail additionally requires the admin role.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	requireAuth := auth.Middleware(deps.Tokens)
	requireAdmin := auth.RequireRole(string(model.RoleAdmin))

	rest.NewProductHandler(deps.Products, deps.Logger).RegisterRoutes(mux, requireAuth)
	rest.NewBrandHandler(deps.Brands, deps.Logger).RegisterRoutes(mux, requireAuth)
	rest.NewCategoryHandler(deps.Categories, deps.Logger).RegisterRoutes(mux, requireAuth)
	rest.NewUserHandler(deps.Users, deps.Logger).RegisterRoutes(mux)
	rest.NewAuditHandler(deps.Audit, deps.Logger).RegisterRoutes(mux, requireAuth, requireAdmin)

	mux.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// SetupHttpServer creates and configures an HTTP server for the catalog service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
