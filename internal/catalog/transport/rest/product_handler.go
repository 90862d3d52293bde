package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	cerrors "github.com/abgdnv/gocatalog/internal/catalog/errors"
	"github.com/abgdnv/gocatalog/internal/catalog/service"
	"github.com/abgdnv/gocatalog/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// ProductHandler serves the product endpoints. Reads are public;
// mutations require an authenticated caller.
type ProductHandler struct {
	service  *service.ProductService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewProductHandler creates a new ProductHandler with the provided service.
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the product routes. requireAuth guards the
// mutating endpoints.
func (h *ProductHandler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.FindAll)
		r.Get("/{id}", h.FindByID)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}

// FindAll retrieves products, optionally filtered by the category or
// brand query parameter.
func (h *ProductHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(h.logger, r)
	categoryID, byCategory, ok := web.ParseOptionalID(r, w, mLogger, "category")
	if !ok {
		return
	}
	brandID, byBrand, ok := web.ParseOptionalID(r, w, mLogger, "brand")
	if !ok {
		return
	}
	if byCategory && byBrand {
		web.RespondError(w, mLogger, http.StatusBadRequest, "Filter by either category or brand, not both")
		return
	}

	var list []service.ProductDto
	switch {
	case byCategory:
		list = h.service.FindByCategory(categoryID)
	case byBrand:
		list = h.service.FindByBrand(brandID)
	default:
		list = h.service.FindAll()
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product list", "count", len(list))
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// FindByID retrieves a product by its ID.
func (h *ProductHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(h.logger, r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to find product by ID", "ID", id)
	found, err := h.service.FindByID(id)
	if err != nil {
		if errors.Is(err, cerrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %d not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve product with ID %d", id))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// Create handles the creation of a new product.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(h.logger, r)
	actor, ok := web.ActorEmail(w, r, mLogger)
	if !ok {
		return
	}
	dto, ok := decodeValid[service.ProductCreateDto](w, r, h.validate, mLogger)
	if !ok {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to create product", "product", dto)
	created, err := h.service.Create(actor, dto)
	if err != nil {
		switch {
		case errors.Is(err, cerrors.ErrDuplicateName):
			web.RespondError(w, mLogger, http.StatusConflict, err.Error())
		case errors.Is(err, cerrors.ErrCategoryNotFound), errors.Is(err, cerrors.ErrBrandNotFound):
			web.RespondError(w, mLogger, http.StatusBadRequest, err.Error())
		default:
			mLogger.ErrorContext(r.Context(), "Error creating product", "error", err)
			web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to create product")
		}
		return
	}
	mLogger.InfoContext(r.Context(), "Product created successfully", slog.Int64("ID", created.ID))
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// Update modifies the mutable fields of an existing product.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(h.logger, r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	actor, ok := web.ActorEmail(w, r, mLogger)
	if !ok {
		return
	}
	dto, ok := decodeValid[service.ProductUpdateDto](w, r, h.validate, mLogger)
	if !ok {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to update product", "ID", id)
	updated, err := h.service.Update(actor, id, dto)
	if err != nil {
		switch {
		case errors.Is(err, cerrors.ErrProductNotFound):
			mLogger.WarnContext(r.Context(), "Product not found for update", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %d not found", id))
		case errors.Is(err, cerrors.ErrDuplicateName):
			web.RespondError(w, mLogger, http.StatusConflict, err.Error())
		default:
			mLogger.ErrorContext(r.Context(), "Error updating product", "ID", id, "error", err)
			web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to update product with ID %d", id))
		}
		return
	}
	mLogger.InfoContext(r.Context(), "Product updated successfully", slog.Int64("ID", updated.ID))
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// Delete removes a product by its ID.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(h.logger, r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	actor, ok := web.ActorEmail(w, r, mLogger)
	if !ok {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to delete product", "ID", id)
	if err := h.service.Delete(actor, id); err != nil {
		if errors.Is(err, cerrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found for deletion", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %d not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error deleting product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to delete product with ID %d", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Product deleted successfully", slog.Int64("ID", id))
	w.WriteHeader(http.StatusNoContent)
}
