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

// namedService is the operation set shared by brands and categories.
type namedService interface {
	FindByID(id int64) (*service.NamedDto, error)
	FindAll() []service.NamedDto
	Create(actor string, dto service.NamedCreateDto) (*service.NamedDto, error)
	Update(actor string, id int64, dto service.NamedCreateDto) (*service.NamedDto, error)
	Delete(actor string, id int64) error
}

// NamedHandler serves the brand or category endpoints; the two resources
// share their shape and differ only in route, label and not-found error.
type NamedHandler struct {
	service  namedService
	label    string
	basePath string
	notFound error
	validate *validator.Validate
	logger   *slog.Logger
}

// NewBrandHandler creates the handler for the brand endpoints.
func NewBrandHandler(service *service.BrandService, logger *slog.Logger) *NamedHandler {
	return &NamedHandler{
		service:  service,
		label:    "Brand",
		basePath: "/api/v1/brands",
		notFound: cerrors.ErrBrandNotFound,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// NewCategoryHandler creates the handler for the category endpoints.
func NewCategoryHandler(service *service.CategoryService, logger *slog.Logger) *NamedHandler {
	return &NamedHandler{
		service:  service,
		label:    "Category",
		basePath: "/api/v1/categories",
		notFound: cerrors.ErrCategoryNotFound,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the resource routes. requireAuth guards the
// mutating endpoints.
func (h *NamedHandler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Route(h.basePath, func(r chi.Router) {
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

// FindAll retrieves all entries of the resource.
func (h *NamedHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(h.logger, r)
	list := h.service.FindAll()
	mLogger.DebugContext(r.Context(), "Successfully retrieved list", "resource", h.label, "count", len(list))
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// FindByID retrieves an entry by its ID.
func (h *NamedHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(h.logger, r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	found, err := h.service.FindByID(id)
	if err != nil {
		if errors.Is(err, h.notFound) {
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("%s with ID %d not found", h.label, id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving entry", "resource", h.label, "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve %s with ID %d", h.label, id))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// Create handles the creation of a new entry.
func (h *NamedHandler) Create(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(h.logger, r)
	actor, ok := web.ActorEmail(w, r, mLogger)
	if !ok {
		return
	}
	dto, ok := decodeValid[service.NamedCreateDto](w, r, h.validate, mLogger)
	if !ok {
		return
	}

	created, err := h.service.Create(actor, dto)
	if err != nil {
		if errors.Is(err, cerrors.ErrDuplicateName) {
			web.RespondError(w, mLogger, http.StatusConflict, err.Error())
			return
		}
		mLogger.ErrorContext(r.Context(), "Error creating entry", "resource", h.label, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to create %s", h.label))
		return
	}
	mLogger.InfoContext(r.Context(), "Entry created successfully", "resource", h.label, slog.Int64("ID", created.ID))
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// Update renames an existing entry.
func (h *NamedHandler) Update(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(h.logger, r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	actor, ok := web.ActorEmail(w, r, mLogger)
	if !ok {
		return
	}
	dto, ok := decodeValid[service.NamedCreateDto](w, r, h.validate, mLogger)
	if !ok {
		return
	}

	updated, err := h.service.Update(actor, id, dto)
	if err != nil {
		switch {
		case errors.Is(err, h.notFound):
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("%s with ID %d not found", h.label, id))
		case errors.Is(err, cerrors.ErrDuplicateName):
			web.RespondError(w, mLogger, http.StatusConflict, err.Error())
		default:
			mLogger.ErrorContext(r.Context(), "Error updating entry", "resource", h.label, "ID", id, "error", err)
			web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to update %s with ID %d", h.label, id))
		}
		return
	}
	mLogger.InfoContext(r.Context(), "Entry updated successfully", "resource", h.label, slog.Int64("ID", updated.ID))
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// Delete removes an entry by its ID.
func (h *NamedHandler) Delete(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(h.logger, r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	actor, ok := web.ActorEmail(w, r, mLogger)
	if !ok {
		return
	}

	if err := h.service.Delete(actor, id); err != nil {
		if errors.Is(err, h.notFound) {
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("%s with ID %d not found", h.label, id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error deleting entry", "resource", h.label, "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to delete %s with ID %d", h.label, id))
		return
	}
	mLogger.InfoContext(r.Context(), "Entry deleted successfully", "resource", h.label, slog.Int64("ID", id))
	w.WriteHeader(http.StatusNoContent)
}
