package rest

import (
	"log/slog"
	"net/http"

	"github.com/abgdnv/gocatalog/internal/catalog/service"
	"github.com/abgdnv/gocatalog/pkg/web"
	"github.com/go-chi/chi/v5"
)

// AuditHandler serves the audit trail. Access is restricted to admins.
type AuditHandler struct {
	service *service.AuditService
	logger  *slog.Logger
}

// NewAuditHandler creates a new AuditHandler with the provided service.
func NewAuditHandler(service *service.AuditService, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{
		service: service,
		logger:  logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the audit routes behind the given middleware
// chain; requireAdmin must run after requireAuth.
func (h *AuditHandler) RegisterRoutes(r chi.Router, requireAuth, requireAdmin func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Use(requireAdmin)
		r.Get("/api/v1/audit", h.FindAll)
	})
}

// FindAll retrieves the audit trail, optionally filtered by the actor
// query parameter.
func (h *AuditHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(h.logger, r)

	var list []service.AuditDto
	if actor := r.URL.Query().Get("actor"); actor != "" {
		list = h.service.FindByActor(actor)
	} else {
		list = h.service.FindAll()
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved audit trail", "count", len(list))
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}
