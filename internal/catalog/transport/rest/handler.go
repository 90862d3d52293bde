// Package rest provides HTTP handlers for the catalog's REST API.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/abgdnv/gocatalog/pkg/web"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// loggerWithReqID creates a logger with the request ID from the context.
func loggerWithReqID(logger *slog.Logger, r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return logger.With("request_id", reqID)
}

// decodeValid decodes the JSON request body into T and runs struct
// validation on it. On failure it writes the error response and reports
// false; handlers return immediately in that case.
func decodeValid[T any](w http.ResponseWriter, r *http.Request, validate *validator.Validate, logger *slog.Logger) (T, bool) {
	var dto T
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		logger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, logger, http.StatusBadRequest, "Invalid request body")
		return dto, false
	}
	if err := validate.Struct(dto); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			// Extract field-specific errors for the response body.
			errorResponse := make(map[string]string)
			for _, fieldErr := range validationErrors {
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			logger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			web.RespondJSON(w, logger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
			return dto, false
		}
		logger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, logger, http.StatusBadRequest, "Invalid request body")
		return dto, false
	}
	return dto, true
}
