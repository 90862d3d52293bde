package rest

import (
	"errors"
	"log/slog"
	"net/http"

	cerrors "github.com/abgdnv/gocatalog/internal/catalog/errors"
	"github.com/abgdnv/gocatalog/internal/catalog/service"
	"github.com/abgdnv/gocatalog/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// UserHandler serves registration and login. Both endpoints are public.
type UserHandler struct {
	service  *service.UserService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewUserHandler creates a new UserHandler with the provided service.
func NewUserHandler(service *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the user routes.
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/users", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
	})
}

// Register creates a new account.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(h.logger, r)
	dto, ok := decodeValid[service.RegisterDto](w, r, h.validate, mLogger)
	if !ok {
		return
	}

	created, err := h.service.Register(dto)
	if err != nil {
		if errors.Is(err, cerrors.ErrUserAlreadyExists) {
			mLogger.WarnContext(r.Context(), "Registration rejected, email already taken", "email", dto.Email)
			web.RespondError(w, mLogger, http.StatusConflict, "Email is already registered")
			return
		}
		mLogger.ErrorContext(r.Context(), "Error registering user", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to register user")
		return
	}
	mLogger.InfoContext(r.Context(), "User registered successfully", slog.Int64("ID", created.ID))
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// Login exchanges credentials for a token.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(h.logger, r)
	dto, ok := decodeValid[service.CredentialsDto](w, r, h.validate, mLogger)
	if !ok {
		return
	}

	token, err := h.service.Login(dto)
	if err != nil {
		if errors.Is(err, cerrors.ErrInvalidCredentials) {
			mLogger.WarnContext(r.Context(), "Login rejected", "email", dto.Email)
			web.RespondError(w, mLogger, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		mLogger.ErrorContext(r.Context(), "Error logging in user", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to log in")
		return
	}
	mLogger.InfoContext(r.Context(), "User logged in successfully", "email", dto.Email)
	web.RespondJSON(w, mLogger, http.StatusOK, token)
}
