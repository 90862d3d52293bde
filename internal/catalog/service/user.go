package service

import (
	"fmt"
	"time"

	cerrors "github.com/abgdnv/gocatalog/internal/catalog/errors"
	"github.com/abgdnv/gocatalog/internal/catalog/model"
	"github.com/abgdnv/gocatalog/internal/catalog/repository"
	"github.com/abgdnv/gocatalog/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

// UserService manages accounts: registration with unique emails and
// bcrypt-hashed passwords, and login exchanging credentials for a token.
type UserService struct {
	users  *repository.UserRepository
	tokens *auth.TokenManager
	audit  *AuditService
}

// NewUserService creates a new UserService with the provided dependencies.
func NewUserService(users *repository.UserRepository, tokens *auth.TokenManager, audit *AuditService) *UserService {
	return &UserService{
		users:  users,
		tokens: tokens,
		audit:  audit,
	}
}

// RegisterDto represents the data transfer object for creating a new user.
type RegisterDto struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"omitempty,oneof=USER ADMIN"`
}

// CredentialsDto represents a login request.
type CredentialsDto struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserDto represents the data transfer object for a user. The password
// hash never leaves the service layer.
type UserDto struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TokenDto carries an issued token and its expiry.
type TokenDto struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Register creates a new account.
// Returns ErrUserAlreadyExists when the email is already taken.
func (s *UserService) Register(user RegisterDto) (*UserDto, error) {
	if _, err := s.users.FindByEmail(user.Email); err == nil {
		return nil, fmt.Errorf("email %s: %w", user.Email, cerrors.ErrUserAlreadyExists)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	role := model.RoleUser
	if user.Role != "" {
		role = model.Role(user.Role)
	}
	created := s.users.Create(model.User{
		Email:        user.Email,
		PasswordHash: string(hash),
		Role:         role,
	})
	return toUserDto(&created), nil
}

// Login verifies the credentials and issues a token. Both an unknown
// email and a wrong password yield ErrInvalidCredentials so the response
// does not reveal which part failed. Attempts by known users are audited
// either way.
func (s *UserService) Login(credentials CredentialsDto) (*TokenDto, error) {
	user, err := s.users.FindByEmail(credentials.Email)
	if err != nil {
		// The audit write is a no-op for an unknown actor.
		s.audit.Record(credentials.Email, model.ActionLogin, model.OutcomeFailure, "unknown email")
		return nil, cerrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		s.audit.Record(user.Email, model.ActionLogin, model.OutcomeFailure, "wrong password")
		return nil, cerrors.ErrInvalidCredentials
	}
	token, expiresAt, err := s.tokens.Issue(user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to issue token for %s: %w", user.Email, err)
	}
	s.audit.Record(user.Email, model.ActionLogin, model.OutcomeSuccess, "")
	return &TokenDto{Token: token, ExpiresAt: expiresAt}, nil
}

// FindByEmail retrieves a user by email.
// Returns ErrUserNotFound if no user carries the given email.
func (s *UserService) FindByEmail(email string) (*UserDto, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user by email %s: %w", email, err)
	}
	return toUserDto(user), nil
}

// toUserDto converts a model.User to a UserDto.
func toUserDto(u *model.User) *UserDto {
	return &UserDto{
		ID:    u.ID,
		Email: u.Email,
		Role:  string(u.Role),
	}
}
