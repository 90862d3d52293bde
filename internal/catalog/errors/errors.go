// Package errors provides the typed failure values surfaced by the
// catalog's repository and service layers. The store itself never raises
// for absence; these sentinels are how the layers above report it.
package errors

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrBrandNotFound    = errors.New("brand not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrUserNotFound     = errors.New("user not found")

	ErrDuplicateName      = errors.New("name already in use")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
