package web

import "context"

type requestIDKey struct{}

type userKey struct{}

// User is the authenticated identity carried in a request context.
type User struct {
	Email string
	Role  string
}

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns the request ID and a boolean indicating whether it was found.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}

// WithUser adds the authenticated identity to the context.
func WithUser(ctx context.Context, email, role string) context.Context {
	return context.WithValue(ctx, userKey{}, User{Email: email, Role: role})
}

// UserFromContext retrieves the authenticated identity from the context.
// Returns the identity and a boolean indicating whether it was found.
func UserFromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(userKey{}).(User)
	return user, ok
}
