package model

// Role is a user's authorization role.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is an account entity. Email is the natural secondary key and is
// what audit records reference.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
}
