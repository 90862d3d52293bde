package repository

import (
	cerrors "github.com/abgdnv/gocatalog/internal/catalog/errors"
	"github.com/abgdnv/gocatalog/internal/catalog/model"
	"github.com/abgdnv/gocatalog/internal/catalog/store"
)

const userEmailIndex = "email"

// UserRepository is the typed façade over the user store. Email is the
// natural secondary key, indexed so audit writes can resolve an actor
// without scanning.
type UserRepository struct {
	store *store.Store[model.User]
}

func NewUserRepository() *UserRepository {
	s := store.New[model.User](
		func(u model.User) int64 { return u.ID },
		func(u model.User, id int64) model.User { u.ID = id; return u },
	)
	s.AddIndex(userEmailIndex, func(u model.User) string { return u.Email })
	return &UserRepository{store: s}
}

func (r *UserRepository) Create(u model.User) model.User {
	return r.store.Add(u)
}

// FindByID returns ErrUserNotFound if no user exists with the given id.
func (r *UserRepository) FindByID(id int64) (*model.User, error) {
	u, ok := r.store.FindByID(id)
	if !ok {
		return nil, cerrors.ErrUserNotFound
	}
	return &u, nil
}

// FindByEmail resolves the email through the secondary index.
// Returns ErrUserNotFound if no user carries the given email.
func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	matches := r.store.FindByIndex(userEmailIndex, email)
	if len(matches) == 0 {
		return nil, cerrors.ErrUserNotFound
	}
	return &matches[0], nil
}

func (r *UserRepository) FindAll() []model.User {
	return r.store.FindAll()
}

// Update returns ErrUserNotFound if no user exists with the given id.
func (r *UserRepository) Update(u model.User) (*model.User, error) {
	updated, ok := r.store.Update(u)
	if !ok {
		return nil, cerrors.ErrUserNotFound
	}
	return &updated, nil
}

// Delete returns ErrUserNotFound if no user exists with the given id.
func (r *UserRepository) Delete(id int64) error {
	if !r.store.Delete(id) {
		return cerrors.ErrUserNotFound
	}
	return nil
}
