package service

import (
	"testing"

	cerrors "github.com/abgdnv/gocatalog/internal/catalog/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_UserService_Register(t *testing.T) {
	// given
	f := newFixture()
	// when
	created, err := f.users.Register(RegisterDto{Email: "alice@example.com", Password: "s3cret-pass"})
	// then
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.Equal(t, "USER", created.Role)
	// the stored hash is not the plaintext password
	stored, err := f.userRepo.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
}

func Test_UserService_Register_DuplicateEmail(t *testing.T) {
	// given
	f := newFixture()
	_, err := f.users.Register(RegisterDto{Email: "alice@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	// when
	_, err = f.users.Register(RegisterDto{Email: "alice@example.com", Password: "another-pass"})
	// then
	assert.ErrorIs(t, err, cerrors.ErrUserAlreadyExists)
	assert.Len(t, f.userRepo.FindAll(), 1)
}

func Test_UserService_Login(t *testing.T) {
	// given
	f := newFixture()
	_, err := f.users.Register(RegisterDto{Email: "alice@example.com", Password: "s3cret-pass", Role: "ADMIN"})
	require.NoError(t, err)
	// when
	token, err := f.users.Login(CredentialsDto{Email: "alice@example.com", Password: "s3cret-pass"})
	// then
	require.NoError(t, err)
	claims, err := f.tokens.Verify(token.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
	// and the successful attempt is on the trail
	trail := f.audit.FindByActor("alice@example.com")
	require.Len(t, trail, 1)
	assert.Equal(t, "SUCCESS", trail[0].Outcome)
}

func Test_UserService_Login_WrongPassword(t *testing.T) {
	// given
	f := newFixture()
	_, err := f.users.Register(RegisterDto{Email: "alice@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	// when
	_, err = f.users.Login(CredentialsDto{Email: "alice@example.com", Password: "wrong"})
	// then
	assert.ErrorIs(t, err, cerrors.ErrInvalidCredentials)
	trail := f.audit.FindByActor("alice@example.com")
	require.Len(t, trail, 1)
	assert.Equal(t, "FAIL", trail[0].Outcome)
}

func Test_UserService_Login_UnknownEmail(t *testing.T) {
	// given
	f := newFixture()
	// when
	_, err := f.users.Login(CredentialsDto{Email: "ghost@example.com", Password: "whatever"})
	// then: same failure as a wrong password, and no trail entry since
	// the actor does not resolve
	assert.ErrorIs(t, err, cerrors.ErrInvalidCredentials)
	assert.Empty(t, f.audit.FindAll())
}
