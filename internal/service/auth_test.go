package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/campuskit/careerfair-ui/internal/domain/auth"
	mocks "github.com/campuskit/careerfair-ui/internal/mocks/auth"
	"github.com/campuskit/careerfair-ui/internal/ports"
)

// mockSessionStore is a test helper for testing session store errors.
type mockSessionStore struct {
	saveFunc   func(context.Context, domainauth.Session) error
	getFunc    func(context.Context, string) (domainauth.Session, error)
	deleteFunc func(context.Context, string) error
}

func (m *mockSessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, sess)
	}
	return nil
}

func (m *mockSessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return domainauth.Session{}, nil
}

func (m *mockSessionStore) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func signTestToken(t *testing.T, userID int64, role domainauth.Role) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":    userID,
		"firstName": "Test",
		"lastName":  "User",
		"email":     "test.user@campus.edu",
		"role":      string(role),
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func TestNewAuthService_DefaultTTL(t *testing.T) {
	svc := NewAuthService(AuthServiceOptions{
		API:      mocks.NewMockAuthenticator(),
		Sessions: mocks.NewMemorySessionStore(),
	})

	assert.NotNil(t, svc)
	assert.Equal(t, defaultSessionTTL, svc.sessionTTL)
}

func TestAuthService_Login_Success(t *testing.T) {
	token := signTestToken(t, 42, domainauth.RoleAdmin)
	api := mocks.NewMockAuthenticator()
	api.Accounts["admin@campus.edu"] = token
	sessions := mocks.NewMemorySessionStore()

	svc := NewAuthService(AuthServiceOptions{API: api, Sessions: sessions})

	result, err := svc.Login(context.Background(), LoginInput{Email: "admin@campus.edu", Password: "pw"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Session.ID)
	assert.Equal(t, token, result.Session.Token)
	assert.Equal(t, int64(42), result.Session.UserID)
	assert.Equal(t, domainauth.RoleAdmin, result.Session.Role)
	assert.True(t, result.Session.ExpiresAt.After(time.Now()))

	// The stored record holds the same (credential, identity) pair.
	stored, err := sessions.Get(context.Background(), result.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Session.Token, stored.Token)
	assert.Equal(t, result.Session.Role, stored.Role)
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	sessions := mocks.NewMemorySessionStore()
	svc := NewAuthService(AuthServiceOptions{API: mocks.NewMockAuthenticator(), Sessions: sessions})

	for _, input := range []LoginInput{
		{},
		{Email: "admin@campus.edu"},
		{Password: "pw"},
	} {
		result, err := svc.Login(context.Background(), input)
		assert.ErrorIs(t, err, ports.ErrInvalidCredentials)
		assert.Nil(t, result)
	}
	assert.Equal(t, 0, sessions.Len())
}

func TestAuthService_Login_RejectedLeavesStoreUntouched(t *testing.T) {
	api := mocks.NewMockAuthenticator() // no known accounts
	sessions := mocks.NewMemorySessionStore()
	svc := NewAuthService(AuthServiceOptions{API: api, Sessions: sessions})

	result, err := svc.Login(context.Background(), LoginInput{Email: "nobody@campus.edu", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrInvalidCredentials)
	assert.Nil(t, result)
	assert.Equal(t, 0, sessions.Len())
}

func TestAuthService_Login_UndecodableToken(t *testing.T) {
	api := mocks.NewMockAuthenticator()
	api.Accounts["weird@campus.edu"] = "not-a-jwt"
	sessions := mocks.NewMemorySessionStore()
	svc := NewAuthService(AuthServiceOptions{API: api, Sessions: sessions})

	result, err := svc.Login(context.Background(), LoginInput{Email: "weird@campus.edu", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainauth.ErrDecode)
	assert.Nil(t, result)
	assert.Equal(t, 0, sessions.Len())
}

func TestAuthService_Login_SaveError(t *testing.T) {
	token := signTestToken(t, 7, domainauth.RoleStudent)
	api := mocks.NewMockAuthenticator()
	api.Accounts["student@campus.edu"] = token

	sessions := &mockSessionStore{
		saveFunc: func(context.Context, domainauth.Session) error {
			return errors.New("redis down")
		},
	}
	svc := NewAuthService(AuthServiceOptions{API: api, Sessions: sessions})

	result, err := svc.Login(context.Background(), LoginInput{Email: "student@campus.edu", Password: "pw"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save session")
	assert.Nil(t, result)
}

func TestAuthService_Register_PassesThroughValidationError(t *testing.T) {
	verr := &ports.ValidationError{Fields: map[string]string{"email": "already taken"}}
	api := &mocks.MockAuthenticator{
		RegisterFunc: func(context.Context, ports.Registration) error { return verr },
	}
	svc := NewAuthService(AuthServiceOptions{API: api, Sessions: mocks.NewMemorySessionStore()})

	err := svc.Register(context.Background(), ports.Registration{Email: "dup@campus.edu"})

	var got *ports.ValidationError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "already taken", got.Fields["email"])
}

func TestAuthService_Register_Success(t *testing.T) {
	api := mocks.NewMockAuthenticator()
	svc := NewAuthService(AuthServiceOptions{API: api, Sessions: mocks.NewMemorySessionStore()})

	reg := ports.Registration{FirstName: "Ada", LastName: "Lovelace", Email: "ada@campus.edu", Password: "s3cret"}
	require.NoError(t, svc.Register(context.Background(), reg))
	require.Len(t, api.Registered, 1)
	assert.Equal(t, reg, api.Registered[0])
}

func TestAuthService_GetSession_Success(t *testing.T) {
	token := signTestToken(t, 42, domainauth.RoleAdmin)
	api := mocks.NewMockAuthenticator()
	api.Accounts["admin@campus.edu"] = token
	sessions := mocks.NewMemorySessionStore()
	svc := NewAuthService(AuthServiceOptions{API: api, Sessions: sessions})

	result, err := svc.Login(context.Background(), LoginInput{Email: "admin@campus.edu", Password: "pw"})
	require.NoError(t, err)

	got, err := svc.GetSession(context.Background(), result.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Session.UserID, got.UserID)
	assert.Equal(t, result.Session.Role, got.Role)
}

func TestAuthService_GetSession_EmptyID(t *testing.T) {
	svc := NewAuthService(AuthServiceOptions{API: mocks.NewMockAuthenticator(), Sessions: mocks.NewMemorySessionStore()})

	got, err := svc.GetSession(context.Background(), "")
	require.Error(t, err)
	assert.Nil(t, got)
}

func TestAuthService_GetSession_NotFound(t *testing.T) {
	svc := NewAuthService(AuthServiceOptions{API: mocks.NewMockAuthenticator(), Sessions: mocks.NewMemorySessionStore()})

	got, err := svc.GetSession(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, mocks.ErrNotFound)
	assert.Nil(t, got)
}

func TestAuthService_GetSession_ExpiredIsDeleted(t *testing.T) {
	sessions := mocks.NewMemorySessionStore()
	sess := domainauth.Session{
		ID:        "sess-expired",
		Token:     signTestToken(t, 9, domainauth.RoleStudent),
		UserID:    9,
		Role:      domainauth.RoleStudent,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, sessions.Save(context.Background(), sess))

	svc := NewAuthService(AuthServiceOptions{API: mocks.NewMockAuthenticator(), Sessions: sessions})

	got, err := svc.GetSession(context.Background(), "sess-expired")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 0, sessions.Len())
}

func TestAuthService_GetSession_DriftedIdentityIsCleared(t *testing.T) {
	// The stored identity claims admin while the credential decodes to a
	// student. The record is untrusted and removed.
	sessions := mocks.NewMemorySessionStore()
	sess := domainauth.Session{
		ID:        "sess-drift",
		Token:     signTestToken(t, 9, domainauth.RoleStudent),
		UserID:    9,
		Role:      domainauth.RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, sessions.Save(context.Background(), sess))

	svc := NewAuthService(AuthServiceOptions{API: mocks.NewMockAuthenticator(), Sessions: sessions})

	got, err := svc.GetSession(context.Background(), "sess-drift")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainauth.ErrDecode)
	assert.Nil(t, got)
	assert.Equal(t, 0, sessions.Len())
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	token := signTestToken(t, 42, domainauth.RoleAdmin)
	api := mocks.NewMockAuthenticator()
	api.Accounts["admin@campus.edu"] = token
	sessions := mocks.NewMemorySessionStore()
	svc := NewAuthService(AuthServiceOptions{API: api, Sessions: sessions})

	result, err := svc.Login(context.Background(), LoginInput{Email: "admin@campus.edu", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), result.Session.ID))
	assert.Equal(t, 0, sessions.Len())

	// A second logout for the same id observes the same empty state.
	require.NoError(t, svc.Logout(context.Background(), result.Session.ID))
	require.NoError(t, svc.Logout(context.Background(), ""))
	assert.Equal(t, 0, sessions.Len())
}
