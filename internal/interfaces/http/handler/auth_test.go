package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	identityapp "github.com/gestionale/backend/internal/application/identity"
	identitydomain "github.com/gestionale/backend/internal/domain/identity"
	"github.com/gestionale/backend/internal/infrastructure/auth"
	"github.com/gestionale/backend/internal/infrastructure/config"
	"github.com/gestionale/backend/internal/interfaces/http/dto"
	"github.com/gestionale/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockDirectory is a mock implementation of identity.Directory
type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) FindByEmail(ctx context.Context, email string) (*identitydomain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identitydomain.User), args.Error(1)
}

func (m *MockDirectory) Save(ctx context.Context, user *identitydomain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockTenantRepository is a mock implementation of identity.TenantRepository
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) Save(ctx context.Context, tenant *identitydomain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*identitydomain.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identitydomain.Tenant), args.Error(1)
}

type authHandlerFixture struct {
	engine     *gin.Engine
	directory  *MockDirectory
	tenantRepo *MockTenantRepository
	jwtService *auth.JWTService
}

func newAuthHandlerFixture(t *testing.T) *authHandlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	fixture := &authHandlerFixture{
		directory:  new(MockDirectory),
		tenantRepo: new(MockTenantRepository),
		jwtService: auth.NewJWTService(config.JWTConfig{
			Secret:                 "test-secret-key-that-is-long-enough",
			AccessTokenExpiration:  15 * time.Minute,
			RefreshTokenExpiration: 24 * time.Hour,
			Issuer:                 "gestionale-test",
		}),
	}

	authService := identityapp.NewAuthService(
		fixture.directory,
		fixture.tenantRepo,
		fixture.jwtService,
		auth.NewInMemoryTokenBlacklist(),
		zap.NewNop(),
	)
	handler := NewAuthHandler(authService)

	engine := gin.New()
	engine.POST("/auth/login", handler.Login)
	engine.POST("/auth/refresh", handler.Refresh)
	engine.POST("/auth/logout", handler.Logout)

	fixture.engine = engine
	return fixture
}

func (f *authHandlerFixture) post(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	f.engine.ServeHTTP(w, req)
	return w
}

func activeTenantAndUser(t *testing.T) (*identitydomain.Tenant, *identitydomain.User) {
	t.Helper()
	tenant, err := identitydomain.NewTenant("Studio Rossi")
	require.NoError(t, err)
	user, err := identitydomain.NewUser(tenant.ID, "anna@studiorossi.it", "Anna Rossi", "correct-horse-battery")
	require.NoError(t, err)
	return tenant, user
}

func TestAuthHandler_Login(t *testing.T) {
	f := newAuthHandlerFixture(t)
	tenant, user := activeTenantAndUser(t)

	f.directory.On("FindByEmail", mock.Anything, "anna@studiorossi.it").Return(user, nil)
	f.tenantRepo.On("FindByID", mock.Anything, tenant.ID).Return(tenant, nil)
	f.directory.On("Save", mock.Anything, user).Return(nil)

	w := f.post(t, "/auth/login", gin.H{
		"email":    "anna@studiorossi.it",
		"password": "correct-horse-battery",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                    `json:"success"`
		Data    identityapp.LoginResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.AccessToken)
	assert.NotEmpty(t, resp.Data.RefreshToken)
	assert.Equal(t, "anna@studiorossi.it", resp.Data.User.Email)
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	f := newAuthHandlerFixture(t)
	_, user := activeTenantAndUser(t)

	f.directory.On("FindByEmail", mock.Anything, "anna@studiorossi.it").Return(user, nil)

	w := f.post(t, "/auth/login", gin.H{
		"email":    "anna@studiorossi.it",
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeInvalidCredentials, resp.Error.Code)
}

func TestAuthHandler_LoginMalformedPayload(t *testing.T) {
	f := newAuthHandlerFixture(t)

	w := f.post(t, "/auth/login", gin.H{"email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Fields, "email")
	assert.Contains(t, resp.Error.Fields, "password")
	f.directory.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestAuthHandler_Refresh(t *testing.T) {
	f := newAuthHandlerFixture(t)

	pair, err := f.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		TenantID: uuid.New(),
		UserID:   uuid.New(),
		Email:    "anna@studiorossi.it",
	})
	require.NoError(t, err)

	w := f.post(t, "/auth/refresh", gin.H{"refresh_token": pair.RefreshToken})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data auth.TokenPair `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.AccessToken)

	// The presented refresh token was revoked in the exchange
	w = f.post(t, "/auth/refresh", gin.H{"refresh_token": pair.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_RefreshGarbageToken(t *testing.T) {
	f := newAuthHandlerFixture(t)

	w := f.post(t, "/auth/refresh", gin.H{"refresh_token": "garbage"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_LogoutIsIdempotent(t *testing.T) {
	f := newAuthHandlerFixture(t)

	pair, err := f.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		TenantID: uuid.New(),
		UserID:   uuid.New(),
		Email:    "anna@studiorossi.it",
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		payload, err := json.Marshal(gin.H{"refresh_token": pair.RefreshToken})
		require.NoError(t, err)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/logout", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.AuthHeaderKey, middleware.BearerPrefix+pair.AccessToken)
		f.engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	}
}
