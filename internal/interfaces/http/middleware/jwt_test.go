package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gestionale/backend/internal/infrastructure/auth"
	"github.com/gestionale/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-that-is-long-enough",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "gestionale-test",
	})
}

func issueTokenPair(t *testing.T, svc *auth.JWTService) *auth.TokenPair {
	t.Helper()
	pair, err := svc.GenerateTokenPair(auth.GenerateTokenInput{
		TenantID: uuid.New(),
		UserID:   uuid.New(),
		Email:    "anna@studiorossi.it",
	})
	require.NoError(t, err)
	return pair
}

func newProtectedRouter(cfg JWTMiddlewareConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(JWTAuthMiddlewareWithConfig(cfg))
	handler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"tenant_id": GetJWTTenantID(c), "user_id": GetJWTUserID(c)})
	}
	engine.GET("/api/v1/companies", handler)
	engine.POST("/api/v1/auth/login", handler)
	return engine
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	engine := newProtectedRouter(DefaultJWTConfig(newTestJWTService()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_SkipPath(t *testing.T) {
	engine := newProtectedRouter(DefaultJWTConfig(newTestJWTService()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	svc := newTestJWTService()
	pair := issueTokenPair(t, svc)
	engine := newProtectedRouter(DefaultJWTConfig(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+pair.AccessToken)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tenant_id")
}

func TestJWTAuthMiddleware_RefreshTokenRejected(t *testing.T) {
	svc := newTestJWTService()
	pair := issueTokenPair(t, svc)
	engine := newProtectedRouter(DefaultJWTConfig(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+pair.RefreshToken)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_RevokedToken(t *testing.T) {
	svc := newTestJWTService()
	pair := issueTokenPair(t, svc)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	blacklist := auth.NewInMemoryTokenBlacklist()
	require.NoError(t, blacklist.AddToBlacklist(context.Background(), claims.ID, time.Hour))

	cfg := DefaultJWTConfig(svc)
	cfg.TokenBlacklist = blacklist
	engine := newProtectedRouter(cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+pair.AccessToken)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_REVOKED")
}
