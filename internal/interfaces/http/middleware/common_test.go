package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corsEngine(cfg CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(CORSWithConfig(cfg))
	engine.GET("/companies", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return engine
}

func TestCORS_AllowedOrigin(t *testing.T) {
	engine := corsEngine(CORSConfig{
		AllowOrigins:     []string{"https://app.gestionale.it"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	})

	req := httptest.NewRequest(http.MethodGet, "/companies", nil)
	req.Header.Set("Origin", "https://app.gestionale.it")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://app.gestionale.it", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "X-Request-ID", rec.Header().Get("Access-Control-Expose-Headers"))
	assert.Equal(t, "3600", rec.Header().Get("Access-Control-Max-Age"))
}

func TestCORS_DeniedOriginGetsNoHeaders(t *testing.T) {
	engine := corsEngine(CORSConfig{AllowOrigins: []string{"https://app.gestionale.it"}})

	req := httptest.NewRequest(http.MethodGet, "/companies", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, "request still served, browser enforces the block")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_EmptyWhitelistRejectsAll(t *testing.T) {
	engine := corsEngine(DefaultCORSConfig())

	req := httptest.NewRequest(http.MethodGet, "/companies", nil)
	req.Header.Set("Origin", "https://app.gestionale.it")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_WildcardSkipsCredentials(t *testing.T) {
	engine := corsEngine(CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET"},
		AllowCredentials: true,
	})

	req := httptest.NewRequest(http.MethodGet, "/companies", nil)
	req.Header.Set("Origin", "https://anything.example.com")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_Preflight(t *testing.T) {
	engine := corsEngine(CORSConfig{
		AllowOrigins: []string{"https://app.gestionale.it"},
		AllowMethods: []string{"GET", "POST", "PUT"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	})

	t.Run("allowed origin gets headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/companies", nil)
		req.Header.Set("Origin", "https://app.gestionale.it")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://app.gestionale.it", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, POST, PUT", rec.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("denied origin still gets 204", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/companies", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRequestID_Generated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID())

	var seen string
	engine.GET("/ping", func(c *gin.Context) {
		seen = c.GetString("request_id")
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.NotEmpty(t, seen)
	assert.Len(t, seen, 32, "hex of 16 random bytes")
	assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
}

func TestRequestID_PropagatesCallerID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "caller-supplied-id")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, "caller-supplied-id", rec.Header().Get("X-Request-ID"))
}

func TestSecure_DefaultHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(Secure())
	engine.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'self'")
	assert.NotEmpty(t, rec.Header().Get("Permissions-Policy"))
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"), "HSTS off by default")
}

func TestSecure_HSTS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(SecureWithConfig(SecurityConfig{
		HSTSEnabled:           true,
		HSTSMaxAge:            86400,
		HSTSIncludeSubdomains: true,
		HSTSPreload:           true,
	}))
	engine.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, "max-age=86400; includeSubDomains; preload", rec.Header().Get("Strict-Transport-Security"))
}
