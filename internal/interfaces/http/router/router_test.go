package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())

	assert.NotNil(t, r)
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	r := NewRouter(gin.New(), WithAPIVersion("v2"))

	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterRegister(t *testing.T) {
	r := NewRouter(gin.New())
	r.Register(NewDomainGroup("registry", "/registry"))

	assert.Len(t, r.registrars, 1)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v1"))

	group := NewDomainGroup("registry", "/registry")
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	r.Register(group)
	r.Setup()

	w := serve(engine, "GET", "/api/v1/registry/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestDomainGroupNameAndPrefix(t *testing.T) {
	g := NewDomainGroup("registry", "/registry")

	assert.Equal(t, "registry", g.Name())
	assert.Equal(t, "/registry", g.Prefix())
}

func TestDomainGroupVerbs(t *testing.T) {
	tests := []struct {
		method   string
		register func(g *DomainGroup, h gin.HandlerFunc)
		status   int
	}{
		{http.MethodGet, func(g *DomainGroup, h gin.HandlerFunc) { g.GET("/items/:id", h) }, http.StatusOK},
		{http.MethodPost, func(g *DomainGroup, h gin.HandlerFunc) { g.POST("/items/:id", h) }, http.StatusCreated},
		{http.MethodPut, func(g *DomainGroup, h gin.HandlerFunc) { g.PUT("/items/:id", h) }, http.StatusOK},
		{http.MethodPatch, func(g *DomainGroup, h gin.HandlerFunc) { g.PATCH("/items/:id", h) }, http.StatusOK},
		{http.MethodDelete, func(g *DomainGroup, h gin.HandlerFunc) { g.DELETE("/items/:id", h) }, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			engine := gin.New()
			g := NewDomainGroup("test", "/test")
			status := tt.status
			tt.register(g, func(c *gin.Context) {
				c.String(status, "")
			})
			g.RegisterRoutes(engine.Group("/api/v1"))

			w := serve(engine, tt.method, "/api/v1/test/items/42")
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestDomainGroupMiddleware(t *testing.T) {
	engine := gin.New()
	g := NewDomainGroup("test", "/test")
	g.Use(func(c *gin.Context) {
		c.Header("X-Test-Middleware", "applied")
		c.Next()
	})
	g.GET("/items", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	g.RegisterRoutes(engine.Group("/api/v1"))

	w := serve(engine, "GET", "/api/v1/test/items")
	assert.Equal(t, "applied", w.Header().Get("X-Test-Middleware"))
}

func TestDomainGroupSubgroups(t *testing.T) {
	engine := gin.New()
	g := NewDomainGroup("registry", "/registry")

	g.Group("companies", "/companies").GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "companies list")
	})
	g.Group("people", "/people").GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "people list")
	})

	g.RegisterRoutes(engine.Group("/api/v1"))

	w := serve(engine, "GET", "/api/v1/registry/companies")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "companies list", w.Body.String())

	w = serve(engine, "GET", "/api/v1/registry/people")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "people list", w.Body.String())
}

func TestMultipleDomainGroups(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	registry := NewDomainGroup("registry", "/registry")
	registry.GET("/companies", func(c *gin.Context) {
		c.String(http.StatusOK, "companies")
	})

	agreements := NewDomainGroup("agreement", "/agreements")
	agreements.GET("/ccnls", func(c *gin.Context) {
		c.String(http.StatusOK, "ccnls")
	})

	r.Register(registry).Register(agreements)
	r.Setup()

	w := serve(engine, "GET", "/api/v1/registry/companies")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "companies", w.Body.String())

	w = serve(engine, "GET", "/api/v1/agreements/ccnls")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ccnls", w.Body.String())
}

func TestChainedMethodCalls(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	g := NewDomainGroup("test", "/test")
	g.GET("/a", func(c *gin.Context) { c.String(http.StatusOK, "a") }).
		POST("/b", func(c *gin.Context) { c.String(http.StatusOK, "b") }).
		PUT("/c", func(c *gin.Context) { c.String(http.StatusOK, "c") })

	r.Register(g).Setup()

	for _, tt := range []struct{ method, path string }{
		{"GET", "/api/v1/test/a"},
		{"POST", "/api/v1/test/b"},
		{"PUT", "/api/v1/test/c"},
	} {
		w := serve(engine, tt.method, tt.path)
		assert.Equal(t, http.StatusOK, w.Code, "%s %s", tt.method, tt.path)
	}
}
