package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedEngine(level zapcore.Level) (*gin.Engine, *observer.ObservedLogs) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(level)
	engine := gin.New()
	engine.Use(GinMiddleware(zap.New(core)))
	return engine, logs
}

func TestGinMiddleware_LogsSuccessAtInfo(t *testing.T) {
	engine, logs := observedEngine(zapcore.InfoLevel)
	engine.GET("/companies", func(c *gin.Context) {
		c.Set("request_id", "req-1")
		c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/companies?page=0", nil))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.InfoLevel, entry.Level)
	assert.Equal(t, "HTTP Request", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/companies", fields["path"])
	assert.Equal(t, "page=0", fields["query"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
}

func TestGinMiddleware_LogsClientErrorAtWarn(t *testing.T) {
	engine, logs := observedEngine(zapcore.InfoLevel)
	engine.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestGinMiddleware_LogsServerErrorAtError(t *testing.T) {
	engine, logs := observedEngine(zapcore.InfoLevel)
	engine.GET("/boom", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
}

func TestGinMiddleware_CollectsGinErrors(t *testing.T) {
	engine, logs := observedEngine(zapcore.InfoLevel)
	engine.GET("/fail", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
		c.Status(http.StatusBadRequest)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	require.Equal(t, 1, logs.Len())
	errs, ok := logs.All()[0].ContextMap()["errors"].([]string)
	require.True(t, ok)
	assert.Len(t, errs, 1)
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.ErrorLevel)
	engine := gin.New()
	engine.Use(Recovery(zap.New(core)))
	engine.GET("/panic", func(c *gin.Context) {
		panic("unassigned pointer")
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Panic recovered", entry.Message)
	assert.Equal(t, "unassigned pointer", entry.ContextMap()["error"])
}

func TestGetGinLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns request-scoped logger", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		scoped := zap.NewExample()
		c.Set(ginLoggerKey, scoped)
		assert.Same(t, scoped, GetGinLogger(c))
	})

	t.Run("returns nop without middleware", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.NotNil(t, GetGinLogger(c))
	})

	t.Run("returns nop on wrong type", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(ginLoggerKey, "not a logger")
		assert.NotNil(t, GetGinLogger(c))
	})
}
