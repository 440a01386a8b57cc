package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gestionale/backend/internal/infrastructure/auth"
	"github.com/gestionale/backend/internal/infrastructure/logger"
	"github.com/gestionale/backend/internal/interfaces/http/dto"
)

// Context keys under which validated claims are stored for handlers.
const (
	JWTClaimsKey   = "jwt_claims"
	JWTUserIDKey   = "jwt_user_id"
	JWTTenantIDKey = "jwt_tenant_id"
	JWTEmailKey    = "jwt_email"
	AuthHeaderKey  = "Authorization"
	BearerPrefix   = "Bearer "
)

// JWTMiddlewareConfig configures JWTAuthMiddlewareWithConfig.
type JWTMiddlewareConfig struct {
	JWTService *auth.JWTService
	// TokenBlacklist is optional; when nil revocation is not checked.
	TokenBlacklist auth.TokenBlacklist
	// SkipPaths bypass authentication on exact match.
	SkipPaths []string
	// SkipPathPrefixes bypass authentication on prefix match.
	SkipPathPrefixes []string
	// OnError replaces the default 401 JSON response when set.
	OnError func(c *gin.Context, err error)
	Logger  *zap.Logger
}

// DefaultJWTConfig skips the endpoints a client must reach before it can
// hold a token.
func DefaultJWTConfig(jwtService *auth.JWTService) JWTMiddlewareConfig {
	return JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/health",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/tenants/register",
		},
	}
}

func JWTAuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return JWTAuthMiddlewareWithConfig(DefaultJWTConfig(jwtService))
}

// JWTAuthMiddlewareWithConfig authenticates requests with a Bearer access
// token. Validated claims land in the gin context and the request context;
// the tenant id in particular is what scopes every downstream repository.
// Blacklist lookups fail open: a broken Redis must not take down reads.
func JWTAuthMiddlewareWithConfig(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pathSkipped(cfg, c.Request.URL.Path) {
			c.Next()
			return
		}

		token, err := bearerToken(c)
		if err != nil {
			rejectUnauthorized(c, cfg, err)
			return
		}

		claims, err := cfg.JWTService.ValidateAccessToken(token)
		if err != nil {
			rejectUnauthorized(c, cfg, err)
			return
		}

		if revoked := checkRevocation(c, cfg, claims); revoked {
			rejectUnauthorized(c, cfg, auth.ErrTokenBlacklisted)
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTUserIDKey, claims.UserID)
		c.Set(JWTTenantIDKey, claims.TenantID)
		c.Set(JWTEmailKey, claims.Email)

		ctx := c.Request.Context()
		log := logger.FromContext(ctx)
		ctx, _ = logger.WithUserID(ctx, log, claims.UserID)
		ctx, _ = logger.WithTenantID(ctx, log, claims.TenantID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func pathSkipped(cfg JWTMiddlewareConfig, path string) bool {
	for _, p := range cfg.SkipPaths {
		if path == p {
			return true
		}
	}
	for _, prefix := range cfg.SkipPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func bearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader(AuthHeaderKey)
	if header == "" || !strings.HasPrefix(header, BearerPrefix) {
		return "", auth.ErrInvalidToken
	}
	token := strings.TrimPrefix(header, BearerPrefix)
	if token == "" {
		return "", auth.ErrInvalidToken
	}
	return token, nil
}

func checkRevocation(c *gin.Context, cfg JWTMiddlewareConfig, claims *auth.Claims) bool {
	if cfg.TokenBlacklist == nil {
		return false
	}
	ctx := c.Request.Context()

	if claims.ID != "" {
		revoked, err := cfg.TokenBlacklist.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Error("Failed to check token blacklist",
					zap.String("jti", claims.ID), zap.Error(err))
			}
		} else if revoked {
			return true
		}
	}

	if claims.UserID != "" {
		invalidated, err := cfg.TokenBlacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.GetIssuedAtTime())
		if err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Error("Failed to check user token invalidation",
					zap.String("user_id", claims.UserID), zap.Error(err))
			}
		} else if invalidated {
			return true
		}
	}
	return false
}

func rejectUnauthorized(c *gin.Context, cfg JWTMiddlewareConfig, err error) {
	if cfg.OnError != nil {
		cfg.OnError(c, err)
		return
	}
	if cfg.Logger != nil {
		cfg.Logger.Warn("JWT authentication failed",
			zap.Error(err), zap.String("path", c.Request.URL.Path))
	}

	code, message := dto.ErrCodeUnauthorized, "Authentication required"
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		code, message = dto.ErrCodeTokenExpired, "Token has expired"
	case errors.Is(err, auth.ErrTokenBlacklisted):
		code, message = dto.ErrCodeTokenRevoked, "Token has been revoked"
	case errors.Is(err, auth.ErrInvalidTokenType):
		code, message = dto.ErrCodeTokenInvalid, "Invalid token type"
	case errors.Is(err, auth.ErrTokenNotYetValid):
		code, message = dto.ErrCodeTokenInvalid, "Token is not yet valid"
	case errors.Is(err, auth.ErrInvalidToken):
		code, message = dto.ErrCodeTokenInvalid, "Invalid token"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(code, message, c.GetString("request_id")))
}

// GetJWTClaims returns the validated claims, or nil outside the middleware.
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(JWTClaimsKey); ok {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

func GetJWTUserID(c *gin.Context) string {
	return c.GetString(JWTUserIDKey)
}

func GetJWTTenantID(c *gin.Context) string {
	return c.GetString(JWTTenantIDKey)
}

func GetJWTEmail(c *gin.Context) string {
	return c.GetString(JWTEmailKey)
}
