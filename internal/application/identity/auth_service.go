package identity

import (
	"context"
	"errors"
	"time"

	domain "github.com/gestionale/backend/internal/domain/identity"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/gestionale/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles authentication operations
type AuthService struct {
	directory  domain.Directory
	tenantRepo domain.TenantRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	directory domain.Directory,
	tenantRepo domain.TenantRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		directory:  directory,
		tenantRepo: tenantRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Login authenticates a user and returns tokens. Failed lookups and bad
// passwords return the same error so the response does not leak which
// emails exist.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.directory.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login attempt for unknown email")
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
		}
		return nil, err
	}

	if !user.CheckPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("user_id", user.ID.String()))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if !user.IsActive() {
		s.logger.Warn("Login attempt for deactivated account", zap.String("user_id", user.ID.String()))
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}

	tenant, err := s.tenantRepo.FindByID(ctx, user.TenantID)
	if err != nil {
		s.logger.Error("Failed to resolve tenant at login", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to resolve tenant account")
	}
	if !tenant.IsActive() {
		s.logger.Warn("Login attempt for suspended tenant", zap.String("tenant_id", tenant.ID.String()))
		return nil, shared.NewDomainError("TENANT_SUSPENDED", "Tenant account is suspended")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		TenantID: user.TenantID,
		UserID:   user.ID,
		Email:    user.Email,
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	user.RecordLogin(time.Now())
	if err := s.directory.Save(ctx, user); err != nil {
		// Login still succeeds; the stamp is best effort
		s.logger.Error("Failed to record login time", zap.Error(err))
	}

	s.logger.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("tenant_id", user.TenantID.String()))

	return &LoginResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		User:                  toUserInfo(user),
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair. Revoked
// refresh tokens are rejected.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid refresh token")
	}

	revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		s.logger.Error("Failed to check token blacklist", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to verify token")
	}
	if revoked {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Refresh token has been revoked")
	}

	invalidated, err := s.blacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.GetIssuedAtTime())
	if err != nil {
		s.logger.Error("Failed to check user token invalidation", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to verify token")
	}
	if invalidated {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Session has been terminated")
	}

	pair, err := s.jwtService.RefreshTokenPair(refreshToken)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid refresh token")
	}

	// The old refresh token is single use
	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		s.logger.Error("Failed to revoke used refresh token", zap.Error(err))
	}

	return pair, nil
}

// Logout revokes the presented tokens. Unknown or already expired tokens are
// ignored so logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	if claims, err := s.jwtService.ValidateAccessToken(accessToken); err == nil {
		if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
			s.logger.Error("Failed to revoke access token", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke token")
		}
	}
	if refreshToken != "" {
		if claims, err := s.jwtService.ValidateRefreshToken(refreshToken); err == nil {
			if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
				s.logger.Error("Failed to revoke refresh token", zap.Error(err))
				return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke token")
			}
		}
	}
	return nil
}
