package identity

import (
	"time"

	domain "github.com/gestionale/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// LoginInput contains the credentials presented at login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserInfo represents the authenticated user in login responses
type UserInfo struct {
	ID          uuid.UUID  `json:"id"`
	TenantID    uuid.UUID  `json:"tenant_id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// LoginResult contains the issued tokens and the authenticated user
type LoginResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
	User                  UserInfo  `json:"user"`
}

// RegisterTenantInput contains the payload for opening a tenant account
// together with its first user.
type RegisterTenantInput struct {
	TenantName string `json:"tenant_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	UserName   string `json:"user_name" binding:"required"`
	Password   string `json:"password" binding:"required,min=8"`
}

// UserModel is the inbound payload for creating a user within a tenant
type UserModel struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// UserResponse represents a user in responses
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TenantResponse represents a tenant account in responses
type TenantResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserInfo(user *domain.User) UserInfo {
	return UserInfo{
		ID:          user.ID,
		TenantID:    user.TenantID,
		Email:       user.Email,
		Name:        user.Name,
		LastLoginAt: user.LastLoginAt,
	}
}

func toUserResponse(user *domain.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Status:      string(user.Status),
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}

func toTenantResponse(tenant *domain.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:        tenant.ID,
		Name:      tenant.Name,
		Status:    string(tenant.Status),
		CreatedAt: tenant.CreatedAt,
	}
}
