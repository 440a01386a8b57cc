package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserStatus represents the status of a user
type UserStatus string

const (
	UserStatusActive      UserStatus = "active"
	UserStatusDeactivated UserStatus = "deactivated"
)

const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User is an operator account belonging to a tenant. Emails are globally
// unique so a login can be resolved before any tenant binding exists.
type User struct {
	shared.TenantEntity
	Email        string     `gorm:"type:varchar(200);not null;uniqueIndex:idx_users_email"`
	Name         string     `gorm:"type:varchar(200);not null"`
	PasswordHash string     `gorm:"type:varchar(100);not null"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:'active'"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new active user with a hashed password
func NewUser(tenantID uuid.UUID, email, name, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Email is not valid")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "User name cannot be empty")
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Status:       UserStatusActive,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the user's password
func (u *User) ChangePassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	u.PasswordHash = string(hash)
	u.UpdatedAt = time.Now()
	return nil
}

// RecordLogin stamps the last successful login time
func (u *User) RecordLogin(at time.Time) {
	u.LastLoginAt = &at
}

// IsActive reports whether the user may log in
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// Deactivate blocks the user account
func (u *User) Deactivate() {
	u.Status = UserStatusDeactivated
	u.UpdatedAt = time.Now()
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_INPUT", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		// bcrypt truncates input beyond 72 bytes
		return shared.NewDomainError("INVALID_INPUT", "Password cannot exceed 72 characters")
	}
	return nil
}
