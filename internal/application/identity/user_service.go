package identity

import (
	"context"
	"errors"

	domain "github.com/gestionale/backend/internal/domain/identity"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserService handles user management within one tenant
type UserService struct {
	tenantID  uuid.UUID
	userRepo  domain.UserRepository
	directory domain.Directory
}

// NewUserService creates a user service bound to a tenant
func NewUserService(tenantID uuid.UUID, userRepo domain.UserRepository, directory domain.Directory) *UserService {
	return &UserService{
		tenantID:  tenantID,
		userRepo:  userRepo,
		directory: directory,
	}
}

// Create creates a new user in the tenant. The email must not be registered
// anywhere, as emails are globally unique.
func (s *UserService) Create(ctx context.Context, model UserModel) (*UserResponse, error) {
	if _, err := s.directory.FindByEmail(ctx, model.Email); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Email is already registered")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	user, err := domain.NewUser(s.tenantID, model.Email, model.Name, model.Password)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID returns one user of the tenant
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ChangePassword replaces a user's password after verifying the current one
func (s *UserService) ChangePassword(ctx context.Context, id uuid.UUID, current, next string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !user.CheckPassword(current) {
		return shared.NewDomainError("INVALID_CREDENTIALS", "Current password is incorrect")
	}
	if err := user.ChangePassword(next); err != nil {
		return err
	}
	return s.userRepo.Save(ctx, user)
}

// Deactivate blocks a user account
func (s *UserService) Deactivate(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	user.Deactivate()
	return s.userRepo.Save(ctx, user)
}
