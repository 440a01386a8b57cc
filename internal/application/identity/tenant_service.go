package identity

import (
	"context"
	"errors"

	domain "github.com/gestionale/backend/internal/domain/identity"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TenantService handles tenant account lifecycle
type TenantService struct {
	tenantRepo domain.TenantRepository
	directory  domain.Directory
	logger     *zap.Logger
}

// NewTenantService creates a new tenant service
func NewTenantService(tenantRepo domain.TenantRepository, directory domain.Directory, logger *zap.Logger) *TenantService {
	return &TenantService{
		tenantRepo: tenantRepo,
		directory:  directory,
		logger:     logger,
	}
}

// Register opens a new tenant account together with its first user
func (s *TenantService) Register(ctx context.Context, input RegisterTenantInput) (*TenantResponse, error) {
	if _, err := s.directory.FindByEmail(ctx, input.Email); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Email is already registered")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	tenant, err := domain.NewTenant(input.TenantName)
	if err != nil {
		return nil, err
	}
	user, err := domain.NewUser(tenant.ID, input.Email, input.UserName, input.Password)
	if err != nil {
		return nil, err
	}

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}
	if err := s.directory.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Tenant registered",
		zap.String("tenant_id", tenant.ID.String()),
		zap.String("user_id", user.ID.String()))

	return toTenantResponse(tenant), nil
}

// GetByID returns one tenant account
func (s *TenantService) GetByID(ctx context.Context, id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTenantResponse(tenant), nil
}

// Suspend blocks a tenant account; its users can no longer log in
func (s *TenantService) Suspend(ctx context.Context, id uuid.UUID) error {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	tenant.Suspend()
	return s.tenantRepo.Save(ctx, tenant)
}
