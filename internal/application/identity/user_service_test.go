package identity

import (
	"context"
	"testing"

	domain "github.com/gestionale/backend/internal/domain/identity"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestUserServiceCreate(t *testing.T) {
	t.Run("creates a user with a fresh email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		directory := new(MockDirectory)
		svc := NewUserService(uuid.New(), userRepo, directory)

		directory.On("FindByEmail", mock.Anything, "nuovo@example.com").Return(nil, shared.ErrNotFound)
		userRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		resp, err := svc.Create(context.Background(), UserModel{
			Email:    "Nuovo@Example.com",
			Name:     "Nuovo Utente",
			Password: "password-123",
		})
		require.NoError(t, err)

		assert.Equal(t, "nuovo@example.com", resp.Email)
		assert.Equal(t, "active", resp.Status)
		userRepo.AssertExpectations(t)
	})

	t.Run("rejects an email registered anywhere", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		directory := new(MockDirectory)
		svc := NewUserService(uuid.New(), userRepo, directory)

		_, existing := activeAccount(t)
		directory.On("FindByEmail", mock.Anything, existing.Email).Return(existing, nil)

		_, err := svc.Create(context.Background(), UserModel{
			Email:    existing.Email,
			Name:     "Doppione",
			Password: "password-123",
		})
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
		userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestUserServiceChangePassword(t *testing.T) {
	t.Run("changes password when current one matches", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(uuid.New(), userRepo, new(MockDirectory))
		_, user := activeAccount(t)

		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		userRepo.On("Save", mock.Anything, user).Return(nil)

		require.NoError(t, svc.ChangePassword(context.Background(), user.ID, "correct-horse-battery", "new-password-456"))
		assert.True(t, user.CheckPassword("new-password-456"))
	})

	t.Run("rejects a wrong current password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(uuid.New(), userRepo, new(MockDirectory))
		_, user := activeAccount(t)

		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		err := svc.ChangePassword(context.Background(), user.ID, "wrong", "new-password-456")
		require.Error(t, err)
		assert.True(t, user.CheckPassword("correct-horse-battery"))
		userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestUserServiceDeactivate(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewUserService(uuid.New(), userRepo, new(MockDirectory))
	_, user := activeAccount(t)

	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("Save", mock.Anything, user).Return(nil)

	require.NoError(t, svc.Deactivate(context.Background(), user.ID))
	assert.False(t, user.IsActive())
}

func TestTenantServiceRegister(t *testing.T) {
	t.Run("creates tenant and first user", func(t *testing.T) {
		tenantRepo := new(MockTenantRepository)
		directory := new(MockDirectory)
		svc := NewTenantService(tenantRepo, directory, zap.NewNop())

		directory.On("FindByEmail", mock.Anything, "titolare@studio.it").Return(nil, shared.ErrNotFound)
		tenantRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.Tenant")).Return(nil)
		directory.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		resp, err := svc.Register(context.Background(), RegisterTenantInput{
			TenantName: "Studio Verdi",
			Email:      "titolare@studio.it",
			UserName:   "Giulia Verdi",
			Password:   "password-123",
		})
		require.NoError(t, err)

		assert.Equal(t, "Studio Verdi", resp.Name)
		assert.Equal(t, "active", resp.Status)
		tenantRepo.AssertExpectations(t)
		directory.AssertExpectations(t)
	})

	t.Run("rejects an already registered email", func(t *testing.T) {
		tenantRepo := new(MockTenantRepository)
		directory := new(MockDirectory)
		svc := NewTenantService(tenantRepo, directory, zap.NewNop())
		_, existing := activeAccount(t)

		directory.On("FindByEmail", mock.Anything, existing.Email).Return(existing, nil)

		_, err := svc.Register(context.Background(), RegisterTenantInput{
			TenantName: "Studio Verdi",
			Email:      existing.Email,
			UserName:   "Giulia Verdi",
			Password:   "password-123",
		})
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
		tenantRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
