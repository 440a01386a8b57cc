package identity

import (
	"testing"
	"time"

	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates active user", func(t *testing.T) {
		user, err := NewUser(tenantID, "Anna.Verdi@Studio.it", "Anna Verdi", "s3cret-pass")
		require.NoError(t, err)

		assert.Equal(t, "anna.verdi@studio.it", user.Email)
		assert.Equal(t, tenantID, user.TenantID)
		assert.True(t, user.IsActive())
		assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := NewUser(tenantID, "not-an-email", "Anna", "s3cret-pass")
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser(tenantID, "a@b.it", "Anna", "short")
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})
}

func TestUserCheckPassword(t *testing.T) {
	user, err := NewUser(uuid.New(), "a@b.it", "Anna", "correct-horse")
	require.NoError(t, err)

	assert.True(t, user.CheckPassword("correct-horse"))
	assert.False(t, user.CheckPassword("wrong-horse"))
}

func TestUserChangePassword(t *testing.T) {
	user, err := NewUser(uuid.New(), "a@b.it", "Anna", "first-password")
	require.NoError(t, err)

	require.NoError(t, user.ChangePassword("second-password"))
	assert.False(t, user.CheckPassword("first-password"))
	assert.True(t, user.CheckPassword("second-password"))

	assert.Error(t, user.ChangePassword("nope"))
}

func TestUserLifecycle(t *testing.T) {
	user, err := NewUser(uuid.New(), "a@b.it", "Anna", "s3cret-pass")
	require.NoError(t, err)

	now := time.Now()
	user.RecordLogin(now)
	require.NotNil(t, user.LastLoginAt)
	assert.WithinDuration(t, now, *user.LastLoginAt, time.Second)

	user.Deactivate()
	assert.False(t, user.IsActive())
}

func TestTenant(t *testing.T) {
	tenant, err := NewTenant("Studio Paghe Bianchi")
	require.NoError(t, err)
	assert.True(t, tenant.IsActive())

	tenant.Suspend()
	assert.False(t, tenant.IsActive())

	_, err = NewTenant("")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}
