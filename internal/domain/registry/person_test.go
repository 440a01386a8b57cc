package registry

import (
	"testing"

	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBase(t *testing.T, tenantID uuid.UUID) *CompanyBase {
	t.Helper()
	base, err := NewCompanyBase(tenantID, uuid.New(), "Sede Centrale", "Piazza Duomo 1")
	require.NoError(t, err)
	return base
}

func TestNewPerson(t *testing.T) {
	tenantID := uuid.New()

	person, err := NewPerson(tenantID, "Mario Bianchi")
	require.NoError(t, err)
	assert.Equal(t, tenantID, person.TenantID)
	assert.False(t, person.IsAssigned())

	_, err = NewPerson(tenantID, "")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestPersonUpdate(t *testing.T) {
	person, err := NewPerson(uuid.New(), "Mario Bianchi")
	require.NoError(t, err)

	require.NoError(t, person.Update("Mario Bianchi", "Via Roma 10", "3331234567", "Mario.Bianchi@Example.com"))
	assert.Equal(t, "mario.bianchi@example.com", person.Email, "email is lower-cased")
}

func TestPersonAssignTo(t *testing.T) {
	tenantID := uuid.New()

	t.Run("assigns unassigned person", func(t *testing.T) {
		person, err := NewPerson(tenantID, "Mario Bianchi")
		require.NoError(t, err)
		base := newTestBase(t, tenantID)

		require.NoError(t, person.AssignTo(base, uuid.Nil))
		assert.True(t, person.IsAssigned())
		assert.Equal(t, base.ID, *person.CompanyBaseID)
	})

	t.Run("allows move within the same company", func(t *testing.T) {
		person, err := NewPerson(tenantID, "Mario Bianchi")
		require.NoError(t, err)
		first := newTestBase(t, tenantID)
		second, err := NewCompanyBase(tenantID, first.CompanyID, "Sede Secondaria", "")
		require.NoError(t, err)

		require.NoError(t, person.AssignTo(first, uuid.Nil))
		require.NoError(t, person.AssignTo(second, first.CompanyID))
		assert.Equal(t, second.ID, *person.CompanyBaseID)
	})

	t.Run("rejects move to another company", func(t *testing.T) {
		person, err := NewPerson(tenantID, "Mario Bianchi")
		require.NoError(t, err)
		first := newTestBase(t, tenantID)
		other := newTestBase(t, tenantID)

		require.NoError(t, person.AssignTo(first, uuid.Nil))
		err = person.AssignTo(other, first.CompanyID)
		assert.ErrorIs(t, err, shared.ErrConflict)
		assert.Equal(t, first.ID, *person.CompanyBaseID, "assignment is unchanged")
	})
}

func TestPersonRelease(t *testing.T) {
	tenantID := uuid.New()
	person, err := NewPerson(tenantID, "Mario Bianchi")
	require.NoError(t, err)

	// releasing an unassigned person is a no-op
	person.Release()
	assert.False(t, person.IsAssigned())

	base := newTestBase(t, tenantID)
	require.NoError(t, person.AssignTo(base, uuid.Nil))
	person.Release()
	assert.False(t, person.IsAssigned())
	assert.Nil(t, person.CompanyBase)
}
