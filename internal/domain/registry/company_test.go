package registry

import (
	"testing"

	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompany(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates company with stamped tenant", func(t *testing.T) {
		company, err := NewCompany(tenantID, "Rossi Costruzioni SRL", "rsscst80a01h501z", "01234567890")
		require.NoError(t, err)

		assert.Equal(t, tenantID, company.TenantID)
		assert.Equal(t, "Rossi Costruzioni SRL", company.Name)
		assert.Equal(t, "RSSCST80A01H501Z", company.FiscalCode, "fiscal code is upper-cased")
		assert.NotEqual(t, uuid.Nil, company.ID)
		assert.Empty(t, company.Bases)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCompany(tenantID, "  ", "", "")
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})
}

func TestCompanyAddBase(t *testing.T) {
	company, err := NewCompany(uuid.New(), "Acme SRL", "", "")
	require.NoError(t, err)

	base, err := company.AddBase("Sede Milano", "Via Torino 1, Milano")
	require.NoError(t, err)

	assert.Len(t, company.Bases, 1)
	assert.Equal(t, company.ID, base.CompanyID)
	assert.Equal(t, company.TenantID, base.TenantID, "base inherits the company tenant")

	_, err = company.AddBase("", "")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
	assert.Len(t, company.Bases, 1)
}

func TestCompanyRetainsAllBases(t *testing.T) {
	company, err := NewCompany(uuid.New(), "Acme SRL", "", "")
	require.NoError(t, err)

	first, err := company.AddBase("Sede Milano", "")
	require.NoError(t, err)
	second, err := company.AddBase("Sede Roma", "")
	require.NoError(t, err)

	t.Run("same set is retained", func(t *testing.T) {
		assert.True(t, company.RetainsAllBases([]uuid.UUID{first.ID, second.ID}))
	})

	t.Run("superset is retained", func(t *testing.T) {
		assert.True(t, company.RetainsAllBases([]uuid.UUID{first.ID, second.ID, uuid.New()}))
	})

	t.Run("dropping a base is detected", func(t *testing.T) {
		assert.False(t, company.RetainsAllBases([]uuid.UUID{first.ID}))
	})

	t.Run("swapping a base is detected", func(t *testing.T) {
		assert.False(t, company.RetainsAllBases([]uuid.UUID{first.ID, uuid.New()}))
	})
}

func TestCompanyFindBase(t *testing.T) {
	company, err := NewCompany(uuid.New(), "Acme SRL", "", "")
	require.NoError(t, err)
	base, err := company.AddBase("Sede Milano", "")
	require.NoError(t, err)

	found := company.FindBase(base.ID)
	require.NotNil(t, found)
	assert.Equal(t, "Sede Milano", found.Name)

	assert.Nil(t, company.FindBase(uuid.New()))
}
