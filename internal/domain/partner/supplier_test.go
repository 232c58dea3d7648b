package partner

import (
	"strings"
	"testing"

	"github.com/recell/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSupplier(t *testing.T) {
	t.Run("creates active supplier", func(t *testing.T) {
		supplier, err := NewSupplier("Shenzhen Phone Traders")
		require.NoError(t, err)

		assert.Equal(t, "Shenzhen Phone Traders", supplier.Name)
		assert.Equal(t, SupplierStatusActive, supplier.Status)
		assert.True(t, supplier.IsActive())
		assert.Equal(t, 1, supplier.Version)
	})

	t.Run("trims name", func(t *testing.T) {
		supplier, err := NewSupplier("  GadgetHub  ")
		require.NoError(t, err)

		assert.Equal(t, "GadgetHub", supplier.Name)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewSupplier("   ")
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	})

	t.Run("rejects overlong name", func(t *testing.T) {
		_, err := NewSupplier(strings.Repeat("a", 201))
		assert.Error(t, err)
	})
}

func TestSupplier_Update(t *testing.T) {
	t.Run("updates contact details", func(t *testing.T) {
		supplier, err := NewSupplier("GadgetHub")
		require.NoError(t, err)

		err = supplier.Update("GadgetHub Ltd", "Alex Wong", "+85212345678", "alex@gadgethub.example", "12 Nathan Rd", "net 30")
		require.NoError(t, err)

		assert.Equal(t, "GadgetHub Ltd", supplier.Name)
		assert.Equal(t, "Alex Wong", supplier.ContactName)
		assert.Equal(t, "+85212345678", supplier.Phone)
		assert.Equal(t, 2, supplier.Version)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		supplier, err := NewSupplier("GadgetHub")
		require.NoError(t, err)

		err = supplier.Update("", "", "", "", "", "")
		assert.Error(t, err)
		assert.Equal(t, "GadgetHub", supplier.Name)
	})

	t.Run("rejects overlong contact name", func(t *testing.T) {
		supplier, err := NewSupplier("GadgetHub")
		require.NoError(t, err)

		err = supplier.Update("GadgetHub", strings.Repeat("x", 101), "", "", "", "")
		assert.Error(t, err)
	})
}

func TestSupplier_ActivateDeactivate(t *testing.T) {
	supplier, err := NewSupplier("GadgetHub")
	require.NoError(t, err)

	supplier.Deactivate()
	assert.Equal(t, SupplierStatusInactive, supplier.Status)
	assert.False(t, supplier.IsActive())

	supplier.Activate()
	assert.Equal(t, SupplierStatusActive, supplier.Status)
	assert.True(t, supplier.IsActive())
}
