package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/recell/backend/internal/domain/partner"
	"github.com/recell/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSupplierRepository is a mock implementation of partner.SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Supplier, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSupplierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSupplierRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestSupplierService_Create(t *testing.T) {
	t.Run("creates an active supplier", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		service := NewSupplierService(repo)

		repo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Supplier")).Return(nil)

		resp, err := service.Create(context.Background(), CreateSupplierRequest{
			Name:  "Shenzhen Wholesale Ltd",
			Phone: "+86 755 1234567",
		})

		require.NoError(t, err)
		assert.Equal(t, "Shenzhen Wholesale Ltd", resp.Name)
		assert.Equal(t, "active", resp.Status)
		assert.Equal(t, "+86 755 1234567", resp.Phone)
		repo.AssertExpectations(t)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		service := NewSupplierService(repo)

		_, err := service.Create(context.Background(), CreateSupplierRequest{Name: " "})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestSupplierService_Update(t *testing.T) {
	repo := new(MockSupplierRepository)
	service := NewSupplierService(repo)

	supplier, err := partner.NewSupplier("Old Name")
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)
	repo.On("Save", mock.Anything, supplier).Return(nil)

	resp, err := service.Update(context.Background(), supplier.ID, UpdateSupplierRequest{
		Name:        "New Name",
		ContactName: "Li Wei",
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", resp.Name)
	assert.Equal(t, "Li Wei", resp.ContactName)
}

func TestSupplierService_Deactivate(t *testing.T) {
	repo := new(MockSupplierRepository)
	service := NewSupplierService(repo)

	supplier, err := partner.NewSupplier("Gadget Traders")
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)
	repo.On("Save", mock.Anything, supplier).Return(nil)

	resp, err := service.Deactivate(context.Background(), supplier.ID)

	require.NoError(t, err)
	assert.Equal(t, "inactive", resp.Status)
	assert.False(t, supplier.IsActive())
}

func TestSupplierService_GetByID_NotFound(t *testing.T) {
	repo := new(MockSupplierRepository)
	service := NewSupplierService(repo)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, shared.NewDomainError("NOT_FOUND", "Supplier not found"))

	_, err := service.GetByID(context.Background(), id)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestSupplierService_List(t *testing.T) {
	repo := new(MockSupplierRepository)
	service := NewSupplierService(repo)

	first, err := partner.NewSupplier("First")
	require.NoError(t, err)
	second, err := partner.NewSupplier("Second")
	require.NoError(t, err)

	repo.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["status"] == "active"
	})).Return([]partner.Supplier{*first, *second}, nil)
	repo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(int64(2), nil)

	resp, total, err := service.List(context.Background(), SupplierListFilter{Status: "active"})

	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, int64(2), total)
}
