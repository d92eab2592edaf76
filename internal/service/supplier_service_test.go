package service

import (
	"testing"

	"go-inventory-api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSupplierRequest() *model.Supplier {
	return &model.Supplier{
		Name:  "Acme",
		Email: "orders@acme.com",
		Phone: "555-0100",
		Address: model.Address{
			Street:  "1 Main St",
			City:    "Springfield",
			Country: "USA",
		},
	}
}

func TestSupplierCreateRejectsDuplicateEmail(t *testing.T) {
	other := &model.Supplier{BaseModel: model.BaseModel{ID: uuid.New()}, Email: "orders@acme.com"}
	suppliers := &stubSupplierRepo{
		findByEmailFn: func(email string) (*model.Supplier, error) { return other, nil },
	}
	svc := NewSupplierService(suppliers, &stubProductRepo{})

	_, err := svc.Create(validSupplierRequest(), "system")
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestCheckEmailNormalizesAndExcludesSelf(t *testing.T) {
	supplierID := uuid.New()
	var queried string
	stored := &model.Supplier{BaseModel: model.BaseModel{ID: supplierID}, Email: "orders@acme.com"}
	suppliers := &stubSupplierRepo{
		findByEmailFn: func(email string) (*model.Supplier, error) {
			queried = email
			return stored, nil
		},
	}
	svc := &supplierService{supplierRepo: suppliers}

	assert.NoError(t, svc.checkEmail(" Orders@ACME.com ", supplierID))
	assert.Equal(t, "orders@acme.com", queried)
	assert.ErrorIs(t, svc.checkEmail("orders@acme.com", uuid.New()), ErrEmailExists)
}

func TestSupplierDeleteBlockedByActiveProducts(t *testing.T) {
	deleted := false
	suppliers := &stubSupplierRepo{
		findByIDFn: func(id uuid.UUID) (*model.Supplier, error) { return activeSupplier(id), nil },
		deleteFn: func(id uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	products := &stubProductRepo{
		countActiveFn: func(supplierID uuid.UUID) (int64, error) { return 3, nil },
	}
	svc := NewSupplierService(suppliers, products)

	err := svc.Delete(uuid.New())
	require.Error(t, err)

	var inUse *SupplierInUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, int64(3), inUse.ProductCount)
	assert.Contains(t, err.Error(), "3 products")
	assert.False(t, deleted)
}

func TestSupplierDeleteWithoutActiveProducts(t *testing.T) {
	deleted := false
	suppliers := &stubSupplierRepo{
		findByIDFn: func(id uuid.UUID) (*model.Supplier, error) { return activeSupplier(id), nil },
		deleteFn: func(id uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	svc := NewSupplierService(suppliers, &stubProductRepo{})

	require.NoError(t, svc.Delete(uuid.New()))
	assert.True(t, deleted)
}

func TestSupplierUpdatePreservesActivationWhenOmitted(t *testing.T) {
	supplierID := uuid.New()
	stored := activeSupplier(supplierID)
	stored.IsActive = false

	var saved *model.Supplier
	suppliers := &stubSupplierRepo{
		findByIDFn: func(id uuid.UUID) (*model.Supplier, error) { return stored, nil },
		updateFn: func(supplier *model.Supplier) error {
			saved = supplier
			return nil
		},
	}
	svc := NewSupplierService(suppliers, &stubProductRepo{})

	req := &UpdateSupplierRequest{Supplier: *validSupplierRequest()}
	_, err := svc.Update(supplierID, req, "system")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.False(t, saved.IsActive)
}

func TestSupplierUpdateSetsActivationWhenProvided(t *testing.T) {
	supplierID := uuid.New()
	stored := activeSupplier(supplierID)
	stored.IsActive = false

	var saved *model.Supplier
	suppliers := &stubSupplierRepo{
		findByIDFn: func(id uuid.UUID) (*model.Supplier, error) { return stored, nil },
		updateFn: func(supplier *model.Supplier) error {
			saved = supplier
			return nil
		},
	}
	svc := NewSupplierService(suppliers, &stubProductRepo{})

	active := true
	req := &UpdateSupplierRequest{Supplier: *validSupplierRequest(), IsActive: &active}
	_, err := svc.Update(supplierID, req, "system")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.True(t, saved.IsActive)
}

func TestSupplierGetAttachesAllActiveProducts(t *testing.T) {
	supplierID := uuid.New()
	suppliers := &stubSupplierRepo{
		findByIDFn: func(id uuid.UUID) (*model.Supplier, error) { return activeSupplier(id), nil },
	}
	products := &stubProductRepo{
		findActiveBySupplierFn: func(id uuid.UUID) ([]model.Product, error) {
			return make([]model.Product, 150), nil
		},
	}
	svc := NewSupplierService(suppliers, products)

	supplier, err := svc.Get(supplierID)
	require.NoError(t, err)
	assert.Len(t, supplier.Products, 150)
	assert.Equal(t, int64(150), supplier.ProductCount)
}
