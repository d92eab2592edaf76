package service

import (
	"time"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stub repositories for service tests. Unset hooks behave like an empty
// database.

type stubProductRepo struct {
	createFn               func(product *model.Product) error
	findByIDFn             func(id uuid.UUID) (*model.Product, error)
	findBySKUFn            func(sku string) (*model.Product, error)
	findActiveBySupplierFn func(supplierID uuid.UUID) ([]model.Product, error)
	deactivateFn           func(id uuid.UUID, updatedBy string) error
	deleteFn               func(id uuid.UUID) error
	countActiveFn          func(supplierID uuid.UUID) (int64, error)
}

func (r *stubProductRepo) Create(product *model.Product) error {
	if r.createFn != nil {
		return r.createFn(product)
	}
	return nil
}

func (r *stubProductRepo) List(filter repository.ProductFilter) ([]model.Product, int64, error) {
	return nil, 0, nil
}

func (r *stubProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	if r.findByIDFn != nil {
		return r.findByIDFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) FindBySKU(sku string) (*model.Product, error) {
	if r.findBySKUFn != nil {
		return r.findBySKUFn(sku)
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) FindActive() ([]model.Product, error) {
	return nil, nil
}

func (r *stubProductRepo) FindActiveBySupplier(supplierID uuid.UUID) ([]model.Product, error) {
	if r.findActiveBySupplierFn != nil {
		return r.findActiveBySupplierFn(supplierID)
	}
	return nil, nil
}

func (r *stubProductRepo) FindLowStock() ([]model.Product, error) {
	return nil, nil
}

func (r *stubProductRepo) Update(tx *gorm.DB, product *model.Product) error {
	return nil
}

func (r *stubProductRepo) UpdateQuantity(tx *gorm.DB, id uuid.UUID, newQuantity int, updatedBy string) error {
	return nil
}

func (r *stubProductRepo) Deactivate(id uuid.UUID, updatedBy string) error {
	if r.deactivateFn != nil {
		return r.deactivateFn(id, updatedBy)
	}
	return nil
}

func (r *stubProductRepo) Delete(id uuid.UUID) error {
	if r.deleteFn != nil {
		return r.deleteFn(id)
	}
	return nil
}

func (r *stubProductRepo) CountActiveBySupplier(supplierID uuid.UUID) (int64, error) {
	if r.countActiveFn != nil {
		return r.countActiveFn(supplierID)
	}
	return 0, nil
}

func (r *stubProductRepo) InventoryValue() (*repository.InventoryValueSummary, []repository.CategoryValue, error) {
	return &repository.InventoryValueSummary{}, nil, nil
}

func (r *stubProductRepo) GroupBySupplier() ([]repository.SupplierGroup, error) {
	return nil, nil
}

type stubSupplierRepo struct {
	findByIDFn    func(id uuid.UUID) (*model.Supplier, error)
	findByEmailFn func(email string) (*model.Supplier, error)
	updateFn      func(supplier *model.Supplier) error
	deleteFn      func(id uuid.UUID) error
}

func (r *stubSupplierRepo) Create(supplier *model.Supplier) error {
	return nil
}

func (r *stubSupplierRepo) List(filter repository.SupplierFilter) ([]model.Supplier, int64, error) {
	return nil, 0, nil
}

func (r *stubSupplierRepo) FindByID(id uuid.UUID) (*model.Supplier, error) {
	if r.findByIDFn != nil {
		return r.findByIDFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSupplierRepo) FindByEmail(email string) (*model.Supplier, error) {
	if r.findByEmailFn != nil {
		return r.findByEmailFn(email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSupplierRepo) Update(supplier *model.Supplier) error {
	if r.updateFn != nil {
		return r.updateFn(supplier)
	}
	return nil
}

func (r *stubSupplierRepo) Delete(id uuid.UUID) error {
	if r.deleteFn != nil {
		return r.deleteFn(id)
	}
	return nil
}

func (r *stubSupplierRepo) Performance() ([]repository.SupplierPerformance, error) {
	return nil, nil
}

type stubTransactionRepo struct {
	countByProductFn func(productID uuid.UUID) (int64, error)
}

func (r *stubTransactionRepo) Create(tx *gorm.DB, transaction *model.Transaction) error {
	return nil
}

func (r *stubTransactionRepo) List(filter repository.TransactionFilter) ([]model.Transaction, int64, error) {
	return nil, 0, nil
}

func (r *stubTransactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTransactionRepo) Update(transaction *model.Transaction) error {
	return nil
}

func (r *stubTransactionRepo) Delete(tx *gorm.DB, id uuid.UUID) error {
	return nil
}

func (r *stubTransactionRepo) CountByProduct(productID uuid.UUID) (int64, error) {
	if r.countByProductFn != nil {
		return r.countByProductFn(productID)
	}
	return 0, nil
}

func (r *stubTransactionRepo) TypeSummary(startDate, endDate *time.Time) ([]repository.TypeSummary, error) {
	return nil, nil
}

func (r *stubTransactionRepo) DailyTrends(startDate, endDate *time.Time) ([]repository.DailyTrend, error) {
	return nil, nil
}

func (r *stubTransactionRepo) TopProducts(startDate, endDate *time.Time, limit int) ([]repository.TopProduct, error) {
	return nil, nil
}
