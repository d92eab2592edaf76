package repository

import (
	"time"

	"go-inventory-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupplierFilter carries list-endpoint query parameters into the repository.
type SupplierFilter struct {
	Page       int
	Limit      int
	Search     string
	ActiveOnly bool
	SortBy     string
	SortOrder  string
}

// SupplierPerformance is one row of the supplier performance report.
type SupplierPerformance struct {
	SupplierID            uuid.UUID `json:"supplierId"`
	Name                  string    `json:"name"`
	Email                 string    `json:"email"`
	ContactPerson         string    `json:"contactPerson"`
	Rating                int       `json:"rating"`
	ProductCount          int64     `json:"productCount"`
	TotalInventoryValue   float64   `json:"totalInventoryValue"`
	TransactionCount      int64     `json:"transactionCount"`
	TotalTransactionValue float64   `json:"totalTransactionValue"`
	CreatedAt             time.Time `json:"createdAt"`
}

type SupplierRepository interface {
	Create(supplier *model.Supplier) error
	List(filter SupplierFilter) ([]model.Supplier, int64, error)
	FindByID(id uuid.UUID) (*model.Supplier, error)
	FindByEmail(email string) (*model.Supplier, error)
	Update(supplier *model.Supplier) error
	Delete(id uuid.UUID) error
	Performance() ([]SupplierPerformance, error)
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

var supplierSortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"rating":    "rating",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

func (r *supplierRepo) Create(supplier *model.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepo) List(filter SupplierFilter) ([]model.Supplier, int64, error) {
	q := r.db.Model(&model.Supplier{})

	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ? OR contact_person ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var suppliers []model.Supplier
	err := q.Order(orderClause(supplierSortColumns, filter.SortBy, filter.SortOrder)).
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&suppliers).Error
	return suppliers, total, err
}

func (r *supplierRepo) FindByID(id uuid.UUID) (*model.Supplier, error) {
	var supplier model.Supplier
	err := r.db.First(&supplier, "id = ?", id).Error
	return &supplier, err
}

func (r *supplierRepo) FindByEmail(email string) (*model.Supplier, error) {
	var supplier model.Supplier
	err := r.db.First(&supplier, "email = ?", email).Error
	return &supplier, err
}

func (r *supplierRepo) Update(supplier *model.Supplier) error {
	return r.db.Save(supplier).Error
}

func (r *supplierRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Supplier{}, "id = ?", id).Error
}

func (r *supplierRepo) Performance() ([]SupplierPerformance, error) {
	var rows []SupplierPerformance
	err := r.db.Model(&model.Supplier{}).
		Select(`
			suppliers.id as supplier_id,
			suppliers.name,
			suppliers.email,
			suppliers.contact_person,
			suppliers.rating,
			suppliers.created_at,
			(SELECT COUNT(*) FROM products p WHERE p.supplier_id = suppliers.id) as product_count,
			(SELECT COALESCE(SUM(p.quantity * p.price), 0) FROM products p WHERE p.supplier_id = suppliers.id) as total_inventory_value,
			(SELECT COUNT(*) FROM transactions t WHERE t.supplier_id = suppliers.id) as transaction_count,
			(SELECT COALESCE(SUM(t.total), 0) FROM transactions t WHERE t.supplier_id = suppliers.id) as total_transaction_value
		`).
		Where("suppliers.is_active = ?", true).
		Order("total_inventory_value DESC").
		Scan(&rows).Error
	return rows, err
}
