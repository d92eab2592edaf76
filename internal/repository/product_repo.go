package repository

import (
	"go-inventory-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductFilter carries list-endpoint query parameters into the repository.
type ProductFilter struct {
	Page        int
	Limit       int
	Search      string
	Category    string
	SupplierID  uuid.UUID
	StockStatus string
	SortBy      string
	SortOrder   string
}

// InventoryValueSummary aggregates active products for the inventory-value report.
type InventoryValueSummary struct {
	TotalProducts int64   `json:"totalProducts"`
	TotalQuantity int64   `json:"totalQuantity"`
	TotalValue    float64 `json:"totalValue"`
	AveragePrice  float64 `json:"averagePrice"`
}

// CategoryValue is one row of the per-category breakdown.
type CategoryValue struct {
	Category      string  `json:"category"`
	Count         int64   `json:"count"`
	TotalQuantity int64   `json:"totalQuantity"`
	TotalValue    float64 `json:"totalValue"`
}

// SupplierGroup is one row of the products-by-supplier report; Products is
// attached by the service after the group query.
type SupplierGroup struct {
	SupplierID    uuid.UUID       `json:"supplierId"`
	SupplierName  string          `json:"supplierName"`
	SupplierEmail string          `json:"supplierEmail"`
	ProductCount  int64           `json:"productCount"`
	TotalQuantity int64           `json:"totalQuantity"`
	TotalValue    float64         `json:"totalValue"`
	Products      []model.Product `json:"products"`
}

type ProductRepository interface {
	Create(product *model.Product) error
	List(filter ProductFilter) ([]model.Product, int64, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	FindActive() ([]model.Product, error)
	FindActiveBySupplier(supplierID uuid.UUID) ([]model.Product, error)
	FindLowStock() ([]model.Product, error)
	Update(tx *gorm.DB, product *model.Product) error
	UpdateQuantity(tx *gorm.DB, id uuid.UUID, newQuantity int, updatedBy string) error
	Deactivate(id uuid.UUID, updatedBy string) error
	Delete(id uuid.UUID) error
	CountActiveBySupplier(supplierID uuid.UUID) (int64, error)
	InventoryValue() (*InventoryValueSummary, []CategoryValue, error)
	GroupBySupplier() ([]SupplierGroup, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

// Sortable columns exposed to the API; anything else falls back to created_at.
var productSortColumns = map[string]string{
	"name":         "name",
	"sku":          "sku",
	"quantity":     "quantity",
	"price":        "price",
	"category":     "category",
	"minimumStock": "minimum_stock",
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) List(filter ProductFilter) ([]model.Product, int64, error) {
	q := r.db.Model(&model.Product{}).Where("is_active = ?", true)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR sku ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	}
	if filter.Category != "" {
		q = q.Where("category ILIKE ?", "%"+filter.Category+"%")
	}
	if filter.SupplierID != uuid.Nil {
		q = q.Where("supplier_id = ?", filter.SupplierID)
	}
	switch filter.StockStatus {
	case string(model.StockStatusLow):
		q = q.Where("quantity <= minimum_stock")
	case string(model.StockStatusOut):
		q = q.Where("quantity = 0")
	case string(model.StockStatusIn):
		q = q.Where("quantity > minimum_stock")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	err := q.Preload("Supplier").
		Order(orderClause(productSortColumns, filter.SortBy, filter.SortOrder)).
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&products).Error
	return products, total, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Supplier").First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "sku = ?", sku).Error
	return &product, err
}

func (r *productRepo) FindActive() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Supplier").Where("is_active = ?", true).Find(&products).Error
	return products, err
}

func (r *productRepo) FindActiveBySupplier(supplierID uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("supplier_id = ? AND is_active = ?", supplierID, true).
		Order("name ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindLowStock() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Supplier").
		Where("is_active = ? AND quantity <= minimum_stock", true).
		Order("quantity ASC").
		Find(&products).Error
	return products, err
}

// Update takes *gorm.DB (tx) so a full-record write can run under the caller's
// row lock.
func (r *productRepo) Update(tx *gorm.DB, product *model.Product) error {
	return tx.Save(product).Error
}

// UpdateQuantity takes *gorm.DB (tx) so the stock write can run inside the
// same transaction as the ledger insert.
func (r *productRepo) UpdateQuantity(tx *gorm.DB, id uuid.UUID, newQuantity int, updatedBy string) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":   newQuantity,
			"updated_by": updatedBy,
		}).Error
}

func (r *productRepo) Deactivate(id uuid.UUID, updatedBy string) error {
	return r.db.Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_by": updatedBy,
		}).Error
}

func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

func (r *productRepo) CountActiveBySupplier(supplierID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).
		Where("supplier_id = ? AND is_active = ?", supplierID, true).
		Count(&count).Error
	return count, err
}

func (r *productRepo) InventoryValue() (*InventoryValueSummary, []CategoryValue, error) {
	var summary InventoryValueSummary
	err := r.db.Model(&model.Product{}).
		Select(`
			COUNT(*) as total_products,
			COALESCE(SUM(quantity), 0) as total_quantity,
			COALESCE(SUM(quantity * price), 0) as total_value,
			COALESCE(AVG(price), 0) as average_price
		`).
		Where("is_active = ?", true).
		Scan(&summary).Error
	if err != nil {
		return nil, nil, err
	}

	var breakdown []CategoryValue
	err = r.db.Model(&model.Product{}).
		Select(`
			category,
			COUNT(*) as count,
			COALESCE(SUM(quantity), 0) as total_quantity,
			COALESCE(SUM(quantity * price), 0) as total_value
		`).
		Where("is_active = ?", true).
		Group("category").
		Order("total_value DESC").
		Scan(&breakdown).Error
	return &summary, breakdown, err
}

func (r *productRepo) GroupBySupplier() ([]SupplierGroup, error) {
	var groups []SupplierGroup
	err := r.db.Model(&model.Product{}).
		Select(`
			products.supplier_id as supplier_id,
			suppliers.name as supplier_name,
			suppliers.email as supplier_email,
			COUNT(*) as product_count,
			COALESCE(SUM(products.quantity), 0) as total_quantity,
			COALESCE(SUM(products.quantity * products.price), 0) as total_value
		`).
		Joins("JOIN suppliers ON suppliers.id = products.supplier_id").
		Where("products.is_active = ?", true).
		Group("products.supplier_id, suppliers.name, suppliers.email").
		Order("total_value DESC").
		Scan(&groups).Error
	return groups, err
}
