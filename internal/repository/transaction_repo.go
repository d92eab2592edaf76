package repository

import (
	"time"

	"go-inventory-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionFilter carries list-endpoint query parameters into the repository.
type TransactionFilter struct {
	Page       int
	Limit      int
	Type       string
	ProductID  uuid.UUID
	SupplierID uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// TypeSummary aggregates transactions per type for the summary report.
type TypeSummary struct {
	Type          string  `json:"type"`
	Count         int64   `json:"count"`
	TotalQuantity int64   `json:"totalQuantity"`
	TotalValue    float64 `json:"totalValue"`
}

// DailyTrend is one date/type bucket of the summary report.
type DailyTrend struct {
	Date       string  `json:"date"`
	Type       string  `json:"type"`
	Count      int64   `json:"count"`
	TotalValue float64 `json:"totalValue"`
}

// TopProduct is one row of the top-products-by-volume report.
type TopProduct struct {
	ProductID        uuid.UUID `json:"productId"`
	ProductName      string    `json:"productName"`
	ProductSKU       string    `json:"productSku"`
	TransactionCount int64     `json:"transactionCount"`
	TotalQuantity    int64     `json:"totalQuantity"`
	TotalValue       float64   `json:"totalValue"`
}

type TransactionRepository interface {
	Create(tx *gorm.DB, transaction *model.Transaction) error
	List(filter TransactionFilter) ([]model.Transaction, int64, error)
	FindByID(id uuid.UUID) (*model.Transaction, error)
	Update(transaction *model.Transaction) error
	Delete(tx *gorm.DB, id uuid.UUID) error
	CountByProduct(productID uuid.UUID) (int64, error)
	TypeSummary(startDate, endDate *time.Time) ([]TypeSummary, error)
	DailyTrends(startDate, endDate *time.Time) ([]DailyTrend, error)
	TopProducts(startDate, endDate *time.Time, limit int) ([]TopProduct, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

var transactionSortColumns = map[string]string{
	"type":      "type",
	"quantity":  "quantity",
	"unitPrice": "unit_price",
	"total":     "total",
	"status":    "status",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// Create takes *gorm.DB (tx) so the ledger insert can run inside the same
// transaction as the stock write.
func (r *transactionRepo) Create(tx *gorm.DB, transaction *model.Transaction) error {
	return tx.Create(transaction).Error
}

func (r *transactionRepo) List(filter TransactionFilter) ([]model.Transaction, int64, error) {
	q := r.db.Model(&model.Transaction{})

	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.ProductID != uuid.Nil {
		q = q.Where("product_id = ?", filter.ProductID)
	}
	if filter.SupplierID != uuid.Nil {
		q = q.Where("supplier_id = ?", filter.SupplierID)
	}
	q = dateWindow(q, filter.StartDate, filter.EndDate)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transactions []model.Transaction
	err := q.Preload("Product").Preload("Supplier").
		Order(orderClause(transactionSortColumns, filter.SortBy, filter.SortOrder)).
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&transactions).Error
	return transactions, total, err
}

func (r *transactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.Preload("Product").Preload("Supplier").First(&transaction, "id = ?", id).Error
	return &transaction, err
}

func (r *transactionRepo) Update(transaction *model.Transaction) error {
	return r.db.Save(transaction).Error
}

func (r *transactionRepo) Delete(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Transaction{}, "id = ?", id).Error
}

func (r *transactionRepo) CountByProduct(productID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Transaction{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}

func (r *transactionRepo) TypeSummary(startDate, endDate *time.Time) ([]TypeSummary, error) {
	var rows []TypeSummary
	err := dateWindow(r.db.Model(&model.Transaction{}), startDate, endDate).
		Select(`
			type,
			COUNT(*) as count,
			COALESCE(SUM(quantity), 0) as total_quantity,
			COALESCE(SUM(total), 0) as total_value
		`).
		Group("type").
		Scan(&rows).Error
	return rows, err
}

func (r *transactionRepo) DailyTrends(startDate, endDate *time.Time) ([]DailyTrend, error) {
	var rows []DailyTrend
	err := dateWindow(r.db.Model(&model.Transaction{}), startDate, endDate).
		Select(`
			TO_CHAR(created_at, 'YYYY-MM-DD') as date,
			type,
			COUNT(*) as count,
			COALESCE(SUM(total), 0) as total_value
		`).
		Group("TO_CHAR(created_at, 'YYYY-MM-DD'), type").
		Order("date ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *transactionRepo) TopProducts(startDate, endDate *time.Time, limit int) ([]TopProduct, error) {
	var rows []TopProduct
	err := dateWindow(r.db.Model(&model.Transaction{}), startDate, endDate).
		Select(`
			transactions.product_id as product_id,
			products.name as product_name,
			products.sku as product_sku,
			COUNT(*) as transaction_count,
			COALESCE(SUM(transactions.quantity), 0) as total_quantity,
			COALESCE(SUM(transactions.total), 0) as total_value
		`).
		Joins("JOIN products ON products.id = transactions.product_id").
		Group("transactions.product_id, products.name, products.sku").
		Order("total_value DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func dateWindow(q *gorm.DB, startDate, endDate *time.Time) *gorm.DB {
	if startDate != nil {
		q = q.Where("transactions.created_at >= ?", *startDate)
	}
	if endDate != nil {
		q = q.Where("transactions.created_at <= ?", *endDate)
	}
	return q
}
