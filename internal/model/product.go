package model

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockStatus is the derived classification of a product's quantity
// relative to its minimum-stock threshold.
type StockStatus string

const (
	StockStatusIn  StockStatus = "IN_STOCK"
	StockStatusLow StockStatus = "LOW_STOCK"
	StockStatusOut StockStatus = "OUT_OF_STOCK"
)

type Product struct {
	BaseModel
	Name         string    `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	SKU          string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required,max=50"`
	Quantity     int       `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
	Price        float64   `gorm:"not null;default:0" json:"price" validate:"gte=0"`
	SupplierID   uuid.UUID `gorm:"type:uuid;not null;index" json:"supplierId" validate:"uuid_required"`
	Supplier     *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty" validate:"-"`
	MinimumStock int       `gorm:"not null;default:10" json:"minimumStock" validate:"gte=0"`
	Category     string    `gorm:"type:varchar(50);index" json:"category" validate:"max=50"`
	Description  string    `gorm:"type:varchar(500)" json:"description" validate:"max=500"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`

	// Derived fields, never persisted
	StockStatus StockStatus `gorm:"-" json:"stockStatus"`
	TotalValue  float64     `gorm:"-" json:"totalValue"`
}

// ComputeStockStatus classifies a quantity against a minimum-stock threshold.
func ComputeStockStatus(quantity, minimumStock int) StockStatus {
	switch {
	case quantity <= 0:
		return StockStatusOut
	case quantity <= minimumStock:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

func (p *Product) computeDerived() {
	p.StockStatus = ComputeStockStatus(p.Quantity, p.MinimumStock)
	p.TotalValue = float64(p.Quantity) * p.Price
}

// BeforeSave normalizes the SKU to uppercase so uniqueness is case-insensitive.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	p.SKU = strings.ToUpper(strings.TrimSpace(p.SKU))
	return nil
}

func (p *Product) AfterFind(tx *gorm.DB) error {
	p.computeDerived()
	return nil
}

func (p *Product) AfterSave(tx *gorm.DB) error {
	p.computeDerived()
	return nil
}
