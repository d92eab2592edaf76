package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TxPurchase   TransactionType = "PURCHASE"
	TxSale       TransactionType = "SALE"
	TxAdjustment TransactionType = "ADJUSTMENT"
)

type TransactionStatus string

const (
	TxStatusPending   TransactionStatus = "PENDING"
	TxStatusCompleted TransactionStatus = "COMPLETED"
	TxStatusCancelled TransactionStatus = "CANCELLED"
)

type Transaction struct {
	BaseModel
	ProductID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"productId" validate:"uuid_required"`
	Product    *Product          `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`
	Type       TransactionType   `gorm:"type:varchar(10);not null;index" json:"type" validate:"required,oneof=PURCHASE SALE ADJUSTMENT"`
	Quantity   int               `gorm:"not null" json:"quantity" validate:"required,gte=1"`
	UnitPrice  float64           `gorm:"not null" json:"unitPrice" validate:"gte=0"`
	Total      float64           `gorm:"not null" json:"total"` // snapshot quantity * unitPrice, computed at write time
	Reference  string            `gorm:"type:varchar(100)" json:"reference" validate:"max=100"`
	Notes      string            `gorm:"type:varchar(500)" json:"notes" validate:"max=500"`
	SupplierID *uuid.UUID        `gorm:"type:uuid;index" json:"supplierId,omitempty"` // inherited from product at creation
	Supplier   *Supplier         `gorm:"foreignKey:SupplierID" json:"supplier,omitempty" validate:"-"`
	Status     TransactionStatus `gorm:"type:varchar(10);default:COMPLETED" json:"status" validate:"omitempty,oneof=PENDING COMPLETED CANCELLED"`
}

// BeforeSave recomputes the total; caller input is never trusted for it.
func (t *Transaction) BeforeSave(tx *gorm.DB) error {
	if t.Status == "" {
		t.Status = TxStatusCompleted
	}
	t.Total = float64(t.Quantity) * t.UnitPrice
	return nil
}
