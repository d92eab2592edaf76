package model

import (
	"strings"

	"gorm.io/gorm"
)

// PaymentTerms supported for supplier invoicing.
const (
	PaymentNet30   = "NET_30"
	PaymentNet60   = "NET_60"
	PaymentNet90   = "NET_90"
	PaymentCOD     = "COD"
	PaymentPrepaid = "PREPAID"
)

type Address struct {
	Street  string `gorm:"type:varchar(255)" json:"street" validate:"required"`
	City    string `gorm:"type:varchar(100)" json:"city" validate:"required"`
	State   string `gorm:"type:varchar(100)" json:"state"`
	ZipCode string `gorm:"type:varchar(20)" json:"zipCode"`
	Country string `gorm:"type:varchar(100);default:USA" json:"country" validate:"required"`
}

type Supplier struct {
	BaseModel
	Name          string  `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Email         string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Phone         string  `gorm:"type:varchar(20);not null" json:"phone" validate:"required"`
	Address       Address `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	ContactPerson string  `gorm:"type:varchar(100)" json:"contactPerson" validate:"max=100"`
	IsActive      bool    `gorm:"default:true" json:"isActive"`
	PaymentTerms  string  `gorm:"type:varchar(10);default:NET_30" json:"paymentTerms" validate:"omitempty,oneof=NET_30 NET_60 NET_90 COD PREPAID"`
	Rating        int     `gorm:"default:3" json:"rating" validate:"omitempty,gte=1,lte=5"`

	// Derived fields, never persisted
	FullAddress  string    `gorm:"-" json:"fullAddress"`
	ProductCount int64     `gorm:"-" json:"productCount,omitempty"`
	Products     []Product `gorm:"-" json:"products,omitempty"`
}

func (s *Supplier) computeDerived() {
	var b strings.Builder
	b.WriteString(s.Address.Street)
	b.WriteString(", ")
	b.WriteString(s.Address.City)
	if s.Address.State != "" {
		b.WriteString(", ")
		b.WriteString(s.Address.State)
	}
	if s.Address.ZipCode != "" {
		b.WriteString(" ")
		b.WriteString(s.Address.ZipCode)
	}
	b.WriteString(", ")
	b.WriteString(s.Address.Country)
	s.FullAddress = b.String()
}

// BeforeSave normalizes the email to lowercase so uniqueness is case-insensitive.
func (s *Supplier) BeforeSave(tx *gorm.DB) error {
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	if s.PaymentTerms == "" {
		s.PaymentTerms = PaymentNet30
	}
	if s.Rating == 0 {
		s.Rating = 3
	}
	return nil
}

func (s *Supplier) AfterFind(tx *gorm.DB) error {
	s.computeDerived()
	return nil
}

func (s *Supplier) AfterSave(tx *gorm.DB) error {
	s.computeDerived()
	return nil
}
