package service

import (
	"fmt"
	"strings"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"
	"go-inventory-api/internal/ws"
	"go-inventory-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductService interface {
	Create(req *model.Product, actor string) (*model.Product, error)
	List(filter repository.ProductFilter) ([]model.Product, int64, error)
	Get(id uuid.UUID) (*model.Product, error)
	Update(id uuid.UUID, req *model.Product, actor string) (*model.Product, error)
	// Delete soft-deletes when the product is referenced by transactions and
	// hard-deletes otherwise. The returned flag reports which happened.
	Delete(id uuid.UUID, actor string) (bool, error)
}

type productService struct {
	productRepo     repository.ProductRepository
	supplierRepo    repository.SupplierRepository
	transactionRepo repository.TransactionRepository
	db              *gorm.DB
	wsHub           *ws.Hub
}

func NewProductService(pRepo repository.ProductRepository, sRepo repository.SupplierRepository, tRepo repository.TransactionRepository, db *gorm.DB, hub *ws.Hub) ProductService {
	return &productService{
		productRepo:     pRepo,
		supplierRepo:    sRepo,
		transactionRepo: tRepo,
		db:              db,
		wsHub:           hub,
	}
}

func (s *productService) Create(req *model.Product, actor string) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	if _, err := s.supplierRepo.FindByID(req.SupplierID); err != nil {
		return nil, ErrSupplierNotFound
	}

	if err := s.checkSKU(req.SKU, uuid.Nil); err != nil {
		return nil, err
	}

	req.CreatedBy = actor
	req.UpdatedBy = actor
	if err := s.productRepo.Create(req); err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.StockEvent{
		Event:  "stock_update",
		Action: "product_created",
		Payload: map[string]interface{}{
			"productId": req.ID,
			"sku":       req.SKU,
			"name":      req.Name,
			"quantity":  req.Quantity,
		},
		Actor:   actor,
		Message: fmt.Sprintf("%s created product '%s'", actor, req.Name),
	})

	return s.productRepo.FindByID(req.ID)
}

func (s *productService) List(filter repository.ProductFilter) ([]model.Product, int64, error) {
	return s.productRepo.List(filter)
}

func (s *productService) Get(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *productService) Update(id uuid.UUID, req *model.Product, actor string) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	if _, err := s.productRepo.FindByID(id); err != nil {
		return nil, ErrProductNotFound
	}
	if err := s.checkSKU(req.SKU, id); err != nil {
		return nil, err
	}
	if _, err := s.supplierRepo.FindByID(req.SupplierID); err != nil {
		return nil, ErrSupplierNotFound
	}

	var oldQuantity int
	var existing model.Product

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Lock the row so a concurrent ledger write cannot be lost under the
		// quantity overwrite.
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&existing, "id = ?", id).Error; err != nil {
			return ErrProductNotFound
		}
		oldQuantity = existing.Quantity
		applyProductUpdate(&existing, req, actor)
		return s.productRepo.Update(tx, &existing)
	})
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.StockEvent{
		Event:  "stock_update",
		Action: "product_updated",
		Payload: map[string]interface{}{
			"productId":   existing.ID,
			"sku":         existing.SKU,
			"name":        existing.Name,
			"oldQuantity": oldQuantity,
			"newQuantity": existing.Quantity,
		},
		Actor:   actor,
		Message: fmt.Sprintf("%s updated product '%s'", actor, existing.Name),
	})

	return s.productRepo.FindByID(id)
}

func (s *productService) Delete(id uuid.UUID, actor string) (bool, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return false, ErrProductNotFound
	}

	// A product with transaction history is only deactivated, so the ledger
	// keeps a valid reference.
	count, err := s.transactionRepo.CountByProduct(id)
	if err != nil {
		return false, err
	}
	if count > 0 {
		if err := s.productRepo.Deactivate(id, actor); err != nil {
			return false, err
		}
		return true, nil
	}

	if err := s.productRepo.Delete(id); err != nil {
		return false, err
	}

	s.wsHub.Publish(ws.StockEvent{
		Event:  "stock_update",
		Action: "product_deleted",
		Payload: map[string]interface{}{
			"productId": product.ID,
			"sku":       product.SKU,
		},
		Actor: actor,
	})
	return false, nil
}

// applyProductUpdate copies the replaceable fields of req onto existing.
// IsActive and audit columns are not caller-writable here.
func applyProductUpdate(existing, req *model.Product, actor string) {
	existing.Name = req.Name
	existing.SKU = req.SKU
	existing.Quantity = req.Quantity
	existing.Price = req.Price
	existing.SupplierID = req.SupplierID
	existing.MinimumStock = req.MinimumStock
	existing.Category = req.Category
	existing.Description = req.Description
	existing.UpdatedBy = actor
	existing.Supplier = nil
}

// checkSKU enforces case-insensitive SKU uniqueness; excludeID skips the
// product being updated.
func (s *productService) checkSKU(sku string, excludeID uuid.UUID) error {
	normalized := strings.ToUpper(strings.TrimSpace(sku))
	existing, err := s.productRepo.FindBySKU(normalized)
	if err != nil {
		return nil
	}
	if existing.ID != uuid.Nil && existing.ID != excludeID {
		return ErrSKUExists
	}
	return nil
}
