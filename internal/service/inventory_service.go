package service

import (
	"fmt"

	"go-inventory-api/internal/metrics"
	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"
	"go-inventory-api/internal/ws"
	"go-inventory-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateTransactionRequest carries the mutable fields of a transaction.
// Quantity and unit price changes are rejected once a transaction is
// COMPLETED; stock is never retouched by an update.
type UpdateTransactionRequest struct {
	Quantity  *int                     `json:"quantity" validate:"omitempty,gte=1"`
	UnitPrice *float64                 `json:"unitPrice" validate:"omitempty,gte=0"`
	Reference *string                  `json:"reference" validate:"omitempty,max=100"`
	Notes     *string                  `json:"notes" validate:"omitempty,max=500"`
	Status    *model.TransactionStatus `json:"status" validate:"omitempty,oneof=PENDING COMPLETED CANCELLED"`
}

// InventoryService owns the stock ledger: recording a transaction and the
// matching product-quantity write happen inside one database transaction with
// a row lock on the product.
type InventoryService interface {
	RecordTransaction(req *model.Transaction, actor string) (*model.Transaction, error)
	ListTransactions(filter repository.TransactionFilter) ([]model.Transaction, int64, error)
	GetTransaction(id uuid.UUID) (*model.Transaction, error)
	UpdateTransaction(id uuid.UUID, req *UpdateTransactionRequest, actor string) (*model.Transaction, error)
	DeleteTransaction(id uuid.UUID, actor string) error
}

type inventoryService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	db              *gorm.DB
	wsHub           *ws.Hub
}

func NewInventoryService(pRepo repository.ProductRepository, tRepo repository.TransactionRepository, db *gorm.DB, hub *ws.Hub) InventoryService {
	return &inventoryService{
		productRepo:     pRepo,
		transactionRepo: tRepo,
		db:              db,
		wsHub:           hub,
	}
}

func (s *inventoryService) RecordTransaction(req *model.Transaction, actor string) (*model.Transaction, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	var newQuantity int
	var product model.Product

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Lock the product row so the quantity read and write are one unit.
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&product, "id = ?", req.ProductID).Error; err != nil {
			return ErrProductNotFound
		}

		next, err := NextQuantity(product.Quantity, req.Type, req.Quantity)
		if err != nil {
			return err
		}
		newQuantity = next

		// Supplier is inherited from the product, never trusted from input.
		if product.SupplierID != uuid.Nil {
			supplierID := product.SupplierID
			req.SupplierID = &supplierID
		}
		req.CreatedBy = actor
		req.UpdatedBy = actor

		if err := s.transactionRepo.Create(tx, req); err != nil {
			return err
		}
		return s.productRepo.UpdateQuantity(tx, product.ID, newQuantity, actor)
	})
	if err != nil {
		return nil, err
	}

	metrics.TransactionsRecorded.WithLabelValues(string(req.Type)).Inc()

	s.wsHub.Publish(ws.StockEvent{
		Event:  "stock_update",
		Action: "transaction_created",
		Payload: map[string]interface{}{
			"transactionId": req.ID,
			"type":          req.Type,
			"quantity":      req.Quantity,
			"productId":     product.ID,
			"productName":   product.Name,
			"sku":           product.SKU,
			"newQuantity":   newQuantity,
		},
		Actor:   actor,
		Message: fmt.Sprintf("%s recorded a %s of %d units of '%s'", actor, req.Type, req.Quantity, product.Name),
	})

	return s.transactionRepo.FindByID(req.ID)
}

func (s *inventoryService) ListTransactions(filter repository.TransactionFilter) ([]model.Transaction, int64, error) {
	return s.transactionRepo.List(filter)
}

func (s *inventoryService) GetTransaction(id uuid.UUID) (*model.Transaction, error) {
	transaction, err := s.transactionRepo.FindByID(id)
	if err != nil {
		return nil, ErrTransactionNotFound
	}
	return transaction, nil
}

func (s *inventoryService) UpdateTransaction(id uuid.UUID, req *UpdateTransactionRequest, actor string) (*model.Transaction, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	transaction, err := s.transactionRepo.FindByID(id)
	if err != nil {
		return nil, ErrTransactionNotFound
	}

	if transaction.Status == model.TxStatusCompleted && (req.Quantity != nil || req.UnitPrice != nil) {
		return nil, ErrCompletedTxImmutable
	}

	if req.Quantity != nil {
		transaction.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		transaction.UnitPrice = *req.UnitPrice
	}
	if req.Reference != nil {
		transaction.Reference = *req.Reference
	}
	if req.Notes != nil {
		transaction.Notes = *req.Notes
	}
	if req.Status != nil {
		transaction.Status = *req.Status
	}
	transaction.UpdatedBy = actor

	if err := s.transactionRepo.Update(transaction); err != nil {
		return nil, err
	}
	return s.transactionRepo.FindByID(id)
}

func (s *inventoryService) DeleteTransaction(id uuid.UUID, actor string) error {
	transaction, err := s.transactionRepo.FindByID(id)
	if err != nil {
		return ErrTransactionNotFound
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Only COMPLETED transactions moved stock, so only those are reversed.
		// ADJUSTMENT carries no delta and is left alone.
		if transaction.Status == model.TxStatusCompleted {
			var product model.Product
			findErr := tx.Set("gorm:query_option", "FOR UPDATE").First(&product, "id = ?", transaction.ProductID).Error
			if findErr == nil {
				restored := ReverseQuantity(product.Quantity, transaction.Type, transaction.Quantity)
				if err := s.productRepo.UpdateQuantity(tx, product.ID, restored, actor); err != nil {
					return err
				}
			}
		}
		return s.transactionRepo.Delete(tx, id)
	})
	if err != nil {
		return err
	}

	s.wsHub.Publish(ws.StockEvent{
		Event:  "stock_update",
		Action: "transaction_deleted",
		Payload: map[string]interface{}{
			"transactionId": transaction.ID,
			"type":          transaction.Type,
			"quantity":      transaction.Quantity,
			"productId":     transaction.ProductID,
		},
		Actor: actor,
	})
	return nil
}
