package handler

import (
	"errors"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"
	"go-inventory-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TransactionHandler struct {
	service service.InventoryService
}

func NewTransactionHandler(s service.InventoryService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// GetTransactions handles GET /api/transactions with type, product, supplier
// and date-window filters.
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	page, limit := pageParams(c)

	filter := repository.TransactionFilter{
		Page:      page,
		Limit:     limit,
		Type:      c.Query("type"),
		SortBy:    c.Query("sortBy", "createdAt"),
		SortOrder: c.Query("sortOrder", "desc"),
	}
	if raw := c.Query("productId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return respondError(c, 400, "Invalid product ID")
		}
		filter.ProductID = id
	}
	if raw := c.Query("supplierId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return respondError(c, 400, "Invalid supplier ID")
		}
		filter.SupplierID = id
	}
	var err error
	if filter.StartDate, err = dateParam(c, "startDate"); err != nil {
		return respondError(c, 400, "Invalid startDate")
	}
	if filter.EndDate, err = dateParam(c, "endDate"); err != nil {
		return respondError(c, 400, "Invalid endDate")
	}

	transactions, total, err := h.service.ListTransactions(filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondList(c, transactions, page, limit, total)
}

func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, 400, "Invalid transaction ID")
	}

	transaction, err := h.service.GetTransaction(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, 200, transaction, "")
}

// CreateTransaction records a ledger entry and applies the stock rule to the
// referenced product.
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var transaction model.Transaction
	if err := c.BodyParser(&transaction); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	created, err := h.service.RecordTransaction(&transaction, actor(c))
	if err != nil {
		// A missing product reference is caller error, not a lookup miss.
		if errors.Is(err, service.ErrProductNotFound) {
			return respondError(c, 400, err.Error())
		}
		return respondServiceError(c, err)
	}
	return respondData(c, 201, created, "Transaction created successfully")
}

func (h *TransactionHandler) UpdateTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, 400, "Invalid transaction ID")
	}

	var req service.UpdateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	updated, err := h.service.UpdateTransaction(id, &req, actor(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, 200, updated, "Transaction updated successfully")
}

// DeleteTransaction removes a ledger entry, reversing its stock delta when
// the entry was COMPLETED.
func (h *TransactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, 400, "Invalid transaction ID")
	}

	if err := h.service.DeleteTransaction(id, actor(c)); err != nil {
		return respondServiceError(c, err)
	}
	return respondMessage(c, "Transaction deleted successfully")
}
