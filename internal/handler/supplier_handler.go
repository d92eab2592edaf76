package handler

import (
	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"
	"go-inventory-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SupplierHandler struct {
	service service.SupplierService
}

func NewSupplierHandler(s service.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: s}
}

// GetSuppliers handles GET /api/suppliers; activeOnly defaults to true.
func (h *SupplierHandler) GetSuppliers(c *fiber.Ctx) error {
	page, limit := pageParams(c)

	filter := repository.SupplierFilter{
		Page:       page,
		Limit:      limit,
		Search:     c.Query("search"),
		ActiveOnly: c.Query("activeOnly", "true") == "true",
		SortBy:     c.Query("sortBy", "createdAt"),
		SortOrder:  c.Query("sortOrder", "desc"),
	}

	suppliers, total, err := h.service.List(filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondList(c, suppliers, page, limit, total)
}

func (h *SupplierHandler) GetSupplier(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, 400, "Invalid supplier ID")
	}

	supplier, err := h.service.Get(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, 200, supplier, "")
}

func (h *SupplierHandler) CreateSupplier(c *fiber.Ctx) error {
	var supplier model.Supplier
	supplier.IsActive = true
	if err := c.BodyParser(&supplier); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	created, err := h.service.Create(&supplier, actor(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, 201, created, "Supplier created successfully")
}

func (h *SupplierHandler) UpdateSupplier(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, 400, "Invalid supplier ID")
	}

	var req service.UpdateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	updated, err := h.service.Update(id, &req, actor(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, 200, updated, "Supplier updated successfully")
}

func (h *SupplierHandler) DeleteSupplier(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, 400, "Invalid supplier ID")
	}

	if err := h.service.Delete(id); err != nil {
		return respondServiceError(c, err)
	}
	return respondMessage(c, "Supplier deleted successfully")
}
