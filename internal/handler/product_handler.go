package handler

import (
	"errors"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"
	"go-inventory-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// GetProducts handles GET /api/products with pagination, search and filters.
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	page, limit := pageParams(c)

	filter := repository.ProductFilter{
		Page:        page,
		Limit:       limit,
		Search:      c.Query("search"),
		Category:    c.Query("category"),
		StockStatus: c.Query("stockStatus"),
		SortBy:      c.Query("sortBy", "createdAt"),
		SortOrder:   c.Query("sortOrder", "desc"),
	}
	if raw := c.Query("supplierId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return respondError(c, 400, "Invalid supplier ID")
		}
		filter.SupplierID = id
	}

	products, total, err := h.service.List(filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondList(c, products, page, limit, total)
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, 400, "Invalid product ID")
	}

	product, err := h.service.Get(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, 200, product, "")
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	created, err := h.service.Create(&product, actor(c))
	if err != nil {
		// A missing supplier reference is caller error, not a lookup miss.
		if errors.Is(err, service.ErrSupplierNotFound) {
			return respondError(c, 400, err.Error())
		}
		return respondServiceError(c, err)
	}
	return respondData(c, 201, created, "Product created successfully")
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, 400, "Invalid product ID")
	}

	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	updated, err := h.service.Update(id, &product, actor(c))
	if err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			return respondError(c, 400, err.Error())
		}
		return respondServiceError(c, err)
	}
	return respondData(c, 200, updated, "Product updated successfully")
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, 400, "Invalid product ID")
	}

	softDeleted, err := h.service.Delete(id, actor(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	if softDeleted {
		return respondMessage(c, "Product deactivated (has transaction history)")
	}
	return respondMessage(c, "Product deleted successfully")
}
