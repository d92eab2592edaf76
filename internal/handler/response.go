package handler

import (
	"errors"
	"time"

	"go-inventory-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Pagination is the standard list-envelope footer.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func newPagination(page, limit int, total int64) Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

func respondData(c *fiber.Ctx, status int, data interface{}, message string) error {
	body := fiber.Map{"success": true, "data": data}
	if message != "" {
		body["message"] = message
	}
	return c.Status(status).JSON(body)
}

func respondMessage(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"success": true, "message": message})
}

func respondList(c *fiber.Ctx, data interface{}, page, limit int, total int64) error {
	return c.JSON(fiber.Map{
		"success":    true,
		"data":       data,
		"pagination": newPagination(page, limit, total),
	})
}

func respondError(c *fiber.Ctx, status int, message string) error {
	body := fiber.Map{"success": false, "message": message}
	return c.Status(status).JSON(body)
}

// respondServiceError maps service failures onto the error taxonomy:
// validation and conflicts are 400, missing entities 404, everything else 500
// with the raw error echoed.
func respondServiceError(c *fiber.Ctx, err error) error {
	var (
		validationErr *service.ValidationError
		stockErr      *service.InsufficientStockError
		supplierInUse *service.SupplierInUseError
	)

	switch {
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrSupplierNotFound),
		errors.Is(err, service.ErrTransactionNotFound):
		return respondError(c, 404, err.Error())
	case errors.Is(err, service.ErrSKUExists),
		errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrCompletedTxImmutable),
		errors.As(err, &validationErr),
		errors.As(err, &stockErr),
		errors.As(err, &supplierInUse):
		return respondError(c, 400, err.Error())
	default:
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
			"error":   err.Error(),
		})
	}
}

// actor returns the authenticated user's email, set by the auth middleware.
func actor(c *fiber.Ctx) string {
	email := c.Locals("user_email")
	if email == nil {
		return "system"
	}
	return email.(string)
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

// pageParams normalizes page/limit query parameters; limit is capped at 100.
func pageParams(c *fiber.Ctx) (int, int) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// dateParam parses an RFC3339 or YYYY-MM-DD query parameter.
func dateParam(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
