package handler

import (
	"time"

	"go-inventory-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// GetLowStock returns active products at or below their minimum stock.
func (h *ReportHandler) GetLowStock(c *fiber.Ctx) error {
	products, err := h.service.LowStock()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    products,
		"count":   len(products),
	})
}

func (h *ReportHandler) GetInventoryValue(c *fiber.Ctx) error {
	report, err := h.service.InventoryValue()
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, 200, report, "")
}

func (h *ReportHandler) GetProductsBySupplier(c *fiber.Ctx) error {
	groups, err := h.service.ProductsBySupplier()
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, 200, groups, "")
}

func (h *ReportHandler) GetSupplierPerformance(c *fiber.Ctx) error {
	rows, err := h.service.SupplierPerformance()
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, 200, rows, "")
}

// GetTransactionSummary aggregates the ledger over an optional date window.
func (h *ReportHandler) GetTransactionSummary(c *fiber.Ctx) error {
	startDate, err := dateParam(c, "startDate")
	if err != nil {
		return respondError(c, 400, "Invalid startDate")
	}
	endDate, err := dateParam(c, "endDate")
	if err != nil {
		return respondError(c, 400, "Invalid endDate")
	}

	report, err := h.service.TransactionSummary(startDate, endDate)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, 200, report, "")
}

// ExportProducts streams the active product list as an XLSX download.
func (h *ReportHandler) ExportProducts(c *fiber.Ctx) error {
	buf, err := h.service.ExportProducts()
	if err != nil {
		return respondServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+service.ExportFileName(time.Now())+`"`)
	return c.Send(buf.Bytes())
}
