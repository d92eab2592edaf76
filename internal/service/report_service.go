package service

import (
	"bytes"
	"fmt"
	"time"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"

	"github.com/xuri/excelize/v2"
)

// InventoryValueReport is the payload of /products/reports/inventory-value.
type InventoryValueReport struct {
	Summary           repository.InventoryValueSummary `json:"summary"`
	CategoryBreakdown []repository.CategoryValue       `json:"categoryBreakdown"`
}

// TransactionSummaryReport is the payload of /transactions/reports/summary.
type TransactionSummaryReport struct {
	Summary     []repository.TypeSummary `json:"summary"`
	DailyTrends []repository.DailyTrend  `json:"dailyTrends"`
	TopProducts []repository.TopProduct  `json:"topProducts"`
}

type ReportService interface {
	LowStock() ([]model.Product, error)
	InventoryValue() (*InventoryValueReport, error)
	ProductsBySupplier() ([]repository.SupplierGroup, error)
	SupplierPerformance() ([]repository.SupplierPerformance, error)
	TransactionSummary(startDate, endDate *time.Time) (*TransactionSummaryReport, error)
	ExportProducts() (*bytes.Buffer, error)
}

type reportService struct {
	productRepo     repository.ProductRepository
	supplierRepo    repository.SupplierRepository
	transactionRepo repository.TransactionRepository
}

func NewReportService(pRepo repository.ProductRepository, sRepo repository.SupplierRepository, tRepo repository.TransactionRepository) ReportService {
	return &reportService{
		productRepo:     pRepo,
		supplierRepo:    sRepo,
		transactionRepo: tRepo,
	}
}

func (s *reportService) LowStock() ([]model.Product, error) {
	return s.productRepo.FindLowStock()
}

func (s *reportService) InventoryValue() (*InventoryValueReport, error) {
	summary, breakdown, err := s.productRepo.InventoryValue()
	if err != nil {
		return nil, err
	}
	return &InventoryValueReport{
		Summary:           *summary,
		CategoryBreakdown: breakdown,
	}, nil
}

func (s *reportService) ProductsBySupplier() ([]repository.SupplierGroup, error) {
	groups, err := s.productRepo.GroupBySupplier()
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindActive()
	if err != nil {
		return nil, err
	}

	bySupplier := make(map[string][]model.Product)
	for _, p := range products {
		p.Supplier = nil
		bySupplier[p.SupplierID.String()] = append(bySupplier[p.SupplierID.String()], p)
	}
	for i := range groups {
		groups[i].Products = bySupplier[groups[i].SupplierID.String()]
	}
	return groups, nil
}

func (s *reportService) SupplierPerformance() ([]repository.SupplierPerformance, error) {
	return s.supplierRepo.Performance()
}

func (s *reportService) TransactionSummary(startDate, endDate *time.Time) (*TransactionSummaryReport, error) {
	summary, err := s.transactionRepo.TypeSummary(startDate, endDate)
	if err != nil {
		return nil, err
	}
	trends, err := s.transactionRepo.DailyTrends(startDate, endDate)
	if err != nil {
		return nil, err
	}
	top, err := s.transactionRepo.TopProducts(startDate, endDate, 10)
	if err != nil {
		return nil, err
	}
	return &TransactionSummaryReport{
		Summary:     summary,
		DailyTrends: trends,
		TopProducts: top,
	}, nil
}

var exportHeader = []string{"SKU", "Name", "Category", "Quantity", "Minimum Stock", "Unit Price", "Total Value", "Stock Status", "Supplier"}

// ExportProducts renders all active products into an XLSX workbook.
func (s *reportService) ExportProducts() (*bytes.Buffer, error) {
	products, err := s.productRepo.FindActive()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Products"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for i, p := range products {
		supplierName := ""
		if p.Supplier != nil {
			supplierName = p.Supplier.Name
		}
		row := []interface{}{
			p.SKU, p.Name, p.Category, p.Quantity, p.MinimumStock,
			p.Price, p.TotalValue, string(p.StockStatus), supplierName,
		}
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f.WriteToBuffer()
}

// ExportFileName names the download with the generation date.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("inventory-%s.xlsx", now.Format("2006-01-02"))
}
