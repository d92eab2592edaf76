package service

import (
	"strings"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"
	"go-inventory-api/pkg/validator"

	"github.com/google/uuid"
)

// UpdateSupplierRequest is a full-record replacement except for IsActive,
// which is a pointer so an omitted field preserves the stored flag instead of
// silently reactivating a deactivated supplier.
type UpdateSupplierRequest struct {
	model.Supplier
	IsActive *bool `json:"isActive"`
}

type SupplierService interface {
	Create(req *model.Supplier, actor string) (*model.Supplier, error)
	List(filter repository.SupplierFilter) ([]model.Supplier, int64, error)
	Get(id uuid.UUID) (*model.Supplier, error)
	Update(id uuid.UUID, req *UpdateSupplierRequest, actor string) (*model.Supplier, error)
	Delete(id uuid.UUID) error
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
}

func NewSupplierService(sRepo repository.SupplierRepository, pRepo repository.ProductRepository) SupplierService {
	return &supplierService{
		supplierRepo: sRepo,
		productRepo:  pRepo,
	}
}

func (s *supplierService) Create(req *model.Supplier, actor string) (*model.Supplier, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	if err := s.checkEmail(req.Email, uuid.Nil); err != nil {
		return nil, err
	}

	req.CreatedBy = actor
	req.UpdatedBy = actor
	if err := s.supplierRepo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

// List attaches each supplier's active-product count.
func (s *supplierService) List(filter repository.SupplierFilter) ([]model.Supplier, int64, error) {
	suppliers, total, err := s.supplierRepo.List(filter)
	if err != nil {
		return nil, 0, err
	}
	for i := range suppliers {
		count, err := s.productRepo.CountActiveBySupplier(suppliers[i].ID)
		if err != nil {
			return nil, 0, err
		}
		suppliers[i].ProductCount = count
	}
	return suppliers, total, nil
}

// Get attaches all of the supplier's active products.
func (s *supplierService) Get(id uuid.UUID) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		return nil, ErrSupplierNotFound
	}

	products, err := s.productRepo.FindActiveBySupplier(id)
	if err != nil {
		return nil, err
	}
	supplier.Products = products
	supplier.ProductCount = int64(len(products))
	return supplier, nil
}

func (s *supplierService) Update(id uuid.UUID, req *UpdateSupplierRequest, actor string) (*model.Supplier, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	existing, err := s.supplierRepo.FindByID(id)
	if err != nil {
		return nil, ErrSupplierNotFound
	}

	if err := s.checkEmail(req.Email, id); err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Address = req.Address
	existing.ContactPerson = req.ContactPerson
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	existing.PaymentTerms = req.PaymentTerms
	existing.Rating = req.Rating
	existing.UpdatedBy = actor

	if err := s.supplierRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete rejects outright while any active product references the supplier.
// There is no soft-delete fallback here.
func (s *supplierService) Delete(id uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(id); err != nil {
		return ErrSupplierNotFound
	}

	count, err := s.productRepo.CountActiveBySupplier(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &SupplierInUseError{ProductCount: count}
	}
	return s.supplierRepo.Delete(id)
}

// checkEmail enforces case-insensitive email uniqueness; excludeID skips the
// supplier being updated.
func (s *supplierService) checkEmail(email string, excludeID uuid.UUID) error {
	normalized := strings.ToLower(strings.TrimSpace(email))
	existing, err := s.supplierRepo.FindByEmail(normalized)
	if err != nil {
		return nil
	}
	if existing.ID != uuid.Nil && existing.ID != excludeID {
		return ErrEmailExists
	}
	return nil
}
