package handler

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"
	"go-inventory-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSupplierService struct {
	createFn func(req *model.Supplier, actor string) (*model.Supplier, error)
	listFn   func(filter repository.SupplierFilter) ([]model.Supplier, int64, error)
	getFn    func(id uuid.UUID) (*model.Supplier, error)
	updateFn func(id uuid.UUID, req *service.UpdateSupplierRequest, actor string) (*model.Supplier, error)
	deleteFn func(id uuid.UUID) error
}

func (s *stubSupplierService) Create(req *model.Supplier, actor string) (*model.Supplier, error) {
	return s.createFn(req, actor)
}

func (s *stubSupplierService) List(filter repository.SupplierFilter) ([]model.Supplier, int64, error) {
	return s.listFn(filter)
}

func (s *stubSupplierService) Get(id uuid.UUID) (*model.Supplier, error) {
	return s.getFn(id)
}

func (s *stubSupplierService) Update(id uuid.UUID, req *service.UpdateSupplierRequest, actor string) (*model.Supplier, error) {
	return s.updateFn(id, req, actor)
}

func (s *stubSupplierService) Delete(id uuid.UUID) error {
	return s.deleteFn(id)
}

func newSupplierApp(svc *stubSupplierService) *fiber.App {
	app := fiber.New()
	h := NewSupplierHandler(svc)
	app.Get("/api/suppliers", h.GetSuppliers)
	app.Get("/api/suppliers/:id", h.GetSupplier)
	app.Post("/api/suppliers", h.CreateSupplier)
	app.Put("/api/suppliers/:id", h.UpdateSupplier)
	app.Delete("/api/suppliers/:id", h.DeleteSupplier)
	return app
}

func putSupplier(t *testing.T, app *fiber.App, body string) {
	t.Helper()
	req := httptest.NewRequest("PUT", "/api/suppliers/"+uuid.NewString(), bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestUpdateSupplierOmittedActivationStaysUnset(t *testing.T) {
	var captured *service.UpdateSupplierRequest
	svc := &stubSupplierService{
		updateFn: func(id uuid.UUID, req *service.UpdateSupplierRequest, actor string) (*model.Supplier, error) {
			captured = req
			return &req.Supplier, nil
		},
	}
	app := newSupplierApp(svc)

	// A PUT that doesn't mention isActive must not reactivate the supplier.
	putSupplier(t, app, `{"name":"Acme","email":"orders@acme.com","phone":"555-0100"}`)
	require.NotNil(t, captured)
	assert.Nil(t, captured.IsActive)
}

func TestUpdateSupplierExplicitActivation(t *testing.T) {
	var captured *service.UpdateSupplierRequest
	svc := &stubSupplierService{
		updateFn: func(id uuid.UUID, req *service.UpdateSupplierRequest, actor string) (*model.Supplier, error) {
			captured = req
			return &req.Supplier, nil
		},
	}
	app := newSupplierApp(svc)

	putSupplier(t, app, `{"name":"Acme","email":"orders@acme.com","phone":"555-0100","isActive":false}`)
	require.NotNil(t, captured)
	require.NotNil(t, captured.IsActive)
	assert.False(t, *captured.IsActive)
}

func TestDeleteSupplierBlocked(t *testing.T) {
	svc := &stubSupplierService{
		deleteFn: func(id uuid.UUID) error {
			return &service.SupplierInUseError{ProductCount: 4}
		},
	}
	app := newSupplierApp(svc)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/suppliers/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "cannot delete supplier: 4 products are associated with this supplier", body["message"])
}
