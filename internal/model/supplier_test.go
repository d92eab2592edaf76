package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupplierBeforeSaveNormalizesEmail(t *testing.T) {
	s := &Supplier{Email: " Orders@ACME.com "}
	require.NoError(t, s.BeforeSave(nil))
	assert.Equal(t, "orders@acme.com", s.Email)
}

func TestSupplierBeforeSaveDefaults(t *testing.T) {
	s := &Supplier{Email: "a@b.com"}
	require.NoError(t, s.BeforeSave(nil))
	assert.Equal(t, PaymentNet30, s.PaymentTerms)
	assert.Equal(t, 3, s.Rating)
}

func TestSupplierFullAddress(t *testing.T) {
	s := &Supplier{Address: Address{
		Street:  "1 Main St",
		City:    "Springfield",
		State:   "IL",
		ZipCode: "62701",
		Country: "USA",
	}}
	require.NoError(t, s.AfterFind(nil))
	assert.Equal(t, "1 Main St, Springfield, IL 62701, USA", s.FullAddress)
}

func TestSupplierFullAddressWithoutStateAndZip(t *testing.T) {
	s := &Supplier{Address: Address{
		Street:  "1 Main St",
		City:    "Springfield",
		Country: "USA",
	}}
	require.NoError(t, s.AfterFind(nil))
	assert.Equal(t, "1 Main St, Springfield, USA", s.FullAddress)
}
