package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claritax/vatlens/internal/model"
)

func TestInvoice_Creation(t *testing.T) {
	inv := model.Invoice{
		NetAmount:       decimal.NewFromInt(1000),
		VATAmount:       decimal.NewFromInt(190),
		VATRatePercent:  decimal.NewFromInt(19),
		SupplierCountry: model.CountryFR,
		CustomerCountry: model.CountryDE,
		ProductCategory: model.CategoryGoods,
		CustomerVATID:   "DE123456789",
		Date:            time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, model.CountryFR, inv.SupplierCountry)
	assert.Equal(t, model.CountryDE, inv.CustomerCountry)
	assert.Equal(t, model.CategoryGoods, inv.ProductCategory)
	assert.True(t, inv.HasCustomerVATID())

	inv.CustomerVATID = ""
	assert.False(t, inv.HasCustomerVATID())
}

func TestCategoryConstants(t *testing.T) {
	categories := []model.ProductCategory{
		model.CategoryGoods,
		model.CategoryServices,
		model.CategoryDigitalService,
	}

	for _, c := range categories {
		assert.NotEmpty(t, string(c))
	}
}

func TestIssueTypeConstants(t *testing.T) {
	assert.Equal(t, model.IssueType("incorrect_vat_rate"), model.IssueIncorrectVATRate)
	assert.Equal(t, model.IssueType("calculation_error"), model.IssueCalculationError)
	assert.Equal(t, model.IssueType("missing_vat_id"), model.IssueMissingVATID)
	assert.Equal(t, model.IssueType("invalid_vat_id_format"), model.IssueInvalidVATIDFormat)
	assert.Equal(t, model.IssueType("incorrect_reverse_charge"), model.IssueIncorrectReverseCharge)
	assert.Equal(t, model.IssueType("date_validation_error"), model.IssueDateValidationError)
	assert.Equal(t, model.IssueType("validation_system_error"), model.IssueSystemError)
}

func TestRuleError(t *testing.T) {
	err := &model.RuleError{
		Country: model.CountryDE,
		Rule:    "vat_id_pattern",
		Message: "invalid pattern",
	}

	require.Contains(t, err.Error(), "DE")
	require.Contains(t, err.Error(), "vat_id_pattern")
	require.Contains(t, err.Error(), "invalid pattern")
}

func TestRuleError_WithCause(t *testing.T) {
	cause := assert.AnError
	err := model.NewRuleError(model.CountryFR, "rates", "lookup failed", cause)

	require.Contains(t, err.Error(), "FR")
	require.Contains(t, err.Error(), "rates")
	require.ErrorIs(t, err, cause)
}

func TestDecodeError(t *testing.T) {
	cause := assert.AnError
	err := model.NewDecodeError("invoice.json", "not valid JSON", cause)

	require.Contains(t, err.Error(), "invoice.json")
	require.Contains(t, err.Error(), "not valid JSON")
	require.ErrorIs(t, err, cause)
}
