package vatlib_test

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claritax/vatlens/pkg/vatlib"
)

var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestValidator() *vatlib.Validator {
	return vatlib.NewValidatorWithOptions(vatlib.Options{
		Clock: clockwork.NewFakeClockAt(testNow),
	})
}

func sampleInvoice() vatlib.Invoice {
	return vatlib.Invoice{
		NetAmount:       decimal.NewFromInt(500),
		VATAmount:       decimal.NewFromInt(95),
		VATRatePercent:  decimal.NewFromInt(19),
		SupplierCountry: "DE",
		CustomerCountry: "DE",
		ProductCategory: vatlib.CategoryGoods,
		CustomerVATID:   "DE123456789",
		Date:            testNow,
	}
}

func TestValidator_Validate(t *testing.T) {
	v := newTestValidator()

	result := v.Validate(sampleInvoice())
	assert.True(t, result.Valid)

	bad := sampleInvoice()
	bad.CustomerVATID = "DE12"
	result = v.Validate(bad)
	assert.False(t, result.Valid)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, vatlib.IssueInvalidVATIDFormat, result.Issues[0].Type)
}

func TestValidator_DefaultRules(t *testing.T) {
	v := vatlib.NewValidator()
	assert.Equal(t, 27, v.Rules().Len())
}

func TestValidator_CustomRules(t *testing.T) {
	table, err := vatlib.RulesFromYAML([]byte(`
countries:
  DE:
    standard: 10
    reduced: 5
    digital: 10
    vat_id_pattern: 'DE\d{9}'
`))
	require.NoError(t, err)

	v := vatlib.NewValidatorWithOptions(vatlib.Options{
		Rules: table,
		Clock: clockwork.NewFakeClockAt(testNow),
	})

	// 19% is wrong under the swapped table
	inv := sampleInvoice()
	result := v.Validate(inv)
	assert.False(t, result.Valid)
	assert.Equal(t, vatlib.IssueIncorrectVATRate, result.Issues[0].Type)
}

func TestValidateBatch_PreservesOrder(t *testing.T) {
	v := newTestValidator()

	invoices := make([]vatlib.Invoice, 20)
	for i := range invoices {
		invoices[i] = sampleInvoice()
		if i%2 == 1 {
			invoices[i].CustomerVATID = "DE12"
		}
	}

	results := v.ValidateBatch(context.Background(), invoices, 4)
	require.Len(t, results, len(invoices))

	for i, r := range results {
		if i%2 == 1 {
			assert.False(t, r.Valid, "invoice %d", i)
		} else {
			assert.True(t, r.Valid, "invoice %d", i)
		}
	}
}

func TestValidateBatch_Empty(t *testing.T) {
	v := newTestValidator()
	results := v.ValidateBatch(context.Background(), nil, 4)
	assert.Empty(t, results)
}

func TestValidateBatch_DefaultWorkerCount(t *testing.T) {
	v := newTestValidator()

	invoices := []vatlib.Invoice{sampleInvoice(), sampleInvoice()}
	results := v.ValidateBatch(context.Background(), invoices, 0)
	require.Len(t, results, 2)
	assert.True(t, results[0].Valid)
	assert.True(t, results[1].Valid)
}

func TestValidateBatch_CancelledContext(t *testing.T) {
	v := newTestValidator()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	invoices := make([]vatlib.Invoice, 100)
	for i := range invoices {
		invoices[i] = sampleInvoice()
	}

	// Must return promptly without deadlock; slots may be zero values.
	results := v.ValidateBatch(ctx, invoices, 2)
	assert.Len(t, results, 100)
}

// Benchmark tests

func BenchmarkValidateBatch(b *testing.B) {
	v := vatlib.NewValidator()
	invoices := make([]vatlib.Invoice, 1000)
	for i := range invoices {
		invoices[i] = sampleInvoice()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.ValidateBatch(context.Background(), invoices, 8)
	}
}
