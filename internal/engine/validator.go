package engine

import (
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"

	"github.com/claritax/vatlens/internal/model"
	"github.com/claritax/vatlens/internal/money"
	"github.com/claritax/vatlens/internal/rules"
)

var (
	// rateTolerance is the allowed deviation between the invoiced and the
	// resolved VAT rate, in percentage points.
	rateTolerance = decimal.NewFromFloat(0.1)

	// vatTolerance is the allowed deviation between the invoiced and the
	// computed VAT amount, covering ordinary cent rounding.
	vatTolerance = decimal.NewFromFloat(0.02)

	// vatIDThreshold is the net amount above which a customer VAT ID is
	// required on the invoice.
	vatIDThreshold = decimal.NewFromInt(1000)
)

const (
	maxInvoiceAge    = 1  // years in the past
	maxInvoiceFuture = 30 // days in the future
)

// Validator runs a full compliance pass over one invoice. It is stateless
// apart from the injected read-only rule table, so a single instance may be
// shared across any number of goroutines.
type Validator struct {
	rates         *RateResolver
	reverseCharge *ReverseChargeResolver
	vatID         *VATIDValidator
	penalties     *PenaltyEstimator
	clock         clockwork.Clock
	logger        *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock overrides the clock used for date-sanity checks.
func WithClock(c clockwork.Clock) Option {
	return func(v *Validator) { v.clock = c }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) { v.logger = l }
}

// NewValidator creates a validator over the given rule table.
func NewValidator(table *rules.Table, opts ...Option) *Validator {
	v := &Validator{
		reverseCharge: NewReverseChargeResolver(),
		penalties:     NewPenaltyEstimator(),
		clock:         clockwork.NewRealClock(),
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.rates = NewRateResolver(table, v.logger)
	v.vatID = NewVATIDValidator(table)
	return v
}

type check struct {
	name string
	fn   func(model.Invoice) *model.ValidationIssue
}

// Validate runs every compliance check against the invoice and aggregates
// the findings. It never returns an error and never panics: a check that
// fails internally is recorded as a validation_system_error issue so a bad
// record cannot halt a batch. Issues appear in fixed check order.
func (v *Validator) Validate(inv model.Invoice) model.ValidationResult {
	checks := []check{
		{"vat_rate", v.checkRate},
		{"vat_arithmetic", v.checkArithmetic},
		{"vat_id_presence", v.checkVATIDPresence},
		{"vat_id_format", v.checkVATIDFormat},
		{"reverse_charge", v.checkReverseCharge},
		{"invoice_date", v.checkDate},
	}

	issues := make([]model.ValidationIssue, 0, len(checks))
	for _, c := range checks {
		if issue := v.runCheck(c, inv); issue != nil {
			issues = append(issues, *issue)
		}
	}

	total := money.Zero
	for _, issue := range issues {
		total = total.Add(issue.PenaltyRisk)
	}

	return model.ValidationResult{
		Valid:            len(issues) == 0,
		Issues:           issues,
		TotalPenaltyRisk: money.RoundCents(total),
	}
}

// runCheck isolates a single check so one failure cannot suppress the rest.
func (v *Validator) runCheck(c check, inv model.Invoice) (issue *model.ValidationIssue) {
	defer func() {
		if r := recover(); r != nil {
			v.logger.Error("validation check failed internally",
				"check", c.name,
				"panic", fmt.Sprint(r))
			issue = &model.ValidationIssue{
				Type:        model.IssueSystemError,
				Severity:    model.SeverityLow,
				Message:     fmt.Sprintf("internal error while running %s check", c.name),
				PenaltyRisk: decimal.Zero,
			}
		}
	}()
	return c.fn(inv)
}

func (v *Validator) checkRate(inv model.Invoice) *model.ValidationIssue {
	expected := v.rates.Resolve(inv.CustomerCountry, inv.ProductCategory)
	if expected.Sub(inv.VATRatePercent).Abs().LessThanOrEqual(rateTolerance) {
		return nil
	}
	return &model.ValidationIssue{
		Type:     model.IssueIncorrectVATRate,
		Severity: model.SeverityHigh,
		Message: fmt.Sprintf("VAT rate %s%% does not match the expected rate for %s %s",
			inv.VATRatePercent, inv.CustomerCountry, inv.ProductCategory),
		Expected:    expected.String(),
		Actual:      inv.VATRatePercent.String(),
		PenaltyRisk: v.penalties.Estimate(inv.VATAmount, model.IssueIncorrectVATRate),
	}
}

func (v *Validator) checkArithmetic(inv model.Invoice) *model.ValidationIssue {
	expected := money.ExpectedVAT(inv.NetAmount, inv.VATRatePercent)
	diff := expected.Sub(inv.VATAmount).Abs()
	if diff.LessThanOrEqual(vatTolerance) {
		return nil
	}
	return &model.ValidationIssue{
		Type:     model.IssueCalculationError,
		Severity: model.SeverityMedium,
		Message: fmt.Sprintf("VAT amount %s does not equal net %s at %s%%",
			inv.VATAmount.StringFixed(2), inv.NetAmount.StringFixed(2), inv.VATRatePercent),
		Expected:    expected.StringFixed(2),
		Actual:      inv.VATAmount.StringFixed(2),
		PenaltyRisk: v.penalties.Estimate(diff, model.IssueCalculationError),
	}
}

func (v *Validator) checkVATIDPresence(inv model.Invoice) *model.ValidationIssue {
	if !inv.NetAmount.GreaterThan(vatIDThreshold) || inv.HasCustomerVATID() {
		return nil
	}
	return &model.ValidationIssue{
		Type:     model.IssueMissingVATID,
		Severity: model.SeverityMedium,
		Message: fmt.Sprintf("customer VAT ID is required for invoices above %s net",
			vatIDThreshold),
		PenaltyRisk: v.penalties.Estimate(inv.NetAmount, model.IssueMissingVATID),
	}
}

func (v *Validator) checkVATIDFormat(inv model.Invoice) *model.ValidationIssue {
	if !inv.HasCustomerVATID() || v.vatID.IsValidFormat(inv.CustomerVATID, inv.CustomerCountry) {
		return nil
	}
	return &model.ValidationIssue{
		Type:     model.IssueInvalidVATIDFormat,
		Severity: model.SeverityHigh,
		Message: fmt.Sprintf("customer VAT ID %q does not match the %s format",
			inv.CustomerVATID, inv.CustomerCountry),
		Actual:      inv.CustomerVATID,
		PenaltyRisk: v.penalties.Estimate(inv.VATAmount, model.IssueInvalidVATIDFormat),
	}
}

func (v *Validator) checkReverseCharge(inv model.Invoice) *model.ValidationIssue {
	hasValidID := inv.HasCustomerVATID() &&
		v.vatID.IsValidFormat(inv.CustomerVATID, inv.CustomerCountry)

	if !v.reverseCharge.Applies(inv.SupplierCountry, inv.CustomerCountry, inv.ProductCategory, hasValidID) {
		return nil
	}
	if !inv.VATRatePercent.GreaterThan(decimal.Zero) {
		return nil
	}
	return &model.ValidationIssue{
		Type:     model.IssueIncorrectReverseCharge,
		Severity: model.SeverityHigh,
		Message: fmt.Sprintf("reverse charge applies to %s -> %s %s, invoice must be zero-rated",
			inv.SupplierCountry, inv.CustomerCountry, inv.ProductCategory),
		Expected:    "0",
		Actual:      inv.VATRatePercent.String(),
		PenaltyRisk: v.penalties.Estimate(inv.VATAmount, model.IssueIncorrectReverseCharge),
	}
}

func (v *Validator) checkDate(inv model.Invoice) *model.ValidationIssue {
	now := v.clock.Now()
	oldest := now.AddDate(-maxInvoiceAge, 0, 0)
	newest := now.AddDate(0, 0, maxInvoiceFuture)

	if !inv.Date.Before(oldest) && !inv.Date.After(newest) {
		return nil
	}
	return &model.ValidationIssue{
		Type:     model.IssueDateValidationError,
		Severity: model.SeverityLow,
		Message: fmt.Sprintf("invoice date %s is outside the plausible window",
			inv.Date.Format("2006-01-02")),
		Actual:      inv.Date.Format("2006-01-02"),
		PenaltyRisk: decimal.Zero,
	}
}
