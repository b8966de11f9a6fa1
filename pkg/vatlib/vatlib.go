// Package vatlib provides a public API for VAT compliance validation of
// trade invoices.
//
// This package exposes the core types for checking an invoice's VAT rate,
// arithmetic, counterpart identifier, and reverse-charge treatment against
// per-country rules, and for estimating the monetary exposure of any
// violations found.
//
// Example usage:
//
//	v := vatlib.NewValidator()
//	result := v.Validate(invoice)
//	if !result.Valid {
//	    fmt.Println(result.TotalPenaltyRisk)
//	}
package vatlib

import (
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/claritax/vatlens/internal/engine"
	"github.com/claritax/vatlens/internal/model"
	"github.com/claritax/vatlens/internal/rules"
)

// Re-export core types for public API
type (
	Invoice          = model.Invoice
	ValidationIssue  = model.ValidationIssue
	ValidationResult = model.ValidationResult
	CountryCode      = model.CountryCode
	ProductCategory  = model.ProductCategory
	IssueType        = model.IssueType
	Severity         = model.Severity
	RuleTable        = rules.Table
	RateSet          = rules.RateSet
)

// Re-export product categories
const (
	CategoryGoods          = model.CategoryGoods
	CategoryServices       = model.CategoryServices
	CategoryDigitalService = model.CategoryDigitalService
)

// Re-export issue taxonomy
const (
	IssueIncorrectVATRate       = model.IssueIncorrectVATRate
	IssueCalculationError       = model.IssueCalculationError
	IssueMissingVATID           = model.IssueMissingVATID
	IssueInvalidVATIDFormat     = model.IssueInvalidVATIDFormat
	IssueIncorrectReverseCharge = model.IssueIncorrectReverseCharge
	IssueDateValidationError    = model.IssueDateValidationError
	IssueSystemError            = model.IssueSystemError
)

// Re-export severities
const (
	SeverityHigh   = model.SeverityHigh
	SeverityMedium = model.SeverityMedium
	SeverityLow    = model.SeverityLow
)

// DefaultRules returns the built-in EU-27 rule table.
func DefaultRules() *RuleTable {
	return rules.Default()
}

// RulesFromFile loads a rule table from a YAML file.
func RulesFromFile(path string) (*RuleTable, error) {
	return rules.LoadFile(path)
}

// RulesFromYAML loads a rule table from YAML data.
func RulesFromYAML(data []byte) (*RuleTable, error) {
	return rules.Parse(data)
}

// Options configures a Validator.
type Options struct {
	// Rules overrides the built-in rule table.
	Rules *RuleTable
	// Logger receives engine diagnostics; nil discards them.
	Logger *slog.Logger
	// Clock overrides the clock for date checks; nil uses wall time.
	Clock clockwork.Clock
}

// Validator validates invoices against a fixed rule table. It is safe for
// concurrent use.
type Validator struct {
	table  *rules.Table
	engine *engine.Validator
}

// NewValidator creates a validator with the built-in rule table.
func NewValidator() *Validator {
	return NewValidatorWithOptions(Options{})
}

// NewValidatorWithOptions creates a validator with the given options.
func NewValidatorWithOptions(opts Options) *Validator {
	table := opts.Rules
	if table == nil {
		table = rules.Default()
	}

	var engineOpts []engine.Option
	if opts.Logger != nil {
		engineOpts = append(engineOpts, engine.WithLogger(opts.Logger))
	}
	if opts.Clock != nil {
		engineOpts = append(engineOpts, engine.WithClock(opts.Clock))
	}

	return &Validator{
		table:  table,
		engine: engine.NewValidator(table, engineOpts...),
	}
}

// Rules returns the rule table the validator was built with.
func (v *Validator) Rules() *RuleTable {
	return v.table
}

// Validate runs a full compliance pass over one invoice. It never fails:
// internal faults surface as validation_system_error issues on the result.
func (v *Validator) Validate(inv Invoice) ValidationResult {
	return v.engine.Validate(inv)
}
