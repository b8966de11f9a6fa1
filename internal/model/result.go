package model

import "github.com/shopspring/decimal"

// IssueType is the closed taxonomy of compliance violations.
type IssueType string

const (
	IssueIncorrectVATRate       IssueType = "incorrect_vat_rate"
	IssueCalculationError       IssueType = "calculation_error"
	IssueMissingVATID           IssueType = "missing_vat_id"
	IssueInvalidVATIDFormat     IssueType = "invalid_vat_id_format"
	IssueIncorrectReverseCharge IssueType = "incorrect_reverse_charge"
	IssueDateValidationError    IssueType = "date_validation_error"

	// IssueSystemError is emitted when a check fails internally; the
	// validation queue must treat it as "could not fully validate".
	IssueSystemError IssueType = "validation_system_error"
)

// Severity ranks how urgently an issue needs review.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// ValidationIssue is one detected violation with its estimated exposure.
type ValidationIssue struct {
	Type        IssueType       `json:"type"`
	Severity    Severity        `json:"severity"`
	Message     string          `json:"message"`
	Expected    string          `json:"expected_value,omitempty"`
	Actual      string          `json:"actual_value,omitempty"`
	PenaltyRisk decimal.Decimal `json:"penalty_risk"`
}

// ValidationResult aggregates all issues found on a single invoice.
// Valid is true exactly when Issues is empty, and TotalPenaltyRisk is the
// sum of the per-issue risks rounded once to cents.
type ValidationResult struct {
	Valid            bool              `json:"valid"`
	Issues           []ValidationIssue `json:"issues"`
	TotalPenaltyRisk decimal.Decimal   `json:"total_penalty_risk"`
}
