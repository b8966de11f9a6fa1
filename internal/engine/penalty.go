package engine

import (
	"github.com/shopspring/decimal"

	"github.com/claritax/vatlens/internal/model"
	"github.com/claritax/vatlens/internal/money"
)

// defaultPenaltyMultiplier applies to issue types without an explicit entry.
var defaultPenaltyMultiplier = decimal.NewFromFloat(0.10)

// PenaltyEstimator converts a detected violation into an estimated monetary
// exposure, as a fixed percentage of the relevant invoice amount.
type PenaltyEstimator struct {
	multipliers map[model.IssueType]decimal.Decimal
}

// NewPenaltyEstimator creates an estimator with the standard multipliers.
func NewPenaltyEstimator() *PenaltyEstimator {
	return &PenaltyEstimator{
		multipliers: map[model.IssueType]decimal.Decimal{
			model.IssueIncorrectVATRate:       decimal.NewFromFloat(0.20),
			model.IssueCalculationError:       decimal.NewFromFloat(0.15),
			model.IssueMissingVATID:           decimal.NewFromFloat(0.05),
			model.IssueInvalidVATIDFormat:     decimal.NewFromFloat(0.10),
			model.IssueIncorrectReverseCharge: decimal.NewFromFloat(0.30),
			model.IssueDateValidationError:    decimal.Zero,
		},
	}
}

// Estimate returns the exposure for one violation, rounded to the nearest
// cent (half away from zero, never truncated, so exposure is not
// systematically understated). The result is always non-negative.
func (e *PenaltyEstimator) Estimate(amount decimal.Decimal, issueType model.IssueType) decimal.Decimal {
	m, ok := e.multipliers[issueType]
	if !ok {
		m = defaultPenaltyMultiplier
	}
	return money.RoundCents(amount.Abs().Mul(m))
}
