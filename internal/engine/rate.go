package engine

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/claritax/vatlens/internal/model"
	"github.com/claritax/vatlens/internal/rules"
)

// fallbackStandardRate is returned for countries absent from the rule table.
// It is the German standard rate regardless of which country was asked for,
// carried over unchanged from the original rule set. This silently applies
// the wrong country's rate to unknown jurisdictions; callers relying on the
// fallback should watch the warning log.
var fallbackStandardRate = decimal.NewFromInt(19)

// RateResolver looks up the legally correct VAT rate for a country and
// product category.
type RateResolver struct {
	table  *rules.Table
	logger *slog.Logger
}

// NewRateResolver creates a resolver over the given rule table.
func NewRateResolver(table *rules.Table, logger *slog.Logger) *RateResolver {
	return &RateResolver{table: table, logger: logger}
}

// Resolve returns the expected VAT rate in percent. Digital services use the
// country's digital tier; services and goods use the standard tier (the
// reduced tier is never granted in this model). An unknown country is logged
// and resolved to the fixed fallback rate rather than failing the caller.
func (r *RateResolver) Resolve(country model.CountryCode, category model.ProductCategory) decimal.Decimal {
	rs, ok := r.table.Rates(country)
	if !ok {
		r.logger.Warn("no VAT rates configured for country, using fallback standard rate",
			"country", string(country),
			"fallback_rate", fallbackStandardRate.String())
		return fallbackStandardRate
	}

	switch category {
	case model.CategoryDigitalService:
		return rs.Digital
	case model.CategoryServices:
		return rs.Standard
	default:
		return rs.Standard
	}
}
