package rules

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/claritax/vatlens/internal/model"
)

// RateSet holds the three VAT rate tiers for one jurisdiction, in percent.
type RateSet struct {
	Standard decimal.Decimal `json:"standard"`
	Reduced  decimal.Decimal `json:"reduced"`
	Digital  decimal.Decimal `json:"digital"`
}

// Entry is the raw per-country configuration a Table is built from.
type Entry struct {
	Rates     RateSet
	IDPattern string
}

// Table is the immutable per-country rule set: rate tiers and VAT-ID format
// patterns. Build it once at startup and share it freely; it is safe for
// concurrent readers and is never mutated after construction.
type Table struct {
	rates      map[model.CountryCode]RateSet
	patterns   map[model.CountryCode]*regexp.Regexp
	patternSrc map[model.CountryCode]string
}

// NewTable builds a Table from per-country entries. Patterns are compiled
// anchored, so an entry pattern matches the whole identifier or not at all.
func NewTable(entries map[model.CountryCode]Entry) (*Table, error) {
	t := &Table{
		rates:      make(map[model.CountryCode]RateSet, len(entries)),
		patterns:   make(map[model.CountryCode]*regexp.Regexp, len(entries)),
		patternSrc: make(map[model.CountryCode]string, len(entries)),
	}

	for country, entry := range entries {
		if entry.Rates.Standard.IsNegative() || entry.Rates.Reduced.IsNegative() || entry.Rates.Digital.IsNegative() {
			return nil, model.NewRuleError(country, "rates", "rates must not be negative", nil)
		}
		t.rates[country] = entry.Rates

		if entry.IDPattern == "" {
			continue
		}
		re, err := regexp.Compile(fmt.Sprintf("^(?:%s)$", entry.IDPattern))
		if err != nil {
			return nil, model.NewRuleError(country, "vat_id_pattern", "invalid pattern", err)
		}
		t.patterns[country] = re
		t.patternSrc[country] = entry.IDPattern
	}

	return t, nil
}

// Rates returns the rate set for a country, ok=false when unsupported.
func (t *Table) Rates(country model.CountryCode) (RateSet, bool) {
	rs, ok := t.rates[country]
	return rs, ok
}

// Pattern returns the compiled VAT-ID pattern for a country, ok=false when
// no pattern is configured.
func (t *Table) Pattern(country model.CountryCode) (*regexp.Regexp, bool) {
	re, ok := t.patterns[country]
	return re, ok
}

// PatternSource returns the uncompiled pattern text for a country, ok=false
// when no pattern is configured.
func (t *Table) PatternSource(country model.CountryCode) (string, bool) {
	src, ok := t.patternSrc[country]
	return src, ok
}

// Countries lists every configured jurisdiction in code order.
func (t *Table) Countries() []model.CountryCode {
	out := make([]model.CountryCode, 0, len(t.rates))
	for c := range t.rates {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of configured jurisdictions.
func (t *Table) Len() int {
	return len(t.rates)
}
