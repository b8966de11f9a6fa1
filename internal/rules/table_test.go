package rules_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claritax/vatlens/internal/model"
	"github.com/claritax/vatlens/internal/rules"
)

func TestDefault_CoversEU27(t *testing.T) {
	table := rules.Default()
	assert.Equal(t, 27, table.Len())

	for _, country := range table.Countries() {
		rs, ok := table.Rates(country)
		require.True(t, ok, "country %s", country)

		assert.True(t, rs.Standard.GreaterThan(decimal.Zero), "country %s standard", country)
		assert.False(t, rs.Reduced.IsNegative(), "country %s reduced", country)
		assert.True(t, rs.Digital.GreaterThan(decimal.Zero), "country %s digital", country)

		_, ok = table.Pattern(country)
		assert.True(t, ok, "country %s has no VAT ID pattern", country)
	}
}

func TestDefault_KnownRates(t *testing.T) {
	table := rules.Default()

	rs, ok := table.Rates(model.CountryDE)
	require.True(t, ok)
	assert.True(t, rs.Standard.Equal(decimal.NewFromInt(19)))
	assert.True(t, rs.Reduced.Equal(decimal.NewFromInt(7)))

	rs, ok = table.Rates(model.CountryHU)
	require.True(t, ok)
	assert.True(t, rs.Standard.Equal(decimal.NewFromInt(27)))
}

func TestRates_UnknownCountry(t *testing.T) {
	table := rules.Default()

	_, ok := table.Rates(model.CountryCode("XX"))
	assert.False(t, ok)

	_, ok = table.Pattern(model.CountryCode("XX"))
	assert.False(t, ok)
}

func TestPattern_Anchored(t *testing.T) {
	table := rules.Default()

	re, ok := table.Pattern(model.CountryDE)
	require.True(t, ok)

	assert.True(t, re.MatchString("DE123456789"))
	// A valid identifier embedded in junk must not match
	assert.False(t, re.MatchString("xDE123456789"))
	assert.False(t, re.MatchString("DE123456789x"))
}

func TestPatternSource(t *testing.T) {
	table := rules.Default()

	src, ok := table.PatternSource(model.CountryDE)
	require.True(t, ok)
	assert.Equal(t, `DE\d{9}`, src)

	_, ok = table.PatternSource(model.CountryCode("XX"))
	assert.False(t, ok)
}

func TestNewTable_InvalidPattern(t *testing.T) {
	_, err := rules.NewTable(map[model.CountryCode]rules.Entry{
		model.CountryDE: {
			Rates:     rules.RateSet{Standard: decimal.NewFromInt(19)},
			IDPattern: `DE[\d{9}`,
		},
	})
	require.Error(t, err)

	var ruleErr *model.RuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, model.CountryDE, ruleErr.Country)
}

func TestNewTable_NegativeRate(t *testing.T) {
	_, err := rules.NewTable(map[model.CountryCode]rules.Entry{
		model.CountryDE: {
			Rates: rules.RateSet{Standard: decimal.NewFromInt(-1)},
		},
	})
	require.Error(t, err)
}

func TestNewTable_NoPattern(t *testing.T) {
	table, err := rules.NewTable(map[model.CountryCode]rules.Entry{
		model.CountryDE: {
			Rates: rules.RateSet{
				Standard: decimal.NewFromInt(19),
				Reduced:  decimal.NewFromInt(7),
				Digital:  decimal.NewFromInt(19),
			},
		},
	})
	require.NoError(t, err)

	_, ok := table.Rates(model.CountryDE)
	assert.True(t, ok)
	_, ok = table.Pattern(model.CountryDE)
	assert.False(t, ok)
}

func TestCountries_Sorted(t *testing.T) {
	table := rules.Default()
	countries := table.Countries()

	for i := 1; i < len(countries); i++ {
		assert.Less(t, string(countries[i-1]), string(countries[i]))
	}
}
