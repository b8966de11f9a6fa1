package rules_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claritax/vatlens/internal/model"
	"github.com/claritax/vatlens/internal/rules"
)

const sampleRules = `
countries:
  de:
    standard: 19
    reduced: 7
    digital: 19
    vat_id_pattern: 'DE\d{9}'
  CH:
    standard: 8.1
    reduced: 2.6
    digital: 8.1
`

func TestParse(t *testing.T) {
	table, err := rules.Parse([]byte(sampleRules))
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	// Country keys are normalized to upper case
	rs, ok := table.Rates(model.CountryDE)
	require.True(t, ok)
	assert.True(t, rs.Standard.Equal(decimal.NewFromInt(19)))

	re, ok := table.Pattern(model.CountryDE)
	require.True(t, ok)
	assert.True(t, re.MatchString("DE123456789"))

	// Non-EU jurisdictions are allowed in custom tables
	rs, ok = table.Rates(model.CountryCode("CH"))
	require.True(t, ok)
	assert.True(t, rs.Standard.Equal(decimal.NewFromFloat(8.1)))

	// No pattern configured for CH
	_, ok = table.Pattern(model.CountryCode("CH"))
	assert.False(t, ok)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := rules.Parse([]byte("countries: ["))
	require.Error(t, err)

	var decodeErr *model.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestParse_Empty(t *testing.T) {
	_, err := rules.Parse([]byte("countries: {}"))
	require.Error(t, err)
}

func TestParse_BadPattern(t *testing.T) {
	_, err := rules.Parse([]byte(`
countries:
  DE:
    standard: 19
    vat_id_pattern: 'DE[\d'
`))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleRules), 0o644))

	table, err := rules.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := rules.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var decodeErr *model.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}
