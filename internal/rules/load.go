package rules

import (
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/claritax/vatlens/internal/model"
)

type fileEntry struct {
	Standard     float64 `yaml:"standard"`
	Reduced      float64 `yaml:"reduced"`
	Digital      float64 `yaml:"digital"`
	VATIDPattern string  `yaml:"vat_id_pattern"`
}

type ruleFile struct {
	Countries map[string]fileEntry `yaml:"countries"`
}

// LoadFile builds a Table from a YAML rule file, replacing the built-in
// defaults entirely. Country keys are upper-cased ISO alpha-2 codes:
//
//	countries:
//	  DE:
//	    standard: 19
//	    reduced: 7
//	    digital: 19
//	    vat_id_pattern: 'DE\d{9}'
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.NewDecodeError(path, "failed to read rule file", err)
	}
	return Parse(data)
}

// Parse builds a Table from YAML rule data.
func Parse(data []byte) (*Table, error) {
	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, model.NewDecodeError("rules", "invalid YAML", err)
	}
	if len(f.Countries) == 0 {
		return nil, model.NewDecodeError("rules", "no countries defined", nil)
	}

	entries := make(map[model.CountryCode]Entry, len(f.Countries))
	for code, fe := range f.Countries {
		country := model.CountryCode(strings.ToUpper(strings.TrimSpace(code)))
		entries[country] = Entry{
			Rates: RateSet{
				Standard: decimal.NewFromFloat(fe.Standard),
				Reduced:  decimal.NewFromFloat(fe.Reduced),
				Digital:  decimal.NewFromFloat(fe.Digital),
			},
			IDPattern: fe.VATIDPattern,
		}
	}
	return NewTable(entries)
}
