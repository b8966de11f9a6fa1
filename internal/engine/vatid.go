package engine

import (
	"strings"

	"github.com/claritax/vatlens/internal/model"
	"github.com/claritax/vatlens/internal/rules"
)

// VATIDValidator checks a VAT identifier against the issuing country's
// registration number format.
type VATIDValidator struct {
	table *rules.Table
}

// NewVATIDValidator creates a validator over the given rule table.
func NewVATIDValidator(table *rules.Table) *VATIDValidator {
	return &VATIDValidator{table: table}
}

// IsValidFormat reports whether the identifier matches the country's format.
// The identifier is upper-cased and trimmed before matching.
//
// Fail-open policy: a country with no configured pattern validates as true
// so unknown jurisdictions are never blocked. A true result therefore does
// NOT imply the jurisdiction is known; callers needing that distinction must
// consult the rule table directly.
func (v *VATIDValidator) IsValidFormat(id string, country model.CountryCode) bool {
	re, ok := v.table.Pattern(country)
	if !ok {
		return true
	}
	return re.MatchString(strings.ToUpper(strings.TrimSpace(id)))
}
