package rules

import (
	"github.com/shopspring/decimal"

	"github.com/claritax/vatlens/internal/model"
)

// Default returns the built-in EU-27 rule table.
//
// Standard and reduced rates follow the member states' current headline
// rates. The EU has no separate statutory tier for digital services, so the
// digital rate mirrors the standard rate; a swapped table may diverge.
// VAT-ID patterns follow each state's registration number structure (Greece
// issues identifiers under the EL prefix).
func Default() *Table {
	t, err := NewTable(defaultEntries())
	if err != nil {
		// The built-in entries are fixed at compile time.
		panic(err)
	}
	return t
}

func defaultEntries() map[model.CountryCode]Entry {
	return map[model.CountryCode]Entry{
		model.CountryAT: entry(20, 10, 20, `ATU\d{8}`),
		model.CountryBE: entry(21, 6, 21, `BE[01]\d{9}`),
		model.CountryBG: entry(20, 9, 20, `BG\d{9,10}`),
		model.CountryHR: entry(25, 13, 25, `HR\d{11}`),
		model.CountryCY: entry(19, 5, 19, `CY\d{8}[A-Z]`),
		model.CountryCZ: entry(21, 12, 21, `CZ\d{8,10}`),
		model.CountryDK: entry(25, 25, 25, `DK\d{8}`),
		model.CountryEE: entry(22, 9, 22, `EE\d{9}`),
		model.CountryFI: entry(25.5, 14, 25.5, `FI\d{8}`),
		model.CountryFR: entry(20, 5.5, 20, `FR[A-HJ-NP-Z0-9]{2}\d{9}`),
		model.CountryDE: entry(19, 7, 19, `DE\d{9}`),
		model.CountryGR: entry(24, 13, 24, `EL\d{9}`),
		model.CountryHU: entry(27, 5, 27, `HU\d{8}`),
		model.CountryIE: entry(23, 13.5, 23, `IE\d{7}[A-W][A-IW]?`),
		model.CountryIT: entry(22, 10, 22, `IT\d{11}`),
		model.CountryLV: entry(21, 12, 21, `LV\d{11}`),
		model.CountryLT: entry(21, 9, 21, `LT(\d{9}|\d{12})`),
		model.CountryLU: entry(17, 8, 17, `LU\d{8}`),
		model.CountryMT: entry(18, 5, 18, `MT\d{8}`),
		model.CountryNL: entry(21, 9, 21, `NL\d{9}B\d{2}`),
		model.CountryPL: entry(23, 8, 23, `PL\d{10}`),
		model.CountryPT: entry(23, 6, 23, `PT\d{9}`),
		model.CountryRO: entry(19, 9, 19, `RO\d{2,10}`),
		model.CountrySK: entry(23, 19, 23, `SK\d{10}`),
		model.CountrySI: entry(22, 9.5, 22, `SI\d{8}`),
		model.CountryES: entry(21, 10, 21, `ES[A-Z0-9]\d{7}[A-Z0-9]`),
		model.CountrySE: entry(25, 12, 25, `SE\d{12}`),
	}
}

func entry(standard, reduced, digital float64, pattern string) Entry {
	return Entry{
		Rates: RateSet{
			Standard: decimal.NewFromFloat(standard),
			Reduced:  decimal.NewFromFloat(reduced),
			Digital:  decimal.NewFromFloat(digital),
		},
		IDPattern: pattern,
	}
}
