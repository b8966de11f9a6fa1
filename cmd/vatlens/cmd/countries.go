package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List supported jurisdictions and their rules",
	Long: `Display every jurisdiction in the active rule table with its VAT
rate tiers and VAT identifier format.

Examples:
  vatlens countries
  vatlens countries --rules custom.yaml -f json`,
	RunE: runCountries,
}

func init() {
	rootCmd.AddCommand(countriesCmd)
}

type countryRow struct {
	Country  string `json:"country"`
	Standard string `json:"standard"`
	Reduced  string `json:"reduced"`
	Digital  string `json:"digital"`
	Pattern  string `json:"vat_id_pattern,omitempty"`
}

func runCountries(cmd *cobra.Command, args []string) error {
	table, err := loadRuleTable()
	if err != nil {
		return err
	}

	rows := make([]countryRow, 0, table.Len())
	for _, country := range table.Countries() {
		rs, ok := table.Rates(country)
		if !ok {
			continue
		}
		row := countryRow{
			Country:  string(country),
			Standard: rs.Standard.String(),
			Reduced:  rs.Reduced.String(),
			Digital:  rs.Digital.String(),
		}
		if src, ok := table.PatternSource(country); ok {
			row.Pattern = src
		}
		rows = append(rows, row)
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	}

	fmt.Printf("%-8s %-9s %-8s %-8s %s\n", "COUNTRY", "STANDARD", "REDUCED", "DIGITAL", "VAT ID PATTERN")
	for _, row := range rows {
		fmt.Printf("%-8s %-9s %-8s %-8s %s\n",
			row.Country, row.Standard, row.Reduced, row.Digital, row.Pattern)
	}
	return nil
}
