package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/claritax/vatlens/internal/rules"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
	rulesPath    string
)

var rootCmd = &cobra.Command{
	Use:   "vatlens",
	Short: "Validate trade invoices for EU VAT compliance",
	Long: `vatlens checks structured trade invoices against per-country VAT rules.

Checks performed:
  - VAT rate against the customer country and product category
  - VAT arithmetic (net * rate = VAT, cent tolerance)
  - Customer VAT ID presence and country-specific format
  - Reverse-charge treatment of cross-border B2B transactions
  - Invoice date plausibility

Each violation carries a severity and an estimated penalty exposure.

Examples:
  # Validate a JSON invoice file
  vatlens validate invoice.json

  # Validate many files with a custom rule table
  vatlens validate *.json --rules rules.yaml

  # List supported jurisdictions
  vatlens countries

  # Run the HTTP API
  vatlens serve --address :8080`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "table", "Output format (json, table)")
	rootCmd.PersistentFlags().StringVar(&rulesPath, "rules", "", "Path to a YAML rule table (env: VATLENS_RULES)")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if rulesPath == "" {
		rulesPath = os.Getenv("VATLENS_RULES")
	}
}

// loadRuleTable resolves the rule table from --rules or the defaults.
func loadRuleTable() (*rules.Table, error) {
	if rulesPath == "" {
		return rules.Default(), nil
	}
	printVerbose("loading rule table from %s\n", rulesPath)
	return rules.LoadFile(rulesPath)
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
