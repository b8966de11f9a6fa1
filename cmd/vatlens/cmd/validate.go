package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/claritax/vatlens/internal/engine"
	"github.com/claritax/vatlens/internal/logging"
	"github.com/claritax/vatlens/internal/model"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate invoice files for VAT compliance",
	Long: `Validate one or more JSON invoice files against the VAT rule table.

A file holds either a single invoice object or an array of invoices:

  {
    "net_amount": "1000.00",
    "vat_amount": "190.00",
    "vat_rate_percent": "19",
    "supplier_country": "FR",
    "customer_country": "DE",
    "product_category": "goods",
    "customer_vat_id": "DE123456789",
    "date": "2026-08-01T00:00:00Z"
  }

Examples:
  vatlens validate invoice.json
  vatlens validate imports/*.json --rules custom.yaml -f json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// FileResult holds the validation outcome for a single file
type FileResult struct {
	File    string                   `json:"file"`
	Error   string                   `json:"error,omitempty"`
	Results []model.ValidationResult `json:"results,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found to validate")
	}

	table, err := loadRuleTable()
	if err != nil {
		return err
	}

	logger := logging.Discard()
	if verbose {
		logger = logging.New("debug", "text")
	}
	validator := engine.NewValidator(table, engine.WithLogger(logger))

	results := make([]*FileResult, 0, len(files))
	allValid := true

	for _, file := range files {
		result := validateFile(validator, file)
		results = append(results, result)

		if result.Error != "" {
			allValid = false
			continue
		}
		for _, r := range result.Results {
			if !r.Valid {
				allValid = false
			}
		}
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return err
		}
	} else {
		printResults(results)
	}

	if !allValid {
		return fmt.Errorf("validation failed for some invoices")
	}
	return nil
}

func validateFile(validator *engine.Validator, filePath string) *FileResult {
	result := &FileResult{File: filePath}

	invoices, err := readInvoices(filePath)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Results = make([]model.ValidationResult, len(invoices))
	for i, inv := range invoices {
		result.Results[i] = validator.Validate(inv)
	}
	return result
}

// readInvoices decodes a file holding one invoice object or an array.
func readInvoices(filePath string) ([]model.Invoice, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, model.NewDecodeError(filePath, "failed to read file", err)
	}

	var many []model.Invoice
	if err := json.Unmarshal(data, &many); err == nil {
		return many, nil
	}

	var one model.Invoice
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, model.NewDecodeError(filePath, "not a JSON invoice or invoice array", err)
	}
	return []model.Invoice{one}, nil
}

func printResults(results []*FileResult) {
	for _, fr := range results {
		if fr.Error != "" {
			fmt.Printf("✗ %s: ERROR\n  - %s\n", fr.File, fr.Error)
			continue
		}
		for i, r := range fr.Results {
			label := fr.File
			if len(fr.Results) > 1 {
				label = fmt.Sprintf("%s[%d]", fr.File, i)
			}
			if r.Valid {
				fmt.Printf("✓ %s: VALID\n", label)
				continue
			}
			fmt.Printf("✗ %s: INVALID (exposure %s)\n", label, r.TotalPenaltyRisk.StringFixed(2))
			for _, issue := range r.Issues {
				fmt.Printf("  - [%s] %s: %s (risk %s)\n",
					issue.Severity, issue.Type, issue.Message, issue.PenaltyRisk.StringFixed(2))
			}
		}
	}
}

func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", arg, err)
		}

		if len(matches) == 0 {
			info, err := os.Stat(arg)
			if err != nil {
				return nil, fmt.Errorf("file not found: %s", arg)
			}
			if info.IsDir() {
				err := filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
					if err != nil {
						return err
					}
					if !info.IsDir() && filepath.Ext(path) == ".json" {
						files = append(files, path)
					}
					return nil
				})
				if err != nil {
					return nil, err
				}
			} else {
				files = append(files, arg)
			}
			continue
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				continue
			}
			if !info.IsDir() {
				files = append(files, match)
			}
		}
	}

	return files, nil
}
