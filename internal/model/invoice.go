package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CountryCode is an ISO 3166-1 alpha-2 code for a supported EU member state.
type CountryCode string

// Supported jurisdictions (EU-27).
const (
	CountryAT CountryCode = "AT"
	CountryBE CountryCode = "BE"
	CountryBG CountryCode = "BG"
	CountryHR CountryCode = "HR"
	CountryCY CountryCode = "CY"
	CountryCZ CountryCode = "CZ"
	CountryDK CountryCode = "DK"
	CountryEE CountryCode = "EE"
	CountryFI CountryCode = "FI"
	CountryFR CountryCode = "FR"
	CountryDE CountryCode = "DE"
	CountryGR CountryCode = "GR"
	CountryHU CountryCode = "HU"
	CountryIE CountryCode = "IE"
	CountryIT CountryCode = "IT"
	CountryLV CountryCode = "LV"
	CountryLT CountryCode = "LT"
	CountryLU CountryCode = "LU"
	CountryMT CountryCode = "MT"
	CountryNL CountryCode = "NL"
	CountryPL CountryCode = "PL"
	CountryPT CountryCode = "PT"
	CountryRO CountryCode = "RO"
	CountrySK CountryCode = "SK"
	CountrySI CountryCode = "SI"
	CountryES CountryCode = "ES"
	CountrySE CountryCode = "SE"
)

// ProductCategory classifies what an invoice line sells.
type ProductCategory string

const (
	CategoryGoods          ProductCategory = "goods"
	CategoryServices       ProductCategory = "services"
	CategoryDigitalService ProductCategory = "digital_service"
)

// Invoice is the structured input to validation. The engine treats it as
// read-only and holds no reference to it after Validate returns.
type Invoice struct {
	NetAmount       decimal.Decimal `json:"net_amount"`
	VATAmount       decimal.Decimal `json:"vat_amount"`
	VATRatePercent  decimal.Decimal `json:"vat_rate_percent"`
	SupplierCountry CountryCode     `json:"supplier_country"`
	CustomerCountry CountryCode     `json:"customer_country"`
	ProductCategory ProductCategory `json:"product_category"`
	CustomerVATID   string          `json:"customer_vat_id,omitempty"`
	Date            time.Time       `json:"date"`
}

// HasCustomerVATID reports whether the buyer supplied a VAT identifier.
func (inv *Invoice) HasCustomerVATID() bool {
	return inv.CustomerVATID != ""
}
