package server

import (
	"github.com/claritax/vatlens/internal/model"
	"github.com/claritax/vatlens/internal/rules"
)

// BatchRequest is the request body for the batch validate endpoint
type BatchRequest struct {
	Invoices []model.Invoice `json:"invoices"`
}

// BatchResponse is the response for the batch validate endpoint
type BatchResponse struct {
	Results      []model.ValidationResult `json:"results"`
	Total        int                      `json:"total"`
	InvalidCount int                      `json:"invalid_count"`
}

// CountryInfo describes one supported jurisdiction
type CountryInfo struct {
	Country model.CountryCode `json:"country"`
	Rates   rules.RateSet     `json:"rates"`
}

// CountriesResponse lists the supported jurisdictions
type CountriesResponse struct {
	Countries []CountryInfo `json:"countries"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
