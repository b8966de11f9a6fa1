package engine

import "github.com/claritax/vatlens/internal/model"

// ReverseChargeResolver decides whether the cross-border reverse-charge
// mechanism zero-rates a transaction.
type ReverseChargeResolver struct{}

// NewReverseChargeResolver creates a resolver.
func NewReverseChargeResolver() *ReverseChargeResolver {
	return &ReverseChargeResolver{}
}

// Applies reports whether reverse charge shifts VAT liability to the
// customer. The conditions short-circuit in order: domestic transactions
// never qualify, B2C transactions (no valid customer VAT ID) never qualify,
// and of the cross-border B2B cases only services and digital services do.
func (r *ReverseChargeResolver) Applies(supplier, customer model.CountryCode, category model.ProductCategory, hasValidVATID bool) bool {
	if supplier == customer {
		return false
	}
	if !hasValidVATID {
		return false
	}
	switch category {
	case model.CategoryServices, model.CategoryDigitalService:
		return true
	}
	return false
}
