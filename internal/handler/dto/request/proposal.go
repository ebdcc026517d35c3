package request

import (
	"proposal-service/internal/domain/pricing"

	"github.com/google/uuid"
)

// DiscountRequest is the wire form of a discount: a type plus one
// value. Out-of-range values are clamped by the domain constructors,
// never rejected.
type DiscountRequest struct {
	Type  string  `json:"type" binding:"required,oneof=none percentage absolute"`
	Value float64 `json:"value"`
}

func (d *DiscountRequest) ToDomain() pricing.Discount {
	if d == nil {
		return pricing.NoDiscount()
	}
	return pricing.DiscountFromStorage(d.Type, d.Value)
}

type ProposalServiceRequest struct {
	ServiceID uuid.UUID        `json:"service_id" binding:"required"`
	Discount  *DiscountRequest `json:"discount,omitempty"`
}

type CreateProposalRequest struct {
	ClientID        uuid.UUID                `json:"client_id" binding:"required"`
	PackageID       *uuid.UUID               `json:"package_id,omitempty"`
	IncludePackage  bool                     `json:"include_package"`
	Services        []ProposalServiceRequest `json:"services"`
	PackageDiscount *DiscountRequest         `json:"package_discount,omitempty"`
	OverallDiscount *DiscountRequest         `json:"overall_discount,omitempty"`
	IncludesTax     bool                     `json:"includes_tax"`
	Note            string                   `json:"note"`
}

// UpdateProposalRequest replaces the whole selection of a draft.
type UpdateProposalRequest struct {
	ClientID        uuid.UUID                `json:"client_id" binding:"required"`
	PackageID       *uuid.UUID               `json:"package_id,omitempty"`
	IncludePackage  bool                     `json:"include_package"`
	Services        []ProposalServiceRequest `json:"services"`
	PackageDiscount *DiscountRequest         `json:"package_discount,omitempty"`
	OverallDiscount *DiscountRequest         `json:"overall_discount,omitempty"`
	IncludesTax     bool                     `json:"includes_tax"`
	Note            string                   `json:"note"`
}

type PricingPreviewRequest struct {
	PackageID       *uuid.UUID               `json:"package_id,omitempty"`
	IncludePackage  bool                     `json:"include_package"`
	Services        []ProposalServiceRequest `json:"services"`
	PackageDiscount *DiscountRequest         `json:"package_discount,omitempty"`
	OverallDiscount *DiscountRequest         `json:"overall_discount,omitempty"`
	IncludesTax     bool                     `json:"includes_tax"`
}
