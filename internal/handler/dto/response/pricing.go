package response

import (
	"proposal-service/internal/domain/pricing"
)

type PricingPreviewResponse struct {
	Breakdown pricing.Breakdown `json:"breakdown"`
}

func FromBreakdown(b *pricing.Breakdown) *PricingPreviewResponse {
	return &PricingPreviewResponse{Breakdown: *b}
}
