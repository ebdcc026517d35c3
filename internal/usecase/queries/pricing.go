package queries

import (
	"context"

	"proposal-service/internal/domain/pricing"
	"proposal-service/internal/infra"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// PricingPreviewInput is a pricing request that never touches the
// proposals table: the UI calls this while the user is still editing.
type PricingPreviewInput struct {
	PackageID       *uuid.UUID
	IncludePackage  bool
	Services        []PreviewServiceInput
	PackageDiscount pricing.Discount
	OverallDiscount pricing.Discount
	IncludesTax     bool
}

type PreviewServiceInput struct {
	ServiceID uuid.UUID
	Discount  pricing.Discount
}

type PricingQueries interface {
	Preview(ctx context.Context, input PricingPreviewInput) (*pricing.Breakdown, error)
}

type pricingQueriesImpl struct {
	catalog CatalogReadStore
}

func NewPricingQueries(catalog CatalogReadStore) PricingQueries {
	return &pricingQueriesImpl{catalog: catalog}
}

// Preview prices the selection against current catalog prices. Missing
// catalog entries price as zero instead of failing, the same
// permissiveness the proposal workflow applies.
func (q *pricingQueriesImpl) Preview(ctx context.Context, input PricingPreviewInput) (*pricing.Breakdown, error) {
	sel := pricing.Selection{
		IncludePackage: input.IncludePackage,
		IncludesTax:    input.IncludesTax,
	}

	if input.PackageID != nil {
		pkg, err := q.catalog.FindPackageByID(ctx, *input.PackageID)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		if pkg != nil {
			sel.Package = &pricing.PackageLine{ID: pkg.ID, Price: pkg.Price}
		}
	}

	serviceIDs := lo.Map(input.Services, func(s PreviewServiceInput, _ int) uuid.UUID {
		return s.ServiceID
	})
	services, err := q.catalog.FindServicesByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	priceByID := lo.SliceToMap(services, func(s *ServiceView) (uuid.UUID, int64) {
		return s.ID, s.Price
	})

	discounts := pricing.DiscountSet{
		Package:  input.PackageDiscount,
		Overall:  input.OverallDiscount,
		Services: make(map[uuid.UUID]pricing.Discount, len(input.Services)),
	}
	for _, svc := range input.Services {
		sel.Services = append(sel.Services, pricing.ServiceLine{
			ID:    svc.ServiceID,
			Price: priceByID[svc.ServiceID], // zero when unknown
		})
		if !svc.Discount.IsZero() {
			discounts.Services[svc.ServiceID] = svc.Discount
		}
	}

	breakdown := pricing.ComputeBreakdown(sel, discounts)
	return &breakdown, nil
}
