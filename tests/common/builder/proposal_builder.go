//go:build unit || e2e

package builder

import (
	"time"

	dompricing "proposal-service/internal/domain/pricing"
	domproposal "proposal-service/internal/domain/proposal"
	reqdto "proposal-service/internal/handler/dto/request"
	"proposal-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// ProposalBuilder assembles a draft with one discounted package and one
// discounted service. The defaults price out to a final of 16387:
// package 17500 at 10% off, service 2000 minus 500, overall 5% off.
type ProposalBuilder struct {
	OrderID         string
	ClientID        uuid.UUID
	CreatedBy       uuid.UUID
	PackageID       *uuid.UUID
	PackagePrice    int64
	IncludePackage  bool
	Services        []domproposal.SelectedService
	PackageDiscount dompricing.Discount
	OverallDiscount dompricing.Discount
	IncludesTax     bool
	Note            string
}

func NewProposalBuilder() *ProposalBuilder {
	packageID := uuid.New()
	return &ProposalBuilder{
		OrderID:        "XMA-2026-08-00001",
		ClientID:       uuid.New(),
		CreatedBy:      uuid.New(),
		PackageID:      &packageID,
		PackagePrice:   17500,
		IncludePackage: true,
		Services: []domproposal.SelectedService{
			{ServiceID: uuid.New(), Price: 2000, Discount: dompricing.NewAbsoluteDiscount(500)},
		},
		PackageDiscount: dompricing.NewPercentageDiscount(10),
		OverallDiscount: dompricing.NewPercentageDiscount(5),
		IncludesTax:     false,
		Note:            "Initial engagement proposal",
	}
}

func (b *ProposalBuilder) With(mutate func(*ProposalBuilder)) *ProposalBuilder {
	mutate(b)
	return b
}

func (b *ProposalBuilder) WithOrderID(orderID string) *ProposalBuilder {
	b.OrderID = orderID
	return b
}

func (b *ProposalBuilder) WithoutPackage() *ProposalBuilder {
	b.PackageID = nil
	b.IncludePackage = false
	b.PackageDiscount = dompricing.NoDiscount()
	return b
}

func (b *ProposalBuilder) WithoutServices() *ProposalBuilder {
	b.Services = nil
	return b
}

func (b *ProposalBuilder) WithServices(services ...domproposal.SelectedService) *ProposalBuilder {
	b.Services = services
	return b
}

// Build methods
func (b *ProposalBuilder) BuildDraft() domproposal.Draft {
	return domproposal.Draft{
		ClientID:        b.ClientID,
		PackageID:       b.PackageID,
		PackagePrice:    b.PackagePrice,
		IncludePackage:  b.IncludePackage,
		Services:        b.Services,
		PackageDiscount: b.PackageDiscount,
		OverallDiscount: b.OverallDiscount,
		IncludesTax:     b.IncludesTax,
		Note:            b.Note,
	}
}

func (b *ProposalBuilder) BuildDomain() (*domproposal.Proposal, error) {
	return domproposal.NewProposal(b.OrderID, b.CreatedBy, b.BuildDraft())
}

func (b *ProposalBuilder) BuildCreateRequestDTO() reqdto.CreateProposalRequest {
	return reqdto.CreateProposalRequest{
		ClientID:        b.ClientID,
		PackageID:       b.PackageID,
		IncludePackage:  b.IncludePackage,
		Services:        b.buildServiceRequests(),
		PackageDiscount: discountRequest(b.PackageDiscount),
		OverallDiscount: discountRequest(b.OverallDiscount),
		IncludesTax:     b.IncludesTax,
		Note:            b.Note,
	}
}

func (b *ProposalBuilder) BuildUpdateRequestDTO() reqdto.UpdateProposalRequest {
	return reqdto.UpdateProposalRequest{
		ClientID:        b.ClientID,
		PackageID:       b.PackageID,
		IncludePackage:  b.IncludePackage,
		Services:        b.buildServiceRequests(),
		PackageDiscount: discountRequest(b.PackageDiscount),
		OverallDiscount: discountRequest(b.OverallDiscount),
		IncludesTax:     b.IncludesTax,
		Note:            b.Note,
	}
}

func (b *ProposalBuilder) BuildPreviewRequestDTO() reqdto.PricingPreviewRequest {
	return reqdto.PricingPreviewRequest{
		PackageID:       b.PackageID,
		IncludePackage:  b.IncludePackage,
		Services:        b.buildServiceRequests(),
		PackageDiscount: discountRequest(b.PackageDiscount),
		OverallDiscount: discountRequest(b.OverallDiscount),
		IncludesTax:     b.IncludesTax,
	}
}

// BuildBreakdown prices the builder's selection exactly the way the
// domain does, so views built here are internally consistent.
func (b *ProposalBuilder) BuildBreakdown() dompricing.Breakdown {
	sel := dompricing.Selection{
		IncludePackage: b.IncludePackage,
		IncludesTax:    b.IncludesTax,
		Services: lo.Map(b.Services, func(s domproposal.SelectedService, _ int) dompricing.ServiceLine {
			return dompricing.ServiceLine{ID: s.ServiceID, Price: s.Price}
		}),
	}
	if b.PackageID != nil {
		sel.Package = &dompricing.PackageLine{ID: *b.PackageID, Price: b.PackagePrice}
	}

	return dompricing.ComputeBreakdown(sel, dompricing.DiscountSet{
		Package: b.PackageDiscount,
		Services: lo.SliceToMap(b.Services, func(s domproposal.SelectedService) (uuid.UUID, dompricing.Discount) {
			return s.ServiceID, s.Discount
		}),
		Overall: b.OverallDiscount,
	})
}

func (b *ProposalBuilder) BuildView() *queries.ProposalView {
	now := time.Now()
	breakdown := b.BuildBreakdown()
	note := b.Note

	return &queries.ProposalView{
		ID:             uuid.New(),
		OrderID:        b.OrderID,
		ClientID:       b.ClientID,
		ClientCompany:  "Acme Media KK",
		CreatedBy:      b.CreatedBy,
		CreatorEmail:   "sales@example.com",
		PackageID:      b.PackageID,
		IncludePackage: b.IncludePackage,
		Services: lo.Map(breakdown.Services, func(item dompricing.LineItem, i int) queries.ProposalServiceView {
			return queries.ProposalServiceView{
				ServiceID:      item.ServiceID,
				ServiceName:    "SNS Campaign",
				Original:       item.Original,
				Discounted:     item.Discounted,
				DiscountAmount: item.DiscountAmount,
			}
		}),
		Breakdown: breakdown,
		Status:    domproposal.StatusDraft.String(),
		Note:      &note,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *ProposalBuilder) BuildListItem() *queries.ProposalListItem {
	breakdown := b.BuildBreakdown()
	return &queries.ProposalListItem{
		ID:                uuid.New(),
		OrderID:           b.OrderID,
		ClientCompany:     "Acme Media KK",
		Status:            domproposal.StatusDraft.String(),
		FinalPrice:        breakdown.FinalPrice,
		FinalPriceDisplay: breakdown.FinalPriceDisplay,
		CreatedAt:         time.Now(),
	}
}

func (b *ProposalBuilder) buildServiceRequests() []reqdto.ProposalServiceRequest {
	return lo.Map(b.Services, func(s domproposal.SelectedService, _ int) reqdto.ProposalServiceRequest {
		return reqdto.ProposalServiceRequest{
			ServiceID: s.ServiceID,
			Discount:  discountRequest(s.Discount),
		}
	})
}

func discountRequest(d dompricing.Discount) *reqdto.DiscountRequest {
	if d.IsZero() {
		return nil
	}
	return &reqdto.DiscountRequest{
		Type:  string(d.Kind()),
		Value: d.StorageValue(),
	}
}
