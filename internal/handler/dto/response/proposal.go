package response

import (
	"time"

	"proposal-service/internal/domain/pricing"
	"proposal-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
)

type ProposalServiceResponse struct {
	ServiceID      uuid.UUID `json:"service_id"`
	ServiceName    string    `json:"service_name"`
	Original       int64     `json:"original"`
	Discounted     int64     `json:"discounted"`
	DiscountAmount int64     `json:"discount_amount"`
}

type ProposalResponse struct {
	ID             uuid.UUID                 `json:"id"`
	OrderID        string                    `json:"order_id"`
	ClientID       uuid.UUID                 `json:"client_id"`
	ClientCompany  string                    `json:"client_company"`
	CreatedBy      uuid.UUID                 `json:"created_by"`
	CreatorEmail   string                    `json:"creator_email"`
	PackageID      *uuid.UUID                `json:"package_id,omitempty"`
	PackageName    *string                   `json:"package_name,omitempty"`
	IncludePackage bool                      `json:"include_package"`
	Services       []ProposalServiceResponse `json:"services"`
	Breakdown      pricing.Breakdown         `json:"breakdown"`
	Status         string                    `json:"status"`
	ValidUntil     *time.Time                `json:"valid_until,omitempty"`
	Note           *string                   `json:"note,omitempty"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

type ProposalListResponse struct {
	ID                uuid.UUID  `json:"id"`
	OrderID           string     `json:"order_id"`
	ClientCompany     string     `json:"client_company"`
	Status            string     `json:"status"`
	FinalPrice        int64      `json:"final_price"`
	FinalPriceDisplay string     `json:"final_price_display"`
	ValidUntil        *time.Time `json:"valid_until,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func FromProposalView(view *queries.ProposalView) *ProposalResponse {
	var resp ProposalResponse
	// Field-for-field identical shapes; copier keeps them in sync.
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromProposalListItems(items []*queries.ProposalListItem) []*ProposalListResponse {
	return lo.Map(items, func(item *queries.ProposalListItem, _ int) *ProposalListResponse {
		var resp ProposalListResponse
		_ = copier.Copy(&resp, item)
		return &resp
	})
}
