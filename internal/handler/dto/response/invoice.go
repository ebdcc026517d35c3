package response

import (
	"time"

	"proposal-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
)

type InvoiceResponse struct {
	ID            uuid.UUID `json:"id"`
	Number        string    `json:"number"`
	ProposalID    uuid.UUID `json:"proposal_id"`
	OrderID       string    `json:"order_id"`
	ClientID      uuid.UUID `json:"client_id"`
	ClientCompany string    `json:"client_company"`
	Amount        int64     `json:"amount"`
	IssuedBy      uuid.UUID `json:"issued_by"`
	IssuedAt      time.Time `json:"issued_at"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromInvoiceView(view *queries.InvoiceView) *InvoiceResponse {
	var resp InvoiceResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromInvoiceViews(views []*queries.InvoiceView) []*InvoiceResponse {
	return lo.Map(views, func(view *queries.InvoiceView, _ int) *InvoiceResponse {
		return FromInvoiceView(view)
	})
}
