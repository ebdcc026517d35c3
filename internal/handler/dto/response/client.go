package response

import (
	"time"

	"proposal-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
)

type ClientResponse struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"company_name"`
	ContactName string    `json:"contact_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromClientView(view *queries.ClientView) *ClientResponse {
	var resp ClientResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromClientViews(views []*queries.ClientView) []*ClientResponse {
	return lo.Map(views, func(view *queries.ClientView, _ int) *ClientResponse {
		return FromClientView(view)
	})
}
