package response

import (
	"time"

	"proposal-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
)

type PackageResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromPackageView(view *queries.PackageView) *PackageResponse {
	var resp PackageResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromPackageViews(views []*queries.PackageView) []*PackageResponse {
	return lo.Map(views, func(view *queries.PackageView, _ int) *PackageResponse {
		return FromPackageView(view)
	})
}

func FromServiceView(view *queries.ServiceView) *ServiceResponse {
	var resp ServiceResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromServiceViews(views []*queries.ServiceView) []*ServiceResponse {
	return lo.Map(views, func(view *queries.ServiceView, _ int) *ServiceResponse {
		return FromServiceView(view)
	})
}
