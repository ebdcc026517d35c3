package request

import (
	"proposal-service/internal/domain/catalog"
	"proposal-service/internal/pkg/patch"
)

type CreatePackageRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"min=0"`
}

func (r *CreatePackageRequest) ToDomain() (*catalog.Package, error) {
	return catalog.NewPackage(r.Name, r.Description, r.Price)
}

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"min=0"`
}

func (r *CreateServiceRequest) ToDomain() (*catalog.Service, error) {
	return catalog.NewService(r.Name, r.Description, r.Price)
}

type UpdatePackageRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *int64  `json:"price,omitempty" binding:"omitempty,min=0"`
}

func (r *UpdatePackageRequest) Apply(entity *catalog.Package) error {
	if err := entity.Rename(patch.Coalesce(r.Name, entity.Name())); err != nil {
		return err
	}
	if err := entity.Reprice(patch.Coalesce(r.Price, entity.Price())); err != nil {
		return err
	}
	entity.Describe(patch.Coalesce(r.Description, entity.Description()))
	return nil
}

type UpdateServiceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *int64  `json:"price,omitempty" binding:"omitempty,min=0"`
}

func (r *UpdateServiceRequest) Apply(entity *catalog.Service) error {
	if err := entity.Rename(patch.Coalesce(r.Name, entity.Name())); err != nil {
		return err
	}
	if err := entity.Reprice(patch.Coalesce(r.Price, entity.Price())); err != nil {
		return err
	}
	entity.Describe(patch.Coalesce(r.Description, entity.Description()))
	return nil
}
