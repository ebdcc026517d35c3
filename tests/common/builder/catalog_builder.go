//go:build unit || e2e

package builder

import (
	"time"

	domcatalog "proposal-service/internal/domain/catalog"
	reqdto "proposal-service/internal/handler/dto/request"
	"proposal-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type PackageBuilder struct {
	Name        string
	Description string
	Price       int64
	IsActive    bool
}

func NewPackageBuilder() *PackageBuilder {
	return &PackageBuilder{
		Name:        "Full Marketing Suite",
		Description: "Strategy, creative production, and channel management",
		Price:       17500,
		IsActive:    true,
	}
}

func (b *PackageBuilder) With(mutate func(*PackageBuilder)) *PackageBuilder {
	mutate(b)
	return b
}

func (b *PackageBuilder) BuildDomain() (*domcatalog.Package, error) {
	return domcatalog.NewPackage(b.Name, b.Description, b.Price)
}

func (b *PackageBuilder) BuildView() *queries.PackageView {
	now := time.Now()
	return &queries.PackageView{
		ID:          uuid.New(),
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price,
		IsActive:    b.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *PackageBuilder) BuildCreateRequestDTO() reqdto.CreatePackageRequest {
	return reqdto.CreatePackageRequest{
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price,
	}
}

type ServiceBuilder struct {
	Name        string
	Description string
	Price       int64
	IsActive    bool
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		Name:        "SNS Campaign",
		Description: "One month social campaign with weekly reporting",
		Price:       2000,
		IsActive:    true,
	}
}

func (b *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(b)
	return b
}

func (b *ServiceBuilder) BuildDomain() (*domcatalog.Service, error) {
	return domcatalog.NewService(b.Name, b.Description, b.Price)
}

func (b *ServiceBuilder) BuildView() *queries.ServiceView {
	now := time.Now()
	return &queries.ServiceView{
		ID:          uuid.New(),
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price,
		IsActive:    b.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *ServiceBuilder) BuildCreateRequestDTO() reqdto.CreateServiceRequest {
	return reqdto.CreateServiceRequest{
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price,
	}
}
