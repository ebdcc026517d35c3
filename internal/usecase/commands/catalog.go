package commands

import (
	"context"

	"proposal-service/internal/domain/catalog"
	reqdto "proposal-service/internal/handler/dto/request"
	"proposal-service/internal/infra"
	"proposal-service/internal/pkg/errs"
	"proposal-service/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrPackageNotFound = errs.ErrPackageNotFound
	ErrServiceNotFound = errs.ErrServiceNotFound
)

type CatalogRepository interface {
	CreatePackage(ctx context.Context, p *catalog.Package) error
	UpdatePackage(ctx context.Context, p *catalog.Package) error
	FindPackageByID(ctx context.Context, id uuid.UUID) (*catalog.Package, error)
	CreateService(ctx context.Context, s *catalog.Service) error
	UpdateService(ctx context.Context, s *catalog.Service) error
	FindServiceByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
}

// CatalogCommands is the admin-only write side of the catalog. Entries
// are deactivated rather than deleted so existing proposal snapshots
// keep their reference rows.
type CatalogCommands interface {
	CreatePackage(ctx context.Context, req reqdto.CreatePackageRequest) (*queries.PackageView, error)
	UpdatePackage(ctx context.Context, id uuid.UUID, req reqdto.UpdatePackageRequest) (*queries.PackageView, error)
	DeactivatePackage(ctx context.Context, id uuid.UUID) error
	CreateService(ctx context.Context, req reqdto.CreateServiceRequest) (*queries.ServiceView, error)
	UpdateService(ctx context.Context, id uuid.UUID, req reqdto.UpdateServiceRequest) (*queries.ServiceView, error)
	DeactivateService(ctx context.Context, id uuid.UUID) error
}

type catalogCommandsImpl struct {
	repo           CatalogRepository
	catalogQueries queries.CatalogQueries
}

func NewCatalogCommands(repo CatalogRepository, catalogQueries queries.CatalogQueries) CatalogCommands {
	return &catalogCommandsImpl{repo: repo, catalogQueries: catalogQueries}
}

func (c *catalogCommandsImpl) CreatePackage(ctx context.Context, req reqdto.CreatePackageRequest) (*queries.PackageView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := c.repo.CreatePackage(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c.catalogQueries.GetPackage(ctx, entity.ID())
}

func (c *catalogCommandsImpl) UpdatePackage(ctx context.Context, id uuid.UUID, req reqdto.UpdatePackageRequest) (*queries.PackageView, error) {
	entity, err := c.findPackage(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.Apply(entity); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := c.repo.UpdatePackage(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c.catalogQueries.GetPackage(ctx, id)
}

func (c *catalogCommandsImpl) DeactivatePackage(ctx context.Context, id uuid.UUID) error {
	entity, err := c.findPackage(ctx, id)
	if err != nil {
		return err
	}
	entity.Deactivate()
	if err := c.repo.UpdatePackage(ctx, entity); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *catalogCommandsImpl) CreateService(ctx context.Context, req reqdto.CreateServiceRequest) (*queries.ServiceView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := c.repo.CreateService(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c.catalogQueries.GetService(ctx, entity.ID())
}

func (c *catalogCommandsImpl) UpdateService(ctx context.Context, id uuid.UUID, req reqdto.UpdateServiceRequest) (*queries.ServiceView, error) {
	entity, err := c.findService(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.Apply(entity); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := c.repo.UpdateService(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c.catalogQueries.GetService(ctx, id)
}

func (c *catalogCommandsImpl) DeactivateService(ctx context.Context, id uuid.UUID) error {
	entity, err := c.findService(ctx, id)
	if err != nil {
		return err
	}
	entity.Deactivate()
	if err := c.repo.UpdateService(ctx, entity); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *catalogCommandsImpl) findPackage(ctx context.Context, id uuid.UUID) (*catalog.Package, error) {
	entity, err := c.repo.FindPackageByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (c *catalogCommandsImpl) findService(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	entity, err := c.repo.FindServiceByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}
