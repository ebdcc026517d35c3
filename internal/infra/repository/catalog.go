package repository

import (
	"context"
	"time"

	"proposal-service/internal/domain/catalog"
	"proposal-service/internal/infra"
	"proposal-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const insertPackageQuery = `
INSERT INTO packages (id, name, description, price, is_active)
VALUES ($1, $2, $3, $4, $5)
`

const updatePackageQuery = `
UPDATE packages SET name = $2, description = $3, price = $4, is_active = $5, updated_at = now()
WHERE id = $1
`

const findPackageEntityByIDQuery = `
SELECT id, name, description, price, is_active, created_at, updated_at
FROM packages
WHERE id = $1
`

const insertServiceQuery = `
INSERT INTO services (id, name, description, price, is_active)
VALUES ($1, $2, $3, $4, $5)
`

const updateServiceQuery = `
UPDATE services SET name = $2, description = $3, price = $4, is_active = $5, updated_at = now()
WHERE id = $1
`

const findServiceEntityByIDQuery = `
SELECT id, name, description, price, is_active, created_at, updated_at
FROM services
WHERE id = $1
`

type CatalogRepository struct {
	db infra.DBTX
}

func NewCatalogRepository(db infra.DBTX) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) CreatePackage(ctx context.Context, p *catalog.Package) error {
	_, err := r.db.Exec(ctx, insertPackageQuery, p.ID(), p.Name(), p.Description(), p.Price(), p.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to create package", err)
	}
	return nil
}

func (r *CatalogRepository) UpdatePackage(ctx context.Context, p *catalog.Package) error {
	_, err := r.db.Exec(ctx, updatePackageQuery, p.ID(), p.Name(), p.Description(), p.Price(), p.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to update package", err)
	}
	return nil
}

func (r *CatalogRepository) FindPackageByID(ctx context.Context, id uuid.UUID) (*catalog.Package, error) {
	var (
		pid                  uuid.UUID
		name, description    string
		price                int64
		isActive             bool
		createdAt, updatedAt time.Time
	)

	row := r.db.QueryRow(ctx, findPackageEntityByIDQuery, id)
	err := row.Scan(&pid, &name, &description, &price, &isActive, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("package not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find package", err)
	}

	return catalog.ReconstructPackage(pid, name, description, price, isActive, createdAt, updatedAt), nil
}

func (r *CatalogRepository) CreateService(ctx context.Context, s *catalog.Service) error {
	_, err := r.db.Exec(ctx, insertServiceQuery, s.ID(), s.Name(), s.Description(), s.Price(), s.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to create service", err)
	}
	return nil
}

func (r *CatalogRepository) UpdateService(ctx context.Context, s *catalog.Service) error {
	_, err := r.db.Exec(ctx, updateServiceQuery, s.ID(), s.Name(), s.Description(), s.Price(), s.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	return nil
}

func (r *CatalogRepository) FindServiceByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	var (
		sid                  uuid.UUID
		name, description    string
		price                int64
		isActive             bool
		createdAt, updatedAt time.Time
	)

	row := r.db.QueryRow(ctx, findServiceEntityByIDQuery, id)
	err := row.Scan(&sid, &name, &description, &price, &isActive, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service", err)
	}

	return catalog.ReconstructService(sid, name, description, price, isActive, createdAt, updatedAt), nil
}
