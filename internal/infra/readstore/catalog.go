package readstore

import (
	"context"

	"proposal-service/internal/infra"
	"proposal-service/internal/pkg/pgconv"
	"proposal-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const findPackageByIDQuery = `
SELECT id, name, description, price, is_active, created_at, updated_at
FROM packages
WHERE id = $1
`

const findServiceByIDQuery = `
SELECT id, name, description, price, is_active, created_at, updated_at
FROM services
WHERE id = $1
`

const findServicesByIDsQuery = `
SELECT id, name, description, price, is_active, created_at, updated_at
FROM services
WHERE id = ANY($1)
`

const listPackagesQuery = `
SELECT id, name, description, price, is_active, created_at, updated_at
FROM packages
WHERE is_active OR $1
ORDER BY name
`

const listServicesQuery = `
SELECT id, name, description, price, is_active, created_at, updated_at
FROM services
WHERE is_active OR $1
ORDER BY name
`

type CatalogReadStore struct {
	db infra.DBTX
}

func NewCatalogReadStore(db infra.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

func (r *CatalogReadStore) FindPackageByID(ctx context.Context, id uuid.UUID) (*queries.PackageView, error) {
	row := r.db.QueryRow(ctx, findPackageByIDQuery, id)
	view, err := scanPackageView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("package not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find package", err)
	}
	return view, nil
}

func (r *CatalogReadStore) FindServiceByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	row := r.db.QueryRow(ctx, findServiceByIDQuery, id)
	view, err := scanServiceView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service", err)
	}
	return view, nil
}

func (r *CatalogReadStore) FindServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]*queries.ServiceView, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, findServicesByIDsQuery, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find services by ids", err)
	}
	defer rows.Close()
	return scanServiceViews(rows)
}

func (r *CatalogReadStore) FindPackages(ctx context.Context, includeInactive bool) ([]*queries.PackageView, error) {
	rows, err := r.db.Query(ctx, listPackagesQuery, includeInactive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list packages", err)
	}
	defer rows.Close()

	views := make([]*queries.PackageView, 0)
	for rows.Next() {
		view, err := scanPackageView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan package", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read package list", err)
	}
	return views, nil
}

func (r *CatalogReadStore) FindServices(ctx context.Context, includeInactive bool) ([]*queries.ServiceView, error) {
	rows, err := r.db.Query(ctx, listServicesQuery, includeInactive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()
	return scanServiceViews(rows)
}

func scanPackageView(row pgx.Row) (*queries.PackageView, error) {
	var view queries.PackageView
	err := row.Scan(&view.ID, &view.Name, &view.Description, &view.Price, &view.IsActive, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func scanServiceView(row pgx.Row) (*queries.ServiceView, error) {
	var view queries.ServiceView
	err := row.Scan(&view.ID, &view.Name, &view.Description, &view.Price, &view.IsActive, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func scanServiceViews(rows pgx.Rows) ([]*queries.ServiceView, error) {
	views := make([]*queries.ServiceView, 0)
	for rows.Next() {
		view, err := scanServiceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service list", err)
	}
	return views, nil
}
