package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type PackageView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CatalogQueries interface {
	GetPackage(ctx context.Context, id uuid.UUID) (*PackageView, error)
	GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	ListPackages(ctx context.Context, includeInactive bool) ([]*PackageView, error)
	ListServices(ctx context.Context, includeInactive bool) ([]*ServiceView, error)
}

type CatalogReadStore interface {
	FindPackageByID(ctx context.Context, id uuid.UUID) (*PackageView, error)
	FindServiceByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	FindServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]*ServiceView, error)
	FindPackages(ctx context.Context, includeInactive bool) ([]*PackageView, error)
	FindServices(ctx context.Context, includeInactive bool) ([]*ServiceView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) GetPackage(ctx context.Context, id uuid.UUID) (*PackageView, error) {
	return q.store.FindPackageByID(ctx, id)
}

func (q *catalogQueriesImpl) GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	return q.store.FindServiceByID(ctx, id)
}

func (q *catalogQueriesImpl) ListPackages(ctx context.Context, includeInactive bool) ([]*PackageView, error) {
	return q.store.FindPackages(ctx, includeInactive)
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context, includeInactive bool) ([]*ServiceView, error) {
	return q.store.FindServices(ctx, includeInactive)
}
