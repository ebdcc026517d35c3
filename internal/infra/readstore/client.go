package readstore

import (
	"context"

	"proposal-service/internal/infra"
	"proposal-service/internal/pkg/pgconv"
	"proposal-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const findClientByIDQuery = `
SELECT id, company_name, contact_name, email, phone, created_by, created_at, updated_at
FROM clients
WHERE id = $1
`

const listClientsQuery = `
SELECT id, company_name, contact_name, email, phone, created_by, created_at, updated_at
FROM clients
ORDER BY company_name
`

const listClientsByCreatorQuery = `
SELECT id, company_name, contact_name, email, phone, created_by, created_at, updated_at
FROM clients
WHERE created_by = $1
ORDER BY company_name
`

type ClientReadStore struct {
	db infra.DBTX
}

func NewClientReadStore(db infra.DBTX) *ClientReadStore {
	return &ClientReadStore{db: db}
}

func (r *ClientReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ClientView, error) {
	row := r.db.QueryRow(ctx, findClientByIDQuery, id)
	view, err := scanClientView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client", err)
	}
	return view, nil
}

func (r *ClientReadStore) FindAll(ctx context.Context) ([]*queries.ClientView, error) {
	rows, err := r.db.Query(ctx, listClientsQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients", err)
	}
	defer rows.Close()
	return scanClientViews(rows)
}

func (r *ClientReadStore) FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]*queries.ClientView, error) {
	rows, err := r.db.Query(ctx, listClientsByCreatorQuery, creatorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients by creator", err)
	}
	defer rows.Close()
	return scanClientViews(rows)
}

func scanClientView(row pgx.Row) (*queries.ClientView, error) {
	var view queries.ClientView
	err := row.Scan(&view.ID, &view.CompanyName, &view.ContactName, &view.Email, &view.Phone, &view.CreatedBy, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func scanClientViews(rows pgx.Rows) ([]*queries.ClientView, error) {
	views := make([]*queries.ClientView, 0)
	for rows.Next() {
		view, err := scanClientView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan client", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read client list", err)
	}
	return views, nil
}
