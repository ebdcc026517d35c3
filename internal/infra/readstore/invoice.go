package readstore

import (
	"context"

	"proposal-service/internal/infra"
	"proposal-service/internal/pkg/pgconv"
	"proposal-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const findInvoiceByIDQuery = `
SELECT i.id, i.number, i.proposal_id, p.order_id, i.client_id, c.company_name,
       i.amount, i.issued_by, i.issued_at, i.created_at
FROM invoices i
JOIN proposals p ON p.id = i.proposal_id
JOIN clients c ON c.id = i.client_id
WHERE i.id = $1
`

const listInvoicesQuery = `
SELECT i.id, i.number, i.proposal_id, p.order_id, i.client_id, c.company_name,
       i.amount, i.issued_by, i.issued_at, i.created_at
FROM invoices i
JOIN proposals p ON p.id = i.proposal_id
JOIN clients c ON c.id = i.client_id
ORDER BY i.issued_at DESC, i.id DESC
`

const listInvoicesByIssuerQuery = `
SELECT i.id, i.number, i.proposal_id, p.order_id, i.client_id, c.company_name,
       i.amount, i.issued_by, i.issued_at, i.created_at
FROM invoices i
JOIN proposals p ON p.id = i.proposal_id
JOIN clients c ON c.id = i.client_id
WHERE i.issued_by = $1
ORDER BY i.issued_at DESC, i.id DESC
`

type InvoiceReadStore struct {
	db infra.DBTX
}

func NewInvoiceReadStore(db infra.DBTX) *InvoiceReadStore {
	return &InvoiceReadStore{db: db}
}

func (r *InvoiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.InvoiceView, error) {
	row := r.db.QueryRow(ctx, findInvoiceByIDQuery, id)
	view, err := scanInvoiceView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find invoice", err)
	}
	return view, nil
}

func (r *InvoiceReadStore) FindAll(ctx context.Context) ([]*queries.InvoiceView, error) {
	rows, err := r.db.Query(ctx, listInvoicesQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoices", err)
	}
	defer rows.Close()
	return scanInvoiceViews(rows)
}

func (r *InvoiceReadStore) FindByIssuer(ctx context.Context, issuerID uuid.UUID) ([]*queries.InvoiceView, error) {
	rows, err := r.db.Query(ctx, listInvoicesByIssuerQuery, issuerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoices by issuer", err)
	}
	defer rows.Close()
	return scanInvoiceViews(rows)
}

func scanInvoiceView(row pgx.Row) (*queries.InvoiceView, error) {
	var view queries.InvoiceView
	err := row.Scan(
		&view.ID, &view.Number, &view.ProposalID, &view.OrderID, &view.ClientID, &view.ClientCompany,
		&view.Amount, &view.IssuedBy, &view.IssuedAt, &view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func scanInvoiceViews(rows pgx.Rows) ([]*queries.InvoiceView, error) {
	views := make([]*queries.InvoiceView, 0)
	for rows.Next() {
		view, err := scanInvoiceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan invoice", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read invoice list", err)
	}
	return views, nil
}
