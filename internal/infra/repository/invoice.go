package repository

import (
	"context"

	"proposal-service/internal/domain/invoice"
	"proposal-service/internal/infra"
)

const insertInvoiceQuery = `
INSERT INTO invoices (id, number, proposal_id, client_id, amount, issued_by, issued_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type InvoiceRepository struct {
	db infra.DBTX
}

func NewInvoiceRepository(db infra.DBTX) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Create relies on the unique constraint on proposal_id to reject a
// second invoice for the same proposal; callers test the returned
// error with infra.IsKind(err, infra.KindDuplicateKey).
func (r *InvoiceRepository) Create(ctx context.Context, tx infra.DBTX, inv *invoice.Invoice) error {
	_, err := tx.Exec(ctx, insertInvoiceQuery,
		inv.ID(), inv.Number(), inv.ProposalID(), inv.ClientID(),
		inv.Amount(), inv.IssuedBy(), inv.IssuedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create invoice", err)
	}
	return nil
}
