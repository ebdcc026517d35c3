package queries

import (
	"context"
	"time"

	"proposal-service/internal/pkg/errs"
	"proposal-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type InvoiceView struct {
	ID            uuid.UUID `json:"id"`
	Number        string    `json:"number"`
	ProposalID    uuid.UUID `json:"proposal_id"`
	OrderID       string    `json:"order_id"`
	ClientID      uuid.UUID `json:"client_id"`
	ClientCompany string    `json:"client_company"`
	Amount        int64     `json:"amount"`
	IssuedBy      uuid.UUID `json:"issued_by"`
	IssuedAt      time.Time `json:"issued_at"`
	CreatedAt     time.Time `json:"created_at"`
}

var ErrInvoiceNotFound = errs.ErrInvoiceNotFound

type InvoiceQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*InvoiceView, error)
	List(ctx context.Context, actor shared.Actor) ([]*InvoiceView, error)
}

type InvoiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InvoiceView, error)
	FindAll(ctx context.Context) ([]*InvoiceView, error)
	FindByIssuer(ctx context.Context, issuerID uuid.UUID) ([]*InvoiceView, error)
}

type invoiceQueriesImpl struct {
	store InvoiceReadStore
}

func NewInvoiceQueries(store InvoiceReadStore) InvoiceQueries {
	return &invoiceQueriesImpl{store: store}
}

func (q *invoiceQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*InvoiceView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(view.IssuedBy) {
		return nil, ErrInvoiceNotFound
	}
	return view, nil
}

func (q *invoiceQueriesImpl) List(ctx context.Context, actor shared.Actor) ([]*InvoiceView, error) {
	if actor.IsAdmin() {
		return q.store.FindAll(ctx)
	}
	return q.store.FindByIssuer(ctx, actor.ID)
}
