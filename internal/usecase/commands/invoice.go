package commands

import (
	"context"

	"proposal-service/internal/domain/invoice"
	"proposal-service/internal/domain/proposal"
	"proposal-service/internal/infra"
	"proposal-service/internal/pkg/clock"
	"proposal-service/internal/pkg/errs"
	"proposal-service/internal/usecase/queries"
	"proposal-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInvoiceExists       = errs.ErrInvoiceExists
	ErrProposalNotAccepted = errs.ErrProposalNotAccepted
)

type InvoiceRepository interface {
	Create(ctx context.Context, tx infra.DBTX, inv *invoice.Invoice) error
}

type InvoiceCommands interface {
	Issue(ctx context.Context, actor shared.Actor, proposalID uuid.UUID) (*queries.InvoiceView, error)
}

type invoiceCommandsImpl struct {
	invoiceRepo    InvoiceRepository
	proposalRepo   ProposalRepository
	invoiceQueries queries.InvoiceQueries
	db             *pgxpool.Pool
	clock          clock.Clock
}

func NewInvoiceCommands(
	invoiceRepo InvoiceRepository,
	proposalRepo ProposalRepository,
	invoiceQueries queries.InvoiceQueries,
	db *pgxpool.Pool,
	clk clock.Clock,
) InvoiceCommands {
	return &invoiceCommandsImpl{
		invoiceRepo:    invoiceRepo,
		proposalRepo:   proposalRepo,
		invoiceQueries: invoiceQueries,
		db:             db,
		clock:          clk,
	}
}

// Issue freezes the accepted proposal's final price into an invoice.
// The unique constraint on proposal_id makes a second issue fail with
// ErrInvoiceExists regardless of interleaving.
func (i *invoiceCommandsImpl) Issue(ctx context.Context, actor shared.Actor, proposalID uuid.UUID) (*queries.InvoiceView, error) {
	now := i.clock.Now()

	created, err := shared.RunInTx(ctx, i.db, func(tx infra.DBTX) (*invoice.Invoice, error) {
		entity, err := i.proposalRepo.FindByIDForUpdate(ctx, tx, proposalID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrProposalNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !actor.CanAccess(entity.CreatedBy()) {
			return nil, ErrProposalNotFound
		}
		if entity.Status() != proposal.StatusAccepted {
			return nil, ErrProposalNotAccepted
		}

		inv, err := invoice.NewInvoice(
			entity.OrderID(), entity.ID(), entity.ClientID(),
			entity.Breakdown().FinalPrice, actor.ID, now,
		)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}

		if err := i.invoiceRepo.Create(ctx, tx, inv); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return nil, ErrInvoiceExists
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return inv, nil
	})
	if err != nil {
		return nil, err
	}

	return i.invoiceQueries.GetByID(ctx, actor, created.ID())
}
