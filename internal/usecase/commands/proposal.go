package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"proposal-service/internal/domain/catalog"
	"proposal-service/internal/domain/client"
	"proposal-service/internal/domain/ordernum"
	"proposal-service/internal/domain/proposal"
	reqdto "proposal-service/internal/handler/dto/request"
	"proposal-service/internal/infra"
	"proposal-service/internal/pkg/clock"
	"proposal-service/internal/pkg/config"
	"proposal-service/internal/pkg/errs"
	"proposal-service/internal/usecase/queries"
	"proposal-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrClientNotFound          = errs.ErrClientNotFound
	ErrProposalNotFound        = errs.ErrProposalNotFound
	ErrProposalNotDraft        = errs.ErrProposalNotDraft
	ErrProposalNotSent         = errs.ErrProposalNotSent
	ErrProposalExpired         = errs.ErrProposalExpired
	ErrOrderIDConflict         = errs.ErrOrderIDConflict
	ErrDomainValidation        = errs.ErrDomainValidation
	ErrDatabaseOperationFailed = errs.ErrDatabaseOperationFailed
)

const notificationKindEmail = "email"

type ProposalRepository interface {
	Create(ctx context.Context, tx infra.DBTX, p *proposal.Proposal) error
	Update(ctx context.Context, tx infra.DBTX, p *proposal.Proposal) error
	FindByIDForUpdate(ctx context.Context, tx infra.DBTX, id uuid.UUID) (*proposal.Proposal, error)
	LatestOrderID(ctx context.Context, prefix string) (string, error)
}

type ClientReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error)
}

type CatalogReader interface {
	FindPackageByID(ctx context.Context, id uuid.UUID) (*catalog.Package, error)
	FindServiceByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx infra.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type ProposalCommands interface {
	Create(ctx context.Context, actor shared.Actor, req reqdto.CreateProposalRequest) (*queries.ProposalView, error)
	Revise(ctx context.Context, actor shared.Actor, id uuid.UUID, req reqdto.UpdateProposalRequest) (*queries.ProposalView, error)
	Send(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.ProposalView, error)
	Accept(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.ProposalView, error)
	Decline(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.ProposalView, error)
}

type proposalCommandsImpl struct {
	proposalRepo     ProposalRepository
	clientRepo       ClientReader
	catalogRepo      CatalogReader
	notificationRepo NotificationRepository
	proposalQueries  queries.ProposalQueries
	db               *pgxpool.Pool
	clock            clock.Clock
	cfg              config.ProposalConfig
}

func NewProposalCommands(
	proposalRepo ProposalRepository,
	clientRepo ClientReader,
	catalogRepo CatalogReader,
	notificationRepo NotificationRepository,
	proposalQueries queries.ProposalQueries,
	db *pgxpool.Pool,
	clk clock.Clock,
	cfg config.ProposalConfig,
) ProposalCommands {
	return &proposalCommandsImpl{
		proposalRepo:     proposalRepo,
		clientRepo:       clientRepo,
		catalogRepo:      catalogRepo,
		notificationRepo: notificationRepo,
		proposalQueries:  proposalQueries,
		db:               db,
		clock:            clk,
		cfg:              cfg,
	}
}

func (p *proposalCommandsImpl) Create(ctx context.Context, actor shared.Actor, req reqdto.CreateProposalRequest) (*queries.ProposalView, error) {
	if err := p.checkClient(ctx, actor, req.ClientID); err != nil {
		return nil, err
	}

	draft, err := p.buildDraft(ctx, req.ClientID, req.PackageID, req.IncludePackage, req.Services, req.PackageDiscount, req.OverallDiscount, req.IncludesTax, req.Note)
	if err != nil {
		return nil, err
	}

	now := p.clock.Now()

	// Allocation reads outside the insert transaction, so two
	// concurrent creations can pick the same number. The unique index
	// on order_id catches that; one reallocation is enough in practice.
	var created *proposal.Proposal
	for attempt := 0; attempt < 2; attempt++ {
		seq := ordernum.Next(ctx, p.proposalRepo, now.Year(), now.Month())
		orderID := ordernum.Format(seq, now)

		entity, err := proposal.NewProposal(orderID, actor.ID, *draft)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}

		_, err = shared.RunInTx(ctx, p.db, func(tx infra.DBTX) (struct{}, error) {
			return struct{}{}, p.proposalRepo.Create(ctx, tx, entity)
		})
		if err == nil {
			created = entity
			break
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if attempt == 1 {
			return nil, errs.Mark(err, ErrOrderIDConflict)
		}
		slog.Warn("order id collision, reallocating", "order_id", orderID)
	}

	return p.proposalQueries.GetByIDSystem(ctx, created.ID())
}

func (p *proposalCommandsImpl) Revise(ctx context.Context, actor shared.Actor, id uuid.UUID, req reqdto.UpdateProposalRequest) (*queries.ProposalView, error) {
	draft, err := p.buildDraft(ctx, req.ClientID, req.PackageID, req.IncludePackage, req.Services, req.PackageDiscount, req.OverallDiscount, req.IncludesTax, req.Note)
	if err != nil {
		return nil, err
	}

	err = p.mutate(ctx, actor, id, func(entity *proposal.Proposal, tx infra.DBTX) error {
		return entity.Revise(*draft)
	})
	if err != nil {
		return nil, err
	}
	return p.proposalQueries.GetByIDSystem(ctx, id)
}

func (p *proposalCommandsImpl) Send(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.ProposalView, error) {
	now := p.clock.Now()
	err := p.mutate(ctx, actor, id, func(entity *proposal.Proposal, tx infra.DBTX) error {
		if err := entity.Send(now, p.cfg.ValidityDays); err != nil {
			return err
		}
		return p.enqueueSentNotification(ctx, tx, entity, now)
	})
	if err != nil {
		return nil, err
	}
	return p.proposalQueries.GetByIDSystem(ctx, id)
}

func (p *proposalCommandsImpl) Accept(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.ProposalView, error) {
	now := p.clock.Now()
	err := p.mutate(ctx, actor, id, func(entity *proposal.Proposal, tx infra.DBTX) error {
		return entity.Accept(now)
	})
	if err != nil {
		return nil, err
	}
	return p.proposalQueries.GetByIDSystem(ctx, id)
}

func (p *proposalCommandsImpl) Decline(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.ProposalView, error) {
	now := p.clock.Now()
	err := p.mutate(ctx, actor, id, func(entity *proposal.Proposal, tx infra.DBTX) error {
		return entity.Decline(now)
	})
	if err != nil {
		return nil, err
	}
	return p.proposalQueries.GetByIDSystem(ctx, id)
}

// mutate runs one locked load-modify-store cycle and translates domain
// state errors into the shared sentinels handlers switch on.
func (p *proposalCommandsImpl) mutate(ctx context.Context, actor shared.Actor, id uuid.UUID, fn func(entity *proposal.Proposal, tx infra.DBTX) error) error {
	_, err := shared.WithDefaultRetry(ctx, p.db, func(tx infra.DBTX) (struct{}, error) {
		entity, err := p.proposalRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, ErrProposalNotFound
			}
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !actor.CanAccess(entity.CreatedBy()) {
			return struct{}{}, ErrProposalNotFound
		}

		if err := fn(entity, tx); err != nil {
			return struct{}{}, markProposalError(err)
		}

		if err := p.proposalRepo.Update(ctx, tx, entity); err != nil {
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}

func markProposalError(err error) error {
	switch {
	case errors.Is(err, proposal.ErrNotDraft):
		return errs.Mark(err, ErrProposalNotDraft)
	case errors.Is(err, proposal.ErrNotSent):
		return errs.Mark(err, ErrProposalNotSent)
	case errors.Is(err, proposal.ErrExpired):
		return errs.Mark(err, ErrProposalExpired)
	case errors.Is(err, proposal.ErrNoServicesSelected), errors.Is(err, proposal.ErrNoValidityPeriod):
		return errs.Mark(err, ErrDomainValidation)
	default:
		return err
	}
}

func (p *proposalCommandsImpl) checkClient(ctx context.Context, actor shared.Actor, clientID uuid.UUID) error {
	c, err := p.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrClientNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !actor.CanAccess(c.CreatedBy()) {
		// Hide other reps' clients entirely.
		return ErrClientNotFound
	}
	return nil
}

// buildDraft snapshots current catalog prices into the draft. Catalog
// entries that have disappeared price as zero so an edit never fails
// on a stale selection.
func (p *proposalCommandsImpl) buildDraft(
	ctx context.Context,
	clientID uuid.UUID,
	packageID *uuid.UUID,
	includePackage bool,
	services []reqdto.ProposalServiceRequest,
	packageDiscount, overallDiscount *reqdto.DiscountRequest,
	includesTax bool,
	note string,
) (*proposal.Draft, error) {
	draft := &proposal.Draft{
		ClientID:        clientID,
		PackageID:       packageID,
		IncludePackage:  includePackage,
		PackageDiscount: packageDiscount.ToDomain(),
		OverallDiscount: overallDiscount.ToDomain(),
		IncludesTax:     includesTax,
		Note:            note,
	}

	if packageID != nil {
		pkg, err := p.catalogRepo.FindPackageByID(ctx, *packageID)
		switch {
		case err == nil:
			draft.PackagePrice = pkg.Price()
		case infra.IsKind(err, infra.KindNotFound):
			slog.Warn("package missing from catalog, pricing as zero", "package_id", *packageID)
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	for _, svc := range services {
		var price int64
		s, err := p.catalogRepo.FindServiceByID(ctx, svc.ServiceID)
		switch {
		case err == nil:
			price = s.Price()
		case infra.IsKind(err, infra.KindNotFound):
			slog.Warn("service missing from catalog, pricing as zero", "service_id", svc.ServiceID)
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		draft.Services = append(draft.Services, proposal.SelectedService{
			ServiceID: svc.ServiceID,
			Price:     price,
			Discount:  svc.Discount.ToDomain(),
		})
	}

	return draft, nil
}

type sentNotificationPayload struct {
	ProposalID uuid.UUID  `json:"proposal_id"`
	OrderID    string     `json:"order_id"`
	ClientID   uuid.UUID  `json:"client_id"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`
}

func (p *proposalCommandsImpl) enqueueSentNotification(ctx context.Context, tx infra.DBTX, entity *proposal.Proposal, now time.Time) error {
	payload, err := json.Marshal(sentNotificationPayload{
		ProposalID: entity.ID(),
		OrderID:    entity.OrderID(),
		ClientID:   entity.ClientID(),
		ValidUntil: entity.ValidUntil(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}
	return p.notificationRepo.CreateJob(ctx, tx, notificationKindEmail, "proposal_sent", payload, now)
}
