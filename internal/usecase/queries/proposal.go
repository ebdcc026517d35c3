package queries

import (
	"context"
	"time"

	"proposal-service/internal/domain/pricing"
	"proposal-service/internal/domain/proposal"
	"proposal-service/internal/pkg/clock"
	"proposal-service/internal/pkg/errs"
	"proposal-service/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ProposalView struct {
	ID             uuid.UUID             `json:"id"`
	OrderID        string                `json:"order_id"`
	ClientID       uuid.UUID             `json:"client_id"`
	ClientCompany  string                `json:"client_company"`
	CreatedBy      uuid.UUID             `json:"created_by"`
	CreatorEmail   string                `json:"creator_email"`
	PackageID      *uuid.UUID            `json:"package_id,omitempty"`
	PackageName    *string               `json:"package_name,omitempty"`
	IncludePackage bool                  `json:"include_package"`
	Services       []ProposalServiceView `json:"services"`
	Breakdown      pricing.Breakdown     `json:"breakdown"`
	Status         string                `json:"status"`
	ValidUntil     *time.Time            `json:"valid_until,omitempty"`
	Note           *string               `json:"note,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

type ProposalServiceView struct {
	ServiceID      uuid.UUID `json:"service_id"`
	ServiceName    string    `json:"service_name"`
	Original       int64     `json:"original"`
	Discounted     int64     `json:"discounted"`
	DiscountAmount int64     `json:"discount_amount"`
}

type ProposalListItem struct {
	ID                uuid.UUID  `json:"id"`
	OrderID           string     `json:"order_id"`
	ClientCompany     string     `json:"client_company"`
	Status            string     `json:"status"`
	FinalPrice        int64      `json:"final_price"`
	FinalPriceDisplay string     `json:"final_price_display"`
	ValidUntil        *time.Time `json:"valid_until,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

var ErrProposalNotFound = errs.ErrProposalNotFound

type ProposalQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ProposalView, error)
	// GetByIDSystem bypasses ownership checks for read-after-write paths.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ProposalView, error)
	List(ctx context.Context, actor shared.Actor) ([]*ProposalListItem, error)
}

type ProposalReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*ProposalView, error)
	FindAll(ctx context.Context) ([]*ProposalListItem, error)
	FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]*ProposalListItem, error)
}

type proposalQueriesImpl struct {
	store ProposalReadStore
	clock clock.Clock
}

func NewProposalQueries(store ProposalReadStore, clk clock.Clock) ProposalQueries {
	return &proposalQueriesImpl{store: store, clock: clk}
}

func (q *proposalQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ProposalView, error) {
	view, err := q.store.FindViewByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(view.CreatedBy) {
		// Hide existence from non-owners
		return nil, ErrProposalNotFound
	}

	q.applyExpiry(view)
	return view, nil
}

func (q *proposalQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ProposalView, error) {
	view, err := q.store.FindViewByID(ctx, id)
	if err != nil {
		return nil, err
	}
	q.applyExpiry(view)
	return view, nil
}

func (q *proposalQueriesImpl) List(ctx context.Context, actor shared.Actor) ([]*ProposalListItem, error) {
	var (
		items []*ProposalListItem
		err   error
	)
	if actor.IsAdmin() {
		items, err = q.store.FindAll(ctx)
	} else {
		items, err = q.store.FindByCreator(ctx, actor.ID)
	}
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	for _, item := range items {
		if item.Status == proposal.StatusSent.String() && item.ValidUntil != nil && now.After(*item.ValidUntil) {
			item.Status = proposal.StatusExpired.String()
		}
	}
	return items, nil
}

// applyExpiry folds expiry into the display status the same way the
// entity derives it.
func (q *proposalQueriesImpl) applyExpiry(view *ProposalView) {
	now := q.clock.Now()
	if view.Status == proposal.StatusSent.String() && view.ValidUntil != nil && now.After(*view.ValidUntil) {
		view.Status = proposal.StatusExpired.String()
	}
}
