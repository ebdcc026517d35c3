package queries

import (
	"context"
	"time"

	"proposal-service/internal/pkg/errs"
	"proposal-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type ClientView struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"company_name"`
	ContactName string    `json:"contact_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var ErrClientNotFound = errs.ErrClientNotFound

type ClientQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ClientView, error)
	List(ctx context.Context, actor shared.Actor) ([]*ClientView, error)
}

type ClientReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ClientView, error)
	FindAll(ctx context.Context) ([]*ClientView, error)
	FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]*ClientView, error)
}

type clientQueriesImpl struct {
	store ClientReadStore
}

func NewClientQueries(store ClientReadStore) ClientQueries {
	return &clientQueriesImpl{store: store}
}

func (q *clientQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ClientView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(view.CreatedBy) {
		return nil, ErrClientNotFound
	}
	return view, nil
}

func (q *clientQueriesImpl) List(ctx context.Context, actor shared.Actor) ([]*ClientView, error) {
	if actor.IsAdmin() {
		return q.store.FindAll(ctx)
	}
	return q.store.FindByCreator(ctx, actor.ID)
}
