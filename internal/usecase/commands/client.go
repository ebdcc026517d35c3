package commands

import (
	"context"

	"proposal-service/internal/domain/client"
	reqdto "proposal-service/internal/handler/dto/request"
	"proposal-service/internal/infra"
	"proposal-service/internal/pkg/errs"
	"proposal-service/internal/usecase/queries"
	"proposal-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type ClientRepository interface {
	Create(ctx context.Context, c *client.Client) error
	Update(ctx context.Context, c *client.Client) error
	FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error)
}

type ClientCommands interface {
	Create(ctx context.Context, actor shared.Actor, req reqdto.CreateClientRequest) (*queries.ClientView, error)
	Update(ctx context.Context, actor shared.Actor, id uuid.UUID, req reqdto.UpdateClientRequest) (*queries.ClientView, error)
}

type clientCommandsImpl struct {
	repo          ClientRepository
	clientQueries queries.ClientQueries
}

func NewClientCommands(repo ClientRepository, clientQueries queries.ClientQueries) ClientCommands {
	return &clientCommandsImpl{repo: repo, clientQueries: clientQueries}
}

func (c *clientCommandsImpl) Create(ctx context.Context, actor shared.Actor, req reqdto.CreateClientRequest) (*queries.ClientView, error) {
	entity, err := req.ToDomain(actor.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.repo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.clientQueries.GetByID(ctx, actor, entity.ID())
}

func (c *clientCommandsImpl) Update(ctx context.Context, actor shared.Actor, id uuid.UUID, req reqdto.UpdateClientRequest) (*queries.ClientView, error) {
	entity, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !actor.CanAccess(entity.CreatedBy()) {
		return nil, ErrClientNotFound
	}

	if err := req.Apply(entity); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.repo.Update(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.clientQueries.GetByID(ctx, actor, id)
}
