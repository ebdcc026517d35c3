package repository

import (
	"context"
	"time"

	"proposal-service/internal/domain/client"
	"proposal-service/internal/domain/user"
	"proposal-service/internal/infra"
	"proposal-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const insertClientQuery = `
INSERT INTO clients (id, company_name, contact_name, email, phone, created_by)
VALUES ($1, $2, $3, $4, $5, $6)
`

const updateClientQuery = `
UPDATE clients SET company_name = $2, contact_name = $3, email = $4, phone = $5, updated_at = now()
WHERE id = $1
`

const findClientEntityByIDQuery = `
SELECT id, company_name, contact_name, email, phone, created_by, created_at, updated_at
FROM clients
WHERE id = $1
`

type ClientRepository struct {
	db infra.DBTX
}

func NewClientRepository(db infra.DBTX) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	_, err := r.db.Exec(ctx, insertClientQuery,
		c.ID(), c.CompanyName(), c.ContactName(), c.Email().Value(), c.Phone(), c.CreatedBy(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create client", err)
	}
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	_, err := r.db.Exec(ctx, updateClientQuery,
		c.ID(), c.CompanyName(), c.ContactName(), c.Email().Value(), c.Phone(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update client", err)
	}
	return nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	var (
		cid, createdBy               uuid.UUID
		companyName, contactName     string
		email, phone                 string
		createdAt, updatedAt         time.Time
	)

	row := r.db.QueryRow(ctx, findClientEntityByIDQuery, id)
	err := row.Scan(&cid, &companyName, &contactName, &email, &phone, &createdBy, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client", err)
	}

	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored client email", err)
	}

	return client.ReconstructClient(cid, companyName, contactName, emailVO, phone, createdBy, createdAt, updatedAt), nil
}
