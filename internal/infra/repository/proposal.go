package repository

import (
	"context"
	"encoding/json"
	"time"

	"proposal-service/internal/domain/pricing"
	"proposal-service/internal/domain/proposal"
	"proposal-service/internal/infra"
	"proposal-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const insertProposalQuery = `
INSERT INTO proposals (
	id, order_id, client_id, created_by, package_id, package_price, include_package,
	package_discount_kind, package_discount_value,
	overall_discount_kind, overall_discount_value,
	includes_tax, breakdown, final_price, status, valid_until, note
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
`

const updateProposalQuery = `
UPDATE proposals SET
	client_id = $2, package_id = $3, package_price = $4, include_package = $5,
	package_discount_kind = $6, package_discount_value = $7,
	overall_discount_kind = $8, overall_discount_value = $9,
	includes_tax = $10, breakdown = $11, final_price = $12, status = $13,
	valid_until = $14, note = $15, updated_at = now()
WHERE id = $1
`

const insertProposalServiceQuery = `
INSERT INTO proposal_services (proposal_id, service_id, position, price, discount_kind, discount_value)
VALUES ($1, $2, $3, $4, $5, $6)
`

const deleteProposalServicesQuery = `
DELETE FROM proposal_services WHERE proposal_id = $1
`

const findProposalByIDQuery = `
SELECT id, order_id, client_id, created_by, package_id, package_price, include_package,
       package_discount_kind, package_discount_value,
       overall_discount_kind, overall_discount_value,
       includes_tax, breakdown, status, valid_until, note, created_at, updated_at
FROM proposals
WHERE id = $1
`

const findProposalByIDForUpdateQuery = findProposalByIDQuery + ` FOR UPDATE`

const findProposalServicesQuery = `
SELECT service_id, price, discount_kind, discount_value
FROM proposal_services
WHERE proposal_id = $1
ORDER BY position
`

const latestOrderIDQuery = `
SELECT order_id
FROM proposals
WHERE order_id LIKE $1 || '%'
ORDER BY order_id DESC
LIMIT 1
`

type ProposalRepository struct {
	db infra.DBTX
}

func NewProposalRepository(db infra.DBTX) *ProposalRepository {
	return &ProposalRepository{db: db}
}

func (r *ProposalRepository) Create(ctx context.Context, tx infra.DBTX, p *proposal.Proposal) error {
	breakdown, err := json.Marshal(p.Breakdown())
	if err != nil {
		return infra.WrapRepoErr("failed to encode pricing snapshot", err)
	}

	_, err = tx.Exec(ctx, insertProposalQuery,
		p.ID(), p.OrderID(), p.ClientID(), p.CreatedBy(),
		p.PackageID(), p.PackagePrice(), p.IncludePackage(),
		string(p.PackageDiscount().Kind()), p.PackageDiscount().StorageValue(),
		string(p.OverallDiscount().Kind()), p.OverallDiscount().StorageValue(),
		p.IncludesTax(), breakdown, p.Breakdown().FinalPrice,
		string(p.Status()), p.ValidUntil(), p.Note(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create proposal", err)
	}

	return r.insertServices(ctx, tx, p)
}

func (r *ProposalRepository) Update(ctx context.Context, tx infra.DBTX, p *proposal.Proposal) error {
	breakdown, err := json.Marshal(p.Breakdown())
	if err != nil {
		return infra.WrapRepoErr("failed to encode pricing snapshot", err)
	}

	_, err = tx.Exec(ctx, updateProposalQuery,
		p.ID(), p.ClientID(),
		p.PackageID(), p.PackagePrice(), p.IncludePackage(),
		string(p.PackageDiscount().Kind()), p.PackageDiscount().StorageValue(),
		string(p.OverallDiscount().Kind()), p.OverallDiscount().StorageValue(),
		p.IncludesTax(), breakdown, p.Breakdown().FinalPrice,
		string(p.Status()), p.ValidUntil(), p.Note(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update proposal", err)
	}

	if _, err := tx.Exec(ctx, deleteProposalServicesQuery, p.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear proposal services", err)
	}
	return r.insertServices(ctx, tx, p)
}

func (r *ProposalRepository) insertServices(ctx context.Context, tx infra.DBTX, p *proposal.Proposal) error {
	for i, svc := range p.Services() {
		_, err := tx.Exec(ctx, insertProposalServiceQuery,
			p.ID(), svc.ServiceID, i, svc.Price,
			string(svc.Discount.Kind()), svc.Discount.StorageValue(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to create proposal service", err)
		}
	}
	return nil
}

func (r *ProposalRepository) FindByID(ctx context.Context, id uuid.UUID) (*proposal.Proposal, error) {
	return r.findByID(ctx, r.db, id, findProposalByIDQuery)
}

// FindByIDForUpdate locks the row for the duration of tx so concurrent
// state transitions serialize.
func (r *ProposalRepository) FindByIDForUpdate(ctx context.Context, tx infra.DBTX, id uuid.UUID) (*proposal.Proposal, error) {
	return r.findByID(ctx, tx, id, findProposalByIDForUpdateQuery)
}

func (r *ProposalRepository) findByID(ctx context.Context, db infra.DBTX, id uuid.UUID, query string) (*proposal.Proposal, error) {
	var (
		pid, clientID, createdBy       uuid.UUID
		orderID, status, note          string
		packageID                      *uuid.UUID
		packagePrice                   int64
		includePackage, includesTax    bool
		pkgDiscKind, overallDiscKind   string
		pkgDiscValue, overallDiscValue float64
		breakdownJSON                  []byte
		validUntil                     *time.Time
		createdAt, updatedAt           time.Time
	)

	row := db.QueryRow(ctx, query, id)
	err := row.Scan(
		&pid, &orderID, &clientID, &createdBy, &packageID, &packagePrice, &includePackage,
		&pkgDiscKind, &pkgDiscValue, &overallDiscKind, &overallDiscValue,
		&includesTax, &breakdownJSON, &status, &validUntil, &note, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("proposal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find proposal", err)
	}

	var breakdown pricing.Breakdown
	if err := json.Unmarshal(breakdownJSON, &breakdown); err != nil {
		return nil, infra.WrapRepoErr("failed to decode pricing snapshot", err)
	}

	services, err := r.findServices(ctx, db, id)
	if err != nil {
		return nil, err
	}

	st, err := proposal.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored proposal status", err)
	}

	return proposal.ReconstructProposal(
		pid, orderID, clientID, createdBy,
		packageID, packagePrice, includePackage,
		services,
		pricing.DiscountFromStorage(pkgDiscKind, pkgDiscValue),
		pricing.DiscountFromStorage(overallDiscKind, overallDiscValue),
		includesTax, breakdown, st, validUntil, note,
		createdAt, updatedAt,
	), nil
}

func (r *ProposalRepository) findServices(ctx context.Context, db infra.DBTX, proposalID uuid.UUID) ([]proposal.SelectedService, error) {
	rows, err := db.Query(ctx, findProposalServicesQuery, proposalID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find proposal services", err)
	}
	defer rows.Close()

	services := make([]proposal.SelectedService, 0)
	for rows.Next() {
		var (
			serviceID uuid.UUID
			price     int64
			kind      string
			value     float64
		)
		if err := rows.Scan(&serviceID, &price, &kind, &value); err != nil {
			return nil, infra.WrapRepoErr("failed to scan proposal service", err)
		}
		services = append(services, proposal.SelectedService{
			ServiceID: serviceID,
			Price:     price,
			Discount:  pricing.DiscountFromStorage(kind, value),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read proposal services", err)
	}
	return services, nil
}

// LatestOrderID returns the highest order ID carrying prefix, or an
// empty string when no proposal has one yet.
func (r *ProposalRepository) LatestOrderID(ctx context.Context, prefix string) (string, error) {
	var orderID string
	err := r.db.QueryRow(ctx, latestOrderIDQuery, prefix).Scan(&orderID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", nil
		}
		return "", infra.WrapRepoErr("failed to find latest order id", err)
	}
	return orderID, nil
}
