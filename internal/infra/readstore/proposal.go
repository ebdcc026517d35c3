package readstore

import (
	"context"
	"encoding/json"

	"proposal-service/internal/domain/pricing"
	"proposal-service/internal/infra"
	"proposal-service/internal/pkg/pgconv"
	"proposal-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const findProposalViewByIDQuery = `
SELECT p.id, p.order_id, p.client_id, c.company_name, p.created_by, u.email,
       p.package_id, pk.name, p.include_package, p.breakdown, p.status,
       p.valid_until, p.note, p.created_at, p.updated_at
FROM proposals p
JOIN clients c ON c.id = p.client_id
JOIN users u ON u.id = p.created_by
LEFT JOIN packages pk ON pk.id = p.package_id
WHERE p.id = $1
`

const findProposalServiceNamesQuery = `
SELECT ps.service_id, s.name
FROM proposal_services ps
JOIN services s ON s.id = ps.service_id
WHERE ps.proposal_id = $1
ORDER BY ps.position
`

const listProposalsQuery = `
SELECT p.id, p.order_id, c.company_name, p.status, p.final_price, p.valid_until, p.created_at
FROM proposals p
JOIN clients c ON c.id = p.client_id
ORDER BY p.created_at DESC, p.id DESC
`

const listProposalsByCreatorQuery = `
SELECT p.id, p.order_id, c.company_name, p.status, p.final_price, p.valid_until, p.created_at
FROM proposals p
JOIN clients c ON c.id = p.client_id
WHERE p.created_by = $1
ORDER BY p.created_at DESC, p.id DESC
`

type ProposalReadStore struct {
	db infra.DBTX
}

func NewProposalReadStore(db infra.DBTX) *ProposalReadStore {
	return &ProposalReadStore{db: db}
}

func (r *ProposalReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.ProposalView, error) {
	var (
		view          queries.ProposalView
		note          *string
		breakdownJSON []byte
	)

	row := r.db.QueryRow(ctx, findProposalViewByIDQuery, id)
	err := row.Scan(
		&view.ID, &view.OrderID, &view.ClientID, &view.ClientCompany, &view.CreatedBy, &view.CreatorEmail,
		&view.PackageID, &view.PackageName, &view.IncludePackage, &breakdownJSON, &view.Status,
		&view.ValidUntil, &note, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("proposal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find proposal view", err)
	}
	view.Note = note

	if err := json.Unmarshal(breakdownJSON, &view.Breakdown); err != nil {
		return nil, infra.WrapRepoErr("failed to decode pricing snapshot", err)
	}

	names, err := r.serviceNames(ctx, id)
	if err != nil {
		return nil, err
	}

	// Snapshot line order matches the stored position order.
	view.Services = make([]queries.ProposalServiceView, 0, len(view.Breakdown.Services))
	for _, line := range view.Breakdown.Services {
		view.Services = append(view.Services, queries.ProposalServiceView{
			ServiceID:      line.ServiceID,
			ServiceName:    names[line.ServiceID],
			Original:       line.Original,
			Discounted:     line.Discounted,
			DiscountAmount: line.DiscountAmount,
		})
	}

	return &view, nil
}

func (r *ProposalReadStore) serviceNames(ctx context.Context, proposalID uuid.UUID) (map[uuid.UUID]string, error) {
	rows, err := r.db.Query(ctx, findProposalServiceNamesQuery, proposalID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find proposal services", err)
	}
	defer rows.Close()

	names := make(map[uuid.UUID]string)
	for rows.Next() {
		var (
			serviceID uuid.UUID
			name      string
		)
		if err := rows.Scan(&serviceID, &name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan proposal service", err)
		}
		names[serviceID] = name
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read proposal services", err)
	}
	return names, nil
}

func (r *ProposalReadStore) FindAll(ctx context.Context) ([]*queries.ProposalListItem, error) {
	rows, err := r.db.Query(ctx, listProposalsQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list proposals", err)
	}
	defer rows.Close()
	return scanProposalListItems(rows)
}

func (r *ProposalReadStore) FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]*queries.ProposalListItem, error) {
	rows, err := r.db.Query(ctx, listProposalsByCreatorQuery, creatorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list proposals by creator", err)
	}
	defer rows.Close()
	return scanProposalListItems(rows)
}

func scanProposalListItems(rows pgx.Rows) ([]*queries.ProposalListItem, error) {
	items := make([]*queries.ProposalListItem, 0)
	for rows.Next() {
		var item queries.ProposalListItem
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.ClientCompany, &item.Status,
			&item.FinalPrice, &item.ValidUntil, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan proposal list item", err)
		}
		item.FinalPriceDisplay = pricing.FormatAmount(item.FinalPrice)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read proposal list", err)
	}
	return items, nil
}
