package proposal

import (
	"errors"
	"time"

	"proposal-service/internal/domain/ordernum"
	"proposal-service/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidStatus      = errors.New("invalid proposal status")
	ErrNotDraft           = errors.New("proposal is not a draft")
	ErrNotSent            = errors.New("proposal has not been sent")
	ErrExpired            = errors.New("proposal has expired")
	ErrNoValidityPeriod   = errors.New("validity period must be positive")
	ErrNoServicesSelected = errors.New("proposal needs a package or at least one service")
)

// SelectedService is one service chosen for a proposal, in display
// order, with its optional per-service discount.
type SelectedService struct {
	ServiceID uuid.UUID
	Price     int64
	Discount  pricing.Discount
}

// Proposal is a priced offer sent to a client: an optional package plus
// zero or more services, three independent discounts, and a pricing
// snapshot frozen at the last edit. The order ID is assigned once at
// creation and never changes.
type Proposal struct {
	id              uuid.UUID
	orderID         string
	clientID        uuid.UUID
	createdBy       uuid.UUID
	packageID       *uuid.UUID
	packagePrice    int64
	includePackage  bool
	services        []SelectedService
	packageDiscount pricing.Discount
	overallDiscount pricing.Discount
	includesTax     bool
	breakdown       pricing.Breakdown
	status          Status
	validUntil      *time.Time
	note            string
	createdAt       time.Time
	updatedAt       time.Time
}

type Draft struct {
	ClientID        uuid.UUID
	PackageID       *uuid.UUID
	PackagePrice    int64
	IncludePackage  bool
	Services        []SelectedService
	PackageDiscount pricing.Discount
	OverallDiscount pricing.Discount
	IncludesTax     bool
	Note            string
}

func NewProposal(orderID string, createdBy uuid.UUID, draft Draft) (*Proposal, error) {
	if !ordernum.Pattern.MatchString(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !draft.IncludePackage && len(draft.Services) == 0 {
		return nil, ErrNoServicesSelected
	}

	p := &Proposal{
		id:              uuid.New(),
		orderID:         orderID,
		clientID:        draft.ClientID,
		createdBy:       createdBy,
		packageID:       draft.PackageID,
		packagePrice:    draft.PackagePrice,
		includePackage:  draft.IncludePackage,
		services:        draft.Services,
		packageDiscount: draft.PackageDiscount,
		overallDiscount: draft.OverallDiscount,
		includesTax:     draft.IncludesTax,
		status:          StatusDraft,
		note:            draft.Note,
	}
	p.breakdown = p.computeBreakdown()

	return p, nil
}

func ReconstructProposal(
	id uuid.UUID,
	orderID string,
	clientID, createdBy uuid.UUID,
	packageID *uuid.UUID,
	packagePrice int64,
	includePackage bool,
	services []SelectedService,
	packageDiscount, overallDiscount pricing.Discount,
	includesTax bool,
	breakdown pricing.Breakdown,
	status Status,
	validUntil *time.Time,
	note string,
	createdAt, updatedAt time.Time,
) *Proposal {
	return &Proposal{
		id:              id,
		orderID:         orderID,
		clientID:        clientID,
		createdBy:       createdBy,
		packageID:       packageID,
		packagePrice:    packagePrice,
		includePackage:  includePackage,
		services:        services,
		packageDiscount: packageDiscount,
		overallDiscount: overallDiscount,
		includesTax:     includesTax,
		breakdown:       breakdown,
		status:          status,
		validUntil:      validUntil,
		note:            note,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Revise replaces the selection and discounts of a draft and recomputes
// the pricing snapshot. Recomputation is idempotent: revising with the
// same inputs yields a bit-identical snapshot.
func (p *Proposal) Revise(draft Draft) error {
	if p.status != StatusDraft {
		return ErrNotDraft
	}
	if !draft.IncludePackage && len(draft.Services) == 0 {
		return ErrNoServicesSelected
	}

	p.clientID = draft.ClientID
	p.packageID = draft.PackageID
	p.packagePrice = draft.PackagePrice
	p.includePackage = draft.IncludePackage
	p.services = draft.Services
	p.packageDiscount = draft.PackageDiscount
	p.overallDiscount = draft.OverallDiscount
	p.includesTax = draft.IncludesTax
	p.note = draft.Note
	p.breakdown = p.computeBreakdown()
	return nil
}

func (p *Proposal) Send(now time.Time, validityDays int) error {
	if p.status != StatusDraft {
		return ErrNotDraft
	}
	if validityDays <= 0 {
		return ErrNoValidityPeriod
	}

	until := now.AddDate(0, 0, validityDays)
	p.status = StatusSent
	p.validUntil = &until
	return nil
}

func (p *Proposal) Accept(now time.Time) error {
	if p.status != StatusSent {
		return ErrNotSent
	}
	if p.HasExpired(now) {
		return ErrExpired
	}
	p.status = StatusAccepted
	return nil
}

func (p *Proposal) Decline(now time.Time) error {
	if p.status != StatusSent {
		return ErrNotSent
	}
	if p.HasExpired(now) {
		return ErrExpired
	}
	p.status = StatusDeclined
	return nil
}

func (p *Proposal) HasExpired(now time.Time) bool {
	return p.status == StatusSent && p.validUntil != nil && now.After(*p.validUntil)
}

// EffectiveStatus folds expiry into the stored status for display.
func (p *Proposal) EffectiveStatus(now time.Time) Status {
	if p.HasExpired(now) {
		return StatusExpired
	}
	return p.status
}

func (p *Proposal) computeBreakdown() pricing.Breakdown {
	sel := pricing.Selection{
		IncludePackage: p.includePackage,
		IncludesTax:    p.includesTax,
		Services:       make([]pricing.ServiceLine, 0, len(p.services)),
	}
	if p.packageID != nil {
		sel.Package = &pricing.PackageLine{ID: *p.packageID, Price: p.packagePrice}
	}

	serviceDiscounts := make(map[uuid.UUID]pricing.Discount, len(p.services))
	for _, svc := range p.services {
		sel.Services = append(sel.Services, pricing.ServiceLine{ID: svc.ServiceID, Price: svc.Price})
		if !svc.Discount.IsZero() {
			serviceDiscounts[svc.ServiceID] = svc.Discount
		}
	}

	return pricing.ComputeBreakdown(sel, pricing.DiscountSet{
		Package:  p.packageDiscount,
		Services: serviceDiscounts,
		Overall:  p.overallDiscount,
	})
}

func (p *Proposal) ID() uuid.UUID                      { return p.id }
func (p *Proposal) OrderID() string                    { return p.orderID }
func (p *Proposal) ClientID() uuid.UUID                { return p.clientID }
func (p *Proposal) CreatedBy() uuid.UUID               { return p.createdBy }
func (p *Proposal) PackageID() *uuid.UUID              { return p.packageID }
func (p *Proposal) PackagePrice() int64                { return p.packagePrice }
func (p *Proposal) IncludePackage() bool               { return p.includePackage }
func (p *Proposal) Services() []SelectedService        { return p.services }
func (p *Proposal) PackageDiscount() pricing.Discount  { return p.packageDiscount }
func (p *Proposal) OverallDiscount() pricing.Discount  { return p.overallDiscount }
func (p *Proposal) IncludesTax() bool                  { return p.includesTax }
func (p *Proposal) Breakdown() pricing.Breakdown       { return p.breakdown }
func (p *Proposal) Status() Status                     { return p.status }
func (p *Proposal) ValidUntil() *time.Time             { return p.validUntil }
func (p *Proposal) Note() string                       { return p.note }
func (p *Proposal) CreatedAt() time.Time               { return p.createdAt }
func (p *Proposal) UpdatedAt() time.Time               { return p.updatedAt }
