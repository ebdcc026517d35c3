package invoice

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyNumber    = errors.New("invoice number cannot be empty")
	ErrNegativeAmount = errors.New("invoice amount cannot be negative")
)

// NumberPrefix is prepended to the proposal's order ID to form the
// invoice number, so the two stay correlated in exports.
const NumberPrefix = "INV-"

// Invoice freezes the final price of an accepted proposal. One invoice
// per proposal, enforced by a unique constraint on proposal_id.
type Invoice struct {
	id         uuid.UUID
	number     string
	proposalID uuid.UUID
	clientID   uuid.UUID
	amount     int64
	issuedBy   uuid.UUID
	issuedAt   time.Time
	createdAt  time.Time
}

func NewInvoice(proposalOrderID string, proposalID, clientID uuid.UUID, amount int64, issuedBy uuid.UUID, issuedAt time.Time) (*Invoice, error) {
	if proposalOrderID == "" {
		return nil, ErrEmptyNumber
	}
	if amount < 0 {
		return nil, ErrNegativeAmount
	}

	return &Invoice{
		id:         uuid.New(),
		number:     NumberPrefix + proposalOrderID,
		proposalID: proposalID,
		clientID:   clientID,
		amount:     amount,
		issuedBy:   issuedBy,
		issuedAt:   issuedAt,
	}, nil
}

func ReconstructInvoice(id uuid.UUID, number string, proposalID, clientID uuid.UUID, amount int64, issuedBy uuid.UUID, issuedAt, createdAt time.Time) *Invoice {
	return &Invoice{
		id:         id,
		number:     number,
		proposalID: proposalID,
		clientID:   clientID,
		amount:     amount,
		issuedBy:   issuedBy,
		issuedAt:   issuedAt,
		createdAt:  createdAt,
	}
}

func (i *Invoice) ID() uuid.UUID         { return i.id }
func (i *Invoice) Number() string        { return i.number }
func (i *Invoice) ProposalID() uuid.UUID { return i.proposalID }
func (i *Invoice) ClientID() uuid.UUID   { return i.clientID }
func (i *Invoice) Amount() int64         { return i.amount }
func (i *Invoice) IssuedBy() uuid.UUID   { return i.issuedBy }
func (i *Invoice) IssuedAt() time.Time   { return i.issuedAt }
func (i *Invoice) CreatedAt() time.Time  { return i.createdAt }
