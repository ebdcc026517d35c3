package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Client errors
	ErrClientNotFound = errors.New("client not found")

	// Catalog errors
	ErrPackageNotFound = errors.New("package not found")
	ErrServiceNotFound = errors.New("service not found")

	// Proposal errors
	ErrProposalNotFound   = errors.New("proposal not found")
	ErrProposalNotDraft   = errors.New("proposal is not a draft")
	ErrProposalNotSent    = errors.New("proposal has not been sent")
	ErrProposalExpired    = errors.New("proposal has expired")
	ErrOrderIDConflict    = errors.New("order id conflict")
	ErrForbiddenProposal  = errors.New("proposal belongs to another user")
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrInvoiceExists      = errors.New("invoice already issued for proposal")
	ErrProposalNotAccepted = errors.New("proposal is not accepted")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
