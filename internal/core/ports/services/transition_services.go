package services

import (
	"context"
	"time"

	"github.com/edinstair/property_transition_app/internal/core/domain"
	"github.com/edinstair/property_transition_app/internal/dto"
)

// ContactTransitionSvc locates outgoing contacts and derives their
// replacements.
type ContactTransitionSvc interface {
	// FindContact resolves a full account number to its contact, or an 8
	// character property base to the latest contact at that property.
	FindContact(ctx context.Context, accountNumber string) (*domain.Contact, error)

	// CreateFromExisting derives and creates the replacement contact:
	// address and billing defaults copied from old, personal fields from
	// the request, account sequence incremented, new contact code
	// applied. Returned warnings are recoverable (group assignment
	// failures); the contact exists whenever err is nil.
	CreateFromExisting(ctx context.Context, old *domain.Contact, req dto.CreateContactRequest) (*domain.Contact, []string, error)

	// FindNextAvailableAccount probes sequential account numbers after a
	// duplicate conflict and returns the first free one.
	FindNextAvailableAccount(ctx context.Context, base domain.AccountIdentifier, suffix string) (string, error)
}

// InvoiceReassignmentSvc matches and re-points the outgoing contact's
// invoices.
type InvoiceReassignmentSvc interface {
	// FindEligible returns the contact's invoices issued on or after the
	// cutoff date, excluding voided and deleted ones.
	FindEligible(ctx context.Context, contactID string, cutoff time.Time) ([]domain.Invoice, error)

	// Reassign re-points each selected invoice independently; one
	// failure never aborts the rest, and re-pointing an invoice already
	// at the target is a no-op success.
	Reassign(ctx context.Context, invoiceIDs []string, targetContactID string) (*domain.ReassignmentResult, error)
}

// TemplateTransferSvc clones the recurring billing template onto the
// replacement contact. Transfer never touches the source template;
// removing it is the separate, operator-confirmed RetireSource call.
type TemplateTransferSvc interface {
	Transfer(ctx context.Context, source *domain.Contact, target *domain.Contact) (*domain.RepeatingInvoice, error)

	// RetireSource marks the source contact's single active template
	// deleted in the remote system, once its clone exists elsewhere.
	RetireSource(ctx context.Context, source *domain.Contact) error
}

// PreviousContactSvc computes and applies the vacated contact's
// terminal state.
type PreviousContactSvc interface {
	// Resolve reads the balance and derives the terminal state. A failed
	// balance read is apperrors.ErrBalanceUnavailable, never a guess.
	Resolve(ctx context.Context, contactID string) (*domain.PreviousContactResolution, error)

	// Apply re-reads the balance, rewrites account number and status,
	// swaps every group membership for the previous-accounts group.
	Apply(ctx context.Context, contactID string, res domain.PreviousContactResolution) (*domain.Contact, error)
}

// SplitOutcome reports an invoice split preview or execution.
type SplitOutcome struct {
	Source     domain.Invoice
	Split      domain.InvoiceSplit
	NewInvoice *domain.Invoice // set only when the split was executed
}

// InvoiceSplitSvc divides the latest unpaid invoice between occupiers
// when the change lands mid billing period.
type InvoiceSplitSvc interface {
	Preview(ctx context.Context, old *domain.Contact, vacateDate, moveInDate time.Time) (*SplitOutcome, error)
	Execute(ctx context.Context, old *domain.Contact, newContactID string, vacateDate, moveInDate time.Time) (*SplitOutcome, error)
}

// TransitionWorkflowSvc drives one run through the five step state
// machine. Every step method is idempotent-retriable.
type TransitionWorkflowSvc interface {
	Start(ctx context.Context, req dto.StartTransitionRequest, operator string) (*domain.TransitionState, error)
	Get(ctx context.Context, runID string) (*domain.TransitionState, error)
	CreateContact(ctx context.Context, runID string, req dto.CreateContactRequest) (*domain.TransitionState, error)
	ReassignInvoices(ctx context.Context, runID string, invoiceIDs []string) (*domain.TransitionState, error)
	SkipInvoices(ctx context.Context, runID string) (*domain.TransitionState, error)
	TransferTemplate(ctx context.Context, runID string, deleteSource bool) (*domain.TransitionState, error)
	SkipTemplate(ctx context.Context, runID string) (*domain.TransitionState, error)
	ResolvePrevious(ctx context.Context, runID string) (*domain.TransitionState, error)
	SplitInvoice(ctx context.Context, runID string, req dto.SplitInvoiceRequest) (*SplitOutcome, error)
	Abandon(ctx context.Context, runID string) (*domain.TransitionState, error)
}

// DebugQuerySvc is the raw pass-through surface for operator
// troubleshooting.
type DebugQuerySvc interface {
	SearchContacts(ctx context.Context, query string) ([]domain.Contact, error)
	SearchInvoices(ctx context.Context, contactID string, issuedOnOrAfter time.Time) ([]domain.Invoice, error)
}

// AuthSvc validates the operator credential and issues session tokens.
type AuthSvc interface {
	Login(ctx context.Context, operator, password string) (token string, expiresAt time.Time, err error)
}
