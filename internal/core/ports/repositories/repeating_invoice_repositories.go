package repositories

import (
	"context"

	"github.com/edinstair/property_transition_app/internal/core/domain"
)

// RepeatingInvoiceReader defines read operations for repeating
// invoice templates.
type RepeatingInvoiceReader interface {
	// ListRepeatingInvoicesByContact retrieves a contact's non-deleted
	// repeating invoice templates.
	ListRepeatingInvoicesByContact(ctx context.Context, contactID string) ([]domain.RepeatingInvoice, error)
}

// RepeatingInvoiceWriter defines template mutations. Transfer never
// mutates the source template; deactivation is a separate,
// operator-confirmed call.
type RepeatingInvoiceWriter interface {
	// CreateRepeatingInvoice creates a template; the remote assigns the ID.
	CreateRepeatingInvoice(ctx context.Context, template domain.RepeatingInvoice) (*domain.RepeatingInvoice, error)

	// DeleteRepeatingInvoice flips a template's status to DELETED.
	DeleteRepeatingInvoice(ctx context.Context, templateID string) error
}

// RepeatingInvoiceRepositoryFacade combines the template port interfaces.
type RepeatingInvoiceRepositoryFacade interface {
	RepeatingInvoiceReader
	RepeatingInvoiceWriter
}
