package repositories

import (
	"context"

	"github.com/edinstair/property_transition_app/internal/core/domain"
)

// InvoiceReader defines read operations against the remote invoice ledger.
type InvoiceReader interface {
	// FindInvoiceByID retrieves one invoice with its line items.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoicesByContact retrieves all invoices owned by a contact,
	// newest first. Date and status filtering happens in the caller.
	ListInvoicesByContact(ctx context.Context, contactID string) ([]domain.Invoice, error)
}

// InvoiceWriter defines the invoice mutations this system performs.
type InvoiceWriter interface {
	// UpdateInvoiceContact re-points an invoice at a different contact.
	UpdateInvoiceContact(ctx context.Context, invoiceID, newContactID string) error

	// UpdateInvoiceLineItems replaces an invoice's line items, used when
	// rescaling the previous occupier's share of a split invoice.
	UpdateInvoiceLineItems(ctx context.Context, invoiceID string, lineItems []domain.InvoiceLineItem) error

	// CreateInvoice raises a new invoice; the remote assigns ID and number.
	CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error)
}

// InvoiceRepositoryFacade combines all invoice port interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
