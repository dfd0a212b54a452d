package xero

import (
	"context"
	"fmt"
	"net/url"

	"github.com/edinstair/property_transition_app/internal/apperrors"
	"github.com/edinstair/property_transition_app/internal/core/domain"
	portsrepo "github.com/edinstair/property_transition_app/internal/core/ports/repositories"
	"github.com/edinstair/property_transition_app/pkg/xeroapi"
)

// InvoiceRepository implements the invoice ports over the accounting
// API's Invoices endpoint.
type InvoiceRepository struct {
	client *xeroapi.Client
}

func newInvoiceRepository(client *xeroapi.Client) *InvoiceRepository {
	return &InvoiceRepository{client: client}
}

var _ portsrepo.InvoiceRepositoryFacade = (*InvoiceRepository)(nil)

func (r *InvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	var env invoicesEnvelope
	if err := r.client.Get(ctx, "Invoices/"+invoiceID, nil, &env); err != nil {
		return nil, err
	}
	if len(env.Invoices) == 0 {
		return nil, fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
	}
	inv := toDomainInvoice(env.Invoices[0])
	return &inv, nil
}

func (r *InvoiceRepository) ListInvoicesByContact(ctx context.Context, contactID string) ([]domain.Invoice, error) {
	q := url.Values{}
	q.Set("ContactIDs", contactID)
	q.Set("order", "Date DESC")

	var env invoicesEnvelope
	if err := r.client.Get(ctx, "Invoices", q, &env); err != nil {
		return nil, err
	}
	invoices := make([]domain.Invoice, 0, len(env.Invoices))
	for _, w := range env.Invoices {
		invoices = append(invoices, toDomainInvoice(w))
	}
	return invoices, nil
}

// invoicePatch is a partial invoice update. The endpoint treats absent
// fields as unchanged, so patches must not carry zero-valued dates or
// totals the way the full wire type would.
type invoicePatch struct {
	InvoiceID string         `json:"InvoiceID"`
	Contact   *wireContact   `json:"Contact,omitempty"`
	LineItems []wireLineItem `json:"LineItems,omitempty"`
}

type invoicePatchEnvelope struct {
	Invoices []invoicePatch `json:"Invoices"`
}

// UpdateInvoiceContact re-points an invoice by posting a partial update
// carrying only the new contact reference.
func (r *InvoiceRepository) UpdateInvoiceContact(ctx context.Context, invoiceID, newContactID string) error {
	body := invoicePatchEnvelope{Invoices: []invoicePatch{{
		InvoiceID: invoiceID,
		Contact:   &wireContact{ContactID: newContactID},
	}}}
	return r.client.Post(ctx, "Invoices/"+invoiceID, body, nil)
}

func (r *InvoiceRepository) UpdateInvoiceLineItems(ctx context.Context, invoiceID string, lineItems []domain.InvoiceLineItem) error {
	body := invoicePatchEnvelope{Invoices: []invoicePatch{{
		InvoiceID: invoiceID,
		LineItems: toWireLineItems(lineItems),
	}}}
	return r.client.Post(ctx, "Invoices/"+invoiceID, body, nil)
}

func (r *InvoiceRepository) CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	body := invoicesEnvelope{Invoices: []wireInvoice{toWireInvoice(invoice)}}
	var env invoicesEnvelope
	if err := r.client.Put(ctx, "Invoices", body, &env); err != nil {
		return nil, err
	}
	if len(env.Invoices) == 0 {
		return nil, fmt.Errorf("invoice create returned an empty response")
	}
	created := toDomainInvoice(env.Invoices[0])
	return &created, nil
}
