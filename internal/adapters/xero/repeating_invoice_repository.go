package xero

import (
	"context"
	"fmt"
	"net/url"

	"github.com/edinstair/property_transition_app/internal/core/domain"
	portsrepo "github.com/edinstair/property_transition_app/internal/core/ports/repositories"
	"github.com/edinstair/property_transition_app/pkg/xeroapi"
)

// RepeatingInvoiceRepository implements the template ports over the
// accounting API's RepeatingInvoices endpoint.
type RepeatingInvoiceRepository struct {
	client *xeroapi.Client
}

func newRepeatingInvoiceRepository(client *xeroapi.Client) *RepeatingInvoiceRepository {
	return &RepeatingInvoiceRepository{client: client}
}

var _ portsrepo.RepeatingInvoiceRepositoryFacade = (*RepeatingInvoiceRepository)(nil)

func (r *RepeatingInvoiceRepository) ListRepeatingInvoicesByContact(ctx context.Context, contactID string) ([]domain.RepeatingInvoice, error) {
	q := url.Values{}
	q.Set("where", fmt.Sprintf(`Contact.ContactID==Guid("%s")`, contactID))

	var env repeatingInvoicesEnvelope
	if err := r.client.Get(ctx, "RepeatingInvoices", q, &env); err != nil {
		return nil, err
	}
	templates := make([]domain.RepeatingInvoice, 0, len(env.RepeatingInvoices))
	for _, w := range env.RepeatingInvoices {
		templates = append(templates, toDomainRepeatingInvoice(w))
	}
	return templates, nil
}

func (r *RepeatingInvoiceRepository) CreateRepeatingInvoice(ctx context.Context, template domain.RepeatingInvoice) (*domain.RepeatingInvoice, error) {
	body := repeatingInvoicesEnvelope{RepeatingInvoices: []wireRepeatingInvoice{toWireRepeatingInvoice(template)}}
	var env repeatingInvoicesEnvelope
	if err := r.client.Put(ctx, "RepeatingInvoices", body, &env); err != nil {
		return nil, err
	}
	if len(env.RepeatingInvoices) == 0 {
		return nil, fmt.Errorf("repeating invoice create returned an empty response")
	}
	created := toDomainRepeatingInvoice(env.RepeatingInvoices[0])
	return &created, nil
}

func (r *RepeatingInvoiceRepository) DeleteRepeatingInvoice(ctx context.Context, templateID string) error {
	body := repeatingInvoicesEnvelope{RepeatingInvoices: []wireRepeatingInvoice{{
		RepeatingInvoiceID: templateID,
		Status:             string(domain.TemplateDeleted),
	}}}
	return r.client.Post(ctx, "RepeatingInvoices/"+templateID, body, nil)
}
