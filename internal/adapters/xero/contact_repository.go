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

// ContactRepository implements the contact ports over the accounting
// API's Contacts and ContactGroups endpoints.
type ContactRepository struct {
	client *xeroapi.Client
}

func newContactRepository(client *xeroapi.Client) *ContactRepository {
	return &ContactRepository{client: client}
}

var _ portsrepo.ContactRepositoryFacade = (*ContactRepository)(nil)

func (r *ContactRepository) FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	var env contactsEnvelope
	if err := r.client.Get(ctx, "Contacts/"+contactID, nil, &env); err != nil {
		return nil, err
	}
	if len(env.Contacts) == 0 {
		return nil, fmt.Errorf("%w: contact %s", apperrors.ErrNotFound, contactID)
	}
	c := toDomainContact(env.Contacts[0])
	return &c, nil
}

func (r *ContactRepository) FindContactByAccountNumber(ctx context.Context, accountNumber string) (*domain.Contact, error) {
	q := url.Values{}
	q.Set("where", fmt.Sprintf(`AccountNumber=="%s"`, accountNumber))

	var env contactsEnvelope
	if err := r.client.Get(ctx, "Contacts", q, &env); err != nil {
		return nil, err
	}
	if len(env.Contacts) == 0 {
		return nil, fmt.Errorf("%w: account number %s", apperrors.ErrNotFound, accountNumber)
	}
	c := toDomainContact(env.Contacts[0])
	return &c, nil
}

func (r *ContactRepository) ListContactsByPropertyBase(ctx context.Context, propertyBase string) ([]domain.Contact, error) {
	q := url.Values{}
	q.Set("where", fmt.Sprintf(`AccountNumber.StartsWith("%s")`, propertyBase))

	var env contactsEnvelope
	if err := r.client.Get(ctx, "Contacts", q, &env); err != nil {
		return nil, err
	}
	contacts := make([]domain.Contact, 0, len(env.Contacts))
	for _, w := range env.Contacts {
		contacts = append(contacts, toDomainContact(w))
	}
	return contacts, nil
}

func (r *ContactRepository) SearchContacts(ctx context.Context, query string) ([]domain.Contact, error) {
	q := url.Values{}
	q.Set("searchTerm", query)

	var env contactsEnvelope
	if err := r.client.Get(ctx, "Contacts", q, &env); err != nil {
		return nil, err
	}
	contacts := make([]domain.Contact, 0, len(env.Contacts))
	for _, w := range env.Contacts {
		contacts = append(contacts, toDomainContact(w))
	}
	return contacts, nil
}

// GetContactBalance reads the receivable totals off the contact record.
// The remote only includes balances on single-contact reads.
func (r *ContactRepository) GetContactBalance(ctx context.Context, contactID string) (*domain.ContactBalance, error) {
	var env contactsEnvelope
	if err := r.client.Get(ctx, "Contacts/"+contactID, nil, &env); err != nil {
		return nil, err
	}
	if len(env.Contacts) == 0 {
		return nil, fmt.Errorf("%w: contact %s", apperrors.ErrNotFound, contactID)
	}
	w := env.Contacts[0]
	if w.Balances == nil {
		return nil, fmt.Errorf("%w: contact %s response carried no balances", apperrors.ErrBalanceUnavailable, contactID)
	}
	return &domain.ContactBalance{
		Outstanding: w.Balances.AccountsReceivable.Outstanding,
		Overdue:     w.Balances.AccountsReceivable.Overdue,
	}, nil
}

func (r *ContactRepository) CreateContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	body := contactsEnvelope{Contacts: []wireContact{toWireContact(contact)}}
	var env contactsEnvelope
	if err := r.client.Put(ctx, "Contacts", body, &env); err != nil {
		return nil, err
	}
	if len(env.Contacts) == 0 {
		return nil, fmt.Errorf("contact create returned an empty response")
	}
	created := toDomainContact(env.Contacts[0])
	return &created, nil
}

func (r *ContactRepository) UpdateContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	if contact.ContactID == "" {
		return nil, fmt.Errorf("%w: contact update requires a contact ID", apperrors.ErrValidation)
	}
	body := contactsEnvelope{Contacts: []wireContact{toWireContact(contact)}}
	var env contactsEnvelope
	if err := r.client.Post(ctx, "Contacts/"+contact.ContactID, body, &env); err != nil {
		return nil, err
	}
	if len(env.Contacts) == 0 {
		return nil, fmt.Errorf("contact update returned an empty response")
	}
	updated := toDomainContact(env.Contacts[0])
	return &updated, nil
}

func (r *ContactRepository) ListContactGroups(ctx context.Context) ([]domain.ContactGroup, error) {
	var env contactGroupsEnvelope
	if err := r.client.Get(ctx, "ContactGroups", nil, &env); err != nil {
		return nil, err
	}
	groups := make([]domain.ContactGroup, 0, len(env.ContactGroups))
	for _, g := range env.ContactGroups {
		groups = append(groups, domain.ContactGroup{GroupID: g.ContactGroupID, Name: g.Name})
	}
	return groups, nil
}

func (r *ContactRepository) AddContactToGroup(ctx context.Context, contactID, groupID string) error {
	body := contactsEnvelope{Contacts: []wireContact{{ContactID: contactID}}}
	return r.client.Put(ctx, fmt.Sprintf("ContactGroups/%s/Contacts", groupID), body, nil)
}

func (r *ContactRepository) RemoveContactFromGroup(ctx context.Context, contactID, groupID string) error {
	return r.client.Delete(ctx, fmt.Sprintf("ContactGroups/%s/Contacts/%s", groupID, contactID))
}
