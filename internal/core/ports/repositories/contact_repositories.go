package repositories

import (
	"context"

	"github.com/edinstair/property_transition_app/internal/core/domain"
)

// ContactReader defines read operations against the remote contact ledger.
type ContactReader interface {
	// FindContactByID retrieves a contact by its remote identifier.
	FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error)

	// FindContactByAccountNumber retrieves the contact holding an exact
	// account number, or apperrors.ErrNotFound.
	FindContactByAccountNumber(ctx context.Context, accountNumber string) (*domain.Contact, error)

	// ListContactsByPropertyBase retrieves every contact whose account
	// number starts with the given 8 character property root.
	ListContactsByPropertyBase(ctx context.Context, propertyBase string) ([]domain.Contact, error)

	// GetContactBalance reads the receivable position for a contact.
	GetContactBalance(ctx context.Context, contactID string) (*domain.ContactBalance, error)

	// SearchContacts runs a free-text search against the remote system,
	// matching names, account numbers and email addresses.
	SearchContacts(ctx context.Context, query string) ([]domain.Contact, error)
}

// ContactWriter defines write operations against the remote contact ledger.
type ContactWriter interface {
	// CreateContact creates a contact; the remote system assigns the ID.
	CreateContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error)

	// UpdateContact rewrites a contact's account number and status.
	UpdateContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error)
}

// ContactGroupReader defines read operations for contact groups.
type ContactGroupReader interface {
	// ListContactGroups retrieves all groups defined remotely.
	ListContactGroups(ctx context.Context) ([]domain.ContactGroup, error)
}

// ContactGroupWriter defines membership mutations. Membership is an
// open-ended set; each element succeeds or fails on its own.
type ContactGroupWriter interface {
	AddContactToGroup(ctx context.Context, contactID, groupID string) error
	RemoveContactFromGroup(ctx context.Context, contactID, groupID string) error
}

// ContactRepositoryFacade combines all contact-related port interfaces.
type ContactRepositoryFacade interface {
	ContactReader
	ContactWriter
	ContactGroupReader
	ContactGroupWriter
}
