package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/edinstair/property_transition_app/internal/core/domain"
	portssvc "github.com/edinstair/property_transition_app/internal/core/ports/services"
	"github.com/edinstair/property_transition_app/internal/dto"
)

// --- Mock ContactRepository ---
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockContactRepository) FindContactByAccountNumber(ctx context.Context, accountNumber string) (*domain.Contact, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockContactRepository) ListContactsByPropertyBase(ctx context.Context, propertyBase string) ([]domain.Contact, error) {
	args := m.Called(ctx, propertyBase)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

func (m *MockContactRepository) GetContactBalance(ctx context.Context, contactID string) (*domain.ContactBalance, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactBalance), args.Error(1)
}

func (m *MockContactRepository) SearchContacts(ctx context.Context, query string) ([]domain.Contact, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

func (m *MockContactRepository) CreateContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	args := m.Called(ctx, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockContactRepository) UpdateContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	args := m.Called(ctx, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockContactRepository) ListContactGroups(ctx context.Context) ([]domain.ContactGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactGroup), args.Error(1)
}

func (m *MockContactRepository) AddContactToGroup(ctx context.Context, contactID, groupID string) error {
	args := m.Called(ctx, contactID, groupID)
	return args.Error(0)
}

func (m *MockContactRepository) RemoveContactFromGroup(ctx context.Context, contactID, groupID string) error {
	args := m.Called(ctx, contactID, groupID)
	return args.Error(0)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesByContact(ctx context.Context, contactID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoiceContact(ctx context.Context, invoiceID, newContactID string) error {
	args := m.Called(ctx, invoiceID, newContactID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoiceLineItems(ctx context.Context, invoiceID string, lineItems []domain.InvoiceLineItem) error {
	args := m.Called(ctx, invoiceID, lineItems)
	return args.Error(0)
}

func (m *MockInvoiceRepository) CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	args := m.Called(ctx, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

// --- Mock RepeatingInvoiceRepository ---
type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) ListRepeatingInvoicesByContact(ctx context.Context, contactID string) ([]domain.RepeatingInvoice, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RepeatingInvoice), args.Error(1)
}

func (m *MockTemplateRepository) CreateRepeatingInvoice(ctx context.Context, template domain.RepeatingInvoice) (*domain.RepeatingInvoice, error) {
	args := m.Called(ctx, template)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RepeatingInvoice), args.Error(1)
}

func (m *MockTemplateRepository) DeleteRepeatingInvoice(ctx context.Context, templateID string) error {
	args := m.Called(ctx, templateID)
	return args.Error(0)
}

// --- Mock step services for the workflow orchestrator ---

type MockContactTransitionSvc struct {
	mock.Mock
}

func (m *MockContactTransitionSvc) FindContact(ctx context.Context, accountNumber string) (*domain.Contact, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockContactTransitionSvc) CreateFromExisting(ctx context.Context, old *domain.Contact, req dto.CreateContactRequest) (*domain.Contact, []string, error) {
	args := m.Called(ctx, old, req)
	var warnings []string
	if args.Get(1) != nil {
		warnings = args.Get(1).([]string)
	}
	if args.Get(0) == nil {
		return nil, warnings, args.Error(2)
	}
	return args.Get(0).(*domain.Contact), warnings, args.Error(2)
}

func (m *MockContactTransitionSvc) FindNextAvailableAccount(ctx context.Context, base domain.AccountIdentifier, suffix string) (string, error) {
	args := m.Called(ctx, base, suffix)
	return args.String(0), args.Error(1)
}

type MockInvoiceReassignmentSvc struct {
	mock.Mock
}

func (m *MockInvoiceReassignmentSvc) FindEligible(ctx context.Context, contactID string, cutoff time.Time) ([]domain.Invoice, error) {
	args := m.Called(ctx, contactID, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceReassignmentSvc) Reassign(ctx context.Context, invoiceIDs []string, targetContactID string) (*domain.ReassignmentResult, error) {
	args := m.Called(ctx, invoiceIDs, targetContactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReassignmentResult), args.Error(1)
}

type MockTemplateTransferSvc struct {
	mock.Mock
}

func (m *MockTemplateTransferSvc) Transfer(ctx context.Context, source *domain.Contact, target *domain.Contact) (*domain.RepeatingInvoice, error) {
	args := m.Called(ctx, source, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RepeatingInvoice), args.Error(1)
}

func (m *MockTemplateTransferSvc) RetireSource(ctx context.Context, source *domain.Contact) error {
	args := m.Called(ctx, source)
	return args.Error(0)
}

type MockPreviousContactSvc struct {
	mock.Mock
}

func (m *MockPreviousContactSvc) Resolve(ctx context.Context, contactID string) (*domain.PreviousContactResolution, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PreviousContactResolution), args.Error(1)
}

func (m *MockPreviousContactSvc) Apply(ctx context.Context, contactID string, res domain.PreviousContactResolution) (*domain.Contact, error) {
	args := m.Called(ctx, contactID, res)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

type MockInvoiceSplitSvc struct {
	mock.Mock
}

func (m *MockInvoiceSplitSvc) Preview(ctx context.Context, old *domain.Contact, vacateDate, moveInDate time.Time) (*portssvc.SplitOutcome, error) {
	args := m.Called(ctx, old, vacateDate, moveInDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.SplitOutcome), args.Error(1)
}

func (m *MockInvoiceSplitSvc) Execute(ctx context.Context, old *domain.Contact, newContactID string, vacateDate, moveInDate time.Time) (*portssvc.SplitOutcome, error) {
	args := m.Called(ctx, old, newContactID, vacateDate, moveInDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.SplitOutcome), args.Error(1)
}
