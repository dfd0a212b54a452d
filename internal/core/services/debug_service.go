package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/edinstair/property_transition_app/internal/apperrors"
	"github.com/edinstair/property_transition_app/internal/core/domain"
	portsrepo "github.com/edinstair/property_transition_app/internal/core/ports/repositories"
)

// debugQueryService exposes raw reads against the remote ledger for
// operator troubleshooting. Nothing here mutates anything.
type debugQueryService struct {
	BaseService
	contactRepo portsrepo.ContactRepositoryFacade
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

// NewDebugQueryService creates the debug query service.
func NewDebugQueryService(contactRepo portsrepo.ContactRepositoryFacade, invoiceRepo portsrepo.InvoiceRepositoryFacade) *debugQueryService {
	return &debugQueryService{contactRepo: contactRepo, invoiceRepo: invoiceRepo}
}

func (s *debugQueryService) SearchContacts(ctx context.Context, query string) ([]domain.Contact, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty search query", apperrors.ErrValidation)
	}
	contacts, err := s.contactRepo.SearchContacts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("contact search failed: %w", err)
	}
	return contacts, nil
}

func (s *debugQueryService) SearchInvoices(ctx context.Context, contactID string, issuedOnOrAfter time.Time) ([]domain.Invoice, error) {
	if strings.TrimSpace(contactID) == "" {
		return nil, fmt.Errorf("%w: contactID is required", apperrors.ErrValidation)
	}
	invoices, err := s.invoiceRepo.ListInvoicesByContact(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("invoice search failed: %w", err)
	}
	if issuedOnOrAfter.IsZero() {
		return invoices, nil
	}
	filtered := make([]domain.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if !inv.IssueDate.Before(issuedOnOrAfter) {
			filtered = append(filtered, inv)
		}
	}
	return filtered, nil
}
