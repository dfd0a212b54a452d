package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/edinstair/property_transition_app/internal/core/domain"
	portsrepo "github.com/edinstair/property_transition_app/internal/core/ports/repositories"
)

// invoiceReassignmentService matches the outgoing contact's invoices
// against the cutoff date and re-points selected ones at the
// replacement contact.
type invoiceReassignmentService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

// NewInvoiceReassignmentService creates the invoice reassignment service.
func NewInvoiceReassignmentService(invoiceRepo portsrepo.InvoiceRepositoryFacade) *invoiceReassignmentService {
	return &invoiceReassignmentService{invoiceRepo: invoiceRepo}
}

func (s *invoiceReassignmentService) FindEligible(ctx context.Context, contactID string, cutoff time.Time) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoicesByContact(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices for contact %s: %w", contactID, err)
	}

	eligible := make([]domain.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.EligibleForReassignment(contactID, cutoff) {
			eligible = append(eligible, inv)
		}
	}
	sort.Slice(eligible, func(i, j int) bool {
		return eligible[i].IssueDate.After(eligible[j].IssueDate)
	})
	return eligible, nil
}

// Reassign moves each selected invoice independently. One invoice's
// failure never aborts the rest; the result maps every requested ID to
// an outcome. Re-pointing an invoice already owned by the target is a
// no-op success, which makes retries after partial failures safe.
func (s *invoiceReassignmentService) Reassign(ctx context.Context, invoiceIDs []string, targetContactID string) (*domain.ReassignmentResult, error) {
	result := &domain.ReassignmentResult{
		Succeeded: make([]string, 0, len(invoiceIDs)),
		Failed:    make(map[string]string),
	}

	for _, invoiceID := range invoiceIDs {
		inv, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
		if err != nil {
			result.Failed[invoiceID] = err.Error()
			continue
		}
		if inv.ContactID == targetContactID {
			result.Succeeded = append(result.Succeeded, invoiceID)
			continue
		}
		if err := s.invoiceRepo.UpdateInvoiceContact(ctx, invoiceID, targetContactID); err != nil {
			result.Failed[invoiceID] = err.Error()
			s.LogWarn(ctx, "Invoice reassignment failed",
				slog.String("invoice_id", invoiceID),
				slog.String("error", err.Error()))
			continue
		}
		result.Succeeded = append(result.Succeeded, invoiceID)
	}

	s.LogInfo(ctx, "Invoice reassignment batch finished",
		slog.Int("succeeded", len(result.Succeeded)),
		slog.Int("failed", len(result.Failed)),
		slog.String("target_contact_id", targetContactID))
	return result, nil
}
