package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edinstair/property_transition_app/internal/apperrors"
	"github.com/edinstair/property_transition_app/internal/core/domain"
	portsrepo "github.com/edinstair/property_transition_app/internal/core/ports/repositories"
)

// templateTransferService clones the recurring billing template from
// the outgoing contact onto the replacement. Transfer never mutates
// the source template; RetireSource removes it as a separate,
// operator-confirmed action once the clone exists.
type templateTransferService struct {
	BaseService
	templateRepo portsrepo.RepeatingInvoiceRepositoryFacade
}

// NewTemplateTransferService creates the template transfer service.
func NewTemplateTransferService(templateRepo portsrepo.RepeatingInvoiceRepositoryFacade) *templateTransferService {
	return &templateTransferService{templateRepo: templateRepo}
}

func (s *templateTransferService) Transfer(ctx context.Context, source *domain.Contact, target *domain.Contact) (*domain.RepeatingInvoice, error) {
	active, err := s.singleActiveTemplate(ctx, source.ContactID)
	if err != nil {
		return nil, err
	}

	clone := active.CloneForContact(target.ContactID)
	clone.Status = domain.TemplateAuthorised
	// The remote system rejects approval for contacts without an email
	// address, so the template falls back to authorised-only.
	clone.ApprovedForSending = target.EmailAddress != ""

	created, err := s.templateRepo.CreateRepeatingInvoice(ctx, clone)
	if err != nil {
		return nil, fmt.Errorf("failed to create template for contact %s: %w", target.ContactID, err)
	}

	s.LogInfo(ctx, "Transferred repeating template",
		slog.String("source_template_id", active.TemplateID),
		slog.String("new_template_id", created.TemplateID),
		slog.String("target_contact_id", target.ContactID),
		slog.Bool("approved_for_sending", created.ApprovedForSending))
	return created, nil
}

// RetireSource sets the source contact's remaining active template to
// DELETED. The clone created by Transfer belongs to the replacement
// contact, so the source still owns exactly one active template.
func (s *templateTransferService) RetireSource(ctx context.Context, source *domain.Contact) error {
	active, err := s.singleActiveTemplate(ctx, source.ContactID)
	if err != nil {
		return err
	}
	if err := s.templateRepo.DeleteRepeatingInvoice(ctx, active.TemplateID); err != nil {
		return fmt.Errorf("failed to delete template %s: %w", active.TemplateID, err)
	}
	s.LogInfo(ctx, "Retired source repeating template",
		slog.String("template_id", active.TemplateID),
		slog.String("contact_id", source.ContactID))
	return nil
}

func (s *templateTransferService) singleActiveTemplate(ctx context.Context, contactID string) (*domain.RepeatingInvoice, error) {
	templates, err := s.templateRepo.ListRepeatingInvoicesByContact(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates for contact %s: %w", contactID, err)
	}

	active := make([]domain.RepeatingInvoice, 0, 1)
	for _, t := range templates {
		if t.Status != domain.TemplateDeleted {
			active = append(active, t)
		}
	}
	if len(active) != 1 {
		return nil, fmt.Errorf("%w: contact %s has %d active templates",
			apperrors.ErrNoActiveTemplate, contactID, len(active))
	}
	return &active[0], nil
}
