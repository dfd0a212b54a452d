package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/edinstair/property_transition_app/internal/apperrors"
	"github.com/edinstair/property_transition_app/internal/core/domain"
	portsrepo "github.com/edinstair/property_transition_app/internal/core/ports/repositories"
)

// previousContactService resolves the vacated contact's terminal state
// from its balance and applies it: account number rewritten under /P,
// status set, group memberships swapped for the previous-accounts
// bucket.
type previousContactService struct {
	BaseService
	contactRepo portsrepo.ContactRepositoryFacade
}

// NewPreviousContactService creates the previous contact service.
func NewPreviousContactService(contactRepo portsrepo.ContactRepositoryFacade) *previousContactService {
	return &previousContactService{contactRepo: contactRepo}
}

func (s *previousContactService) Resolve(ctx context.Context, contactID string) (*domain.PreviousContactResolution, error) {
	balance, err := s.contactRepo.GetContactBalance(ctx, contactID)
	if err != nil {
		// Never guess a terminal state from a failed balance read.
		return nil, fmt.Errorf("%w: %v", apperrors.ErrBalanceUnavailable, err)
	}
	res := domain.ResolvePreviousContact(*balance)
	return &res, nil
}

func (s *previousContactService) Apply(ctx context.Context, contactID string, res domain.PreviousContactResolution) (*domain.Contact, error) {
	// Balances go stale between resolve and apply; re-read and rederive
	// immediately before mutating.
	fresh, err := s.Resolve(ctx, contactID)
	if err != nil {
		return nil, err
	}
	if fresh.TargetStatus != res.TargetStatus {
		s.LogWarn(ctx, "Balance changed between resolve and apply, using the fresh read",
			slog.String("contact_id", contactID),
			slog.String("resolved_status", string(res.TargetStatus)),
			slog.String("fresh_status", string(fresh.TargetStatus)))
	}

	contact, err := s.contactRepo.FindContactByID(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contact %s: %w", contactID, err)
	}

	id, err := domain.ParseAccountNumber(contact.AccountNumber)
	if err != nil {
		return nil, fmt.Errorf("contact %s has unusable account number %q: %w", contactID, contact.AccountNumber, err)
	}

	contact.AccountNumber = id.WithSuffix(fresh.TargetCode)
	contact.Status = fresh.TargetStatus
	updated, err := s.contactRepo.UpdateContact(ctx, *contact)
	if err != nil {
		return nil, fmt.Errorf("failed to update contact %s: %w", contactID, err)
	}
	s.LogInfo(ctx, "Previous contact resolved",
		slog.String("contact_id", contactID),
		slog.String("account_number", updated.AccountNumber),
		slog.String("status", string(updated.Status)),
		slog.String("outstanding", fresh.Outstanding.StringFixed(2)))

	if err := s.swapGroups(ctx, contact, fresh.TargetGroup); err != nil {
		return updated, err
	}
	return updated, nil
}

// swapGroups removes the contact from every current group and places it
// in exactly the previous-accounts group. Each membership change stands
// alone; failures are collected rather than short-circuited.
func (s *previousContactService) swapGroups(ctx context.Context, contact *domain.Contact, targetGroup string) error {
	groups, err := s.contactRepo.ListContactGroups(ctx)
	if err != nil {
		return fmt.Errorf("failed to list contact groups: %w", err)
	}
	var target *domain.ContactGroup
	for i := range groups {
		if groups[i].Name == targetGroup {
			target = &groups[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("%w: contact group %q", apperrors.ErrNotFound, targetGroup)
	}

	var errs []error
	alreadyMember := false
	for _, g := range contact.Groups {
		if g.GroupID == target.GroupID {
			alreadyMember = true
			continue
		}
		if err := s.contactRepo.RemoveContactFromGroup(ctx, contact.ContactID, g.GroupID); err != nil {
			errs = append(errs, fmt.Errorf("remove from group %q: %w", g.Name, err))
		}
	}
	if !alreadyMember {
		if err := s.contactRepo.AddContactToGroup(ctx, contact.ContactID, target.GroupID); err != nil {
			errs = append(errs, fmt.Errorf("add to group %q: %w", targetGroup, err))
		}
	}
	return errors.Join(errs...)
}
