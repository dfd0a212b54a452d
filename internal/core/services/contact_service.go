package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/edinstair/property_transition_app/internal/apperrors"
	"github.com/edinstair/property_transition_app/internal/core/domain"
	portsrepo "github.com/edinstair/property_transition_app/internal/core/ports/repositories"
	"github.com/edinstair/property_transition_app/internal/dto"
)

// contactTransitionService locates outgoing contacts and derives the
// replacement contact for an occupier change.
type contactTransitionService struct {
	BaseService
	contactRepo portsrepo.ContactRepositoryFacade
}

// NewContactTransitionService creates the contact transition service.
func NewContactTransitionService(contactRepo portsrepo.ContactRepositoryFacade) *contactTransitionService {
	return &contactTransitionService{contactRepo: contactRepo}
}

func (s *contactTransitionService) FindContact(ctx context.Context, accountNumber string) (*domain.Contact, error) {
	id, err := domain.ParseAccountNumber(accountNumber)
	if err != nil {
		return nil, err
	}

	if !id.IsPropertySearch() {
		contact, err := s.contactRepo.FindContactByAccountNumber(ctx, id.Raw)
		if err != nil {
			return nil, fmt.Errorf("failed to find contact %s: %w", id.Raw, err)
		}
		return contact, nil
	}

	// Bare property root: return the occupant with the highest account
	// sequence, which is the most recently created one.
	contacts, err := s.contactRepo.ListContactsByPropertyBase(ctx, id.PropertyRoot())
	if err != nil {
		return nil, fmt.Errorf("failed to search property %s: %w", id.PropertyRoot(), err)
	}

	var latest *domain.Contact
	latestSeq := -1
	for i := range contacts {
		cid, err := domain.ParseAccountNumber(contacts[i].AccountNumber)
		if err != nil {
			continue
		}
		if seq := cid.Sequence(); seq > latestSeq {
			latestSeq = seq
			latest = &contacts[i]
		}
	}
	if latest == nil {
		return nil, fmt.Errorf("%w: no accounts at property %s", apperrors.ErrNotFound, id.PropertyRoot())
	}
	return latest, nil
}

func (s *contactTransitionService) CreateFromExisting(ctx context.Context, old *domain.Contact, req dto.CreateContactRequest) (*domain.Contact, []string, error) {
	code, err := domain.LookupContactCode(normalizeSuffix(req.ContactCode))
	if err != nil {
		return nil, nil, err
	}

	oldID, err := domain.ParseAccountNumber(old.AccountNumber)
	if err != nil {
		return nil, nil, fmt.Errorf("outgoing contact has unusable account number %q: %w", old.AccountNumber, err)
	}
	nextBase, err := oldID.NextSequence()
	if err != nil {
		return nil, nil, err
	}
	newAccount := nextBase + code.Suffix

	existing, err := s.contactRepo.FindContactByAccountNumber(ctx, newAccount)
	switch {
	case err == nil && existing != nil:
		if !req.ConfirmDuplicate {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrDuplicateAccount, newAccount)
		}
		s.LogWarn(ctx, "Reusing taken account number on operator confirmation",
			slog.String("account_number", newAccount))
	case errors.Is(err, apperrors.ErrNotFound):
		// Number is free.
	case err != nil:
		return nil, nil, fmt.Errorf("failed to check account number %s: %w", newAccount, err)
	}

	flat, building := domain.SplitContactName(old.Name)
	contact := domain.Contact{
		Name:          domain.FormatContactName(nextBase, flat, building),
		AccountNumber: newAccount,
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		EmailAddress:  strings.TrimSpace(req.Email),
		Status:        domain.ContactActive,

		Addresses: append([]domain.Address(nil), old.Addresses...),
		Phones:    append([]domain.Phone(nil), old.Phones...),

		DefaultCurrency:      old.DefaultCurrency,
		SalesAccountCode:     old.SalesAccountCode,
		PurchasesAccountCode: old.PurchasesAccountCode,
		BrandingThemeID:      old.BrandingThemeID,
	}

	created, err := s.contactRepo.CreateContact(ctx, contact)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create contact %s: %w", newAccount, err)
	}
	s.LogInfo(ctx, "Created replacement contact",
		slog.String("contact_id", created.ContactID),
		slog.String("account_number", created.AccountNumber))

	// Carry over the outgoing contact's group memberships, except the
	// previous-accounts bucket. Group failures never undo the create.
	var warnings []string
	for _, g := range old.Groups {
		if g.Name == domain.PreviousAccountsGroupName {
			continue
		}
		if err := s.contactRepo.AddContactToGroup(ctx, created.ContactID, g.GroupID); err != nil {
			warning := fmt.Sprintf("contact created but could not be added to group %q: %v", g.Name, err)
			warnings = append(warnings, warning)
			s.LogWarn(ctx, "Group assignment failed",
				slog.String("contact_id", created.ContactID),
				slog.String("group", g.Name),
				slog.String("error", err.Error()))
		}
	}

	// The new code's category decides the standing group the contact is
	// filed under, e.g. third-party payers. Like the carry-over, a
	// failure here is a warning, never a rollback.
	if groupName, ok := domain.GroupNameForCategory(code.Category); ok && !hasGroupNamed(old.Groups, groupName) {
		if err := s.addToGroupByName(ctx, created.ContactID, groupName); err != nil {
			warning := fmt.Sprintf("contact created but could not be added to group %q: %v", groupName, err)
			warnings = append(warnings, warning)
			s.LogWarn(ctx, "Category group assignment failed",
				slog.String("contact_id", created.ContactID),
				slog.String("group", groupName),
				slog.String("error", err.Error()))
		}
	}

	return created, warnings, nil
}

// addToGroupByName resolves a contact group by its remote name and adds
// the contact to it.
func (s *contactTransitionService) addToGroupByName(ctx context.Context, contactID, groupName string) error {
	groups, err := s.contactRepo.ListContactGroups(ctx)
	if err != nil {
		return fmt.Errorf("failed to list contact groups: %w", err)
	}
	for _, g := range groups {
		if g.Name == groupName {
			return s.contactRepo.AddContactToGroup(ctx, contactID, g.GroupID)
		}
	}
	return fmt.Errorf("%w: contact group %q", apperrors.ErrNotFound, groupName)
}

func hasGroupNamed(groups []domain.ContactGroup, name string) bool {
	for _, g := range groups {
		if g.Name == name {
			return true
		}
	}
	return false
}

func (s *contactTransitionService) FindNextAvailableAccount(ctx context.Context, base domain.AccountIdentifier, suffix string) (string, error) {
	suffix = normalizeSuffix(suffix)
	cur := base
	for {
		nextBase, err := cur.NextSequence()
		if err != nil {
			return "", err
		}
		candidate := nextBase + suffix
		_, err = s.contactRepo.FindContactByAccountNumber(ctx, candidate)
		if errors.Is(err, apperrors.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to probe account number %s: %w", candidate, err)
		}
		cur, err = domain.ParseAccountNumber(candidate)
		if err != nil {
			return "", err
		}
	}
}

// normalizeSuffix accepts a contact code with or without its leading
// slash and upper-cases it.
func normalizeSuffix(suffix string) string {
	suffix = strings.ToUpper(strings.TrimSpace(suffix))
	if suffix != "" && !strings.HasPrefix(suffix, "/") {
		suffix = "/" + suffix
	}
	return suffix
}
