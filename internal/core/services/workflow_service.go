package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/edinstair/property_transition_app/internal/apperrors"
	"github.com/edinstair/property_transition_app/internal/core/domain"
	portssvc "github.com/edinstair/property_transition_app/internal/core/ports/services"
	"github.com/edinstair/property_transition_app/internal/dto"
)

const runDateLayout = "2006-01-02"

// transitionWorkflowService drives one occupier transition through the
// five step state machine. Runs live in memory only; the remote ledger
// holds every durable effect, so an abandoned or lost run leaves
// nothing to clean up locally.
type transitionWorkflowService struct {
	BaseService
	contacts  portssvc.ContactTransitionSvc
	invoices  portssvc.InvoiceReassignmentSvc
	templates portssvc.TemplateTransferSvc
	previous  portssvc.PreviousContactSvc
	split     portssvc.InvoiceSplitSvc

	mu   sync.RWMutex
	runs map[string]*domain.TransitionState
}

// NewTransitionWorkflowService creates the workflow orchestrator.
func NewTransitionWorkflowService(
	contacts portssvc.ContactTransitionSvc,
	invoices portssvc.InvoiceReassignmentSvc,
	templates portssvc.TemplateTransferSvc,
	previous portssvc.PreviousContactSvc,
	split portssvc.InvoiceSplitSvc,
) *transitionWorkflowService {
	return &transitionWorkflowService{
		contacts:  contacts,
		invoices:  invoices,
		templates: templates,
		previous:  previous,
		split:     split,
		runs:      make(map[string]*domain.TransitionState),
	}
}

func (s *transitionWorkflowService) Start(ctx context.Context, req dto.StartTransitionRequest, operator string) (*domain.TransitionState, error) {
	cutoff, err := time.Parse(runDateLayout, req.MoveInDate)
	if err != nil {
		return nil, fmt.Errorf("%w: moveInDate must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	contact, err := s.contacts.FindContact(ctx, req.AccountNumber)
	if err != nil {
		return nil, err
	}

	run := &domain.TransitionState{
		RunID:      uuid.NewString(),
		StartedAt:  time.Now().UTC(),
		StartedBy:  operator,
		Status:     domain.TransitionInProgress,
		Step:       domain.StepSearch,
		CutoffDate: cutoff,
		OldContact: contact,
	}

	s.mu.Lock()
	s.runs[run.RunID] = run
	s.mu.Unlock()

	s.LogInfo(ctx, "Transition run started",
		slog.String("run_id", run.RunID),
		slog.String("operator", operator),
		slog.String("old_contact_id", contact.ContactID),
		slog.String("account_number", contact.AccountNumber))
	return s.snapshot(run), nil
}

func (s *transitionWorkflowService) Get(ctx context.Context, runID string) (*domain.TransitionState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[runID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrRunNotFound, runID)
	}
	return s.snapshot(run), nil
}

func (s *transitionWorkflowService) CreateContact(ctx context.Context, runID string, req dto.CreateContactRequest) (*domain.TransitionState, error) {
	run, err := s.lockRunAt(runID, domain.StepSearch)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	created, warnings, err := s.contacts.CreateFromExisting(ctx, run.OldContact, req)
	if err != nil {
		// Recoverable: the run stays at SEARCH so the operator can
		// resubmit, e.g. with confirmDuplicate set.
		return nil, err
	}
	run.NewContact = created
	run.Warnings = append(run.Warnings, warnings...)
	run.Step = domain.StepContactCreated

	// Pre-fetch the reassignment candidates for step 3. A failed read
	// here is only a warning; the step itself re-reads.
	matched, err := s.invoices.FindEligible(ctx, run.OldContact.ContactID, run.CutoffDate)
	if err != nil {
		run.Warnings = append(run.Warnings, fmt.Sprintf("could not match invoices yet: %v", err))
	} else {
		run.MatchedInvoices = matched
	}
	return s.snapshot(run), nil
}

func (s *transitionWorkflowService) ReassignInvoices(ctx context.Context, runID string, invoiceIDs []string) (*domain.TransitionState, error) {
	run, err := s.lockRunAt(runID, domain.StepContactCreated)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	if run.MatchedInvoices == nil {
		matched, err := s.invoices.FindEligible(ctx, run.OldContact.ContactID, run.CutoffDate)
		if err != nil {
			return nil, err
		}
		run.MatchedInvoices = matched
	}

	eligible := make(map[string]bool, len(run.MatchedInvoices))
	for _, inv := range run.MatchedInvoices {
		eligible[inv.InvoiceID] = true
	}
	for _, id := range invoiceIDs {
		if !eligible[id] {
			return nil, fmt.Errorf("%w: invoice %s is not a reassignment candidate", apperrors.ErrValidation, id)
		}
	}

	result, err := s.invoices.Reassign(ctx, invoiceIDs, run.NewContact.ContactID)
	if err != nil {
		return nil, err
	}
	// Partial failure still advances: the per-invoice outcomes are
	// recorded and retrying an already moved invoice is a no-op.
	run.Reassignment = result
	run.Step = domain.StepInvoicesReassigned
	return s.snapshot(run), nil
}

func (s *transitionWorkflowService) SkipInvoices(ctx context.Context, runID string) (*domain.TransitionState, error) {
	run, err := s.lockRunAt(runID, domain.StepContactCreated)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	run.Step = domain.StepInvoicesReassigned
	s.LogInfo(ctx, "Invoice reassignment skipped", slog.String("run_id", runID))
	return s.snapshot(run), nil
}

func (s *transitionWorkflowService) TransferTemplate(ctx context.Context, runID string, deleteSource bool) (*domain.TransitionState, error) {
	run, err := s.lockRunAt(runID, domain.StepInvoicesReassigned)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	tpl, err := s.templates.Transfer(ctx, run.OldContact, run.NewContact)
	if err != nil {
		return nil, err
	}
	run.NewTemplate = tpl
	run.Step = domain.StepTemplateReassigned

	// The source template is only removed on explicit operator consent,
	// and only after its clone exists. A failed removal leaves manual
	// cleanup in the remote system, not a failed run.
	if deleteSource {
		if err := s.templates.RetireSource(ctx, run.OldContact); err != nil {
			run.Warnings = append(run.Warnings,
				fmt.Sprintf("new template created but the old template could not be removed: %v", err))
			s.LogError(ctx, err, "Source template removal failed",
				slog.String("run_id", runID),
				slog.String("contact_id", run.OldContact.ContactID))
		}
	}
	return s.snapshot(run), nil
}

func (s *transitionWorkflowService) SkipTemplate(ctx context.Context, runID string) (*domain.TransitionState, error) {
	run, err := s.lockRunAt(runID, domain.StepInvoicesReassigned)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	run.Step = domain.StepTemplateReassigned
	s.LogInfo(ctx, "Template transfer skipped", slog.String("run_id", runID))
	return s.snapshot(run), nil
}

func (s *transitionWorkflowService) ResolvePrevious(ctx context.Context, runID string) (*domain.TransitionState, error) {
	run, err := s.lockRunAt(runID, domain.StepTemplateReassigned)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	res, err := s.previous.Resolve(ctx, run.OldContact.ContactID)
	if err != nil {
		return nil, err
	}
	updated, err := s.previous.Apply(ctx, run.OldContact.ContactID, *res)
	if err != nil {
		if updated == nil {
			// Nothing was mutated; the step can simply be retried.
			return nil, err
		}
		// The contact was rewritten but group bookkeeping failed. The
		// run cannot advance cleanly and retrying would re-apply, so it
		// is marked failed for manual follow-up in the remote system.
		run.Status = domain.TransitionFailed
		run.FailureStep = domain.StepPreviousResolved
		run.FailureReason = err.Error()
		run.OldContact = updated
		s.LogError(ctx, err, "Previous contact partially resolved",
			slog.String("run_id", runID),
			slog.String("contact_id", updated.ContactID))
		return nil, err
	}

	run.PreviousOutcome = res
	run.OldContact = updated
	run.Step = domain.StepPreviousResolved
	run.Status = domain.TransitionComplete
	s.LogInfo(ctx, "Transition run complete",
		slog.String("run_id", runID),
		slog.String("old_contact_id", updated.ContactID),
		slog.String("new_contact_id", run.NewContact.ContactID))
	return s.snapshot(run), nil
}

func (s *transitionWorkflowService) SplitInvoice(ctx context.Context, runID string, req dto.SplitInvoiceRequest) (*portssvc.SplitOutcome, error) {
	vacate, err := time.Parse(runDateLayout, req.VacateDate)
	if err != nil {
		return nil, fmt.Errorf("%w: vacateDate must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	moveIn, err := time.Parse(runDateLayout, req.MoveInDate)
	if err != nil {
		return nil, fmt.Errorf("%w: moveInDate must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	s.mu.RLock()
	run, ok := s.runs[runID]
	if !ok {
		s.mu.RUnlock()
		return nil, fmt.Errorf("%w: %s", apperrors.ErrRunNotFound, runID)
	}
	if run.Terminal() && run.Status != domain.TransitionComplete {
		s.mu.RUnlock()
		return nil, fmt.Errorf("%w: run is %s", apperrors.ErrStepOrder, run.Status)
	}
	old, replacement := run.OldContact, run.NewContact
	s.mu.RUnlock()

	if !req.Execute {
		return s.split.Preview(ctx, old, vacate, moveIn)
	}
	if replacement == nil {
		return nil, fmt.Errorf("%w: the replacement contact must exist before executing a split", apperrors.ErrStepOrder)
	}
	return s.split.Execute(ctx, old, replacement.ContactID, vacate, moveIn)
}

func (s *transitionWorkflowService) Abandon(ctx context.Context, runID string) (*domain.TransitionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[runID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrRunNotFound, runID)
	}
	if run.Terminal() {
		return nil, fmt.Errorf("%w: run is already %s", apperrors.ErrStepOrder, run.Status)
	}
	run.Status = domain.TransitionAbandoned
	s.LogInfo(ctx, "Transition run abandoned",
		slog.String("run_id", runID),
		slog.String("step", string(run.Step)))
	return s.snapshot(run), nil
}

// lockRunAt acquires the write lock and returns the run iff it is in
// progress at the expected step. The caller unlocks.
func (s *transitionWorkflowService) lockRunAt(runID string, expected domain.TransitionStep) (*domain.TransitionState, error) {
	s.mu.Lock()
	run, ok := s.runs[runID]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", apperrors.ErrRunNotFound, runID)
	}
	if run.Terminal() {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: run is %s", apperrors.ErrStepOrder, run.Status)
	}
	if run.Step != expected {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: run is at %s", apperrors.ErrStepOrder, run.Step)
	}
	return run, nil
}

// snapshot copies a run so callers never hold a pointer into the
// registry after the lock is released.
func (s *transitionWorkflowService) snapshot(run *domain.TransitionState) *domain.TransitionState {
	cp := *run
	return &cp
}
