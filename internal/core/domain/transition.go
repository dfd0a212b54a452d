package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransitionStep identifies a stage of the occupier transition workflow.
type TransitionStep string

const (
	StepSearch             TransitionStep = "SEARCH"
	StepContactCreated     TransitionStep = "CONTACT_CREATED"
	StepInvoicesReassigned TransitionStep = "INVOICES_REASSIGNED"
	StepTemplateReassigned TransitionStep = "TEMPLATE_REASSIGNED"
	StepPreviousResolved   TransitionStep = "PREVIOUS_CONTACT_RESOLVED"
)

// TransitionStatus is the overall state of one workflow run.
type TransitionStatus string

const (
	TransitionInProgress TransitionStatus = "IN_PROGRESS"
	TransitionComplete   TransitionStatus = "COMPLETE"
	TransitionAbandoned  TransitionStatus = "ABANDONED"
	TransitionFailed     TransitionStatus = "FAILED"
)

// PreviousContactResolution is the terminal state computed for a
// vacated contact from its outstanding balance. Any non-zero balance,
// debit or credit, keeps the contact ACTIVE.
type PreviousContactResolution struct {
	Outstanding  decimal.Decimal `json:"outstanding"`
	Overdue      decimal.Decimal `json:"overdue"`
	TargetStatus ContactStatus   `json:"targetStatus"`
	TargetCode   string          `json:"targetCode"`  // always "/P"
	TargetGroup  string          `json:"targetGroup"` // always the previous-accounts group
}

// ResolvePreviousContact is the total function from balance to terminal
// state: zero balance archives the contact, anything else keeps it
// active under the /P code.
func ResolvePreviousContact(balance ContactBalance) PreviousContactResolution {
	status := ContactInactive
	if balance.HasBalance() {
		status = ContactActive
	}
	return PreviousContactResolution{
		Outstanding:  balance.Outstanding,
		Overdue:      balance.Overdue,
		TargetStatus: status,
		TargetCode:   PreviousContactCode,
		TargetGroup:  PreviousAccountsGroupName,
	}
}

// ReassignmentResult is the per-invoice outcome of a reassignment
// batch. One invoice's failure never aborts the others.
type ReassignmentResult struct {
	Succeeded []string          `json:"succeeded"`
	Failed    map[string]string `json:"failed"` // invoice ID -> reason
}

// TransitionState is the per-run aggregate the orchestrator threads
// through the five steps. It lives only for the duration of one run;
// nothing is persisted beyond the remote API's own records.
type TransitionState struct {
	RunID      string           `json:"runID"`
	StartedAt  time.Time        `json:"startedAt"`
	StartedBy  string           `json:"startedBy"`
	Status     TransitionStatus `json:"status"`
	Step       TransitionStep   `json:"step"`
	CutoffDate time.Time        `json:"cutoffDate"` // move-in date

	OldContact *Contact `json:"oldContact,omitempty"`
	NewContact *Contact `json:"newContact,omitempty"`

	MatchedInvoices []Invoice           `json:"matchedInvoices,omitempty"`
	Reassignment    *ReassignmentResult `json:"reassignment,omitempty"`

	NewTemplate     *RepeatingInvoice          `json:"newTemplate,omitempty"`
	PreviousOutcome *PreviousContactResolution `json:"previousOutcome,omitempty"`

	Warnings      []string       `json:"warnings,omitempty"`
	FailureStep   TransitionStep `json:"failureStep,omitempty"`
	FailureReason string         `json:"failureReason,omitempty"`
}

// Terminal reports whether the run can no longer advance.
func (s TransitionState) Terminal() bool {
	switch s.Status {
	case TransitionComplete, TransitionAbandoned, TransitionFailed:
		return true
	}
	return false
}
