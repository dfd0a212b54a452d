package dto

import (
	"time"

	"github.com/edinstair/property_transition_app/internal/core/domain"
)

// StartTransitionRequest opens a workflow run by locating the outgoing
// contact. AccountNumber accepts a full identifier ("ANP001042/3B") or
// an 8 character property base for latest-at-property search.
type StartTransitionRequest struct {
	AccountNumber string `json:"accountNumber" binding:"required"`
	MoveInDate    string `json:"moveInDate" binding:"required"` // YYYY-MM-DD, the reassignment cutoff
}

// CreateContactRequest supplies the incoming occupier's personal
// details for step 2. Address and billing defaults are carried over
// from the outgoing contact, never supplied here.
type CreateContactRequest struct {
	ContactCode      string `json:"contactCode" binding:"required"`
	FirstName        string `json:"firstName" binding:"required"`
	LastName         string `json:"lastName"`
	Email            string `json:"email" binding:"omitempty,email"`
	ConfirmDuplicate bool   `json:"confirmDuplicate"` // operator consent to reuse a taken account number
}

// ReassignInvoicesRequest selects which matched invoices move to the
// new contact in step 3.
type ReassignInvoicesRequest struct {
	InvoiceIDs []string `json:"invoiceIDs" binding:"required,min=1"`
}

// TransferTemplateRequest tunes step 4. DeleteSource is the operator's
// consent to remove the outgoing contact's template once the clone
// exists; left false, the source template stays for manual cleanup.
type TransferTemplateRequest struct {
	DeleteSource bool `json:"deleteSource"`
}

// SplitInvoiceRequest divides the latest unpaid invoice between
// occupiers when the change happens mid billing period.
type SplitInvoiceRequest struct {
	VacateDate string `json:"vacateDate" binding:"required"` // YYYY-MM-DD
	MoveInDate string `json:"moveInDate" binding:"required"` // YYYY-MM-DD
	Execute    bool   `json:"execute"`                       // false = preview only
}

// ReassignmentResultResponse reports per-invoice outcomes.
type ReassignmentResultResponse struct {
	Succeeded []string          `json:"succeeded"`
	Failed    map[string]string `json:"failed"`
}

// PreviousContactResolutionResponse is the step 5 outcome.
type PreviousContactResolutionResponse struct {
	Outstanding  string `json:"outstanding"`
	Overdue      string `json:"overdue"`
	TargetStatus string `json:"targetStatus"`
	TargetCode   string `json:"targetCode"`
	TargetGroup  string `json:"targetGroup"`
}

// TransitionStateResponse mirrors one workflow run for the UI.
type TransitionStateResponse struct {
	RunID      string    `json:"runID"`
	StartedAt  time.Time `json:"startedAt"`
	Status     string    `json:"status"`
	Step       string    `json:"step"`
	CutoffDate string    `json:"cutoffDate"`

	OldContact *ContactResponse `json:"oldContact,omitempty"`
	NewContact *ContactResponse `json:"newContact,omitempty"`

	MatchedInvoices []InvoiceResponse           `json:"matchedInvoices,omitempty"`
	Reassignment    *ReassignmentResultResponse `json:"reassignment,omitempty"`

	NewTemplate     *RepeatingInvoiceResponse          `json:"newTemplate,omitempty"`
	PreviousOutcome *PreviousContactResolutionResponse `json:"previousOutcome,omitempty"`

	Warnings      []string `json:"warnings,omitempty"`
	FailureStep   string   `json:"failureStep,omitempty"`
	FailureReason string   `json:"failureReason,omitempty"`
}

// ToTransitionStateResponse converts a domain.TransitionState for the
// presentation layer.
func ToTransitionStateResponse(s *domain.TransitionState) TransitionStateResponse {
	resp := TransitionStateResponse{
		RunID:         s.RunID,
		StartedAt:     s.StartedAt,
		Status:        string(s.Status),
		Step:          string(s.Step),
		CutoffDate:    s.CutoffDate.Format("2006-01-02"),
		Warnings:      s.Warnings,
		FailureStep:   string(s.FailureStep),
		FailureReason: s.FailureReason,
	}
	if s.OldContact != nil {
		c := ToContactResponse(s.OldContact)
		resp.OldContact = &c
	}
	if s.NewContact != nil {
		c := ToContactResponse(s.NewContact)
		resp.NewContact = &c
	}
	if len(s.MatchedInvoices) > 0 {
		resp.MatchedInvoices = ToListInvoiceResponse(s.MatchedInvoices)
	}
	if s.Reassignment != nil {
		resp.Reassignment = &ReassignmentResultResponse{
			Succeeded: s.Reassignment.Succeeded,
			Failed:    s.Reassignment.Failed,
		}
	}
	if s.NewTemplate != nil {
		tpl := ToRepeatingInvoiceResponse(s.NewTemplate)
		resp.NewTemplate = &tpl
	}
	if s.PreviousOutcome != nil {
		resp.PreviousOutcome = &PreviousContactResolutionResponse{
			Outstanding:  s.PreviousOutcome.Outstanding.StringFixed(2),
			Overdue:      s.PreviousOutcome.Overdue.StringFixed(2),
			TargetStatus: string(s.PreviousOutcome.TargetStatus),
			TargetCode:   s.PreviousOutcome.TargetCode,
			TargetGroup:  s.PreviousOutcome.TargetGroup,
		}
	}
	return resp
}
