package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/edinstair/property_transition_app/internal/core/domain"
)

const displayDateFormat = "02 Jan 2006"

// InvoiceResponse is the presentation form of a ledger invoice.
type InvoiceResponse struct {
	InvoiceID     string `json:"invoiceID"`
	InvoiceNumber string `json:"invoiceNumber"`
	Date          string `json:"date"`
	DueDate       string `json:"dueDate"`
	Status        string `json:"status"`
	Total         string `json:"total"`
	AmountDue     string `json:"amountDue"`
	Reference     string `json:"reference"`
	Type          string `json:"type"`
}

// ToInvoiceResponse converts a domain.Invoice to its DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		Date:          formatDisplayDate(inv.IssueDate),
		DueDate:       formatDisplayDate(inv.DueDate),
		Status:        string(inv.Status),
		Total:         inv.Total.StringFixed(2),
		AmountDue:     inv.AmountDue.StringFixed(2),
		Reference:     inv.Reference,
		Type:          inv.Type,
	}
}

// ToListInvoiceResponse converts a slice of invoices.
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}

// RepeatingInvoiceResponse is the presentation form of a template.
type RepeatingInvoiceResponse struct {
	TemplateID    string `json:"templateID"`
	ContactID     string `json:"contactID"`
	Reference     string `json:"reference"`
	Status        string `json:"status"`
	Type          string `json:"type"`
	Frequency     string `json:"frequency"` // e.g. "Monthly", "Every 3 monthly"
	StartDate     string `json:"startDate"`
	NextDate      string `json:"nextDate"`
	Total         string `json:"total"`
	LineItemCount int    `json:"lineItemCount"`
}

// ToRepeatingInvoiceResponse converts a domain.RepeatingInvoice.
func ToRepeatingInvoiceResponse(t *domain.RepeatingInvoice) RepeatingInvoiceResponse {
	return RepeatingInvoiceResponse{
		TemplateID:    t.TemplateID,
		ContactID:     t.ContactID,
		Reference:     t.Reference,
		Status:        string(t.Status),
		Type:          t.Type,
		Frequency:     formatFrequency(t.Schedule),
		StartDate:     formatDisplayDate(t.Schedule.StartDate),
		NextDate:      formatDisplayDate(t.Schedule.NextScheduledDate),
		Total:         t.Total.StringFixed(2),
		LineItemCount: len(t.LineItems),
	}
}

// InvoiceSplitResponse reports a pro-rata split preview or result.
type InvoiceSplitResponse struct {
	InvoiceID      string `json:"invoiceID"`
	InvoiceNumber  string `json:"invoiceNumber"`
	PeriodStart    string `json:"periodStart"`
	PeriodEnd      string `json:"periodEnd"`
	TotalDays      int    `json:"totalDays"`
	PreviousDays   int    `json:"previousDays"`
	VoidDays       int    `json:"voidDays"`
	NewDays        int    `json:"newDays"`
	PreviousAmount string `json:"previousAmount"`
	VoidAmount     string `json:"voidAmount"`
	NewAmount      string `json:"newAmount"`
	Executed       bool   `json:"executed"`
	NewInvoiceID   string `json:"newInvoiceID,omitempty"`
}

// ToInvoiceSplitResponse converts a split calculation plus the invoice
// it applies to.
func ToInvoiceSplitResponse(inv *domain.Invoice, split domain.InvoiceSplit, executed bool, newInvoiceID string) InvoiceSplitResponse {
	return InvoiceSplitResponse{
		InvoiceID:      inv.InvoiceID,
		InvoiceNumber:  inv.InvoiceNumber,
		PeriodStart:    split.Period.Start.Format("2006-01-02"),
		PeriodEnd:      split.Period.End.Format("2006-01-02"),
		TotalDays:      split.TotalDays,
		PreviousDays:   split.PreviousDays,
		VoidDays:       split.VoidDays,
		NewDays:        split.NewDays,
		PreviousAmount: split.PreviousAmount.StringFixed(2),
		VoidAmount:     split.VoidAmount.StringFixed(2),
		NewAmount:      split.NewAmount.StringFixed(2),
		Executed:       executed,
		NewInvoiceID:   newInvoiceID,
	}
}

func formatDisplayDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format(displayDateFormat)
}

func formatFrequency(s domain.Schedule) string {
	unit := strings.ToLower(s.Unit)
	if unit == "" {
		unit = "monthly"
	}
	if s.Period > 1 {
		return fmt.Sprintf("Every %d %s", s.Period, unit)
	}
	return strings.ToUpper(unit[:1]) + unit[1:]
}
