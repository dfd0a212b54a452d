package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus mirrors the remote ledger's invoice states.
type InvoiceStatus string

const (
	InvoiceDraft      InvoiceStatus = "DRAFT"
	InvoiceSubmitted  InvoiceStatus = "SUBMITTED"
	InvoiceAuthorised InvoiceStatus = "AUTHORISED"
	InvoicePaid       InvoiceStatus = "PAID"
	InvoiceVoided     InvoiceStatus = "VOIDED"
	InvoiceDeleted    InvoiceStatus = "DELETED"
)

// InvoiceLineItem is a single line on an invoice.
type InvoiceLineItem struct {
	LineItemID  string          `json:"lineItemID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitAmount  decimal.Decimal `json:"unitAmount"`
	LineAmount  decimal.Decimal `json:"lineAmount"`
	AccountCode string          `json:"accountCode"`
	TaxType     string          `json:"taxType"`
	ItemCode    string          `json:"itemCode"`
}

// Invoice is owned by the remote ledger; this system only ever
// re-points its ContactID or rescales its line items during a split.
type Invoice struct {
	InvoiceID       string            `json:"invoiceID"`
	InvoiceNumber   string            `json:"invoiceNumber"`
	Type            string            `json:"type"` // ACCREC or ACCPAY
	ContactID       string            `json:"contactID"`
	IssueDate       time.Time         `json:"issueDate"`
	DueDate         time.Time         `json:"dueDate"`
	Status          InvoiceStatus     `json:"status"`
	Reference       string            `json:"reference"`
	CurrencyCode    string            `json:"currencyCode"`
	BrandingThemeID string            `json:"brandingThemeID"`
	LineAmountTypes string            `json:"lineAmountTypes"`
	LineItems       []InvoiceLineItem `json:"lineItems"`
	Total           decimal.Decimal   `json:"total"`
	AmountDue       decimal.Decimal   `json:"amountDue"`
}

// EligibleForReassignment reports whether this invoice qualifies for
// transfer to a replacement contact: issued on or after the cutoff
// (move-in) date, owned by the given contact, and not voided/deleted.
func (i Invoice) EligibleForReassignment(contactID string, cutoff time.Time) bool {
	if i.ContactID != contactID {
		return false
	}
	if i.Status == InvoiceVoided || i.Status == InvoiceDeleted {
		return false
	}
	return !i.IssueDate.Before(cutoff)
}

// IsUnpaid reports whether the invoice still has an open amount.
func (i Invoice) IsUnpaid() bool {
	switch i.Status {
	case InvoicePaid, InvoiceVoided, InvoiceDeleted:
		return false
	}
	return i.AmountDue.IsPositive()
}
