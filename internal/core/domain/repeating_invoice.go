package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RepeatingInvoiceStatus mirrors the remote template states.
type RepeatingInvoiceStatus string

const (
	TemplateDraft      RepeatingInvoiceStatus = "DRAFT"
	TemplateAuthorised RepeatingInvoiceStatus = "AUTHORISED"
	TemplateDeleted    RepeatingInvoiceStatus = "DELETED"
)

// Schedule describes when a repeating template raises invoices.
type Schedule struct {
	Period            int       `json:"period"` // every N units
	Unit              string    `json:"unit"`   // WEEKLY or MONTHLY
	DueDate           int       `json:"dueDate"`
	DueDateType       string    `json:"dueDateType"`
	StartDate         time.Time `json:"startDate"`
	NextScheduledDate time.Time `json:"nextScheduledDate"`
}

// TemplateLineItem is a line on a repeating invoice template.
type TemplateLineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitAmount  decimal.Decimal `json:"unitAmount"`
	LineAmount  decimal.Decimal `json:"lineAmount"`
	AccountCode string          `json:"accountCode"`
	TaxType     string          `json:"taxType"`
	ItemCode    string          `json:"itemCode"`
}

// RepeatingInvoice is a recurring billing schedule definition owned by
// the remote ledger. Transfer to a new contact is always done by
// cloning, never by re-pointing the original.
type RepeatingInvoice struct {
	TemplateID         string                 `json:"templateID"`
	ContactID          string                 `json:"contactID"`
	Type               string                 `json:"type"` // ACCREC or ACCPAY
	Status             RepeatingInvoiceStatus `json:"status"`
	Reference          string                 `json:"reference"`
	CurrencyCode       string                 `json:"currencyCode"`
	BrandingThemeID    string                 `json:"brandingThemeID"`
	LineAmountTypes    string                 `json:"lineAmountTypes"`
	ApprovedForSending bool                   `json:"approvedForSending"`
	Schedule           Schedule               `json:"schedule"`
	LineItems          []TemplateLineItem     `json:"lineItems"`
	Total              decimal.Decimal        `json:"total"`
}

// CloneForContact builds the template to create for the replacement
// contact: identical schedule and line items (deep copy), bound to the
// target. The clone's StartDate is pinned to the source's
// NextScheduledDate so the remote system does not default it to today
// and raise an extra invoice.
func (r RepeatingInvoice) CloneForContact(targetContactID string) RepeatingInvoice {
	clone := r
	clone.TemplateID = ""
	clone.ContactID = targetContactID
	if !r.Schedule.NextScheduledDate.IsZero() {
		clone.Schedule.StartDate = r.Schedule.NextScheduledDate
	}
	clone.LineItems = make([]TemplateLineItem, len(r.LineItems))
	copy(clone.LineItems, r.LineItems)
	return clone
}
