package xero

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/edinstair/property_transition_app/internal/core/domain"
)

// The API serialises timestamps as "/Date(1441756800000+0000)/",
// milliseconds since the epoch with an optional zone offset.
var msDatePattern = regexp.MustCompile(`^/Date\((-?\d+)(?:[+-]\d{4})?\)/$`)

type msDate struct {
	time.Time
}

func (d *msDate) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		d.Time = time.Time{}
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	if m := msDatePattern.FindStringSubmatch(s); m != nil {
		ms, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return fmt.Errorf("unparseable millisecond date %q: %w", s, err)
		}
		d.Time = time.UnixMilli(ms).UTC()
		return nil
	}
	// Some endpoints return plain ISO dates instead.
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("unparseable date %q", s)
}

func (d msDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// --- Contacts ---

type wireAddress struct {
	AddressType  string `json:"AddressType,omitempty"`
	AddressLine1 string `json:"AddressLine1,omitempty"`
	AddressLine2 string `json:"AddressLine2,omitempty"`
	City         string `json:"City,omitempty"`
	Region       string `json:"Region,omitempty"`
	PostalCode   string `json:"PostalCode,omitempty"`
	Country      string `json:"Country,omitempty"`
}

type wirePhone struct {
	PhoneType   string `json:"PhoneType,omitempty"`
	PhoneNumber string `json:"PhoneNumber,omitempty"`
	PhoneArea   string `json:"PhoneAreaCode,omitempty"`
}

type wireContactGroup struct {
	ContactGroupID string `json:"ContactGroupID,omitempty"`
	Name           string `json:"Name,omitempty"`
}

type wireBalanceSide struct {
	Outstanding decimal.Decimal `json:"Outstanding"`
	Overdue     decimal.Decimal `json:"Overdue"`
}

type wireBalances struct {
	AccountsReceivable wireBalanceSide `json:"AccountsReceivable"`
}

type wireContact struct {
	ContactID                   string             `json:"ContactID,omitempty"`
	AccountNumber               string             `json:"AccountNumber,omitempty"`
	ContactStatus               string             `json:"ContactStatus,omitempty"`
	Name                        string             `json:"Name,omitempty"`
	FirstName                   string             `json:"FirstName,omitempty"`
	LastName                    string             `json:"LastName,omitempty"`
	EmailAddress                string             `json:"EmailAddress,omitempty"`
	Addresses                   []wireAddress      `json:"Addresses,omitempty"`
	Phones                      []wirePhone        `json:"Phones,omitempty"`
	ContactGroups               []wireContactGroup `json:"ContactGroups,omitempty"`
	DefaultCurrency             string             `json:"DefaultCurrency,omitempty"`
	SalesDefaultAccountCode     string             `json:"SalesDefaultAccountCode,omitempty"`
	PurchasesDefaultAccountCode string             `json:"PurchasesDefaultAccountCode,omitempty"`
	BrandingThemeID             string             `json:"BrandingThemeID,omitempty"`
	Balances                    *wireBalances      `json:"Balances,omitempty"`
}

type contactsEnvelope struct {
	Contacts []wireContact `json:"Contacts"`
}

type contactGroupsEnvelope struct {
	ContactGroups []wireContactGroup `json:"ContactGroups"`
}

func toDomainContact(w wireContact) domain.Contact {
	c := domain.Contact{
		ContactID:            w.ContactID,
		Name:                 w.Name,
		AccountNumber:        w.AccountNumber,
		FirstName:            w.FirstName,
		LastName:             w.LastName,
		EmailAddress:         w.EmailAddress,
		Status:               domain.ContactStatus(w.ContactStatus),
		DefaultCurrency:      w.DefaultCurrency,
		SalesAccountCode:     w.SalesDefaultAccountCode,
		PurchasesAccountCode: w.PurchasesDefaultAccountCode,
		BrandingThemeID:      w.BrandingThemeID,
	}
	for _, a := range w.Addresses {
		c.Addresses = append(c.Addresses, domain.Address{
			AddressType:  a.AddressType,
			AddressLine1: a.AddressLine1,
			AddressLine2: a.AddressLine2,
			City:         a.City,
			Region:       a.Region,
			PostalCode:   a.PostalCode,
			Country:      a.Country,
		})
	}
	for _, p := range w.Phones {
		c.Phones = append(c.Phones, domain.Phone{
			PhoneType:   p.PhoneType,
			PhoneNumber: p.PhoneNumber,
			AreaCode:    p.PhoneArea,
		})
	}
	for _, g := range w.ContactGroups {
		c.Groups = append(c.Groups, domain.ContactGroup{GroupID: g.ContactGroupID, Name: g.Name})
	}
	return c
}

func toWireContact(c domain.Contact) wireContact {
	w := wireContact{
		ContactID:                   c.ContactID,
		AccountNumber:               c.AccountNumber,
		ContactStatus:               string(c.Status),
		Name:                        c.Name,
		FirstName:                   c.FirstName,
		LastName:                    c.LastName,
		EmailAddress:                c.EmailAddress,
		DefaultCurrency:             c.DefaultCurrency,
		SalesDefaultAccountCode:     c.SalesAccountCode,
		PurchasesDefaultAccountCode: c.PurchasesAccountCode,
		BrandingThemeID:             c.BrandingThemeID,
	}
	for _, a := range c.Addresses {
		w.Addresses = append(w.Addresses, wireAddress{
			AddressType:  a.AddressType,
			AddressLine1: a.AddressLine1,
			AddressLine2: a.AddressLine2,
			City:         a.City,
			Region:       a.Region,
			PostalCode:   a.PostalCode,
			Country:      a.Country,
		})
	}
	for _, p := range c.Phones {
		w.Phones = append(w.Phones, wirePhone{
			PhoneType:   p.PhoneType,
			PhoneNumber: p.PhoneNumber,
			PhoneArea:   p.AreaCode,
		})
	}
	return w
}

// --- Invoices ---

type wireLineItem struct {
	LineItemID  string          `json:"LineItemID,omitempty"`
	Description string          `json:"Description,omitempty"`
	Quantity    decimal.Decimal `json:"Quantity"`
	UnitAmount  decimal.Decimal `json:"UnitAmount"`
	LineAmount  decimal.Decimal `json:"LineAmount"`
	AccountCode string          `json:"AccountCode,omitempty"`
	TaxType     string          `json:"TaxType,omitempty"`
	ItemCode    string          `json:"ItemCode,omitempty"`
}

type wireInvoice struct {
	InvoiceID       string          `json:"InvoiceID,omitempty"`
	InvoiceNumber   string          `json:"InvoiceNumber,omitempty"`
	Type            string          `json:"Type,omitempty"`
	Contact         *wireContact    `json:"Contact,omitempty"`
	Date            msDate          `json:"Date,omitempty"`
	DueDate         msDate          `json:"DueDate,omitempty"`
	Status          string          `json:"Status,omitempty"`
	Reference       string          `json:"Reference,omitempty"`
	CurrencyCode    string          `json:"CurrencyCode,omitempty"`
	BrandingThemeID string          `json:"BrandingThemeID,omitempty"`
	LineAmountTypes string          `json:"LineAmountTypes,omitempty"`
	LineItems       []wireLineItem  `json:"LineItems,omitempty"`
	Total           decimal.Decimal `json:"Total"`
	AmountDue       decimal.Decimal `json:"AmountDue"`
}

type invoicesEnvelope struct {
	Invoices []wireInvoice `json:"Invoices"`
}

func toDomainInvoice(w wireInvoice) domain.Invoice {
	inv := domain.Invoice{
		InvoiceID:       w.InvoiceID,
		InvoiceNumber:   w.InvoiceNumber,
		Type:            w.Type,
		IssueDate:       w.Date.Time,
		DueDate:         w.DueDate.Time,
		Status:          domain.InvoiceStatus(w.Status),
		Reference:       w.Reference,
		CurrencyCode:    w.CurrencyCode,
		BrandingThemeID: w.BrandingThemeID,
		LineAmountTypes: w.LineAmountTypes,
		Total:           w.Total,
		AmountDue:       w.AmountDue,
	}
	if w.Contact != nil {
		inv.ContactID = w.Contact.ContactID
	}
	for _, li := range w.LineItems {
		inv.LineItems = append(inv.LineItems, domain.InvoiceLineItem{
			LineItemID:  li.LineItemID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitAmount:  li.UnitAmount,
			LineAmount:  li.LineAmount,
			AccountCode: li.AccountCode,
			TaxType:     li.TaxType,
			ItemCode:    li.ItemCode,
		})
	}
	return inv
}

func toWireLineItems(items []domain.InvoiceLineItem) []wireLineItem {
	out := make([]wireLineItem, 0, len(items))
	for _, li := range items {
		out = append(out, wireLineItem{
			LineItemID:  li.LineItemID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitAmount:  li.UnitAmount,
			LineAmount:  li.LineAmount,
			AccountCode: li.AccountCode,
			TaxType:     li.TaxType,
			ItemCode:    li.ItemCode,
		})
	}
	return out
}

func toWireInvoice(inv domain.Invoice) wireInvoice {
	return wireInvoice{
		InvoiceID:       inv.InvoiceID,
		InvoiceNumber:   inv.InvoiceNumber,
		Type:            inv.Type,
		Contact:         &wireContact{ContactID: inv.ContactID},
		Date:            msDate{inv.IssueDate},
		DueDate:         msDate{inv.DueDate},
		Status:          string(inv.Status),
		Reference:       inv.Reference,
		CurrencyCode:    inv.CurrencyCode,
		BrandingThemeID: inv.BrandingThemeID,
		LineAmountTypes: inv.LineAmountTypes,
		LineItems:       toWireLineItems(inv.LineItems),
		Total:           inv.Total,
		AmountDue:       inv.AmountDue,
	}
}

// --- Repeating invoices ---

type wireSchedule struct {
	Period            int    `json:"Period"`
	Unit              string `json:"Unit,omitempty"`
	DueDate           int    `json:"DueDate"`
	DueDateType       string `json:"DueDateType,omitempty"`
	StartDate         msDate `json:"StartDate,omitempty"`
	NextScheduledDate msDate `json:"NextScheduledDate,omitempty"`
}

type wireRepeatingInvoice struct {
	RepeatingInvoiceID string          `json:"RepeatingInvoiceID,omitempty"`
	Type               string          `json:"Type,omitempty"`
	Contact            *wireContact    `json:"Contact,omitempty"`
	Status             string          `json:"Status,omitempty"`
	Reference          string          `json:"Reference,omitempty"`
	CurrencyCode       string          `json:"CurrencyCode,omitempty"`
	BrandingThemeID    string          `json:"BrandingThemeID,omitempty"`
	LineAmountTypes    string          `json:"LineAmountTypes,omitempty"`
	ApprovedForSending bool            `json:"ApprovedForSending"`
	Schedule           wireSchedule    `json:"Schedule"`
	LineItems          []wireLineItem  `json:"LineItems,omitempty"`
	Total              decimal.Decimal `json:"Total"`
}

type repeatingInvoicesEnvelope struct {
	RepeatingInvoices []wireRepeatingInvoice `json:"RepeatingInvoices"`
}

func toDomainRepeatingInvoice(w wireRepeatingInvoice) domain.RepeatingInvoice {
	t := domain.RepeatingInvoice{
		TemplateID:         w.RepeatingInvoiceID,
		Type:               w.Type,
		Status:             domain.RepeatingInvoiceStatus(w.Status),
		Reference:          w.Reference,
		CurrencyCode:       w.CurrencyCode,
		BrandingThemeID:    w.BrandingThemeID,
		LineAmountTypes:    w.LineAmountTypes,
		ApprovedForSending: w.ApprovedForSending,
		Schedule: domain.Schedule{
			Period:            w.Schedule.Period,
			Unit:              w.Schedule.Unit,
			DueDate:           w.Schedule.DueDate,
			DueDateType:       w.Schedule.DueDateType,
			StartDate:         w.Schedule.StartDate.Time,
			NextScheduledDate: w.Schedule.NextScheduledDate.Time,
		},
		Total: w.Total,
	}
	if w.Contact != nil {
		t.ContactID = w.Contact.ContactID
	}
	for _, li := range w.LineItems {
		t.LineItems = append(t.LineItems, domain.TemplateLineItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitAmount:  li.UnitAmount,
			LineAmount:  li.LineAmount,
			AccountCode: li.AccountCode,
			TaxType:     li.TaxType,
			ItemCode:    li.ItemCode,
		})
	}
	return t
}

func toWireRepeatingInvoice(t domain.RepeatingInvoice) wireRepeatingInvoice {
	w := wireRepeatingInvoice{
		RepeatingInvoiceID: t.TemplateID,
		Type:               t.Type,
		Contact:            &wireContact{ContactID: t.ContactID},
		Status:             string(t.Status),
		Reference:          t.Reference,
		CurrencyCode:       t.CurrencyCode,
		BrandingThemeID:    t.BrandingThemeID,
		LineAmountTypes:    t.LineAmountTypes,
		ApprovedForSending: t.ApprovedForSending,
		Schedule: wireSchedule{
			Period:            t.Schedule.Period,
			Unit:              t.Schedule.Unit,
			DueDate:           t.Schedule.DueDate,
			DueDateType:       t.Schedule.DueDateType,
			StartDate:         msDate{t.Schedule.StartDate},
			NextScheduledDate: msDate{t.Schedule.NextScheduledDate},
		},
		Total: t.Total,
	}
	for _, li := range t.LineItems {
		w.LineItems = append(w.LineItems, wireLineItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitAmount:  li.UnitAmount,
			LineAmount:  li.LineAmount,
			AccountCode: li.AccountCode,
			TaxType:     li.TaxType,
			ItemCode:    li.ItemCode,
		})
	}
	return w
}
