package domain

import (
	"github.com/shopspring/decimal"
)

// ContactStatus mirrors the remote accounting system's contact states.
// Contacts are never deleted by this system, archival is a status flip.
type ContactStatus string

const (
	ContactActive   ContactStatus = "ACTIVE"
	ContactInactive ContactStatus = "INACTIVE"
)

// Address is a property-scoped postal address carried over verbatim
// when a replacement contact is created.
type Address struct {
	AddressType  string `json:"addressType"` // STREET or POBOX
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	Region       string `json:"region"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
}

// Phone is a contact phone number.
type Phone struct {
	PhoneType   string `json:"phoneType"`
	PhoneNumber string `json:"phoneNumber"`
	AreaCode    string `json:"areaCode"`
	CountryCode string `json:"countryCode"`
}

// ContactGroup is a named group membership in the accounting system.
type ContactGroup struct {
	GroupID string `json:"groupID"`
	Name    string `json:"name"`
}

// Contact is a billing contact in the remote accounting system. The ID
// is opaque and owned by the remote API.
type Contact struct {
	ContactID     string         `json:"contactID"`
	Name          string         `json:"name"` // "ANP001042 - (Flat 2) 1 Albion Place"
	AccountNumber string         `json:"accountNumber"`
	FirstName     string         `json:"firstName"`
	LastName      string         `json:"lastName"`
	EmailAddress  string         `json:"emailAddress"`
	Status        ContactStatus  `json:"status"`
	Addresses     []Address      `json:"addresses"`
	Phones        []Phone        `json:"phones"`
	Groups        []ContactGroup `json:"groups"`

	// Billing defaults carried over between occupiers of the same property.
	DefaultCurrency      string `json:"defaultCurrency"`
	SalesAccountCode     string `json:"salesAccountCode"`
	PurchasesAccountCode string `json:"purchasesAccountCode"`
	BrandingThemeID      string `json:"brandingThemeID"`
}

// ContactCodeSuffix returns the billing code portion of the contact's
// account number, or empty when the account number does not parse.
func (c Contact) ContactCodeSuffix() string {
	id, err := ParseAccountNumber(c.AccountNumber)
	if err != nil {
		return ""
	}
	return id.Suffix
}

// GroupIDs returns the set of group IDs the contact belongs to.
func (c Contact) GroupIDs() []string {
	ids := make([]string, 0, len(c.Groups))
	for _, g := range c.Groups {
		ids = append(ids, g.GroupID)
	}
	return ids
}

// ContactBalance is the receivable position of a contact as reported by
// the remote ledger at read time. Reads can go stale, callers that act
// on a balance must re-read immediately before mutating.
type ContactBalance struct {
	Outstanding decimal.Decimal `json:"outstanding"`
	Overdue     decimal.Decimal `json:"overdue"`
}

// HasBalance reports whether anything, debit or credit, remains on the
// account. A credit balance keeps the contact active just like a debt.
func (b ContactBalance) HasBalance() bool {
	return !b.Outstanding.IsZero()
}
