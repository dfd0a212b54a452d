package dto

import (
	"github.com/edinstair/property_transition_app/internal/core/domain"
)

// ContactResponse is the presentation form of a billing contact.
type ContactResponse struct {
	ContactID     string   `json:"contactID"`
	Name          string   `json:"name"`
	AccountNumber string   `json:"accountNumber"`
	ContactCode   string   `json:"contactCode"`
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	Email         string   `json:"email"`
	Status        string   `json:"status"`
	Groups        []string `json:"groups"`
}

// ToContactResponse converts a domain.Contact to its DTO.
func ToContactResponse(c *domain.Contact) ContactResponse {
	groups := make([]string, 0, len(c.Groups))
	for _, g := range c.Groups {
		groups = append(groups, g.Name)
	}
	return ContactResponse{
		ContactID:     c.ContactID,
		Name:          c.Name,
		AccountNumber: c.AccountNumber,
		ContactCode:   c.ContactCodeSuffix(),
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Email:         c.EmailAddress,
		Status:        string(c.Status),
		Groups:        groups,
	}
}

// ToListContactResponse converts a slice of contacts.
func ToListContactResponse(contacts []domain.Contact) []ContactResponse {
	res := make([]ContactResponse, len(contacts))
	for i := range contacts {
		res[i] = ToContactResponse(&contacts[i])
	}
	return res
}

// ContactCodeResponse describes one registry entry for code pickers.
type ContactCodeResponse struct {
	Suffix      string `json:"suffix"`
	Category    string `json:"category"`
	Description string `json:"description"`
	BillingDay  int    `json:"billingDay,omitempty"`
	Billable    bool   `json:"billable"`
}

// ToListContactCodeResponse converts the registry for the UI.
func ToListContactCodeResponse(codes []domain.ContactCode) []ContactCodeResponse {
	res := make([]ContactCodeResponse, len(codes))
	for i, cc := range codes {
		res[i] = ContactCodeResponse{
			Suffix:      cc.Suffix,
			Category:    string(cc.Category),
			Description: cc.Description,
			BillingDay:  cc.BillingDay,
			Billable:    cc.Billable,
		}
	}
	return res
}
