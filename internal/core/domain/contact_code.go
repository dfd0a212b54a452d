package domain

import (
	"fmt"

	"github.com/edinstair/property_transition_app/internal/apperrors"
)

// ContactCodeCategory groups contact codes by billing semantics.
type ContactCodeCategory string

const (
	CategoryQuarterly   ContactCodeCategory = "QUARTERLY"
	CategoryMonthly     ContactCodeCategory = "MONTHLY"
	CategoryOneOff      ContactCodeCategory = "ONE_OFF"
	CategoryPaymentType ContactCodeCategory = "PAYMENT_TYPE"
	CategorySpecial     ContactCodeCategory = "SPECIAL"
	CategoryThirdParty  ContactCodeCategory = "THIRD_PARTY"
)

// PreviousContactCode is the suffix applied to a vacated contact. It is
// the only code the system ever assigns without operator selection.
const PreviousContactCode = "/P"

// PreviousAccountsGroupName is the contact group every vacated contact
// ends up in, regardless of remaining balance.
const PreviousAccountsGroupName = "+ Previous accounts still due"

// ContactCode is immutable reference data describing the billing
// semantics of an account number suffix.
type ContactCode struct {
	Suffix      string              `json:"suffix"`
	Category    ContactCodeCategory `json:"category"`
	Description string              `json:"description"`
	BillingDay  int                 `json:"billingDay"` // day of month invoices go out; 0 when not schedule-driven
	Billable    bool                `json:"billable"`
}

// contactCodes is the registry, in display order.
var contactCodes = []ContactCode{
	// Quarterly billing
	{Suffix: "/1A", Category: CategoryQuarterly, Description: "Invoiced quarterly on the 1st", BillingDay: 1, Billable: true},
	{Suffix: "/2A", Category: CategoryQuarterly, Description: "Invoiced quarterly on the 5th", BillingDay: 5, Billable: true},
	{Suffix: "/1B", Category: CategoryQuarterly, Description: "Invoiced quarterly on the 12th", BillingDay: 12, Billable: true},
	{Suffix: "/3A", Category: CategoryQuarterly, Description: "Invoiced quarterly on the 14th", BillingDay: 14, Billable: true},

	// Monthly billing
	{Suffix: "/3B", Category: CategoryMonthly, Description: "Invoiced monthly on the 1st", BillingDay: 1, Billable: true},
	{Suffix: "/3C", Category: CategoryMonthly, Description: "Invoiced monthly on the 16th", BillingDay: 16, Billable: true},
	{Suffix: "/3D", Category: CategoryMonthly, Description: "Invoiced monthly on the 23rd", BillingDay: 23, Billable: true},

	// Payment types
	{Suffix: "/1C", Category: CategoryPaymentType, Description: "One person only pays", Billable: true},
	{Suffix: "/A", Category: CategoryPaymentType, Description: "Current customer on a payment plan", Billable: true},
	{Suffix: "/B", Category: CategoryPaymentType, Description: "Pays by standing order", Billable: true},
	{Suffix: "/D", Category: CategoryPaymentType, Description: "Pays by Direct Debit", Billable: true},

	// Special situations
	{Suffix: "/P", Category: CategorySpecial, Description: "Past account still due (person moved out but still owes)", Billable: false},
	{Suffix: "/Q", Category: CategoryOneOff, Description: "One off job only", Billable: true},
	{Suffix: "/R", Category: CategorySpecial, Description: "Refuses to pay. Not billed", Billable: false},
	{Suffix: "/S", Category: CategorySpecial, Description: "Stopped cleaning the stair. Not billed anymore, but may still owe money", Billable: false},

	// Third party payers
	{Suffix: "/CR", Category: CategoryThirdParty, Description: "Accounts paid for by Castlerock/Edinvar/Places for People", Billable: true},
	{Suffix: "/LH", Category: CategoryThirdParty, Description: "Accounts paid for by Link Housing/Curb", Billable: true},
}

var contactCodeIndex = func() map[string]ContactCode {
	idx := make(map[string]ContactCode, len(contactCodes))
	for _, cc := range contactCodes {
		idx[cc.Suffix] = cc
	}
	return idx
}()

// categoryGroups maps a billing category to the standing contact group
// its members belong in. Resolved by group name at assignment time so
// the groups can be renamed remotely without a code change here.
var categoryGroups = map[ContactCodeCategory]string{
	CategoryThirdParty: "Third party payers",
}

// GroupNameForCategory returns the contact group that members of the
// given category are filed under, if the category has one.
func GroupNameForCategory(category ContactCodeCategory) (string, bool) {
	name, ok := categoryGroups[category]
	return name, ok
}

// LookupContactCode resolves a suffix (e.g. "/3B") against the registry.
func LookupContactCode(suffix string) (ContactCode, error) {
	cc, ok := contactCodeIndex[suffix]
	if !ok {
		return ContactCode{}, fmt.Errorf("%w: unknown contact code %q", apperrors.ErrNotFound, suffix)
	}
	return cc, nil
}

// AllContactCodes returns the registry in display order.
func AllContactCodes() []ContactCode {
	out := make([]ContactCode, len(contactCodes))
	copy(out, contactCodes)
	return out
}

// IsRecurring reports whether invoices are raised for this code on a
// repeating schedule.
func (c ContactCode) IsRecurring() bool {
	return c.Category == CategoryQuarterly || c.Category == CategoryMonthly
}
