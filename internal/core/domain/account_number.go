package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/edinstair/property_transition_app/internal/apperrors"
)

// Account number format: ABC001234/XX
//   - ABC00123: 8 character property root (3 letter code + 5 digits)
//   - 4: 9th character, sequential counter for accounts at the property
//   - /XX: contact code suffix
var (
	fullAccountPattern = regexp.MustCompile(`^([A-Z]{3}\d{5})(\d)(/[A-Z0-9]+)$`)
	basePattern        = regexp.MustCompile(`^[A-Z]{3}\d{5}\d?$`)
)

// AccountIdentifier is the parsed form of a property account number.
// PropertyBase is the 9 character portion before the slash; for a bare
// property-level search input it may be 8 characters (no sequence digit).
type AccountIdentifier struct {
	PropertyBase string `json:"propertyBase"`
	Suffix       string `json:"suffix"` // contact code with leading slash, empty for base-only input
	Raw          string `json:"raw"`
}

// ParseAccountNumber parses either a full account number ("ANP001042/3B")
// or a bare 8-9 character property base used for property-level search.
// It is purely syntactic: the suffix is NOT checked against the contact
// code registry here, that is the caller's job.
func ParseAccountNumber(raw string) (AccountIdentifier, error) {
	trimmed := strings.TrimSpace(strings.ToUpper(raw))
	if len(trimmed) < 8 {
		return AccountIdentifier{}, fmt.Errorf("%w: %q is shorter than 8 characters", apperrors.ErrInvalidFormat, raw)
	}

	if strings.Contains(trimmed, "/") {
		m := fullAccountPattern.FindStringSubmatch(trimmed)
		if m == nil {
			return AccountIdentifier{}, fmt.Errorf("%w: %q does not match ABC001234/XX", apperrors.ErrInvalidFormat, raw)
		}
		return AccountIdentifier{
			PropertyBase: m[1] + m[2],
			Suffix:       m[3],
			Raw:          trimmed,
		}, nil
	}

	if !basePattern.MatchString(trimmed) {
		return AccountIdentifier{}, fmt.Errorf("%w: %q is not a valid property base", apperrors.ErrInvalidFormat, raw)
	}
	return AccountIdentifier{
		PropertyBase: trimmed,
		Raw:          trimmed,
	}, nil
}

// IsPropertySearch reports whether the identifier is a bare 8 character
// property root used to find the latest account at a property.
func (a AccountIdentifier) IsPropertySearch() bool {
	return a.Suffix == "" && len(a.PropertyBase) == 8
}

// PropertyRoot returns the first 8 characters shared by every account
// at the same property.
func (a AccountIdentifier) PropertyRoot() string {
	if len(a.PropertyBase) < 8 {
		return a.PropertyBase
	}
	return a.PropertyBase[:8]
}

// Sequence returns the per-property counter (the 9th character), or -1
// for a bare property root.
func (a AccountIdentifier) Sequence() int {
	if len(a.PropertyBase) != 9 {
		return -1
	}
	n, err := strconv.Atoi(a.PropertyBase[8:])
	if err != nil {
		return -1
	}
	return n
}

// NextSequence derives the property base for the account created after
// this one, by incrementing the sequence counter. The counter is a
// single character, so it tops out at 9.
func (a AccountIdentifier) NextSequence() (string, error) {
	seq := a.Sequence()
	if seq < 0 {
		return "", fmt.Errorf("%w: %q has no sequence digit to increment", apperrors.ErrInvalidFormat, a.Raw)
	}
	if seq >= 9 {
		return "", fmt.Errorf("%w: property %s has exhausted its account sequence", apperrors.ErrValidation, a.PropertyRoot())
	}
	return fmt.Sprintf("%s%d", a.PropertyRoot(), seq+1), nil
}

// WithSuffix returns the full account number for this property base and
// the given contact code suffix.
func (a AccountIdentifier) WithSuffix(suffix string) string {
	return a.PropertyBase + suffix
}

// FormatContactName builds the canonical contact display name:
//
//	"AEP019012 - (Flat 1) 19 Argyle Place"
//	"ANP001043 - 1 Albion Place"
func FormatContactName(propertyBase, flatNumber, buildingAddress string) string {
	if flatNumber != "" {
		return fmt.Sprintf("%s - (%s) %s", propertyBase, flatNumber, buildingAddress)
	}
	return fmt.Sprintf("%s - %s", propertyBase, buildingAddress)
}

// SplitContactName is the inverse of FormatContactName. It extracts the
// flat number and building address from an existing contact name so they
// can be carried over to the replacement contact. Unparseable names
// yield empty results rather than an error, the address fields on the
// contact itself remain the source of truth.
func SplitContactName(name string) (flatNumber, buildingAddress string) {
	parts := strings.SplitN(name, " - ", 2)
	if len(parts) != 2 {
		return "", ""
	}
	addr := parts[1]
	if strings.HasPrefix(addr, "(") {
		if end := strings.Index(addr, ")"); end > 0 {
			return addr[1:end], strings.TrimSpace(addr[end+1:])
		}
	}
	return "", addr
}
