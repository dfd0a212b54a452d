package apperrors

import "errors"

// ErrNotFound indicates that a requested contact, invoice, template or
// contact group could not be found in the accounting system.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidFormat indicates a malformed account number or contact code.
// These errors are always caught before any remote call is made.
var ErrInvalidFormat = errors.New("invalid account number format")

// ErrDuplicateAccount indicates that a contact with the derived account
// number already exists and the operator has not confirmed reuse.
var ErrDuplicateAccount = errors.New("account number already in use")

// ErrNoActiveTemplate indicates that the source contact has zero, or
// more than one, matching repeating invoice template. An ambiguous
// source is an error, never a silent pick.
var ErrNoActiveTemplate = errors.New("no single active repeating template")

// ErrBalanceUnavailable indicates the outstanding balance for a contact
// could not be read. The previous-contact step must not guess a branch.
var ErrBalanceUnavailable = errors.New("contact balance unavailable")

// ErrUpstreamUnavailable indicates the accounting API kept failing with
// transient errors after all retries were exhausted.
var ErrUpstreamUnavailable = errors.New("accounting API unavailable")

// ErrStepOrder indicates a workflow step was invoked out of sequence.
var ErrStepOrder = errors.New("workflow step not permitted in current state")

// ErrRunNotFound indicates an unknown transition run ID.
var ErrRunNotFound = errors.New("transition run not found")

// ErrUnauthorized indicates a failed login or a missing/invalid
// session token.
var ErrUnauthorized = errors.New("unauthorized")
