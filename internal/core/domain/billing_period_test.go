package domain_test

import (
	"testing"
	"time"

	"github.com/edinstair/property_transition_app/internal/apperrors"
	"github.com/edinstair/property_transition_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustCode(t *testing.T, suffix string) domain.ContactCode {
	t.Helper()
	cc, err := domain.LookupContactCode(suffix)
	require.NoError(t, err)
	return cc
}

func TestBillingPeriodFor_Monthly(t *testing.T) {
	code := mustCode(t, "/3C") // monthly on the 16th

	tests := []struct {
		name      string
		issueDate time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{name: "issued on billing day", issueDate: date(2025, 3, 16), wantStart: date(2025, 3, 16), wantEnd: date(2025, 4, 15)},
		{name: "issued late in period", issueDate: date(2025, 3, 30), wantStart: date(2025, 3, 16), wantEnd: date(2025, 4, 15)},
		{name: "issued before billing day rolls back a month", issueDate: date(2025, 3, 10), wantStart: date(2025, 2, 16), wantEnd: date(2025, 3, 15)},
		{name: "january rollback crosses the year", issueDate: date(2025, 1, 5), wantStart: date(2024, 12, 16), wantEnd: date(2025, 1, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := domain.BillingPeriodFor(code, tt.issueDate)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, p.Start)
			assert.Equal(t, tt.wantEnd, p.End)
		})
	}
}

func TestBillingPeriodFor_Quarterly(t *testing.T) {
	code := mustCode(t, "/3A") // quarterly on the 14th

	p, err := domain.BillingPeriodFor(code, date(2025, 5, 1))
	require.NoError(t, err)
	assert.Equal(t, date(2025, 4, 14), p.Start)
	assert.Equal(t, date(2025, 7, 13), p.End)

	// An issue date before the first quarter day of the year falls into
	// the previous year's October quarter.
	p, err = domain.BillingPeriodFor(code, date(2025, 1, 3))
	require.NoError(t, err)
	assert.Equal(t, date(2024, 10, 14), p.Start)
	assert.Equal(t, date(2025, 1, 13), p.End)
}

func TestBillingPeriodFor_NonScheduledCode(t *testing.T) {
	_, err := domain.BillingPeriodFor(mustCode(t, "/R"), date(2025, 5, 1))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCalculateInvoiceSplit(t *testing.T) {
	code := mustCode(t, "/3B") // monthly on the 1st
	inv := domain.Invoice{
		InvoiceID: "inv-1",
		IssueDate: date(2025, 4, 1),
		Total:     decimal.NewFromFloat(30.00), // April: 30 days, £1/day
		Status:    domain.InvoiceAuthorised,
	}

	split, err := domain.CalculateInvoiceSplit(inv, code, date(2025, 4, 10), date(2025, 4, 16))
	require.NoError(t, err)

	assert.Equal(t, 30, split.TotalDays)
	assert.Equal(t, 10, split.PreviousDays) // 1st-10th inclusive
	assert.Equal(t, 5, split.VoidDays)      // 11th-15th
	assert.Equal(t, 15, split.NewDays)      // 16th-30th inclusive
	assert.True(t, split.PreviousAmount.Equal(decimal.NewFromFloat(10.00)), "got %s", split.PreviousAmount)
	assert.True(t, split.VoidAmount.Equal(decimal.NewFromFloat(5.00)), "got %s", split.VoidAmount)
	assert.True(t, split.NewAmount.Equal(decimal.NewFromFloat(15.00)), "got %s", split.NewAmount)
}

func TestCalculateInvoiceSplit_RoundsUpToTenPence(t *testing.T) {
	code := mustCode(t, "/3B")
	inv := domain.Invoice{
		IssueDate: date(2025, 4, 1),
		Total:     decimal.NewFromFloat(20.00), // 30 days -> 0.666../day
	}

	split, err := domain.CalculateInvoiceSplit(inv, code, date(2025, 4, 10), date(2025, 4, 16))
	require.NoError(t, err)

	// 10 days * 0.6666 = 6.6666 -> 6.70
	assert.True(t, split.PreviousAmount.Equal(decimal.NewFromFloat(6.70)), "got %s", split.PreviousAmount)
	// 15 days * 0.6666 = 10.00 exactly
	assert.True(t, split.NewAmount.Equal(decimal.NewFromFloat(10.00)), "got %s", split.NewAmount)
}

func TestCalculateInvoiceSplit_Validation(t *testing.T) {
	code := mustCode(t, "/3B")
	inv := domain.Invoice{IssueDate: date(2025, 4, 1), Total: decimal.NewFromFloat(30.00)}

	_, err := domain.CalculateInvoiceSplit(inv, code, date(2025, 3, 20), date(2025, 4, 16))
	assert.ErrorIs(t, err, apperrors.ErrValidation, "vacate outside period")

	_, err = domain.CalculateInvoiceSplit(inv, code, date(2025, 4, 10), date(2025, 5, 16))
	assert.ErrorIs(t, err, apperrors.ErrValidation, "move-in outside period")

	_, err = domain.CalculateInvoiceSplit(inv, code, date(2025, 4, 16), date(2025, 4, 10))
	assert.ErrorIs(t, err, apperrors.ErrValidation, "move-in before vacate")
}
