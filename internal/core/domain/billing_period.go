package domain

import (
	"fmt"
	"time"

	"github.com/edinstair/property_transition_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// BillingPeriod is the span of days one recurring invoice pays for.
type BillingPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"` // inclusive
}

// Days returns the inclusive length of the period.
func (p BillingPeriod) Days() int {
	return daysBetween(p.Start, p.End) + 1
}

// Contains reports whether d falls inside the period.
func (p BillingPeriod) Contains(d time.Time) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// quarterly periods always begin in these months.
var quarterStartMonths = []time.Month{time.January, time.April, time.July, time.October}

// BillingPeriodFor derives the period an invoice covers from the
// contact code's billing schedule and the invoice issue date.
func BillingPeriodFor(code ContactCode, issueDate time.Time) (BillingPeriod, error) {
	day := code.BillingDay
	if day == 0 {
		day = 1
	}
	issue := dateOnly(issueDate)

	switch code.Category {
	case CategoryMonthly:
		start := time.Date(issue.Year(), issue.Month(), day, 0, 0, 0, 0, time.UTC)
		if issue.Day() < day {
			start = start.AddDate(0, -1, 0)
		}
		end := start.AddDate(0, 1, 0).AddDate(0, 0, -1)
		return BillingPeriod{Start: start, End: end}, nil

	case CategoryQuarterly, CategoryPaymentType:
		// Payment-type codes bill quarterly from the standard quarter days.
		for _, year := range []int{issue.Year(), issue.Year() - 1} {
			for _, m := range quarterStartMonths {
				start := time.Date(year, m, day, 0, 0, 0, 0, time.UTC)
				next := start.AddDate(0, 3, 0)
				if !issue.Before(start) && issue.Before(next) {
					return BillingPeriod{Start: start, End: next.AddDate(0, 0, -1)}, nil
				}
			}
		}
		return BillingPeriod{}, fmt.Errorf("%w: no quarterly period contains %s", apperrors.ErrValidation, issue.Format("2006-01-02"))

	default:
		return BillingPeriod{}, fmt.Errorf("%w: contact code %s has no billing schedule", apperrors.ErrValidation, code.Suffix)
	}
}

// InvoiceSplit is the pro-rata division of one invoice between the
// previous occupier, a void gap, and the new occupier.
type InvoiceSplit struct {
	Period         BillingPeriod   `json:"period"`
	TotalDays      int             `json:"totalDays"`
	PreviousDays   int             `json:"previousDays"`
	VoidDays       int             `json:"voidDays"`
	NewDays        int             `json:"newDays"`
	DailyRate      decimal.Decimal `json:"dailyRate"`
	PreviousAmount decimal.Decimal `json:"previousAmount"`
	VoidAmount     decimal.Decimal `json:"voidAmount"`
	NewAmount      decimal.Decimal `json:"newAmount"`
}

// CalculateInvoiceSplit divides an invoice pro-rata by occupancy days:
// period start through vacate date stays with the previous occupier,
// move-in through period end goes to the new occupier, and the gap
// between is written off. Amounts are rounded up to the nearest 10p.
func CalculateInvoiceSplit(inv Invoice, code ContactCode, vacateDate, moveInDate time.Time) (InvoiceSplit, error) {
	period, err := BillingPeriodFor(code, inv.IssueDate)
	if err != nil {
		return InvoiceSplit{}, err
	}

	vacate := dateOnly(vacateDate)
	moveIn := dateOnly(moveInDate)

	if !period.Contains(vacate) {
		return InvoiceSplit{}, fmt.Errorf("%w: vacate date %s outside invoice period %s to %s",
			apperrors.ErrValidation, vacate.Format("2006-01-02"), period.Start.Format("2006-01-02"), period.End.Format("2006-01-02"))
	}
	if !period.Contains(moveIn) {
		return InvoiceSplit{}, fmt.Errorf("%w: move-in date %s outside invoice period %s to %s",
			apperrors.ErrValidation, moveIn.Format("2006-01-02"), period.Start.Format("2006-01-02"), period.End.Format("2006-01-02"))
	}
	if !moveIn.After(vacate) {
		return InvoiceSplit{}, fmt.Errorf("%w: move-in date must be after vacate date", apperrors.ErrValidation)
	}

	split := InvoiceSplit{
		Period:       period,
		TotalDays:    period.Days(),
		PreviousDays: daysBetween(period.Start, vacate) + 1,
		VoidDays:     daysBetween(vacate, moveIn) - 1,
		NewDays:      daysBetween(moveIn, period.End) + 1,
	}

	totalDays := decimal.NewFromInt(int64(split.TotalDays))
	split.DailyRate = inv.Total.Div(totalDays)
	// Multiply before dividing so exact shares stay exact and the
	// round-up never manufactures an extra 10p.
	split.PreviousAmount = roundUpToTenPence(inv.Total.Mul(decimal.NewFromInt(int64(split.PreviousDays))).Div(totalDays))
	split.VoidAmount = roundUpToTenPence(inv.Total.Mul(decimal.NewFromInt(int64(split.VoidDays))).Div(totalDays))
	split.NewAmount = roundUpToTenPence(inv.Total.Mul(decimal.NewFromInt(int64(split.NewDays))).Div(totalDays))

	return split, nil
}

// roundUpToTenPence rounds an amount up to the nearest £0.10.
func roundUpToTenPence(d decimal.Decimal) decimal.Decimal {
	ten := decimal.NewFromInt(10)
	return d.Mul(ten).Ceil().Div(ten)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}
