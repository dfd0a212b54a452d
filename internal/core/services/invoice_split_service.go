package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/edinstair/property_transition_app/internal/apperrors"
	"github.com/edinstair/property_transition_app/internal/core/domain"
	portsrepo "github.com/edinstair/property_transition_app/internal/core/ports/repositories"
	portssvc "github.com/edinstair/property_transition_app/internal/core/ports/services"
)

// invoiceSplitService divides the outgoing contact's latest unpaid
// invoice pro-rata when the occupier change lands mid billing period:
// the original invoice is rescaled to the previous occupier's share and
// a fresh invoice is raised for the new occupier's share.
type invoiceSplitService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

// NewInvoiceSplitService creates the invoice split service.
func NewInvoiceSplitService(invoiceRepo portsrepo.InvoiceRepositoryFacade) *invoiceSplitService {
	return &invoiceSplitService{invoiceRepo: invoiceRepo}
}

func (s *invoiceSplitService) Preview(ctx context.Context, old *domain.Contact, vacateDate, moveInDate time.Time) (*portssvc.SplitOutcome, error) {
	inv, split, err := s.computeSplit(ctx, old, vacateDate, moveInDate)
	if err != nil {
		return nil, err
	}
	return &portssvc.SplitOutcome{Source: *inv, Split: split}, nil
}

func (s *invoiceSplitService) Execute(ctx context.Context, old *domain.Contact, newContactID string, vacateDate, moveInDate time.Time) (*portssvc.SplitOutcome, error) {
	inv, split, err := s.computeSplit(ctx, old, vacateDate, moveInDate)
	if err != nil {
		return nil, err
	}

	rescaled := scaleLineItems(inv.LineItems, split.PreviousAmount, inv.Total)
	if err := s.invoiceRepo.UpdateInvoiceLineItems(ctx, inv.InvoiceID, rescaled); err != nil {
		return nil, fmt.Errorf("failed to rescale invoice %s: %w", inv.InvoiceID, err)
	}

	created, err := s.invoiceRepo.CreateInvoice(ctx, s.buildNewOccupierInvoice(inv, split, newContactID, moveInDate))
	if err != nil {
		// The source invoice is already rescaled; surface that so the
		// operator knows a retry must only re-raise the new invoice.
		return nil, fmt.Errorf("invoice %s rescaled but raising the new occupier's invoice failed: %w", inv.InvoiceID, err)
	}

	s.LogInfo(ctx, "Invoice split executed",
		slog.String("invoice_id", inv.InvoiceID),
		slog.String("new_invoice_id", created.InvoiceID),
		slog.String("previous_amount", split.PreviousAmount.StringFixed(2)),
		slog.String("new_amount", split.NewAmount.StringFixed(2)))
	return &portssvc.SplitOutcome{Source: *inv, Split: split, NewInvoice: created}, nil
}

// computeSplit locates the latest unpaid sales invoice and calculates
// the pro-rata division.
func (s *invoiceSplitService) computeSplit(ctx context.Context, old *domain.Contact, vacateDate, moveInDate time.Time) (*domain.Invoice, domain.InvoiceSplit, error) {
	code, err := domain.LookupContactCode(old.ContactCodeSuffix())
	if err != nil {
		return nil, domain.InvoiceSplit{}, fmt.Errorf("contact %s: %w", old.ContactID, err)
	}

	invoices, err := s.invoiceRepo.ListInvoicesByContact(ctx, old.ContactID)
	if err != nil {
		return nil, domain.InvoiceSplit{}, fmt.Errorf("failed to list invoices for contact %s: %w", old.ContactID, err)
	}

	var latest *domain.Invoice
	for i := range invoices {
		inv := &invoices[i]
		if inv.Type != "ACCREC" || !inv.IsUnpaid() {
			continue
		}
		if latest == nil || inv.IssueDate.After(latest.IssueDate) {
			latest = inv
		}
	}
	if latest == nil {
		return nil, domain.InvoiceSplit{}, fmt.Errorf("%w: contact %s has no unpaid invoice to split", apperrors.ErrNotFound, old.ContactID)
	}

	split, err := domain.CalculateInvoiceSplit(*latest, code, vacateDate, moveInDate)
	if err != nil {
		return nil, domain.InvoiceSplit{}, err
	}
	return latest, split, nil
}

func (s *invoiceSplitService) buildNewOccupierInvoice(src *domain.Invoice, split domain.InvoiceSplit, newContactID string, moveInDate time.Time) domain.Invoice {
	accountCode, taxType := "", ""
	if len(src.LineItems) > 0 {
		accountCode = src.LineItems[0].AccountCode
		taxType = src.LineItems[0].TaxType
	}
	return domain.Invoice{
		Type:            src.Type,
		ContactID:       newContactID,
		IssueDate:       moveInDate,
		DueDate:         src.DueDate,
		Status:          domain.InvoiceAuthorised,
		Reference:       fmt.Sprintf("Pro-rata of %s", src.InvoiceNumber),
		CurrencyCode:    src.CurrencyCode,
		BrandingThemeID: src.BrandingThemeID,
		LineAmountTypes: src.LineAmountTypes,
		LineItems: []domain.InvoiceLineItem{{
			Description: fmt.Sprintf("Pro-rata charge %s to %s",
				moveInDate.Format("02 Jan 2006"), split.Period.End.Format("02 Jan 2006")),
			Quantity:    decimal.NewFromInt(1),
			UnitAmount:  split.NewAmount,
			LineAmount:  split.NewAmount,
			AccountCode: accountCode,
			TaxType:     taxType,
		}},
		Total:     split.NewAmount,
		AmountDue: split.NewAmount,
	}
}

// scaleLineItems rescales every line proportionally so the invoice
// totals target. Rounding residue lands on the last line, keeping the
// sum exact.
func scaleLineItems(items []domain.InvoiceLineItem, target, total decimal.Decimal) []domain.InvoiceLineItem {
	scaled := make([]domain.InvoiceLineItem, len(items))
	copy(scaled, items)
	if len(scaled) == 0 || total.IsZero() {
		return scaled
	}

	remaining := target
	for i := range scaled {
		var share decimal.Decimal
		if i == len(scaled)-1 {
			share = remaining
		} else {
			share = scaled[i].LineAmount.Mul(target).Div(total).Round(2)
			remaining = remaining.Sub(share)
		}
		scaled[i].LineAmount = share
		if scaled[i].Quantity.IsZero() {
			scaled[i].Quantity = decimal.NewFromInt(1)
		}
		scaled[i].UnitAmount = share.Div(scaled[i].Quantity).Round(4)
	}
	return scaled
}
