package services_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/edinstair/property_transition_app/internal/core/domain"
	portssvc "github.com/edinstair/property_transition_app/internal/core/ports/services"
	"github.com/edinstair/property_transition_app/internal/core/services"
)

type InvoiceReassignmentServiceTestSuite struct {
	suite.Suite
	mockRepo *MockInvoiceRepository
	service  portssvc.InvoiceReassignmentSvc
}

func (suite *InvoiceReassignmentServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvoiceRepository)
	suite.service = services.NewInvoiceReassignmentService(suite.mockRepo)
}

func (suite *InvoiceReassignmentServiceTestSuite) TestFindEligible_FiltersAndSorts() {
	ctx := context.Background()
	cutoff := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	invoices := []domain.Invoice{
		{InvoiceID: "inv-old", ContactID: "c-1", Status: domain.InvoiceAuthorised,
			IssueDate: time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)},
		{InvoiceID: "inv-1", ContactID: "c-1", Status: domain.InvoiceAuthorised,
			IssueDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{InvoiceID: "inv-void", ContactID: "c-1", Status: domain.InvoiceVoided,
			IssueDate: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)},
		{InvoiceID: "inv-2", ContactID: "c-1", Status: domain.InvoicePaid,
			IssueDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
	}
	suite.mockRepo.On("ListInvoicesByContact", ctx, "c-1").Return(invoices, nil).Once()

	got, err := suite.service.FindEligible(ctx, "c-1", cutoff)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	// Newest first; the cutoff day itself is included, voided excluded.
	suite.Equal("inv-2", got[0].InvoiceID)
	suite.Equal("inv-1", got[1].InvoiceID)
}

// TestFindEligible_RandomizedInvoices checks the filter as a property
// over generated invoices: whatever the mix of dates and statuses, the
// result is exactly the non-voided, non-deleted invoices issued on or
// after the cutoff, newest first.
func (suite *InvoiceReassignmentServiceTestSuite) TestFindEligible_RandomizedInvoices() {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))
	cutoff := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	statuses := []domain.InvoiceStatus{
		domain.InvoiceDraft, domain.InvoiceSubmitted, domain.InvoiceAuthorised,
		domain.InvoicePaid, domain.InvoiceVoided, domain.InvoiceDeleted,
	}

	invoices := make([]domain.Invoice, 200)
	for i := range invoices {
		invoices[i] = domain.Invoice{
			InvoiceID: fmt.Sprintf("inv-%03d", i),
			ContactID: "c-1",
			Status:    statuses[rng.Intn(len(statuses))],
			IssueDate: cutoff.AddDate(0, 0, rng.Intn(121)-60),
		}
	}
	suite.mockRepo.On("ListInvoicesByContact", ctx, "c-1").Return(invoices, nil).Once()

	got, err := suite.service.FindEligible(ctx, "c-1", cutoff)
	suite.Require().NoError(err)

	wantCount := 0
	for _, inv := range invoices {
		if inv.EligibleForReassignment("c-1", cutoff) {
			wantCount++
		}
	}
	suite.Len(got, wantCount)
	for i, inv := range got {
		suite.True(inv.EligibleForReassignment("c-1", cutoff), "invoice %s must match the filter", inv.InvoiceID)
		if i > 0 {
			suite.False(got[i-1].IssueDate.Before(inv.IssueDate), "results must be newest first")
		}
	}
}

func (suite *InvoiceReassignmentServiceTestSuite) TestReassign_PartialFailure() {
	ctx := context.Background()
	suite.mockRepo.On("FindInvoiceByID", ctx, "inv-1").
		Return(&domain.Invoice{InvoiceID: "inv-1", ContactID: "c-old"}, nil).Once()
	suite.mockRepo.On("UpdateInvoiceContact", ctx, "inv-1", "c-new").Return(nil).Once()

	suite.mockRepo.On("FindInvoiceByID", ctx, "inv-2").
		Return(&domain.Invoice{InvoiceID: "inv-2", ContactID: "c-old"}, nil).Once()
	suite.mockRepo.On("UpdateInvoiceContact", ctx, "inv-2", "c-new").Return(assert.AnError).Once()

	suite.mockRepo.On("FindInvoiceByID", ctx, "inv-3").
		Return(&domain.Invoice{InvoiceID: "inv-3", ContactID: "c-old"}, nil).Once()
	suite.mockRepo.On("UpdateInvoiceContact", ctx, "inv-3", "c-new").Return(nil).Once()

	result, err := suite.service.Reassign(ctx, []string{"inv-1", "inv-2", "inv-3"}, "c-new")

	suite.Require().NoError(err)
	suite.ElementsMatch([]string{"inv-1", "inv-3"}, result.Succeeded)
	suite.Require().Len(result.Failed, 1)
	suite.Contains(result.Failed, "inv-2")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceReassignmentServiceTestSuite) TestReassign_AlreadyAtTargetIsNoOp() {
	ctx := context.Background()
	suite.mockRepo.On("FindInvoiceByID", ctx, "inv-1").
		Return(&domain.Invoice{InvoiceID: "inv-1", ContactID: "c-new"}, nil).Once()

	result, err := suite.service.Reassign(ctx, []string{"inv-1"}, "c-new")

	suite.Require().NoError(err)
	suite.Equal([]string{"inv-1"}, result.Succeeded)
	suite.Empty(result.Failed)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateInvoiceContact", ctx, "inv-1", "c-new")
}

func (suite *InvoiceReassignmentServiceTestSuite) TestReassign_LookupFailureRecorded() {
	ctx := context.Background()
	suite.mockRepo.On("FindInvoiceByID", ctx, "inv-gone").
		Return(nil, assert.AnError).Once()

	result, err := suite.service.Reassign(ctx, []string{"inv-gone"}, "c-new")

	suite.Require().NoError(err)
	suite.Empty(result.Succeeded)
	suite.Contains(result.Failed, "inv-gone")
}

func TestInvoiceReassignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceReassignmentServiceTestSuite))
}
