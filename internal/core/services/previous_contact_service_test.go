package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/edinstair/property_transition_app/internal/apperrors"
	"github.com/edinstair/property_transition_app/internal/core/domain"
	portssvc "github.com/edinstair/property_transition_app/internal/core/ports/services"
	"github.com/edinstair/property_transition_app/internal/core/services"
)

type PreviousContactServiceTestSuite struct {
	suite.Suite
	mockRepo *MockContactRepository
	service  portssvc.PreviousContactSvc
}

func (suite *PreviousContactServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockContactRepository)
	suite.service = services.NewPreviousContactService(suite.mockRepo)
}

func (suite *PreviousContactServiceTestSuite) TestResolve_ZeroBalanceArchives() {
	ctx := context.Background()
	suite.mockRepo.On("GetContactBalance", ctx, "c-1").
		Return(&domain.ContactBalance{Outstanding: decimal.Zero}, nil).Once()

	res, err := suite.service.Resolve(ctx, "c-1")

	suite.Require().NoError(err)
	suite.Equal(domain.ContactInactive, res.TargetStatus)
	suite.Equal("/P", res.TargetCode)
	suite.Equal(domain.PreviousAccountsGroupName, res.TargetGroup)
}

func (suite *PreviousContactServiceTestSuite) TestResolve_CreditBalanceStaysActive() {
	ctx := context.Background()
	suite.mockRepo.On("GetContactBalance", ctx, "c-1").
		Return(&domain.ContactBalance{Outstanding: decimal.RequireFromString("-25.00")}, nil).Once()

	res, err := suite.service.Resolve(ctx, "c-1")

	suite.Require().NoError(err)
	suite.Equal(domain.ContactActive, res.TargetStatus)
}

func (suite *PreviousContactServiceTestSuite) TestResolve_BalanceUnavailable() {
	ctx := context.Background()
	suite.mockRepo.On("GetContactBalance", ctx, "c-1").
		Return(nil, assert.AnError).Once()

	res, err := suite.service.Resolve(ctx, "c-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrBalanceUnavailable)
	suite.Nil(res)
}

func (suite *PreviousContactServiceTestSuite) TestApply_RewritesAccountAndSwapsGroups() {
	ctx := context.Background()
	contact := &domain.Contact{
		ContactID:     "c-1",
		AccountNumber: "ANP001042/3B",
		Status:        domain.ContactActive,
		Groups: []domain.ContactGroup{
			{GroupID: "g-1", Name: "Albion Portfolio"},
			{GroupID: "g-2", Name: "3B Owners"},
		},
	}
	res := domain.ResolvePreviousContact(domain.ContactBalance{Outstanding: decimal.Zero})

	// Apply re-reads the balance before touching anything.
	suite.mockRepo.On("GetContactBalance", ctx, "c-1").
		Return(&domain.ContactBalance{Outstanding: decimal.Zero}, nil).Once()
	suite.mockRepo.On("FindContactByID", ctx, "c-1").Return(contact, nil).Once()
	suite.mockRepo.On("UpdateContact", ctx, mock.MatchedBy(func(c domain.Contact) bool {
		return c.AccountNumber == "ANP001042/P" && c.Status == domain.ContactInactive
	})).Return(&domain.Contact{ContactID: "c-1", AccountNumber: "ANP001042/P", Status: domain.ContactInactive}, nil).Once()
	suite.mockRepo.On("ListContactGroups", ctx).Return([]domain.ContactGroup{
		{GroupID: "g-1", Name: "Albion Portfolio"},
		{GroupID: "g-prev", Name: domain.PreviousAccountsGroupName},
	}, nil).Once()
	suite.mockRepo.On("RemoveContactFromGroup", ctx, "c-1", "g-1").Return(nil).Once()
	suite.mockRepo.On("RemoveContactFromGroup", ctx, "c-1", "g-2").Return(nil).Once()
	suite.mockRepo.On("AddContactToGroup", ctx, "c-1", "g-prev").Return(nil).Once()

	updated, err := suite.service.Apply(ctx, "c-1", res)

	suite.Require().NoError(err)
	suite.Equal("ANP001042/P", updated.AccountNumber)
	suite.Equal(domain.ContactInactive, updated.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PreviousContactServiceTestSuite) TestApply_FreshBalanceWins() {
	ctx := context.Background()
	contact := &domain.Contact{ContactID: "c-1", AccountNumber: "ANP001042/3B"}
	// Resolved as zero, but a payment bounced in between: the fresh
	// read shows a balance, so the contact stays active.
	stale := domain.ResolvePreviousContact(domain.ContactBalance{Outstanding: decimal.Zero})

	suite.mockRepo.On("GetContactBalance", ctx, "c-1").
		Return(&domain.ContactBalance{Outstanding: decimal.RequireFromString("80.00")}, nil).Once()
	suite.mockRepo.On("FindContactByID", ctx, "c-1").Return(contact, nil).Once()
	suite.mockRepo.On("UpdateContact", ctx, mock.MatchedBy(func(c domain.Contact) bool {
		return c.AccountNumber == "ANP001042/P" && c.Status == domain.ContactActive
	})).Return(&domain.Contact{ContactID: "c-1", AccountNumber: "ANP001042/P", Status: domain.ContactActive}, nil).Once()
	suite.mockRepo.On("ListContactGroups", ctx).Return([]domain.ContactGroup{
		{GroupID: "g-prev", Name: domain.PreviousAccountsGroupName},
	}, nil).Once()
	suite.mockRepo.On("AddContactToGroup", ctx, "c-1", "g-prev").Return(nil).Once()

	updated, err := suite.service.Apply(ctx, "c-1", stale)

	suite.Require().NoError(err)
	suite.Equal(domain.ContactActive, updated.Status)
}

func (suite *PreviousContactServiceTestSuite) TestApply_MissingPreviousGroup() {
	ctx := context.Background()
	contact := &domain.Contact{ContactID: "c-1", AccountNumber: "ANP001042/3B"}
	res := domain.ResolvePreviousContact(domain.ContactBalance{Outstanding: decimal.Zero})

	suite.mockRepo.On("GetContactBalance", ctx, "c-1").
		Return(&domain.ContactBalance{Outstanding: decimal.Zero}, nil).Once()
	suite.mockRepo.On("FindContactByID", ctx, "c-1").Return(contact, nil).Once()
	suite.mockRepo.On("UpdateContact", ctx, mock.AnythingOfType("domain.Contact")).
		Return(&domain.Contact{ContactID: "c-1", AccountNumber: "ANP001042/P"}, nil).Once()
	suite.mockRepo.On("ListContactGroups", ctx).Return([]domain.ContactGroup{}, nil).Once()

	updated, err := suite.service.Apply(ctx, "c-1", res)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	// The contact itself was still rewritten.
	suite.NotNil(updated)
}

func TestPreviousContactServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PreviousContactServiceTestSuite))
}
