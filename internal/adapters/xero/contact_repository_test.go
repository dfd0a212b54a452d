package xero

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/edinstair/property_transition_app/internal/apperrors"
	"github.com/edinstair/property_transition_app/internal/core/domain"
	"github.com/edinstair/property_transition_app/pkg/xeroapi"
)

// newTestClient points a client at a stub accounting API with retries
// tightened so failure tests stay fast.
func newTestClient(t *testing.T, handler http.Handler) (*xeroapi.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := xeroapi.New(context.Background(), xeroapi.Options{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
		Timeout:    5 * time.Second,
		MaxRetries: 2,
		RetryDelay: time.Millisecond,
	})
	if err != nil {
		t.Fatalf("failed to build test client: %v", err)
	}
	return client, server
}

type ContactRepositoryTestSuite struct {
	suite.Suite
}

func (suite *ContactRepositoryTestSuite) TestFindContactByAccountNumber() {
	var gotWhere string
	client, _ := newTestClient(suite.T(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.Equal("/Contacts", r.URL.Path)
		gotWhere = r.URL.Query().Get("where")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Contacts":[{
			"ContactID":"c-1",
			"Name":"ANP001042 - (Flat 2) 1 Albion Place",
			"AccountNumber":"ANP001042/3B",
			"ContactStatus":"ACTIVE",
			"EmailAddress":"old@example.com",
			"Addresses":[{"AddressType":"STREET","AddressLine1":"1 Albion Place","City":"Edinburgh","PostalCode":"EH7 5QR"}],
			"ContactGroups":[{"ContactGroupID":"g-1","Name":"Albion Portfolio"}],
			"DefaultCurrency":"GBP",
			"SalesDefaultAccountCode":"200"
		}]}`))
	}))
	repo := newContactRepository(client)

	contact, err := repo.FindContactByAccountNumber(context.Background(), "ANP001042/3B")

	suite.Require().NoError(err)
	suite.Equal(`AccountNumber=="ANP001042/3B"`, gotWhere)
	suite.Equal("c-1", contact.ContactID)
	suite.Equal("ANP001042/3B", contact.AccountNumber)
	suite.Equal(domain.ContactActive, contact.Status)
	suite.Require().Len(contact.Addresses, 1)
	suite.Equal("Edinburgh", contact.Addresses[0].City)
	suite.Require().Len(contact.Groups, 1)
	suite.Equal("Albion Portfolio", contact.Groups[0].Name)
	suite.Equal("GBP", contact.DefaultCurrency)
	suite.Equal("200", contact.SalesAccountCode)
}

func (suite *ContactRepositoryTestSuite) TestFindContactByAccountNumber_Empty() {
	client, _ := newTestClient(suite.T(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Contacts":[]}`))
	}))
	repo := newContactRepository(client)

	contact, err := repo.FindContactByAccountNumber(context.Background(), "ANP001042/3B")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(contact)
}

func (suite *ContactRepositoryTestSuite) TestGetContactBalance() {
	client, _ := newTestClient(suite.T(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.Equal("/Contacts/c-1", r.URL.Path)
		w.Write([]byte(`{"Contacts":[{
			"ContactID":"c-1",
			"Balances":{"AccountsReceivable":{"Outstanding":150.50,"Overdue":80.00}}
		}]}`))
	}))
	repo := newContactRepository(client)

	balance, err := repo.GetContactBalance(context.Background(), "c-1")

	suite.Require().NoError(err)
	suite.Equal("150.50", balance.Outstanding.StringFixed(2))
	suite.Equal("80.00", balance.Overdue.StringFixed(2))
}

func (suite *ContactRepositoryTestSuite) TestGetContactBalance_MissingBalances() {
	client, _ := newTestClient(suite.T(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Contacts":[{"ContactID":"c-1"}]}`))
	}))
	repo := newContactRepository(client)

	balance, err := repo.GetContactBalance(context.Background(), "c-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrBalanceUnavailable)
	suite.Nil(balance)
}

func (suite *ContactRepositoryTestSuite) TestCreateContact_RoundTrip() {
	client, _ := newTestClient(suite.T(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.Equal(http.MethodPut, r.Method)
		suite.Equal("/Contacts", r.URL.Path)
		w.Write([]byte(`{"Contacts":[{"ContactID":"c-new","AccountNumber":"ANP001043/D","ContactStatus":"ACTIVE"}]}`))
	}))
	repo := newContactRepository(client)

	created, err := repo.CreateContact(context.Background(), domain.Contact{
		Name:          "ANP001043 - (Flat 2) 1 Albion Place",
		AccountNumber: "ANP001043/D",
		Status:        domain.ContactActive,
	})

	suite.Require().NoError(err)
	suite.Equal("c-new", created.ContactID)
}

func (suite *ContactRepositoryTestSuite) TestServerErrorsRetryThenFail() {
	attempts := 0
	client, _ := newTestClient(suite.T(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	repo := newContactRepository(client)

	_, err := repo.FindContactByID(context.Background(), "c-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUpstreamUnavailable)
	suite.Equal(3, attempts) // initial try plus two retries
}

func (suite *ContactRepositoryTestSuite) TestRateLimitRetriesThenSucceeds() {
	attempts := 0
	client, _ := newTestClient(suite.T(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"Contacts":[{"ContactID":"c-1"}]}`))
	}))
	repo := newContactRepository(client)

	contact, err := repo.FindContactByID(context.Background(), "c-1")

	suite.Require().NoError(err)
	suite.Equal("c-1", contact.ContactID)
	suite.Equal(2, attempts)
}

func (suite *ContactRepositoryTestSuite) TestNotFoundIsNotRetried() {
	attempts := 0
	client, _ := newTestClient(suite.T(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
	}))
	repo := newContactRepository(client)

	_, err := repo.FindContactByID(context.Background(), "c-gone")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal(1, attempts)
}

func (suite *ContactRepositoryTestSuite) TestGroupMembership() {
	var paths []string
	client, _ := newTestClient(suite.T(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.Write([]byte(`{}`))
	}))
	repo := newContactRepository(client)

	suite.Require().NoError(repo.AddContactToGroup(context.Background(), "c-1", "g-prev"))
	suite.Require().NoError(repo.RemoveContactFromGroup(context.Background(), "c-1", "g-old"))

	suite.Equal([]string{
		"PUT /ContactGroups/g-prev/Contacts",
		"DELETE /ContactGroups/g-old/Contacts/c-1",
	}, paths)
}

func TestContactRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ContactRepositoryTestSuite))
}
