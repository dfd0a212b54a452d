package xero

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/edinstair/property_transition_app/internal/core/domain"
)

type InvoiceRepositoryTestSuite struct {
	suite.Suite
}

func (suite *InvoiceRepositoryTestSuite) TestListInvoicesByContact_ParsesMillisecondDates() {
	client, _ := newTestClient(suite.T(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.Equal("/Invoices", r.URL.Path)
		suite.Equal("c-old", r.URL.Query().Get("ContactIDs"))
		// 2026-03-01T00:00:00Z in epoch milliseconds.
		w.Write([]byte(`{"Invoices":[{
			"InvoiceID":"inv-1",
			"InvoiceNumber":"INV-0042",
			"Type":"ACCREC",
			"Contact":{"ContactID":"c-old"},
			"Date":"\/Date(1772323200000+0000)\/",
			"DueDate":"2026-03-14",
			"Status":"AUTHORISED",
			"Total":124.00,
			"AmountDue":124.00,
			"LineItems":[{"LineItemID":"li-1","Description":"Stair cleaning","Quantity":1.0,"UnitAmount":124.00,"LineAmount":124.00,"AccountCode":"200"}]
		}]}`))
	}))
	repo := newInvoiceRepository(client)

	invoices, err := repo.ListInvoicesByContact(context.Background(), "c-old")

	suite.Require().NoError(err)
	suite.Require().Len(invoices, 1)
	inv := invoices[0]
	suite.Equal("inv-1", inv.InvoiceID)
	suite.Equal("c-old", inv.ContactID)
	suite.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), inv.IssueDate)
	suite.Equal(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), inv.DueDate)
	suite.Equal(domain.InvoiceAuthorised, inv.Status)
	suite.Equal("124.00", inv.Total.StringFixed(2))
	suite.Require().Len(inv.LineItems, 1)
	suite.Equal("Stair cleaning", inv.LineItems[0].Description)
}

func (suite *InvoiceRepositoryTestSuite) TestUpdateInvoiceContact_SendsPartialUpdate() {
	var body map[string]any
	client, _ := newTestClient(suite.T(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.Equal(http.MethodPost, r.Method)
		suite.Equal("/Invoices/inv-1", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		suite.Require().NoError(json.Unmarshal(raw, &body))
		w.Write([]byte(`{}`))
	}))
	repo := newInvoiceRepository(client)

	err := repo.UpdateInvoiceContact(context.Background(), "inv-1", "c-new")

	suite.Require().NoError(err)
	invoices := body["Invoices"].([]any)
	suite.Require().Len(invoices, 1)
	first := invoices[0].(map[string]any)
	suite.Equal("inv-1", first["InvoiceID"])
	suite.Equal("c-new", first["Contact"].(map[string]any)["ContactID"])
}

func (suite *InvoiceRepositoryTestSuite) TestCreateInvoice() {
	client, _ := newTestClient(suite.T(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.Equal(http.MethodPut, r.Method)
		suite.Equal("/Invoices", r.URL.Path)
		w.Write([]byte(`{"Invoices":[{"InvoiceID":"inv-new","InvoiceNumber":"INV-0099","Status":"AUTHORISED"}]}`))
	}))
	repo := newInvoiceRepository(client)

	created, err := repo.CreateInvoice(context.Background(), domain.Invoice{
		Type:      "ACCREC",
		ContactID: "c-new",
		Status:    domain.InvoiceAuthorised,
		Total:     decimal.RequireFromString("64.00"),
	})

	suite.Require().NoError(err)
	suite.Equal("inv-new", created.InvoiceID)
	suite.Equal("INV-0099", created.InvoiceNumber)
}

type RepeatingInvoiceRepositoryTestSuite struct {
	suite.Suite
}

func (suite *RepeatingInvoiceRepositoryTestSuite) TestListRepeatingInvoicesByContact() {
	client, _ := newTestClient(suite.T(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.Equal("/RepeatingInvoices", r.URL.Path)
		suite.Contains(r.URL.Query().Get("where"), "c-old")
		w.Write([]byte(`{"RepeatingInvoices":[{
			"RepeatingInvoiceID":"tpl-1",
			"Type":"ACCREC",
			"Contact":{"ContactID":"c-old"},
			"Status":"AUTHORISED",
			"ApprovedForSending":true,
			"Schedule":{"Period":1,"Unit":"MONTHLY","DueDate":14,"DueDateType":"OFFOLLOWINGMONTH","NextScheduledDate":"2026-04-01"},
			"LineItems":[{"Description":"Factoring charge","Quantity":1.0,"UnitAmount":120.00,"LineAmount":120.00}],
			"Total":120.00
		}]}`))
	}))
	repo := newRepeatingInvoiceRepository(client)

	templates, err := repo.ListRepeatingInvoicesByContact(context.Background(), "c-old")

	suite.Require().NoError(err)
	suite.Require().Len(templates, 1)
	tpl := templates[0]
	suite.Equal("tpl-1", tpl.TemplateID)
	suite.Equal(domain.TemplateAuthorised, tpl.Status)
	suite.True(tpl.ApprovedForSending)
	suite.Equal("MONTHLY", tpl.Schedule.Unit)
	suite.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), tpl.Schedule.NextScheduledDate)
}

func (suite *RepeatingInvoiceRepositoryTestSuite) TestCreateRepeatingInvoice_OmitsTemplateID() {
	var body map[string]any
	client, _ := newTestClient(suite.T(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.Equal(http.MethodPut, r.Method)
		raw, _ := io.ReadAll(r.Body)
		suite.Require().NoError(json.Unmarshal(raw, &body))
		w.Write([]byte(`{"RepeatingInvoices":[{"RepeatingInvoiceID":"tpl-2","Status":"AUTHORISED"}]}`))
	}))
	repo := newRepeatingInvoiceRepository(client)

	created, err := repo.CreateRepeatingInvoice(context.Background(), domain.RepeatingInvoice{
		ContactID: "c-new",
		Status:    domain.TemplateAuthorised,
		Schedule:  domain.Schedule{Period: 1, Unit: "MONTHLY", StartDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
	})

	suite.Require().NoError(err)
	suite.Equal("tpl-2", created.TemplateID)
	first := body["RepeatingInvoices"].([]any)[0].(map[string]any)
	_, hasID := first["RepeatingInvoiceID"]
	suite.False(hasID, "a new template must not carry an ID")
	suite.Equal("2026-04-01", first["Schedule"].(map[string]any)["StartDate"])
}

func TestInvoiceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceRepositoryTestSuite))
}

func TestRepeatingInvoiceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepeatingInvoiceRepositoryTestSuite))
}
