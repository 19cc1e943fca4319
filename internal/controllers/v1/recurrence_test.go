package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/moneyflow-app/backend/internal/controllers/v1"
	"github.com/moneyflow-app/backend/internal/models"
	"github.com/moneyflow-app/backend/test"
	"github.com/stretchr/testify/assert"
)

// createTestRecurrence creates a recurrence via the API. Missing fields
// are filled with a monthly rent of 12 installments.
func (suite *TestSuiteStandard) createTestRecurrence(t *testing.T, body map[string]any, expectedStatus ...int) v1.RecurrenceResponse {
	defaults := map[string]any{
		"title":             "Aluguel",
		"amount":            "1250.00",
		"startDate":         "2025-01-05T00:00:00Z",
		"type":              models.Outflow,
		"totalInstallments": 12,
		"frequencyId":       suite.frequency("Monthly").ID,
	}

	for key, value := range defaults {
		if _, ok := body[key]; !ok {
			body[key] = value
		}
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := suite.request(t, http.MethodPost, "http://example.com/v1/recurrences", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.RecurrenceResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestRecurrencesOptions() {
	r := suite.request(suite.T(), http.MethodOptions, "http://example.com/v1/recurrences", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	recurrence := suite.createTestRecurrence(suite.T(), map[string]any{})
	r = suite.request(suite.T(), http.MethodOptions, recurrence.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, DELETE", r.Header().Get("allow"))

	r = suite.request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/recurrences/%s", uuid.New()), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(suite.T(), http.MethodOptions, "http://example.com/v1/recurrences/not-a-uuid", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRecurrencesCreate() {
	category := suite.category("Moradia")
	response := suite.createTestRecurrence(suite.T(), map[string]any{
		"startDate":  "2025-01-31T00:00:00Z",
		"categoryId": category.ID,
	})

	recurrence := response.Data
	suite.Require().NotNil(recurrence)
	suite.Assert().Nil(response.Error)
	suite.Assert().Equal("Aluguel", recurrence.Title)
	suite.Assert().True(recurrence.Active)
	suite.Require().NotNil(recurrence.TotalInstallments)
	suite.Assert().Equal(12, *recurrence.TotalInstallments)
	suite.Assert().Equal("Monthly", recurrence.Frequency.Title)
	suite.Require().NotNil(recurrence.Category)
	suite.Assert().Equal("Moradia", recurrence.Category.Name)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/recurrences/%s", recurrence.ID), recurrence.Links.Self)

	suite.Require().Len(recurrence.Transactions, 12)
	for i, transaction := range recurrence.Transactions {
		suite.Assert().Equal(i+1, transaction.InstallmentNumber)
		suite.Assert().Equal(fmt.Sprintf("Aluguel - %d/12", i+1), transaction.Title)
		suite.Assert().True(test.Decimal("1250").Equal(transaction.Amount), "Amount is %s", transaction.Amount)
		suite.Assert().Equal(models.Pending, transaction.Status)
		suite.Assert().Equal(models.Outflow, transaction.Type)
		suite.Require().NotNil(transaction.RecurrenceID)
		suite.Assert().Equal(recurrence.ID, *transaction.RecurrenceID)
		suite.Require().NotNil(transaction.CategoryID)
		suite.Assert().Equal(category.ID, *transaction.CategoryID)
		suite.Assert().Equal(recurrence.Links.Self, transaction.Links.Recurrence)
	}

	// Due dates are anchored to the start date and clamped to the end of the month
	suite.Assert().Equal(test.Date("2025-01-31"), recurrence.Transactions[0].Date)
	suite.Assert().Equal(test.Date("2025-02-28"), recurrence.Transactions[1].Date)
	suite.Assert().Equal(test.Date("2025-03-31"), recurrence.Transactions[2].Date)
	suite.Assert().Equal(test.Date("2025-04-30"), recurrence.Transactions[3].Date)
	suite.Assert().Equal(test.Date("2025-12-31"), recurrence.Transactions[11].Date)
}

func (suite *TestSuiteStandard) TestRecurrencesCreateOpenEnded() {
	response := suite.createTestRecurrence(suite.T(), map[string]any{
		"title":             "Streaming",
		"amount":            "39.90",
		"totalInstallments": nil,
		"frequencyId":       suite.frequency("Weekly").ID,
	})

	recurrence := response.Data
	suite.Require().NotNil(recurrence)
	suite.Assert().Nil(recurrence.TotalInstallments)
	suite.Require().Len(recurrence.Transactions, 12)
	suite.Assert().Equal("Streaming - 1/∞", recurrence.Transactions[0].Title)
	suite.Assert().Equal("Streaming - 12/∞", recurrence.Transactions[11].Title)
	suite.Assert().Equal(test.Date("2025-01-12"), recurrence.Transactions[1].Date)
}

func (suite *TestSuiteStandard) TestRecurrencesCreateNotFound() {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"Unknown frequency", map[string]any{"frequencyId": uuid.New()}},
		{"Unknown category", map[string]any{"categoryId": uuid.New()}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := suite.createTestRecurrence(t, tt.body, http.StatusNotFound)
			assert.Nil(t, response.Data)
			assert.NotNil(t, response.Error)
		})
	}

	var count int64
	suite.Require().Nil(suite.db.Model(&models.Transaction{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count, "Failed creations must not leave transactions behind")
}

func (suite *TestSuiteStandard) TestRecurrencesCreateInvalid() {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"Missing title", map[string]any{"title": ""}},
		{"Negative amount", map[string]any{"amount": "-10"}},
		{"Zero amount", map[string]any{"amount": "0"}},
		{"Invalid type", map[string]any{"type": "SIDEWAYS"}},
		{"Zero installments", map[string]any{"totalInstallments": 0}},
		{"Too many installments", map[string]any{"totalInstallments": 1001}},
		{"Huge number of installments", map[string]any{"totalInstallments": 2000000000}},
		{"Missing frequency", map[string]any{"frequencyId": uuid.Nil}},
		{"Unparseable date", map[string]any{"startDate": "next tuesday"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := suite.createTestRecurrence(t, tt.body, http.StatusBadRequest)
			assert.Nil(t, response.Data)
			assert.NotNil(t, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestRecurrencesGet() {
	created := suite.createTestRecurrence(suite.T(), map[string]any{"totalInstallments": 3})

	r := suite.request(suite.T(), http.MethodGet, created.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RecurrenceResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(created.Data.ID, response.Data.ID)
	suite.Assert().Nil(response.Data.Category)
	suite.Require().Len(response.Data.Transactions, 3)

	for i, transaction := range response.Data.Transactions {
		suite.Assert().Equal(i+1, transaction.InstallmentNumber, "Installments are not ordered")
	}
}

func (suite *TestSuiteStandard) TestRecurrencesGetErrors() {
	created := suite.createTestRecurrence(suite.T(), map[string]any{})
	other := suite.createTestUser(suite.T(), v1.UserCreate{})

	tests := []struct {
		name   string
		token  string
		url    string
		status int
	}{
		{"Other user", other.Data.Token, created.Data.Links.Self, http.StatusNotFound},
		{"Unknown ID", suite.token, fmt.Sprintf("http://example.com/v1/recurrences/%s", uuid.New()), http.StatusNotFound},
		{"Invalid ID", suite.token, "http://example.com/v1/recurrences/not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.requestAs(t, tt.token, http.MethodGet, tt.url, nil)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.RecurrenceResponse
			test.DecodeResponse(t, &r, &response)
			assert.Nil(t, response.Data)
			assert.NotNil(t, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestRecurrencesList() {
	first := suite.createTestRecurrence(suite.T(), map[string]any{"title": "Aluguel"})
	second := suite.createTestRecurrence(suite.T(), map[string]any{"title": "Academia"})
	third := suite.createTestRecurrence(suite.T(), map[string]any{"title": "Escola"})

	// Recurrences of other users are not listed
	other := suite.createTestUser(suite.T(), v1.UserCreate{})
	r := suite.requestAs(suite.T(), other.Data.Token, http.MethodPost, "http://example.com/v1/recurrences", map[string]any{
		"title":       "Seguro",
		"amount":      "100",
		"startDate":   "2025-01-05T00:00:00Z",
		"type":        models.Outflow,
		"frequencyId": suite.frequency("Yearly").ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	// Deactivate the second one
	r = suite.request(suite.T(), http.MethodDelete, second.Data.Links.Self+"?keepHistory=true", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	tests := []struct {
		name       string
		query      string
		expected   []uuid.UUID
		total      int64
		totalPages int
	}{
		{"All", "", []uuid.UUID{third.Data.ID, second.Data.ID, first.Data.ID}, 3, 1},
		{"Active", "?active=true", []uuid.UUID{third.Data.ID, first.Data.ID}, 2, 1},
		{"Inactive", "?active=false", []uuid.UUID{second.Data.ID}, 1, 1},
		{"First page", "?limit=2", []uuid.UUID{third.Data.ID, second.Data.ID}, 3, 2},
		{"Second page", "?limit=2&page=2", []uuid.UUID{first.Data.ID}, 3, 2},
		{"Beyond the last page", "?limit=2&page=3", []uuid.UUID{}, 3, 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "http://example.com/v1/recurrences"+tt.query, nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.RecurrenceListResponse
			test.DecodeResponse(t, &r, &response)

			ids := make([]uuid.UUID, 0, len(response.Data))
			for _, recurrence := range response.Data {
				ids = append(ids, recurrence.ID)
			}

			assert.Equal(t, tt.expected, ids)
			if assert.NotNil(t, response.Pagination) {
				assert.Equal(t, tt.total, response.Pagination.Total)
				assert.Equal(t, tt.totalPages, response.Pagination.TotalPages)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestRecurrencesListInvalidQuery() {
	for _, query := range []string{"?active=maybe", "?page=-1", "?limit=1000", "?limit=-1"} {
		r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/recurrences"+query, nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

// payInstallments marks the first n installments of the recurrence as paid.
func (suite *TestSuiteStandard) payInstallments(recurrence v1.Recurrence, n int) {
	for _, transaction := range recurrence.Transactions[:n] {
		r := suite.request(suite.T(), http.MethodPatch, transaction.Links.Self, map[string]any{"status": models.Paid})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	}
}

// installmentsOf returns the transactions of the recurrence that are stored.
func (suite *TestSuiteStandard) installmentsOf(id uuid.UUID) []models.Transaction {
	var transactions []models.Transaction
	suite.Require().Nil(suite.db.Where("recurrence_id = ?", id).Order("installment_number ASC").Find(&transactions).Error)
	return transactions
}

func (suite *TestSuiteStandard) TestRecurrencesDeleteKeepHistory() {
	tests := []struct {
		name  string
		query string
		body  any
	}{
		{"Query", "?keepHistory=true", nil},
		{"Body", "", map[string]any{"keepHistory": true}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			created := suite.createTestRecurrence(t, map[string]any{})
			suite.payInstallments(*created.Data, 3)

			r := suite.request(t, http.MethodDelete, created.Data.Links.Self+tt.query, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)

			transactions := suite.installmentsOf(created.Data.ID)
			if assert.Len(t, transactions, 3) {
				for i, transaction := range transactions {
					assert.Equal(t, i+1, transaction.InstallmentNumber)
					assert.Equal(t, models.Paid, transaction.Status)
				}
			}

			r = suite.request(t, http.MethodGet, created.Data.Links.Self, nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.RecurrenceResponse
			test.DecodeResponse(t, &r, &response)
			assert.False(t, response.Data.Active)
		})
	}
}

func (suite *TestSuiteStandard) TestRecurrencesDelete() {
	created := suite.createTestRecurrence(suite.T(), map[string]any{})
	suite.payInstallments(*created.Data, 2)

	// A standalone transaction is not touched
	standalone := suite.createTestTransaction(suite.T(), map[string]any{})

	r := suite.request(suite.T(), http.MethodDelete, created.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	suite.Assert().Len(suite.installmentsOf(created.Data.ID), 0)

	r = suite.request(suite.T(), http.MethodGet, created.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(suite.T(), http.MethodGet, standalone.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestRecurrencesDeleteErrors() {
	created := suite.createTestRecurrence(suite.T(), map[string]any{})
	other := suite.createTestUser(suite.T(), v1.UserCreate{})

	r := suite.requestAs(suite.T(), other.Data.Token, http.MethodDelete, created.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Len(suite.installmentsOf(created.Data.ID), 12)

	r = suite.request(suite.T(), http.MethodDelete, "http://example.com/v1/recurrences/not-a-uuid", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/recurrences/%s", uuid.New()), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(suite.T(), http.MethodDelete, created.Data.Links.Self, `{"keepHistory": "yes"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
