package v1_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/moneyflow-app/backend/internal/controllers/v1"
	"github.com/moneyflow-app/backend/internal/models"
	"github.com/moneyflow-app/backend/test"
	"github.com/stretchr/testify/assert"
)

// createTestTransaction creates a standalone transaction via the API. Missing
// fields are filled with defaults.
func (suite *TestSuiteStandard) createTestTransaction(t *testing.T, body map[string]any, expectedStatus ...int) v1.TransactionResponse {
	defaults := map[string]any{
		"title":  "Supermercado",
		"amount": "154.37",
		"date":   "2025-03-10T00:00:00Z",
		"type":   models.Outflow,
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

	r := suite.request(t, http.MethodPost, "http://example.com/v1/transactions", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.TransactionResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

// patchTransaction sends a PATCH for the transaction and returns the response.
func (suite *TestSuiteStandard) patchTransaction(t *testing.T, url string, body any, expectedStatus int) v1.TransactionResponse {
	r := suite.request(t, http.MethodPatch, url, body)
	test.AssertHTTPStatus(t, &r, expectedStatus)

	var response v1.TransactionResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestTransactionsOptions() {
	r := suite.request(suite.T(), http.MethodOptions, "http://example.com/v1/transactions", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	transaction := suite.createTestTransaction(suite.T(), map[string]any{})
	r = suite.request(suite.T(), http.MethodOptions, transaction.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))

	r = suite.request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(suite.T(), http.MethodOptions, "http://example.com/v1/transactions/not-a-uuid", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	category := suite.category("Alimentação")
	response := suite.createTestTransaction(suite.T(), map[string]any{
		"title":      "  Feira ",
		"status":     models.Paid,
		"categoryId": category.ID,
	})

	transaction := response.Data
	suite.Require().NotNil(transaction)
	suite.Assert().Nil(response.Error)
	suite.Assert().Equal("Feira", transaction.Title)
	suite.Assert().True(test.Decimal("154.37").Equal(transaction.Amount), "Amount is %s", transaction.Amount)
	suite.Assert().Equal(test.Date("2025-03-10"), transaction.Date)
	suite.Assert().Equal(models.Paid, transaction.Status)
	suite.Assert().Equal(1, transaction.InstallmentNumber)
	suite.Assert().Nil(transaction.RecurrenceID)
	suite.Assert().Nil(transaction.Recurrence)
	suite.Assert().Empty(transaction.Links.Recurrence)
	suite.Require().NotNil(transaction.Category)
	suite.Assert().Equal("Alimentação", transaction.Category.Name)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), transaction.Links.Self)

	// Status defaults to pending
	response = suite.createTestTransaction(suite.T(), map[string]any{})
	suite.Assert().Equal(models.Pending, response.Data.Status)
	suite.Assert().Nil(response.Data.CategoryID)
}

func (suite *TestSuiteStandard) TestTransactionsCreateErrors() {
	tests := []struct {
		name   string
		body   map[string]any
		status int
	}{
		{"Unknown category", map[string]any{"categoryId": uuid.New()}, http.StatusNotFound},
		{"Missing title", map[string]any{"title": ""}, http.StatusBadRequest},
		{"Zero amount", map[string]any{"amount": "0"}, http.StatusBadRequest},
		{"Negative amount", map[string]any{"amount": "-3.50"}, http.StatusBadRequest},
		{"Invalid type", map[string]any{"type": "TRANSFER"}, http.StatusBadRequest},
		{"Invalid status", map[string]any{"status": "LATE"}, http.StatusBadRequest},
		{"Amount is not a number", map[string]any{"amount": "a lot"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := suite.createTestTransaction(t, tt.body, tt.status)
			assert.Nil(t, response.Data)
			assert.NotNil(t, response.Error)
		})
	}

	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsGet() {
	recurrence := suite.createTestRecurrence(suite.T(), map[string]any{"totalInstallments": 2})
	installment := recurrence.Data.Transactions[1]

	r := suite.request(suite.T(), http.MethodGet, installment.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(installment.ID, response.Data.ID)
	suite.Assert().Equal(2, response.Data.InstallmentNumber)
	suite.Require().NotNil(response.Data.Recurrence)
	suite.Assert().Equal(recurrence.Data.ID, response.Data.Recurrence.ID)
	suite.Assert().Equal("Aluguel", response.Data.Recurrence.Title)
	suite.Assert().True(response.Data.Recurrence.Active)
	suite.Assert().Equal(recurrence.Data.Links.Self, response.Data.Links.Recurrence)
}

func (suite *TestSuiteStandard) TestTransactionsGetErrors() {
	transaction := suite.createTestTransaction(suite.T(), map[string]any{})
	other := suite.createTestUser(suite.T(), v1.UserCreate{})

	tests := []struct {
		name   string
		token  string
		url    string
		status int
	}{
		{"Other user", other.Data.Token, transaction.Data.Links.Self, http.StatusNotFound},
		{"Unknown ID", suite.token, fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), http.StatusNotFound},
		{"Invalid ID", suite.token, "http://example.com/v1/transactions/not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.requestAs(t, tt.token, http.MethodGet, tt.url, nil)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TransactionResponse
			test.DecodeResponse(t, &r, &response)
			assert.Nil(t, response.Data)
			assert.NotNil(t, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsList() {
	rent := suite.createTestRecurrence(suite.T(), map[string]any{"categoryId": suite.category("Moradia").ID})
	groceries := suite.createTestTransaction(suite.T(), map[string]any{
		"status":     models.Paid,
		"categoryId": suite.category("Alimentação").ID,
	})
	salary := suite.createTestTransaction(suite.T(), map[string]any{
		"title":  "Salário",
		"amount": "5000",
		"date":   "2025-04-01T00:00:00Z",
		"type":   models.Inflow,
	})

	// Transactions of other users are never listed
	other := suite.createTestUser(suite.T(), v1.UserCreate{})
	r := suite.requestAs(suite.T(), other.Data.Token, http.MethodPost, "http://example.com/v1/transactions", map[string]any{
		"title":  "Supermercado",
		"amount": "20",
		"date":   "2025-03-11T00:00:00Z",
		"type":   models.Outflow,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	tests := []struct {
		name  string
		query string
		len   int
		total int64
	}{
		{"All", "", 14, 14},
		{"Month", "?month=3&year=2025", 2, 2},
		{"Month without year is ignored", "?month=3", 14, 14},
		{"Month with no transactions", "?month=3&year=2024", 0, 0},
		{"Title", "?title=mercado", 1, 1},
		{"Title ignores case", "?title=ALUGUEL", 12, 12},
		{"Status", "?status=PAID", 1, 1},
		{"Type", "?type=INFLOW", 1, 1},
		{"Category", fmt.Sprintf("?category=%s", suite.category("Moradia").ID), 12, 12},
		{"Without category", "?category=", 1, 1},
		{"Recurrence", fmt.Sprintf("?recurrence=%s", rent.Data.ID), 12, 12},
		{"Combined", fmt.Sprintf("?recurrence=%s&month=6&year=2025", rent.Data.ID), 1, 1},
		{"Limit", "?limit=5", 5, 14},
		{"Last page", "?limit=5&page=3", 4, 14},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "http://example.com/v1/transactions"+tt.query, nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
			if assert.NotNil(t, response.Pagination) {
				assert.Equal(t, tt.total, response.Pagination.Total)
			}
		})
	}

	// Newest first
	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?month=4&year=2025", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(rent.Data.Transactions[3].ID, response.Data[0].ID)
	suite.Assert().Equal(salary.Data.ID, response.Data[1].ID)

	// Category and recurrence are included
	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?month=3&year=2025", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var march v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &march)
	suite.Require().Len(march.Data, 2)
	suite.Assert().Equal(groceries.Data.ID, march.Data[0].ID)
	suite.Require().NotNil(march.Data[0].Category)
	suite.Assert().Equal("Alimentação", march.Data[0].Category.Name)
	suite.Require().NotNil(march.Data[1].Recurrence)
	suite.Assert().Equal("Aluguel", march.Data[1].Recurrence.Title)

	pagination := march.Pagination
	suite.Require().NotNil(pagination)
	suite.Assert().Equal(1, pagination.Page)
	suite.Assert().Equal(50, pagination.Limit)
	suite.Assert().Equal(1, pagination.TotalPages)
}

func (suite *TestSuiteStandard) TestTransactionsListTitle() {
	for _, title := range []string{"Supermercado", "EDUCAÇÃO", "50% off", "Matrícula_2025"} {
		suite.createTestTransaction(suite.T(), map[string]any{"title": title})
	}

	tests := []struct {
		search   string
		expected []string
	}{
		{"mercado", []string{"Supermercado"}},
		{"ção", []string{"EDUCAÇÃO"}},
		{"educação", []string{"EDUCAÇÃO"}},
		{"MATRÍCULA", []string{"Matrícula_2025"}},
		{"%", []string{"50% off"}},
		{"_", []string{"Matrícula_2025"}},
		{"a_2", []string{"Matrícula_2025"}},
		{"e%o", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.search, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "http://example.com/v1/transactions?title="+url.QueryEscape(tt.search), nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)

			titles := make([]string, 0, len(response.Data))
			for _, transaction := range response.Data {
				titles = append(titles, transaction.Title)
			}
			assert.ElementsMatch(t, tt.expected, titles)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsListInvalidQuery() {
	for _, query := range []string{"?month=13", "?year=1999", "?status=LATE", "?type=TRANSFER", "?category=not-a-uuid", "?recurrence=42", "?limit=101"} {
		r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions"+query, nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	transaction := suite.createTestTransaction(suite.T(), map[string]any{})
	other := suite.createTestUser(suite.T(), v1.UserCreate{})

	r := suite.requestAs(suite.T(), other.Data.Token, http.MethodDelete, transaction.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodGet, transaction.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// Deleting a single installment keeps the rest of the recurrence.
func (suite *TestSuiteStandard) TestTransactionsDeleteInstallment() {
	recurrence := suite.createTestRecurrence(suite.T(), map[string]any{})

	r := suite.request(suite.T(), http.MethodDelete, recurrence.Data.Transactions[0].Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	transactions := suite.installmentsOf(recurrence.Data.ID)
	suite.Require().Len(transactions, 11)
	suite.Assert().Equal(2, transactions[0].InstallmentNumber)
}

func (suite *TestSuiteStandard) TestTransactionsUpdateSingle() {
	recurrence := suite.createTestRecurrence(suite.T(), map[string]any{})
	target := recurrence.Data.Transactions[4]

	response := suite.patchTransaction(suite.T(), target.Links.Self, map[string]any{"status": models.Paid}, http.StatusOK)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(models.Paid, response.Data.Status)

	for _, transaction := range suite.installmentsOf(recurrence.Data.ID) {
		if transaction.ID == target.ID {
			continue
		}
		suite.Assert().Equal(models.Pending, transaction.Status, "Installment %d was updated", transaction.InstallmentNumber)
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdateFuture() {
	recurrence := suite.createTestRecurrence(suite.T(), map[string]any{})
	target := recurrence.Data.Transactions[4]

	response := suite.patchTransaction(suite.T(), target.Links.Self+"?scope=FUTURE", map[string]any{"amount": "1300.00"}, http.StatusOK)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(target.ID, response.Data.ID)
	suite.Assert().True(test.Decimal("1300").Equal(response.Data.Amount), "Amount is %s", response.Data.Amount)
	suite.Require().NotNil(response.Data.Recurrence)

	for _, transaction := range suite.installmentsOf(recurrence.Data.ID) {
		expected := test.Decimal("1250")
		if transaction.InstallmentNumber >= 5 {
			expected = test.Decimal("1300")
		}

		suite.Assert().True(expected.Equal(transaction.Amount), "Installment %d has amount %s, expected %s", transaction.InstallmentNumber, transaction.Amount, expected)
		suite.Assert().Equal(fmt.Sprintf("Aluguel - %d/12", transaction.InstallmentNumber), transaction.Title)
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdateAll() {
	recurrence := suite.createTestRecurrence(suite.T(), map[string]any{})
	leisure := suite.category("Lazer")

	response := suite.patchTransaction(suite.T(), recurrence.Data.Transactions[6].Links.Self+"?scope=ALL", map[string]any{
		"categoryId": leisure.ID,
		"type":       models.Inflow,
	}, http.StatusOK)
	suite.Require().NotNil(response.Data.Category)
	suite.Assert().Equal("Lazer", response.Data.Category.Name)

	transactions := suite.installmentsOf(recurrence.Data.ID)
	suite.Require().Len(transactions, 12)
	for _, transaction := range transactions {
		suite.Require().NotNil(transaction.CategoryID)
		suite.Assert().Equal(leisure.ID, *transaction.CategoryID)
		suite.Assert().Equal(models.Inflow, transaction.Type)
	}
}

// Standalone transactions are only updated themselves, whatever the scope.
func (suite *TestSuiteStandard) TestTransactionsUpdateStandaloneScope() {
	first := suite.createTestTransaction(suite.T(), map[string]any{})
	second := suite.createTestTransaction(suite.T(), map[string]any{})

	for _, scope := range []string{"SINGLE", "FUTURE", "ALL"} {
		title := fmt.Sprintf("Feira %s", scope)
		response := suite.patchTransaction(suite.T(), first.Data.Links.Self+"?scope="+scope, map[string]any{"title": title}, http.StatusOK)
		suite.Assert().Equal(title, response.Data.Title)
	}

	r := suite.request(suite.T(), http.MethodGet, second.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Supermercado", response.Data.Title)
}

func (suite *TestSuiteStandard) TestTransactionsUpdateInvalidScope() {
	recurrence := suite.createTestRecurrence(suite.T(), map[string]any{})

	for _, scope := range []string{"SOMETIMES", "future"} {
		response := suite.patchTransaction(suite.T(), recurrence.Data.Transactions[0].Links.Self+"?scope="+scope, map[string]any{"amount": "1"}, http.StatusBadRequest)
		suite.Assert().Nil(response.Data)
		suite.Require().NotNil(response.Error)
		suite.Assert().Equal("the scope must be one of SINGLE, FUTURE, ALL", *response.Error)
	}

	for _, transaction := range suite.installmentsOf(recurrence.Data.ID) {
		suite.Assert().True(test.Decimal("1250").Equal(transaction.Amount))
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdateClearCategory() {
	transaction := suite.createTestTransaction(suite.T(), map[string]any{"categoryId": suite.category("Compras").ID})
	suite.Require().NotNil(transaction.Data.CategoryID)

	// Fields that are not in the body are left alone
	response := suite.patchTransaction(suite.T(), transaction.Data.Links.Self, map[string]any{"status": models.Paid}, http.StatusOK)
	suite.Require().NotNil(response.Data.CategoryID)

	response = suite.patchTransaction(suite.T(), transaction.Data.Links.Self, `{"categoryId": null}`, http.StatusOK)
	suite.Assert().Nil(response.Data.CategoryID)
	suite.Assert().Nil(response.Data.Category)
	suite.Assert().Equal(models.Paid, response.Data.Status)
}

func (suite *TestSuiteStandard) TestTransactionsUpdateEmptyPatch() {
	transaction := suite.createTestTransaction(suite.T(), map[string]any{})

	response := suite.patchTransaction(suite.T(), transaction.Data.Links.Self, "", http.StatusBadRequest)
	suite.Assert().Nil(response.Data)

	response = suite.patchTransaction(suite.T(), transaction.Data.Links.Self, "{}", http.StatusOK)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(transaction.Data.Title, response.Data.Title)
	suite.Assert().True(transaction.Data.Amount.Equal(response.Data.Amount))
	suite.Assert().Equal(transaction.Data.Date, response.Data.Date)
	suite.Assert().Equal(transaction.Data.Status, response.Data.Status)
}

func (suite *TestSuiteStandard) TestTransactionsUpdateErrors() {
	transaction := suite.createTestTransaction(suite.T(), map[string]any{})
	other := suite.createTestUser(suite.T(), v1.UserCreate{})

	tests := []struct {
		name   string
		token  string
		url    string
		body   any
		status int
	}{
		{"Other user", other.Data.Token, transaction.Data.Links.Self, map[string]any{"amount": "1"}, http.StatusNotFound},
		{"Unknown ID", suite.token, fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), map[string]any{"amount": "1"}, http.StatusNotFound},
		{"Invalid ID", suite.token, "http://example.com/v1/transactions/not-a-uuid", map[string]any{"amount": "1"}, http.StatusBadRequest},
		{"Unknown category", suite.token, transaction.Data.Links.Self, map[string]any{"categoryId": uuid.New()}, http.StatusNotFound},
		{"Negative amount", suite.token, transaction.Data.Links.Self, map[string]any{"amount": "-1"}, http.StatusBadRequest},
		{"Empty title", suite.token, transaction.Data.Links.Self, map[string]any{"title": ""}, http.StatusBadRequest},
		{"Blank title", suite.token, transaction.Data.Links.Self, map[string]any{"title": "   "}, http.StatusBadRequest},
		{"Invalid status", suite.token, transaction.Data.Links.Self, map[string]any{"status": "LATE"}, http.StatusBadRequest},
		{"Broken JSON", suite.token, transaction.Data.Links.Self, `{"amount": `, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.requestAs(t, tt.token, http.MethodPatch, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TransactionResponse
			test.DecodeResponse(t, &r, &response)
			assert.Nil(t, response.Data)
			assert.NotNil(t, response.Error)
		})
	}

	// Nothing was changed by the failed requests
	r := suite.request(suite.T(), http.MethodGet, transaction.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Supermercado", response.Data.Title)
	suite.Assert().True(test.Decimal("154.37").Equal(response.Data.Amount))
}

func (suite *TestSuiteStandard) TestTransactionsDatabaseError() {
	suite.CloseDB()

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
