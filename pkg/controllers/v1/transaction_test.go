package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/bahtledger/backend/pkg/controllers/v1"
	"github.com/bahtledger/backend/pkg/models"
	"github.com/bahtledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	cash := suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "Cash", Type: "asset"})
	food := suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "Food", Type: "expense"})

	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:            "2025-10-05",
		Amount:          decimal.RequireFromString("12.34"),
		DebitAccountID:  food.ID,
		CreditAccountID: cash.ID,
		Notes:           " Lunch ",
	})

	assert.Equal(suite.T(), "2025-10-05", transaction.Date)
	assert.True(suite.T(), decimal.RequireFromString("12.34").Equal(transaction.Amount))
	assert.Equal(suite.T(), "Lunch", transaction.Notes)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/transactions/%d", transaction.ID), transaction.Links.Self)
	assert.Equal(suite.T(), food.Links.Self, transaction.Links.DebitAccount)
	assert.Equal(suite.T(), cash.Links.Self, transaction.Links.CreditAccount)

	r := suite.request(suite.T(), http.MethodGet, transaction.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), transaction.ID, response.Data.ID)
	assert.Equal(suite.T(), transaction.Notes, response.Data.Notes)
}

func (suite *TestSuiteStandard) TestTransactionsCreateFails() {
	cash := suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "Cash", Type: "asset"})
	food := suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "Food", Type: "expense"})

	tests := []struct {
		name    string
		body    any
		status  int
		message string
	}{
		{"Same account", v1.TransactionEditable{Date: "2025-10-05", Amount: decimal.NewFromInt(1), DebitAccountID: cash.ID, CreditAccountID: cash.ID}, http.StatusBadRequest, models.ErrSameAccount.Error()},
		{"Unknown debit account", v1.TransactionEditable{Date: "2025-10-05", Amount: decimal.NewFromInt(1), DebitAccountID: 4711, CreditAccountID: cash.ID}, http.StatusNotFound, models.ErrAccountNotFound.Error()},
		{"Unknown credit account", v1.TransactionEditable{Date: "2025-10-05", Amount: decimal.NewFromInt(1), DebitAccountID: food.ID, CreditAccountID: 4711}, http.StatusNotFound, models.ErrAccountNotFound.Error()},
		{"Invalid date", v1.TransactionEditable{Date: "2025-13-05", Amount: decimal.NewFromInt(1), DebitAccountID: food.ID, CreditAccountID: cash.ID}, http.StatusBadRequest, models.ErrInvalidDate.Error()},
		{"Zero amount", v1.TransactionEditable{Date: "2025-10-05", Amount: decimal.Zero, DebitAccountID: food.ID, CreditAccountID: cash.ID}, http.StatusBadRequest, models.ErrAmountNotPositive.Error()},
		{"Negative amount", v1.TransactionEditable{Date: "2025-10-05", Amount: decimal.NewFromInt(-10), DebitAccountID: food.ID, CreditAccountID: cash.ID}, http.StatusBadRequest, models.ErrAmountNotPositive.Error()},
		{"Amount not a number", `{ "date": "2025-10-05", "amount": "ten", "debitAccountId": 1, "creditAccountId": 2 }`, http.StatusBadRequest, "invalid input"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TransactionResponse
			test.DecodeResponse(t, &r, &response)
			assert.Nil(t, response.Data)
			assert.Contains(t, *response.Error, tt.message)
		})
	}

	// Nothing was stored
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", nil)
	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Empty(suite.T(), list.Data)
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	cash, _, food, card, _ := suite.scenario(suite.T())
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{Date: "2025-10-06", Amount: decimal.NewFromInt(20), DebitAccountID: food.ID, CreditAccountID: cash.ID, Notes: "Snacks"})

	r := suite.request(suite.T(), http.MethodPatch, transaction.Links.Self, map[string]any{
		"amount":          "25.50",
		"creditAccountId": card.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), decimal.RequireFromString("25.5").Equal(response.Data.Amount))
	assert.Equal(suite.T(), card.ID, response.Data.CreditAccountID)
	assert.Equal(suite.T(), "Snacks", response.Data.Notes, "Notes must not change when omitted")
	assert.Equal(suite.T(), "2025-10-06", response.Data.Date, "Date must not change when omitted")

	// Cash is back to its balance before the snacks
	r = suite.request(suite.T(), http.MethodGet, cash.Links.Balance, nil)
	var balance v1.BalanceResponse
	test.DecodeResponse(suite.T(), &r, &balance)
	assert.True(suite.T(), decimal.NewFromInt(5800).Equal(balance.Data.Balance))
}

func (suite *TestSuiteStandard) TestTransactionsUpdateFails() {
	cash, _, food, _, _ := suite.scenario(suite.T())
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(20), DebitAccountID: food.ID, CreditAccountID: cash.ID})

	tests := []struct {
		name   string
		url    string
		body   any
		status int
	}{
		{"Same account", transaction.Links.Self, map[string]any{"debitAccountId": cash.ID}, http.StatusBadRequest},
		{"Unknown account", transaction.Links.Self, map[string]any{"debitAccountId": 4711}, http.StatusNotFound},
		{"Invalid date", transaction.Links.Self, map[string]any{"date": "yesterday"}, http.StatusBadRequest},
		{"Zero amount", transaction.Links.Self, map[string]any{"amount": 0}, http.StatusBadRequest},
		{"Broken body", transaction.Links.Self, `{ "notes": 5 }`, http.StatusBadRequest},
		{"Unknown transaction", "http://example.com/v1/transactions/4711", map[string]any{"notes": "Lost"}, http.StatusNotFound},
		{"Invalid ID", "http://example.com/v1/transactions/abc", map[string]any{"notes": "Lost"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPatch, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	// The transaction is unchanged
	r := suite.request(suite.T(), http.MethodGet, transaction.Links.Self, nil)
	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), food.ID, response.Data.DebitAccountID)
	assert.True(suite.T(), decimal.NewFromInt(20).Equal(response.Data.Amount))
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	cash, _, food, _, _ := suite.scenario(suite.T())
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(20), DebitAccountID: food.ID, CreditAccountID: cash.ID})

	r := suite.request(suite.T(), http.MethodDelete, transaction.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodGet, transaction.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// Deleting again succeeds
	r = suite.request(suite.T(), http.MethodDelete, transaction.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodDelete, "http://example.com/v1/transactions/abc", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsList() {
	cash, salary, food, card, bills := suite.scenario(suite.T())

	tests := []struct {
		name     string
		query    string
		expected []string
		limit    int
	}{
		{"All, newest first", "", []string{"Electricity", "Groceries", "October salary"}, 200},
		{"Source", fmt.Sprintf("source=%d", cash.ID), []string{"Groceries"}, 200},
		{"Destination", fmt.Sprintf("destination=%d", cash.ID), []string{"October salary"}, 200},
		{"Source and destination", fmt.Sprintf("source=%d&destination=%d", card.ID, bills.ID), []string{"Electricity"}, 200},
		{"No match", fmt.Sprintf("source=%d&destination=%d", salary.ID, food.ID), []string{}, 200},
		{"Date range", "dateFrom=2025-10-02&dateTo=2025-10-19", []string{"Groceries"}, 200},
		{"Limit", "limit=2", []string{"Electricity", "Groceries"}, 2},
		{"Offset", "limit=2&offset=2", []string{"October salary"}, 2},
		{"Offset beyond", "offset=10", []string{}, 200},
		{"Largest page", "limit=1000", []string{"Electricity", "Groceries", "October salary"}, 1000},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "http://example.com/v1/transactions?"+tt.query, nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)

			notes := make([]string, 0)
			for _, transaction := range response.Data {
				notes = append(notes, transaction.Notes)
			}
			assert.Equal(t, tt.expected, notes)
			assert.Equal(t, tt.limit, response.Pagination.Limit)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsListFails() {
	tests := []struct {
		name  string
		query string
	}{
		{"Invalid dateFrom", "dateFrom=10/01/2025"},
		{"Invalid dateTo", "dateTo=2025-10"},
		{"Negative limit", "limit=-1"},
		{"Limit above maximum", "limit=1001"},
		{"Source not a number", "source=cash"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "http://example.com/v1/transactions?"+tt.query, nil)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsOptions() {
	cash, _, food, _, _ := suite.scenario(suite.T())
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(20), DebitAccountID: food.ID, CreditAccountID: cash.ID})

	tests := []struct {
		name   string
		url    string
		status int
		allow  string
	}{
		{"List", "http://example.com/v1/transactions", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Detail", transaction.Links.Self, http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"Not found", "http://example.com/v1/transactions/4711", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodOptions, tt.url, nil)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsDBClosed() {
	suite.CloseDB()

	tests := []struct {
		name   string
		method string
		url    string
		body   any
	}{
		{"Create", http.MethodPost, "http://example.com/v1/transactions", v1.TransactionEditable{Date: "2025-10-05", Amount: decimal.NewFromInt(1), DebitAccountID: 1, CreditAccountID: 2}},
		{"List", http.MethodGet, "http://example.com/v1/transactions", nil},
		{"Get", http.MethodGet, "http://example.com/v1/transactions/1", nil},
		{"Update", http.MethodPatch, "http://example.com/v1/transactions/1", map[string]any{"notes": "x"}},
		{"Delete", http.MethodDelete, "http://example.com/v1/transactions/1", nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, tt.method, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), models.ErrGeneral.Error())
		})
	}
}
