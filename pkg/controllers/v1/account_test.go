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

func (suite *TestSuiteStandard) TestAccountsCreate() {
	a := suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "  Bank - Checking ", Type: "asset"})

	assert.Equal(suite.T(), "Bank - Checking", a.Name)
	assert.Equal(suite.T(), models.AccountTypeAsset, a.Type)
	assert.Equal(suite.T(), models.AccountStatusActive, a.Status)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/accounts/%d", a.ID), a.Links.Self)
	assert.Equal(suite.T(), a.Links.Self+"/balance", a.Links.Balance)
}

func (suite *TestSuiteStandard) TestAccountsCreateFails() {
	suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "Cash", Type: "asset"})

	tests := []struct {
		name    string
		body    any
		status  int
		message string
	}{
		{"Empty name", v1.AccountEditable{Name: " ", Type: "asset"}, http.StatusBadRequest, "name must not be empty"},
		{"Invalid type", v1.AccountEditable{Name: "Wallet", Type: "wallet"}, http.StatusBadRequest, "account type must be one of"},
		{"Duplicate name", v1.AccountEditable{Name: "Cash", Type: "expense"}, http.StatusBadRequest, "the account name must be unique"},
		{"Broken body", `{ "name": 2 }`, http.StatusBadRequest, "name must be of type string"},
		{"Empty body", "", http.StatusBadRequest, "request body must not be empty"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, "http://example.com/v1/accounts", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.AccountResponse
			test.DecodeResponse(t, &r, &response)
			assert.Nil(t, response.Data)
			assert.Contains(t, *response.Error, tt.message)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsList() {
	suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "Bank - Savings", Type: "asset"})
	suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "Bank - Checking", Type: "asset"})
	suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "Salary", Type: "income"})
	suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "Old Bank", Type: "asset", Status: "closed"})

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"All active", "", []string{"Bank - Checking", "Bank - Savings", "Salary"}},
		{"Type", "type=income", []string{"Salary"}},
		{"Glob", "match=Bank%20-%20*", []string{"Bank - Checking", "Bank - Savings"}},
		{"Status", "status=closed", []string{"Old Bank"}},
		{"All status", "status=*&type=asset", []string{"Bank - Checking", "Bank - Savings", "Old Bank"}},
		{"No match", "match=Credit*", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "http://example.com/v1/accounts?"+tt.query, nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.AccountListResponse
			test.DecodeResponse(t, &r, &response)

			names := make([]string, 0)
			for _, a := range response.Data {
				names = append(names, a.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsListInvalidType() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/accounts?type=savings", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAccountsGet() {
	a := suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "Cash"})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing", fmt.Sprint(a.ID), http.StatusOK},
		{"Not found", "4711", http.StatusNotFound},
		{"Zero", "0", http.StatusBadRequest},
		{"Not a number", "cash", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "http://example.com/v1/accounts/"+tt.id, nil)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusOK {
				var response v1.AccountResponse
				test.DecodeResponse(t, &r, &response)
				assert.Equal(t, a.ID, response.Data.ID)
				assert.Equal(t, a.Name, response.Data.Name)
				assert.Equal(t, a.Links, response.Data.Links)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsBalance() {
	cash, salary, food, card, _ := suite.scenario(suite.T())

	tests := []struct {
		name     string
		id       uint
		dateTo   string
		expected int64
	}{
		{"Cash", cash.ID, "", 5800},
		{"Salary", salary.ID, "", -5000},
		{"Food", food.ID, "", 200},
		{"Credit card", card.ID, "", -300},
		{"Cash before salary", cash.ID, "2025-09-30", 1000},
		{"Cash on salary day", cash.ID, "2025-10-01", 6000},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			url := fmt.Sprintf("http://example.com/v1/accounts/%d/balance", tt.id)
			if tt.dateTo != "" {
				url += "?dateTo=" + tt.dateTo
			}

			r := suite.request(t, http.MethodGet, url, nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BalanceResponse
			test.DecodeResponse(t, &r, &response)
			assert.True(t, decimal.NewFromInt(tt.expected).Equal(response.Data.Balance), "Balance is %s, expected %d", response.Data.Balance, tt.expected)
			assert.Equal(t, tt.id, response.Data.AccountID)
			assert.Equal(t, tt.dateTo, response.Data.DateTo)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsBalanceFails() {
	a := suite.createTestAccount(suite.T(), v1.AccountEditable{})

	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"Unknown account", "http://example.com/v1/accounts/4711/balance", http.StatusNotFound},
		{"Invalid date", fmt.Sprintf("http://example.com/v1/accounts/%d/balance?dateTo=2025-10", a.ID), http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, tt.url, nil)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.BalanceResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsTransactions() {
	cash, _, food, _, _ := suite.scenario(suite.T())

	tests := []struct {
		name     string
		id       uint
		query    string
		expected []string
	}{
		{"Cash, newest first", cash.ID, "", []string{"Groceries", "October salary"}},
		{"Food", food.ID, "", []string{"Groceries"}},
		{"Date bound", cash.ID, "?dateTo=2025-10-02", []string{"October salary"}},
		{"Limit", cash.ID, "?limit=1", []string{"Groceries"}},
		{"Offset", cash.ID, "?limit=1&offset=1", []string{"October salary"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts/%d/transactions%s", tt.id, tt.query), nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)

			notes := make([]string, 0)
			for _, transaction := range response.Data {
				notes = append(notes, transaction.Notes)
			}
			assert.Equal(t, tt.expected, notes)
			assert.Equal(t, len(tt.expected), response.Pagination.Count)
		})
	}

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/accounts/4711/transactions", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAccountsOpeningBalances() {
	a := suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "Bank"})
	url := fmt.Sprintf("http://example.com/v1/accounts/%d/opening-balances", a.ID)

	suite.setOpeningBalance(suite.T(), a.ID, 100, "2025-02-01")
	suite.setOpeningBalance(suite.T(), a.ID, 50.25, "2025-01-01")

	r := suite.request(suite.T(), http.MethodGet, url, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.OpeningBalanceListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	assert.Equal(suite.T(), "2025-01-01", response.Data[0].Date)
	assert.True(suite.T(), decimal.RequireFromString("50.25").Equal(response.Data[0].Amount))

	// Opening balances add up
	r = suite.request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts/%d/balance", a.ID), nil)
	var balance v1.BalanceResponse
	test.DecodeResponse(suite.T(), &r, &balance)
	assert.True(suite.T(), decimal.RequireFromString("150.25").Equal(balance.Data.Balance))
}

func (suite *TestSuiteStandard) TestAccountsOpeningBalancesFail() {
	a := suite.createTestAccount(suite.T(), v1.AccountEditable{Name: "Bank"})

	tests := []struct {
		name   string
		id     uint
		body   v1.OpeningBalanceEditable
		status int
	}{
		{"Zero amount", a.ID, v1.OpeningBalanceEditable{Amount: decimal.Zero, Date: "2025-01-01"}, http.StatusBadRequest},
		{"Negative amount", a.ID, v1.OpeningBalanceEditable{Amount: decimal.NewFromInt(-5), Date: "2025-01-01"}, http.StatusBadRequest},
		{"Invalid date", a.ID, v1.OpeningBalanceEditable{Amount: decimal.NewFromInt(5), Date: "01/01/2025"}, http.StatusBadRequest},
		{"Unknown account", 4711, v1.OpeningBalanceEditable{Amount: decimal.NewFromInt(5), Date: "2025-01-01"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, fmt.Sprintf("http://example.com/v1/accounts/%d/opening-balances", tt.id), tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/accounts/4711/opening-balances", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAccountsDefaults() {
	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/accounts/defaults", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.AddedResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), 60, response.Data.Added)

	// Existing accounts are skipped
	r = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/accounts/defaults", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), 0, response.Data.Added)
}

func (suite *TestSuiteStandard) TestAccountsOptions() {
	a := suite.createTestAccount(suite.T(), v1.AccountEditable{})

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"List", "/v1/accounts", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Defaults", "/v1/accounts/defaults", http.StatusNoContent, "OPTIONS, POST"},
		{"Detail", fmt.Sprintf("/v1/accounts/%d", a.ID), http.StatusNoContent, "OPTIONS, GET"},
		{"Balance", fmt.Sprintf("/v1/accounts/%d/balance", a.ID), http.StatusNoContent, "OPTIONS, GET"},
		{"Opening balances", fmt.Sprintf("/v1/accounts/%d/opening-balances", a.ID), http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Not found", "/v1/accounts/4711", http.StatusNotFound, ""},
		{"Invalid ID", "/v1/accounts/abc", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodOptions, "http://example.com"+tt.path, nil)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

// TestAccountsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestAccountsDBClosed() {
	suite.CloseDB()

	tests := []struct {
		name   string
		method string
		url    string
		body   any
	}{
		{"Create", http.MethodPost, "http://example.com/v1/accounts", v1.AccountEditable{Name: "Cash", Type: "asset"}},
		{"List", http.MethodGet, "http://example.com/v1/accounts", nil},
		{"Get", http.MethodGet, "http://example.com/v1/accounts/1", nil},
		{"Defaults", http.MethodPost, "http://example.com/v1/accounts/defaults", nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, tt.method, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), models.ErrGeneral.Error())
		})
	}
}
