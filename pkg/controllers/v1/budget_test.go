package v1_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/bahtledger/backend/internal/types"
	v1 "github.com/bahtledger/backend/pkg/controllers/v1"
	"github.com/bahtledger/backend/pkg/models"
	"github.com/bahtledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetsSet() {
	first := suite.setBudget(suite.T(), "2025-10", "Food & Dining", 500)
	second := suite.setBudget(suite.T(), "2025-10", "Food & Dining", 700)

	assert.Equal(suite.T(), first.ID, second.ID, "Setting a budget twice must update it")
	assert.Equal(suite.T(), "2025-10", second.Period)
	assert.True(suite.T(), decimal.NewFromInt(700).Equal(second.Amount))

	suite.setBudget(suite.T(), "2025-10", "Bills", 300)
	suite.setBudget(suite.T(), "2025-11", "Bills", 350)

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?period=2025-10", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	assert.Equal(suite.T(), "Bills", response.Data[0].Category)
	assert.Equal(suite.T(), "Food & Dining", response.Data[1].Category)
}

func (suite *TestSuiteStandard) TestBudgetsDefaultPeriod() {
	current := types.PeriodOf(time.Now()).String()

	r := suite.request(suite.T(), http.MethodPut, "http://example.com/v1/budgets", v1.BudgetEditable{Category: "Fun", Amount: decimal.NewFromInt(50)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var budget v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &budget)
	assert.Equal(suite.T(), current, budget.Data.Period)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", nil)
	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	assert.Equal(suite.T(), current, response.Data[0].Period)
}

func (suite *TestSuiteStandard) TestBudgetsFail() {
	tests := []struct {
		name    string
		method  string
		url     string
		body    any
		message string
	}{
		{"Invalid period on GET", http.MethodGet, "http://example.com/v1/budgets?period=2025-1", nil, models.ErrInvalidPeriod.Error()},
		{"Invalid period on PUT", http.MethodPut, "http://example.com/v1/budgets?period=October", v1.BudgetEditable{Category: "Fun", Amount: decimal.NewFromInt(50)}, models.ErrInvalidPeriod.Error()},
		{"Empty category", http.MethodPut, "http://example.com/v1/budgets?period=2025-10", v1.BudgetEditable{Category: " ", Amount: decimal.NewFromInt(50)}, models.ErrCategoryEmpty.Error()},
		{"Empty body", http.MethodPut, "http://example.com/v1/budgets?period=2025-10", "", "request body must not be empty"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, tt.method, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.message)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	r := suite.request(suite.T(), http.MethodOptions, "http://example.com/v1/budgets", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, PUT", r.Header().Get("allow"))
}
