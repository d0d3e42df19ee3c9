package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/bahtledger/backend/pkg/controllers/v1"
	"github.com/bahtledger/backend/pkg/ledger"
	"github.com/bahtledger/backend/pkg/models"
	"github.com/bahtledger/backend/test"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func (suite *TestSuiteStandard) TestReportsActuals() {
	suite.scenario(suite.T())

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/reports/actuals?period=2025-10", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ActualsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	expected := []ledger.CategoryActual{
		{Category: "Bills", Actual: decimal.NewFromInt(300)},
		{Category: "Food & Dining", Actual: decimal.NewFromInt(200)},
	}
	assert.Empty(suite.T(), cmp.Diff(expected, response.Data, decimalComparer))

	// No spending in another period
	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/reports/actuals?period=2025-09", nil)
	test.DecodeResponse(suite.T(), &r, &response)
	for _, actual := range response.Data {
		assert.True(suite.T(), actual.Actual.IsZero(), "%s has spending in September", actual.Category)
	}
}

func (suite *TestSuiteStandard) TestReportsBudgetVsActual() {
	suite.scenario(suite.T())
	suite.setBudget(suite.T(), "2025-10", "Food & Dining", 300)
	suite.setBudget(suite.T(), "2025-10", "Bills", 250)

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/reports/budget-vs-actual?period=2025-10", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetVsActualResponse
	test.DecodeResponse(suite.T(), &r, &response)

	pctBills := decimal.NewFromInt(120)
	pctFood := decimal.RequireFromString("66.67")
	expected := []ledger.VarianceRow{
		{Category: "Bills", Budget: decimal.NewFromInt(250), Actual: decimal.NewFromInt(300), Variance: decimal.NewFromInt(-50), PctOfBudget: &pctBills},
		{Category: "Food & Dining", Budget: decimal.NewFromInt(300), Actual: decimal.NewFromInt(200), Variance: decimal.NewFromInt(100), PctOfBudget: &pctFood},
	}

	assert.Equal(suite.T(), "2025-10", response.Data.Period)
	assert.Empty(suite.T(), cmp.Diff(expected, response.Data.Rows, decimalComparer))
	assert.Contains(suite.T(), response.Data.Markdown, "# Budget vs. actual: October 2025")
	assert.Contains(suite.T(), response.Data.Markdown, "| Food & Dining | $300.00 | $200.00 | $100.00 | 66.67% |")
}

func (suite *TestSuiteStandard) TestReportsSave() {
	suite.scenario(suite.T())
	suite.setBudget(suite.T(), "2025-10", "Food & Dining", 300)

	tests := []struct {
		name       string
		url        string
		reportName string
		reportType models.ReportType
		content    string
	}{
		{"Budget vs. actual", "http://example.com/v1/reports/budget-vs-actual?period=2025-10", "Budget vs. actual 2025-10", models.ReportTypeBudgetVsActual, "# Budget vs. actual: October 2025"},
		{"Overview", "http://example.com/v1/reports/overview", "Overview", models.ReportTypeOverview, "| **Net worth** | **$6,100.00** |"},
		{"Overview with date and name", "http://example.com/v1/reports/overview?dateTo=2025-09-30&name=Before%20October", "Before October", models.ReportTypeOverview, "# Overview as of 2025-09-30"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, tt.url, nil)
			test.AssertHTTPStatus(t, &r, http.StatusCreated)

			var saved v1.ReportResponse
			test.DecodeResponse(t, &r, &saved)
			assert.Equal(t, tt.reportName, saved.Data.Name)
			assert.Equal(t, tt.reportType, saved.Data.Type)
			assert.Contains(t, saved.Data.Content, tt.content)

			r = suite.request(t, http.MethodGet, saved.Data.Links.Self, nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var fetched v1.ReportResponse
			test.DecodeResponse(t, &r, &fetched)
			assert.Equal(t, saved.Data.Content, fetched.Data.Content)
		})
	}

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/reports", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.ReportListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 3)
	assert.Equal(suite.T(), "Before October", list.Data[0].Name, "Reports must be listed newest first")
	for _, report := range list.Data {
		assert.Empty(suite.T(), report.Content, "The list must not contain the content")
	}
}

func (suite *TestSuiteStandard) TestReportsGetFails() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Not found", "4711", http.StatusNotFound},
		{"Invalid ID", "latest", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "http://example.com/v1/reports/"+tt.id, nil)
			test.AssertHTTPStatus(t, &r, tt.status)

			r = suite.request(t, http.MethodOptions, "http://example.com/v1/reports/"+tt.id, nil)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestReportsTotalsByType() {
	suite.scenario(suite.T())

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/reports/totals-by-type", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TotalsByTypeResponse
	test.DecodeResponse(suite.T(), &r, &response)

	expected := []ledger.TypeTotal{
		{Type: models.AccountTypeAsset, Total: decimal.NewFromInt(5000)},
		{Type: models.AccountTypeExpense, Total: decimal.NewFromInt(500)},
	}
	assert.Empty(suite.T(), cmp.Diff(expected, response.Data, decimalComparer))
}

func (suite *TestSuiteStandard) TestReportsOverview() {
	suite.scenario(suite.T())

	tests := []struct {
		dateTo      string
		assets      int64
		liabilities int64
		netWorth    int64
	}{
		{"", 5800, -300, 6100},
		{"2025-10-10", 5800, 0, 5800},
		{"2025-09-30", 1000, 0, 1000},
	}

	for _, tt := range tests {
		suite.T().Run(fmt.Sprintf("dateTo %q", tt.dateTo), func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "http://example.com/v1/reports/overview?dateTo="+tt.dateTo, nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.OverviewResponse
			test.DecodeResponse(t, &r, &response)
			assert.True(t, decimal.NewFromInt(tt.assets).Equal(response.Data.TotalAssets), "assets: %s", response.Data.TotalAssets)
			assert.True(t, decimal.NewFromInt(tt.liabilities).Equal(response.Data.TotalLiabilities), "liabilities: %s", response.Data.TotalLiabilities)
			assert.True(t, decimal.NewFromInt(tt.netWorth).Equal(response.Data.NetWorth), "net worth: %s", response.Data.NetWorth)
			assert.Equal(t, tt.dateTo, response.Data.DateTo)
			assert.NotEmpty(t, response.Data.Markdown)
		})
	}
}

func (suite *TestSuiteStandard) TestReportsFail() {
	tests := []struct {
		name   string
		method string
		url    string
	}{
		{"Actuals with invalid period", http.MethodGet, "http://example.com/v1/reports/actuals?period=10-2025"},
		{"Budget vs. actual with invalid period", http.MethodGet, "http://example.com/v1/reports/budget-vs-actual?period=2025-00"},
		{"Saving budget vs. actual with invalid period", http.MethodPost, "http://example.com/v1/reports/budget-vs-actual?period=2025"},
		{"Overview with invalid date", http.MethodGet, "http://example.com/v1/reports/overview?dateTo=2025-10"},
		{"Saving overview with invalid date", http.MethodPost, "http://example.com/v1/reports/overview?dateTo=tomorrow"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, tt.method, tt.url, nil)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}

	// Nothing was saved
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/reports", nil)
	var list v1.ReportListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Empty(suite.T(), list.Data)
}

func (suite *TestSuiteStandard) TestReportsOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/v1/reports", "OPTIONS, GET"},
		{"/v1/reports/actuals", "OPTIONS, GET"},
		{"/v1/reports/totals-by-type", "OPTIONS, GET"},
		{"/v1/reports/budget-vs-actual", "OPTIONS, GET, POST"},
		{"/v1/reports/overview", "OPTIONS, GET, POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := suite.request(t, http.MethodOptions, "http://example.com"+tt.path, nil)
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestReportsDBClosed() {
	suite.CloseDB()

	tests := []struct {
		name   string
		method string
		url    string
	}{
		{"List", http.MethodGet, "http://example.com/v1/reports"},
		{"Actuals", http.MethodGet, "http://example.com/v1/reports/actuals?period=2025-10"},
		{"Budget vs. actual", http.MethodGet, "http://example.com/v1/reports/budget-vs-actual?period=2025-10"},
		{"Totals by type", http.MethodGet, "http://example.com/v1/reports/totals-by-type"},
		{"Overview", http.MethodGet, "http://example.com/v1/reports/overview"},
		{"Save overview", http.MethodPost, "http://example.com/v1/reports/overview"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, tt.method, tt.url, nil)
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), models.ErrGeneral.Error())
		})
	}
}
