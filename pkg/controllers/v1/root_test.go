package v1_test

import (
	"net/http"

	v1 "github.com/bahtledger/backend/pkg/controllers/v1"
	"github.com/bahtledger/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), v1.Links{
		Accounts:     "http://example.com/v1/accounts",
		Transactions: "http://example.com/v1/transactions",
		Budgets:      "http://example.com/v1/budgets",
		Reports:      "http://example.com/v1/reports",
		Import:       "http://example.com/v1/import/accounts",
		Export:       "http://example.com/v1/export/accounts",
	}, response.Links)

	r = suite.request(suite.T(), http.MethodOptions, "http://example.com/v1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}
