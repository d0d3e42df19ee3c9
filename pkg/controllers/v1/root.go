package v1

import (
	"net/http"

	"github.com/bahtledger/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Accounts     string `json:"accounts" example:"https://example.com/api/v1/accounts"`         // URL of Account collection endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // URL of Transaction collection endpoint
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets"`           // URL of Budget endpoint
	Reports      string `json:"reports" example:"https://example.com/api/v1/reports"`           // URL of saved Report collection endpoint
	Import       string `json:"import" example:"https://example.com/api/v1/import/accounts"`    // URL of the chart of accounts import endpoint
	Export       string `json:"export" example:"https://example.com/api/v1/export/accounts"`    // URL of the account export endpoint
}

// GetRoot returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func GetRoot(c *gin.Context) {
	url := baseURL(c)

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Accounts:     url + "/v1/accounts",
			Transactions: url + "/v1/transactions",
			Budgets:      url + "/v1/budgets",
			Reports:      url + "/v1/reports",
			Import:       url + "/v1/import/accounts",
			Export:       url + "/v1/export/accounts",
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
