// Package root serves the entrypoint of the API.
package root

import (
	"net/http"

	"github.com/bahtledger/backend/pkg/httputil"
	"github.com/bahtledger/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Links to the endpoints of the ledger
}

// Links lists the service endpoints and the main ledger resources.
type Links struct {
	Docs         string `json:"docs" example:"https://example.com/api/docs/index.html"`        // Swagger API documentation
	Healthz      string `json:"healthz" example:"https://example.com/api/healthz"`             // Health check, 204 when the database is reachable
	Version      string `json:"version" example:"https://example.com/api/version"`             // Version of the backend and the database schema
	Metrics      string `json:"metrics" example:"https://example.com/api/metrics"`             // Prometheus metrics
	V1           string `json:"v1" example:"https://example.com/api/v1"`                       // All v1 endpoints
	Accounts     string `json:"accounts" example:"https://example.com/api/v1/accounts"`         // Chart of accounts
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // Double-entry transactions
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets"`           // Budgets of the current month
	Overview     string `json:"overview" example:"https://example.com/api/v1/reports/overview"` // Assets, liabilities and net worth
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API, linking the service endpoints and the ledger resources
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))
	v1 := url + "/v1"

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Docs:         url + "/docs/index.html",
			Healthz:      url + "/healthz",
			Version:      url + "/version",
			Metrics:      url + "/metrics",
			V1:           v1,
			Accounts:     v1 + "/accounts",
			Transactions: v1 + "/transactions",
			Budgets:      v1 + "/budgets",
			Overview:     v1 + "/reports/overview",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
