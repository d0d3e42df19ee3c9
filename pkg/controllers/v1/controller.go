// Package v1 implements the v1 HTTP API of the ledger.
package v1

import (
	"github.com/bahtledger/backend/internal/report"
	"github.com/bahtledger/backend/pkg/httputil"
	"github.com/bahtledger/backend/pkg/ledger"
	"github.com/bahtledger/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// Controller holds the dependencies of all v1 handlers.
type Controller struct {
	Ledger   *ledger.Ledger
	Renderer report.Renderer
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)

	co.RegisterAccountRoutes(r.Group("/accounts"))
	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterReportRoutes(r.Group("/reports"))
	co.RegisterImportRoutes(r.Group("/import"))
	co.RegisterExportRoutes(r.Group("/export"))
}

func status(err error) int {
	return httputil.Status(err)
}

// errorMessage returns the message for the Error field of a response.
func errorMessage(c *gin.Context, err error) *string {
	s := httputil.ErrorMessage(c, err)
	return &s
}

// baseURL returns the external URL of the API.
func baseURL(c *gin.Context) string {
	return c.GetString(string(models.DBContextURL))
}
