package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/bahtledger/backend/internal/export"
	"github.com/bahtledger/backend/pkg/httputil"
	"github.com/bahtledger/backend/pkg/ledger"
	"github.com/gin-gonic/gin"
)

// QueryExport is the query string for the transaction export.
type QueryExport struct {
	DateFrom string `form:"dateFrom" binding:"omitempty,isodate" example:"2025-01-01"` // Only include transactions on or after this date
	DateTo   string `form:"dateTo" binding:"omitempty,isodate" example:"2025-12-31"`   // Only include transactions on or before this date
}

// RegisterExportRoutes registers the routes for exports with
// the RouterGroup that is passed.
func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/accounts", OptionsExport)
	r.GET("/accounts", co.ExportAccounts)
	r.OPTIONS("/transactions", OptionsExport)
	r.GET("/transactions", co.ExportTransactions)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export/accounts [options]
// @Router			/v1/export/transactions [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// csvAttachment sends the CSV as a file download.
func csvAttachment(c *gin.Context, name string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s-%s.csv", name, time.Now().Format(time.DateOnly)))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// @Summary		Export accounts
// @Description	Exports all accounts as CSV, ordered by name
// @Tags			Export
// @Produce		text/csv
// @Success		200
// @Failure		500	{object}	httputil.Error
// @Router			/v1/export/accounts [get]
func (co Controller) ExportAccounts(c *gin.Context) {
	accounts, err := co.Ledger.Accounts(c.Request.Context(), ledger.AccountFilter{Status: "*"})
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	var b bytes.Buffer
	err = export.WriteAccounts(&b, accounts)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	csvAttachment(c, "accounts", b.Bytes())
}

// @Summary		Export transactions
// @Description	Exports transactions as CSV, oldest first
// @Tags			Export
// @Produce		text/csv
// @Success		200
// @Failure		400			{object}	httputil.Error
// @Failure		500			{object}	httputil.Error
// @Param			dateFrom	query		string	false	"Only include transactions on or after this date"
// @Param			dateTo		query		string	false	"Only include transactions on or before this date"
// @Router			/v1/export/transactions [get]
func (co Controller) ExportTransactions(c *gin.Context) {
	var query QueryExport
	err := httputil.BindQuery(c, &query)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	transactions, err := co.Ledger.AllTransactions(c.Request.Context(), query.DateFrom, query.DateTo)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	var b bytes.Buffer
	err = export.WriteTransactions(&b, transactions)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	csvAttachment(c, "transactions", b.Bytes())
}
