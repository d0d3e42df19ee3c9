package v1

import (
	"net/http"

	"github.com/bahtledger/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httputil.Error
// @Failure		404	{object}	httputil.Error
// @Failure		500	{object}	httputil.Error
// @Param			id	path		uint	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	_, err = co.Ledger.Transaction(c.Request.Context(), id)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create transaction
// @Description	Records a transaction debiting one account and crediting another
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: errorMessage(c, err)})
		return
	}

	transaction, err := co.Ledger.AddTransaction(c.Request.Context(), editable.input())
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: errorMessage(c, err)})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &data})
}

// @Summary		List transactions
// @Description	Returns a list of transactions, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	TransactionListResponse
// @Failure		500			{object}	TransactionListResponse
// @Param			source		query		uint	false	"Filter by credited account ID"
// @Param			destination	query		uint	false	"Filter by debited account ID"
// @Param			dateFrom	query		string	false	"Only include transactions on or after this date"
// @Param			dateTo		query		string	false	"Only include transactions on or before this date"
// @Param			offset		query		int		false	"The offset of the first transaction returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of transactions to return. Defaults to 200, at most 1000."
// @Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	var query TransactionQueryFilter
	err := httputil.BindQuery(c, &query)
	if err != nil {
		c.JSON(status(err), TransactionListResponse{Error: errorMessage(c, err)})
		return
	}

	filter := query.filter()
	transactions, err := co.Ledger.SearchTransactions(c.Request.Context(), filter)
	if err != nil {
		c.JSON(status(err), TransactionListResponse{Error: errorMessage(c, err)})
		return
	}

	c.JSON(http.StatusOK, newTransactionList(c, transactions, filter))
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		uint	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: errorMessage(c, err)})
		return
	}

	transaction, err := co.Ledger.Transaction(c.Request.Context(), id)
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: errorMessage(c, err)})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Update transaction
// @Description	Updates a transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		uint				true	"ID of the transaction"
// @Param			transaction	body		TransactionPatch	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: errorMessage(c, err)})
		return
	}

	var patch TransactionPatch
	err = httputil.BindData(c, &patch)
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: errorMessage(c, err)})
		return
	}

	transaction, err := co.Ledger.ModifyTransaction(c.Request.Context(), id, patch.update())
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: errorMessage(c, err)})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction. Deleting a transaction that does not exist succeeds.
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httputil.Error
// @Failure		500	{object}	httputil.Error
// @Param			id	path		uint	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	err = co.Ledger.DeleteTransaction(c.Request.Context(), id)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
