package v1

import (
	"net/http"

	"github.com/bahtledger/backend/pkg/httputil"
	"github.com/bahtledger/backend/pkg/importer"
	"github.com/bahtledger/backend/pkg/ledger"
	"github.com/bahtledger/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func (co Controller) RegisterAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAccountList)
		r.GET("", co.GetAccounts)
		r.POST("", co.CreateAccount)
		r.OPTIONS("/defaults", OptionsAccountDefaults)
		r.POST("/defaults", co.CreateDefaultAccounts)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", co.OptionsAccountDetail)
		r.GET("/:id", co.GetAccount)
		r.OPTIONS("/:id/balance", co.OptionsAccountDetail)
		r.GET("/:id/balance", co.GetAccountBalance)
		r.OPTIONS("/:id/transactions", co.OptionsAccountDetail)
		r.GET("/:id/transactions", co.GetAccountTransactions)
		r.OPTIONS("/:id/opening-balances", co.OptionsOpeningBalances)
		r.GET("/:id/opening-balances", co.GetOpeningBalances)
		r.POST("/:id/opening-balances", co.CreateOpeningBalance)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts [options]
func OptionsAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts/defaults [options]
func OptionsAccountDefaults(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httputil.Error
// @Failure		404	{object}	httputil.Error
// @Failure		500	{object}	httputil.Error
// @Param			id	path		uint	true	"ID of the account"
// @Router			/v1/accounts/{id} [options]
func (co Controller) OptionsAccountDetail(c *gin.Context) {
	if _, ok := co.account(c); !ok {
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httputil.Error
// @Failure		404	{object}	httputil.Error
// @Failure		500	{object}	httputil.Error
// @Param			id	path		uint	true	"ID of the account"
// @Router			/v1/accounts/{id}/opening-balances [options]
func (co Controller) OptionsOpeningBalances(c *gin.Context) {
	if _, ok := co.account(c); !ok {
		return
	}

	httputil.OptionsGetPost(c)
}

// account returns the account referenced by the id path parameter.
//
// If it cannot be found, the error response is written and ok is false.
func (co Controller) account(c *gin.Context) (account models.Account, ok bool) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httputil.ErrorHandler(c, err)
		return models.Account{}, false
	}

	account, err = co.Ledger.Account(c.Request.Context(), id)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return models.Account{}, false
	}

	return account, true
}

// @Summary		Create account
// @Description	Creates a new account
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		201		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts [post]
func (co Controller) CreateAccount(c *gin.Context) {
	var editable AccountEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), AccountResponse{Error: errorMessage(c, err)})
		return
	}

	account, err := co.Ledger.CreateAccount(c.Request.Context(), editable.Name, editable.Type, editable.Status)
	if err != nil {
		c.JSON(status(err), AccountResponse{Error: errorMessage(c, err)})
		return
	}

	data := newAccount(c, account)
	c.JSON(http.StatusCreated, AccountResponse{Data: &data})
}

// @Summary		Create default accounts
// @Description	Creates the default chart of accounts. Accounts that already exist are skipped.
// @Tags			Accounts
// @Produce		json
// @Success		201	{object}	AddedResponse
// @Failure		500	{object}	AddedResponse
// @Router			/v1/accounts/defaults [post]
func (co Controller) CreateDefaultAccounts(c *gin.Context) {
	added, err := co.Ledger.BulkImportAccounts(c.Request.Context(), importer.DefaultChart)
	if err != nil {
		c.JSON(status(err), AddedResponse{Error: errorMessage(c, err)})
		return
	}

	c.JSON(http.StatusCreated, AddedResponse{Data: &Added{Added: added}})
}

// @Summary		List accounts
// @Description	Returns a list of accounts, ordered by name
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	AccountListResponse
// @Failure		400		{object}	AccountListResponse
// @Failure		500		{object}	AccountListResponse
// @Param			type	query		string	false	"Filter by account type"
// @Param			status	query		string	false	"Filter by status. Defaults to active, * matches all."
// @Param			match	query		string	false	"Glob pattern for the name, e.g. Bank - *"
// @Router			/v1/accounts [get]
func (co Controller) GetAccounts(c *gin.Context) {
	var filter AccountQueryFilter
	err := httputil.BindQuery(c, &filter)
	if err != nil {
		c.JSON(status(err), AccountListResponse{Error: errorMessage(c, err)})
		return
	}

	accounts, err := co.Ledger.Accounts(c.Request.Context(), ledger.AccountFilter{
		Type:   models.AccountType(filter.Type),
		Status: filter.Status,
		Match:  filter.Match,
	})
	if err != nil {
		c.JSON(status(err), AccountListResponse{Error: errorMessage(c, err)})
		return
	}

	// When there are no resources, we want an empty list, not null
	data := make([]Account, 0, len(accounts))
	for _, account := range accounts {
		data = append(data, newAccount(c, account))
	}

	c.JSON(http.StatusOK, AccountListResponse{Data: data})
}

// @Summary		Get account
// @Description	Returns a specific account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountResponse
// @Failure		400	{object}	httputil.Error
// @Failure		404	{object}	httputil.Error
// @Failure		500	{object}	httputil.Error
// @Param			id	path		uint	true	"ID of the account"
// @Router			/v1/accounts/{id} [get]
func (co Controller) GetAccount(c *gin.Context) {
	account, ok := co.account(c)
	if !ok {
		return
	}

	data := newAccount(c, account)
	c.JSON(http.StatusOK, AccountResponse{Data: &data})
}

// @Summary		Get account balance
// @Description	Returns the balance of an account: opening balances plus debits minus credits
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	BalanceResponse
// @Failure		400		{object}	BalanceResponse
// @Failure		404		{object}	BalanceResponse
// @Failure		500		{object}	BalanceResponse
// @Param			id		path		uint	true	"ID of the account"
// @Param			dateTo	query		string	false	"Only include transactions on or before this date"
// @Router			/v1/accounts/{id}/balance [get]
func (co Controller) GetAccountBalance(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(status(err), BalanceResponse{Error: errorMessage(c, err)})
		return
	}

	var query QueryDateTo
	err = httputil.BindQuery(c, &query)
	if err != nil {
		c.JSON(status(err), BalanceResponse{Error: errorMessage(c, err)})
		return
	}

	balance, err := co.Ledger.AccountBalance(c.Request.Context(), id, query.DateTo)
	if err != nil {
		c.JSON(status(err), BalanceResponse{Error: errorMessage(c, err)})
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{Data: &Balance{
		AccountID: id,
		DateTo:    query.DateTo,
		Balance:   balance,
	}})
}

// @Summary		List account transactions
// @Description	Returns the transactions debiting or crediting the account, newest first
// @Tags			Accounts
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	TransactionListResponse
// @Failure		404			{object}	TransactionListResponse
// @Failure		500			{object}	TransactionListResponse
// @Param			id			path		uint	true	"ID of the account"
// @Param			dateFrom	query		string	false	"Only include transactions on or after this date"
// @Param			dateTo		query		string	false	"Only include transactions on or before this date"
// @Param			offset		query		int		false	"The offset of the first transaction returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of transactions to return. Defaults to 200, at most 1000."
// @Router			/v1/accounts/{id}/transactions [get]
func (co Controller) GetAccountTransactions(c *gin.Context) {
	account, ok := co.account(c)
	if !ok {
		return
	}

	var query QueryPage
	err := httputil.BindQuery(c, &query)
	if err != nil {
		c.JSON(status(err), TransactionListResponse{Error: errorMessage(c, err)})
		return
	}

	filter := query.filter()
	transactions, err := co.Ledger.ListTransactionsForAccount(c.Request.Context(), account.ID, filter)
	if err != nil {
		c.JSON(status(err), TransactionListResponse{Error: errorMessage(c, err)})
		return
	}

	c.JSON(http.StatusOK, newTransactionList(c, transactions, filter))
}

// @Summary		List opening balances
// @Description	Returns the opening balances of an account, oldest first
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	OpeningBalanceListResponse
// @Failure		400	{object}	OpeningBalanceListResponse
// @Failure		404	{object}	OpeningBalanceListResponse
// @Failure		500	{object}	OpeningBalanceListResponse
// @Param			id	path		uint	true	"ID of the account"
// @Router			/v1/accounts/{id}/opening-balances [get]
func (co Controller) GetOpeningBalances(c *gin.Context) {
	account, ok := co.account(c)
	if !ok {
		return
	}

	balances, err := co.Ledger.OpeningBalances(c.Request.Context(), account.ID)
	if err != nil {
		c.JSON(status(err), OpeningBalanceListResponse{Error: errorMessage(c, err)})
		return
	}

	data := make([]OpeningBalance, 0, len(balances))
	for _, balance := range balances {
		data = append(data, newOpeningBalance(balance))
	}

	c.JSON(http.StatusOK, OpeningBalanceListResponse{Data: data})
}

// @Summary		Set opening balance
// @Description	Adds an opening balance to an account. Opening balances are additive.
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		201				{object}	OpeningBalanceResponse
// @Failure		400				{object}	OpeningBalanceResponse
// @Failure		404				{object}	OpeningBalanceResponse
// @Failure		500				{object}	OpeningBalanceResponse
// @Param			id				path		uint					true	"ID of the account"
// @Param			openingBalance	body		OpeningBalanceEditable	true	"Opening balance"
// @Router			/v1/accounts/{id}/opening-balances [post]
func (co Controller) CreateOpeningBalance(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(status(err), OpeningBalanceResponse{Error: errorMessage(c, err)})
		return
	}

	var editable OpeningBalanceEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), OpeningBalanceResponse{Error: errorMessage(c, err)})
		return
	}

	balance, err := co.Ledger.SetOpeningBalance(c.Request.Context(), id, editable.Amount, editable.Date)
	if err != nil {
		c.JSON(status(err), OpeningBalanceResponse{Error: errorMessage(c, err)})
		return
	}

	data := newOpeningBalance(balance)
	c.JSON(http.StatusCreated, OpeningBalanceResponse{Data: &data})
}
