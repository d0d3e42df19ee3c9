package v1

import (
	"fmt"

	"github.com/bahtledger/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Account is the API representation of an account.
type Account struct {
	models.DefaultModel
	Name   string             `json:"name" example:"Bank - Checking"`  // Name of the account, unique
	Type   models.AccountType `json:"type" example:"asset"`            // One of asset, liability, equity, income, expense
	Status string             `json:"status" example:"active"`         // Status of the account
	Links  AccountLinks       `json:"links"`                           // Links to related resources
}

type AccountLinks struct {
	Self            string `json:"self" example:"https://example.com/api/v1/accounts/1"`                             // The account itself
	Balance         string `json:"balance" example:"https://example.com/api/v1/accounts/1/balance"`                  // The balance of the account
	Transactions    string `json:"transactions" example:"https://example.com/api/v1/accounts/1/transactions"`        // Transactions debiting or crediting the account
	OpeningBalances string `json:"openingBalances" example:"https://example.com/api/v1/accounts/1/opening-balances"` // Opening balances of the account
}

func newAccount(c *gin.Context, model models.Account) Account {
	self := fmt.Sprintf("%s/v1/accounts/%d", baseURL(c), model.ID)

	return Account{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Type:         model.Type,
		Status:       model.Status,
		Links: AccountLinks{
			Self:            self,
			Balance:         self + "/balance",
			Transactions:    self + "/transactions",
			OpeningBalances: self + "/opening-balances",
		},
	}
}

// AccountEditable contains the fields of an account that can be set.
type AccountEditable struct {
	Name   string             `json:"name" example:"Bank - Checking"` // Name of the account, unique
	Type   models.AccountType `json:"type" example:"asset"`           // One of asset, liability, equity, income, expense
	Status string             `json:"status" example:"active"`        // Status of the account. Defaults to "active".
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                          // Data for the account
	Error *string  `json:"error" example:"the account name must be unique"` // The error, if any occurred
}

type AccountListResponse struct {
	Data  []Account `json:"data"`                                        // List of accounts
	Error *string   `json:"error" example:"the account type is not valid"` // The error, if any occurred
}

// AccountQueryFilter contains the filters for the account list.
type AccountQueryFilter struct {
	Type   string `form:"type" binding:"omitempty,accounttype"` // Only accounts of this type
	Status string `form:"status"`                               // Only accounts with this status. Defaults to "active", "*" matches all.
	Match  string `form:"match"`                                // Glob pattern for the name, e.g. "Bank - *"
}

// Balance is the balance of an account up to a date.
type Balance struct {
	AccountID uint            `json:"accountId" example:"1"`         // ID of the account
	DateTo    string          `json:"dateTo" example:"2025-10-31"`   // Inclusive upper date bound. Empty for all transactions.
	Balance   decimal.Decimal `json:"balance" example:"5800"`        // Opening balances plus debits minus credits
}

type BalanceResponse struct {
	Data  *Balance `json:"data"`                                                  // Balance of the account
	Error *string  `json:"error" example:"there is no account matching your query"` // The error, if any occurred
}

// OpeningBalance is the API representation of an opening balance.
type OpeningBalance struct {
	models.DefaultModel
	AccountID uint            `json:"accountId" example:"1"`      // ID of the account
	Amount    decimal.Decimal `json:"amount" example:"10000"`     // Amount of the opening balance
	Date      string          `json:"date" example:"2025-01-01"` // Date of the opening balance
}

func newOpeningBalance(model models.OpeningBalance) OpeningBalance {
	return OpeningBalance{
		DefaultModel: model.DefaultModel,
		AccountID:    model.AccountID,
		Amount:       model.Amount,
		Date:         model.Date,
	}
}

// OpeningBalanceEditable contains the fields of a new opening balance.
type OpeningBalanceEditable struct {
	Amount decimal.Decimal `json:"amount" example:"10000"`     // Amount of the opening balance, must be positive
	Date   string          `json:"date" example:"2025-01-01"` // Date in YYYY-MM-DD format
}

type OpeningBalanceResponse struct {
	Data  *OpeningBalance `json:"data"`                                           // Data for the opening balance
	Error *string         `json:"error" example:"the amount must be positive"` // The error, if any occurred
}

type OpeningBalanceListResponse struct {
	Data  []OpeningBalance `json:"data"`                                                  // List of opening balances
	Error *string          `json:"error" example:"there is no account matching your query"` // The error, if any occurred
}

// Added is the result of an import of accounts.
type Added struct {
	Added int `json:"added" example:"60"` // Number of accounts that were created
}

type AddedResponse struct {
	Data  *Added  `json:"data"`                                                  // Result of the import
	Error *string `json:"error" example:"no valid accounts found in file"` // The error, if any occurred
}
