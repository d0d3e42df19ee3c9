package v1

import (
	"fmt"

	"github.com/bahtledger/backend/pkg/ledger"
	"github.com/bahtledger/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Transaction is the API representation of a transaction.
type Transaction struct {
	models.DefaultModel
	Date            string           `json:"date" example:"2025-10-05"`            // Date of the transaction in YYYY-MM-DD format
	Amount          decimal.Decimal  `json:"amount" example:"200"`                 // Amount moved from the credit to the debit account, always positive
	DebitAccountID  uint             `json:"debitAccountId" example:"3"`           // ID of the account that is debited
	CreditAccountID uint             `json:"creditAccountId" example:"1"`          // ID of the account that is credited
	Notes           string           `json:"notes" example:"Groceries for the week"` // Free text notes
	Links           TransactionLinks `json:"links"`                                // Links to related resources
}

type TransactionLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/transactions/1"`   // The transaction itself
	DebitAccount  string `json:"debitAccount" example:"https://example.com/api/v1/accounts/3"`  // The debited account
	CreditAccount string `json:"creditAccount" example:"https://example.com/api/v1/accounts/1"` // The credited account
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := baseURL(c)

	return Transaction{
		DefaultModel:    model.DefaultModel,
		Date:            model.Date,
		Amount:          model.Amount,
		DebitAccountID:  model.DebitAccountID,
		CreditAccountID: model.CreditAccountID,
		Notes:           model.Notes,
		Links: TransactionLinks{
			Self:          fmt.Sprintf("%s/v1/transactions/%d", url, model.ID),
			DebitAccount:  fmt.Sprintf("%s/v1/accounts/%d", url, model.DebitAccountID),
			CreditAccount: fmt.Sprintf("%s/v1/accounts/%d", url, model.CreditAccountID),
		},
	}
}

// newTransactionList builds the list response for transactions returned for filter.
func newTransactionList(c *gin.Context, transactions []models.Transaction, filter ledger.TransactionFilter) TransactionListResponse {
	// When there are no resources, we want an empty list, not null
	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = ledger.DefaultLimit
	}

	return TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Offset: filter.Offset,
			Limit:  limit,
		},
	}
}

// TransactionEditable contains the fields of a new transaction.
type TransactionEditable struct {
	Date            string          `json:"date" example:"2025-10-05"`              // Date of the transaction in YYYY-MM-DD format
	Amount          decimal.Decimal `json:"amount" example:"200"`                   // Amount of the transaction, must be positive
	DebitAccountID  uint            `json:"debitAccountId" example:"3"`             // ID of the account to debit
	CreditAccountID uint            `json:"creditAccountId" example:"1"`            // ID of the account to credit
	Notes           string          `json:"notes" example:"Groceries for the week"` // Free text notes
}

func (editable TransactionEditable) input() ledger.TransactionInput {
	return ledger.TransactionInput{
		Date:            editable.Date,
		Amount:          editable.Amount,
		DebitAccountID:  editable.DebitAccountID,
		CreditAccountID: editable.CreditAccountID,
		Notes:           editable.Notes,
	}
}

// TransactionPatch contains the fields of a transaction to update.
// Fields that are omitted are left unchanged.
type TransactionPatch struct {
	Date            *string          `json:"date" example:"2025-10-06"`
	Amount          *decimal.Decimal `json:"amount" example:"250"`
	DebitAccountID  *uint            `json:"debitAccountId" example:"3"`
	CreditAccountID *uint            `json:"creditAccountId" example:"1"`
	Notes           *string          `json:"notes" example:"Groceries and snacks"`
}

func (patch TransactionPatch) update() ledger.TransactionUpdate {
	return ledger.TransactionUpdate{
		Date:            patch.Date,
		Amount:          patch.Amount,
		DebitAccountID:  patch.DebitAccountID,
		CreditAccountID: patch.CreditAccountID,
		Notes:           patch.Notes,
	}
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                        // Data for the transaction
	Error *string      `json:"error" example:"debit and credit accounts must differ"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                   // List of transactions
	Error      *string       `json:"error" example:"date must be in YYYY-MM-DD format"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                             // Pagination information
}

// TransactionQueryFilter contains the filters for the transaction list.
type TransactionQueryFilter struct {
	QueryPage
	Source      uint `form:"source" example:"1"`      // ID of the credited account
	Destination uint `form:"destination" example:"3"` // ID of the debited account
}

func (q QueryPage) filter() ledger.TransactionFilter {
	return ledger.TransactionFilter{
		DateFrom: q.DateFrom,
		DateTo:   q.DateTo,
		Limit:    q.Limit,
		Offset:   q.Offset,
	}
}

func (q TransactionQueryFilter) filter() ledger.TransactionFilter {
	filter := q.QueryPage.filter()

	if q.Source != 0 {
		filter.SourceAccountID = &q.Source
	}

	if q.Destination != 0 {
		filter.DestinationAccountID = &q.Destination
	}

	return filter
}
