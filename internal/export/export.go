// Package export writes ledger data as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bahtledger/backend/pkg/models"
)

// Headers of the exported files.
const (
	AccountsHeader     = "account_id,name,type,status"
	TransactionsHeader = "txn_id,date,amount,debit_account_id,credit_account_id,notes"
)

// WriteAccounts writes accounts to w, including the header.
func WriteAccounts(w io.Writer, accounts []models.Account) error {
	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, []string{
			id(a.ID),
			a.Name,
			string(a.Type),
			a.Status,
		})
	}

	return write(w, AccountsHeader, rows)
}

// WriteTransactions writes transactions to w, including the header.
func WriteTransactions(w io.Writer, transactions []models.Transaction) error {
	rows := make([][]string, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, []string{
			id(t.ID),
			t.Date,
			t.Amount.String(),
			id(t.DebitAccountID),
			id(t.CreditAccountID),
			t.Notes,
		})
	}

	return write(w, TransactionsHeader, rows)
}

func write(w io.Writer, header string, rows [][]string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func id(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
