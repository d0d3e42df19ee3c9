// Package importer reads charts of accounts from files.
//
// Rows that do not describe a valid account, e.g. header lines or rows
// with an unknown account type, are skipped.
package importer

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bahtledger/backend/pkg/ledger"
	"github.com/bahtledger/backend/pkg/models"
	"github.com/bahtledger/backend/pkg/validation"
)

// ErrNoAccounts is returned when a file does not contain a single valid account.
var ErrNoAccounts = fmt.Errorf("%w: no valid accounts found in file", models.ErrValidation)

// Parse reads accounts from r. Files ending in ".csv" are parsed as CSV,
// all others as JSON.
func Parse(filename string, r io.Reader) ([]ledger.AccountRow, error) {
	var (
		rows []ledger.AccountRow
		err  error
	)

	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		rows, err = ParseCSV(r)
	} else {
		rows, err = ParseJSON(r)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, ErrNoAccounts
	}

	return rows, nil
}

// ParseCSV reads accounts from CSV records in the "name,type" format.
// Additional columns are ignored.
func ParseCSV(r io.Reader) ([]ledger.AccountRow, error) {
	reader := csv.NewReader(r)

	// Rows may have any number of columns
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	rows := make([]ledger.AccountRow, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: could not read the CSV: %w", models.ErrValidation, err)
		}

		if len(record) < 2 {
			continue
		}

		row, ok := accountRow(record[0], record[1])
		if ok {
			rows = append(rows, row)
		}
	}

	return rows, nil
}

// ParseJSON reads accounts from a JSON array of objects with
// "name" and "type" keys.
func ParseJSON(r io.Reader) ([]ledger.AccountRow, error) {
	var items []struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}

	err := json.NewDecoder(r).Decode(&items)
	if err != nil {
		return nil, fmt.Errorf("%w: the file is not a JSON array of accounts: %w", models.ErrValidation, err)
	}

	rows := make([]ledger.AccountRow, 0, len(items))
	for _, item := range items {
		row, ok := accountRow(item.Name, item.Type)
		if ok {
			rows = append(rows, row)
		}
	}

	return rows, nil
}

func accountRow(name, accountType string) (ledger.AccountRow, bool) {
	name = strings.TrimSpace(name)
	accountType = strings.TrimSpace(accountType)

	if name == "" || !validation.IsValidAccountType(accountType) {
		return ledger.AccountRow{}, false
	}

	return ledger.AccountRow{Name: name, Type: models.AccountType(accountType)}, true
}
