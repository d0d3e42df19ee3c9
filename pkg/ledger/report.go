package ledger

import (
	"context"
	"strings"

	"github.com/bahtledger/backend/pkg/models"
	"github.com/bahtledger/backend/pkg/validation"
	"github.com/shopspring/decimal"
)

// TypeTotal is the sum of transaction amounts debited to accounts of a type.
type TypeTotal struct {
	Type  models.AccountType `json:"type" example:"expense"`
	Total decimal.Decimal    `json:"total" example:"1520.75"`
}

// Overview summarizes the financial position.
type Overview struct {
	TotalAssets      decimal.Decimal `json:"totalAssets" example:"5800"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities" example:"1200"`
	NetWorth         decimal.Decimal `json:"netWorth" example:"4600"`
}

// TotalsByType returns the sum of transaction amounts grouped by the type of
// the debited account, in chart of accounts order. Types without
// transactions are omitted.
func (l *Ledger) TotalsByType(ctx context.Context) ([]TypeTotal, error) {
	var rows []struct {
		Type  models.AccountType
		Total decimal.NullDecimal
	}

	err := l.db.WithContext(ctx).
		Table("transactions t").
		Select("a.type AS type, SUM(t.amount) AS total").
		Joins("JOIN accounts a ON t.debit_account_id = a.id").
		Group("a.type").
		Scan(&rows).Error
	if err != nil {
		return nil, storageError(err)
	}

	byType := make(map[models.AccountType]decimal.Decimal, len(rows))
	for _, row := range rows {
		byType[row.Type] = row.Total.Decimal.Round(amountPlaces)
	}

	totals := make([]TypeTotal, 0, len(rows))
	for _, t := range models.AccountTypes {
		total, ok := byType[t]
		if !ok {
			continue
		}
		totals = append(totals, TypeTotal{Type: t, Total: total})
	}

	return totals, nil
}

// Overview returns total assets, total liabilities and the net worth
// as of dateTo. An empty dateTo includes all transactions.
//
// Balances are taken as computed by AccountBalance, the net worth is
// assets minus liabilities.
func (l *Ledger) Overview(ctx context.Context, dateTo string) (Overview, error) {
	if dateTo != "" && !validation.IsValidDate(dateTo) {
		return Overview{}, models.ErrInvalidDate
	}

	db := l.db.WithContext(ctx)

	var accounts []models.Account
	err := db.
		Where("type IN ?", []models.AccountType{models.AccountTypeAsset, models.AccountTypeLiability}).
		Find(&accounts).Error
	if err != nil {
		return Overview{}, storageError(err)
	}

	var o Overview
	for _, account := range accounts {
		balance, err := accountBalance(db, account.ID, dateTo)
		if err != nil {
			return Overview{}, err
		}

		if account.Type == models.AccountTypeAsset {
			o.TotalAssets = o.TotalAssets.Add(balance)
		} else {
			o.TotalLiabilities = o.TotalLiabilities.Add(balance)
		}
	}

	o.NetWorth = o.TotalAssets.Sub(o.TotalLiabilities)
	return o, nil
}

// SaveReport persists a rendered report.
func (l *Ledger) SaveReport(ctx context.Context, name string, reportType models.ReportType, content string) (report models.Report, err error) {
	defer func() { err = observe("save_report", err) }()

	if strings.TrimSpace(name) == "" {
		return models.Report{}, models.ErrNameEmpty
	}

	report = models.Report{
		Name:    name,
		Type:    reportType,
		Content: content,
	}

	err = l.db.WithContext(ctx).Create(&report).Error
	if err != nil {
		return models.Report{}, storageError(err)
	}

	return report, nil
}

// Reports returns all saved reports, newest first. The content is not loaded.
func (l *Ledger) Reports(ctx context.Context) ([]models.Report, error) {
	reports := make([]models.Report, 0)
	err := l.db.WithContext(ctx).
		Select("id", "created_at", "updated_at", "name", "type").
		Order("created_at DESC, id DESC").
		Find(&reports).Error
	if err != nil {
		return nil, storageError(err)
	}

	return reports, nil
}

// Report returns the saved report with the given ID.
func (l *Ledger) Report(ctx context.Context, id uint) (models.Report, error) {
	var report models.Report
	err := l.db.WithContext(ctx).First(&report, id).Error
	if err != nil {
		return models.Report{}, storageError(err)
	}

	return report, nil
}
