package ledger

import (
	"context"
	"strings"

	"github.com/bahtledger/backend/pkg/models"
	"github.com/bahtledger/backend/pkg/validation"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm/clause"
)

// CategoryActual is the actual spend of an expense category in a period.
type CategoryActual struct {
	Category string          `json:"category" example:"Food & Dining"`
	Actual   decimal.Decimal `json:"actual" example:"200"`
}

// VarianceRow compares the budget of a category with its actual spend.
//
// PctOfBudget is nil when the category has no positive budget.
type VarianceRow struct {
	Category    string           `json:"category" example:"Food & Dining"`
	Budget      decimal.Decimal  `json:"budget" example:"300"`
	Actual      decimal.Decimal  `json:"actual" example:"200"`
	Variance    decimal.Decimal  `json:"variance" example:"100"`
	PctOfBudget *decimal.Decimal `json:"pctOfBudget" example:"66.67"`
}

// UpsertBudget sets the budget for a category in a period, replacing
// any existing amount.
func (l *Ledger) UpsertBudget(ctx context.Context, period, category string, amount decimal.Decimal) (budget models.Budget, err error) {
	defer func() { err = observe("upsert_budget", err) }()

	if !validation.IsValidPeriod(period) {
		return models.Budget{}, models.ErrInvalidPeriod
	}

	if strings.TrimSpace(category) == "" {
		return models.Budget{}, models.ErrCategoryEmpty
	}

	if !validation.IsPositiveAmount(amount) {
		return models.Budget{}, models.ErrAmountNotPositive
	}

	budget = models.Budget{
		Period:   period,
		Category: category,
		Amount:   amount,
	}

	db := l.db.WithContext(ctx)
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "period"}, {Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(&budget).Error
	if err != nil {
		return models.Budget{}, storageError(err)
	}

	// Re-read so that the ID and creation time of an updated row are returned
	err = db.Where(&models.Budget{Period: period, Category: budget.Category}).First(&budget).Error
	if err != nil {
		return models.Budget{}, storageError(err)
	}

	return budget, nil
}

// ListBudgets returns all budgets of a period ordered by category.
func (l *Ledger) ListBudgets(ctx context.Context, period string) ([]models.Budget, error) {
	if !validation.IsValidPeriod(period) {
		return nil, models.ErrInvalidPeriod
	}

	budgets := make([]models.Budget, 0)
	err := l.db.WithContext(ctx).
		Where(&models.Budget{Period: period}).
		Order("category ASC").
		Find(&budgets).Error
	if err != nil {
		return nil, storageError(err)
	}

	return budgets, nil
}

// ActualsByCategory returns the spend in a period for every expense account.
//
// The spend of an expense account is the sum of all transactions in the period
// that debit it. Accounts without transactions are included with zero.
func (l *Ledger) ActualsByCategory(ctx context.Context, period string) ([]CategoryActual, error) {
	if !validation.IsValidPeriod(period) {
		return nil, models.ErrInvalidPeriod
	}

	var rows []struct {
		Category string
		Actual   decimal.NullDecimal
	}

	err := l.db.WithContext(ctx).
		Table("accounts a").
		Select("a.name AS category, SUM(t.amount) AS actual").
		Joins("LEFT JOIN transactions t ON a.id = t.debit_account_id AND substr(t.date, 1, 7) = ?", period).
		Where("a.type = ?", models.AccountTypeExpense).
		Group("a.name").
		Order("a.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, storageError(err)
	}

	actuals := make([]CategoryActual, 0, len(rows))
	for _, row := range rows {
		actuals = append(actuals, CategoryActual{
			Category: row.Category,
			Actual:   row.Actual.Decimal.Round(amountPlaces),
		})
	}

	return actuals, nil
}

// BudgetVsActual compares budgets and actual spend for a period.
//
// All categories with a budget or an expense account are reported. Rows are
// ordered by variance, the most overspent category comes first.
func (l *Ledger) BudgetVsActual(ctx context.Context, period string) ([]VarianceRow, error) {
	budgets, err := l.ListBudgets(ctx, period)
	if err != nil {
		return nil, err
	}

	actuals, err := l.ActualsByCategory(ctx, period)
	if err != nil {
		return nil, err
	}

	rows := make(map[string]*VarianceRow)
	for _, actual := range actuals {
		rows[actual.Category] = &VarianceRow{
			Category: actual.Category,
			Actual:   actual.Actual,
		}
	}

	for _, budget := range budgets {
		row, ok := rows[budget.Category]
		if !ok {
			row = &VarianceRow{Category: budget.Category}
			rows[budget.Category] = row
		}
		row.Budget = budget.Amount
	}

	report := make([]VarianceRow, 0, len(rows))
	for _, row := range rows {
		row.Variance = row.Budget.Sub(row.Actual)

		if row.Budget.IsPositive() {
			pct := row.Actual.Div(row.Budget).Mul(decimal.NewFromInt(100)).Round(2)
			row.PctOfBudget = &pct
		}

		report = append(report, *row)
	}

	slices.SortFunc(report, func(a, b VarianceRow) int {
		if c := a.Variance.Cmp(b.Variance); c != 0 {
			return c
		}
		return strings.Compare(a.Category, b.Category)
	})

	return report, nil
}
