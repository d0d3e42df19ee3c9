// Package report renders ledger reports as markdown.
package report

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/bahtledger/backend/internal/types"
	"github.com/bahtledger/backend/pkg/ledger"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultCurrency is used by the zero value of Renderer.
const DefaultCurrency = money.THB

// Renderer formats reports with amounts in a currency.
type Renderer struct {
	currency *money.Currency
}

// NewRenderer returns a Renderer for the ISO 4217 currency code.
func NewRenderer(currency string) (Renderer, error) {
	c := money.GetCurrency(strings.ToUpper(currency))
	if c == nil {
		return Renderer{}, fmt.Errorf("unknown currency %q", currency)
	}

	return Renderer{currency: c}, nil
}

// Money formats an amount in the currency of the renderer, e.g. "฿1,234.50".
func (r Renderer) Money(amount decimal.Decimal) string {
	currency := r.currency
	if currency == nil {
		currency = money.GetCurrency(DefaultCurrency)
	}

	minor := amount.Shift(int32(currency.Fraction)).Round(0).IntPart()
	return money.New(minor, currency.Code).Display()
}

// BudgetVsActual renders the budget vs. actual comparison of a period.
func (r Renderer) BudgetVsActual(period types.Period, rows []ledger.VarianceRow) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Budget vs. actual: %s\n\n", period.Title())

	if len(rows) == 0 {
		b.WriteString("_No budgets or expense accounts for this period._\n")
		return b.String()
	}

	b.WriteString("| Category | Budget | Actual | Variance | % of budget |\n")
	b.WriteString("|---|---:|---:|---:|---:|\n")

	var budget, actual decimal.Decimal
	for _, row := range rows {
		pct := "n/a"
		if row.PctOfBudget != nil {
			pct = row.PctOfBudget.StringFixed(2) + "%"
		}

		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			cell(row.Category), r.Money(row.Budget), r.Money(row.Actual), r.Money(row.Variance), pct)

		budget = budget.Add(row.Budget)
		actual = actual.Add(row.Actual)
	}

	fmt.Fprintf(&b, "| **Total** | **%s** | **%s** | **%s** | |\n", r.Money(budget), r.Money(actual), r.Money(budget.Sub(actual)))

	return b.String()
}

// Overview renders the financial position. An empty dateTo means today.
func (r Renderer) Overview(dateTo string, o ledger.Overview) string {
	var b strings.Builder

	if dateTo == "" {
		b.WriteString("# Overview\n\n")
	} else {
		fmt.Fprintf(&b, "# Overview as of %s\n\n", dateTo)
	}

	b.WriteString("| | Amount |\n")
	b.WriteString("|---|---:|\n")
	fmt.Fprintf(&b, "| Total assets | %s |\n", r.Money(o.TotalAssets))
	fmt.Fprintf(&b, "| Total liabilities | %s |\n", r.Money(o.TotalLiabilities))
	fmt.Fprintf(&b, "| **Net worth** | **%s** |\n", r.Money(o.NetWorth))

	return b.String()
}

// TotalsByType renders the transaction totals per account type.
func (r Renderer) TotalsByType(totals []ledger.TypeTotal) string {
	var b strings.Builder

	b.WriteString("# Totals by account type\n\n")

	if len(totals) == 0 {
		b.WriteString("_No transactions recorded._\n")
		return b.String()
	}

	title := cases.Title(language.English)

	b.WriteString("| Type | Total |\n")
	b.WriteString("|---|---:|\n")
	for _, t := range totals {
		fmt.Fprintf(&b, "| %s | %s |\n", title.String(string(t.Type)), r.Money(t.Total))
	}

	return b.String()
}

// cell escapes text for use in a markdown table cell.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
