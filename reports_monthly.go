package finance

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CategoryShare is one line of the monthly expense breakdown.
type CategoryShare struct {
	Category string
	Amount   decimal.Decimal
	Share    float64 // percentage of total expenses
}

// TagEntry is one line of the monthly tag analysis.
type TagEntry struct {
	Tag    string
	Count  int
	Amount decimal.Decimal
}

// MonthlyReport is the at-a-glance report for one month.
type MonthlyReport struct {
	Month      Month
	Income     decimal.Decimal
	Expense    decimal.Decimal
	Balance    decimal.Decimal
	Count      int
	Categories []CategoryShare // expenses only, largest first
	Tags       []TagEntry      // alphabetical
}

// NewMonthlyReport builds the report for one month from the full
// transaction list.
func NewMonthlyReport(txs []Transaction, month Month) *MonthlyReport {
	monthTxs := FilterMonth(txs, month)

	r := &MonthlyReport{
		Month:   month,
		Income:  SumByType(monthTxs, Income),
		Expense: SumByType(monthTxs, Expense),
		Count:   len(monthTxs),
	}
	r.Balance = r.Income.Sub(r.Expense)

	for category, amount := range CategoryBreakdown(monthTxs, Expense) {
		share := 0.0
		if r.Expense.IsPositive() {
			share = amount.Div(r.Expense).InexactFloat64() * 100
		}
		r.Categories = append(r.Categories, CategoryShare{Category: category, Amount: amount, Share: share})
	}
	sort.Slice(r.Categories, func(i, j int) bool {
		if !r.Categories[i].Amount.Equal(r.Categories[j].Amount) {
			return r.Categories[i].Amount.GreaterThan(r.Categories[j].Amount)
		}
		return r.Categories[i].Category < r.Categories[j].Category
	})

	for tag, stat := range TagBreakdown(monthTxs) {
		r.Tags = append(r.Tags, TagEntry{Tag: tag, Count: stat.Count, Amount: stat.Amount})
	}
	sort.Slice(r.Tags, func(i, j int) bool { return r.Tags[i].Tag < r.Tags[j].Tag })

	return r
}
