package finance

import (
	"sort"

	"github.com/shopspring/decimal"
)

// This file is the aggregation engine: pure, synchronous functions over
// already-fetched record slices. No function here touches the store.

// SumByType returns the sum of the amounts of transactions of the given type.
func SumByType(txs []Transaction, typ TransactionType) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txs {
		if tx.Type == typ {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum
}

// TotalBalance returns income minus expense over the given transactions.
func TotalBalance(txs []Transaction) decimal.Decimal {
	return SumByType(txs, Income).Sub(SumByType(txs, Expense))
}

// DailyPoint is one day of the income/expense series.
type DailyPoint struct {
	Date    Date
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// DailySeries groups transactions by date and sums per type, ordered by
// date ascending.
func DailySeries(txs []Transaction) []DailyPoint {
	byDate := make(map[Date]*DailyPoint)
	for _, tx := range txs {
		p, ok := byDate[tx.Date]
		if !ok {
			p = &DailyPoint{Date: tx.Date}
			byDate[tx.Date] = p
		}
		switch tx.Type {
		case Income:
			p.Income = p.Income.Add(tx.Amount)
		case Expense:
			p.Expense = p.Expense.Add(tx.Amount)
		}
	}
	series := make([]DailyPoint, 0, len(byDate))
	for _, p := range byDate {
		series = append(series, *p)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	return series
}

// CategoryBreakdown sums amounts per category for transactions of the given
// type. Category names are taken as stored; dangling references get their
// own bucket.
func CategoryBreakdown(txs []Transaction, typ TransactionType) map[string]decimal.Decimal {
	breakdown := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Type == typ {
			breakdown[tx.Category] = breakdown[tx.Category].Add(tx.Amount)
		}
	}
	return breakdown
}

// TagStat is the per-tag aggregate of TagBreakdown.
type TagStat struct {
	Count  int
	Amount decimal.Decimal
}

// TagBreakdown aggregates transactions per tag. A transaction with N tags
// contributes its full amount to each of the N buckets; the amount is
// duplicated, not split.
func TagBreakdown(txs []Transaction) map[string]TagStat {
	breakdown := make(map[string]TagStat)
	for _, tx := range txs {
		for _, tag := range tx.Tags {
			stat := breakdown[tag]
			stat.Count++
			stat.Amount = stat.Amount.Add(tx.Amount)
			breakdown[tag] = stat
		}
	}
	return breakdown
}

// InvestmentOverview summarizes all positions.
type InvestmentOverview struct {
	TotalInvested    decimal.Decimal
	CurrentValue     decimal.Decimal
	TotalReturn      decimal.Decimal
	ReturnPercentage float64
}

// InvestmentSummary totals the invested amounts and current values.
// ReturnPercentage is 0 when nothing is invested.
func InvestmentSummary(investments []Investment) InvestmentOverview {
	var o InvestmentOverview
	for _, inv := range investments {
		o.TotalInvested = o.TotalInvested.Add(inv.Amount)
		o.CurrentValue = o.CurrentValue.Add(inv.CurrentValue)
	}
	o.TotalReturn = o.CurrentValue.Sub(o.TotalInvested)
	if o.TotalInvested.IsPositive() {
		o.ReturnPercentage = o.TotalReturn.Div(o.TotalInvested).InexactFloat64() * 100
	}
	return o
}

// FilterMonth keeps the transactions dated within the month.
func FilterMonth(txs []Transaction, month Month) []Transaction {
	var out []Transaction
	for _, tx := range txs {
		if month.Contains(tx.Date) {
			out = append(out, tx)
		}
	}
	return out
}

// FilterSince keeps the transactions dated on or after the given date.
func FilterSince(txs []Transaction, since Date) []Transaction {
	var out []Transaction
	for _, tx := range txs {
		if !tx.Date.Before(since) {
			out = append(out, tx)
		}
	}
	return out
}

// RecentTransactions returns up to n transactions ordered by date, newest
// first. The sort is stable, so same-day transactions keep their stored
// order.
func RecentTransactions(txs []Transaction, n int) []Transaction {
	sorted := make([]Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[j].Date.Before(sorted[i].Date)
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
