package finance

import (
	"testing"
)

// sampleTransactions is the two-transaction scenario used across the
// aggregation tests.
func sampleTransactions() []Transaction {
	return []Transaction{
		{Type: Expense, Category: "Food", Amount: dec(80), Date: on("2024-01-05")},
		{Type: Income, Category: "Salary", Amount: dec(1000), Date: on("2024-01-01")},
	}
}

func TestSumByType(t *testing.T) {
	txs := sampleTransactions()

	if got := SumByType(txs, Expense); !got.Equal(dec(80)) {
		t.Errorf("SumByType(expense) = %v, want 80", got)
	}
	if got := SumByType(txs, Income); !got.Equal(dec(1000)) {
		t.Errorf("SumByType(income) = %v, want 1000", got)
	}
	if got := TotalBalance(txs); !got.Equal(dec(920)) {
		t.Errorf("TotalBalance() = %v, want 920", got)
	}
}

func TestDailySeries(t *testing.T) {
	txs := []Transaction{
		{Type: Expense, Amount: dec(30), Date: on("2024-01-05")},
		{Type: Income, Amount: dec(1000), Date: on("2024-01-01")},
		{Type: Expense, Amount: dec(50), Date: on("2024-01-05")},
	}

	series := DailySeries(txs)
	if len(series) != 2 {
		t.Fatalf("DailySeries() has %d points, want 2", len(series))
	}
	// ascending by date
	if series[0].Date != on("2024-01-01") || series[1].Date != on("2024-01-05") {
		t.Errorf("DailySeries() dates = %v, %v; want ascending 2024-01-01, 2024-01-05", series[0].Date, series[1].Date)
	}
	if !series[0].Income.Equal(dec(1000)) || !series[0].Expense.IsZero() {
		t.Errorf("day one = %+v, want income 1000, expense 0", series[0])
	}
	if !series[1].Expense.Equal(dec(80)) {
		t.Errorf("day two expense = %v, want 80 (30+50 summed)", series[1].Expense)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	txs := append(sampleTransactions(),
		Transaction{Type: Expense, Category: "Food", Amount: dec(20), Date: on("2024-01-07")},
		Transaction{Type: Expense, Category: "Transport", Amount: dec(15), Date: on("2024-01-08")},
	)

	breakdown := CategoryBreakdown(txs, Expense)
	if len(breakdown) != 2 {
		t.Fatalf("breakdown has %d categories, want 2 (income excluded)", len(breakdown))
	}
	if !breakdown["Food"].Equal(dec(100)) {
		t.Errorf("Food = %v, want 100", breakdown["Food"])
	}
	if !breakdown["Transport"].Equal(dec(15)) {
		t.Errorf("Transport = %v, want 15", breakdown["Transport"])
	}
}

func TestTagBreakdownDuplicatesAmount(t *testing.T) {
	// One transaction with two tags contributes its full amount to both
	// buckets. The amount is duplicated, not split.
	txs := []Transaction{
		{Type: Expense, Amount: dec(50), Date: on("2024-01-05"), Tags: Tags{"food", "weekly"}},
	}

	breakdown := TagBreakdown(txs)
	for _, tag := range []string{"food", "weekly"} {
		stat, ok := breakdown[tag]
		if !ok {
			t.Fatalf("tag %q missing from breakdown", tag)
		}
		if stat.Count != 1 {
			t.Errorf("tag %q count = %d, want 1", tag, stat.Count)
		}
		if !stat.Amount.Equal(dec(50)) {
			t.Errorf("tag %q amount = %v, want 50", tag, stat.Amount)
		}
	}
}

func TestInvestmentSummary(t *testing.T) {
	testCases := []struct {
		name        string
		investments []Investment
		invested    float64
		value       float64
		ret         float64
		pct         float64
	}{
		{
			name: "mixed positions",
			investments: []Investment{
				{Name: "ETF", Type: Funds, Amount: dec(1000), CurrentValue: dec(1100)},
				{Name: "BTC", Type: Crypto, Amount: dec(500), CurrentValue: dec(400)},
			},
			invested: 1500, value: 1500, ret: 0, pct: 0,
		},
		{
			name:     "empty avoids division by zero",
			invested: 0, value: 0, ret: 0, pct: 0,
		},
		{
			name: "gain",
			investments: []Investment{
				{Name: "Bond", Type: Bonds, Amount: dec(200), CurrentValue: dec(250)},
			},
			invested: 200, value: 250, ret: 50, pct: 25,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := InvestmentSummary(tc.investments)
			if !o.TotalInvested.Equal(dec(tc.invested)) {
				t.Errorf("TotalInvested = %v, want %v", o.TotalInvested, tc.invested)
			}
			if !o.CurrentValue.Equal(dec(tc.value)) {
				t.Errorf("CurrentValue = %v, want %v", o.CurrentValue, tc.value)
			}
			if !o.TotalReturn.Equal(dec(tc.ret)) {
				t.Errorf("TotalReturn = %v, want %v", o.TotalReturn, tc.ret)
			}
			if o.ReturnPercentage != tc.pct {
				t.Errorf("ReturnPercentage = %v, want %v", o.ReturnPercentage, tc.pct)
			}
		})
	}
}

func TestFilterAndRecent(t *testing.T) {
	txs := []Transaction{
		{Description: "old", Type: Expense, Amount: dec(1), Date: on("2023-12-31")},
		{Description: "first", Type: Income, Amount: dec(2), Date: on("2024-01-01")},
		{Description: "last", Type: Expense, Amount: dec(3), Date: on("2024-01-20")},
	}

	if got := FilterMonth(txs, ym("2024-01")); len(got) != 2 {
		t.Errorf("FilterMonth() kept %d transactions, want 2", len(got))
	}
	if got := FilterSince(txs, on("2024-01-01")); len(got) != 2 {
		t.Errorf("FilterSince() kept %d transactions, want 2", len(got))
	}

	recent := RecentTransactions(txs, 2)
	if len(recent) != 2 || recent[0].Description != "last" || recent[1].Description != "first" {
		t.Errorf("RecentTransactions() = %v, want newest first [last first]", recent)
	}
}

func TestMonthlyReport(t *testing.T) {
	txs := append(sampleTransactions(),
		Transaction{Type: Expense, Category: "Transport", Amount: dec(20), Date: on("2024-01-10"), Tags: Tags{"commute"}},
		Transaction{Type: Expense, Category: "Food", Amount: dec(10), Date: on("2024-02-01")},
	)

	r := NewMonthlyReport(txs, ym("2024-01"))
	if r.Count != 3 {
		t.Fatalf("Count = %d, want 3 (february excluded)", r.Count)
	}
	if !r.Income.Equal(dec(1000)) || !r.Expense.Equal(dec(100)) || !r.Balance.Equal(dec(900)) {
		t.Errorf("totals = %v/%v/%v, want 1000/100/900", r.Income, r.Expense, r.Balance)
	}
	if len(r.Categories) != 2 {
		t.Fatalf("Categories has %d entries, want 2", len(r.Categories))
	}
	// largest first
	if r.Categories[0].Category != "Food" || r.Categories[0].Share != 80 {
		t.Errorf("top category = %+v, want Food at 80%%", r.Categories[0])
	}
	if len(r.Tags) != 1 || r.Tags[0].Tag != "commute" || r.Tags[0].Count != 1 {
		t.Errorf("Tags = %+v, want one 'commute' entry", r.Tags)
	}
}
