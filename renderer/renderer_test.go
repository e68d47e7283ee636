package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/AndreKlarosk/finance"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func on(s string) finance.Date  { return finance.MustParseDate(s) }
func ym(s string) finance.Month { return finance.MustParseMonth(s) }

// usdSettings keeps the assertions readable: USD formatting is stable.
func usdSettings() finance.Settings {
	s := finance.DefaultSettings()
	s.Currency = "USD"
	return s
}

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		amount   float64
		currency string
		want     string
	}{
		{10.5, "USD", "$10.50"},
		{1000, "USD", "$1,000.00"},
		{-3.25, "USD", "-$3.25"},
	}
	for _, tc := range testCases {
		if got := M(dec(tc.amount), tc.currency).String(); got != tc.want {
			t.Errorf("M(%v, %s) = %q, want %q", tc.amount, tc.currency, got, tc.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(dec(10), "USD").SignedString(); got != "+$10.00" {
		t.Errorf("SignedString() = %q, want +$10.00", got)
	}
	if got := M(dec(-10), "USD").SignedString(); got != "-$10.00" {
		t.Errorf("SignedString() = %q, want -$10.00", got)
	}
}

func TestMoneyUnknownCurrencyFallsBack(t *testing.T) {
	if got := M(dec(1), "NOPE").String(); got == "" || strings.Contains(got, "NOPE") {
		t.Errorf("unknown currency rendered as %q, want the default currency formatting", got)
	}
}

func sampleData() ([]finance.Transaction, []finance.Budget, []finance.Goal, []finance.Investment) {
	txs := []finance.Transaction{
		{Record: finance.Record{ID: 1}, Type: finance.Income, Amount: dec(1000), Description: "Salary", Category: "Trabalho", Date: on("2024-01-01")},
		{Record: finance.Record{ID: 2}, Type: finance.Expense, Amount: dec(80), Description: "Groceries", Category: "Food", Date: on("2024-01-05"), Tags: finance.Tags{"food"}},
	}
	budgets := []finance.Budget{
		{Category: "Food", Amount: dec(100), Month: ym("2024-01")},
	}
	goals := []finance.Goal{
		{Name: "Trip", Target: dec(1000), Current: dec(100), Deadline: on("2024-02-01")},
	}
	investments := []finance.Investment{
		{Record: finance.Record{ID: 1}, Name: "ETF", Type: finance.Funds, Amount: dec(500), CurrentValue: dec(550), Date: on("2024-01-02")},
	}
	return txs, budgets, goals, investments
}

func TestRenderDashboard(t *testing.T) {
	txs, budgets, goals, investments := sampleData()
	d := NewDashboard(txs, budgets, goals, investments, usdSettings(), ym("2024-01"), on("2024-01-15"))
	got := RenderDashboard(d)

	for _, want := range []string{
		"# Dashboard on 2024-01-15",
		"$1,000.00",  // income
		"$80.00",     // expense
		"+$920.00",   // total balance
		"## Budgets", // budget module enabled
		"| Food | $80.00 | $100.00 | 80% | warning |",
		"## Alerts",
		"Budget almost exceeded",
		"Goal at risk",
		"## Recent Transactions",
		"| 2024-01-05 | Groceries | Food | -$80.00 |",
		"## Investments",
		"+$50.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("dashboard misses %q:\n%s", want, got)
		}
	}
}

func TestRenderDashboardDisabledModules(t *testing.T) {
	txs, budgets, goals, investments := sampleData()
	settings := usdSettings()
	settings.SetModule("budget", false)
	settings.SetModule("investments", false)
	settings.BudgetAlerts = false
	settings.GoalAlerts = false

	got := RenderDashboard(NewDashboard(txs, budgets, goals, investments, settings, ym("2024-01"), on("2024-01-15")))
	for _, absent := range []string{"## Budgets", "## Alerts", "## Investments"} {
		if strings.Contains(got, absent) {
			t.Errorf("dashboard still renders %q with the module disabled:\n%s", absent, got)
		}
	}
	if !strings.Contains(got, "## Recent Transactions") {
		t.Errorf("dashboard misses the recent transactions:\n%s", got)
	}
}

func TestRenderMonthly(t *testing.T) {
	txs, _, _, _ := sampleData()
	report := finance.NewMonthlyReport(txs, ym("2024-01"))
	got := RenderMonthly(NewMonthlyView(report, "USD"))

	for _, want := range []string{
		"# Monthly Report for 2024-01",
		"2 transactions.",
		"**+$920.00**",
		"## Expenses by Category",
		"| Food | $80.00 | 100.0% |",
		"## Spending by Tag",
		"| food | 1 | $80.00 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("monthly report misses %q:\n%s", want, got)
		}
	}
}

func TestRenderAlerts(t *testing.T) {
	got := RenderAlerts([]AlertRow{{Level: "danger", Title: "Budget exceeded", Message: "over"}})
	if !strings.Contains(got, "**Budget exceeded** (danger): over") {
		t.Errorf("alerts render = %q", got)
	}

	empty := RenderAlerts(nil)
	if !strings.Contains(empty, "Nothing needs attention.") {
		t.Errorf("empty alerts render = %q", empty)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	txs, _, _, _ := sampleData()
	got := TransactionsMarkdown(txs, "USD")

	if !strings.Contains(got, "| 2 | 2024-01-05 | Groceries | Food | food | -$80.00 |") {
		t.Errorf("transactions table misses the expense row:\n%s", got)
	}
	// newest first
	if strings.Index(got, "Groceries") > strings.Index(got, "Salary") {
		t.Errorf("transactions not listed newest first:\n%s", got)
	}

	if got := TransactionsMarkdown(nil, "USD"); !strings.Contains(got, "No transactions recorded.") {
		t.Errorf("empty list render = %q", got)
	}
}

func TestInvestmentsMarkdown(t *testing.T) {
	_, _, _, investments := sampleData()
	got := InvestmentsMarkdown(investments, "USD")

	for _, want := range []string{
		"| 1 | ETF | funds | $500.00 | $550.00 | +$50.00 |",
		"**+$50.00 (+10.00%)**",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("investments table misses %q:\n%s", want, got)
		}
	}
}

func TestTransactionOneLiner(t *testing.T) {
	txs, _, _, _ := sampleData()
	if got := Transaction(txs[0], "USD"); got != "Received $1,000.00 (Salary) on 2024-01-01" {
		t.Errorf("Transaction(income) = %q", got)
	}
	if got := Transaction(txs[1], "USD"); got != "Spent $80.00 on Food (Groceries) on 2024-01-05" {
		t.Errorf("Transaction(expense) = %q", got)
	}
}
