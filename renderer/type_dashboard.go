package renderer

import (
	"github.com/AndreKlarosk/finance"
)

// Dashboard is the single-page overview: month totals, budget bars, active
// alerts, the most recent transactions and the investment position. Sections
// for disabled modules stay empty and the templates skip them.
type Dashboard struct {
	Date     finance.Date  `json:"date"`
	Month    finance.Month `json:"month"`
	Currency string        `json:"currency"`

	Income  Money `json:"income"`
	Expense Money `json:"expense"`
	Total   Money `json:"total"`

	Budgets     []BudgetRow      `json:"budgets,omitempty"`
	Alerts      []AlertRow       `json:"alerts,omitempty"`
	Recent      []TransactionRow `json:"recent,omitempty"`
	Investments *InvestmentTotal `json:"investments,omitempty"`
}

// BudgetRow is one budget progress bar.
type BudgetRow struct {
	Category   string  `json:"category"`
	Spent      Money   `json:"spent"`
	Limit      Money   `json:"limit"`
	Percentage float64 `json:"percentage"`
	Level      string  `json:"level"` // ok, warning or danger
}

// AlertRow is one active alert.
type AlertRow struct {
	Level   string `json:"level"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// TransactionRow is one line of the recent-transactions list.
type TransactionRow struct {
	Date        finance.Date            `json:"date"`
	Description string                  `json:"description"`
	Category    string                  `json:"category"`
	Type        finance.TransactionType `json:"type"`
	Amount      Money                   `json:"amount"`
}

// SignedAmount renders the amount with the sign of its direction.
func (r TransactionRow) SignedAmount() string {
	if r.Type == finance.Expense {
		return "-" + r.Amount.String()
	}
	return "+" + r.Amount.String()
}

// InvestmentTotal is the portfolio summary block.
type InvestmentTotal struct {
	Invested         Money   `json:"invested"`
	CurrentValue     Money   `json:"currentValue"`
	Return           Money   `json:"return"`
	ReturnPercentage float64 `json:"returnPercentage"`
}

// NewDashboard assembles the dashboard view for the given month. The recent
// list and the all-time total always span every transaction, not just the
// month.
func NewDashboard(txs []finance.Transaction, budgets []finance.Budget, goals []finance.Goal, investments []finance.Investment, settings finance.Settings, month finance.Month, today finance.Date) *Dashboard {
	monthTxs := finance.FilterMonth(txs, month)
	cur := settings.Currency

	d := &Dashboard{
		Date:     today,
		Month:    month,
		Currency: cur,
		Income:   M(finance.SumByType(monthTxs, finance.Income), cur),
		Expense:  M(finance.SumByType(monthTxs, finance.Expense), cur),
		Total:    M(finance.TotalBalance(txs), cur),
	}

	if settings.ModuleEnabled("budget") {
		for _, b := range budgets {
			if b.Month != month {
				continue
			}
			u := finance.BudgetUtilization(b, txs)
			level := "ok"
			switch {
			case u.Percentage >= 100 || (b.Amount.IsZero() && u.Spent.IsPositive()):
				level = "danger"
			case u.Percentage >= 80:
				level = "warning"
			}
			d.Budgets = append(d.Budgets, BudgetRow{
				Category:   b.Category,
				Spent:      M(u.Spent, cur),
				Limit:      M(b.Amount, cur),
				Percentage: u.Percentage,
				Level:      level,
			})
		}
	}

	if settings.BudgetAlerts {
		for _, a := range finance.BudgetAlerts(budgets, txs, month) {
			d.Alerts = append(d.Alerts, AlertRow{Level: string(a.Level), Title: a.Title, Message: a.Message})
		}
	}
	if settings.GoalAlerts {
		for _, a := range finance.GoalAlerts(goals, today) {
			d.Alerts = append(d.Alerts, AlertRow{Level: string(a.Level), Title: a.Title, Message: a.Message})
		}
	}

	for _, tx := range finance.RecentTransactions(txs, 5) {
		d.Recent = append(d.Recent, TransactionRow{
			Date:        tx.Date,
			Description: tx.Description,
			Category:    tx.Category,
			Type:        tx.Type,
			Amount:      M(tx.Amount, cur),
		})
	}

	if settings.ModuleEnabled("investments") && len(investments) > 0 {
		o := finance.InvestmentSummary(investments)
		d.Investments = &InvestmentTotal{
			Invested:         M(o.TotalInvested, cur),
			CurrentValue:     M(o.CurrentValue, cur),
			Return:           M(o.TotalReturn, cur),
			ReturnPercentage: o.ReturnPercentage,
		}
	}

	return d
}
