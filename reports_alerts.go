package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AlertLevel is the severity of an alert.
type AlertLevel string

const (
	Danger  AlertLevel = "danger"
	Warning AlertLevel = "warning"
)

// Alert is one budget or goal warning, ready for the presentation layer.
type Alert struct {
	Level   AlertLevel
	Title   string
	Message string
}

// Utilization is the result of BudgetUtilization.
type Utilization struct {
	Spent      decimal.Decimal
	Percentage float64
}

// BudgetUtilization computes how much of the budget has been spent: the sum
// of expense transactions in the budget's category and month, and that sum
// as a percentage of the budget amount.
//
// A zero budget amount yields a 0 percentage rather than a division by
// zero; BudgetAlerts still flags such a budget as exceeded when anything
// was spent against it.
func BudgetUtilization(budget Budget, txs []Transaction) Utilization {
	spent := decimal.Zero
	for _, tx := range txs {
		if tx.Type == Expense && tx.Category == budget.Category && budget.Month.Contains(tx.Date) {
			spent = spent.Add(tx.Amount)
		}
	}
	u := Utilization{Spent: spent}
	if !budget.Amount.IsZero() {
		u.Percentage = spent.Div(budget.Amount).InexactFloat64() * 100
	}
	return u
}

// BudgetAlerts evaluates every budget of the current month: danger at 100%
// or more, warning from 80%. Duplicate budgets for one (category, month)
// are evaluated independently, each producing its own alert.
func BudgetAlerts(budgets []Budget, txs []Transaction, current Month) []Alert {
	var alerts []Alert
	for _, budget := range budgets {
		if budget.Month != current {
			continue
		}
		u := BudgetUtilization(budget, txs)
		exceeded := u.Percentage >= 100 || (budget.Amount.IsZero() && u.Spent.IsPositive())
		switch {
		case exceeded:
			alerts = append(alerts, Alert{
				Level:   Danger,
				Title:   "Budget exceeded",
				Message: fmt.Sprintf("category %q is %s over its budget", budget.Category, u.Spent.Sub(budget.Amount)),
			})
		case u.Percentage >= 80:
			alerts = append(alerts, Alert{
				Level:   Warning,
				Title:   "Budget almost exceeded",
				Message: fmt.Sprintf("category %q is at %.1f%% of its budget", budget.Category, u.Percentage),
			})
		}
	}
	return alerts
}

// GoalAlerts evaluates every goal against today: danger when the deadline
// has passed and the goal is below 100%, warning when fewer than 30 days
// remain and the goal is below 50%. A goal at exactly 100% on its deadline
// emits nothing: the completion check is strict.
func GoalAlerts(goals []Goal, today Date) []Alert {
	var alerts []Alert
	for _, goal := range goals {
		daysLeft := today.DaysUntil(goal.Deadline)
		percentage := goal.Progress()
		switch {
		case daysLeft <= 0 && percentage < 100:
			alerts = append(alerts, Alert{
				Level:   Danger,
				Title:   "Goal overdue",
				Message: fmt.Sprintf("goal %q is past its deadline at %.1f%% complete", goal.Name, percentage),
			})
		case daysLeft <= 30 && percentage < 50:
			alerts = append(alerts, Alert{
				Level:   Warning,
				Title:   "Goal at risk",
				Message: fmt.Sprintf("goal %q has %d days left and is only %.1f%% complete", goal.Name, daysLeft, percentage),
			})
		}
	}
	return alerts
}
