package renderer

import (
	"github.com/AndreKlarosk/finance"
)

// MonthlyView is the renderable form of a monthly report, with the amounts
// bound to the display currency.
type MonthlyView struct {
	Month   finance.Month `json:"month"`
	Income  Money         `json:"income"`
	Expense Money         `json:"expense"`
	Balance Money         `json:"balance"`
	Count   int           `json:"count"`

	Categories []CategoryRow `json:"categories,omitempty"`
	Tags       []TagRow      `json:"tags,omitempty"`
}

// CategoryRow is one line of the expenses-by-category table, largest first.
type CategoryRow struct {
	Name   string  `json:"name"`
	Amount Money   `json:"amount"`
	Share  float64 `json:"share"`
}

// TagRow is one line of the spending-by-tag table.
type TagRow struct {
	Tag    string `json:"tag"`
	Count  int    `json:"count"`
	Amount Money  `json:"amount"`
}

// NewMonthlyView binds a monthly report to the display currency.
func NewMonthlyView(r *finance.MonthlyReport, currency string) *MonthlyView {
	v := &MonthlyView{
		Month:   r.Month,
		Income:  M(r.Income, currency),
		Expense: M(r.Expense, currency),
		Balance: M(r.Balance, currency),
		Count:   r.Count,
	}
	for _, c := range r.Categories {
		v.Categories = append(v.Categories, CategoryRow{
			Name:   c.Category,
			Amount: M(c.Amount, currency),
			Share:  c.Share,
		})
	}
	for _, tg := range r.Tags {
		v.Tags = append(v.Tags, TagRow{
			Tag:    tg.Tag,
			Count:  tg.Count,
			Amount: M(tg.Amount, currency),
		})
	}
	return v
}
