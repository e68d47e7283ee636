package finance

import "github.com/shopspring/decimal"

// Goal is a savings objective with a deadline. Current grows by user-entered
// progress deltas.
type Goal struct {
	Record
	Name     string          `json:"name"`
	Target   decimal.Decimal `json:"target"`
	Current  decimal.Decimal `json:"current"`
	Deadline Date            `gorm:"index;type:text" json:"deadline"`
}

// Progress returns the completion percentage, 0 when the target is zero.
func (g Goal) Progress() float64 {
	if g.Target.IsZero() {
		return 0
	}
	return g.Current.Div(g.Target).InexactFloat64() * 100
}

// AddProgress returns a copy of the goal with the delta added to Current.
func (g Goal) AddProgress(delta decimal.Decimal) Goal {
	g.Current = g.Current.Add(delta)
	return g
}
