package finance

import "github.com/shopspring/decimal"

// Budget is a spending ceiling for one category in one month.
//
// The store does not enforce uniqueness of (Category, Month): duplicate
// budgets are tolerated and evaluated independently by the alert functions.
type Budget struct {
	Record
	Category string          `gorm:"index" json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Month    Month           `gorm:"index;type:text" json:"month"`
}
