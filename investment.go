package finance

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// InvestmentType classifies an investment position.
type InvestmentType string

const (
	Stocks         InvestmentType = "stocks"
	Funds          InvestmentType = "funds"
	Crypto         InvestmentType = "crypto"
	Bonds          InvestmentType = "bonds"
	SavingsAccount InvestmentType = "savings"
	Other          InvestmentType = "other"
)

// ParseInvestmentType parses a string into an InvestmentType.
func ParseInvestmentType(s string) (InvestmentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stocks":
		return Stocks, nil
	case "funds":
		return Funds, nil
	case "crypto":
		return Crypto, nil
	case "bonds":
		return Bonds, nil
	case "savings":
		return SavingsAccount, nil
	case "other":
		return Other, nil
	default:
		return "", fmt.Errorf("unknown investment type: %q", s)
	}
}

// Investment is a position tracked by invested amount and current value.
// Values are user-entered; there is no market data feed.
type Investment struct {
	Record
	Name         string          `json:"name"`
	Type         InvestmentType  `gorm:"index" json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	Date         Date            `gorm:"index;type:text" json:"date"`
}

// Return is the absolute gain or loss of the position.
func (i Investment) Return() decimal.Decimal {
	return i.CurrentValue.Sub(i.Amount)
}
