package renderer

import (
	"bytes"
	"io"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/AndreKlarosk/finance"
)

// Money is an amount bound to its display currency. It exists so that view
// structs carry values the templates can print directly.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// M creates a Money in the given ISO currency code.
func M(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// String formats the amount with the symbol and separators of its currency.
// An unknown currency code falls back to the default currency.
func (m Money) String() string {
	cur := money.GetCurrency(m.Currency)
	if cur == nil {
		cur = money.GetCurrency(finance.DefaultSettings().Currency)
	}
	units := m.Amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(units, cur.Code).Display()
}

// SignedString is like String but with an explicit sign for positive amounts.
func (m Money) SignedString() string {
	if m.Amount.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// ConditionalBlock lets you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}
