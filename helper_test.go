package finance

import "github.com/shopspring/decimal"

// dec is a helper for tests to create decimals from consts.
func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// on is a helper for tests to create dates from their ISO form.
func on(s string) Date { return MustParseDate(s) }

// ym is a helper for tests to create months from their "2006-01" form.
func ym(s string) Month { return MustParseMonth(s) }
