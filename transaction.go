package finance

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Record is the part common to every stored record: the store-assigned
// identifier and the creation timestamp. The identifier is assigned by the
// store on Create and is immutable thereafter.
type Record struct {
	ID        uint      `gorm:"primarykey" json:"id,omitempty"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

// RecordID returns the store-assigned identifier, or 0 before Create.
func (r Record) RecordID() uint { return r.ID }

// TransactionType tells income from expense.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Tags is a set of free-form labels on a transaction. It is persisted as a
// single JSON array in a text column.
type Tags []string

// ParseTags splits a comma-separated list into tags, dropping empty items.
func ParseTags(s string) Tags {
	var tags Tags
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func (t Tags) String() string { return strings.Join(t, ", ") }

// Contains reports whether the tag is present.
func (t Tags) Contains(tag string) bool { return slices.Contains(t, tag) }

func (t Tags) Value() (driver.Value, error) {
	if len(t) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (t *Tags) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(t))
	case []byte:
		return json.Unmarshal(v, (*[]string)(t))
	case nil:
		*t = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Tags", src)
	}
}

// Transaction is a single income or expense movement.
//
// Category is a soft reference to Category.Name: it is resolved by value at
// read time and may dangle; see LookupCategory for the fallback.
type Transaction struct {
	Record
	Type        TransactionType `gorm:"index" json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `gorm:"index" json:"category"`
	Date        Date            `gorm:"index;type:text" json:"date"`
	Tags        Tags            `gorm:"type:text" json:"tags,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// ByType returns a predicate that filters transactions by type.
func ByType(typ TransactionType) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Type == typ }
}
