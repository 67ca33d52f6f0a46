// Package model defines the core types shared across the budgetbuddy pipeline.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActionAdd is the default intent action when the model response omits one.
const ActionAdd = "add"

// ExpenseIntent is the candidate expense recovered from a language model
// response, prior to validation. A nil Amount or empty Category means the
// model did not produce that field. Category is rewritten to its canonical
// configured spelling during validation.
type ExpenseIntent struct {
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Action   string           `json:"action"`
	Category string           `json:"category,omitempty"`
	Note     string           `json:"note,omitempty"`
}

// Clone returns a deep copy of the intent, so history snapshots stay
// immutable when later stages mutate the original.
func (e *ExpenseIntent) Clone() *ExpenseIntent {
	if e == nil {
		return nil
	}
	clone := *e
	if e.Amount != nil {
		amount := *e.Amount
		clone.Amount = &amount
	}
	return &clone
}

// Expense is a persisted expense record.
type Expense struct {
	DateAdded time.Time
	Category  string
	Note      string
	Amount    decimal.Decimal
	ID        int64
}

// FormatCurrency renders an amount as a dollar string with two decimal
// places, e.g. "$30.00".
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
