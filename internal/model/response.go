package model

import "github.com/shopspring/decimal"

// Response statuses returned to callers. These are the only three shapes a
// caller ever sees; internal faults never escape as raw errors.
const (
	ResponseSuccess             = "success"
	ResponseError               = "error"
	ResponseClarificationNeeded = "clarification_needed"
)

// Response is the caller-facing result of processing one expense utterance.
// ExpenseID, Amount and Category are only set on success.
type Response struct {
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	ExpenseID *int64           `json:"expense_id,omitempty"`
	Status    string           `json:"status"`
	Message   string           `json:"message"`
	Category  string           `json:"category,omitempty"`
}
