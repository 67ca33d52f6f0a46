package model

// ValidationStatus is the outcome of running a candidate intent through the
// validation rules. Exactly one status holds after validation runs.
type ValidationStatus string

// Validation statuses.
const (
	StatusPending         ValidationStatus = "pending"
	StatusValid           ValidationStatus = "valid"
	StatusInvalidAmount   ValidationStatus = "invalid_amount"
	StatusInvalidCategory ValidationStatus = "invalid_category"
	StatusError           ValidationStatus = "error"
)

// HistoryEntry records one completed pipeline turn. Entries are immutable
// once appended; Parsed is a snapshot taken after validation.
type HistoryEntry struct {
	Parsed *ExpenseIntent   `json:"parsed"`
	Text   string           `json:"text"`
	Status ValidationStatus `json:"status"`
}

// PipelineState is threaded through the pipeline stages for a single
// invocation. It is created fresh per call (only History is loaded from the
// prior session), mutated exclusively by the stages in sequence, and
// discarded once its terminal fields are folded into a HistoryEntry and a
// Response.
type PipelineState struct {
	Parsed               *ExpenseIntent
	ExpenseID            *int64
	Text                 string
	UserID               string
	Status               ValidationStatus
	ClarificationMessage string
	History              []HistoryEntry
	NeedsClarification   bool
}
