package parser

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/budgetbuddy/internal/model"
)

func TestExtractIntent(t *testing.T) {
	tests := []struct {
		want  *model.ExpenseIntent
		name  string
		input string
	}{
		{
			name:  "bare JSON object",
			input: `{"amount": 30, "category": "groceries"}`,
			want:  intentWith("add", "30", "groceries", ""),
		},
		{
			name:  "whitespace around object",
			input: "  \n {\"amount\": 12.5, \"category\": \"dining\", \"note\": \"lunch\"} \n",
			want:  intentWith("add", "12.5", "dining", "lunch"),
		},
		{
			name:  "object embedded in prose",
			input: `Sure! Here's the parsed expense: {"amount": 30, "category": "groceries"} Let me know if that's wrong.`,
			want:  intentWith("add", "30", "groceries", ""),
		},
		{
			name: "first parseable object wins",
			input: `{not json} then {"amount": 5, "category": "dining"} and {"amount": 9}`,
			want: intentWith("add", "5", "dining", ""),
		},
		{
			// The brace scan finds the inner object first; its unknown
			// fields are ignored so an empty intent comes back.
			name:  "nested braces match innermost object",
			input: "```json\n{\"amount\": 30,\n \"category\": {\"name\": \"groceries\"}}\n```",
			want:  &model.ExpenseIntent{Action: "add"},
		},
		{
			name: "fenced code block with nested-brace-free object",
			input: "The result:\n```json\n{\"amount\": 30, \"category\": \"groceries\"}\n```\n",
			want: intentWith("add", "30", "groceries", ""),
		},
		{
			name:  "explicit action preserved",
			input: `{"action": "add", "amount": 3, "category": "dining"}`,
			want:  intentWith("add", "3", "dining", ""),
		},
		{
			name:  "amount absent",
			input: `{"category": "groceries"}`,
			want:  &model.ExpenseIntent{Action: "add", Category: "groceries"},
		},
		{
			name:  "empty object",
			input: `{}`,
			want:  &model.ExpenseIntent{Action: "add"},
		},
		{
			name:  "no JSON at all",
			input: "I'm sorry, I couldn't determine an amount from that.",
			want:  nil,
		},
		{
			name:  "malformed JSON only",
			input: `{"amount": thirty, "category": groceries}`,
			want:  nil,
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractIntent(tt.input)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("ExtractIntent(%q) = %+v, want nil", tt.input, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ExtractIntent(%q) = nil, want %+v", tt.input, tt.want)
			}
			if got.Action != tt.want.Action || got.Category != tt.want.Category || got.Note != tt.want.Note {
				t.Errorf("ExtractIntent(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			switch {
			case tt.want.Amount == nil:
				if got.Amount != nil {
					t.Errorf("expected absent amount, got %s", got.Amount)
				}
			case got.Amount == nil:
				t.Errorf("expected amount %s, got nil", tt.want.Amount)
			case !got.Amount.Equal(*tt.want.Amount):
				t.Errorf("expected amount %s, got %s", tt.want.Amount, got.Amount)
			}
		})
	}
}

func intentWith(action, amount, category, note string) *model.ExpenseIntent {
	amt := decimal.RequireFromString(amount)
	return &model.ExpenseIntent{Action: action, Amount: &amt, Category: category, Note: note}
}
