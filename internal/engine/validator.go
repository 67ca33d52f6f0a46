package engine

import (
	"strings"

	"github.com/Veraticus/budgetbuddy/internal/config"
	"github.com/Veraticus/budgetbuddy/internal/model"
)

// Fixed messages for outcomes that have no configurable template.
const (
	msgNoIntent      = "I couldn't understand that. Please try again with something like 'add 30 dollars for groceries'"
	msgPersistFailed = "Sorry, there was an error saving your expense. Please try again."
	msgGenericError  = "Sorry, something went wrong. Please try again."
)

// defaultCategory is assigned when the model produced an amount but no
// category.
const defaultCategory = "other"

// Validator applies the business rules to a candidate intent.
type Validator struct {
	prompts    config.Prompts
	categories []string
}

// NewValidator creates a validator over the configured category set and
// clarification templates.
func NewValidator(categories []string, prompts config.Prompts) *Validator {
	return &Validator{categories: categories, prompts: prompts}
}

// Validate checks a candidate intent against the business rules, in order:
// absent intent, non-positive or missing amount, unknown category. On a
// category match the candidate's Category is rewritten in place to the
// canonical configured spelling; an absent category defaults to "other".
// This is the only stage permitted to mutate the candidate.
//
// The returned message is empty exactly when the status is valid.
func (v *Validator) Validate(parsed *model.ExpenseIntent, originalText string) (model.ValidationStatus, string) {
	if parsed == nil {
		return model.StatusError, msgNoIntent
	}

	if parsed.Amount == nil || !parsed.Amount.IsPositive() {
		message := config.RenderTemplate(v.prompts.ClarifyAmount, map[string]string{
			"text": originalText,
		})
		return model.StatusInvalidAmount, message
	}

	if parsed.Category == "" {
		parsed.Category = defaultCategory
		return model.StatusValid, ""
	}

	normalized := NormalizeCategory(parsed.Category, v.categories)
	if normalized == "" {
		message := config.RenderTemplate(v.prompts.ClarifyCategory, map[string]string{
			"text":       originalText,
			"amount":     parsed.Amount.String(),
			"category":   parsed.Category,
			"categories": strings.Join(v.categories, ", "),
		})
		return model.StatusInvalidCategory, message
	}

	parsed.Category = normalized
	return model.StatusValid, ""
}
