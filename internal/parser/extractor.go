// Package parser recovers structured expense intents from raw language
// model output.
package parser

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/Veraticus/budgetbuddy/internal/model"
)

var (
	// Bare JSON objects with no nested braces.
	jsonObjectPattern = regexp.MustCompile(`\{[^{}]*\}`)
	// Fenced code blocks, optionally tagged as json.
	codeBlockPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
)

// ExtractIntent pulls an expense intent out of model response text that may
// contain surrounding prose. Strategies are tried in order, first success
// wins: the trimmed full text as JSON, then each brace-delimited candidate
// in order of appearance, then each fenced code block.
//
// A nil result means no intent was found. That is a normal outcome the
// validator handles, not an error.
func ExtractIntent(text string) *model.ExpenseIntent {
	if intent := tryUnmarshal(strings.TrimSpace(text)); intent != nil {
		return intent
	}

	for _, candidate := range jsonObjectPattern.FindAllString(text, -1) {
		if intent := tryUnmarshal(candidate); intent != nil {
			return intent
		}
	}

	for _, groups := range codeBlockPattern.FindAllStringSubmatch(text, -1) {
		if intent := tryUnmarshal(groups[1]); intent != nil {
			return intent
		}
	}

	return nil
}

func tryUnmarshal(candidate string) *model.ExpenseIntent {
	if !strings.HasPrefix(candidate, "{") {
		return nil
	}

	var intent model.ExpenseIntent
	if err := json.Unmarshal([]byte(candidate), &intent); err != nil {
		return nil
	}
	if intent.Action == "" {
		intent.Action = model.ActionAdd
	}
	return &intent
}
