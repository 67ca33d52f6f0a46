package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Prompts holds the named prompt templates used by the pipeline. Templates
// may contain the placeholders {text}, {categories}, {amount} and
// {category}; unrecognized placeholders pass through untouched.
type Prompts struct {
	ParseExpense    string
	ClarifyAmount   string
	ClarifyCategory string
}

// Default prompt templates, used when the config file does not override
// them.
const (
	defaultParseExpense = `Extract the expense from this text: "{text}"

Valid categories: {categories}

Respond with only a JSON object in this exact format:
{"action": "add", "amount": <number>, "category": "<category>", "note": "<short note>"}

Omit any field you cannot determine. Do not invent an amount.`

	defaultClarifyAmount = `I couldn't find a valid amount in '{text}'. How much did you spend?`

	defaultClarifyCategory = `'{category}' isn't a category I know. For '{text}' ({amount}), please choose one of: {categories}`
)

// DefaultPrompts returns the built-in prompt templates.
func DefaultPrompts() Prompts {
	return Prompts{
		ParseExpense:    defaultParseExpense,
		ClarifyAmount:   defaultClarifyAmount,
		ClarifyCategory: defaultClarifyCategory,
	}
}

func promptsFromViper(v *viper.Viper) Prompts {
	prompts := DefaultPrompts()
	if s := v.GetString("prompts.parse_expense"); s != "" {
		prompts.ParseExpense = s
	}
	if s := v.GetString("prompts.clarify_amount"); s != "" {
		prompts.ClarifyAmount = s
	}
	if s := v.GetString("prompts.clarify_category"); s != "" {
		prompts.ClarifyCategory = s
	}
	return prompts
}

// RenderTemplate substitutes {name} placeholders in a prompt template with
// the supplied values.
func RenderTemplate(tmpl string, vars map[string]string) string {
	if len(vars) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
