// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/budgetbuddy/internal/model"
)

var (
	// SuccessColor indicates a recorded expense.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates a clarification request.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates failures.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent output.
	SubtleColor = lipgloss.Color("#666666")

	successStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	warningStyle = lipgloss.NewStyle().Foreground(WarningColor)
	errorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	subtleStyle  = lipgloss.NewStyle().Foreground(SubtleColor)
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// Icons.
const (
	successIcon = "✓"
	errorIcon   = "✗"
	promptIcon  = "?"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return successStyle.Render(successIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return errorStyle.Render(errorIcon + " " + message)
}

// FormatClarification formats a clarification request with icon.
func FormatClarification(message string) string {
	return warningStyle.Render(promptIcon + " " + message)
}

// RenderResponse renders a pipeline response for terminal display.
func RenderResponse(resp model.Response) string {
	switch resp.Status {
	case model.ResponseSuccess:
		line := FormatSuccess(resp.Message)
		if resp.ExpenseID != nil {
			line += subtleStyle.Render(fmt.Sprintf("  (expense #%d)", *resp.ExpenseID))
		}
		return line
	case model.ResponseClarificationNeeded:
		return FormatClarification(resp.Message)
	default:
		return FormatError(resp.Message)
	}
}

// RenderExpenses renders a list of expenses as an aligned table, newest
// first.
func RenderExpenses(expenses []model.Expense) string {
	if len(expenses) == 0 {
		return subtleStyle.Render("No expenses recorded yet.")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-6s %-12s %-16s %-12s %s", "ID", "AMOUNT", "CATEGORY", "DATE", "NOTE")))
	b.WriteString("\n")
	for _, expense := range expenses {
		fmt.Fprintf(&b, "%-6d %-12s %-16s %-12s %s\n",
			expense.ID,
			model.FormatCurrency(expense.Amount),
			expense.Category,
			expense.DateAdded.Format("2006-01-02"),
			expense.Note)
	}
	return strings.TrimRight(b.String(), "\n")
}
