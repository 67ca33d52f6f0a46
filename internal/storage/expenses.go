package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/budgetbuddy/internal/model"
)

// DefaultRecentLimit bounds GetRecentExpenses when the caller passes a
// non-positive limit.
const DefaultRecentLimit = 10

// InsertExpense writes a validated expense and returns the row ID assigned
// by SQLite. Amounts are stored as decimal strings to avoid float drift.
func (s *SQLiteStorage) InsertExpense(ctx context.Context, amount decimal.Decimal, category, note string) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(category, "category"); err != nil {
		return 0, err
	}
	if !amount.IsPositive() {
		return 0, fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidExpense, amount)
	}

	var noteValue sql.NullString
	if note != "" {
		noteValue = sql.NullString{String: note, Valid: true}
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (amount, category, note, date_added) VALUES (?, ?, ?, ?)`,
		amount.String(), category, noteValue, time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert expense: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get expense id: %w", err)
	}

	slog.Debug("inserted expense", "id", id, "category", category, "amount", amount)
	return id, nil
}

// GetRecentExpenses returns the most recently added expenses, newest first.
func (s *SQLiteStorage) GetRecentExpenses(ctx context.Context, limit int) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, amount, category, note, date_added
		FROM expenses
		ORDER BY date_added DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		var (
			expense   model.Expense
			amountStr string
			note      sql.NullString
		)
		if err := rows.Scan(&expense.ID, &amountStr, &expense.Category, &note, &expense.DateAdded); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.Amount, err = decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored amount %q: %w", amountStr, err)
		}
		expense.Note = note.String
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	return expenses, nil
}
