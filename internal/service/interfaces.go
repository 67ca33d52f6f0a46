// Package service defines the interfaces between the pipeline and its
// collaborators.
package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/budgetbuddy/internal/model"
)

// Storage is the persistence contract for expense records and per-user
// session blobs. Implementations own a shared, bounded connection pool; each
// operation acquires a connection for its duration and releases it
// unconditionally, including on failure.
type Storage interface {
	// InsertExpense writes a validated expense and returns the identifier
	// assigned by the store. Identifiers are opaque, unique and
	// monotonically assigned.
	InsertExpense(ctx context.Context, amount decimal.Decimal, category, note string) (int64, error)

	// GetRecentExpenses returns the most recently added expenses, newest
	// first.
	GetRecentExpenses(ctx context.Context, limit int) ([]model.Expense, error)

	// GetSession returns the raw session blob for a user, or
	// common.ErrNotFound when no session exists.
	GetSession(ctx context.Context, userID string) ([]byte, error)

	// SaveSession upserts the session blob for a user and bumps its
	// last-updated timestamp.
	SaveSession(ctx context.Context, userID string, state []byte) error

	// Migrate brings the schema up to the expected version.
	Migrate(ctx context.Context) error

	Close() error
}
