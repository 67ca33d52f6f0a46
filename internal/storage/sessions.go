package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/budgetbuddy/internal/common"
)

// GetSession returns the raw session blob for a user, or common.ErrNotFound
// when no session row exists.
func (s *SQLiteStorage) GetSession(ctx context.Context, userID string) ([]byte, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT state_json FROM sessions WHERE user_id = ?`, userID,
	).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: session for user %q", common.ErrNotFound, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	return blob, nil
}

// SaveSession upserts the session blob for a user. Existing contents are
// overwritten and the last-updated timestamp is bumped; the write is
// last-write-wins across concurrent invocations for the same user.
func (s *SQLiteStorage) SaveSession(ctx context.Context, userID string, state []byte) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if len(state) == 0 {
		return fmt.Errorf("%w: state", ErrEmptyString)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (user_id, state_json, last_updated)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			state_json = excluded.state_json,
			last_updated = excluded.last_updated`,
		userID, string(state), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}
