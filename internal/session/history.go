// Package session persists bounded per-user conversation history between
// pipeline invocations.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Veraticus/budgetbuddy/internal/common"
	"github.com/Veraticus/budgetbuddy/internal/model"
	"github.com/Veraticus/budgetbuddy/internal/service"
)

// MaxEntries bounds the per-user history; the oldest turns are evicted
// first.
const MaxEntries = 10

// blob is the session state layout stored per user.
type blob struct {
	History []model.HistoryEntry `json:"history"`
}

// Manager loads and saves session history through the storage layer. History
// is saved unconditionally after every invocation, so error and
// clarification turns also become context for later turns.
type Manager struct {
	storage service.Storage
}

// NewManager creates a session manager backed by the given storage.
func NewManager(storage service.Storage) *Manager {
	return &Manager{storage: storage}
}

// Load returns the stored history for a user, oldest first. A missing
// session yields an empty history, not an error.
func (m *Manager) Load(ctx context.Context, userID string) ([]model.HistoryEntry, error) {
	raw, err := m.storage.GetSession(ctx, userID)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var state blob
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return state.History, nil
}

// Save upserts the history for a user.
func (m *Manager) Save(ctx context.Context, userID string, history []model.HistoryEntry) error {
	if history == nil {
		history = []model.HistoryEntry{}
	}
	raw, err := json.Marshal(blob{History: history})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := m.storage.SaveSession(ctx, userID, raw); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Append adds an entry and drops the oldest entries beyond MaxEntries.
func Append(history []model.HistoryEntry, entry model.HistoryEntry) []model.HistoryEntry {
	history = append(history, entry)
	if len(history) > MaxEntries {
		history = history[len(history)-MaxEntries:]
	}
	return history
}
