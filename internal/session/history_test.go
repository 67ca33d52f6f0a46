package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/budgetbuddy/internal/common"
	"github.com/Veraticus/budgetbuddy/internal/model"
)

// fakeStorage implements the session-facing subset of service.Storage in
// memory.
type fakeStorage struct {
	sessions map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{sessions: make(map[string][]byte)}
}

func (f *fakeStorage) GetSession(_ context.Context, userID string) ([]byte, error) {
	raw, ok := f.sessions[userID]
	if !ok {
		return nil, fmt.Errorf("%w: session for user %q", common.ErrNotFound, userID)
	}
	return raw, nil
}

func (f *fakeStorage) SaveSession(_ context.Context, userID string, state []byte) error {
	f.sessions[userID] = state
	return nil
}

func (f *fakeStorage) InsertExpense(_ context.Context, _ decimal.Decimal, _, _ string) (int64, error) {
	return 0, nil
}

func (f *fakeStorage) GetRecentExpenses(_ context.Context, _ int) ([]model.Expense, error) {
	return nil, nil
}

func (f *fakeStorage) Migrate(_ context.Context) error { return nil }
func (f *fakeStorage) Close() error                    { return nil }

func TestAppend_EvictsOldestBeyondCap(t *testing.T) {
	var history []model.HistoryEntry
	for i := 0; i < MaxEntries+1; i++ {
		history = Append(history, model.HistoryEntry{
			Text:   fmt.Sprintf("turn %d", i),
			Status: model.StatusError,
		})
	}

	require.Len(t, history, MaxEntries)
	// Turn 0 was evicted; turns 1..10 remain in order.
	assert.Equal(t, "turn 1", history[0].Text)
	assert.Equal(t, fmt.Sprintf("turn %d", MaxEntries), history[MaxEntries-1].Text)
}

func TestLoad_MissingSessionIsEmpty(t *testing.T) {
	manager := NewManager(newFakeStorage())

	history, err := manager.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	manager := NewManager(newFakeStorage())
	ctx := context.Background()

	amount := decimal.NewFromInt(30)
	history := []model.HistoryEntry{
		{Text: "thirty bucks groceries", Status: model.StatusError},
		{
			Text:   `{"amount": 30}`,
			Status: model.StatusValid,
			Parsed: &model.ExpenseIntent{Action: model.ActionAdd, Amount: &amount, Category: "groceries"},
		},
	}

	require.NoError(t, manager.Save(ctx, "me", history))

	got, err := manager.Load(ctx, "me")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.StatusError, got[0].Status)
	assert.Nil(t, got[0].Parsed)
	require.NotNil(t, got[1].Parsed)
	assert.True(t, got[1].Parsed.Amount.Equal(amount))
	assert.Equal(t, "groceries", got[1].Parsed.Category)
}

func TestLoad_CorruptBlob(t *testing.T) {
	store := newFakeStorage()
	store.sessions["me"] = []byte("not json")
	manager := NewManager(store)

	_, err := manager.Load(context.Background(), "me")
	require.Error(t, err)
}
