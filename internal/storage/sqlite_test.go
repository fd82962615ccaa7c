package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paisawatch/paisawatch/internal/common"
	"github.com/paisawatch/paisawatch/internal/model"
	"github.com/paisawatch/paisawatch/internal/service"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestSQLiteStore_MigrateIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Migrate(context.Background()))
}

func TestSQLiteStore_MigrateRejectsNewerSchema(t *testing.T) {
	store := newTestStore(t)

	_, err := store.db.Exec("PRAGMA user_version = 99")
	require.NoError(t, err)

	err = store.Migrate(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDatabaseCorrupted)
}

func TestSQLiteStore_Messages(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	base := time.Date(2024, 12, 9, 10, 0, 0, 0, time.UTC)
	messages := []model.RawMessage{
		{SourceID: "sms-1", Sender: "VM-HDFCBK", Body: "Sent Rs.5.00", Timestamp: base.Add(2 * time.Hour)},
		{SourceID: "sms-2", Body: "credited with INR 1500.00", Timestamp: base.Add(time.Hour)},
		{SourceID: "sms-3", Body: "Hello", Timestamp: base},
	}
	require.NoError(t, store.SaveMessages(ctx, messages))

	t.Run("newest first", func(t *testing.T) {
		got, err := store.Query(ctx, 10, service.OrderNewestFirst)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "sms-1", got[0].SourceID)
		assert.Equal(t, "VM-HDFCBK", got[0].Sender)
		assert.Equal(t, "sms-3", got[2].SourceID)
	})

	t.Run("oldest first", func(t *testing.T) {
		got, err := store.Query(ctx, 10, service.OrderOldestFirst)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "sms-3", got[0].SourceID)
	})

	t.Run("limit", func(t *testing.T) {
		got, err := store.Query(ctx, 2, service.OrderNewestFirst)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("reimport is an upsert", func(t *testing.T) {
		updated := []model.RawMessage{
			{SourceID: "sms-3", Body: "Hello again", Timestamp: base},
		}
		require.NoError(t, store.SaveMessages(ctx, updated))

		count, err := store.CountMessages(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("rejects non-positive limit", func(t *testing.T) {
		_, err := store.Query(ctx, 0, service.OrderNewestFirst)
		assert.Error(t, err)
	})
}

func TestSQLiteStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.SaveProcessed(ctx, "sms-1"))
	require.NoError(t, store.SaveDeleted(ctx, "sms-2"))

	// Idempotent, and the first recorded state wins
	require.NoError(t, store.SaveProcessed(ctx, "sms-1"))
	require.NoError(t, store.SaveDeleted(ctx, "sms-1"))

	processed, deleted, err := store.LoadResolved(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"sms-1"}, processed)
	assert.Equal(t, []string{"sms-2"}, deleted)
}

func TestSQLiteStore_Ledger(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	base := time.Date(2024, 12, 9, 10, 0, 0, 0, time.UTC)
	expense := model.CandidateTransaction{
		SourceID:  "sms-1",
		Title:     "Bank transaction",
		Category:  "Subscriptions",
		Amount:    "₹5.00",
		Direction: model.DirectionExpense,
		Timestamp: base,
	}
	income := model.CandidateTransaction{
		SourceID:  "sms-2",
		Title:     "Salary",
		Category:  "Income",
		Amount:    "₹1500.00",
		Direction: model.DirectionIncome,
		Timestamp: base.Add(time.Hour),
	}

	require.NoError(t, store.Record(ctx, expense))
	require.NoError(t, store.Record(ctx, income))

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first; expenses are negative, income positive
	assert.Equal(t, "Salary", entries[0].Title)
	assert.True(t, entries[0].Amount.Equal(decimal.RequireFromString("1500.00")))
	assert.Equal(t, "Bank transaction", entries[1].Title)
	assert.True(t, entries[1].Amount.Equal(decimal.RequireFromString("-5.00")))
}

func TestSQLiteStore_RecordRejectsUnparseableAmount(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	bad := model.CandidateTransaction{
		SourceID:  "sms-1",
		Amount:    model.AmountNone,
		Direction: model.DirectionExpense,
		Timestamp: time.Now(),
	}
	assert.Error(t, store.Record(ctx, bad))
}

func TestSQLiteStore_RecordAcceptsBareNumericAmount(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	manual := model.CandidateTransaction{
		SourceID:  "manual-1",
		Title:     "Chai",
		Category:  "Food",
		Amount:    "20",
		Direction: model.DirectionExpense,
		Timestamp: time.Now(),
	}
	require.NoError(t, store.Record(ctx, manual))

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Amount.Equal(decimal.NewFromInt(-20)))
}
