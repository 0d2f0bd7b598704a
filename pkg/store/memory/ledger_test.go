package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallyweb/backoffice/pkg/models/domain"
)

func TestLedgerStore_Add(t *testing.T) {
	ctx := context.Background()
	store := NewLedgerStore(SeedLedgerEntries())

	added, err := store.Add(ctx, domain.LedgerEntry{
		Date:        "2023-10-15",
		Description: "Consulting Income",
		Credit:      5000,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "General", added.Category)
	// Seed net position is 120000; the new credit lands on top.
	assert.Equal(t, 125000.0, added.Balance)

	entries, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
	assert.Equal(t, added, entries[3])
}

func TestLedgerStore_AddRejectsZeroAmounts(t *testing.T) {
	store := NewLedgerStore(nil)

	_, err := store.Add(context.Background(), domain.LedgerEntry{Date: "2023-10-15", Description: "Nothing"})
	assert.Error(t, err)
}

func TestLedgerStore_Update(t *testing.T) {
	ctx := context.Background()
	store := NewLedgerStore(SeedLedgerEntries())

	updated, err := store.Update(ctx, "2", domain.LedgerEntry{
		Date:        "2023-10-05",
		Description: "Office Rent (corrected)",
		Debit:       16000,
		Balance:     84000,
		Category:    "Expenses",
	})
	require.NoError(t, err)
	assert.Equal(t, "2", updated.ID)
	assert.Equal(t, "Office Rent (corrected)", updated.Description)

	_, err = store.Update(ctx, "missing", domain.LedgerEntry{Debit: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLedgerStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewLedgerStore(SeedLedgerEntries())

	require.NoError(t, store.Delete(ctx, "2"))

	entries, err := store.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "1", entries[0].ID)
	assert.Equal(t, "3", entries[1].ID)

	assert.ErrorIs(t, store.Delete(ctx, "2"), ErrNotFound)
}

func TestLedgerStore_Balance(t *testing.T) {
	ctx := context.Background()
	store := NewLedgerStore(SeedLedgerEntries())

	balance, err := store.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 120000.0, balance)
}

func TestLedgerStore_SnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	store := NewLedgerStore(SeedLedgerEntries())

	entries, err := store.Snapshot(ctx)
	require.NoError(t, err)
	entries[0].Description = "tampered"

	fresh, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Initial Investment", fresh[0].Description)
}
