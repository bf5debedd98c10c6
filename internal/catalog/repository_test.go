package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testDraft(name string) Draft {
	return Draft{
		ItemName:       name,
		Category:       CategoryHoodie,
		InvestmentCost: 25,
		SellingPrice:   65,
		StockQuantity:  10,
		Status:         StatusInStock,
	}
}

func TestRepositoryAddPrependsNewestFirst(t *testing.T) {
	repo := NewRepository()
	first := repo.Add(testDraft("first"))
	second := repo.Add(testDraft("second"))

	require.NotEmpty(t, first.ID)
	require.NotEqual(t, first.ID, second.ID)
	require.False(t, first.IsTrash)
	require.False(t, first.CreatedAt.IsZero())

	snapshot := repo.Snapshot()
	require.Len(t, snapshot, 2)
	require.Equal(t, "second", snapshot[0].ItemName)
	require.Equal(t, "first", snapshot[1].ItemName)
}

func TestRepositoryUpdatePreservesIdentityFields(t *testing.T) {
	repo := NewRepository()
	stored := repo.Add(testDraft("hoodie"))

	edit := stored
	edit.ItemName = "renamed hoodie"
	edit.SellingPrice = 70
	edit.IsTrash = true                                // must not stick
	edit.CreatedAt = stored.CreatedAt.AddDate(1, 0, 0) // must not stick

	updated, err := repo.Update(edit)
	require.NoError(t, err)
	require.Equal(t, "renamed hoodie", updated.ItemName)
	require.Equal(t, 70.0, updated.SellingPrice)
	require.False(t, updated.IsTrash)
	require.Equal(t, stored.CreatedAt, updated.CreatedAt)
}

func TestRepositoryUpdateUnknownID(t *testing.T) {
	repo := NewRepository()
	repo.Add(testDraft("hoodie"))

	_, err := repo.Update(Product{ID: "missing"})
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, 1, repo.Len())
}

func TestRepositoryTrashRoundTrip(t *testing.T) {
	repo := NewRepository()
	stored := repo.Add(testDraft("hoodie"))

	trashed, err := repo.SoftDelete(stored.ID)
	require.NoError(t, err)
	require.True(t, trashed.IsTrash)
	require.Empty(t, repo.Active())
	require.Len(t, repo.Trashed(), 1)

	// still retrievable while trashed
	got, err := repo.Get(stored.ID)
	require.NoError(t, err)
	require.True(t, got.IsTrash)

	restored, err := repo.Restore(stored.ID)
	require.NoError(t, err)
	require.Equal(t, stored, restored)
	require.Len(t, repo.Active(), 1)
	require.Empty(t, repo.Trashed())
}

func TestRepositoryPurgeIsIrreversible(t *testing.T) {
	repo := NewRepository()
	stored := repo.Add(testDraft("hoodie"))

	require.NoError(t, repo.Purge(stored.ID))
	require.Equal(t, 0, repo.Len())

	_, err := repo.Get(stored.ID)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = repo.Update(Product{ID: stored.ID})
	require.ErrorIs(t, err, ErrNotFound)
	_, err = repo.SoftDelete(stored.ID)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = repo.Restore(stored.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, repo.Purge(stored.ID), ErrNotFound)
}

func TestRepositoryAdvanceMutatesSingleRecord(t *testing.T) {
	repo := NewRepository()
	booked := repo.Add(Draft{ItemName: "tee", Category: CategoryTShirt, StockQuantity: 5, Status: StatusBooked, SellingPrice: 35, InvestmentCost: 12})
	bystander := repo.Add(testDraft("hoodie"))

	advanced, err := repo.Advance(booked.ID)
	require.NoError(t, err)
	require.Equal(t, StatusDelivered, advanced.Status)
	require.Equal(t, 4, advanced.StockQuantity)

	same, err := repo.Get(bystander.ID)
	require.NoError(t, err)
	require.Equal(t, bystander, same)

	_, err = repo.Advance("missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRepositoryBookedView(t *testing.T) {
	repo := NewRepository()
	repo.Add(testDraft("in stock"))
	booked := repo.Add(Draft{ItemName: "tee", Category: CategoryTShirt, StockQuantity: 5, Status: StatusBooked})
	trashedBooked := repo.Add(Draft{ItemName: "pants", Category: CategoryPants, StockQuantity: 2, Status: StatusBooked})
	_, err := repo.SoftDelete(trashedBooked.ID)
	require.NoError(t, err)

	view := repo.Booked()
	require.Len(t, view, 1)
	require.Equal(t, booked.ID, view[0].ID)
}

func TestRepositoryLoadReplacesCollection(t *testing.T) {
	repo := NewRepository()
	repo.Add(testDraft("stale"))

	repo.Load(SeedProducts(repo.now()))
	snapshot := repo.Snapshot()
	require.Len(t, snapshot, 2)
	require.Equal(t, "Boku Essential Hoodie", snapshot[0].ItemName)
}

func TestRepositorySnapshotIsACopy(t *testing.T) {
	repo := NewRepository()
	repo.Add(testDraft("hoodie"))

	snapshot := repo.Snapshot()
	snapshot[0].ItemName = "mutated"

	fresh := repo.Snapshot()
	require.Equal(t, "hoodie", fresh[0].ItemName)
}
