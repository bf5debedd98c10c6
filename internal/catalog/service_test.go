package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	saved     [][]Product
	loadValue []Product
	loadErr   error
	saveErr   error
}

func (s *memoryStore) Load(ctx context.Context) ([]Product, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.loadValue, nil
}

func (s *memoryStore) Save(ctx context.Context, products []Product) error {
	s.saved = append(s.saved, products)
	return s.saveErr
}

func newTestService(store *memoryStore) *Service {
	return NewService(NewRepository(), store, nil)
}

func TestServiceLoadOrSeedUsesPersistedState(t *testing.T) {
	persisted := []Product{{ID: "p1", ItemName: "saved hoodie", Category: CategoryHoodie, Status: StatusInStock}}
	store := &memoryStore{loadValue: persisted}
	svc := newTestService(store)

	require.NoError(t, svc.LoadOrSeed(context.Background()))
	require.Equal(t, persisted, svc.Snapshot())
	require.Empty(t, store.saved)
}

func TestServiceLoadOrSeedSeedsWhenEmpty(t *testing.T) {
	store := &memoryStore{loadErr: ErrNoSnapshot}
	svc := newTestService(store)

	require.NoError(t, svc.LoadOrSeed(context.Background()))
	snapshot := svc.Snapshot()
	require.Len(t, snapshot, 2)
	require.Equal(t, "Boku Essential Hoodie", snapshot[0].ItemName)
	require.Equal(t, StatusInStock, snapshot[0].Status)
	require.Equal(t, "Logo Print Tee", snapshot[1].ItemName)
	require.Equal(t, StatusBooked, snapshot[1].Status)
	// the seed itself gets persisted
	require.Len(t, store.saved, 1)
}

func TestServiceLoadFailureFallsBackToSeed(t *testing.T) {
	store := &memoryStore{loadErr: errors.New("store down")}
	svc := newTestService(store)

	require.NoError(t, svc.LoadOrSeed(context.Background()))
	require.Len(t, svc.Snapshot(), 2)
}

func TestServiceMutationsPersistSnapshot(t *testing.T) {
	store := &memoryStore{}
	svc := newTestService(store)
	ctx := context.Background()

	p, err := svc.Create(ctx, Draft{ItemName: "tee", Category: CategoryTShirt, StockQuantity: 2, Status: StatusBooked})
	require.NoError(t, err)
	require.Len(t, store.saved, 1)

	p.SellingPrice = 40
	_, err = svc.Update(ctx, p)
	require.NoError(t, err)
	require.Len(t, store.saved, 2)

	_, err = svc.Advance(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, store.saved, 3)

	_, err = svc.SoftDelete(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, store.saved, 4)

	_, err = svc.Restore(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, store.saved, 5)

	require.NoError(t, svc.Purge(ctx, p.ID))
	require.Len(t, store.saved, 6)
	require.Empty(t, store.saved[5])
}

func TestServiceFailedMutationDoesNotPersist(t *testing.T) {
	store := &memoryStore{}
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.Advance(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = svc.SoftDelete(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, svc.Purge(ctx, "missing"), ErrNotFound)
	require.Empty(t, store.saved)
}

func TestServiceSaveFailureIsNonFatal(t *testing.T) {
	store := &memoryStore{saveErr: errors.New("store down")}
	svc := newTestService(store)

	p, err := svc.Create(context.Background(), Draft{ItemName: "tee", Category: CategoryTShirt, Status: StatusInStock})
	require.NoError(t, err)

	// collection stays authoritative in memory
	got, err := svc.Get(p.ID)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestServiceRejectsUnknownEnumValues(t *testing.T) {
	store := &memoryStore{}
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, Draft{ItemName: "tee", Category: "Socks", Status: StatusInStock})
	require.ErrorIs(t, err, ErrInvalidCategory)

	_, err = svc.Create(ctx, Draft{ItemName: "tee", Category: CategoryTShirt, Status: "Lost"})
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.Update(ctx, Product{ID: "p1", Category: "Socks", Status: StatusInStock})
	require.ErrorIs(t, err, ErrInvalidCategory)

	require.Empty(t, store.saved)
}
