package catalog

import (
	"context"
	"log/slog"
	"time"
)

// Service coordinates the in-memory repository with the snapshot store:
// the collection is loaded (or seeded) once at startup, and every
// successful mutation triggers one persistence write of the full snapshot.
// A failed write is logged and otherwise ignored; the in-memory state
// stays authoritative.
type Service struct {
	repo   *Repository
	store  SnapshotStore
	logger *slog.Logger
}

// NewService wires a Repository with a SnapshotStore.
func NewService(repo *Repository, store SnapshotStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, store: store, logger: logger}
}

// LoadOrSeed fills the repository from the persisted snapshot. Absent or
// unreadable state seeds the starter products and persists them.
func (s *Service) LoadOrSeed(ctx context.Context) error {
	products, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Info("no usable snapshot, seeding starter products", slog.Any("reason", err))
		products = SeedProducts(time.Now().UTC())
		s.repo.Load(products)
		s.persist(ctx)
		return nil
	}
	s.repo.Load(products)
	return nil
}

// Create stores a new product and persists the collection.
func (s *Service) Create(ctx context.Context, draft Draft) (Product, error) {
	if !draft.Category.Valid() {
		return Product{}, ErrInvalidCategory
	}
	if !draft.Status.Valid() {
		return Product{}, ErrInvalidStatus
	}
	p := s.repo.Add(draft)
	s.persist(ctx)
	return p, nil
}

// Update overwrites the editable fields of an existing product.
func (s *Service) Update(ctx context.Context, record Product) (Product, error) {
	if !record.Category.Valid() {
		return Product{}, ErrInvalidCategory
	}
	if !record.Status.Valid() {
		return Product{}, ErrInvalidStatus
	}
	p, err := s.repo.Update(record)
	if err != nil {
		return Product{}, err
	}
	s.persist(ctx)
	return p, nil
}

// Advance moves a product one step through its lifecycle.
func (s *Service) Advance(ctx context.Context, id string) (Product, error) {
	p, err := s.repo.Advance(id)
	if err != nil {
		return Product{}, err
	}
	s.persist(ctx)
	return p, nil
}

// SoftDelete moves a product to the trash.
func (s *Service) SoftDelete(ctx context.Context, id string) (Product, error) {
	p, err := s.repo.SoftDelete(id)
	if err != nil {
		return Product{}, err
	}
	s.persist(ctx)
	return p, nil
}

// Restore brings a trashed product back unchanged.
func (s *Service) Restore(ctx context.Context, id string) (Product, error) {
	p, err := s.repo.Restore(id)
	if err != nil {
		return Product{}, err
	}
	s.persist(ctx)
	return p, nil
}

// Purge removes a product permanently.
func (s *Service) Purge(ctx context.Context, id string) error {
	if err := s.repo.Purge(id); err != nil {
		return err
	}
	s.persist(ctx)
	return nil
}

// Get looks up a single record by id.
func (s *Service) Get(id string) (Product, error) {
	return s.repo.Get(id)
}

// Active returns the non-trashed records driving the shop floor view and
// all analytics.
func (s *Service) Active() []Product {
	return s.repo.Active()
}

// Booked returns non-trashed records awaiting delivery.
func (s *Service) Booked() []Product {
	return s.repo.Booked()
}

// Trashed returns soft-deleted records.
func (s *Service) Trashed() []Product {
	return s.repo.Trashed()
}

// Snapshot returns the full collection, trash included.
func (s *Service) Snapshot() []Product {
	return s.repo.Snapshot()
}

func (s *Service) persist(ctx context.Context) {
	if err := s.store.Save(ctx, s.repo.Snapshot()); err != nil {
		s.logger.Error("persist snapshot", slog.Any("error", err))
	}
}
