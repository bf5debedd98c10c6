package catalog

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository holds the authoritative in-memory product collection.
// The source of truth is this ordered slice, newest first; the snapshot
// store only persists copies of it. All methods are safe for concurrent
// use by HTTP handlers.
type Repository struct {
	mu       sync.RWMutex
	products []Product

	now   func() time.Time
	newID func() string
}

// NewRepository builds an empty Repository.
func NewRepository() *Repository {
	return &Repository{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Add stores a new product from the draft, assigning id and creation time,
// and prepends it so the collection stays newest-first.
func (r *Repository) Add(draft Draft) Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := Product{
		ID:             r.newID(),
		ItemName:       draft.ItemName,
		Category:       draft.Category,
		InvestmentCost: draft.InvestmentCost,
		SellingPrice:   draft.SellingPrice,
		StockQuantity:  draft.StockQuantity,
		Status:         draft.Status,
		IsTrash:        false,
		CreatedAt:      r.now(),
	}
	r.products = append([]Product{p}, r.products...)
	return p
}

// Update replaces the stored record whose id matches. ID, IsTrash and
// CreatedAt of the stored record are preserved; an edit only overwrites the
// operator-editable fields.
func (r *Repository) Update(record Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID != record.ID {
			continue
		}
		record.IsTrash = p.IsTrash
		record.CreatedAt = p.CreatedAt
		r.products[i] = record
		return record, nil
	}
	return Product{}, ErrNotFound
}

// Advance applies the status transition to the product with the given id.
func (r *Repository) Advance(id string) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID != id {
			continue
		}
		p.Status, p.StockQuantity = Advance(p.Status, p.StockQuantity)
		r.products[i] = p
		return p, nil
	}
	return Product{}, ErrNotFound
}

// SoftDelete flags the record as trashed. The record stays in the
// collection and remains visible in the trash view.
func (r *Repository) SoftDelete(id string) (Product, error) {
	return r.setTrash(id, true)
}

// Restore clears the trash flag, reinstating the record unchanged.
func (r *Repository) Restore(id string) (Product, error) {
	return r.setTrash(id, false)
}

func (r *Repository) setTrash(id string, trash bool) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID != id {
			continue
		}
		p.IsTrash = trash
		r.products[i] = p
		return p, nil
	}
	return Product{}, ErrNotFound
}

// Purge removes the record permanently. There is no way back.
func (r *Repository) Purge(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID != id {
			continue
		}
		r.products = append(r.products[:i], r.products[i+1:]...)
		return nil
	}
	return ErrNotFound
}

// Get returns the record with the given id, trashed or not.
func (r *Repository) Get(id string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// Snapshot returns a copy of the full collection, trashed records included,
// in stored order.
func (r *Repository) Snapshot() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out
}

// Active returns non-trashed records. This is the input every analytics
// computation and the shop floor view work from.
func (r *Repository) Active() []Product {
	return r.filter(func(p Product) bool { return !p.IsTrash })
}

// Booked returns non-trashed records currently in Booked status.
func (r *Repository) Booked() []Product {
	return r.filter(func(p Product) bool { return !p.IsTrash && p.Status == StatusBooked })
}

// Trashed returns soft-deleted records.
func (r *Repository) Trashed() []Product {
	return r.filter(func(p Product) bool { return p.IsTrash })
}

func (r *Repository) filter(keep func(Product) bool) []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// Load replaces the whole collection, used once at startup from the
// persisted snapshot.
func (r *Repository) Load(products []Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = make([]Product, len(products))
	copy(r.products, products)
}

// Len reports the number of records, trashed included.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products)
}
