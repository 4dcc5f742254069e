package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"esthecrm-backend/models"
)

// MemoryStore holds everything in process memory. It backs the tests and
// the no-database fallback path. Records keep insertion order, matching
// what a CSV file would return.
type MemoryStore struct {
	customers    *memTable[models.Customer]
	products     *memTable[models.Product]
	purchases    *memTable[models.Purchase]
	appointments *memTable[models.Appointment]
	finance      *memTable[models.FinanceRecord]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		customers:    newMemTable(func(c *models.Customer) uuid.UUID { return c.ID }),
		products:     newMemTable(func(p *models.Product) uuid.UUID { return p.ID }),
		purchases:    newMemTable(func(p *models.Purchase) uuid.UUID { return p.ID }),
		appointments: newMemTable(func(a *models.Appointment) uuid.UUID { return a.ID }),
		finance:      newMemTable(func(f *models.FinanceRecord) uuid.UUID { return f.ID }),
	}
}

func (s *MemoryStore) Customers() Repository[models.Customer] { return s.customers }
func (s *MemoryStore) Products() Repository[models.Product] { return s.products }
func (s *MemoryStore) Purchases() Repository[models.Purchase] { return s.purchases }
func (s *MemoryStore) Appointments() Repository[models.Appointment] { return s.appointments }
func (s *MemoryStore) Finance() Repository[models.FinanceRecord] { return s.finance }

type memTable[T any] struct {
	mu   sync.RWMutex
	recs []T
	id   func(*T) uuid.UUID
}

func newMemTable[T any](id func(*T) uuid.UUID) *memTable[T] {
	return &memTable[T]{id: id}
}

func (t *memTable[T]) Create(ctx context.Context, rec *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	stamp(rec, true)
	t.recs = append(t.recs, *rec)
	return nil
}

func (t *memTable[T]) List(ctx context.Context) ([]T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, len(t.recs))
	copy(out, t.recs)
	return out, nil
}

func (t *memTable[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i := range t.recs {
		if t.id(&t.recs[i]) == id {
			cp := t.recs[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (t *memTable[T]) Update(ctx context.Context, rec *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.id(rec)
	for i := range t.recs {
		if t.id(&t.recs[i]) == id {
			stamp(rec, false)
			t.recs[i] = *rec
			return nil
		}
	}
	return ErrNotFound
}

func (t *memTable[T]) Delete(ctx context.Context, id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.recs {
		if t.id(&t.recs[i]) == id {
			t.recs = append(t.recs[:i], t.recs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
