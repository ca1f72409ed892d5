package repository

import (
	"context"
	"sync"
	"time"

	"lojinha/internal/domain"
)

// MemoryStore is an in-memory Store with the same id-assignment and
// ordering semantics as FileStore. It backs the tests.
type MemoryStore struct {
	mu       sync.RWMutex
	products []domain.Product
	orders   []domain.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: []domain.Product{},
		orders:   []domain.Order{},
	}
}

var _ Store = (*MemoryStore)(nil)

func (m *MemoryStore) List(ctx context.Context) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *MemoryStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.products {
		if m.products[i].ID == id {
			p := m.products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) ListByCategory(ctx context.Context, categoria string) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Product, 0)
	for _, p := range m.products {
		if categoryEqual(p.Categoria, categoria) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MemoryStore) Create(ctx context.Context, p *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var maxID int64
	for _, existing := range m.products {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1
	m.products = append(m.products, *p)
	return nil
}

func (m *MemoryStore) Update(ctx context.Context, id int64, apply func(*domain.Product)) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID == id {
			apply(&m.products[i])
			m.products[i].ID = id
			p := m.products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(m.products) {
		return ErrNotFound
	}
	m.products = kept
	return nil
}

func (m *MemoryStore) Append(ctx context.Context, o *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	o.ID = nextOrderID(m.orders, now)
	o.Date = domain.FormatOrderDate(now)
	m.orders = append(m.orders, *o)
	return nil
}

func (m *MemoryStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Order, len(m.orders))
	copy(out, m.orders)
	return out, nil
}
