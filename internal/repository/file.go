package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"lojinha/internal/domain"
)

// document is the on-disk layout: one JSON object with both collections.
type document struct {
	Products []domain.Product `json:"products"`
	Orders   []domain.Order   `json:"orders"`
}

// FileStore persists the whole store as a single JSON file. Every call
// reads the full file and mutating calls rewrite it whole; a RWMutex
// serializes writers so concurrent mutations cannot lose updates or
// hand out duplicate ids. The file is the sole source of truth — no
// copy is cached between calls.
type FileStore struct {
	mu   sync.RWMutex
	path string
}

// NewFileStore opens (or bootstraps) the store file at path. A missing
// file is created with empty collections; an unreadable or unparseable
// file is an error.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.save(&document{Products: []domain.Product{}, Orders: []domain.Order{}}); err != nil {
			return nil, err
		}
		return s, nil
	}
	if _, err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() (*document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse store: %w", err)
	}
	if doc.Products == nil {
		doc.Products = []domain.Product{}
	}
	if doc.Orders == nil {
		doc.Orders = []domain.Order{}
	}
	return &doc, nil
}

func (s *FileStore) save(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)

func (s *FileStore) List(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Products, nil
}

func (s *FileStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Products {
		if doc.Products[i].ID == id {
			p := doc.Products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileStore) ListByCategory(ctx context.Context, categoria string) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0)
	for _, p := range doc.Products {
		if categoryEqual(p.Categoria, categoria) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *FileStore) Create(ctx context.Context, p *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	var maxID int64
	for _, existing := range doc.Products {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1
	doc.Products = append(doc.Products, *p)
	return s.save(doc)
}

func (s *FileStore) Update(ctx context.Context, id int64, apply func(*domain.Product)) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Products {
		if doc.Products[i].ID == id {
			apply(&doc.Products[i])
			doc.Products[i].ID = id
			if err := s.save(doc); err != nil {
				return nil, err
			}
			p := doc.Products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	kept := make([]domain.Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(doc.Products) {
		return ErrNotFound
	}
	doc.Products = kept
	return s.save(doc)
}

func (s *FileStore) Append(ctx context.Context, o *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	now := time.Now()
	o.ID = nextOrderID(doc.Orders, now)
	o.Date = domain.FormatOrderDate(now)
	doc.Orders = append(doc.Orders, *o)
	return s.save(doc)
}

func (s *FileStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Orders, nil
}

// nextOrderID keeps the wall-clock millisecond id scheme but bumps past
// the newest existing id when the clock has not advanced, so two
// submissions in the same millisecond still get distinct ids.
func nextOrderID(orders []domain.Order, now time.Time) int64 {
	id := now.UnixMilli()
	var maxID int64
	for _, o := range orders {
		if o.ID > maxID {
			maxID = o.ID
		}
	}
	if id <= maxID {
		id = maxID + 1
	}
	return id
}
