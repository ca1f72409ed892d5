package repository

import (
	"context"
	"errors"
	"strings"

	"lojinha/internal/domain"
)

// ErrNotFound is returned when an entity does not exist in the store.
var ErrNotFound = errors.New("not found")

// ProductRepository is the storage contract for the product collection.
// Create assigns the next id as max(existing ids)+1; id assignment and
// the append happen under the same lock so concurrent creates cannot
// collide. Update applies the given mutation to the stored record in
// one read-modify-write step.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	ListByCategory(ctx context.Context, categoria string) ([]domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, id int64, apply func(*domain.Product)) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

// OrderRepository is the storage contract for the orders collection.
// Append assigns the order id (wall-clock milliseconds, bumped past the
// previous id when the clock has not advanced) and the creation date.
type OrderRepository interface {
	Append(ctx context.Context, o *domain.Order) error
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

// Store combines both collections; the file and memory implementations
// keep them in one document.
type Store interface {
	ProductRepository
	OrderRepository
}

func categoryEqual(categoria, name string) bool {
	return categoria != "" && strings.EqualFold(categoria, name)
}
