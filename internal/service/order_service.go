package service

import (
	"context"
	"encoding/json"

	"lojinha/internal/domain"
	"lojinha/internal/repository"
)

// OrderService stores submitted checkouts. The payload is kept as-is:
// the cart snapshot and shipping fields are whatever the client sent.
type OrderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// Create appends the order; the repository assigns id and date.
func (s *OrderService) Create(ctx context.Context, payload map[string]json.RawMessage) (*domain.Order, error) {
	if payload == nil {
		payload = map[string]json.RawMessage{}
	}
	o := domain.Order{Payload: payload}
	if err := s.repo.Append(ctx, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx)
}
