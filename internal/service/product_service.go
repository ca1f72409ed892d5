package service

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"lojinha/internal/domain"
	"lojinha/internal/repository"
)

var ErrInvalidInput = errors.New("invalid input")

// ProductService holds the catalog business logic.
type ProductService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// Create validates the required fields, normalizes the price to a
// two-digit fixed-point string and the category to lower case, and
// persists the product. The repository assigns the id.
func (s *ProductService) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.Name == "" || p.Price == "" || p.Categoria == "" || p.ImageURL == "" || p.Stock < 0 {
		return nil, ErrInvalidInput
	}
	price, err := decimal.NewFromString(p.Price)
	if err != nil || price.IsNegative() {
		return nil, ErrInvalidInput
	}
	cp := p
	cp.Price = price.StringFixed(2)
	cp.Categoria = strings.ToLower(p.Categoria)
	if err := s.repo.Create(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

// ListByCategory matches the category label case-insensitively. No
// match yields an empty slice, not an error.
func (s *ProductService) ListByCategory(ctx context.Context, name string) ([]domain.Product, error) {
	if name == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByCategory(ctx, name)
}

// ProductPatch carries a partial update. Nil fields are left untouched
// on the stored record. Replacing the image is not supported here.
type ProductPatch struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *string          `json:"price"`
	Stock       *int64           `json:"stock"`
	Categoria   *string          `json:"categoria"`
	Destaque    *bool            `json:"destaque"`
	Variants    []domain.Variant `json:"variants"`
}

// Update shallow-merges the patch onto the existing record in a single
// read-modify-write step on the repository.
func (s *ProductService) Update(ctx context.Context, id int64, patch ProductPatch) (*domain.Product, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	if patch.Price != nil {
		price, err := decimal.NewFromString(*patch.Price)
		if err != nil || price.IsNegative() {
			return nil, ErrInvalidInput
		}
		normalized := price.StringFixed(2)
		patch.Price = &normalized
	}
	return s.repo.Update(ctx, id, func(p *domain.Product) {
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		if patch.Categoria != nil {
			p.Categoria = strings.ToLower(*patch.Categoria)
		}
		if patch.Destaque != nil {
			p.Destaque = *patch.Destaque
		}
		if patch.Variants != nil {
			p.Variants = patch.Variants
		}
	})
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
