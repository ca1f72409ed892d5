package service

import (
	"context"
	"testing"

	"lojinha/internal/domain"
	"lojinha/internal/repository"
)

func setupPS(t *testing.T) *ProductService {
	t.Helper()
	return NewProductService(repository.NewMemoryStore())
}

func validProduct() domain.Product {
	return domain.Product{
		Name:      "Fone Bluetooth",
		Price:     "199.9",
		Stock:     5,
		Categoria: "Fones",
		ImageURL:  "http://localhost:3001/uploads/1-fone.jpg",
	}
}

func TestProduct_Create_NormalizesFields(t *testing.T) {
	ctx := context.Background()
	ps := setupPS(t)

	p, err := ps.Create(ctx, validProduct())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.ID != 1 {
		t.Fatalf("id = %d, want 1", p.ID)
	}
	if p.Price != "199.90" {
		t.Fatalf("price = %q, want fixed two digits", p.Price)
	}
	if p.Categoria != "fones" {
		t.Fatalf("categoria = %q, want lower case", p.Categoria)
	}
}

func TestProduct_Create_Invalid(t *testing.T) {
	ctx := context.Background()
	ps := setupPS(t)

	cases := map[string]func(*domain.Product){
		"empty name":      func(p *domain.Product) { p.Name = "" },
		"empty price":     func(p *domain.Product) { p.Price = "" },
		"bad price":       func(p *domain.Product) { p.Price = "abc" },
		"negative price":  func(p *domain.Product) { p.Price = "-1" },
		"empty categoria": func(p *domain.Product) { p.Categoria = "" },
		"no image":        func(p *domain.Product) { p.ImageURL = "" },
		"negative stock":  func(p *domain.Product) { p.Stock = -1 },
	}
	for name, mutate := range cases {
		p := validProduct()
		mutate(&p)
		if _, err := ps.Create(ctx, p); err != ErrInvalidInput {
			t.Fatalf("%s: got %v, want ErrInvalidInput", name, err)
		}
	}
}

func TestProduct_Update_PreservesAbsentFields(t *testing.T) {
	ctx := context.Background()
	ps := setupPS(t)

	created, err := ps.Create(ctx, validProduct())
	if err != nil {
		t.Fatal(err)
	}

	newPrice := "149.90"
	got, err := ps.Update(ctx, created.ID, ProductPatch{Price: &newPrice})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Price != "149.90" {
		t.Fatalf("price = %q", got.Price)
	}
	if got.Name != created.Name || got.Stock != created.Stock ||
		got.Categoria != created.Categoria || got.ImageURL != created.ImageURL {
		t.Fatalf("absent fields changed: %+v", got)
	}
}

func TestProduct_Update_Variants(t *testing.T) {
	ctx := context.Background()
	ps := setupPS(t)

	created, err := ps.Create(ctx, validProduct())
	if err != nil {
		t.Fatal(err)
	}

	variants := []domain.Variant{
		{Color: "Preto", ImageURL: "http://x/preto.jpg", Stock: 3},
		{Color: "Branco", ImageURL: "http://x/branco.jpg", Stock: 2},
	}
	got, err := ps.Update(ctx, created.ID, ProductPatch{Variants: variants})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(got.Variants) != 2 || got.Variants[0].Color != "Preto" {
		t.Fatalf("variants = %+v", got.Variants)
	}
}

func TestProduct_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	ps := setupPS(t)
	name := "X"
	if _, err := ps.Update(ctx, 42, ProductPatch{Name: &name}); err != repository.ErrNotFound {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestProduct_ListByCategory_CaseInsensitive(t *testing.T) {
	ctx := context.Background()
	ps := setupPS(t)
	if _, err := ps.Create(ctx, validProduct()); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"fones", "FONES"} {
		list, err := ps.ListByCategory(ctx, name)
		if err != nil {
			t.Fatalf("lookup %q: %v", name, err)
		}
		if len(list) != 1 {
			t.Fatalf("lookup %q returned %d products", name, len(list))
		}
	}
}

func TestProduct_Delete(t *testing.T) {
	ctx := context.Background()
	ps := setupPS(t)
	created, err := ps.Create(ctx, validProduct())
	if err != nil {
		t.Fatal(err)
	}
	if err := ps.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := ps.Delete(ctx, created.ID); err != repository.ErrNotFound {
		t.Fatalf("second delete: got %v, want ErrNotFound", err)
	}
}
