package cart

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"lojinha/internal/domain"
)

var (
	fone = domain.Product{ID: 12, Name: "Fone Bluetooth", Price: "10.00"}
	kit  = domain.Product{ID: 7, Name: "Kit Teclado", Price: "5.00"}

	preto  = domain.Variant{Color: "Preto", ImageURL: "http://x/preto.jpg", Stock: 5}
	branco = domain.Variant{Color: "Branco", ImageURL: "http://x/branco.jpg", Stock: 2}
)

func newCart(t *testing.T) *Cart {
	t.Helper()
	return New(NewMemorySnapshotStore(), zap.NewNop())
}

func TestCart_AddSameVariantIncrements(t *testing.T) {
	c := newCart(t)
	c.Add(fone, preto)
	c.Add(fone, preto)

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("lines = %d, want 1", len(items))
	}
	if items[0].VariantID != "12-Preto" {
		t.Fatalf("variantId = %q", items[0].VariantID)
	}
	if items[0].Quantity != 2 {
		t.Fatalf("quantity = %d, want 2", items[0].Quantity)
	}
}

func TestCart_DifferentColorsAreSeparateLines(t *testing.T) {
	c := newCart(t)
	c.Add(fone, preto)
	c.Add(fone, branco)
	if len(c.Items()) != 2 {
		t.Fatalf("lines = %d, want 2", len(c.Items()))
	}
}

func TestCart_UpdateQuantityZeroRemoves(t *testing.T) {
	c := newCart(t)
	c.Add(fone, preto)
	c.UpdateQuantity("12-Preto", 0)
	if len(c.Items()) != 0 {
		t.Fatalf("line not removed")
	}
}

func TestCart_UpdateQuantitySets(t *testing.T) {
	c := newCart(t)
	c.Add(fone, preto)
	c.UpdateQuantity("12-Preto", 7)
	if got := c.Items()[0].Quantity; got != 7 {
		t.Fatalf("quantity = %d, want 7", got)
	}
}

func TestCart_TotalPrice(t *testing.T) {
	c := newCart(t)
	c.Add(fone, preto)
	c.Add(fone, preto) // 2 x 10.00
	c.Add(kit, preto)
	c.UpdateQuantity("7-Preto", 3) // 3 x 5.00

	if got := c.TotalPrice().StringFixed(2); got != "35.00" {
		t.Fatalf("total = %s, want 35.00", got)
	}

	// derived, never stale
	c.Remove("7-Preto")
	if got := c.TotalPrice().StringFixed(2); got != "20.00" {
		t.Fatalf("total after remove = %s, want 20.00", got)
	}
	c.Clear()
	if !c.TotalPrice().IsZero() {
		t.Fatalf("total after clear = %s", c.TotalPrice())
	}
}

func TestCart_SnapshotRoundTrip(t *testing.T) {
	store := NewMemorySnapshotStore()
	c := New(store, zap.NewNop())
	c.Add(fone, preto)
	c.Add(fone, preto)
	c.Add(kit, branco)

	reloaded := New(store, zap.NewNop())
	want := c.Items()
	got := reloaded.Items()
	if len(got) != len(want) {
		t.Fatalf("lines = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCart_CorruptSnapshotFallsBackToEmpty(t *testing.T) {
	store := NewMemorySnapshotStore()
	if err := store.Save([]byte("{broken")); err != nil {
		t.Fatal(err)
	}
	c := New(store, zap.NewNop())
	if len(c.Items()) != 0 {
		t.Fatalf("expected empty cart")
	}
}

func TestCart_VersionMismatchDiscarded(t *testing.T) {
	store := NewMemorySnapshotStore()
	if err := store.Save([]byte(`{"version":99,"items":[{"variantId":"1-Preto","quantity":1}]}`)); err != nil {
		t.Fatal(err)
	}
	c := New(store, zap.NewNop())
	if len(c.Items()) != 0 {
		t.Fatalf("wrong-version snapshot was not discarded")
	}
}

func TestFileSnapshotStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store := NewFileSnapshotStore(path)

	// missing file is an empty snapshot, not an error
	data, err := store.Load()
	if err != nil || data != nil {
		t.Fatalf("load missing: %v %q", err, data)
	}

	c := New(store, zap.NewNop())
	c.Add(fone, preto)

	reloaded := New(NewFileSnapshotStore(path), zap.NewNop())
	if len(reloaded.Items()) != 1 || reloaded.Items()[0].VariantID != "12-Preto" {
		t.Fatalf("file snapshot did not round-trip: %+v", reloaded.Items())
	}
}
