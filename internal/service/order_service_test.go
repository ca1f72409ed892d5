package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"lojinha/internal/domain"
	"lojinha/internal/repository"
)

func TestOrder_Create(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(repository.NewMemoryStore())

	payload := map[string]json.RawMessage{
		"items":    json.RawMessage(`[{"variantId":"1-Preto","quantity":2}]`),
		"shipping": json.RawMessage(`{"name":"Maria","city":"Recife"}`),
	}
	o, err := svc.Create(ctx, payload)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if o.ID == 0 {
		t.Fatalf("no order id")
	}
	if _, err := time.Parse(domain.ISODateLayout, o.Date); err != nil {
		t.Fatalf("date %q: %v", o.Date, err)
	}
	if string(o.Payload["shipping"]) != `{"name":"Maria","city":"Recife"}` {
		t.Fatalf("payload altered: %s", o.Payload["shipping"])
	}
}

func TestOrder_Create_DistinctIDs(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(repository.NewMemoryStore())

	seen := make(map[int64]bool)
	for i := 0; i < 10; i++ {
		o, err := svc.Create(ctx, nil)
		if err != nil {
			t.Fatal(err)
		}
		if seen[o.ID] {
			t.Fatalf("duplicate id %d", o.ID)
		}
		seen[o.ID] = true
	}
}
