package domain

import (
	"encoding/json"
	"testing"
)

func TestOrder_JSONRoundTrip(t *testing.T) {
	o := Order{
		ID:   1700000000000,
		Date: "2023-11-14T22:13:20.000Z",
		Payload: map[string]json.RawMessage{
			"items":    json.RawMessage(`[{"variantId":"12-Preto","quantity":2}]`),
			"shipping": json.RawMessage(`{"name":"Maria"}`),
		},
	}

	data, err := json.Marshal(o)
	if err != nil {
		t.Fatal(err)
	}

	// must serialize flat: payload fields next to id and date
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"id", "date", "items", "shipping"} {
		if _, ok := flat[key]; !ok {
			t.Fatalf("missing %q in %s", key, data)
		}
	}

	var back Order
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.ID != o.ID || back.Date != o.Date {
		t.Fatalf("id/date lost: %+v", back)
	}
	if string(back.Payload["shipping"]) != `{"name":"Maria"}` {
		t.Fatalf("payload lost: %+v", back.Payload)
	}
}
