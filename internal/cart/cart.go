// Package cart implements the checkout cart: line items keyed by
// product+color variant, a derived total, and a persisted snapshot that
// plays the role browser storage plays for the web client.
package cart

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"lojinha/internal/domain"
)

// Item is one cart line. VariantID is the derived key "<productId>-<color>"
// and uniquely identifies the line. Price is the product price at
// add-time; it is not re-checked against the catalog.
type Item struct {
	VariantID string `json:"variantId"`
	ProductID int64  `json:"id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Color     string `json:"color"`
	ImageURL  string `json:"imageUrl"`
	Quantity  int64  `json:"quantity"`
}

// Cart maps variant ids to line items. Every transition persists the
// full state to the snapshot store. No cross-goroutine use is expected
// (single browsing session), so there is no lock.
type Cart struct {
	items map[string]Item
	store SnapshotStore
	log   *zap.Logger
}

// New loads the prior snapshot from store. A missing, unparseable or
// wrong-version snapshot falls back to an empty cart; the failure is
// logged, never surfaced.
func New(store SnapshotStore, log *zap.Logger) *Cart {
	c := &Cart{items: make(map[string]Item), store: store, log: log}
	items, err := loadSnapshot(store)
	if err != nil {
		log.Warn("discarding saved cart", zap.Error(err))
		return c
	}
	for _, it := range items {
		c.items[it.VariantID] = it
	}
	return c
}

// VariantID derives the line key for a product/color combination.
func VariantID(productID int64, color string) string {
	return fmt.Sprintf("%d-%s", productID, color)
}

// Add puts one unit of the given variant in the cart. Adding a variant
// that is already present increments its quantity instead of creating a
// second line.
func (c *Cart) Add(p domain.Product, v domain.Variant) {
	id := VariantID(p.ID, v.Color)
	if it, ok := c.items[id]; ok {
		it.Quantity++
		c.items[id] = it
	} else {
		c.items[id] = Item{
			VariantID: id,
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Color:     v.Color,
			ImageURL:  v.ImageURL,
			Quantity:  1,
		}
	}
	c.persist()
}

// UpdateQuantity sets the quantity of a line; n <= 0 removes the line.
func (c *Cart) UpdateQuantity(variantID string, n int64) {
	if n <= 0 {
		c.Remove(variantID)
		return
	}
	if it, ok := c.items[variantID]; ok {
		it.Quantity = n
		c.items[variantID] = it
	}
	c.persist()
}

// Remove deletes a line.
func (c *Cart) Remove(variantID string) {
	delete(c.items, variantID)
	c.persist()
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = make(map[string]Item)
	c.persist()
}

// Items returns the lines sorted by variant id.
func (c *Cart) Items() []Item {
	out := make([]Item, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VariantID < out[j].VariantID })
	return out
}

// TotalPrice is never stored; it is recomputed from the lines on every
// call as sum(price * quantity). A line whose price does not parse
// contributes nothing.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			c.log.Warn("unparseable line price", zap.String("variantId", it.VariantID), zap.String("price", it.Price))
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return total
}

func (c *Cart) persist() {
	if err := saveSnapshot(c.store, c.Items()); err != nil {
		c.log.Error("persist cart", zap.Error(err))
	}
}
