package domain

import "errors"

var (
	ErrOutOfStock        = errors.New("out of stock")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrIndexOutOfRange   = errors.New("cart index out of range")
)

// CartLine is a snapshot of a product taken when it was added to the
// cart. Price and name changes to the product afterwards do not affect
// an open cart.
type CartLine struct {
	ProductID string `db:"product_id"`
	Name      string `db:"name"`
	Price     int64  `db:"price"`
	Qty       int    `db:"qty"`
}

func (l CartLine) Subtotal() int64 { return l.Price * int64(l.Qty) }

// Cart holds the in-progress sale's line items for one checkout
// session. It is exclusively owned by that session and never talks to
// the store — callers pass already-fetched Product snapshots in.
type Cart struct {
	lines []CartLine
}

// Add puts one unit of p in the cart. A product already present gets
// its quantity incremented, re-checked against p.Stock; a new product
// is appended as a qty-1 line snapshotting name and price now.
func (c *Cart) Add(p Product) error {
	if p.Stock <= 0 {
		return ErrOutOfStock
	}
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			if c.lines[i].Qty+1 > p.Stock {
				return ErrInsufficientStock
			}
			c.lines[i].Qty++
			return nil
		}
	}
	c.lines = append(c.lines, CartLine{ProductID: p.ID, Name: p.Name, Price: p.Price, Qty: 1})
	return nil
}

// Remove deletes the line at index i and returns the removed snapshot
// for user feedback.
func (c *Cart) Remove(i int) (CartLine, error) {
	if i < 0 || i >= len(c.lines) {
		return CartLine{}, ErrIndexOutOfRange
	}
	removed := c.lines[i]
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return removed, nil
}

func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// Lines returns a copy of the cart's lines in insertion order. Mutating
// the cart afterwards does not alter the returned slice, so it is safe
// to hand to the checkout engine as the sale snapshot.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int { return len(c.lines) }

// Clear empties the cart. Called only after a successful checkout or on
// logout.
func (c *Cart) Clear() { c.lines = nil }
