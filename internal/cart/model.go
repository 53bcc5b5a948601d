package cart

import "atelier-be/internal/catalog"

// Line is one cart entry: a product in a chosen size. Lines are identified
// by the (product id, size) pair; the same product in two sizes is two lines.
type Line struct {
	Product catalog.Product `json:"product"`
	Size    string          `json:"size"`
	Qty     int             `json:"qty"`
}

func (l *Line) Subtotal() int64 {
	return l.Product.Price * int64(l.Qty)
}

// Cart is an ordered sequence of lines. New lines are appended; existing
// lines are updated in place, so insertion order survives every mutation.
type Cart struct {
	Lines []Line `json:"lines"`
}

func (c *Cart) find(productID int, size string) int {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID && c.Lines[i].Size == size {
			return i
		}
	}
	return -1
}

// Add merges qty into an existing (product, size) line or appends a new one.
func (c *Cart) Add(p catalog.Product, size string, qty int) {
	if i := c.find(p.ID, size); i >= 0 {
		c.Lines[i].Qty += qty
		return
	}
	c.Lines = append(c.Lines, Line{Product: p, Size: size, Qty: qty})
}

// Remove deletes the matching line. Removing an absent line is a no-op.
func (c *Cart) Remove(productID int, size string) {
	if i := c.find(productID, size); i >= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	}
}

// UpdateQty applies delta to the matching line, clamping at 1. A line can
// only disappear through Remove. Absent lines are a no-op.
func (c *Cart) UpdateQty(productID int, size string, delta int) {
	if i := c.find(productID, size); i >= 0 {
		q := c.Lines[i].Qty + delta
		if q < 1 {
			q = 1
		}
		c.Lines[i].Qty = q
	}
}

func (c *Cart) Clear() {
	c.Lines = nil
}

// Total is the live sum of price times quantity across all lines.
func (c *Cart) Total() int64 {
	var sum int64
	for i := range c.Lines {
		sum += c.Lines[i].Subtotal()
	}
	return sum
}

// Count is the total number of units in the cart.
func (c *Cart) Count() int {
	var n int
	for i := range c.Lines {
		n += c.Lines[i].Qty
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) clone() *Cart {
	out := &Cart{Lines: make([]Line, len(c.Lines))}
	copy(out.Lines, c.Lines)
	return out
}
