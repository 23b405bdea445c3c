// Package checkout holds the cart type, the checkout field validators and
// the state machine that turns a cart into a persisted order.
package checkout

type Item struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// Cart is plain in-process state. The server never stores carts; callers
// submit the lines with the checkout request.
type Cart struct {
	items []Item
}

// CartFromItems rebuilds a cart from submitted lines, dropping lines with a
// non-positive quantity.
func CartFromItems(items []Item) Cart {
	c := Cart{}
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		c.items = append(c.items, it)
	}
	return c
}

// Add inserts the product with quantity 1, or increments the existing line.
func (c *Cart) Add(p Item) {
	for i := range c.items {
		if c.items[i].ProductID == p.ProductID {
			c.items[i].Quantity++
			return
		}
	}
	p.Quantity = 1
	c.items = append(c.items, p)
}

func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity updates a line's quantity, removing the line when q <= 0.
func (c *Cart) SetQuantity(productID string, q int) {
	if q <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = q
			return
		}
	}
}

func (c *Cart) Total() float64 {
	total := 0.0
	for _, it := range c.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) clear() {
	c.items = nil
}
