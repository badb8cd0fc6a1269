package cart

import (
	"github.com/mytheresa/go-shopping-cart/models"
	"github.com/shopspring/decimal"
)

// Item is one cart line: a product snapshot taken when it was first added,
// and the aggregated quantity.
type Item struct {
	ProductID      string
	ProductName    string
	Price          decimal.Decimal
	Quantity       int
	Image          string
	Specifications models.Specifications
}

// Subtotal is price times quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the in-memory shopping cart of one session. It is never persisted
// and does no stock checking; callers validate against the catalog.
type Cart struct {
	items  map[string]*Item
	order  []string
	coupon *decimal.Decimal
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{items: map[string]*Item{}}
}

// AddItem adds quantity units of product. A product already in the cart has
// its quantity increased; its snapshot is kept. Quantities below 1 are ignored.
func (c *Cart) AddItem(product *models.Product, quantity int, specifications models.Specifications) {
	if product == nil || quantity < 1 {
		return
	}
	if existing, ok := c.items[product.ID]; ok {
		existing.Quantity += quantity
		return
	}
	if specifications == nil {
		specifications = models.Specifications{}
	}
	c.items[product.ID] = &Item{
		ProductID:      product.ID,
		ProductName:    product.Name,
		Price:          product.Price,
		Quantity:       quantity,
		Image:          product.FirstImage(),
		Specifications: specifications.Clone(),
	}
	c.order = append(c.order, product.ID)
}

// RemoveItem drops the line for productID, if any.
func (c *Cart) RemoveItem(productID string) {
	if _, ok := c.items[productID]; !ok {
		return
	}
	delete(c.items, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// UpdateQuantity sets the quantity of a line. Zero or less removes it.
// Unknown product ids are ignored.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	item, ok := c.items[productID]
	if !ok {
		return
	}
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	item.Quantity = quantity
}

// Clear empties the cart and drops the coupon.
func (c *Cart) Clear() {
	c.items = map[string]*Item{}
	c.order = nil
	c.coupon = nil
}

// SetCoupon stores a flat discount, replacing any previous one.
func (c *Cart) SetCoupon(value decimal.Decimal) {
	c.coupon = &value
}

// HasCoupon reports whether a coupon is set.
func (c *Cart) HasCoupon() bool {
	return c.coupon != nil
}

// Items returns copies of the lines in the order they were added.
func (c *Cart) Items() []Item {
	out := make([]Item, 0, len(c.order))
	for _, id := range c.order {
		it := *c.items[id]
		it.Specifications = it.Specifications.Clone()
		out = append(out, it)
	}
	return out
}

// Item returns a copy of the line for productID.
func (c *Cart) Item(productID string) (Item, bool) {
	it, ok := c.items[productID]
	if !ok {
		return Item{}, false
	}
	out := *it
	out.Specifications = it.Specifications.Clone()
	return out, true
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// ItemCount is the sum of all quantities.
func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// Subtotal is the sum of price times quantity over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.items {
		sum = sum.Add(it.Subtotal())
	}
	return sum
}

// Discount is the coupon value, or zero without a coupon.
func (c *Cart) Discount() decimal.Decimal {
	if c.coupon == nil {
		return decimal.Zero
	}
	return *c.coupon
}

// Total is Subtotal minus Discount. It is not floored: a coupon larger than
// the subtotal yields a negative total.
func (c *Cart) Total() decimal.Decimal {
	return c.Subtotal().Sub(c.Discount())
}
