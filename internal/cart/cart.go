// Package cart models the pre-submission item selection the Mini App holds
// on the client. The order service also uses it to price catalog-referenced
// lines and compute totals for unpriced requests.
package cart

import "github.com/JoseSC30/superburguer-miniapp/internal/models"

// Line is one selected product with its quantity.
type Line struct {
	ProductID string
	Name      string
	UnitPrice float64
	Quantity  int
}

// Cart is an ordered sequence of lines. Not safe for concurrent use; each
// request builds its own.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add increments the quantity of an existing line or appends a new one
// with quantity 1.
func (c *Cart) Add(p models.Product) {
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
	})
}

// AddQuantity adds n units of a product at once.
func (c *Cart) AddQuantity(p models.Product, n int) {
	for i := 0; i < n; i++ {
		c.Add(p)
	}
}

// Remove decrements the matching line's quantity, dropping the line when it
// reaches zero. Removing an absent product is a no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID != productID {
			continue
		}
		c.lines[i].Quantity--
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

// Total recomputes the sum of quantity × unit price on every call.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += float64(l.Quantity) * l.UnitPrice
	}
	return total
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Items serializes the cart into order items for submission.
func (c *Cart) Items() []models.OrderItem {
	items := make([]models.OrderItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, models.OrderItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	return items
}

// Submit builds the creation payload consumed by the order service and
// discards the cart contents.
func (c *Cart) Submit(requesterID, userID string) *models.CreateOrderRequest {
	req := &models.CreateOrderRequest{
		RequesterID: requesterID,
		UserID:      userID,
		Items:       c.Items(),
		Total:       c.Total(),
	}
	c.lines = nil
	return req
}
