package domain

import "math"

type CartItem struct {
	MenuItem            MenuItem `json:"menu_item"`
	Quantity            int      `json:"quantity"`
	SpecialInstructions string   `json:"special_instructions,omitempty"`
}

// Cart is the customer's pending selection, one line per menu item.
type Cart struct {
	SessionID  string     `json:"session_id"`
	TableToken string     `json:"table_token,omitempty"`
	Items      []CartItem `json:"items"`
}

func (c *Cart) find(menuItemID string) int {
	for i := range c.Items {
		if c.Items[i].MenuItem.ID == menuItemID {
			return i
		}
	}
	return -1
}

// Add increments the existing line for the same menu item or appends a new
// one. Non-positive quantities are ignored.
func (c *Cart) Add(item CartItem) {
	if item.Quantity <= 0 {
		return
	}
	if i := c.find(item.MenuItem.ID); i >= 0 {
		c.Items[i].Quantity += item.Quantity
		if item.SpecialInstructions != "" {
			c.Items[i].SpecialInstructions = item.SpecialInstructions
		}
		return
	}
	c.Items = append(c.Items, item)
}

func (c *Cart) Remove(menuItemID string) {
	if i := c.find(menuItemID); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

// SetQuantity replaces the line quantity; dropping to zero or below removes
// the line. Returns false when the item is not in the cart.
func (c *Cart) SetQuantity(menuItemID string, quantity int) bool {
	i := c.find(menuItemID)
	if i < 0 {
		return false
	}
	if quantity <= 0 {
		c.Remove(menuItemID)
		return true
	}
	c.Items[i].Quantity = quantity
	return true
}

func (c *Cart) UpdateInstructions(menuItemID, instructions string) bool {
	i := c.find(menuItemID)
	if i < 0 {
		return false
	}
	c.Items[i].SpecialInstructions = instructions
	return true
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) Total() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.MenuItem.Price * float64(item.Quantity)
	}
	return RoundMoney(total)
}

func (c *Cart) Count() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
