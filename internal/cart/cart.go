package cart

import (
	"cardapio/internal/models"
)

// DefaultEstimatedTime is quoted with every delivery address. The quote is
// fixed for now; a per-address estimate would slot in here.
const DefaultEstimatedTime = "30-45 min"

// Item is one cart line: a snapshot of the menu item plus the chosen
// quantity and an optional preparation note.
type Item struct {
	Item       models.MenuItem
	Quantity   int
	Observacao string
}

// DeliveryInfo carries the delivery address together with the fee and time
// estimate quoted when the address was set.
type DeliveryInfo struct {
	Address       models.Address
	DeliveryFee   float64
	EstimatedTime string
}

// Cart accumulates a single session's selection. Subtotal and Total are
// recomputed synchronously after every mutation, so they always satisfy
// Subtotal == Σ(price × quantity) and Total == Subtotal + delivery fee.
type Cart struct {
	Items        []Item
	DeliveryInfo *DeliveryInfo
	Subtotal     float64
	Total        float64
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{Items: []Item{}}
}

// AddItem appends a new line, or bumps the quantity when a line with the
// same item id already exists. The item snapshot and note of an existing
// line are kept.
func (c *Cart) AddItem(item models.MenuItem, quantity int, observacao string) {
	for i := range c.Items {
		if c.Items[i].Item.ID == item.ID {
			c.Items[i].Quantity += quantity
			c.recompute()
			return
		}
	}
	c.Items = append(c.Items, Item{Item: item, Quantity: quantity, Observacao: observacao})
	c.recompute()
}

// UpdateQuantity replaces the quantity of the matching line. A quantity of
// zero or less removes the line.
func (c *Cart) UpdateQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(itemID)
		return
	}
	for i := range c.Items {
		if c.Items[i].Item.ID == itemID {
			c.Items[i].Quantity = quantity
			break
		}
	}
	c.recompute()
}

// RemoveItem drops the matching line. Unknown ids are ignored.
func (c *Cart) RemoveItem(itemID string) {
	kept := c.Items[:0]
	for _, line := range c.Items {
		if line.Item.ID != itemID {
			kept = append(kept, line)
		}
	}
	c.Items = kept
	c.recompute()
}

// SetDeliveryInfo attaches the delivery address and the fee taken from the
// store settings, then folds the fee into the total.
func (c *Cart) SetDeliveryInfo(address models.Address, deliveryFee float64) {
	c.DeliveryInfo = &DeliveryInfo{
		Address:       address,
		DeliveryFee:   deliveryFee,
		EstimatedTime: DefaultEstimatedTime,
	}
	c.recompute()
}

// Reset clears the cart after a successful checkout.
func (c *Cart) Reset() {
	c.Items = []Item{}
	c.DeliveryInfo = nil
	c.Subtotal = 0
	c.Total = 0
}

func (c *Cart) recompute() {
	subtotal := 0.0
	for _, line := range c.Items {
		subtotal += line.Item.Price * float64(line.Quantity)
	}
	c.Subtotal = subtotal
	c.Total = subtotal
	if c.DeliveryInfo != nil {
		c.Total = subtotal + c.DeliveryInfo.DeliveryFee
	}
}

// Checkout materializes the cart into an order document ready for
// persistence. The caller resets the cart only after the order was stored,
// so a failed submission keeps the selection intact.
func (c *Cart) Checkout(cliente models.Cliente, formaPagamento, observacoes string) models.Order {
	itens := make([]models.OrderItem, 0, len(c.Items))
	for _, line := range c.Items {
		itens = append(itens, models.OrderItem{
			Nome:       line.Item.Name,
			Quantidade: line.Quantity,
			Preco:      line.Item.Price,
			Observacao: line.Observacao,
		})
	}

	order := models.Order{
		Itens:          itens,
		Total:          c.Total,
		Status:         models.StatusFinalizado,
		Cliente:        cliente,
		FormaPagamento: formaPagamento,
		Observacoes:    observacoes,
	}
	if c.DeliveryInfo != nil {
		order.Endereco = models.Endereco{
			Address:       c.DeliveryInfo.Address,
			DeliveryFee:   c.DeliveryInfo.DeliveryFee,
			EstimatedTime: c.DeliveryInfo.EstimatedTime,
		}
	}
	return order
}
