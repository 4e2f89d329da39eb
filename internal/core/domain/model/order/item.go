package order

import (
	"fmt"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is one line of an order: a menu item reference, a quantity, and the
// unit price snapshotted when the line was added. The snapshot is what keeps
// historical totals stable when the menu price changes later.
type Item struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	price      decimal.Decimal
}

// NewItem creates a validated order line. The price is the unit price at the
// time the line is created, not a live menu lookup.
func NewItem(id, menuItemID kernel.UUID, quantity int, price decimal.Decimal) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := menuItemID.Validate(); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if price.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}

	return &Item{
		id:         id,
		menuItemID: menuItemID,
		quantity:   quantity,
		price:      price,
	}, nil
}

// RestoreItem reconstructs an order line from persistence.
func RestoreItem(id, menuItemID kernel.UUID, quantity int, price decimal.Decimal) (*Item, error) {
	return NewItem(id, menuItemID, quantity, price)
}

// ID returns the line's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// MenuItemID returns the referenced menu item.
func (i *Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price snapshot.
func (i *Item) Price() decimal.Decimal {
	return i.price
}

// LineTotal returns quantity times the unit price snapshot.
func (i *Item) LineTotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}
