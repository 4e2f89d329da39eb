package commands

import (
	"errors"
	"fmt"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
	ErrQuantityIsInvalid      = errors.New("quantity must be greater than 0")
	ErrDeliveryChargeInvalid  = errors.New("delivery charge must not be negative")
)

// OrderLine is one requested item on a new order. The unit price is not part
// of the request; it is snapshotted from the menu when the order is created.
type OrderLine struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// CreateOrderCommand represents a request to place a new order.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	customerName   string
	customerPhone  string
	orderType      order.OrderType
	tableID        *kernel.UUID
	address        order.DeliveryAddress
	deliveryCharge decimal.Decimal
	specialNotes   string
	createdBy      *kernel.UUID
	lines          []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// The order code is not part of the command; a unique one is generated when
// the command is handled.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	customerPhone string,
	orderType order.OrderType,
	tableID *kernel.UUID,
	address order.DeliveryAddress,
	deliveryCharge decimal.Decimal,
	specialNotes string,
	createdBy *kernel.UUID,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerName(customerName),
		cmd.setOrderType(orderType),
		cmd.setDeliveryCharge(deliveryCharge),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.customerPhone = customerPhone
	cmd.tableID = tableID
	cmd.address = address
	cmd.specialNotes = specialNotes
	cmd.createdBy = createdBy
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the customer's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the customer's phone number, possibly empty.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// OrderType returns how the order will be fulfilled.
func (c CreateOrderCommand) OrderType() order.OrderType {
	return c.orderType
}

// TableID returns the occupied table reference, or nil.
func (c CreateOrderCommand) TableID() *kernel.UUID {
	return c.tableID
}

// Address returns the delivery address fields.
func (c CreateOrderCommand) Address() order.DeliveryAddress {
	return c.address
}

// DeliveryCharge returns the delivery charge to store on the order.
func (c CreateOrderCommand) DeliveryCharge() decimal.Decimal {
	return c.deliveryCharge
}

// SpecialNotes returns the free-form notes for the order.
func (c CreateOrderCommand) SpecialNotes() string {
	return c.specialNotes
}

// CreatedBy returns the user placing the order, or nil.
func (c CreateOrderCommand) CreatedBy() *kernel.UUID {
	return c.createdBy
}

// Lines returns the requested item lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return c.lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setDeliveryCharge(deliveryCharge decimal.Decimal) error {
	if deliveryCharge.IsNegative() {
		return ErrDeliveryChargeInvalid
	}

	c.deliveryCharge = deliveryCharge
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	for _, line := range lines {
		if err := line.MenuItemID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("%w: got %d", ErrQuantityIsInvalid, line.Quantity)
		}
	}

	c.lines = lines
	return nil
}
