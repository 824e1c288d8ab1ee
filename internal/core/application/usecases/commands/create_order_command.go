package commands

import (
	"errors"

	"hydrohub/internal/core/domain/model/cart"
	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/core/domain/model/order"
	"hydrohub/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)

	// ErrNoCustomerSelected is returned when a flow that requires a bound
	// customer (delivery orders, balance merges) is invoked without one.
	ErrNoCustomerSelected = errors.New("no customer selected")
)

// CreateOrderCommand represents a request to turn a priced cart into a new
// order. It carries the cart, the optional customer binding, and the charge
// parameters the cashier chose at the counter.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), shoppingCart, &customerID,
//	    kernel.NewMoney(50), discount, 5, requirements, true, true)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	shoppingCart     cart.Cart
	customerID       *kernel.UUID
	otherCharges     kernel.Money
	discount         order.Discount
	taxPercent       int64
	requirements     []string
	mergeIntoBalance bool
	requireCustomer  bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Rejects an empty cart with cart.ErrEmptyCart, and a missing customer with
// ErrNoCustomerSelected when the flow requires one (requireCustomer, or a
// balance merge which cannot happen without an account).
func NewCreateOrderCommand(
	orderID kernel.UUID,
	shoppingCart cart.Cart,
	customerID *kernel.UUID,
	otherCharges kernel.Money,
	discount order.Discount,
	taxPercent int64,
	requirements []string,
	mergeIntoBalance bool,
	requireCustomer bool,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setShoppingCart(shoppingCart),
		orderCommand.setCustomerID(customerID, mergeIntoBalance || requireCustomer),
		orderCommand.setOtherCharges(otherCharges),
		orderCommand.setDiscount(discount),
		orderCommand.setTaxPercent(taxPercent),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.requirements = requirements
	orderCommand.mergeIntoBalance = mergeIntoBalance
	orderCommand.requireCustomer = requireCustomer
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShoppingCart returns the cart being checked out.
func (c CreateOrderCommand) ShoppingCart() cart.Cart {
	return c.shoppingCart
}

// CustomerID returns the bound customer, or nil for a walk-in sale.
func (c CreateOrderCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

// OtherCharges returns the flat extra charges (delivery fee etc.).
func (c CreateOrderCommand) OtherCharges() kernel.Money {
	return c.otherCharges
}

// Discount returns the discount parameters chosen at the counter.
func (c CreateOrderCommand) Discount() order.Discount {
	return c.discount
}

// TaxPercent returns the tax rate applied to the bill.
func (c CreateOrderCommand) TaxPercent() int64 {
	return c.taxPercent
}

// Requirements returns the free-text delivery instructions.
func (c CreateOrderCommand) Requirements() []string {
	return c.requirements
}

// MergeIntoBalance reports whether the payable is charged against the
// customer's running account instead of billed separately.
func (c CreateOrderCommand) MergeIntoBalance() bool {
	return c.mergeIntoBalance
}

// RequireCustomer reports whether the calling flow demands a bound customer.
func (c CreateOrderCommand) RequireCustomer() bool {
	return c.requireCustomer
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setShoppingCart(shoppingCart cart.Cart) error {
	if shoppingCart.IsEmpty() {
		return cart.ErrEmptyCart
	}

	c.shoppingCart = shoppingCart
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID *kernel.UUID, required bool) error {
	if customerID == nil {
		if required {
			return ErrNoCustomerSelected
		}
		return nil
	}

	if err := customerID.Validate(); err != nil {
		return err
	}

	id := *customerID
	c.customerID = &id
	return nil
}

func (c *CreateOrderCommand) setOtherCharges(otherCharges kernel.Money) error {
	if err := otherCharges.ValidateNonNegative("otherCharges"); err != nil {
		return err
	}

	c.otherCharges = otherCharges
	return nil
}

func (c *CreateOrderCommand) setDiscount(discount order.Discount) error {
	if err := discount.Kind().Validate(); err != nil {
		return err
	}

	c.discount = discount
	return nil
}

func (c *CreateOrderCommand) setTaxPercent(taxPercent int64) error {
	if err := order.ValidateTaxPercent(taxPercent); err != nil {
		return err
	}

	c.taxPercent = taxPercent
	return nil
}
