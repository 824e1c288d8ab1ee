package customer

import (
	"errors"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/pkg/errs"
	"hydrohub/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
	// ErrAmountIsNotPositive is returned when a balance operation receives a zero or negative amount.
	ErrAmountIsNotPositive = errs.NewValueIsInvalidError("amount must be positive")
)

// Customer represents a registered buyer with a running account balance.
// It is an aggregate root that owns the balance bookkeeping for orders
// settled against the account rather than in cash.
//
// Balance sign convention:
//   - negative balance: the customer owes the shop money
//   - positive balance: the shop owes the customer (store credit)
//
// The balance is mutated only through ChargeOrder and CreditChange so every
// change traces back to a concrete order event.
//
// Example usage:
//
//	customer, err := NewCustomer(kernel.NewUUID(), "Rahim Traders", "01711-000000")
//	if err != nil {
//	    // Handle construction error
//	}
//	// Customer starts with a zero balance
type Customer struct {
	// id uniquely identifies the customer
	id kernel.UUID
	// name is the display name of the customer
	name string
	// phone is the contact number; may be empty for walk-ins later registered
	phone string
	// accountBalance is the signed running balance (negative = owes)
	accountBalance kernel.Money
	// guard ensures the customer was properly constructed
	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer with a zero account balance.
// This is the only way to create a valid fresh Customer instance.
//
// Parameters:
//   - id: Unique identifier for the customer (must be valid UUID)
//   - name: Display name (must be non-empty)
//   - phone: Contact number (may be empty)
//
// Returns:
//   - *Customer: A fully initialized customer with zero balance
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	customer, err := NewCustomer(kernel.NewUUID(), "Rahim Traders", "01711-000000")
//	if err != nil {
//	    log.Fatal("Failed to create customer:", err)
//	}
func NewCustomer(id kernel.UUID, name string, phone string) (*Customer, error) {
	customer := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
	); err != nil {
		return nil, err
	}

	customer.phone = phone
	customer.accountBalance = kernel.MoneyZero
	return customer, nil
}

// RestoreCustomer reconstructs a Customer aggregate from persistent storage,
// including its signed account balance. The restored customer behaves
// identically to one created through normal domain operations.
//
// Parameters:
//   - id: Unique identifier for the customer
//   - name: Display name
//   - phone: Contact number
//   - accountBalance: Signed balance at the time of persistence
//
// Returns:
//   - *Customer: Restored customer aggregate
//   - error: Validation error if any parameter is invalid
func RestoreCustomer(id kernel.UUID, name string, phone string, accountBalance kernel.Money) (*Customer, error) {
	customer, err := NewCustomer(id, name, phone)
	if err != nil {
		return nil, err
	}

	customer.accountBalance = accountBalance
	return customer, nil
}

// IsEqual compares two customers for equality based on their unique identifiers.
//
// Parameters:
//   - other: The customer to compare with (can be nil)
//
// Returns:
//   - bool: true if customers have the same ID, false otherwise
func (c *Customer) IsEqual(other *Customer) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks if the Customer was properly constructed using the NewCustomer constructor.
// The zero value of Customer is invalid and will fail this validation.
//
// Returns:
//   - error: ErrCustomerIsNotConstructed if improperly initialized, nil if valid
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the unique identifier of the customer.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the display name of the customer.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the customer's contact number; may be empty.
func (c *Customer) Phone() string {
	return c.phone
}

// AccountBalance returns the signed running balance.
// Negative means the customer owes the shop; positive means store credit.
func (c *Customer) AccountBalance() kernel.Money {
	return c.accountBalance
}

// ChargeOrder debits the payable amount of an order against the account.
// The balance decreases by the payable amount, so charging an order to a
// customer with zero balance leaves them owing exactly that amount.
//
// Parameters:
//   - payable: The order's payable amount (must be positive)
//
// Returns:
//   - error: ErrAmountIsNotPositive if payable ≤ 0
//
// Example:
//
//	// Customer owes 200, order payable is 600
//	err := customer.ChargeOrder(kernel.NewMoney(600))
//	// Balance is now -800
func (c *Customer) ChargeOrder(payable kernel.Money) error {
	if !payable.IsPositive() {
		return ErrAmountIsNotPositive
	}

	c.accountBalance = c.accountBalance.Sub(payable)
	return nil
}

// CreditChange credits an overpayment (positive change) to the account.
// Used when the customer chooses to bank their change instead of taking cash.
//
// Parameters:
//   - change: The overpaid amount (must be positive)
//
// Returns:
//   - error: ErrAmountIsNotPositive if change ≤ 0
func (c *Customer) CreditChange(change kernel.Money) error {
	if !change.IsPositive() {
		return ErrAmountIsNotPositive
	}

	c.accountBalance = c.accountBalance.Add(change)
	return nil
}

// setID sets the customer's unique identifier with validation.
// This is an internal setter used during customer construction.
func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

// setName sets the customer's name with validation.
// This is an internal setter used during customer construction.
func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
