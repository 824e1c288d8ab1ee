package queries

import (
	"errors"
	"time"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/pkg/guard"
)

var ErrGetParkedOrdersQueryIsNotConstructed = errors.New(
	"GetParkedOrdersQuery must be created via NewGetParkedOrdersQuery constructor",
)

// GetParkedOrdersQuery lists the carts currently parked at the counter,
// oldest first, so a cashier can pick one to resume.
type GetParkedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetParkedOrdersQuery creates a query to list parked carts.
// This is a parameterless query.
func NewGetParkedOrdersQuery() GetParkedOrdersQuery {
	return GetParkedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetParkedOrdersQueryIsNotConstructed if validation fails.
func (q GetParkedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetParkedOrdersQueryIsNotConstructed)
}

// GetParkedOrdersQueryResponse summarizes one parked cart. CustomerID is nil
// when the cart was parked for a walk-in customer.
type GetParkedOrdersQueryResponse struct {
	ID         kernel.UUID
	CustomerID *kernel.UUID
	ItemCount  int
	Subtotal   kernel.Money
	ParkedAt   time.Time
}
