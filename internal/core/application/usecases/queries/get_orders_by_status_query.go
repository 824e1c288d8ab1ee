package queries

import (
	"errors"
	"time"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/core/domain/model/order"
	"hydrohub/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves the orders currently in one lifecycle
// status, newest first. This backs the dispatch board: the New column shows
// work awaiting assignment, Shipped shows deliveries still out.
//
// Example:
//
//	query, err := NewGetOrdersByStatusQuery(order.Shipped)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get shipped orders: %w", err)
//	}
//
//	fmt.Printf("%d deliveries out\n", len(orders))
type GetOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for orders in the given status.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByStatusQueryIsNotConstructed if validation fails.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the lifecycle status to filter by.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// GetOrdersByStatusQueryResponse is the read model for one order row on the
// dispatch board. CustomerID is nil for walk-in sales; StaffName is empty
// until the order has been assigned.
type GetOrdersByStatusQueryResponse struct {
	ID         kernel.UUID
	CustomerID *kernel.UUID
	Status     order.Status
	StaffName  string
	Payable    kernel.Money
	CreatedAt  time.Time
}
