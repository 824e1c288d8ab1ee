package queries

import (
	"context"

	"hydrohub/internal/core/ports"
)

// GetParkedOrdersQueryHandler lists parked carts from the transient store.
// Unlike the order queries this handler reads through the repository port
// rather than SQL: parked carts live in Redis, not in the database.
type GetParkedOrdersQueryHandler struct {
	parkedOrders ports.ParkedOrderRepository
}

// NewGetParkedOrdersQueryHandler creates a handler for parked cart listings.
func NewGetParkedOrdersQueryHandler(parkedOrders ports.ParkedOrderRepository) GetParkedOrdersQueryHandler {
	return GetParkedOrdersQueryHandler{parkedOrders: parkedOrders}
}

// Handle returns a summary of every parked cart, oldest first.
func (h GetParkedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetParkedOrdersQuery,
) ([]GetParkedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parked, err := h.parkedOrders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]GetParkedOrdersQueryResponse, 0, len(parked))
	for _, p := range parked {
		summaries = append(summaries, GetParkedOrdersQueryResponse{
			ID:         p.ID(),
			CustomerID: p.CustomerID(),
			ItemCount:  p.Cart().Size(),
			Subtotal:   p.Cart().Subtotal(),
			ParkedAt:   p.CreatedAt(),
		})
	}

	return summaries, nil
}
