package ports

import (
	"context"
	"time"

	"hydrohub/internal/core/domain/model/cart"
	"hydrohub/internal/core/domain/model/kernel"
)

// ParkedOrderRepository defines the persistence contract for parked carts.
// Parked orders live outside the transactional store: they are transient
// snapshots a cashier suspends and later restores exactly once.
type ParkedOrderRepository interface {
	// Add persists a parked order snapshot.
	Add(ctx context.Context, aggregate *cart.ParkedOrder) error

	// Get retrieves a parked order without consuming it.
	// Returns a not-found error when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*cart.ParkedOrder, error)

	// TakeAndDelete atomically retrieves a parked order and removes it,
	// so concurrent restores of the same id yield exactly one winner;
	// every other caller gets a not-found error.
	TakeAndDelete(ctx context.Context, id kernel.UUID) (*cart.ParkedOrder, error)

	// Delete discards a parked order without restoring it.
	// Returns a not-found error when the id is unknown.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAll retrieves every parked order, for the cashier's parked list.
	GetAll(ctx context.Context) ([]*cart.ParkedOrder, error)

	// GetAllCreatedBefore retrieves parked orders older than the cutoff.
	// Used by the cleanup job to expire stale parked carts.
	GetAllCreatedBefore(ctx context.Context, cutoff time.Time) ([]*cart.ParkedOrder, error)
}
