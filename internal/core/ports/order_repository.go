package ports

import (
	"context"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Filtered and joined reads live in the query handlers; this port covers
// the writes and the by-id read the commands need.
type OrderRepository interface {
	// Add persists a new order together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id with its line items.
	// Returns ObjectNotFoundError when the id does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and its line items permanently.
	// Returns ObjectNotFoundError when the id does not exist.
	Delete(ctx context.Context, id kernel.UUID) error
}
