// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent pattern: role authorization first, then
// shape validation, then transaction management and persistence.
package commands

import (
	"context"

	"shipadmin/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Every mutation is atomic at the level of one record, one write; the unit of
// work never spans more than one aggregate write.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// GovernorateRepoFactory provides access to the governorate repository
	// within a transaction.
	GovernorateRepoFactory interface {
		GovernorateRepository() ports.GovernorateRepository
	}

	// CityRepoFactory provides access to the city repository within a transaction.
	CityRepoFactory interface {
		CityRepository() ports.CityRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// LocationUoW manages transactions for the location hierarchy. It exposes
	// both location repositories because several operations consult one while
	// writing the other (city creation checks its governorate; governorate
	// deletion counts referencing cities).
	LocationUoW interface {
		TxManager
		GovernorateRepoFactory
		CityRepoFactory
	}

	// LocationUoWFactory creates new location unit of work instances.
	LocationUoWFactory interface {
		Create() LocationUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
