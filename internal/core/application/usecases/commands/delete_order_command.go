package commands

import (
	"errors"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to remove an order permanently.
//
// The access contract is literal: only the employee role may delete orders.
// Admins manage the status lifecycle but do not get deletion by implication.
type DeleteOrderCommand struct {
	orderID kernel.UUID
	caller  kernel.Caller

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete an order.
func NewDeleteOrderCommand(orderID kernel.UUID, caller kernel.Caller) (DeleteOrderCommand, error) {
	if err := caller.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}
	if err := caller.Authorize("delete order", kernel.RoleEmployee); err != nil {
		return DeleteOrderCommand{}, err
	}
	if err := orderID.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		orderID: orderID,
		caller:  caller,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Caller returns the resolved caller identity.
func (c DeleteOrderCommand) Caller() kernel.Caller {
	return c.caller
}
