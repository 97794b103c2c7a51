package commands

import (
	"errors"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/core/domain/model/order"
	"shipadmin/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents an admin or employee request to set an
// order's status to any valid enum value. There is no transition graph;
// writing the current value again is accepted.
type UpdateOrderStatusCommand struct {
	orderID kernel.UUID
	status  order.Status
	caller  kernel.Caller

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to set an order's status.
// The raw status string is parsed here so an invalid value never reaches
// the handler.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID, status string, caller kernel.Caller,
) (UpdateOrderStatusCommand, error) {
	if err := caller.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	if err := caller.Authorize("update order status", kernel.RoleAdmin, kernel.RoleEmployee); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	if err := orderID.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	parsed, err := order.ParseStatus(status)
	if err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID: orderID,
		status:  parsed,
		caller:  caller,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the parsed target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// Caller returns the resolved caller identity.
func (c UpdateOrderStatusCommand) Caller() kernel.Caller {
	return c.caller
}
