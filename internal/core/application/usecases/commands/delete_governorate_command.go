package commands

import (
	"errors"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/pkg/guard"
)

var ErrDeleteGovernorateCommandIsNotConstructed = errors.New(
	"DeleteGovernorateCommand must be created via NewDeleteGovernorateCommand constructor",
)

// DeleteGovernorateCommand represents an admin request to remove a
// governorate. The handler refuses when any city references it.
type DeleteGovernorateCommand struct {
	governorateID kernel.UUID
	caller        kernel.Caller

	guard guard.ConstructorGuard
}

// NewDeleteGovernorateCommand creates a command to delete a governorate.
func NewDeleteGovernorateCommand(governorateID kernel.UUID, caller kernel.Caller) (DeleteGovernorateCommand, error) {
	if err := caller.Validate(); err != nil {
		return DeleteGovernorateCommand{}, err
	}
	if err := caller.Authorize("delete governorate", kernel.RoleAdmin); err != nil {
		return DeleteGovernorateCommand{}, err
	}
	if err := governorateID.Validate(); err != nil {
		return DeleteGovernorateCommand{}, err
	}

	return DeleteGovernorateCommand{
		governorateID: governorateID,
		caller:        caller,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteGovernorateCommand) Validate() error {
	return c.guard.Validate(ErrDeleteGovernorateCommandIsNotConstructed)
}

// GovernorateID returns the target governorate's identifier.
func (c DeleteGovernorateCommand) GovernorateID() kernel.UUID {
	return c.governorateID
}

// Caller returns the resolved caller identity.
func (c DeleteGovernorateCommand) Caller() kernel.Caller {
	return c.caller
}
