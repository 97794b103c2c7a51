package commands

import (
	"errors"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/pkg/guard"
)

var ErrToggleGovernorateCommandIsNotConstructed = errors.New(
	"ToggleGovernorateCommand must be created via NewToggleGovernorateCommand constructor",
)

// ToggleGovernorateCommand represents an admin request to flip a
// governorate's active flag. Dependent cities are never touched.
type ToggleGovernorateCommand struct {
	governorateID kernel.UUID
	caller        kernel.Caller

	guard guard.ConstructorGuard
}

// NewToggleGovernorateCommand creates a command to toggle a governorate's
// active flag.
func NewToggleGovernorateCommand(governorateID kernel.UUID, caller kernel.Caller) (ToggleGovernorateCommand, error) {
	if err := caller.Validate(); err != nil {
		return ToggleGovernorateCommand{}, err
	}
	if err := caller.Authorize("toggle governorate status", kernel.RoleAdmin); err != nil {
		return ToggleGovernorateCommand{}, err
	}
	if err := governorateID.Validate(); err != nil {
		return ToggleGovernorateCommand{}, err
	}

	return ToggleGovernorateCommand{
		governorateID: governorateID,
		caller:        caller,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleGovernorateCommand) Validate() error {
	return c.guard.Validate(ErrToggleGovernorateCommandIsNotConstructed)
}

// GovernorateID returns the target governorate's identifier.
func (c ToggleGovernorateCommand) GovernorateID() kernel.UUID {
	return c.governorateID
}

// Caller returns the resolved caller identity.
func (c ToggleGovernorateCommand) Caller() kernel.Caller {
	return c.caller
}
