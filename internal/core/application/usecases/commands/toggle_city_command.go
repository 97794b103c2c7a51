package commands

import (
	"errors"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/pkg/guard"
)

var ErrToggleCityCommandIsNotConstructed = errors.New(
	"ToggleCityCommand must be created via NewToggleCityCommand constructor",
)

// ToggleCityCommand represents an admin request to flip a city's active flag.
type ToggleCityCommand struct {
	cityID kernel.UUID
	caller kernel.Caller

	guard guard.ConstructorGuard
}

// NewToggleCityCommand creates a command to toggle a city's active flag.
func NewToggleCityCommand(cityID kernel.UUID, caller kernel.Caller) (ToggleCityCommand, error) {
	if err := caller.Validate(); err != nil {
		return ToggleCityCommand{}, err
	}
	if err := caller.Authorize("toggle city status", kernel.RoleAdmin); err != nil {
		return ToggleCityCommand{}, err
	}
	if err := cityID.Validate(); err != nil {
		return ToggleCityCommand{}, err
	}

	return ToggleCityCommand{
		cityID: cityID,
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleCityCommand) Validate() error {
	return c.guard.Validate(ErrToggleCityCommandIsNotConstructed)
}

// CityID returns the target city's identifier.
func (c ToggleCityCommand) CityID() kernel.UUID {
	return c.cityID
}

// Caller returns the resolved caller identity.
func (c ToggleCityCommand) Caller() kernel.Caller {
	return c.caller
}
