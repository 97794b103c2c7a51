package commands

import (
	"errors"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/pkg/guard"
)

var ErrDeleteCityCommandIsNotConstructed = errors.New(
	"DeleteCityCommand must be created via NewDeleteCityCommand constructor",
)

// DeleteCityCommand represents an admin request to remove a city.
// Orders hold location names as text snapshots, so existing orders are
// unaffected and no dependency check applies.
type DeleteCityCommand struct {
	cityID kernel.UUID
	caller kernel.Caller

	guard guard.ConstructorGuard
}

// NewDeleteCityCommand creates a command to delete a city.
func NewDeleteCityCommand(cityID kernel.UUID, caller kernel.Caller) (DeleteCityCommand, error) {
	if err := caller.Validate(); err != nil {
		return DeleteCityCommand{}, err
	}
	if err := caller.Authorize("delete city", kernel.RoleAdmin); err != nil {
		return DeleteCityCommand{}, err
	}
	if err := cityID.Validate(); err != nil {
		return DeleteCityCommand{}, err
	}

	return DeleteCityCommand{
		cityID: cityID,
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCityCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCityCommandIsNotConstructed)
}

// CityID returns the target city's identifier.
func (c DeleteCityCommand) CityID() kernel.UUID {
	return c.cityID
}

// Caller returns the resolved caller identity.
func (c DeleteCityCommand) Caller() kernel.Caller {
	return c.caller
}
