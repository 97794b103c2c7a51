package commands

import (
	"errors"
	"strings"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/pkg/errs"
	"shipadmin/internal/pkg/guard"
)

var ErrUpdateCityCommandIsNotConstructed = errors.New(
	"UpdateCityCommand must be created via NewUpdateCityCommand constructor",
)

// UpdateCityCommand represents an admin request to update a city's name,
// shipping cost, or owning governorate. All three fields must be present on
// every update; re-parenting to a different governorate is allowed.
type UpdateCityCommand struct {
	cityID        kernel.UUID
	name          string
	governorateID kernel.UUID
	shippingCost  float64
	caller        kernel.Caller

	guard guard.ConstructorGuard
}

// NewUpdateCityCommand creates a command to update a city.
func NewUpdateCityCommand(
	cityID kernel.UUID, name string, governorateID kernel.UUID, shippingCost *float64, caller kernel.Caller,
) (UpdateCityCommand, error) {
	if err := caller.Validate(); err != nil {
		return UpdateCityCommand{}, err
	}
	if err := caller.Authorize("update city", kernel.RoleAdmin); err != nil {
		return UpdateCityCommand{}, err
	}

	cmd := UpdateCityCommand{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCityID(cityID),
		cmd.setName(name),
		cmd.setGovernorateID(governorateID),
		cmd.setShippingCost(shippingCost),
	); err != nil {
		return UpdateCityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCityCommandIsNotConstructed)
}

// CityID returns the target city's identifier.
func (c UpdateCityCommand) CityID() kernel.UUID {
	return c.cityID
}

// Name returns the new city name.
func (c UpdateCityCommand) Name() string {
	return c.name
}

// GovernorateID returns the new owning governorate's identifier.
func (c UpdateCityCommand) GovernorateID() kernel.UUID {
	return c.governorateID
}

// ShippingCost returns the new shipping cost.
func (c UpdateCityCommand) ShippingCost() float64 {
	return c.shippingCost
}

// Caller returns the resolved caller identity.
func (c UpdateCityCommand) Caller() kernel.Caller {
	return c.caller
}

func (c *UpdateCityCommand) setCityID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.cityID = id
	return nil
}

func (c *UpdateCityCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("cityName")
	}
	c.name = name
	return nil
}

func (c *UpdateCityCommand) setGovernorateID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("governorateId", err)
	}
	c.governorateID = id
	return nil
}

func (c *UpdateCityCommand) setShippingCost(shippingCost *float64) error {
	if shippingCost == nil {
		return errs.NewValueIsRequiredError("shippingCost")
	}
	c.shippingCost = *shippingCost
	return nil
}
