package commands

import (
	"errors"
	"strings"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/pkg/errs"
	"shipadmin/internal/pkg/guard"
)

var ErrCreateCityCommandIsNotConstructed = errors.New(
	"CreateCityCommand must be created via NewCreateCityCommand constructor",
)

// CreateCityCommand represents an admin request to add a city under an
// existing governorate.
//
// shippingCost is a pointer because absence and zero are different things:
// a missing cost is a validation error, a zero cost is a legitimate
// free-shipping city.
type CreateCityCommand struct {
	name          string
	governorateID kernel.UUID
	shippingCost  float64
	caller        kernel.Caller

	guard guard.ConstructorGuard
}

// NewCreateCityCommand creates a command to add a city.
func NewCreateCityCommand(
	name string, governorateID kernel.UUID, shippingCost *float64, caller kernel.Caller,
) (CreateCityCommand, error) {
	if err := caller.Validate(); err != nil {
		return CreateCityCommand{}, err
	}
	if err := caller.Authorize("create city", kernel.RoleAdmin); err != nil {
		return CreateCityCommand{}, err
	}

	cmd := CreateCityCommand{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setGovernorateID(governorateID),
		cmd.setShippingCost(shippingCost),
	); err != nil {
		return CreateCityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCityCommand) Validate() error {
	return c.guard.Validate(ErrCreateCityCommandIsNotConstructed)
}

// Name returns the requested city name.
func (c CreateCityCommand) Name() string {
	return c.name
}

// GovernorateID returns the owning governorate's identifier.
func (c CreateCityCommand) GovernorateID() kernel.UUID {
	return c.governorateID
}

// ShippingCost returns the shipping cost for the city.
func (c CreateCityCommand) ShippingCost() float64 {
	return c.shippingCost
}

// Caller returns the resolved caller identity.
func (c CreateCityCommand) Caller() kernel.Caller {
	return c.caller
}

func (c *CreateCityCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("cityName")
	}
	c.name = name
	return nil
}

func (c *CreateCityCommand) setGovernorateID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("governorateId", err)
	}
	c.governorateID = id
	return nil
}

func (c *CreateCityCommand) setShippingCost(shippingCost *float64) error {
	if shippingCost == nil {
		return errs.NewValueIsRequiredError("shippingCost")
	}
	c.shippingCost = *shippingCost
	return nil
}
