package location

import (
	"errors"
	"fmt"
	"strings"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/pkg/errs"
)

// ErrCityIsNotConstructed is returned when a City instance was not created
// through NewCity or RestoreCity.
var ErrCityIsNotConstructed = errors.New("City must be created via NewCity constructor")

// City is the second-level geographic unit. It references exactly one
// governorate and carries the shipping cost orders are priced against.
//
// Invariants:
//   - name is non-empty; the (name, governorate) pair is unique
//   - shippingCost is present and non-negative (zero is valid)
//   - ownership is by reference: deleting a governorate never cascades here
type City struct {
	id            kernel.UUID
	name          string
	governorateID kernel.UUID
	shippingCost  float64
	isActive      bool

	isConstructed bool
}

// NewCity creates a city under an existing governorate with the active flag set.
// Existence of the governorate is the registry's responsibility; the entity
// only validates shape.
func NewCity(id kernel.UUID, name string, governorateID kernel.UUID, shippingCost float64) (*City, error) {
	city := &City{
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		city.setID(id),
		city.setName(name),
		city.setGovernorateID(governorateID),
		city.setShippingCost(shippingCost),
	); err != nil {
		return nil, err
	}

	return city, nil
}

// RestoreCity reconstructs a city from persistence.
func RestoreCity(
	id kernel.UUID, name string, governorateID kernel.UUID, shippingCost float64, isActive bool,
) (*City, error) {
	city, err := NewCity(id, name, governorateID, shippingCost)
	if err != nil {
		return nil, err
	}

	city.isActive = isActive
	return city, nil
}

// Validate ensures the instance was created through a constructor.
func (c *City) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCityIsNotConstructed
	}
	return nil
}

// ID returns the city's unique identifier.
func (c *City) ID() kernel.UUID {
	return c.id
}

// Name returns the city name.
func (c *City) Name() string {
	return c.name
}

// GovernorateID returns the owning governorate's identifier.
func (c *City) GovernorateID() kernel.UUID {
	return c.governorateID
}

// ShippingCost returns the cost charged for delivery to this city.
func (c *City) ShippingCost() float64 {
	return c.shippingCost
}

// IsActive reports the soft visibility flag.
func (c *City) IsActive() bool {
	return c.isActive
}

// Update replaces name, owning governorate, and shipping cost.
// Re-parenting to a different governorate is allowed.
func (c *City) Update(name string, governorateID kernel.UUID, shippingCost float64) error {
	return errors.Join(
		c.setName(name),
		c.setGovernorateID(governorateID),
		c.setShippingCost(shippingCost),
	)
}

// ToggleActive flips the active flag.
func (c *City) ToggleActive() {
	c.isActive = !c.isActive
}

func (c *City) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *City) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("cityName")
	}
	c.name = strings.TrimSpace(name)
	return nil
}

func (c *City) setGovernorateID(governorateID kernel.UUID) error {
	if err := governorateID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("governorateId", err)
	}
	c.governorateID = governorateID
	return nil
}

func (c *City) setShippingCost(shippingCost float64) error {
	if shippingCost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("shippingCost",
			fmt.Errorf("%v is negative", shippingCost))
	}
	c.shippingCost = shippingCost
	return nil
}
