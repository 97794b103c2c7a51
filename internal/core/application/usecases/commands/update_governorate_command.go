package commands

import (
	"errors"
	"strings"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/pkg/errs"
	"shipadmin/internal/pkg/guard"
)

var ErrUpdateGovernorateCommandIsNotConstructed = errors.New(
	"UpdateGovernorateCommand must be created via NewUpdateGovernorateCommand constructor",
)

// UpdateGovernorateCommand represents an admin request to rename/recode a
// governorate. Both fields must be present on every update.
type UpdateGovernorateCommand struct {
	governorateID kernel.UUID
	name          string
	code          string
	caller        kernel.Caller

	guard guard.ConstructorGuard
}

// NewUpdateGovernorateCommand creates a command to update a governorate.
func NewUpdateGovernorateCommand(
	governorateID kernel.UUID, name, code string, caller kernel.Caller,
) (UpdateGovernorateCommand, error) {
	if err := caller.Validate(); err != nil {
		return UpdateGovernorateCommand{}, err
	}
	if err := caller.Authorize("update governorate", kernel.RoleAdmin); err != nil {
		return UpdateGovernorateCommand{}, err
	}

	cmd := UpdateGovernorateCommand{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setGovernorateID(governorateID),
		cmd.setName(name),
		cmd.setCode(code),
	); err != nil {
		return UpdateGovernorateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateGovernorateCommand) Validate() error {
	return c.guard.Validate(ErrUpdateGovernorateCommandIsNotConstructed)
}

// GovernorateID returns the target governorate's identifier.
func (c UpdateGovernorateCommand) GovernorateID() kernel.UUID {
	return c.governorateID
}

// Name returns the new governorate name.
func (c UpdateGovernorateCommand) Name() string {
	return c.name
}

// Code returns the new governorate code.
func (c UpdateGovernorateCommand) Code() string {
	return c.code
}

// Caller returns the resolved caller identity.
func (c UpdateGovernorateCommand) Caller() kernel.Caller {
	return c.caller
}

func (c *UpdateGovernorateCommand) setGovernorateID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.governorateID = id
	return nil
}

func (c *UpdateGovernorateCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("govName")
	}
	c.name = name
	return nil
}

func (c *UpdateGovernorateCommand) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("govCode")
	}
	c.code = code
	return nil
}
