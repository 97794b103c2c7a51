package commands

import (
	"errors"
	"strings"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/pkg/errs"
	"shipadmin/internal/pkg/guard"
)

var ErrCreateGovernorateCommandIsNotConstructed = errors.New(
	"CreateGovernorateCommand must be created via NewCreateGovernorateCommand constructor",
)

// CreateGovernorateCommand represents an admin request to add a governorate.
// The caller's role is checked before any field validation, so a non-admin
// caller is rejected with Forbidden even when the payload is malformed.
type CreateGovernorateCommand struct {
	name   string
	code   string
	caller kernel.Caller

	guard guard.ConstructorGuard
}

// NewCreateGovernorateCommand creates a command to add a governorate.
// Requires an admin caller and non-empty name and code.
func NewCreateGovernorateCommand(name, code string, caller kernel.Caller) (CreateGovernorateCommand, error) {
	if err := caller.Validate(); err != nil {
		return CreateGovernorateCommand{}, err
	}
	if err := caller.Authorize("create governorate", kernel.RoleAdmin); err != nil {
		return CreateGovernorateCommand{}, err
	}

	cmd := CreateGovernorateCommand{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setCode(code),
	); err != nil {
		return CreateGovernorateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateGovernorateCommand) Validate() error {
	return c.guard.Validate(ErrCreateGovernorateCommandIsNotConstructed)
}

// Name returns the requested governorate name.
func (c CreateGovernorateCommand) Name() string {
	return c.name
}

// Code returns the requested governorate code as supplied (normalization to
// uppercase happens in the domain constructor).
func (c CreateGovernorateCommand) Code() string {
	return c.code
}

// Caller returns the resolved caller identity.
func (c CreateGovernorateCommand) Caller() kernel.Caller {
	return c.caller
}

func (c *CreateGovernorateCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("govName")
	}
	c.name = name
	return nil
}

func (c *CreateGovernorateCommand) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("govCode")
	}
	c.code = code
	return nil
}
