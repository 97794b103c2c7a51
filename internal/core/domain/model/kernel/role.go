package kernel

import (
	"fmt"

	"shipadmin/internal/pkg/errs"
)

// Role is the closed set of caller roles recognized by the system.
// Roles are flat capability tags; there is no hierarchy, and each operation
// declares its own allowed set explicitly.
type Role string

const (
	// RoleAdmin manages the location hierarchy and order statuses.
	RoleAdmin Role = "admin"

	// RoleEmployee creates, inspects, and deletes orders.
	RoleEmployee Role = "employee"

	// RoleMerchant creates orders on behalf of their own shop.
	RoleMerchant Role = "merchant"
)

// validRoles returns the set of roles accepted by Validate.
func validRoles() map[Role]struct{} {
	return map[Role]struct{}{
		RoleAdmin:    {},
		RoleEmployee: {},
		RoleMerchant: {},
	}
}

// Validate checks that the role is one of the recognized tags.
func (r Role) Validate() error {
	if _, ok := validRoles()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

// In reports whether the role is a member of the given allowed set.
func (r Role) In(roles ...Role) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}

// String returns the role tag as stored and transmitted.
func (r Role) String() string {
	return string(r)
}

// ErrCallerIsNotConstructed is returned when validating a zero-value Caller.
var ErrCallerIsNotConstructed = errs.NewValueIsRequiredError("Caller must be created via NewCaller")

// Caller is the resolved identity consumed by every mutating operation:
// an opaque user identifier plus a validated role. The access-policy
// collaborator (auth middleware) produces it; this module never manages
// user records itself.
type Caller struct {
	id   UUID
	role Role
}

// NewCaller creates a validated caller identity.
func NewCaller(id UUID, role Role) (Caller, error) {
	if err := id.Validate(); err != nil {
		return Caller{}, err
	}
	if err := role.Validate(); err != nil {
		return Caller{}, err
	}
	return Caller{id: id, role: role}, nil
}

// ID returns the caller's user identifier.
func (c Caller) ID() UUID {
	return c.id
}

// Role returns the caller's role tag.
func (c Caller) Role() Role {
	return c.role
}

// Validate ensures the caller was built via NewCaller.
func (c Caller) Validate() error {
	if err := c.id.Validate(); err != nil {
		return ErrCallerIsNotConstructed
	}
	if err := c.role.Validate(); err != nil {
		return ErrCallerIsNotConstructed
	}
	return nil
}

// Authorize returns nil when the caller's role is in the allowed set for the
// named operation, and a ForbiddenError otherwise. Handlers call it before
// any field validation so role rejections always win.
func (c Caller) Authorize(operation string, allowed ...Role) error {
	if !c.role.In(allowed...) {
		return errs.NewForbiddenError(c.role.String(), operation)
	}
	return nil
}
