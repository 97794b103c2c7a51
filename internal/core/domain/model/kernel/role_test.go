package kernel_test

import (
	"testing"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Validate(t *testing.T) {
	t.Run("accepts_known_roles", func(t *testing.T) {
		for _, role := range []kernel.Role{kernel.RoleAdmin, kernel.RoleEmployee, kernel.RoleMerchant} {
			require.NoError(t, role.Validate())
		}
	})

	t.Run("rejects_unknown_role", func(t *testing.T) {
		err := kernel.Role("superuser").Validate()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_empty_role", func(t *testing.T) {
		err := kernel.Role("").Validate()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRole_In(t *testing.T) {
	assert.True(t, kernel.RoleAdmin.In(kernel.RoleAdmin, kernel.RoleEmployee))
	assert.False(t, kernel.RoleMerchant.In(kernel.RoleAdmin, kernel.RoleEmployee))
	assert.False(t, kernel.RoleAdmin.In())
}

func TestNewCaller(t *testing.T) {
	t.Run("constructs_with_valid_id_and_role", func(t *testing.T) {
		caller, err := kernel.NewCaller(kernel.NewUUID(), kernel.RoleEmployee)

		require.NoError(t, err)
		require.NoError(t, caller.Validate())
		assert.Equal(t, kernel.RoleEmployee, caller.Role())
	})

	t.Run("rejects_zero_id", func(t *testing.T) {
		var id kernel.UUID
		_, err := kernel.NewCaller(id, kernel.RoleAdmin)
		require.Error(t, err)
	})

	t.Run("rejects_invalid_role", func(t *testing.T) {
		_, err := kernel.NewCaller(kernel.NewUUID(), kernel.Role("root"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_caller_fails_validation", func(t *testing.T) {
		var caller kernel.Caller
		require.ErrorIs(t, caller.Validate(), kernel.ErrCallerIsNotConstructed)
	})
}

func TestCaller_Authorize(t *testing.T) {
	t.Run("allows_member_of_allowed_set", func(t *testing.T) {
		caller, err := kernel.NewCaller(kernel.NewUUID(), kernel.RoleAdmin)
		require.NoError(t, err)

		require.NoError(t, caller.Authorize("create governorate", kernel.RoleAdmin))
	})

	t.Run("rejects_role_outside_allowed_set", func(t *testing.T) {
		caller, err := kernel.NewCaller(kernel.NewUUID(), kernel.RoleMerchant)
		require.NoError(t, err)

		err = caller.Authorize("delete order", kernel.RoleEmployee)
		require.ErrorIs(t, err, errs.ErrForbidden)

		var forbidden *errs.ForbiddenError
		require.ErrorAs(t, err, &forbidden)
		assert.Equal(t, "merchant", forbidden.Role)
		assert.Equal(t, "delete order", forbidden.Operation)
	})
}
