package commands_test

import (
	"testing"

	"shipadmin/internal/core/application/usecases/commands"
	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestNewCreateCityCommand_ValidInput(t *testing.T) {
	govID := kernel.NewUUID()
	cmd, err := commands.NewCreateCityCommand("Nasr City", govID, floatPtr(50), adminCaller(t))
	require.NoError(t, err)
	assert.Equal(t, "Nasr City", cmd.Name())
	assert.Equal(t, govID, cmd.GovernorateID())
	assert.Equal(t, 50.0, cmd.ShippingCost())
}

// Zero is a legitimate shipping cost; only a missing value is rejected.
func TestNewCreateCityCommand_ZeroShippingCost(t *testing.T) {
	cmd, err := commands.NewCreateCityCommand("Downtown", kernel.NewUUID(), floatPtr(0), adminCaller(t))
	require.NoError(t, err)
	assert.Equal(t, 0.0, cmd.ShippingCost())
}

func TestNewCreateCityCommand_MissingShippingCost(t *testing.T) {
	_, err := commands.NewCreateCityCommand("Downtown", kernel.NewUUID(), nil, adminCaller(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateCityCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateCityCommand("", kernel.NewUUID(), floatPtr(10), adminCaller(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateCityCommand_MissingGovernorateID(t *testing.T) {
	_, err := commands.NewCreateCityCommand("Downtown", kernel.UUID{}, floatPtr(10), adminCaller(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateCityCommand_NonAdminForbidden(t *testing.T) {
	_, err := commands.NewCreateCityCommand("Downtown", kernel.NewUUID(), floatPtr(10), merchantCaller(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
}
