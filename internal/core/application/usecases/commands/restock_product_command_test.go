package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRestockProductCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewRestockProductCommand(1, 25)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cmd.ProductID())
	assert.Equal(t, 25, cmd.Quantity())
}

func TestNewRestockProductCommand_InvalidProductID(t *testing.T) {
	_, err := commands.NewRestockProductCommand(0, 25)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewRestockProductCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewRestockProductCommand(1, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewRestockProductCommand_JoinsAllViolations(t *testing.T) {
	_, err := commands.NewRestockProductCommand(-1, -5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "productId")
	assert.Contains(t, err.Error(), "quantity")
}

func TestRestockProductCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.RestockProductCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRestockProductCommandIsNotConstructed)
}
