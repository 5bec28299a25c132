package commands_test

import (
	"math"
	"testing"

	"airspeed/internal/core/application/usecases/commands"
	"airspeed/internal/core/domain/model/swallow"
	"airspeed/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterSwallowCommand_ValidInput(t *testing.T) {
	testCases := []struct {
		name        string
		species     string
		cargoWeight float64
		expected    swallow.Species
	}{
		{"unladen european", "european", 0, swallow.European},
		{"upper case african", "AFRICAN", 0.1, swallow.African},
		{"overloaded european", "European", 0.45, swallow.European},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			cmd, err := commands.NewRegisterSwallowCommand(tc.species, tc.cargoWeight)

			// Assert
			require.NoError(t, err)
			require.NoError(t, cmd.Validate())
			require.NoError(t, cmd.SwallowID().Validate())
			assert.Equal(t, tc.expected, cmd.Species())
			assert.InDelta(t, tc.cargoWeight, cmd.CargoWeight(), 1e-12)
		})
	}
}

func TestNewRegisterSwallowCommand_InvalidInput(t *testing.T) {
	testCases := []struct {
		name        string
		species     string
		cargoWeight float64
		contains    []string
	}{
		{"unknown species", "asian", 0, []string{"species"}},
		{"empty species", "", 0, []string{"species"}},
		{"negative cargo", "european", -1, []string{"cargo weight"}},
		{"NaN cargo", "european", math.NaN(), []string{"cargo weight"}},
		{"both invalid", "asian", -1, []string{"species", "cargo weight"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			cmd, err := commands.NewRegisterSwallowCommand(tc.species, tc.cargoWeight)

			// Assert
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			for _, part := range tc.contains {
				assert.Contains(t, err.Error(), part)
			}
			require.ErrorIs(t, cmd.Validate(), commands.ErrRegisterSwallowCommandIsNotConstructed)
		})
	}
}

func TestNewRegisterSwallowCommand_GeneratesUniqueIDs(t *testing.T) {
	first, err := commands.NewRegisterSwallowCommand("european", 0)
	require.NoError(t, err)
	second, err := commands.NewRegisterSwallowCommand("european", 0)
	require.NoError(t, err)

	assert.False(t, first.SwallowID().IsEqual(second.SwallowID()))
}
