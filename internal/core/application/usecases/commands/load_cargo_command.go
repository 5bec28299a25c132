package commands

import (
	"errors"

	"airspeed/internal/core/domain/model/kernel"
	"airspeed/internal/core/domain/model/swallow"
	"airspeed/internal/pkg/guard"
)

var (
	ErrLoadCargoCommandIsNotConstructed = errors.New(
		"LoadCargoCommand must be created via NewLoadCargoCommand constructor",
	)
)

// LoadCargoCommand replaces the cargo carried by an existing swallow.
type LoadCargoCommand struct { //nolint:recvcheck //using for validation
	swallowID   kernel.UUID
	cargoWeight float64

	guard guard.ConstructorGuard
}

// NewLoadCargoCommand validates the swallow id and the new cargo weight.
func NewLoadCargoCommand(swallowID kernel.UUID, cargoWeight float64) (LoadCargoCommand, error) {
	command := LoadCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSwallowID(swallowID),
		command.setCargoWeight(cargoWeight),
	); err != nil {
		return LoadCargoCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c LoadCargoCommand) Validate() error {
	return c.guard.Validate(ErrLoadCargoCommandIsNotConstructed)
}

func (c LoadCargoCommand) SwallowID() kernel.UUID {
	return c.swallowID
}

func (c LoadCargoCommand) CargoWeight() float64 {
	return c.cargoWeight
}

func (c *LoadCargoCommand) setSwallowID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.swallowID = id
	return nil
}

func (c *LoadCargoCommand) setCargoWeight(cargoWeight float64) error {
	if err := swallow.ValidateCargoWeight(cargoWeight); err != nil {
		return err
	}

	c.cargoWeight = cargoWeight
	return nil
}
