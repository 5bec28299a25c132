package commands

import (
	"errors"

	"airspeed/internal/core/domain/model/kernel"
	"airspeed/internal/core/domain/model/swallow"
	"airspeed/internal/pkg/guard"
)

var (
	ErrRegisterSwallowCommandIsNotConstructed = errors.New(
		"RegisterSwallowCommand must be created via NewRegisterSwallowCommand constructor",
	)
)

// RegisterSwallowCommand asks for a new swallow to be registered.
// The swallow id is generated here so the caller can address the swallow
// once the command has been handled.
//
// Example:
//
//	cmd, err := NewRegisterSwallowCommand("European", 0.2)
//	if err != nil {
//	    return fmt.Errorf("invalid swallow data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register swallow: %w", err)
//	}
//	fmt.Printf("Registered swallow %s", cmd.SwallowID())
type RegisterSwallowCommand struct { //nolint:recvcheck //using for validation
	swallowID   kernel.UUID
	species     swallow.Species
	cargoWeight float64

	guard guard.ConstructorGuard
}

// NewRegisterSwallowCommand validates the species name (case-insensitive)
// and the initial cargo weight. All failures wrap errs.ErrValueIsInvalid.
func NewRegisterSwallowCommand(species string, cargoWeight float64) (RegisterSwallowCommand, error) {
	command := RegisterSwallowCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSwallowID(kernel.NewUUID()),
		command.setSpecies(species),
		command.setCargoWeight(cargoWeight),
	); err != nil {
		return RegisterSwallowCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterSwallowCommand) Validate() error {
	return c.guard.Validate(ErrRegisterSwallowCommandIsNotConstructed)
}

func (c RegisterSwallowCommand) SwallowID() kernel.UUID {
	return c.swallowID
}

func (c RegisterSwallowCommand) Species() swallow.Species {
	return c.species
}

func (c RegisterSwallowCommand) CargoWeight() float64 {
	return c.cargoWeight
}

func (c *RegisterSwallowCommand) setSwallowID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.swallowID = id
	return nil
}

func (c *RegisterSwallowCommand) setSpecies(name string) error {
	species, err := swallow.ParseSpecies(name)
	if err != nil {
		return err
	}

	c.species = species
	return nil
}

func (c *RegisterSwallowCommand) setCargoWeight(cargoWeight float64) error {
	if err := swallow.ValidateCargoWeight(cargoWeight); err != nil {
		return err
	}

	c.cargoWeight = cargoWeight
	return nil
}
