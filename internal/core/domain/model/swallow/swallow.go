package swallow

import (
	"errors"
	"fmt"
	"math"

	"airspeed/internal/core/domain/model/kernel"
	"airspeed/internal/pkg/errs"
	"airspeed/internal/pkg/guard"
)

const (
	// UnladenSpeed is the airspeed of a swallow carrying nothing, in km/h.
	UnladenSpeed = 60.0

	// OverloadThreshold is the cargo weight (kg) at which a swallow gives up
	// and heads home: one pound, roughly 0.45 kg. Reaching it exactly counts.
	OverloadThreshold = 0.45
)

// ErrSwallowIsNotConstructed is returned when using a Swallow that was not
// created by NewSwallow, NewUnladenSwallow or NewSwallowWithID.
var ErrSwallowIsNotConstructed = errors.New("Swallow must be created via NewSwallow constructor")

// Swallow is the aggregate root of the package. It owns an identity, an
// immutable species and a mutable cargo weight, and derives its airspeed
// from that weight.
//
// Invariants:
//   - species is African or European
//   - cargoWeight is a finite number >= 0
//
// Swallow does no locking; callers sharing one across goroutines must
// synchronise themselves.
//
// Example usage:
//
//	s, err := swallow.NewSwallow("European", 0.2)
//	if err != nil {
//	    // errors.Is(err, errs.ErrValueIsInvalid)
//	}
//	s.Speed()       // 50
//	s.IsMigratory() // true
type Swallow struct {
	// id uniquely identifies the swallow
	id kernel.UUID
	// species decides whether the swallow migrates
	species Species
	// cargoWeight is the carried load in kilograms
	cargoWeight float64
	// guard ensures the swallow was properly constructed
	guard guard.ConstructorGuard
}

// NewSwallow creates a swallow with a fresh identity.
//
// Parameters:
//   - species: "african" or "european", in any letter case
//   - cargoWeight: initial load in kilograms, must be >= 0
//
// Returns an error wrapping errs.ErrValueIsInvalid when the species is not
// recognised or the cargo weight is negative. When both are wrong both
// failures are reported, joined.
func NewSwallow(species string, cargoWeight float64) (*Swallow, error) {
	parsed, speciesErr := ParseSpecies(species)
	if speciesErr != nil {
		return nil, errors.Join(speciesErr, ValidateCargoWeight(cargoWeight))
	}

	return NewSwallowWithID(kernel.NewUUID(), parsed, cargoWeight)
}

// NewUnladenSwallow creates a swallow carrying nothing.
func NewUnladenSwallow(species string) (*Swallow, error) {
	return NewSwallow(species, 0)
}

// NewSwallowWithID creates a swallow under a caller-chosen identity. Commands
// use it with a pre-generated id and repositories use it to rebuild persisted
// swallows; validation is the same as NewSwallow.
func NewSwallowWithID(id kernel.UUID, species Species, cargoWeight float64) (*Swallow, error) {
	s := &Swallow{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setSpecies(species),
		s.SetCargoWeight(cargoWeight),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate returns ErrSwallowIsNotConstructed for nil or zero-value swallows.
func (s *Swallow) Validate() error {
	if s == nil {
		return ErrSwallowIsNotConstructed
	}
	return s.guard.Validate(ErrSwallowIsNotConstructed)
}

// IsEqual compares swallows by identity.
func (s *Swallow) IsEqual(other *Swallow) bool {
	if other == nil {
		return false
	}
	return s.id.IsEqual(other.id)
}

// ID returns the identity assigned at construction.
func (s *Swallow) ID() kernel.UUID {
	return s.id
}

// Species returns the species the swallow was created with. It never changes.
func (s *Swallow) Species() Species {
	return s.species
}

// CargoWeight returns the current load in kilograms.
func (s *Swallow) CargoWeight() float64 {
	return s.cargoWeight
}

// SetCargoWeight replaces the load. A negative, NaN or infinite weight is
// rejected with an error wrapping errs.ErrValueIsInvalid and the previous
// weight is kept.
func (s *Swallow) SetCargoWeight(cargoWeight float64) error {
	if err := ValidateCargoWeight(cargoWeight); err != nil {
		return err
	}

	s.cargoWeight = cargoWeight
	return nil
}

// IsTurningBack reports whether the cargo has reached OverloadThreshold.
func (s *Swallow) IsTurningBack() bool {
	return s.cargoWeight >= OverloadThreshold
}

// Speed returns the airspeed in km/h: UnladenSpeed / (1 + cargo weight).
// An overloaded swallow flies back home, which shows as a negative speed.
//
//	0    kg ->  60
//	0.2  kg ->  50
//	0.45 kg -> -41.37...
func (s *Swallow) Speed() float64 {
	speed := UnladenSpeed / (1 + s.cargoWeight)
	if s.IsTurningBack() {
		return -speed
	}
	return speed
}

// IsMigratory reports whether the swallow is european.
func (s *Swallow) IsMigratory() bool {
	return s.species.IsMigratory()
}

func (s *Swallow) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

func (s *Swallow) setSpecies(species Species) error {
	if err := species.Validate(); err != nil {
		return err
	}

	s.species = species
	return nil
}

// ValidateCargoWeight checks a weight against the cargo invariant without
// touching any swallow.
func ValidateCargoWeight(cargoWeight float64) error {
	if math.IsNaN(cargoWeight) || math.IsInf(cargoWeight, 0) {
		return errs.NewValueIsInvalidErrorWithCause("cargo weight", fmt.Errorf("%v is not a finite number", cargoWeight))
	}
	if cargoWeight < 0 {
		return errs.NewValueIsInvalidErrorWithCause("cargo weight", fmt.Errorf("%v cannot be negative", cargoWeight))
	}
	return nil
}
