// Package queries contains the read side of the application. Queries read
// rows straight from the database and rebuild the domain entity only to
// derive airspeed and migration, so the formula lives in one place.
package queries

import (
	"airspeed/internal/core/domain/model/kernel"
	"airspeed/internal/core/domain/model/swallow"

	"github.com/google/uuid"
)

// SwallowFlightResponse is the read model of a swallow in flight.
type SwallowFlightResponse struct {
	ID            kernel.UUID
	Species       swallow.Species
	CargoWeight   float64
	Speed         float64
	IsMigratory   bool
	IsTurningBack bool
}

// swallowRow mirrors the columns selected by the query handlers.
type swallowRow struct {
	ID          uuid.UUID
	Species     int16
	CargoWeight float64
}

func (r swallowRow) toResponse() (SwallowFlightResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return SwallowFlightResponse{}, err
	}

	s, err := swallow.NewSwallowWithID(id, swallow.Species(r.Species), r.CargoWeight)
	if err != nil {
		return SwallowFlightResponse{}, err
	}

	return SwallowFlightResponse{
		ID:            s.ID(),
		Species:       s.Species(),
		CargoWeight:   s.CargoWeight(),
		Speed:         s.Speed(),
		IsMigratory:   s.IsMigratory(),
		IsTurningBack: s.IsTurningBack(),
	}, nil
}
