// Package swallowrepo persists Swallow aggregates with GORM and maps them to
// and from their table representation.
package swallowrepo

import (
	"airspeed/internal/core/domain/model/kernel"
	"airspeed/internal/core/domain/model/swallow"

	"github.com/google/uuid"
)

// SwallowDTO is the row stored in the swallows table. Species is indexed
// for migratory listings.
type SwallowDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Species     int16     `gorm:"type:smallint;not null;index"`
	CargoWeight float64   `gorm:"type:double precision;not null;default:0;check:cargo_weight >= 0"`
}

// TableName overrides GORM's default naming convention to use "swallows".
func (SwallowDTO) TableName() string {
	return "swallows"
}

func fromDomain(aggregate *swallow.Swallow) SwallowDTO {
	return SwallowDTO{
		ID:          aggregate.ID().Bytes(),
		Species:     int16(aggregate.Species()),
		CargoWeight: aggregate.CargoWeight(),
	}
}

func toDomain(dto SwallowDTO) (*swallow.Swallow, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return swallow.NewSwallowWithID(id, swallow.Species(dto.Species), dto.CargoWeight)
}
