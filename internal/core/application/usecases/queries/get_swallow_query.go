package queries

import (
	"errors"

	"airspeed/internal/core/domain/model/kernel"
	"airspeed/internal/pkg/guard"
)

var (
	ErrGetSwallowQueryIsNotConstructed = errors.New(
		"GetSwallowQuery must be created via NewGetSwallowQuery constructor",
	)
)

// GetSwallowQuery retrieves the flight information of one swallow.
//
// Example:
//
//	query, err := NewGetSwallowQuery(id)
//	if err != nil {
//	    return err
//	}
//	flight, err := handler.Handle(ctx, query)
//	fmt.Printf("%s flies at %.1f km/h", flight.Species, flight.Speed)
type GetSwallowQuery struct {
	swallowID kernel.UUID
	guard     guard.ConstructorGuard
}

// NewGetSwallowQuery validates the swallow id.
func NewGetSwallowQuery(swallowID kernel.UUID) (GetSwallowQuery, error) {
	if err := swallowID.Validate(); err != nil {
		return GetSwallowQuery{}, err
	}

	return GetSwallowQuery{
		swallowID: swallowID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSwallowQuery) Validate() error {
	return q.guard.Validate(ErrGetSwallowQueryIsNotConstructed)
}

func (q GetSwallowQuery) SwallowID() kernel.UUID {
	return q.swallowID
}
