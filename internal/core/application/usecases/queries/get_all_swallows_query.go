package queries

import (
	"errors"

	"airspeed/internal/pkg/guard"
)

var (
	ErrGetAllSwallowsQueryIsNotConstructed = errors.New(
		"GetAllSwallowsQuery must be created via NewGetAllSwallowsQuery constructor",
	)
)

// GetAllSwallowsQuery retrieves every registered swallow.
type GetAllSwallowsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllSwallowsQuery creates a query to retrieve all swallows.
func NewGetAllSwallowsQuery() GetAllSwallowsQuery {
	return GetAllSwallowsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllSwallowsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllSwallowsQueryIsNotConstructed)
}
