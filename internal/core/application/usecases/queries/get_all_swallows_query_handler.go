package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllSwallowsQueryHandler lists swallows straight from the database.
type GetAllSwallowsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllSwallowsQueryHandler creates a handler for swallow listings.
func NewGetAllSwallowsQueryHandler(db *gorm.DB) GetAllSwallowsQueryHandler {
	return GetAllSwallowsQueryHandler{db: db}
}

// Handle returns all swallows, lightest cargo first, ties broken by id.
// An empty table yields an empty, non-nil slice.
func (h GetAllSwallowsQueryHandler) Handle(
	ctx context.Context,
	query GetAllSwallowsQuery,
) ([]SwallowFlightResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	swallows := make([]SwallowFlightResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			species,
			cargo_weight
		FROM swallows
		ORDER BY cargo_weight, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row swallowRow
		if err = rows.Scan(&row.ID, &row.Species, &row.CargoWeight); err != nil {
			return nil, err
		}

		flight, flightErr := row.toResponse()
		if flightErr != nil {
			return nil, flightErr
		}
		swallows = append(swallows, flight)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return swallows, nil
}
