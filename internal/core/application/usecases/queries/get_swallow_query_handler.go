package queries

import (
	"context"
	"database/sql"
	"errors"

	"airspeed/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetSwallowQueryHandler reads a single swallow from the database.
type GetSwallowQueryHandler struct {
	db *gorm.DB
}

// NewGetSwallowQueryHandler creates a handler for single swallow lookups.
func NewGetSwallowQueryHandler(db *gorm.DB) GetSwallowQueryHandler {
	return GetSwallowQueryHandler{db: db}
}

// Handle returns the flight information of the requested swallow, or an
// errs.ObjectNotFoundError when it does not exist.
func (h GetSwallowQueryHandler) Handle(ctx context.Context, query GetSwallowQuery) (SwallowFlightResponse, error) {
	if err := query.Validate(); err != nil {
		return SwallowFlightResponse{}, err
	}

	var row swallowRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			species,
			cargo_weight
		FROM swallows
		WHERE id = ?
	`, query.SwallowID().Bytes()).Row().Scan(&row.ID, &row.Species, &row.CargoWeight)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SwallowFlightResponse{}, errs.NewObjectNotFoundError("swallow", query.SwallowID().String())
		}
		return SwallowFlightResponse{}, err
	}

	return row.toResponse()
}
