package http

import (
	"github.com/google/uuid"
)

// NewSwallow is the body of POST /api/v1/swallows.
type NewSwallow struct {
	Species     string   `json:"species"`
	CargoWeight *float64 `json:"cargoWeight,omitempty"`
}

// CargoLoad is the body of PUT /api/v1/swallows/{id}/cargo.
type CargoLoad struct {
	CargoWeight *float64 `json:"cargoWeight"`
}

// SwallowCreated is returned after a successful registration.
type SwallowCreated struct {
	ID uuid.UUID `json:"id"`
}

// Swallow is the flight information of one swallow.
type Swallow struct {
	ID          uuid.UUID `json:"id"`
	Species     string    `json:"species"`
	CargoWeight float64   `json:"cargoWeight"`
	Speed       float64   `json:"speed"`
	Migratory   bool      `json:"migratory"`
	TurningBack bool      `json:"turningBack"`
}

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
