package swallow

import (
	"fmt"
	"strings"

	"airspeed/internal/pkg/errs"
)

// Species is the kind of swallow. The persisted value is the integer; the
// textual form is the lower-case name returned by String.
type Species int

const (
	// UnknownSpecies is the zero value and never valid.
	UnknownSpecies Species = iota

	// African swallows stay home all year.
	African

	// European swallows are migratory.
	European
)

func getSpeciesStrings() map[Species]string {
	return map[Species]string{
		UnknownSpecies: "unknown",
		African:        "african",
		European:       "european",
	}
}

func getValidSpecies() []Species {
	return []Species{African, European}
}

// ParseSpecies maps a species name to its Species, ignoring case, so
// "European", "EUROPEAN" and "european" are the same bird. Matching uses
// simple case folding: letters whose full lower-case form happens to
// spell a species name, such as U+0130, do not match.
// Surrounding whitespace is not trimmed.
func ParseSpecies(name string) (Species, error) {
	for _, species := range getValidSpecies() {
		if strings.EqualFold(name, species.String()) {
			return species, nil
		}
	}

	return UnknownSpecies, errs.NewValueIsInvalidErrorWithCause(
		"species",
		fmt.Errorf("%q is neither african nor european", name),
	)
}

// Validate rejects UnknownSpecies and any out of range value.
func (s Species) Validate() error {
	if s != African && s != European {
		return errs.NewValueIsInvalidErrorWithCause("species", fmt.Errorf("%d is not a valid species", s))
	}
	return nil
}

// String implements fmt.Stringer. Invalid values print as "unknown".
func (s Species) String() string {
	if str, ok := getSpeciesStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsMigratory reports whether birds of this species migrate.
func (s Species) IsMigratory() bool {
	return s == European
}
