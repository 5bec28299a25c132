// Package swallow implements the Swallow aggregate: a bird of a given species
// carrying a cargo, whose airspeed drops as the cargo gets heavier.
//
// The package includes:
//   - Species: the african/european enumeration, parsed case-insensitively
//   - Swallow: the aggregate holding species and cargo weight
//
// Business rules:
//   - Species is fixed at construction
//   - Cargo weight is never negative; a rejected update leaves it unchanged
//   - Airspeed is UnladenSpeed / (1 + cargo weight), negated once the cargo
//     reaches OverloadThreshold (the swallow turns back)
//   - Only european swallows migrate
//
// Every validation failure wraps errs.ErrValueIsInvalid.
package swallow
