// Package errs provides the structured error types shared by the airspeed
// service. Every type pairs a sentinel (for errors.Is) with a struct carrying
// the offending parameter and an optional cause:
//   - ValueIsInvalidError: a value breaks a domain rule (the InvalidArgument kind)
//   - ValueIsRequiredError: a mandatory value is missing or zero
//   - ObjectNotFoundError: a lookup by identifier found nothing
//
// Constructors come in pairs, with and without a cause, and every type
// implements Unwrap so callers can branch on the sentinel.
package errs
