// Package guard provides ConstructorGuard, a marker embedded in entities,
// commands and queries so that zero-value instances can be told apart from
// ones built by their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is only set by NewConstructorGuard. Its zero value fails Validate.
//
//	type Swallow struct {
//	    species Species
//	    guard   guard.ConstructorGuard
//	}
//
//	func (s *Swallow) Validate() error {
//	    return s.guard.Validate(ErrSwallowIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
