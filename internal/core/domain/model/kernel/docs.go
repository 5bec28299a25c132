// Package kernel holds the shared domain primitives of the airspeed service.
// Today that is UUID, the identity value object used by every aggregate.
// Kernel types are immutable and safe to share between goroutines.
package kernel
