// Package commands contains the write side of the application: operations
// that change swallows. Every command follows the same shape: a validated
// command value, a handler that runs it inside one unit of work, and an
// integration event published once the transaction committed.
package commands

import (
	"context"

	"airspeed/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SwallowRepoFactory provides access to the swallow repository within a transaction.
	SwallowRepoFactory interface {
		SwallowRepository() ports.SwallowRepository
	}

	// SwallowUoW manages transactions for swallow operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.SwallowRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	SwallowUoW interface {
		TxManager
		SwallowRepoFactory
	}

	// SwallowUoWFactory creates new swallow unit of work instances.
	SwallowUoWFactory interface {
		Create() SwallowUoW
	}
)
