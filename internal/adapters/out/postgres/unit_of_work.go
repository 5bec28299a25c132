// Package postgres provides the GORM-based Unit of Work used by command
// handlers. A unit of work wraps one database transaction; repositories it
// hands out run inside that transaction.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.SwallowRepository().Add(ctx, s); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance is meant for a single goroutine.
package postgres

import (
	"context"

	"airspeed/internal/adapters/out/postgres/swallowrepo"
	"airspeed/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one *gorm.DB.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with no transaction open.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one GORM transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts the transaction. Calling it again while a transaction is
// open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction.
// Returns gorm.ErrInvalidTransaction when none is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction.
// Returns gorm.ErrInvalidTransaction when none is open, which is the case
// after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// SwallowRepository returns a repository bound to the open transaction, or
// to the plain connection when Begin has not been called.
func (uow *GormUnitOfWork) SwallowRepository() ports.SwallowRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return swallowrepo.NewGormSwallowRepository(db)
}

var (
	_ ports.UnitOfWorkFactory = (*GormUnitOfWorkFactory)(nil)
	_ ports.UnitOfWork        = (*GormUnitOfWork)(nil)
)
