package swallowrepo

import (
	"context"
	"errors"

	"airspeed/internal/core/domain/model/kernel"
	"airspeed/internal/core/domain/model/swallow"
	"airspeed/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSwallowRepository implements ports.SwallowRepository using GORM.
// It runs on whatever *gorm.DB it is given, usually the transaction of a
// unit of work.
type GormSwallowRepository struct {
	db *gorm.DB
}

// NewGormSwallowRepository creates a new GORM swallow repository.
func NewGormSwallowRepository(db *gorm.DB) *GormSwallowRepository {
	return &GormSwallowRepository{db: db}
}

// Add saves a new swallow to the database.
func (r *GormSwallowRepository) Add(ctx context.Context, aggregate *swallow.Swallow) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves the cargo of an existing swallow. Species is immutable and
// is not written.
func (r *GormSwallowRepository) Update(ctx context.Context, aggregate *swallow.Swallow) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&SwallowDTO{}).
		Where("id = ?", dto.ID).
		Update("cargo_weight", dto.CargoWeight)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("swallow", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	return nil
}

// Get retrieves a swallow by ID.
func (r *GormSwallowRepository) Get(ctx context.Context, id kernel.UUID) (*swallow.Swallow, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SwallowDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("swallow", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
