package govrepo

import (
	"context"
	"errors"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/core/domain/model/location"
	"shipadmin/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormGovernorateRepository implements GovernorateRepository using GORM.
type GormGovernorateRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormGovernorateRepository creates a new GORM governorate repository.
func NewGormGovernorateRepository(db *gorm.DB, tracker aggregateTracker) *GormGovernorateRepository {
	return &GormGovernorateRepository{
		db:      db,
		tracker: tracker,
	}
}

// isUniqueViolation reports whether err is a unique-index violation, either
// GORM's translated error or the raw SQLSTATE 23505 from the pq driver.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// Add saves a new governorate. A unique-index violation on name or code is
// translated into the same conflict the handler pre-check produces.
func (r *GormGovernorateRepository) Add(ctx context.Context, aggregate *location.Governorate) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("govName or govCode", aggregate.Name(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing governorate.
func (r *GormGovernorateRepository) Update(ctx context.Context, aggregate *location.Governorate) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&GovernorateDTO{}).
		Where("id = ?", dto.ID).
		Select("GovName", "GovCode", "IsActive").
		Updates(&dto)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return errs.NewObjectAlreadyExistsErrorWithCause("govName or govCode", aggregate.Name(), result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("governorateId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a governorate by ID.
func (r *GormGovernorateRepository) Get(ctx context.Context, id kernel.UUID) (*location.Governorate, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto GovernorateDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("governorateId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByNameOrCode reports whether another governorate already owns the
// name or the code.
func (r *GormGovernorateRepository) ExistsByNameOrCode(
	ctx context.Context, name, code string, excludeID *kernel.UUID,
) (bool, error) {
	query := r.db.WithContext(ctx).Model(&GovernorateDTO{}).
		Where("gov_name = ? OR gov_code = ?", name, code)
	if excludeID != nil {
		query = query.Where("id <> ?", excludeID.Bytes())
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes a governorate permanently.
func (r *GormGovernorateRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&GovernorateDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("governorateId", id.String())
	}

	return nil
}
