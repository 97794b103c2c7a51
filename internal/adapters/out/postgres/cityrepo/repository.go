package cityrepo

import (
	"context"
	"errors"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/core/domain/model/location"
	"shipadmin/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormCityRepository implements CityRepository using GORM.
type GormCityRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCityRepository creates a new GORM city repository.
func NewGormCityRepository(db *gorm.DB, tracker aggregateTracker) *GormCityRepository {
	return &GormCityRepository{
		db:      db,
		tracker: tracker,
	}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// Add saves a new city. A violation of the composite (city_name,
// governorate_id) index is translated into the handler's conflict error.
func (r *GormCityRepository) Add(ctx context.Context, aggregate *location.City) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("cityName", aggregate.Name(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing city, including re-parenting.
func (r *GormCityRepository) Update(ctx context.Context, aggregate *location.City) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CityDTO{}).
		Where("id = ?", dto.ID).
		Select("CityName", "GovernorateID", "ShippingCost", "IsActive").
		Updates(&dto)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return errs.NewObjectAlreadyExistsErrorWithCause("cityName", aggregate.Name(), result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cityId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a city by ID.
func (r *GormCityRepository) Get(ctx context.Context, id kernel.UUID) (*location.City, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CityDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cityId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByNameAndGovernorate reports whether another city already owns the
// (name, governorate) pair.
func (r *GormCityRepository) ExistsByNameAndGovernorate(
	ctx context.Context, name string, governorateID kernel.UUID, excludeID *kernel.UUID,
) (bool, error) {
	query := r.db.WithContext(ctx).Model(&CityDTO{}).
		Where("city_name = ? AND governorate_id = ?", name, governorateID.Bytes())
	if excludeID != nil {
		query = query.Where("id <> ?", excludeID.Bytes())
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// CountByGovernorate counts the cities referencing a governorate, active or not.
func (r *GormCityRepository) CountByGovernorate(ctx context.Context, governorateID kernel.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&CityDTO{}).
		Where("governorate_id = ?", governorateID.Bytes()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Delete removes a city permanently.
func (r *GormCityRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CityDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cityId", id.String())
	}

	return nil
}
