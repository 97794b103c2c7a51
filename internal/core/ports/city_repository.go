package ports

import (
	"context"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/core/domain/model/location"
)

// CityRepository defines the persistence contract for cities.
//
// The compound (name, governorate) uniqueness follows the same two-line
// defense as governorates: handler pre-check plus translation of the
// database unique-index violation into an ObjectAlreadyExistsError.
type CityRepository interface {
	// Add persists a new city.
	Add(ctx context.Context, aggregate *location.City) error

	// Update persists changes to an existing city, including re-parenting.
	Update(ctx context.Context, aggregate *location.City) error

	// Get retrieves a city by id.
	// Returns ObjectNotFoundError when the id does not exist.
	Get(ctx context.Context, id kernel.UUID) (*location.City, error)

	// ExistsByNameAndGovernorate reports whether any city other than excludeID
	// owns the (name, governorateID) pair. Pass nil excludeID for create checks.
	ExistsByNameAndGovernorate(
		ctx context.Context, name string, governorateID kernel.UUID, excludeID *kernel.UUID,
	) (bool, error)

	// CountByGovernorate returns the number of cities referencing the
	// governorate, regardless of their active flag. Used as the
	// referential-integrity guard for governorate deletes.
	CountByGovernorate(ctx context.Context, governorateID kernel.UUID) (int64, error)

	// Delete removes a city permanently.
	// Returns ObjectNotFoundError when the id does not exist.
	Delete(ctx context.Context, id kernel.UUID) error
}
