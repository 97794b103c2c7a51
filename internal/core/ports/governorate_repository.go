package ports

import (
	"context"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/core/domain/model/location"
)

// GovernorateRepository defines the persistence contract for governorates.
//
// Uniqueness of (name) and (code) is enforced twice: handlers pre-check with
// ExistsByNameOrCode, and the implementation must translate a database
// unique-index violation on Add/Update into an ObjectAlreadyExistsError so a
// check/write race still surfaces as a conflict.
type GovernorateRepository interface {
	// Add persists a new governorate.
	Add(ctx context.Context, aggregate *location.Governorate) error

	// Update persists changes to an existing governorate.
	Update(ctx context.Context, aggregate *location.Governorate) error

	// Get retrieves a governorate by id.
	// Returns ObjectNotFoundError when the id does not exist.
	Get(ctx context.Context, id kernel.UUID) (*location.Governorate, error)

	// ExistsByNameOrCode reports whether any governorate other than excludeID
	// owns the given name OR code. Pass nil excludeID for create checks.
	ExistsByNameOrCode(ctx context.Context, name, code string, excludeID *kernel.UUID) (bool, error)

	// Delete removes a governorate permanently.
	// Returns ObjectNotFoundError when the id does not exist. Dependent-city
	// protection is the caller's responsibility.
	Delete(ctx context.Context, id kernel.UUID) error
}
