// Package queries contains read operations backed by direct SQL for optimal
// performance in the CQRS split. Read models are plain structs; domain
// aggregates are not reconstructed on the read path.
package queries

import (
	"errors"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/pkg/guard"
)

var ErrListGovernoratesQueryIsNotConstructed = errors.New(
	"ListGovernoratesQuery must be created via NewListGovernoratesQuery constructor",
)

// ListGovernoratesQuery retrieves every governorate, active or not, sorted
// by name. Available to admins and employees.
type ListGovernoratesQuery struct {
	guard guard.ConstructorGuard
}

// NewListGovernoratesQuery creates a query to list governorates.
func NewListGovernoratesQuery(caller kernel.Caller) (ListGovernoratesQuery, error) {
	if err := caller.Validate(); err != nil {
		return ListGovernoratesQuery{}, err
	}
	if err := caller.Authorize("list governorates", kernel.RoleAdmin, kernel.RoleEmployee); err != nil {
		return ListGovernoratesQuery{}, err
	}

	return ListGovernoratesQuery{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListGovernoratesQuery) Validate() error {
	return q.guard.Validate(ErrListGovernoratesQueryIsNotConstructed)
}

// GovernorateResponse is the read model for one governorate row.
type GovernorateResponse struct {
	ID       kernel.UUID
	Name     string
	Code     string
	IsActive bool
}
