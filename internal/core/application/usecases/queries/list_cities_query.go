package queries

import (
	"errors"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/pkg/guard"
)

var ErrListCitiesQueryIsNotConstructed = errors.New(
	"ListCitiesQuery must be created via NewListCitiesQuery constructor",
)

// ListCitiesQuery retrieves cities joined with their governorate's name and
// code. With no filter it returns every city sorted by governorate name then
// city name; with a governorate filter it returns that governorate's cities
// sorted by city name.
type ListCitiesQuery struct {
	governorateID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListCitiesQuery creates a query to list cities. governorateID is
// optional; pass nil for the unfiltered listing.
func NewListCitiesQuery(governorateID *kernel.UUID, caller kernel.Caller) (ListCitiesQuery, error) {
	if err := caller.Validate(); err != nil {
		return ListCitiesQuery{}, err
	}
	if err := caller.Authorize("list cities", kernel.RoleAdmin, kernel.RoleEmployee); err != nil {
		return ListCitiesQuery{}, err
	}

	if governorateID != nil {
		if err := governorateID.Validate(); err != nil {
			return ListCitiesQuery{}, err
		}
	}

	return ListCitiesQuery{
		governorateID: governorateID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCitiesQuery) Validate() error {
	return q.guard.Validate(ErrListCitiesQueryIsNotConstructed)
}

// GovernorateID returns the optional governorate filter.
func (q ListCitiesQuery) GovernorateID() *kernel.UUID {
	return q.governorateID
}

// CityResponse is the read model for one city row joined with its governorate.
type CityResponse struct {
	ID              kernel.UUID
	Name            string
	ShippingCost    float64
	IsActive        bool
	GovernorateID   kernel.UUID
	GovernorateName string
	GovernorateCode string
}
