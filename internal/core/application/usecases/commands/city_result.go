package commands

import "shipadmin/internal/core/domain/model/location"

// CityResult pairs a city with its owning governorate. City mutations return
// it so callers can render the hierarchy without a second lookup.
type CityResult struct {
	City        *location.City
	Governorate *location.Governorate
}
