// Package cityrepo implements city persistence: the DTO mapping and the GORM
// repository behind ports.CityRepository.
package cityrepo

import (
	"time"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/core/domain/model/location"

	"github.com/google/uuid"
)

// CityDTO represents the database structure for cities. The composite unique
// index on (city_name, governorate_id) allows the same city name to repeat
// across governorates while blocking duplicates within one.
//
// governorate_id is a reference, not a constrained foreign key: deleting a
// governorate is guarded at the handler level and nothing cascades.
type CityDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CityName      string    `gorm:"not null;uniqueIndex:idx_city_name_governorate"`
	GovernorateID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_city_name_governorate"`
	ShippingCost  float64   `gorm:"not null"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides GORM's default naming to use "cities".
func (CityDTO) TableName() string {
	return "cities"
}

func fromDomain(aggregate *location.City) CityDTO {
	return CityDTO{
		ID:            aggregate.ID().Bytes(),
		CityName:      aggregate.Name(),
		GovernorateID: aggregate.GovernorateID().Bytes(),
		ShippingCost:  aggregate.ShippingCost(),
		IsActive:      aggregate.IsActive(),
	}
}

func toDomain(dto CityDTO) (*location.City, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	governorateID, err := kernel.UUIDFromBytes(dto.GovernorateID[:])
	if err != nil {
		return nil, err
	}

	return location.RestoreCity(id, dto.CityName, governorateID, dto.ShippingCost, dto.IsActive)
}
