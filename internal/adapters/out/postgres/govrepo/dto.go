// Package govrepo implements governorate persistence: the DTO mapping and the
// GORM repository behind ports.GovernorateRepository.
package govrepo

import (
	"time"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/core/domain/model/location"

	"github.com/google/uuid"
)

// GovernorateDTO represents the database structure for governorates.
// gov_name and gov_code each carry a unique index; the index is the backstop
// for the handler-level uniqueness pre-check.
type GovernorateDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	GovName   string    `gorm:"uniqueIndex;not null"`
	GovCode   string    `gorm:"uniqueIndex;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming to use "governorates".
func (GovernorateDTO) TableName() string {
	return "governorates"
}

func fromDomain(aggregate *location.Governorate) GovernorateDTO {
	return GovernorateDTO{
		ID:       aggregate.ID().Bytes(),
		GovName:  aggregate.Name(),
		GovCode:  aggregate.Code(),
		IsActive: aggregate.IsActive(),
	}
}

func toDomain(dto GovernorateDTO) (*location.Governorate, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return location.RestoreGovernorate(id, dto.GovName, dto.GovCode, dto.IsActive)
}
