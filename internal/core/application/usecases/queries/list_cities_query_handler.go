package queries

import (
	"context"
	"database/sql"

	"shipadmin/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListCitiesQueryHandler retrieves city rows joined with governorates.
type ListCitiesQueryHandler struct {
	db *gorm.DB
}

// NewListCitiesQueryHandler creates a handler for city listing.
func NewListCitiesQueryHandler(db *gorm.DB) ListCitiesQueryHandler {
	return ListCitiesQueryHandler{db: db}
}

// Handle executes the query, optionally filtered by governorate.
func (h ListCitiesQueryHandler) Handle(
	ctx context.Context,
	query ListCitiesQuery,
) ([]CityResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows *sql.Rows
	var err error

	if filter := query.GovernorateID(); filter != nil {
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT
				c.id,
				c.city_name,
				c.shipping_cost,
				c.is_active,
				g.id,
				g.gov_name,
				g.gov_code
			FROM cities c
			JOIN governorates g ON g.id = c.governorate_id
			WHERE c.governorate_id = ?
			ORDER BY c.city_name
		`, filter.Bytes()).Rows()
	} else {
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT
				c.id,
				c.city_name,
				c.shipping_cost,
				c.is_active,
				g.id,
				g.gov_name,
				g.gov_code
			FROM cities c
			JOIN governorates g ON g.id = c.governorate_id
			ORDER BY g.gov_name, c.city_name
		`).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := make([]CityResponse, 0)
	for rows.Next() {
		var city CityResponse
		var cityID, govID uuid.UUID

		err = rows.Scan(
			&cityID,
			&city.Name,
			&city.ShippingCost,
			&city.IsActive,
			&govID,
			&city.GovernorateName,
			&city.GovernorateCode,
		)
		if err != nil {
			return nil, err
		}

		if city.ID, err = kernel.UUIDFromBytes(cityID[:]); err != nil {
			return nil, err
		}
		if city.GovernorateID, err = kernel.UUIDFromBytes(govID[:]); err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cities, nil
}
