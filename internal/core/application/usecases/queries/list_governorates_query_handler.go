package queries

import (
	"context"

	"shipadmin/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListGovernoratesQueryHandler retrieves governorate rows from the database.
type ListGovernoratesQueryHandler struct {
	db *gorm.DB
}

// NewListGovernoratesQueryHandler creates a handler for governorate listing.
func NewListGovernoratesQueryHandler(db *gorm.DB) ListGovernoratesQueryHandler {
	return ListGovernoratesQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by governorate name.
func (h ListGovernoratesQueryHandler) Handle(
	ctx context.Context,
	query ListGovernoratesQuery,
) ([]GovernorateResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	governorates := make([]GovernorateResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			gov_name,
			gov_code,
			is_active
		FROM governorates
		ORDER BY gov_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var governorate GovernorateResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&governorate.Name,
			&governorate.Code,
			&governorate.IsActive,
		)
		if err != nil {
			return nil, err
		}

		governorateID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		governorate.ID = governorateID
		governorates = append(governorates, governorate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return governorates, nil
}
