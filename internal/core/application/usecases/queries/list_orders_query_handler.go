package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves order read models from the database.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by creation time, newest
// first, with line items attached.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + orderSelectColumns + `
		FROM orders o
		LEFT JOIN users u ON u.id = o.created_by
		WHERE 1=1`
	args := make([]any, 0, 2)

	if status := query.Status(); status != "" {
		sql += ` AND o.status = ?`
		args = append(args, status)
	}
	if search := query.Search(); search != "" {
		term := escapeLikeTerm(search)
		sql += ` AND (o.customer_name ILIKE '%' || ? || '%'
			OR o.customer_phone1 ILIKE '%' || ? || '%'
			OR o.customer_email ILIKE '%' || ? || '%')`
		args = append(args, term, term, term)
	}
	sql += `
		ORDER BY o.created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrderRows(rows)
	if err != nil {
		return nil, err
	}

	if err = attachProducts(ctx, h.db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}
