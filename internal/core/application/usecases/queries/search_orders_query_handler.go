package queries

import (
	"context"

	"gorm.io/gorm"
)

// SearchOrdersQueryHandler retrieves orders matching a search term.
type SearchOrdersQueryHandler struct {
	db *gorm.DB
}

// NewSearchOrdersQueryHandler creates a handler for order search.
func NewSearchOrdersQueryHandler(db *gorm.DB) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{db: db}
}

// Handle executes the search. No explicit ordering is applied.
func (h SearchOrdersQueryHandler) Handle(
	ctx context.Context,
	query SearchOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	term := escapeLikeTerm(query.Search())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSelectColumns+`
		FROM orders o
		LEFT JOIN users u ON u.id = o.created_by
		WHERE o.customer_name ILIKE '%' || ? || '%'
			OR o.customer_phone1 ILIKE '%' || ? || '%'
			OR o.customer_email ILIKE '%' || ? || '%'
	`, term, term, term).Rows()
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
