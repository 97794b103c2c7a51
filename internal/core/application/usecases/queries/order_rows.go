package queries

import (
	"context"
	"database/sql"
	"strings"

	"shipadmin/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// likeEscaper neutralizes LIKE metacharacters so a search term is always a
// literal substring match. Without it a term like "100%" matches every row.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLikeTerm(term string) string {
	return likeEscaper.Replace(term)
}

// orderSelectColumns is the shared projection for order read models: every
// order column plus the creator's display name and role from the externally
// managed users table. The join is LEFT so orders survive their creator's
// removal.
const orderSelectColumns = `
	o.id,
	o.order_type,
	o.customer_name,
	o.customer_phone1,
	o.customer_phone2,
	o.customer_email,
	o.governorate,
	o.city,
	o.street,
	o.village,
	o.is_village_delivery,
	o.shipping_type,
	o.payment_type,
	o.branch,
	o.order_cost,
	o.total_weight,
	o.status,
	o.created_by,
	u.full_name,
	u.user_type,
	o.created_at`

func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var resp OrderResponse
		var id, createdBy uuid.UUID
		var creatorName, creatorRole sql.NullString

		err := rows.Scan(
			&id,
			&resp.OrderType,
			&resp.CustomerName,
			&resp.CustomerPhone1,
			&resp.CustomerPhone2,
			&resp.CustomerEmail,
			&resp.Governorate,
			&resp.City,
			&resp.Street,
			&resp.Village,
			&resp.IsVillageDelivery,
			&resp.ShippingType,
			&resp.PaymentType,
			&resp.Branch,
			&resp.OrderCost,
			&resp.TotalWeight,
			&resp.Status,
			&createdBy,
			&creatorName,
			&creatorRole,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CreatedBy, err = kernel.UUIDFromBytes(createdBy[:]); err != nil {
			return nil, err
		}
		if creatorName.Valid {
			resp.CreatedByName = &creatorName.String
		}
		if creatorRole.Valid {
			resp.CreatedByRole = &creatorRole.String
		}

		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachProducts loads line items for the given orders in one query and
// attaches them in place, preserving the line-item insertion order.
func attachProducts(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	index := make(map[kernel.UUID]*OrderResponse, len(orders))
	ids := make([]uuid.UUID, 0, len(orders))
	for i := range orders {
		index[orders[i].ID] = &orders[i]
		ids = append(ids, orders[i].ID.Bytes())
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_name,
			quantity,
			weight
		FROM order_products
		WHERE order_id = ANY(?)
		ORDER BY id
	`, pq.Array(ids)).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uuid.UUID
		var product OrderProductResponse

		if err = rows.Scan(&orderID, &product.ProductName, &product.Quantity, &product.Weight); err != nil {
			return err
		}

		id, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return idErr
		}
		if resp, ok := index[id]; ok {
			resp.Products = append(resp.Products, product)
		}
	}

	return rows.Err()
}
