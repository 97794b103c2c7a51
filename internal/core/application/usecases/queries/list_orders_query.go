package queries

import (
	"errors"
	"time"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/core/domain/model/order"
	"shipadmin/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// AllStatuses is the status filter sentinel meaning "do not filter".
const AllStatuses = "all"

// ListOrdersQuery retrieves orders newest-first, optionally narrowed by
// status and by a case-insensitive substring over the customer's name,
// primary phone, and email.
type ListOrdersQuery struct {
	status string
	search string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list orders. status may be empty or
// the "all" sentinel (both mean unfiltered); any other value must be one of
// the five enum values. search may be empty.
func NewListOrdersQuery(status, search string, caller kernel.Caller) (ListOrdersQuery, error) {
	if err := caller.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if err := caller.Authorize("list orders", kernel.RoleAdmin, kernel.RoleEmployee); err != nil {
		return ListOrdersQuery{}, err
	}

	if status != "" && status != AllStatuses {
		if _, err := order.ParseStatus(status); err != nil {
			return ListOrdersQuery{}, err
		}
	} else {
		status = ""
	}

	return ListOrdersQuery{
		status: status,
		search: search,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter; empty means all statuses.
func (q ListOrdersQuery) Status() string {
	return q.status
}

// Search returns the substring filter; empty means no filtering.
func (q ListOrdersQuery) Search() string {
	return q.search
}

// OrderProductResponse is the read model for one order line item.
type OrderProductResponse struct {
	ProductName string
	Quantity    int
	Weight      float64
}

// OrderResponse is the read model for one order joined with its creator.
// CreatedByName and CreatedByRole are nil when the creating user no longer
// exists in the externally managed users table.
type OrderResponse struct {
	ID                kernel.UUID
	OrderType         string
	CustomerName      string
	CustomerPhone1    string
	CustomerPhone2    string
	CustomerEmail     string
	Governorate       string
	City              string
	Street            string
	Village           string
	IsVillageDelivery bool
	ShippingType      string
	PaymentType       string
	Branch            string
	OrderCost         float64
	TotalWeight       float64
	Status            string
	CreatedBy         kernel.UUID
	CreatedByName     *string
	CreatedByRole     *string
	CreatedAt         time.Time
	Products          []OrderProductResponse
}
