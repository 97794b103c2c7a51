package order

import (
	"errors"
	"fmt"
	"strings"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Details carries the scalar attributes of an order as captured at creation
// time. Governorate and city are free-text snapshots of the location names,
// not live references: later edits to the location registry never change
// historical orders.
//
// Optional fields (CustomerPhone2, CustomerEmail, Village, IsVillageDelivery)
// may be empty/false. Presence checks for the numeric fields happen at the
// request boundary; here zero is a valid cost and a valid weight.
type Details struct {
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
}

// Order is the aggregate root for a shipment request: customer, destination
// snapshot, line items, and a lifecycle status.
//
// Invariants:
//   - status is always one of the five valid enum values; Pending at creation
//   - at least one line item is present
//   - orderCost and totalWeight are non-negative (zero is valid)
//   - createdBy is a weak reference to an externally managed user
type Order struct {
	id        kernel.UUID
	details   Details
	products  []Product
	status    Status
	createdBy kernel.UUID

	isConstructed bool
}

// NewOrder creates an order in Pending status.
func NewOrder(id kernel.UUID, details Details, products []Product, createdBy kernel.UUID) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setDetails(details),
		order.setProducts(products),
		order.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence, including its status.
func RestoreOrder(
	id kernel.UUID, details Details, products []Product, status Status, createdBy kernel.UUID,
) (*Order, error) {
	order, err := NewOrder(id, details, products, createdBy)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	order.status = status

	return order, nil
}

// Validate ensures the instance was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Details returns the order's scalar attributes.
func (o *Order) Details() Details {
	return o.details
}

// Products returns a copy of the ordered line items.
func (o *Order) Products() []Product {
	products := make([]Product, len(o.products))
	copy(products, o.products)
	return products
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedBy returns the identifier of the creating user.
func (o *Order) CreatedBy() kernel.UUID {
	return o.createdBy
}

// SetStatus overwrites the status with any valid enum value.
// Writes of the current value are accepted and are a no-op. An invalid value
// is rejected and leaves the order unmodified.
func (o *Order) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDetails(details Details) error {
	required := []struct {
		name  string
		value string
	}{
		{"orderType", details.OrderType},
		{"customerName", details.CustomerName},
		{"customerPhone1", details.CustomerPhone1},
		{"governorate", details.Governorate},
		{"city", details.City},
		{"street", details.Street},
		{"shippingType", details.ShippingType},
		{"paymentType", details.PaymentType},
		{"branch", details.Branch},
	}

	var errList []error
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			errList = append(errList, errs.NewValueIsRequiredError(field.name))
		}
	}

	if details.OrderCost < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("orderCost",
			fmt.Errorf("%v is negative", details.OrderCost)))
	}
	if details.TotalWeight < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("totalWeight",
			fmt.Errorf("%v is negative", details.TotalWeight)))
	}

	if err := errors.Join(errList...); err != nil {
		return err
	}

	o.details = details
	return nil
}

func (o *Order) setProducts(products []Product) error {
	if len(products) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("products",
			errors.New("order must have at least one product"))
	}

	for i, product := range products {
		if err := product.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("products[%d]", i), err)
		}
	}

	o.products = make([]Product, len(products))
	copy(o.products, products)
	return nil
}

func (o *Order) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("createdBy", err)
	}
	o.createdBy = createdBy
	return nil
}
