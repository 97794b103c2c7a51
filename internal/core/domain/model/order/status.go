package order

import (
	"fmt"

	"shipadmin/internal/pkg/errs"
)

// Status represents the delivery lifecycle state of an order.
//
// The enum is flat: any valid status may be written over any other, including
// a no-op write of the current value. There is deliberately no transition
// graph: the administration workflow treats status as an operator-set label,
// and e.g. Delivered -> Pending is accepted.
//
// Status is string-backed so the stored and transmitted representation is the
// enum value itself.
type Status string

const (
	// Pending is the initial status of every newly created order.
	Pending Status = "Pending"

	// Processing marks an order being prepared for shipment.
	Processing Status = "Processing"

	// Shipped marks an order handed to the carrier.
	Shipped Status = "Shipped"

	// Delivered marks an order received by the customer.
	Delivered Status = "Delivered"

	// Cancelled marks an order withdrawn at any point.
	Cancelled Status = "Cancelled"
)

// getValidStatuses returns the set of statuses accepted by Validate.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Pending:    {},
		Processing: {},
		Shipped:    {},
		Delivered:  {},
		Cancelled:  {},
	}
}

// ParseStatus converts an external string into a Status.
// Returns an error for anything outside the five-value enum.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status is one of the five valid enum values.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the stored representation of the status.
func (s Status) String() string {
	return string(s)
}
