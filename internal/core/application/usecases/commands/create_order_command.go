package commands

import (
	"errors"
	"fmt"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/core/domain/model/order"
	"shipadmin/internal/pkg/errs"
	"shipadmin/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ProductInput carries one requested line item. Quantity and Weight are
// pointers so a missing field is distinguishable from an explicit zero.
type ProductInput struct {
	ProductName string
	Quantity    *int
	Weight      *float64
}

// CreateOrderInput carries the raw order payload. OrderCost and TotalWeight
// follow the same presence rule as ProductInput: nil means missing, zero is
// a valid value.
type CreateOrderInput struct {
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
	OrderCost         *float64
	TotalWeight       *float64
	Products          []ProductInput
}

// CreateOrderCommand represents an employee or merchant request to register
// an order. Governorate and city arrive as free text and are stored as-is;
// the location registry is not consulted.
type CreateOrderCommand struct {
	details  order.Details
	products []order.Product
	caller   kernel.Caller

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register an order.
func NewCreateOrderCommand(input CreateOrderInput, caller kernel.Caller) (CreateOrderCommand, error) {
	if err := caller.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := caller.Authorize("create order", kernel.RoleEmployee, kernel.RoleMerchant); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd := CreateOrderCommand{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDetails(input),
		cmd.setProducts(input.Products),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Details returns the validated order attributes.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

// Products returns the validated line items.
func (c CreateOrderCommand) Products() []order.Product {
	return c.products
}

// Caller returns the resolved caller identity.
func (c CreateOrderCommand) Caller() kernel.Caller {
	return c.caller
}

func (c *CreateOrderCommand) setDetails(input CreateOrderInput) error {
	var errList []error
	if input.OrderCost == nil {
		errList = append(errList, errs.NewValueIsRequiredError("orderCost"))
	}
	if input.TotalWeight == nil {
		errList = append(errList, errs.NewValueIsRequiredError("totalWeight"))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.details = order.Details{
		OrderType:         input.OrderType,
		CustomerName:      input.CustomerName,
		CustomerPhone1:    input.CustomerPhone1,
		CustomerPhone2:    input.CustomerPhone2,
		CustomerEmail:     input.CustomerEmail,
		Governorate:       input.Governorate,
		City:              input.City,
		Street:            input.Street,
		Village:           input.Village,
		IsVillageDelivery: input.IsVillageDelivery,
		ShippingType:      input.ShippingType,
		PaymentType:       input.PaymentType,
		Branch:            input.Branch,
		OrderCost:         *input.OrderCost,
		TotalWeight:       *input.TotalWeight,
	}
	return nil
}

func (c *CreateOrderCommand) setProducts(inputs []ProductInput) error {
	if len(inputs) == 0 {
		return errs.NewValueIsRequiredError("products")
	}

	products := make([]order.Product, 0, len(inputs))
	for i, input := range inputs {
		if input.Quantity == nil {
			return errs.NewValueIsRequiredError(fmt.Sprintf("products[%d].quantity", i))
		}
		if input.Weight == nil {
			return errs.NewValueIsRequiredError(fmt.Sprintf("products[%d].weight", i))
		}

		product, err := order.NewProduct(input.ProductName, *input.Quantity, *input.Weight)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("products[%d]", i), err)
		}
		products = append(products, product)
	}

	c.products = products
	return nil
}
