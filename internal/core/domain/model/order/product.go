package order

import (
	"errors"
	"fmt"
	"strings"

	"shipadmin/internal/pkg/errs"
	"shipadmin/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product was not created via NewProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is an ordered line item: a product name with quantity and weight.
// Numeric fields follow the presence-not-truthiness rule enforced upstream;
// the value object itself validates ranges (quantity positive, weight
// non-negative).
type Product struct {
	productName string
	quantity    int
	weight      float64

	guard guard.ConstructorGuard
}

// NewProduct creates a validated line item.
func NewProduct(productName string, quantity int, weight float64) (Product, error) {
	product := Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setProductName(productName),
		product.setQuantity(quantity),
		product.setWeight(weight),
	); err != nil {
		return Product{}, err
	}

	return product, nil
}

// Validate ensures the product was created through the constructor.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ProductName returns the line item's product name.
func (p Product) ProductName() string {
	return p.productName
}

// Quantity returns the ordered quantity.
func (p Product) Quantity() int {
	return p.quantity
}

// Weight returns the line item weight.
func (p Product) Weight() float64 {
	return p.weight
}

func (p *Product) setProductName(productName string) error {
	if strings.TrimSpace(productName) == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	p.productName = strings.TrimSpace(productName)
	return nil
}

func (p *Product) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	p.quantity = quantity
	return nil
}

func (p *Product) setWeight(weight float64) error {
	if weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is negative", weight))
	}
	p.weight = weight
	return nil
}
