// Package orderrepo implements order persistence: the DTO mapping for the
// order aggregate with its line items, and the GORM repository behind
// ports.OrderRepository.
package orderrepo

import (
	"time"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for orders. Governorate and city
// are plain text snapshots, not references into the location tables. The
// created_by column is an unconstrained reference into the externally managed
// users table.
type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderType         string    `gorm:"not null"`
	CustomerName      string    `gorm:"not null;index"`
	CustomerPhone1    string    `gorm:"not null"`
	CustomerPhone2    string
	CustomerEmail     string
	Governorate       string `gorm:"not null"`
	City              string `gorm:"not null"`
	Street            string `gorm:"not null"`
	Village           string
	IsVillageDelivery bool
	ShippingType      string       `gorm:"not null"`
	PaymentType       string       `gorm:"not null"`
	Branch            string       `gorm:"not null"`
	OrderCost         float64      `gorm:"not null"`
	TotalWeight       float64      `gorm:"not null"`
	Status            string       `gorm:"not null;index"`
	CreatedBy         uuid.UUID    `gorm:"type:uuid;not null;index"`
	Products          []ProductDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time    `gorm:"index"`
	UpdatedAt         time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ProductDTO represents one order line item. The serial primary key keeps
// line items in insertion order.
type ProductDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName string    `gorm:"not null"`
	Quantity    int       `gorm:"not null"`
	Weight      float64   `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "order_products".
func (ProductDTO) TableName() string {
	return "order_products"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	details := aggregate.Details()

	products := make([]ProductDTO, 0, len(aggregate.Products()))
	for _, product := range aggregate.Products() {
		products = append(products, ProductDTO{
			OrderID:     aggregate.ID().Bytes(),
			ProductName: product.ProductName(),
			Quantity:    product.Quantity(),
			Weight:      product.Weight(),
		})
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		OrderType:         details.OrderType,
		CustomerName:      details.CustomerName,
		CustomerPhone1:    details.CustomerPhone1,
		CustomerPhone2:    details.CustomerPhone2,
		CustomerEmail:     details.CustomerEmail,
		Governorate:       details.Governorate,
		City:              details.City,
		Street:            details.Street,
		Village:           details.Village,
		IsVillageDelivery: details.IsVillageDelivery,
		ShippingType:      details.ShippingType,
		PaymentType:       details.PaymentType,
		Branch:            details.Branch,
		OrderCost:         details.OrderCost,
		TotalWeight:       details.TotalWeight,
		Status:            aggregate.Status().String(),
		CreatedBy:         aggregate.CreatedBy().Bytes(),
		Products:          products,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	products := make([]order.Product, 0, len(dto.Products))
	for _, productDTO := range dto.Products {
		product, productErr := order.NewProduct(productDTO.ProductName, productDTO.Quantity, productDTO.Weight)
		if productErr != nil {
			return nil, productErr
		}
		products = append(products, product)
	}

	details := order.Details{
		OrderType:         dto.OrderType,
		CustomerName:      dto.CustomerName,
		CustomerPhone1:    dto.CustomerPhone1,
		CustomerPhone2:    dto.CustomerPhone2,
		CustomerEmail:     dto.CustomerEmail,
		Governorate:       dto.Governorate,
		City:              dto.City,
		Street:            dto.Street,
		Village:           dto.Village,
		IsVillageDelivery: dto.IsVillageDelivery,
		ShippingType:      dto.ShippingType,
		PaymentType:       dto.PaymentType,
		Branch:            dto.Branch,
		OrderCost:         dto.OrderCost,
		TotalWeight:       dto.TotalWeight,
	}

	return order.RestoreOrder(id, details, products, order.Status(dto.Status), createdBy)
}
