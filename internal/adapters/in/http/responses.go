package http

import (
	"errors"
	"net/http"
	"time"

	"shipadmin/internal/core/application/usecases/commands"
	"shipadmin/internal/core/application/usecases/queries"
	"shipadmin/internal/core/domain/model/location"
	"shipadmin/internal/core/domain/model/order"
	"shipadmin/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// successResponse is the envelope for successful requests. Results is the
// element count for list endpoints; Data carries the payload.
type successResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Results *int   `json:"results,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func success(data any) successResponse {
	return successResponse{Status: "success", Data: data}
}

func successList(count int, data any) successResponse {
	return successResponse{Status: "success", Results: &count, Data: data}
}

func successMessage(message string) successResponse {
	return successResponse{Status: "success", Message: message}
}

// writeError maps application errors onto HTTP statuses. Internal failures
// are logged and, unless debug detail is enabled, hidden behind a generic
// message so driver errors never leak to clients.
func (s *Server) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrForbidden):
		return c.JSON(http.StatusForbidden, errorResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrObjectHasDependents):
		return c.JSON(http.StatusConflict, errorResponse{Message: err.Error()})
	}

	s.logger.Error("request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err,
	)

	message := "internal server error"
	if s.debugErrors {
		message = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, errorResponse{Message: message})
}

type governorateJSON struct {
	ID       string `json:"id"`
	GovName  string `json:"govName"`
	GovCode  string `json:"govCode"`
	IsActive bool   `json:"isActive"`
}

type cityJSON struct {
	ID           string          `json:"id"`
	CityName     string          `json:"cityName"`
	ShippingCost float64         `json:"shippingCost"`
	IsActive     bool            `json:"isActive"`
	Governorate  governorateJSON `json:"governorate"`
}

type orderProductJSON struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Weight      float64 `json:"weight"`
}

type orderJSON struct {
	ID                string             `json:"id"`
	OrderType         string             `json:"orderType"`
	CustomerName      string             `json:"customerName"`
	CustomerPhone1    string             `json:"customerPhone1"`
	CustomerPhone2    string             `json:"customerPhone2,omitempty"`
	CustomerEmail     string             `json:"customerEmail,omitempty"`
	Governorate       string             `json:"governorate"`
	City              string             `json:"city"`
	Street            string             `json:"street"`
	Village           string             `json:"village,omitempty"`
	IsVillageDelivery bool               `json:"isVillageDelivery"`
	ShippingType      string             `json:"shippingType"`
	PaymentType       string             `json:"paymentType"`
	Branch            string             `json:"branch"`
	OrderCost         float64            `json:"orderCost"`
	TotalWeight       float64            `json:"totalWeight"`
	Status            string             `json:"status"`
	CreatedBy         string             `json:"createdBy"`
	CreatedByName     *string            `json:"createdByName,omitempty"`
	CreatedByRole     *string            `json:"createdByRole,omitempty"`
	CreatedAt         *time.Time         `json:"createdAt,omitempty"`
	Products          []orderProductJSON `json:"products"`
}

func toGovernorateJSON(governorate *location.Governorate) governorateJSON {
	return governorateJSON{
		ID:       governorate.ID().String(),
		GovName:  governorate.Name(),
		GovCode:  governorate.Code(),
		IsActive: governorate.IsActive(),
	}
}

func toGovernorateResponseJSON(response queries.GovernorateResponse) governorateJSON {
	return governorateJSON{
		ID:       response.ID.String(),
		GovName:  response.Name,
		GovCode:  response.Code,
		IsActive: response.IsActive,
	}
}

func toCityJSON(result commands.CityResult) cityJSON {
	return cityJSON{
		ID:           result.City.ID().String(),
		CityName:     result.City.Name(),
		ShippingCost: result.City.ShippingCost(),
		IsActive:     result.City.IsActive(),
		Governorate:  toGovernorateJSON(result.Governorate),
	}
}

func toCityResponseJSON(response queries.CityResponse) cityJSON {
	return cityJSON{
		ID:           response.ID.String(),
		CityName:     response.Name,
		ShippingCost: response.ShippingCost,
		IsActive:     response.IsActive,
		Governorate: governorateJSON{
			ID:      response.GovernorateID.String(),
			GovName: response.GovernorateName,
			GovCode: response.GovernorateCode,
		},
	}
}

// toOrderJSON serializes a domain aggregate, used for write responses.
// CreatedAt and the creator join columns only exist in the read model.
func toOrderJSON(aggregate *order.Order) orderJSON {
	details := aggregate.Details()
	products := make([]orderProductJSON, 0, len(aggregate.Products()))
	for _, product := range aggregate.Products() {
		products = append(products, orderProductJSON{
			ProductName: product.ProductName(),
			Quantity:    product.Quantity(),
			Weight:      product.Weight(),
		})
	}

	return orderJSON{
		ID:                aggregate.ID().String(),
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
		Status:            string(aggregate.Status()),
		CreatedBy:         aggregate.CreatedBy().String(),
		Products:          products,
	}
}

func toOrderResponseJSON(response queries.OrderResponse) orderJSON {
	products := make([]orderProductJSON, 0, len(response.Products))
	for _, product := range response.Products {
		products = append(products, orderProductJSON{
			ProductName: product.ProductName,
			Quantity:    product.Quantity,
			Weight:      product.Weight,
		})
	}

	createdAt := response.CreatedAt
	return orderJSON{
		ID:                response.ID.String(),
		OrderType:         response.OrderType,
		CustomerName:      response.CustomerName,
		CustomerPhone1:    response.CustomerPhone1,
		CustomerPhone2:    response.CustomerPhone2,
		CustomerEmail:     response.CustomerEmail,
		Governorate:       response.Governorate,
		City:              response.City,
		Street:            response.Street,
		Village:           response.Village,
		IsVillageDelivery: response.IsVillageDelivery,
		ShippingType:      response.ShippingType,
		PaymentType:       response.PaymentType,
		Branch:            response.Branch,
		OrderCost:         response.OrderCost,
		TotalWeight:       response.TotalWeight,
		Status:            response.Status,
		CreatedBy:         response.CreatedBy.String(),
		CreatedByName:     response.CreatedByName,
		CreatedByRole:     response.CreatedByRole,
		CreatedAt:         &createdAt,
		Products:          products,
	}
}
