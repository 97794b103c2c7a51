package commands

import (
	"context"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/core/domain/model/location"
	"shipadmin/internal/pkg/errs"
)

// CreateCityCommandHandler handles city creation.
//
// The owning governorate must exist; its active flag is not consulted.
// The (name, governorate) pair is checked for uniqueness here and backstopped
// by the composite unique index.
type CreateCityCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewCreateCityCommandHandler creates a handler for city creation.
func NewCreateCityCommandHandler(uowFactory LocationUoWFactory) CreateCityCommandHandler {
	return CreateCityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the city and returns it with its governorate.
func (h *CreateCityCommandHandler) Handle(ctx context.Context, cmd CreateCityCommand) (CityResult, error) {
	if err := cmd.Validate(); err != nil {
		return CityResult{}, err
	}

	city, err := location.NewCity(kernel.NewUUID(), cmd.Name(), cmd.GovernorateID(), cmd.ShippingCost())
	if err != nil {
		return CityResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CityResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	governorate, err := uow.GovernorateRepository().Get(ctx, city.GovernorateID())
	if err != nil {
		return CityResult{}, err
	}

	cityRepo := uow.CityRepository()

	exists, err := cityRepo.ExistsByNameAndGovernorate(ctx, city.Name(), city.GovernorateID(), nil)
	if err != nil {
		return CityResult{}, err
	}
	if exists {
		return CityResult{}, errs.NewObjectAlreadyExistsError("cityName", city.Name())
	}

	if err = cityRepo.Add(ctx, city); err != nil {
		return CityResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CityResult{}, err
	}

	return CityResult{City: city, Governorate: governorate}, nil
}
