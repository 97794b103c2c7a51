package commands

import (
	"context"

	"shipadmin/internal/pkg/errs"
)

// UpdateCityCommandHandler handles city updates, including moving a city to
// a different governorate. The uniqueness check runs against the target
// governorate and excludes the city itself, so saving unchanged values is
// not a conflict.
type UpdateCityCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewUpdateCityCommandHandler creates a handler for city updates.
func NewUpdateCityCommandHandler(uowFactory LocationUoWFactory) UpdateCityCommandHandler {
	return UpdateCityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle updates the city and returns it with its (possibly new) governorate.
func (h *UpdateCityCommandHandler) Handle(ctx context.Context, cmd UpdateCityCommand) (CityResult, error) {
	if err := cmd.Validate(); err != nil {
		return CityResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CityResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cityRepo := uow.CityRepository()

	city, err := cityRepo.Get(ctx, cmd.CityID())
	if err != nil {
		return CityResult{}, err
	}

	governorate, err := uow.GovernorateRepository().Get(ctx, cmd.GovernorateID())
	if err != nil {
		return CityResult{}, err
	}

	if err = city.Update(cmd.Name(), cmd.GovernorateID(), cmd.ShippingCost()); err != nil {
		return CityResult{}, err
	}

	excludeID := city.ID()
	exists, err := cityRepo.ExistsByNameAndGovernorate(ctx, city.Name(), city.GovernorateID(), &excludeID)
	if err != nil {
		return CityResult{}, err
	}
	if exists {
		return CityResult{}, errs.NewObjectAlreadyExistsError("cityName", city.Name())
	}

	if err = cityRepo.Update(ctx, city); err != nil {
		return CityResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CityResult{}, err
	}

	return CityResult{City: city, Governorate: governorate}, nil
}
