package commands

import (
	"context"
)

// ToggleCityCommandHandler flips a city's active flag. The owning
// governorate's flag is independent and stays untouched.
type ToggleCityCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewToggleCityCommandHandler creates a handler for the toggle operation.
func NewToggleCityCommandHandler(uowFactory LocationUoWFactory) ToggleCityCommandHandler {
	return ToggleCityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle flips the flag and returns the persisted record joined with its
// governorate.
func (h *ToggleCityCommandHandler) Handle(ctx context.Context, cmd ToggleCityCommand) (CityResult, error) {
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

	governorate, err := uow.GovernorateRepository().Get(ctx, city.GovernorateID())
	if err != nil {
		return CityResult{}, err
	}

	city.ToggleActive()

	if err = cityRepo.Update(ctx, city); err != nil {
		return CityResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CityResult{}, err
	}

	return CityResult{City: city, Governorate: governorate}, nil
}
