package commands

import (
	"context"
)

// DeleteCityCommandHandler handles city deletion.
type DeleteCityCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewDeleteCityCommandHandler creates a handler for city deletion.
func NewDeleteCityCommandHandler(uowFactory LocationUoWFactory) DeleteCityCommandHandler {
	return DeleteCityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the city.
func (h *DeleteCityCommandHandler) Handle(ctx context.Context, cmd DeleteCityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CityRepository().Delete(ctx, cmd.CityID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
