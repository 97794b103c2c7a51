package commands

import (
	"context"

	"shipadmin/internal/pkg/errs"
)

// DeleteGovernorateCommandHandler handles governorate deletion.
//
// A governorate with any city attached cannot be removed, regardless of
// whether those cities are active. The caller must delete or re-parent the
// cities first.
type DeleteGovernorateCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewDeleteGovernorateCommandHandler creates a handler for governorate deletion.
func NewDeleteGovernorateCommandHandler(uowFactory LocationUoWFactory) DeleteGovernorateCommandHandler {
	return DeleteGovernorateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the governorate when no city references it.
func (h *DeleteGovernorateCommandHandler) Handle(ctx context.Context, cmd DeleteGovernorateCommand) error {
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

	govRepo := uow.GovernorateRepository()

	governorate, err := govRepo.Get(ctx, cmd.GovernorateID())
	if err != nil {
		return err
	}

	cityCount, err := uow.CityRepository().CountByGovernorate(ctx, governorate.ID())
	if err != nil {
		return err
	}
	if cityCount > 0 {
		return errs.NewObjectHasDependentsError("governorate", governorate.ID().String(), "cities")
	}

	if err = govRepo.Delete(ctx, governorate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
