package commands

import (
	"context"

	"shipadmin/internal/core/domain/model/location"
	"shipadmin/internal/pkg/errs"
)

// UpdateGovernorateCommandHandler handles governorate renames and recodes.
// The uniqueness pre-check excludes the governorate being updated.
type UpdateGovernorateCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewUpdateGovernorateCommandHandler creates a handler for governorate updates.
func NewUpdateGovernorateCommandHandler(uowFactory LocationUoWFactory) UpdateGovernorateCommandHandler {
	return UpdateGovernorateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the update and returns the persisted record.
func (h *UpdateGovernorateCommandHandler) Handle(
	ctx context.Context, cmd UpdateGovernorateCommand,
) (*location.Governorate, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	govRepo := uow.GovernorateRepository()

	governorate, err := govRepo.Get(ctx, cmd.GovernorateID())
	if err != nil {
		return nil, err
	}

	if err = governorate.Rename(cmd.Name(), cmd.Code()); err != nil {
		return nil, err
	}

	excludeID := cmd.GovernorateID()
	exists, err := govRepo.ExistsByNameOrCode(ctx, governorate.Name(), governorate.Code(), &excludeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewObjectAlreadyExistsError("govName or govCode", governorate.Name())
	}

	if err = govRepo.Update(ctx, governorate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return governorate, nil
}
