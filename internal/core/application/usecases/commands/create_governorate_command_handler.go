package commands

import (
	"context"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/core/domain/model/location"
	"shipadmin/internal/pkg/errs"
)

// CreateGovernorateCommandHandler handles governorate creation.
//
// Uniqueness of name and code is checked twice: an explicit repository
// pre-check here, and the database unique index as the backstop for the
// race between check and write. Both paths surface the same conflict error.
type CreateGovernorateCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewCreateGovernorateCommandHandler creates a handler for governorate creation.
func NewCreateGovernorateCommandHandler(uowFactory LocationUoWFactory) CreateGovernorateCommandHandler {
	return CreateGovernorateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the governorate and returns the persisted record.
func (h *CreateGovernorateCommandHandler) Handle(
	ctx context.Context, cmd CreateGovernorateCommand,
) (*location.Governorate, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	governorate, err := location.NewGovernorate(kernel.NewUUID(), cmd.Name(), cmd.Code())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	govRepo := uow.GovernorateRepository()

	exists, err := govRepo.ExistsByNameOrCode(ctx, governorate.Name(), governorate.Code(), nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewObjectAlreadyExistsError("govName or govCode", governorate.Name())
	}

	if err = govRepo.Add(ctx, governorate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return governorate, nil
}
