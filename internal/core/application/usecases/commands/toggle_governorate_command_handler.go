package commands

import (
	"context"

	"shipadmin/internal/core/domain/model/location"
)

// ToggleGovernorateCommandHandler flips a governorate's active flag.
// Deactivation is a display/selection hint for new city assignment; it is
// not a cascading state change.
type ToggleGovernorateCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewToggleGovernorateCommandHandler creates a handler for the toggle operation.
func NewToggleGovernorateCommandHandler(uowFactory LocationUoWFactory) ToggleGovernorateCommandHandler {
	return ToggleGovernorateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle flips the flag and returns the persisted record.
func (h *ToggleGovernorateCommandHandler) Handle(
	ctx context.Context, cmd ToggleGovernorateCommand,
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

	governorate.ToggleActive()

	if err = govRepo.Update(ctx, governorate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return governorate, nil
}
