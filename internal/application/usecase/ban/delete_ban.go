package ban

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/application/adapter"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// DeleteBanInput represents the input for deleting a ban record.
type DeleteBanInput struct {
	BanID uuid.UUID
}

// DeleteBanUseCase handles ban record deletion.
type DeleteBanUseCase struct {
	banRepo adapter.BanRepository
}

// NewDeleteBanUseCase creates a new DeleteBanUseCase instance.
func NewDeleteBanUseCase(banRepo adapter.BanRepository) *DeleteBanUseCase {
	return &DeleteBanUseCase{
		banRepo: banRepo,
	}
}

// Execute performs the ban deletion.
func (uc *DeleteBanUseCase) Execute(ctx context.Context, input DeleteBanInput) error {
	if _, err := uc.banRepo.FindByID(ctx, input.BanID); err != nil {
		if errors.Is(err, domainerror.ErrBanNotFound) {
			return domainerror.NewBanError(
				domainerror.ErrCodeBanNotFound,
				"ban not found",
				domainerror.ErrBanNotFound,
			)
		}
		return fmt.Errorf("failed to find ban: %w", err)
	}

	if err := uc.banRepo.Delete(ctx, input.BanID); err != nil {
		return fmt.Errorf("failed to delete ban: %w", err)
	}

	return nil
}
