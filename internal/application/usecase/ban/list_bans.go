package ban

import (
	"context"
	"fmt"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
)

// ListBansOutput represents the output of listing ban records.
type ListBansOutput struct {
	Bans []*entity.DeviceBan
}

// ListBansUseCase lists all ban records.
type ListBansUseCase struct {
	banRepo adapter.BanRepository
}

// NewListBansUseCase creates a new ListBansUseCase instance.
func NewListBansUseCase(banRepo adapter.BanRepository) *ListBansUseCase {
	return &ListBansUseCase{
		banRepo: banRepo,
	}
}

// Execute retrieves every ban record, most recent first.
func (uc *ListBansUseCase) Execute(ctx context.Context) (*ListBansOutput, error) {
	bans, err := uc.banRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bans: %w", err)
	}

	return &ListBansOutput{
		Bans: bans,
	}, nil
}
