package ban

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// CreateBanInput represents the input for creating a ban record.
type CreateBanInput struct {
	Fingerprint string
	IPAddress   string
	Email       string
	Reason      string
	IsPermanent bool
	BannedUntil *time.Time
}

// CreateBanOutput represents the output of creating a ban record.
type CreateBanOutput struct {
	Ban *entity.DeviceBan
}

// CreateBanUseCase handles ban record creation.
type CreateBanUseCase struct {
	banRepo adapter.BanRepository
}

// NewCreateBanUseCase creates a new CreateBanUseCase instance.
func NewCreateBanUseCase(banRepo adapter.BanRepository) *CreateBanUseCase {
	return &CreateBanUseCase{
		banRepo: banRepo,
	}
}

// Execute performs the ban creation.
func (uc *CreateBanUseCase) Execute(ctx context.Context, input CreateBanInput) (*CreateBanOutput, error) {
	fingerprint := strings.TrimSpace(input.Fingerprint)
	ipAddress := strings.TrimSpace(input.IPAddress)
	email := strings.TrimSpace(strings.ToLower(input.Email))

	if fingerprint == "" && ipAddress == "" && email == "" {
		return nil, domainerror.NewBanError(
			domainerror.ErrCodeEmptyBanTarget,
			"ban must target a fingerprint, IP address, or email",
			domainerror.ErrEmptyBanTarget,
		)
	}

	if !input.IsPermanent && input.BannedUntil == nil {
		return nil, domainerror.NewBanError(
			domainerror.ErrCodeInvalidBanExpiry,
			"temporary ban requires banned_until",
			domainerror.ErrInvalidBanExpiry,
		)
	}

	ban := entity.NewDeviceBan(fingerprint, ipAddress, email, input.Reason, input.IsPermanent, input.BannedUntil)

	if err := uc.banRepo.Create(ctx, ban); err != nil {
		return nil, fmt.Errorf("failed to create ban: %w", err)
	}

	return &CreateBanOutput{
		Ban: ban,
	}, nil
}
