package ban

import (
	"context"
	"log/slog"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
)

// CheckBanInput represents the input for a ban lookup.
type CheckBanInput struct {
	Signals map[string]string
	Email   string
}

// CheckBanOutput represents the outcome of a ban lookup.
type CheckBanOutput struct {
	Fingerprint string
	Decision    entity.BanDecision
}

// CheckBanUseCase decides whether a device or account is banned.
//
// The lookup is fail-open: any infrastructure error (IP resolution, cache,
// database) results in a not-banned decision rather than blocking the user.
type CheckBanUseCase struct {
	banRepo    adapter.BanRepository
	banCache   adapter.BanCache
	ipResolver adapter.IPResolver
	clock      adapter.Clock
}

// NewCheckBanUseCase creates a new CheckBanUseCase instance.
func NewCheckBanUseCase(
	banRepo adapter.BanRepository,
	banCache adapter.BanCache,
	ipResolver adapter.IPResolver,
	clock adapter.Clock,
) *CheckBanUseCase {
	return &CheckBanUseCase{
		banRepo:    banRepo,
		banCache:   banCache,
		ipResolver: ipResolver,
		clock:      clock,
	}
}

// Execute performs the ban lookup.
func (uc *CheckBanUseCase) Execute(ctx context.Context, input CheckBanInput) (*CheckBanOutput, error) {
	fingerprint := Fingerprint(input.Signals)

	if cached, err := uc.banCache.Get(ctx, fingerprint); err != nil {
		slog.Warn("ban cache read failed", "error", err)
	} else if cached != nil {
		return &CheckBanOutput{Fingerprint: fingerprint, Decision: *cached}, nil
	}

	// IP resolution is best-effort: an unknown IP just narrows the match.
	ipAddress, err := uc.ipResolver.Resolve(ctx)
	if err != nil {
		slog.Warn("ip resolution failed", "error", err)
		ipAddress = ""
	}

	now := uc.clock.Now()
	bans, err := uc.banRepo.FindActive(ctx, fingerprint, ipAddress, input.Email, now)
	if err != nil {
		slog.Error("ban lookup failed, allowing access", "error", err)
		return &CheckBanOutput{
			Fingerprint: fingerprint,
			Decision:    entity.BanDecision{Banned: false},
		}, nil
	}

	decision := entity.BanDecision{Banned: false}
	for _, b := range bans {
		if !b.Active(now) {
			continue
		}
		decision.Banned = true
		decision.Reason = b.Reason
		decision.IsPermanent = b.IsPermanent
		decision.BannedUntil = b.BannedUntil
		if b.IsPermanent {
			break
		}
	}

	if err := uc.banCache.Set(ctx, fingerprint, &decision); err != nil {
		slog.Warn("ban cache write failed", "error", err)
	}

	return &CheckBanOutput{Fingerprint: fingerprint, Decision: decision}, nil
}
