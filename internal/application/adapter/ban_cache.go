package adapter

import (
	"context"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// BanCache caches ban decisions keyed by fingerprint. Both reads and
// writes are best-effort: a cache error must never surface to callers.
type BanCache interface {
	// Get returns the cached decision for the fingerprint, or nil on miss.
	Get(ctx context.Context, fingerprint string) (*entity.BanDecision, error)

	// Set stores the decision for the fingerprint.
	Set(ctx context.Context, fingerprint string, decision *entity.BanDecision) error
}
