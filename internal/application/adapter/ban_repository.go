// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// BanRepository defines the interface for device ban persistence operations.
type BanRepository interface {
	// Create creates a new ban record in the database.
	Create(ctx context.Context, ban *entity.DeviceBan) error

	// FindByID retrieves a ban record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DeviceBan, error)

	// FindAll retrieves every ban record, most recent first.
	FindAll(ctx context.Context) ([]*entity.DeviceBan, error)

	// FindActive retrieves ban records matching any of the given identifiers
	// that are still in effect at the given instant. Empty identifiers are
	// not matched against.
	FindActive(ctx context.Context, fingerprint, ipAddress, email string, now time.Time) ([]*entity.DeviceBan, error)

	// Delete removes a ban record from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
