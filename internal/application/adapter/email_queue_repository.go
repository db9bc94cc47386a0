// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// EmailQueueRepository persists email jobs between enqueue and delivery.
type EmailQueueRepository interface {
	Create(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs returns due jobs ordered by scheduled_at.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	Update(ctx context.Context, job *entity.EmailJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error)
	GetByRecipient(ctx context.Context, email string) ([]*entity.EmailJob, error)

	// DeleteOldSentJobs prunes sent jobs processed more than olderThanDays
	// ago and returns the number removed.
	DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error)
}
