package email

import (
	"context"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// Service turns application-level email requests into queue jobs. Nothing
// here talks to the provider; delivery happens in the worker.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	return s.enqueue(ctx, entity.TemplatePasswordReset,
		input.UserEmail, input.UserName,
		"Reset your password - PocketLedger",
		map[string]interface{}{
			"user_name":  input.UserName,
			"reset_url":  input.ResetURL,
			"expires_in": input.ExpiresIn,
		})
}

// QueueWelcomeEmail queues a welcome email for a newly registered user.
func (s *Service) QueueWelcomeEmail(ctx context.Context, input adapter.QueueWelcomeInput) error {
	return s.enqueue(ctx, entity.TemplateWelcome,
		input.UserEmail, input.UserName,
		"Welcome to PocketLedger",
		map[string]interface{}{
			"user_name": input.UserName,
			"app_url":   input.AppURL,
		})
}

func (s *Service) enqueue(ctx context.Context, template entity.EmailTemplateType, to, name, subject string, data map[string]interface{}) error {
	job := entity.NewEmailJob(template, to, name, subject, data)
	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue "+string(template)+" email",
			err,
		)
	}
	return nil
}

var _ adapter.EmailService = (*Service)(nil)
