package email

import (
	"context"
	"log/slog"
	"time"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/integration/email/templates"
)

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// Worker drains the email queue in the background. Each pass claims up to
// BatchSize pending jobs, renders and sends them, and records the outcome.
// Transient send failures go back into the queue with backoff; permanent
// ones are dead-lettered on the spot.
type Worker struct {
	queue    adapter.EmailQueueRepository
	sender   adapter.EmailSender
	renderer *templates.Renderer
	cfg      WorkerConfig
}

// NewWorker creates a new email worker.
func NewWorker(queue adapter.EmailQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, config WorkerConfig) *Worker {
	return &Worker{
		queue:    queue,
		sender:   sender,
		renderer: renderer,
		cfg:      config,
	}
}

// Start runs the polling loop until the context is cancelled. One pass runs
// immediately so queued mail does not wait a full interval after boot.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Email worker started",
		"poll_interval", w.cfg.PollInterval,
		"batch_size", w.cfg.BatchSize,
	)

	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	w.drainOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Email worker shutting down")
			return
		case <-ticker.C:
			w.drainOnce(ctx)
		}
	}
}

// ProcessNow runs a single queue pass synchronously.
func (w *Worker) ProcessNow(ctx context.Context) {
	w.drainOnce(ctx)
}

func (w *Worker) drainOnce(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.cfg.BatchSize)
	if err != nil {
		slog.Error("Failed to get pending email jobs", "error", err)
		return
	}
	if len(jobs) == 0 {
		return
	}

	slog.Debug("Processing email batch", "count", len(jobs))

	for _, job := range jobs {
		if ctx.Err() != nil {
			return
		}
		w.deliver(ctx, job)
	}
}

// deliver takes one job from pending to sent, retrying, or failed.
func (w *Worker) deliver(ctx context.Context, job *entity.EmailJob) {
	logger := slog.With(
		"job_id", job.ID,
		"template", job.TemplateType,
		"recipient", job.RecipientEmail,
	)

	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return
	}

	html, text, err := w.render(job)
	if err != nil {
		logger.Error("Failed to render email template", "error", err)
		// A template that does not render today will not render on retry.
		w.recordFailure(ctx, job, err, true)
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		logger.Error("Failed to send email", "error", err)
		w.recordFailure(ctx, job, err, domainerror.IsPermanentEmailFailure(err))
		return
	}

	job.MarkSent(result.ResendID)
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}

	logger.Info("Email sent successfully", "resend_id", result.ResendID)
}

// render maps the job's template type onto its typed data and renders it.
func (w *Worker) render(job *entity.EmailJob) (html string, text string, err error) {
	var data interface{}
	switch job.TemplateType {
	case entity.TemplatePasswordReset:
		data = templates.PasswordResetData{
			UserName:  stringField(job.TemplateData, "user_name"),
			ResetURL:  stringField(job.TemplateData, "reset_url"),
			ExpiresIn: stringField(job.TemplateData, "expires_in"),
		}
	case entity.TemplateWelcome:
		data = templates.WelcomeData{
			UserName: stringField(job.TemplateData, "user_name"),
			AppURL:   stringField(job.TemplateData, "app_url"),
		}
	default:
		return "", "", domainerror.NewPermanentEmailError(
			domainerror.ErrCodeInvalidTemplate,
			"unknown template type "+string(job.TemplateType),
			nil,
		)
	}

	return w.renderer.Render(string(job.TemplateType), data)
}

func (w *Worker) recordFailure(ctx context.Context, job *entity.EmailJob, cause error, permanent bool) {
	job.MarkFailed(cause, permanent)

	if err := w.queue.Update(ctx, job); err != nil {
		slog.Error("Failed to update job after failure",
			"job_id", job.ID,
			"error", err,
		)
	}

	if job.Status == entity.EmailStatusFailed {
		slog.Warn("Email job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
		return
	}
	slog.Info("Email job scheduled for retry",
		"job_id", job.ID,
		"attempts", job.Attempts,
		"scheduled_at", job.ScheduledAt,
	)
}

func stringField(data map[string]interface{}, key string) string {
	s, _ := data[key].(string)
	return s
}
