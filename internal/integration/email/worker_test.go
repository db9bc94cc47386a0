package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/integration/email/templates"
)

type memoryQueue struct {
	jobs map[uuid.UUID]*entity.EmailJob
}

func newMemoryQueue(jobs ...*entity.EmailJob) *memoryQueue {
	q := &memoryQueue{jobs: make(map[uuid.UUID]*entity.EmailJob)}
	for _, job := range jobs {
		q.jobs[job.ID] = job
	}
	return q
}

func (q *memoryQueue) Create(_ context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.EmailJob, error) {
	var pending []*entity.EmailJob
	for _, job := range q.jobs {
		if job.Status == entity.EmailStatusPending && len(pending) < limit {
			pending = append(pending, job)
		}
	}
	return pending, nil
}

func (q *memoryQueue) Update(_ context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) GetByID(_ context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	job, ok := q.jobs[id]
	if !ok {
		return nil, domainerror.ErrEmailJobNotFound
	}
	return job, nil
}

func (q *memoryQueue) GetByRecipient(_ context.Context, email string) ([]*entity.EmailJob, error) {
	var out []*entity.EmailJob
	for _, job := range q.jobs {
		if job.RecipientEmail == email {
			out = append(out, job)
		}
	}
	return out, nil
}

func (q *memoryQueue) DeleteOldSentJobs(_ context.Context, _ int) (int64, error) {
	return 0, nil
}

var _ adapter.EmailQueueRepository = (*memoryQueue)(nil)

func welcomeJob() *entity.EmailJob {
	return entity.NewEmailJob(
		entity.TemplateWelcome,
		"new@example.com",
		"New User",
		"Welcome",
		map[string]interface{}{
			"user_name": "New User",
			"app_url":   "https://app.example.com",
		},
	)
}

func newTestWorker(t *testing.T, queue adapter.EmailQueueRepository, sender adapter.EmailSender) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}
	return NewWorker(queue, sender, renderer, WorkerConfig{
		PollInterval: time.Second,
		BatchSize:    10,
	})
}

func TestWorkerSendsPendingJob(t *testing.T) {
	job := welcomeJob()
	queue := newMemoryQueue(job)
	sender := NewMockEmailSender()

	newTestWorker(t, queue, sender).ProcessNow(context.Background())

	if job.Status != entity.EmailStatusSent {
		t.Fatalf("expected status sent, got %s", job.Status)
	}
	if len(sender.SentEmails) != 1 {
		t.Fatalf("expected 1 sent email, got %d", len(sender.SentEmails))
	}
	if sender.SentEmails[0].To != "new@example.com" {
		t.Fatalf("unexpected recipient %s", sender.SentEmails[0].To)
	}
}

func TestWorkerRetriesTransientFailure(t *testing.T) {
	job := welcomeJob()
	queue := newMemoryQueue(job)
	sender := NewMockEmailSender()
	sender.FailWith(domainerror.NewEmailError(
		domainerror.ErrCodeEmailSendFailed, "send failed", errors.New("timeout")))

	newTestWorker(t, queue, sender).ProcessNow(context.Background())

	if job.Status != entity.EmailStatusPending {
		t.Fatalf("expected job back in pending for retry, got %s", job.Status)
	}
	if job.Attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", job.Attempts)
	}
}

func TestWorkerDeadLettersPermanentFailure(t *testing.T) {
	job := welcomeJob()
	queue := newMemoryQueue(job)
	sender := NewMockEmailSender()
	sender.FailWith(domainerror.NewPermanentEmailError(
		domainerror.ErrCodeEmailSendFailed, "email rejected", errors.New("422")))

	newTestWorker(t, queue, sender).ProcessNow(context.Background())

	if job.Status != entity.EmailStatusFailed {
		t.Fatalf("expected permanent failure, got %s", job.Status)
	}
	if job.Attempts != 1 {
		t.Fatalf("expected no retries after permanent failure, got %d attempts", job.Attempts)
	}
}

func TestWorkerDeadLettersUnknownTemplate(t *testing.T) {
	job := entity.NewEmailJob(
		entity.EmailTemplateType("newsletter"),
		"new@example.com",
		"New User",
		"Newsletter",
		map[string]interface{}{},
	)
	queue := newMemoryQueue(job)
	sender := NewMockEmailSender()

	newTestWorker(t, queue, sender).ProcessNow(context.Background())

	if job.Status != entity.EmailStatusFailed {
		t.Fatalf("expected unknown template to fail permanently, got %s", job.Status)
	}
	if len(sender.SentEmails) != 0 {
		t.Fatalf("nothing should have been sent, got %d", len(sender.SentEmails))
	}
}
