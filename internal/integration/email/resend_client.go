// Package email provides the outbound email queue, worker, and Resend sender.
package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/pocketledger/backend/internal/application/adapter"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// Error fragments that mark a rejection as permanent. Rate limits and 5xx
// responses are retried; rejected credentials and payloads are not.
var permanentRejections = []string{
	"401", "403", "422",
	"unauthorized", "forbidden", "validation", "invalid", "bad request",
}

// ResendClient sends email through the Resend API.
type ResendClient struct {
	api  *resend.Client
	from string
}

func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		api:  resend.NewClient(apiKey),
		from: fmt.Sprintf("%s <%s>", fromName, fromEmail),
	}
}

// Send delivers a single email, classifying failures as permanent or
// retryable for the queue worker.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	resp, err := c.api.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	})
	if err != nil {
		return nil, classifySendError(err)
	}

	return &adapter.SendEmailResult{ResendID: resp.Id}, nil
}

func classifySendError(err error) error {
	msg := strings.ToLower(err.Error())
	for _, fragment := range permanentRejections {
		if strings.Contains(msg, fragment) {
			return domainerror.NewPermanentEmailError(
				domainerror.ErrCodeEmailSendFailed, "email rejected", err)
		}
	}
	return domainerror.NewEmailError(
		domainerror.ErrCodeEmailSendFailed, "email send failed", err)
}

// MockEmailSender records sends in memory for tests.
type MockEmailSender struct {
	SentEmails []adapter.SendEmailInput

	failWith error
}

func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{}
}

func (m *MockEmailSender) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.SentEmails = append(m.SentEmails, input)
	return &adapter.SendEmailResult{ResendID: fmt.Sprintf("mock-%d", len(m.SentEmails))}, nil
}

// FailWith makes every subsequent Send return err. A permanent email error
// exercises the worker's dead-letter path; any other error its retry path.
func (m *MockEmailSender) FailWith(err error) {
	m.failWith = err
}

// Reset clears recorded sends and any configured failure.
func (m *MockEmailSender) Reset() {
	m.SentEmails = nil
	m.failWith = nil
}

var (
	_ adapter.EmailSender = (*ResendClient)(nil)
	_ adapter.EmailSender = (*MockEmailSender)(nil)
)
