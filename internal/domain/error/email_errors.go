package error

import "errors"

// ErrEmailJobNotFound is returned when a queued email job does not exist.
var ErrEmailJobNotFound = errors.New("email job not found")

// EmailErrorCode defines error codes for email errors.
// Format: EMAIL-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// Queue errors (01XXXX)
	ErrCodeEmailQueueFailed EmailErrorCode = "EMAIL-010001"
	ErrCodeEmailJobNotFound EmailErrorCode = "EMAIL-010002"

	// Send errors (02XXXX)
	ErrCodeEmailSendFailed EmailErrorCode = "EMAIL-020001"

	// Template errors (03XXXX)
	ErrCodeInvalidTemplate      EmailErrorCode = "EMAIL-030001"
	ErrCodeTemplateRenderFailed EmailErrorCode = "EMAIL-030002"
)

// EmailError carries a code plus a permanence flag. Permanent failures
// (rejected recipient, bad template) are not worth retrying; everything
// else the queue worker may attempt again.
type EmailError struct {
	Code      EmailErrorCode
	Message   string
	Permanent bool
	Err       error
}

func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a transient email error.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{Code: code, Message: message, Err: err}
}

// NewPermanentEmailError creates an email error that retrying cannot fix.
func NewPermanentEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{Code: code, Message: message, Permanent: true, Err: err}
}

// IsPermanentEmailFailure reports whether err wraps a permanent email error.
func IsPermanentEmailFailure(err error) bool {
	var emailErr *EmailError
	return errors.As(err, &emailErr) && emailErr.Permanent
}
