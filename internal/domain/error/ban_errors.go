package error

import "errors"

// Device ban domain errors.
var (
	// ErrBanNotFound is returned when a ban record is not found in the system.
	ErrBanNotFound = errors.New("ban not found")

	// ErrEmptyBanTarget is returned when a ban has no fingerprint, IP, or email to match on.
	ErrEmptyBanTarget = errors.New("ban must target a fingerprint, IP address, or email")

	// ErrInvalidBanExpiry is returned when a temporary ban has no expiry time.
	ErrInvalidBanExpiry = errors.New("temporary ban requires an expiry time")

	// ErrEmptyFingerprintSignals is returned when no device signals are provided for fingerprinting.
	ErrEmptyFingerprintSignals = errors.New("no device signals provided")
)

// BanErrorCode defines error codes for ban errors.
// Format: BAN-XXYYYY where XX is category and YYYY is specific error.
type BanErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyBanTarget          BanErrorCode = "BAN-010001"
	ErrCodeInvalidBanExpiry        BanErrorCode = "BAN-010002"
	ErrCodeBanNotFound             BanErrorCode = "BAN-010003"
	ErrCodeEmptyFingerprintSignals BanErrorCode = "BAN-010004"
)

// BanError represents a ban error with code and message.
type BanError struct {
	Code    BanErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BanError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BanError) Unwrap() error {
	return e.Err
}

// NewBanError creates a new BanError with the given code and message.
func NewBanError(code BanErrorCode, message string, err error) *BanError {
	return &BanError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
