// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService hashes and verifies user passwords.
type PasswordService interface {
	HashPassword(password string) (string, error)

	// VerifyPassword returns an error when the password does not match the hash.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength rejects passwords below the minimum requirements.
	ValidatePasswordStrength(password string) error
}
