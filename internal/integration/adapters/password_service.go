// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pocketledger/backend/internal/application/adapter"
)

// hashCost trades login latency for brute-force resistance. 12 keeps a
// single verification under ~300ms on current hardware.
const hashCost = 12

const minPasswordLength = 8

type passwordService struct {
	cost int
}

// NewPasswordService creates a bcrypt-backed password service.
func NewPasswordService() adapter.PasswordService {
	return &passwordService{cost: hashCost}
}

func (s *passwordService) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func (s *passwordService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func (s *passwordService) ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}
