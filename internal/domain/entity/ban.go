package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceBan represents a ban record matched against device fingerprints,
// IP addresses, or account emails.
type DeviceBan struct {
	ID          uuid.UUID
	Fingerprint string
	IPAddress   string
	Email       string
	Reason      string
	IsPermanent bool
	BannedUntil *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewDeviceBan creates a new DeviceBan entity.
func NewDeviceBan(fingerprint, ipAddress, email, reason string, isPermanent bool, bannedUntil *time.Time) *DeviceBan {
	now := time.Now().UTC()
	return &DeviceBan{
		ID:          uuid.New(),
		Fingerprint: fingerprint,
		IPAddress:   ipAddress,
		Email:       email,
		Reason:      reason,
		IsPermanent: isPermanent,
		BannedUntil: bannedUntil,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Active reports whether the ban is in effect at the given instant.
// Permanent bans never expire; temporary bans expire when BannedUntil passes.
func (b *DeviceBan) Active(now time.Time) bool {
	if b.IsPermanent {
		return true
	}
	return b.BannedUntil != nil && b.BannedUntil.After(now)
}

// BanDecision is the outcome of a ban lookup.
type BanDecision struct {
	Banned      bool
	Reason      string
	IsPermanent bool
	BannedUntil *time.Time
}
