// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// CheckBanRequest represents the request body for a ban lookup.
type CheckBanRequest struct {
	Signals map[string]string `json:"signals" binding:"required"`
	Email   string            `json:"email,omitempty" binding:"omitempty,email"`
}

// CheckBanResponse represents the response for a ban lookup.
type CheckBanResponse struct {
	Banned      bool       `json:"banned"`
	Reason      string     `json:"reason,omitempty"`
	IsPermanent bool       `json:"is_permanent,omitempty"`
	BannedUntil *time.Time `json:"banned_until,omitempty"`
}

// CreateBanRequest represents the request body for creating a ban record.
type CreateBanRequest struct {
	Fingerprint string     `json:"fingerprint,omitempty"`
	IPAddress   string     `json:"ip_address,omitempty"`
	Email       string     `json:"email,omitempty" binding:"omitempty,email"`
	Reason      string     `json:"reason,omitempty" binding:"omitempty,max=500"`
	IsPermanent bool       `json:"is_permanent"`
	BannedUntil *time.Time `json:"banned_until,omitempty"`
}

// BanResponse represents a single ban record in API responses.
type BanResponse struct {
	ID          string     `json:"id"`
	Fingerprint string     `json:"fingerprint,omitempty"`
	IPAddress   string     `json:"ip_address,omitempty"`
	Email       string     `json:"email,omitempty"`
	Reason      string     `json:"reason,omitempty"`
	IsPermanent bool       `json:"is_permanent"`
	BannedUntil *time.Time `json:"banned_until,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// BanListResponse represents the response for listing ban records.
type BanListResponse struct {
	Bans []BanResponse `json:"bans"`
}

// ToCheckBanResponse converts a BanDecision to a CheckBanResponse DTO.
func ToCheckBanResponse(decision entity.BanDecision) CheckBanResponse {
	return CheckBanResponse{
		Banned:      decision.Banned,
		Reason:      decision.Reason,
		IsPermanent: decision.IsPermanent,
		BannedUntil: decision.BannedUntil,
	}
}

// ToBanResponse converts a DeviceBan entity to a BanResponse DTO.
func ToBanResponse(b *entity.DeviceBan) BanResponse {
	return BanResponse{
		ID:          b.ID.String(),
		Fingerprint: b.Fingerprint,
		IPAddress:   b.IPAddress,
		Email:       b.Email,
		Reason:      b.Reason,
		IsPermanent: b.IsPermanent,
		BannedUntil: b.BannedUntil,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// ToBanListResponse converts ban entities to a BanListResponse.
func ToBanListResponse(bans []*entity.DeviceBan) BanListResponse {
	responses := make([]BanResponse, len(bans))
	for i, b := range bans {
		responses[i] = ToBanResponse(b)
	}
	return BanListResponse{Bans: responses}
}
