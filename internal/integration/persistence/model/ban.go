// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// DeviceBanModel represents the device_bans table in the database.
type DeviceBanModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Fingerprint string     `gorm:"type:varchar(64);index"`
	IPAddress   string     `gorm:"type:varchar(45);index"`
	Email       string     `gorm:"type:varchar(255);index"`
	Reason      string     `gorm:"type:text"`
	IsPermanent bool       `gorm:"not null;default:false"`
	BannedUntil *time.Time `gorm:"type:timestamptz"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

// TableName returns the table name for the DeviceBanModel.
func (DeviceBanModel) TableName() string {
	return "device_bans"
}

// ToEntity converts a DeviceBanModel to a domain DeviceBan entity.
func (m *DeviceBanModel) ToEntity() *entity.DeviceBan {
	return &entity.DeviceBan{
		ID:          m.ID,
		Fingerprint: m.Fingerprint,
		IPAddress:   m.IPAddress,
		Email:       m.Email,
		Reason:      m.Reason,
		IsPermanent: m.IsPermanent,
		BannedUntil: m.BannedUntil,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// BanFromEntity creates a DeviceBanModel from a domain DeviceBan entity.
func BanFromEntity(ban *entity.DeviceBan) *DeviceBanModel {
	return &DeviceBanModel{
		ID:          ban.ID,
		Fingerprint: ban.Fingerprint,
		IPAddress:   ban.IPAddress,
		Email:       ban.Email,
		Reason:      ban.Reason,
		IsPermanent: ban.IsPermanent,
		BannedUntil: ban.BannedUntil,
		CreatedAt:   ban.CreatedAt,
		UpdatedAt:   ban.UpdatedAt,
	}
}
