// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/integration/persistence/model"
)

// banRepository implements the adapter.BanRepository interface.
type banRepository struct {
	db *gorm.DB
}

// NewBanRepository creates a new ban repository instance.
func NewBanRepository(db *gorm.DB) adapter.BanRepository {
	return &banRepository{
		db: db,
	}
}

// Create creates a new ban record in the database.
func (r *banRepository) Create(ctx context.Context, ban *entity.DeviceBan) error {
	banModel := model.BanFromEntity(ban)
	result := r.db.WithContext(ctx).Create(banModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a ban record by its ID.
func (r *banRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DeviceBan, error) {
	var banModel model.DeviceBanModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&banModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBanNotFound
		}
		return nil, result.Error
	}
	return banModel.ToEntity(), nil
}

// FindAll retrieves every ban record, most recent first.
func (r *banRepository) FindAll(ctx context.Context) ([]*entity.DeviceBan, error) {
	var banModels []model.DeviceBanModel
	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&banModels)
	if result.Error != nil {
		return nil, result.Error
	}

	bans := make([]*entity.DeviceBan, len(banModels))
	for i, bm := range banModels {
		bans[i] = bm.ToEntity()
	}
	return bans, nil
}

// FindActive retrieves ban records matching any of the given identifiers
// that are still in effect at the given instant.
func (r *banRepository) FindActive(ctx context.Context, fingerprint, ipAddress, email string, now time.Time) ([]*entity.DeviceBan, error) {
	match := r.db.Where("1 = 0")
	if fingerprint != "" {
		match = match.Or("fingerprint = ?", fingerprint)
	}
	if ipAddress != "" {
		match = match.Or("ip_address = ?", ipAddress)
	}
	if email != "" {
		match = match.Or("email = ?", email)
	}

	var banModels []model.DeviceBanModel
	result := r.db.WithContext(ctx).
		Where(match).
		Where("is_permanent = ? OR banned_until > ?", true, now).
		Find(&banModels)
	if result.Error != nil {
		return nil, result.Error
	}

	bans := make([]*entity.DeviceBan, len(banModels))
	for i, bm := range banModels {
		bans[i] = bm.ToEntity()
	}
	return bans, nil
}

// Delete removes a ban record from the database.
func (r *banRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.DeviceBanModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBanNotFound
	}
	return nil
}
