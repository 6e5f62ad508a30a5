package repo

import (
	"context"

	"github.com/Ndzin77/cardapiodigitalteste/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettingsRepository handles store settings data access
type SettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get retrieves a specific setting for a store
func (r *SettingsRepository) Get(ctx context.Context, storeID uuid.UUID, key string) (*models.StoreSetting, error) {
	var setting models.StoreSetting
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND setting_key = ? AND is_active = true", storeID, key).
		First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// GetAll retrieves all settings for a store
func (r *SettingsRepository) GetAll(ctx context.Context, storeID uuid.UUID) ([]models.StoreSetting, error) {
	var settings []models.StoreSetting
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND is_active = true", storeID).
		Find(&settings).Error
	return settings, err
}

// Set creates or updates a setting for a store
func (r *SettingsRepository) Set(ctx context.Context, storeID uuid.UUID, key string, value *string, settingType string) error {
	setting := models.StoreSetting{
		StoreID:      storeID,
		SettingKey:   key,
		SettingValue: value,
		SettingType:  settingType,
		IsActive:     true,
	}

	return r.db.WithContext(ctx).
		Where("store_id = ? AND setting_key = ?", storeID, key).
		Assign(setting).
		FirstOrCreate(&setting).Error
}
