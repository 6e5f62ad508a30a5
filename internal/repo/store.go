package repo

import (
	"github.com/Ndzin77/cardapiodigitalteste/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreRepository handles store data access
type StoreRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a new store repository
func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

// GetByID gets a store by ID
func (r *StoreRepository) GetByID(id uuid.UUID) (*models.Store, error) {
	var store models.Store
	if err := r.db.Where("id = ?", id).First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// GetByTag gets an active public store by its URL tag
func (r *StoreRepository) GetByTag(tag string) (*models.Store, error) {
	var store models.Store
	err := r.db.Where("tag = ? AND status = 'active' AND is_public = true", tag).First(&store).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}

// Create creates a new store
func (r *StoreRepository) Create(store *models.Store) error {
	return r.db.Create(store).Error
}

// Update updates a store
func (r *StoreRepository) Update(store *models.Store) error {
	return r.db.Save(store).Error
}

// List lists stores with pagination
func (r *StoreRepository) List(limit, offset int) ([]models.Store, int64, error) {
	var stores []models.Store
	var total int64

	if err := r.db.Model(&models.Store{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&stores).Error
	return stores, total, err
}
