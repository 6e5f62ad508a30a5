package repo

import (
	"github.com/Ndzin77/cardapiodigitalteste/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRepository handles product category data access
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetByID gets a category by ID
func (r *CategoryRepository) GetByID(storeID, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("id = ? AND store_id = ?", id, storeID).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Create creates a new category
func (r *CategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// Update updates a category
func (r *CategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete soft deletes a category
func (r *CategoryRepository) Delete(storeID, id uuid.UUID) error {
	return r.db.Where("id = ? AND store_id = ?", id, storeID).Delete(&models.Category{}).Error
}

// List gets all categories for a store, ordered by sort_order
func (r *CategoryRepository) List(storeID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("store_id = ?", storeID).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// ListActive gets only active categories for the public storefront
func (r *CategoryRepository) ListActive(storeID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("store_id = ? AND is_active = true", storeID).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// FindExistingCategory finds a category by name (case insensitive)
func (r *CategoryRepository) FindExistingCategory(storeID uuid.UUID, name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("store_id = ? AND LOWER(name) = LOWER(?)", storeID, name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// CountProducts counts how many products are in this category
func (r *CategoryRepository) CountProducts(storeID, categoryID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("store_id = ? AND category_id = ?", storeID, categoryID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
