package repo

import (
	"github.com/Ndzin77/cardapiodigitalteste/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRepository handles product data access
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetByID gets a product by ID
func (r *ProductRepository) GetByID(storeID, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").
		Where("id = ? AND store_id = ?", id, storeID).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Create creates a new product
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update updates a product
func (r *ProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete soft deletes a product
func (r *ProductRepository) Delete(storeID, id uuid.UUID) error {
	return r.db.Where("id = ? AND store_id = ?", id, storeID).Delete(&models.Product{}).Error
}

// List lists products for a store with pagination, optionally filtered by category
func (r *ProductRepository) List(storeID uuid.UUID, categoryID *uuid.UUID, activeOnly bool, limit, offset int) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{}).Where("store_id = ?", storeID)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if activeOnly {
		query = query.Where("is_active = true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := query.Preload("Category").
		Order("sort_order ASC, name ASC").
		Limit(limit).Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// Search runs a full text search over name, description and tags using
// the portuguese text search configuration, falling back to ILIKE for
// short terms that do not produce lexemes.
func (r *ProductRepository) Search(storeID uuid.UUID, term string, limit, offset int) ([]models.Product, int64, error) {
	tsQuery := r.db.Model(&models.Product{}).
		Where("store_id = ? AND is_active = true", storeID).
		Where("to_tsvector('portuguese', coalesce(name, '') || ' ' || coalesce(description, '') || ' ' || coalesce(tags, '')) @@ plainto_tsquery('portuguese', ?)", term)

	var total int64
	if err := tsQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if total == 0 {
		like := "%" + term + "%"
		likeQuery := r.db.Model(&models.Product{}).
			Where("store_id = ? AND is_active = true", storeID).
			Where("name ILIKE ? OR description ILIKE ? OR tags ILIKE ?", like, like, like)

		if err := likeQuery.Count(&total).Error; err != nil {
			return nil, 0, err
		}

		var products []models.Product
		err := likeQuery.Preload("Category").
			Order("sort_order ASC, name ASC").
			Limit(limit).Offset(offset).
			Find(&products).Error
		return products, total, err
	}

	var products []models.Product
	err := tsQuery.Preload("Category").
		Order("sort_order ASC, name ASC").
		Limit(limit).Offset(offset).
		Find(&products).Error
	return products, total, err
}

// FindBySKU finds a product by SKU within a store
func (r *ProductRepository) FindBySKU(storeID uuid.UUID, sku string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("store_id = ? AND sku = ?", storeID, sku).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}
