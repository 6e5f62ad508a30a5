package repo

import (
	"github.com/Ndzin77/cardapiodigitalteste/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartRepository handles cart data access
type CartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// GetByID gets a cart with its items
func (r *CartRepository) GetByID(storeID, id uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items").Preload("Items.Product").
		Where("id = ? AND store_id = ?", id, storeID).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Create creates a new cart
func (r *CartRepository) Create(cart *models.Cart) error {
	return r.db.Create(cart).Error
}

// Update updates a cart
func (r *CartRepository) Update(cart *models.Cart) error {
	return r.db.Save(cart).Error
}

// GetItem gets a single cart item
func (r *CartRepository) GetItem(cartID, itemID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("id = ? AND cart_id = ?", itemID, cartID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindItemByProduct gets the cart item for a given product, if any
func (r *CartRepository) FindItemByProduct(cartID, productID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem adds an item to a cart
func (r *CartRepository) CreateItem(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// UpdateItem updates a cart item
func (r *CartRepository) UpdateItem(item *models.CartItem) error {
	return r.db.Save(item).Error
}

// DeleteItem removes an item from a cart
func (r *CartRepository) DeleteItem(cartID, itemID uuid.UUID) error {
	return r.db.Where("id = ? AND cart_id = ?", itemID, cartID).Delete(&models.CartItem{}).Error
}

// ListItems lists all items of a cart
func (r *CartRepository) ListItems(cartID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Where("cart_id = ?", cartID).Order("created_at ASC").Find(&items).Error
	return items, err
}
