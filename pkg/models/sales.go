package models

import (
	"time"

	"github.com/google/uuid"
)

// Cart represents a shopping cart
type Cart struct {
	BaseStoreModel
	Status       string     `gorm:"default:'active'" json:"status"` // active, checkout, completed, abandoned
	ExpiresAt    *time.Time `json:"expires_at"`
	TotalAmount  string     `gorm:"default:'0'" json:"total_amount"`
	ItemsCount   int        `gorm:"default:0" json:"items_count"`
	Observations string     `json:"observations"` // ex: precisa de troco, sem cebola

	// Relations
	Items []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"`
}

// CartItem represents an item in a cart
type CartItem struct {
	BaseStoreModel
	CartID    uuid.UUID  `gorm:"type:uuid;not null;constraint:OnDelete:RESTRICT" json:"cart_id"`
	ProductID *uuid.UUID `gorm:"type:uuid;constraint:OnDelete:SET NULL" json:"product_id"`
	Quantity  int        `gorm:"not null" json:"quantity" validate:"min=1"`
	Price     string     `gorm:"not null" json:"price"`

	// Historical product data for cart integrity
	ProductName        *string `json:"product_name"`
	ProductDescription *string `json:"product_description"`
	ProductSKU         *string `json:"product_sku"`

	// Relations
	Cart    *Cart    `gorm:"foreignKey:CartID" json:"cart,omitempty"`
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// AddCartItemRequest represents the payload to add a product to a cart
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

// UpdateCartItemRequest represents the payload to change an item quantity
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}
