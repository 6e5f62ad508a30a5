package models

import "github.com/google/uuid"

// Category represents a product category
type Category struct {
	BaseStoreModel
	Name        string `gorm:"not null" json:"name" validate:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`
}

// Product represents a product in the menu
type Product struct {
	BaseStoreModel
	CategoryID    *uuid.UUID `gorm:"type:uuid;constraint:OnDelete:SET NULL" json:"category_id"`
	Name          string     `gorm:"not null" json:"name" validate:"required"`
	Description   string     `json:"description"`
	Price         string     `gorm:"not null" json:"price" validate:"required"`
	SalePrice     string     `json:"sale_price"`
	SKU           string     `gorm:"uniqueIndex:uni_products_store_sku;not null" json:"sku"`
	Image         string     `json:"image"`
	Tags          string     `json:"tags"`
	IsActive      bool       `gorm:"default:true" json:"is_active"`
	StockQuantity int        `gorm:"default:0" json:"stock_quantity"`
	SortOrder     int        `gorm:"default:0" json:"sort_order"`
	SearchVector  string     `gorm:"type:tsvector;-" json:"-"` // full text search vector, maintained by index

	// Relations
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// CreateCategoryRequest represents category creation data
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	SortOrder   int    `json:"sort_order"`
}

// UpdateCategoryRequest represents category update data
type UpdateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	IsActive    *bool   `json:"is_active"`
	SortOrder   *int    `json:"sort_order"`
}

// CreateProductRequest represents product creation data
type CreateProductRequest struct {
	CategoryID  *uuid.UUID `json:"category_id"`
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Price       string     `json:"price" validate:"required"`
	SalePrice   string     `json:"sale_price"`
	SKU         string     `json:"sku"`
	Image       string     `json:"image"`
	Tags        string     `json:"tags"`
	SortOrder   int        `json:"sort_order"`
}

// UpdateProductRequest represents product update data
type UpdateProductRequest struct {
	CategoryID  *uuid.UUID `json:"category_id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Price       string     `json:"price"`
	SalePrice   *string    `json:"sale_price"`
	Image       *string    `json:"image"`
	Tags        *string    `json:"tags"`
	IsActive    *bool      `json:"is_active"`
	SortOrder   *int       `json:"sort_order"`
}
