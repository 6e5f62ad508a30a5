package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel is the base model for system-wide entities
type BaseModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt *gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty" swaggerignore:"true"`
}

// BaseStoreModel is the base model for store-scoped entities
type BaseStoreModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	StoreID   uuid.UUID       `gorm:"type:uuid;index;not null;constraint:OnDelete:RESTRICT" json:"store_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt *gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty" swaggerignore:"true"`
}

// BeforeCreate hook to generate UUID if not set
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook to generate UUID if not set
func (b *BaseStoreModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Store represents a storefront (a published digital menu)
type Store struct {
	BaseModel
	Name   string `gorm:"not null" json:"name" validate:"required"`
	Tag    string `gorm:"unique;index;not null" json:"tag" validate:"required"` // URL slug for public access
	Domain string `json:"domain"`
	Status string `gorm:"default:'active'" json:"status"`
	About  string `gorm:"type:text" json:"about"`
	Phone  string `json:"phone"`

	// Store address
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`

	// Opening hours are evaluated in this zone (IANA name)
	Timezone string `gorm:"default:'America/Sao_Paulo'" json:"timezone"`

	MinOrderValue string `gorm:"default:'0'" json:"min_order_value"`
	DeliveryFee   string `gorm:"default:'0'" json:"delivery_fee"`
	IsPublic      bool   `gorm:"default:true" json:"is_public"`
}

// User represents a system or store user
type User struct {
	BaseModel
	StoreID     *uuid.UUID `gorm:"type:uuid;index;constraint:OnDelete:SET NULL" json:"store_id,omitempty"` // null for system admins
	Email       string     `gorm:"unique;not null" json:"email" validate:"required,email"`
	Password    string     `gorm:"not null" json:"-"`
	Name        string     `gorm:"not null" json:"name" validate:"required"`
	Role        string     `gorm:"not null" json:"role" validate:"required"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

// StoreSetting is a key/value configuration row scoped to a store.
// The weekly opening-hours schedule lives under SettingKey "opening_hours"
// as a JSON array of openinghours.Entry.
type StoreSetting struct {
	BaseModel
	StoreID      uuid.UUID `gorm:"type:uuid;index;not null;constraint:OnDelete:RESTRICT" json:"store_id"`
	SettingKey   string    `gorm:"size:100;not null" json:"setting_key"`
	SettingValue *string   `gorm:"type:text" json:"setting_value"`
	SettingType  string    `gorm:"size:50;default:'string'" json:"setting_type"`
	Description  string    `gorm:"type:text" json:"description"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
}

// PaginationResult represents paginated results
type PaginationResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

// GetAllModels returns all models for GORM AutoMigrate
func GetAllModels() []interface{} {
	return []interface{}{
		// Core models
		&Store{},
		&User{},
		&StoreSetting{},

		// Catalog models
		&Category{},
		&Product{},

		// Cart models
		&Cart{},
		&CartItem{},
	}
}
