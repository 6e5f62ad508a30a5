package db

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/Ndzin77/cardapiodigitalteste/pkg/models"
	"github.com/Ndzin77/cardapiodigitalteste/pkg/openinghours"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase creates a new database connection
func NewDatabase() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		os.Getenv("DB_TIMEZONE"),
	)

	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
		// Habilitar criação automática de foreign key constraints
		DisableForeignKeyConstraintWhenMigrating: false,
	}

	db, err := gorm.Open(postgres.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// AutoMigrate runs database migrations using GORM
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running GORM AutoMigrate...")

	// Create required extensions first
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Printf("Warning: Could not create uuid-ossp extension: %v", err)
	}

	// Run GORM AutoMigrate with all models
	if err := db.AutoMigrate(models.GetAllModels()...); err != nil {
		return fmt.Errorf("failed to run GORM AutoMigrate: %w", err)
	}

	// Create any custom indexes that GORM might not handle automatically
	if err := createCustomIndexes(db); err != nil {
		log.Printf("Warning: Failed to create some custom indexes: %v", err)
	}

	log.Println("GORM AutoMigrate completed successfully")
	return nil
}

// createCustomIndexes creates any custom indexes that GORM might not handle
func createCustomIndexes(db *gorm.DB) error {
	indexes := []string{
		// Full text search index for products
		`CREATE INDEX IF NOT EXISTS idx_products_search ON products USING gin(to_tsvector('portuguese', coalesce(name, '') || ' ' || coalesce(description, '') || ' ' || coalesce(tags, '')))`,

		// One setting row per store and key
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_store_settings_unique ON store_settings(store_id, setting_key)`,

		// Cart item lookup by product
		`CREATE INDEX IF NOT EXISTS idx_cart_items_cart_product ON cart_items(cart_id, product_id)`,
	}

	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s - %v", idx, err)
		}
	}

	return nil
}

// SeedInitialData creates initial system data
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	// Check if admin user already exists
	var userCount int64
	if err := db.Model(&models.User{}).Where("role = ?", "system_admin").Count(&userCount).Error; err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}

	if userCount == 0 {
		adminUser := models.User{
			Email:    "admin@cardapiodigital.local",
			Password: "$2a$10$ihq36CvkxLkl2FlsN1xI7.iRADfxaBLWHbNzdOCGzJYY/sqsCP1I2", // admin123
			Name:     "System Administrator",
			Role:     "system_admin",
			IsActive: true,
		}

		if err := db.Create(&adminUser).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		log.Println("Admin user created successfully")
	}

	return SeedDemoStore(db)
}

// SeedDemoStore creates a demo storefront with a typical weekly schedule
// when the database has no stores yet
func SeedDemoStore(db *gorm.DB) error {
	var storeCount int64
	if err := db.Model(&models.Store{}).Count(&storeCount).Error; err != nil {
		return fmt.Errorf("failed to check existing stores: %w", err)
	}

	if storeCount > 0 {
		return nil
	}

	store := models.Store{
		Name:     "Loja Demonstração",
		Tag:      "demo",
		Status:   "active",
		Timezone: "America/Sao_Paulo",
		IsPublic: true,
	}

	if err := db.Create(&store).Error; err != nil {
		return fmt.Errorf("failed to create demo store: %w", err)
	}

	schedule := openinghours.Schedule{
		{Day: "segunda", Hours: "08:00-12:00 / 14:00-18:00", IsOpen: true},
		{Day: "terça", Hours: "08:00-12:00 / 14:00-18:00", IsOpen: true},
		{Day: "quarta", Hours: "08:00-12:00 / 14:00-18:00", IsOpen: true},
		{Day: "quinta", Hours: "08:00-12:00 / 14:00-18:00", IsOpen: true},
		{Day: "sexta", Hours: "08:00-12:00 / 14:00-18:00", IsOpen: true},
		{Day: "sábado", Hours: "08:00-13:00", IsOpen: true},
		{Day: "domingo", Hours: "", IsOpen: false},
	}

	raw, err := json.Marshal(schedule)
	if err != nil {
		return err
	}
	value := string(raw)

	setting := models.StoreSetting{
		StoreID:      store.ID,
		SettingKey:   "opening_hours",
		SettingValue: &value,
		SettingType:  "json",
		Description:  "Horários de funcionamento da loja",
		IsActive:     true,
	}

	if err := db.Create(&setting).Error; err != nil {
		return fmt.Errorf("failed to create demo schedule: %w", err)
	}

	log.Println("Demo store created successfully")
	return nil
}

// RunMigrations is the main migration function called from main.go
func RunMigrations(db *gorm.DB) error {
	log.Println("Starting database migrations...")

	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}

	if err := SeedInitialData(db); err != nil {
		return fmt.Errorf("initial data seeding failed: %w", err)
	}

	log.Println("All migrations completed successfully")
	return nil
}
