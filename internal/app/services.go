package app

import (
	"github.com/Ndzin77/cardapiodigitalteste/internal/auth"
	"github.com/Ndzin77/cardapiodigitalteste/internal/repo"
	"github.com/Ndzin77/cardapiodigitalteste/internal/services"

	"gorm.io/gorm"
)

// Services holds all application services
type Services struct {
	DB              *gorm.DB
	AuthService     *auth.Service
	UserRepo        *repo.UserRepository
	StoreRepo       *repo.StoreRepository
	ProductRepo     *repo.ProductRepository
	CategoryRepo    *repo.CategoryRepository
	CartRepo        *repo.CartRepository
	SettingsRepo    *repo.SettingsRepository
	CategoryService *services.CategoryService
	CartService     *services.CartService
	StoreService    *services.StoreService
}

// NewServices creates a new services container
func NewServices(db *gorm.DB) *Services {
	// Initialize repositories
	userRepo := repo.NewUserRepository(db)
	storeRepo := repo.NewStoreRepository(db)
	productRepo := repo.NewProductRepository(db)
	categoryRepo := repo.NewCategoryRepository(db)
	cartRepo := repo.NewCartRepository(db)
	settingsRepo := repo.NewSettingsRepository(db)

	// Initialize services
	authService := auth.NewService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	storeService := services.NewStoreService(storeRepo, settingsRepo)

	return &Services{
		DB:              db,
		AuthService:     authService,
		UserRepo:        userRepo,
		StoreRepo:       storeRepo,
		ProductRepo:     productRepo,
		CategoryRepo:    categoryRepo,
		CartRepo:        cartRepo,
		SettingsRepo:    settingsRepo,
		CategoryService: categoryService,
		CartService:     cartService,
		StoreService:    storeService,
	}
}
