package middleware

import (
	"net/http"

	"github.com/Ndzin77/cardapiodigitalteste/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// StoreTagMiddleware resolve e injeta a loja a partir da TAG para rotas
// públicas da vitrine (ex: /store/minha-loja/products)
func StoreTagMiddleware(db *gorm.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tag := c.Param("tag")

			if tag == "" {
				return c.JSON(http.StatusBadRequest, map[string]string{
					"error": "TAG da loja é obrigatória",
				})
			}

			var store models.Store
			if err := db.Where("tag = ? AND status = 'active' AND is_public = true", tag).First(&store).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return c.JSON(http.StatusNotFound, map[string]string{
						"error": "Loja não encontrada ou não disponível publicamente",
					})
				}
				return c.JSON(http.StatusInternalServerError, map[string]string{
					"error": "Erro ao verificar loja",
				})
			}

			c.Set("store_id", store.ID)
			c.Set("store", &store)
			c.Set("tag", tag)

			return next(c)
		}
	}
}

// StoreContext helper para extrair as informações da loja do echo.Context
type StoreContext struct {
	StoreID uuid.UUID
	Store   *models.Store
}

// GetStoreContext extrai as informações da loja do echo.Context
func GetStoreContext(c echo.Context) *StoreContext {
	storeID, _ := c.Get("store_id").(uuid.UUID)
	store, _ := c.Get("store").(*models.Store)

	return &StoreContext{
		StoreID: storeID,
		Store:   store,
	}
}
