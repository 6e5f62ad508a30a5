package handlers

import (
	"net/http"

	"github.com/Ndzin77/cardapiodigitalteste/internal/http/middleware"
	"github.com/Ndzin77/cardapiodigitalteste/internal/repo"
	"github.com/Ndzin77/cardapiodigitalteste/internal/services"
	"github.com/Ndzin77/cardapiodigitalteste/pkg/openinghours"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type StoreHandler struct {
	storeService *services.StoreService
	storeRepo    *repo.StoreRepository
}

func NewStoreHandler(storeService *services.StoreService, storeRepo *repo.StoreRepository) *StoreHandler {
	return &StoreHandler{
		storeService: storeService,
		storeRepo:    storeRepo,
	}
}

// GetStorefront godoc
// @Summary Get public store info
// @Description Get the public profile of a store by its tag
// @Tags storefront
// @Produce json
// @Param tag path string true "Store tag"
// @Success 200 {object} models.Store
// @Failure 404 {object} map[string]string
// @Router /store/{tag} [get]
func (h *StoreHandler) GetStorefront(c echo.Context) error {
	sc := middleware.GetStoreContext(c)
	return c.JSON(http.StatusOK, sc.Store)
}

// GetStatus godoc
// @Summary Get store open/closed status
// @Description Evaluate the weekly opening-hours schedule against the store's current local time
// @Tags storefront
// @Produce json
// @Param tag path string true "Store tag"
// @Success 200 {object} services.StoreStatus
// @Failure 500 {object} map[string]string
// @Router /store/{tag}/status [get]
func (h *StoreHandler) GetStatus(c echo.Context) error {
	sc := middleware.GetStoreContext(c)

	status, err := h.storeService.Status(c.Request().Context(), sc.StoreID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to evaluate store status"})
	}

	return c.JSON(http.StatusOK, status)
}

// GetOpeningHours godoc
// @Summary Get opening hours
// @Description Get the weekly opening-hours schedule of a store
// @Tags storefront
// @Produce json
// @Param tag path string true "Store tag"
// @Success 200 {array} openinghours.Entry
// @Failure 500 {object} map[string]string
// @Router /store/{tag}/opening-hours [get]
func (h *StoreHandler) GetOpeningHours(c echo.Context) error {
	sc := middleware.GetStoreContext(c)

	schedule, err := h.storeService.GetOpeningHours(c.Request().Context(), sc.StoreID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load opening hours"})
	}

	if schedule == nil {
		schedule = openinghours.Schedule{}
	}

	return c.JSON(http.StatusOK, schedule)
}

// UpdateOpeningHours godoc
// @Summary Update opening hours
// @Description Replace the weekly opening-hours schedule of the authenticated store
// @Tags settings
// @Accept json
// @Produce json
// @Param schedule body []openinghours.Entry true "Weekly schedule"
// @Success 200 {array} openinghours.Entry
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /settings/opening-hours [put]
// @Security BearerAuth
func (h *StoreHandler) UpdateOpeningHours(c echo.Context) error {
	storeID, ok := c.Get("store_id").(uuid.UUID)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user is not linked to a store"})
	}

	var schedule openinghours.Schedule
	if err := c.Bind(&schedule); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := h.storeService.SetOpeningHours(c.Request().Context(), storeID, schedule); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save opening hours"})
	}

	return c.JSON(http.StatusOK, schedule)
}

// UpdateStore godoc
// @Summary Update store profile
// @Description Update the authenticated store's profile data
// @Tags settings
// @Accept json
// @Produce json
// @Param store body models.Store true "Store data"
// @Success 200 {object} models.Store
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /settings/store [put]
// @Security BearerAuth
func (h *StoreHandler) UpdateStore(c echo.Context) error {
	storeID, ok := c.Get("store_id").(uuid.UUID)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user is not linked to a store"})
	}

	store, err := h.storeRepo.GetByID(storeID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "store not found"})
	}

	var req struct {
		Name          string `json:"name"`
		About         string `json:"about"`
		Phone         string `json:"phone"`
		Street        string `json:"street"`
		Number        string `json:"number"`
		Neighborhood  string `json:"neighborhood"`
		City          string `json:"city"`
		State         string `json:"state"`
		ZipCode       string `json:"zip_code"`
		Timezone      string `json:"timezone"`
		MinOrderValue string `json:"min_order_value"`
		DeliveryFee   string `json:"delivery_fee"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if req.Name != "" {
		store.Name = req.Name
	}
	if req.About != "" {
		store.About = req.About
	}
	if req.Phone != "" {
		store.Phone = req.Phone
	}
	if req.Street != "" {
		store.Street = req.Street
	}
	if req.Number != "" {
		store.Number = req.Number
	}
	if req.Neighborhood != "" {
		store.Neighborhood = req.Neighborhood
	}
	if req.City != "" {
		store.City = req.City
	}
	if req.State != "" {
		store.State = req.State
	}
	if req.ZipCode != "" {
		store.ZipCode = req.ZipCode
	}
	if req.Timezone != "" {
		store.Timezone = req.Timezone
	}
	if req.MinOrderValue != "" {
		store.MinOrderValue = req.MinOrderValue
	}
	if req.DeliveryFee != "" {
		store.DeliveryFee = req.DeliveryFee
	}

	if err := h.storeRepo.Update(store); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update store"})
	}

	return c.JSON(http.StatusOK, store)
}
