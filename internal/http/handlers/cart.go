package handlers

import (
	"net/http"

	"github.com/Ndzin77/cardapiodigitalteste/internal/http/middleware"
	"github.com/Ndzin77/cardapiodigitalteste/internal/services"
	"github.com/Ndzin77/cardapiodigitalteste/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// Create godoc
// @Summary Create cart
// @Description Create an empty cart for the storefront session
// @Tags cart
// @Produce json
// @Param tag path string true "Store tag"
// @Success 201 {object} models.Cart
// @Failure 500 {object} map[string]string
// @Router /store/{tag}/carts [post]
func (h *CartHandler) Create(c echo.Context) error {
	sc := middleware.GetStoreContext(c)

	cart, err := h.cartService.CreateCart(sc.StoreID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create cart"})
	}

	return c.JSON(http.StatusCreated, cart)
}

// GetByID godoc
// @Summary Get cart
// @Description Get a cart with its items
// @Tags cart
// @Produce json
// @Param tag path string true "Store tag"
// @Param id path string true "Cart ID"
// @Success 200 {object} models.Cart
// @Failure 404 {object} map[string]string
// @Router /store/{tag}/carts/{id} [get]
func (h *CartHandler) GetByID(c echo.Context) error {
	sc := middleware.GetStoreContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid cart ID"})
	}

	cart, err := h.cartService.GetCart(sc.StoreID, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "cart not found"})
	}

	return c.JSON(http.StatusOK, cart)
}

// AddItem godoc
// @Summary Add item to cart
// @Description Add a product to the cart, merging quantities when it is already there
// @Tags cart
// @Accept json
// @Produce json
// @Param tag path string true "Store tag"
// @Param id path string true "Cart ID"
// @Param item body models.AddCartItemRequest true "Item data"
// @Success 200 {object} models.Cart
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /store/{tag}/carts/{id}/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	sc := middleware.GetStoreContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid cart ID"})
	}

	var req models.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	cart, err := h.cartService.AddItem(sc.StoreID, id, &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, cart)
}

// UpdateItem godoc
// @Summary Update cart item quantity
// @Description Change the quantity of an item already in the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param tag path string true "Store tag"
// @Param id path string true "Cart ID"
// @Param item_id path string true "Cart item ID"
// @Param item body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Cart
// @Failure 400 {object} map[string]string
// @Router /store/{tag}/carts/{id}/items/{item_id} [put]
func (h *CartHandler) UpdateItem(c echo.Context) error {
	sc := middleware.GetStoreContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid cart ID"})
	}

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid item ID"})
	}

	var req models.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	cart, err := h.cartService.UpdateItemQuantity(sc.StoreID, id, itemID, req.Quantity)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, cart)
}

// RemoveItem godoc
// @Summary Remove cart item
// @Description Remove an item from the cart
// @Tags cart
// @Produce json
// @Param tag path string true "Store tag"
// @Param id path string true "Cart ID"
// @Param item_id path string true "Cart item ID"
// @Success 200 {object} models.Cart
// @Failure 400 {object} map[string]string
// @Router /store/{tag}/carts/{id}/items/{item_id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	sc := middleware.GetStoreContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid cart ID"})
	}

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid item ID"})
	}

	cart, err := h.cartService.RemoveItem(sc.StoreID, id, itemID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, cart)
}
