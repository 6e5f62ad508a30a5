package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Ndzin77/cardapiodigitalteste/internal/http/middleware"
	"github.com/Ndzin77/cardapiodigitalteste/internal/repo"
	"github.com/Ndzin77/cardapiodigitalteste/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	productRepo *repo.ProductRepository
}

func NewProductHandler(productRepo *repo.ProductRepository) *ProductHandler {
	return &ProductHandler{
		productRepo: productRepo,
	}
}

// pagination extracts page/per_page query params with the usual defaults
func pagination(c echo.Context) (page, perPage, offset int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ = strconv.Atoi(c.QueryParam("per_page"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return page, perPage, (page - 1) * perPage
}

func paginate(total int64, perPage int) int {
	totalPages := int(total) / perPage
	if int(total)%perPage != 0 {
		totalPages++
	}
	return totalPages
}

// ListPublic godoc
// @Summary List storefront products
// @Description Get the active products of a public store, optionally filtered by category
// @Tags storefront
// @Produce json
// @Param tag path string true "Store tag"
// @Param category_id query string false "Category ID"
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Success 200 {object} models.PaginationResult[models.Product]
// @Failure 500 {object} map[string]string
// @Router /store/{tag}/products [get]
func (h *ProductHandler) ListPublic(c echo.Context) error {
	sc := middleware.GetStoreContext(c)
	page, perPage, offset := pagination(c)

	var categoryID *uuid.UUID
	if raw := c.QueryParam("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid category ID"})
		}
		categoryID = &id
	}

	products, total, err := h.productRepo.List(sc.StoreID, categoryID, true, perPage, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch products"})
	}

	return c.JSON(http.StatusOK, models.PaginationResult[models.Product]{
		Data:       products,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: paginate(total, perPage),
	})
}

// SearchPublic godoc
// @Summary Search storefront products
// @Description Full text search over the active products of a public store
// @Tags storefront
// @Produce json
// @Param tag path string true "Store tag"
// @Param q query string true "Search term"
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Success 200 {object} models.PaginationResult[models.Product]
// @Failure 400 {object} map[string]string
// @Router /store/{tag}/products/search [get]
func (h *ProductHandler) SearchPublic(c echo.Context) error {
	sc := middleware.GetStoreContext(c)
	page, perPage, offset := pagination(c)

	term := strings.TrimSpace(c.QueryParam("q"))
	if term == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "search term is required"})
	}

	products, total, err := h.productRepo.Search(sc.StoreID, term, perPage, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to search products"})
	}

	return c.JSON(http.StatusOK, models.PaginationResult[models.Product]{
		Data:       products,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: paginate(total, perPage),
	})
}

// GetPublicByID godoc
// @Summary Get storefront product
// @Description Get one product of a public store
// @Tags storefront
// @Produce json
// @Param tag path string true "Store tag"
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]string
// @Router /store/{tag}/products/{id} [get]
func (h *ProductHandler) GetPublicByID(c echo.Context) error {
	sc := middleware.GetStoreContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid product ID"})
	}

	product, err := h.productRepo.GetByID(sc.StoreID, id)
	if err != nil || !product.IsActive {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "product not found"})
	}

	return c.JSON(http.StatusOK, product)
}

// List godoc
// @Summary List products
// @Description Get all products of the authenticated store with pagination
// @Tags products
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Success 200 {object} models.PaginationResult[models.Product]
// @Failure 500 {object} map[string]string
// @Router /products [get]
// @Security BearerAuth
func (h *ProductHandler) List(c echo.Context) error {
	storeID := c.Get("store_id").(uuid.UUID)
	page, perPage, offset := pagination(c)

	products, total, err := h.productRepo.List(storeID, nil, false, perPage, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch products"})
	}

	return c.JSON(http.StatusOK, models.PaginationResult[models.Product]{
		Data:       products,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: paginate(total, perPage),
	})
}

// GetByID godoc
// @Summary Get product by ID
// @Description Get a specific product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
// @Security BearerAuth
func (h *ProductHandler) GetByID(c echo.Context) error {
	storeID := c.Get("store_id").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid product ID"})
	}

	product, err := h.productRepo.GetByID(storeID, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "product not found"})
	}

	return c.JSON(http.StatusOK, product)
}

// Create godoc
// @Summary Create product
// @Description Create a new product
// @Tags products
// @Accept json
// @Produce json
// @Param product body models.CreateProductRequest true "Product data"
// @Success 201 {object} models.Product
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /products [post]
// @Security BearerAuth
func (h *ProductHandler) Create(c echo.Context) error {
	storeID := c.Get("store_id").(uuid.UUID)

	var req models.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	sku := req.SKU
	if sku == "" {
		sku = uuid.New().String()
	}

	product := &models.Product{
		BaseStoreModel: models.BaseStoreModel{
			StoreID: storeID,
		},
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		SalePrice:   req.SalePrice,
		SKU:         sku,
		Image:       req.Image,
		Tags:        req.Tags,
		IsActive:    true,
		SortOrder:   req.SortOrder,
	}

	if err := h.productRepo.Create(product); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create product"})
	}

	return c.JSON(http.StatusCreated, product)
}

// Update godoc
// @Summary Update product
// @Description Update an existing product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body models.UpdateProductRequest true "Product data"
// @Success 200 {object} models.Product
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [put]
// @Security BearerAuth
func (h *ProductHandler) Update(c echo.Context) error {
	storeID := c.Get("store_id").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid product ID"})
	}

	product, err := h.productRepo.GetByID(storeID, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "product not found"})
	}

	var req models.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Price != "" {
		product.Price = req.Price
	}
	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.SalePrice != nil {
		product.SalePrice = *req.SalePrice
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Tags != nil {
		product.Tags = *req.Tags
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		product.SortOrder = *req.SortOrder
	}

	if err := h.productRepo.Update(product); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update product"})
	}

	return c.JSON(http.StatusOK, product)
}

// Delete godoc
// @Summary Delete product
// @Description Soft delete a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /products/{id} [delete]
// @Security BearerAuth
func (h *ProductHandler) Delete(c echo.Context) error {
	storeID := c.Get("store_id").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid product ID"})
	}

	if err := h.productRepo.Delete(storeID, id); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete product"})
	}

	return c.NoContent(http.StatusNoContent)
}
