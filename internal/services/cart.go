package services

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Ndzin77/cardapiodigitalteste/internal/repo"
	"github.com/Ndzin77/cardapiodigitalteste/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartService struct {
	cartRepo    *repo.CartRepository
	productRepo *repo.ProductRepository
}

func NewCartService(cartRepo *repo.CartRepository, productRepo *repo.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// CreateCart creates an empty cart for the storefront session
func (s *CartService) CreateCart(storeID uuid.UUID) (*models.Cart, error) {
	cart := &models.Cart{
		BaseStoreModel: models.BaseStoreModel{
			StoreID: storeID,
		},
		Status:      "active",
		TotalAmount: "0",
	}

	if err := s.cartRepo.Create(cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// GetCart loads a cart with its items
func (s *CartService) GetCart(storeID, cartID uuid.UUID) (*models.Cart, error) {
	return s.cartRepo.GetByID(storeID, cartID)
}

// AddItem adds a product to the cart, merging quantities when the
// product is already there. The product name, description, SKU and
// price are snapshotted into the item so later catalog edits do not
// change a cart the customer already built.
func (s *CartService) AddItem(storeID, cartID uuid.UUID, req *models.AddCartItemRequest) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByID(storeID, cartID)
	if err != nil {
		return nil, err
	}

	if cart.Status != "active" {
		return nil, errors.New("carrinho não está mais ativo")
	}

	product, err := s.productRepo.GetByID(storeID, req.ProductID)
	if err != nil {
		return nil, errors.New("produto não encontrado")
	}

	if !product.IsActive {
		return nil, errors.New("produto indisponível")
	}

	price := product.Price
	if product.SalePrice != "" {
		price = product.SalePrice
	}

	existing, err := s.cartRepo.FindItemByProduct(cart.ID, product.ID)
	switch {
	case err == nil:
		existing.Quantity += req.Quantity
		existing.Price = price
		if err := s.cartRepo.UpdateItem(existing); err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item := &models.CartItem{
			BaseStoreModel: models.BaseStoreModel{
				StoreID: storeID,
			},
			CartID:             cart.ID,
			ProductID:          &product.ID,
			Quantity:           req.Quantity,
			Price:              price,
			ProductName:        &product.Name,
			ProductDescription: &product.Description,
			ProductSKU:         &product.SKU,
		}
		if err := s.cartRepo.CreateItem(item); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := s.refreshTotals(cart); err != nil {
		return nil, err
	}

	return s.cartRepo.GetByID(storeID, cartID)
}

// UpdateItemQuantity changes the quantity of a cart item
func (s *CartService) UpdateItemQuantity(storeID, cartID, itemID uuid.UUID, quantity int) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByID(storeID, cartID)
	if err != nil {
		return nil, err
	}

	item, err := s.cartRepo.GetItem(cart.ID, itemID)
	if err != nil {
		return nil, errors.New("item não encontrado no carrinho")
	}

	item.Quantity = quantity
	if err := s.cartRepo.UpdateItem(item); err != nil {
		return nil, err
	}

	if err := s.refreshTotals(cart); err != nil {
		return nil, err
	}

	return s.cartRepo.GetByID(storeID, cartID)
}

// RemoveItem removes an item from the cart
func (s *CartService) RemoveItem(storeID, cartID, itemID uuid.UUID) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByID(storeID, cartID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.DeleteItem(cart.ID, itemID); err != nil {
		return nil, err
	}

	if err := s.refreshTotals(cart); err != nil {
		return nil, err
	}

	return s.cartRepo.GetByID(storeID, cartID)
}

// refreshTotals recomputes the cart total and item count from its items
func (s *CartService) refreshTotals(cart *models.Cart) error {
	items, err := s.cartRepo.ListItems(cart.ID)
	if err != nil {
		return err
	}

	cart.TotalAmount, cart.ItemsCount = cartTotals(items)
	return s.cartRepo.Update(cart)
}

// cartTotals sums item prices and quantities. Items whose price does
// not parse are skipped from the total but still counted.
func cartTotals(items []models.CartItem) (string, int) {
	total := 0.0
	count := 0
	for _, item := range items {
		count += item.Quantity
		price, err := strconv.ParseFloat(item.Price, 64)
		if err != nil {
			continue
		}
		total += price * float64(item.Quantity)
	}
	return fmt.Sprintf("%.2f", total), count
}
