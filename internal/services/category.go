package services

import (
	"errors"

	"github.com/Ndzin77/cardapiodigitalteste/internal/repo"
	"github.com/Ndzin77/cardapiodigitalteste/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryService struct {
	categoryRepo *repo.CategoryRepository
}

func NewCategoryService(categoryRepo *repo.CategoryRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
	}
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(storeID uuid.UUID, req *models.CreateCategoryRequest) (*models.Category, error) {
	// Check if category with the same name already exists
	existing, err := s.categoryRepo.FindExistingCategory(storeID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("categoria com este nome já existe")
	}

	category := &models.Category{
		BaseStoreModel: models.BaseStoreModel{
			StoreID: storeID,
		},
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		IsActive:    true,
		SortOrder:   req.SortOrder,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}

	return category, nil
}

// UpdateCategory updates an existing category
func (s *CategoryService) UpdateCategory(storeID, id uuid.UUID, req *models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(storeID, id)
	if err != nil {
		return nil, err
	}

	// Check if another category with the same name exists
	if req.Name != "" && req.Name != category.Name {
		existing, err := s.categoryRepo.FindExistingCategory(storeID, req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, errors.New("categoria com este nome já existe")
		}
		category.Name = req.Name
	}

	if req.Description != nil {
		category.Description = *req.Description
	}

	if req.Image != nil {
		category.Image = *req.Image
	}

	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory deletes a category
func (s *CategoryService) DeleteCategory(storeID, id uuid.UUID) error {
	// Check if category exists
	_, err := s.categoryRepo.GetByID(storeID, id)
	if err != nil {
		return err
	}

	// Check if there are products using this category
	count, err := s.categoryRepo.CountProducts(storeID, id)
	if err != nil {
		return err
	}

	if count > 0 {
		return errors.New("não é possível excluir categoria que possui produtos")
	}

	return s.categoryRepo.Delete(storeID, id)
}

// GetCategoryByID gets a category by ID
func (s *CategoryService) GetCategoryByID(storeID, id uuid.UUID) (*models.Category, error) {
	return s.categoryRepo.GetByID(storeID, id)
}

// ListCategories gets all categories for a store
func (s *CategoryService) ListCategories(storeID uuid.UUID) ([]models.Category, error) {
	return s.categoryRepo.List(storeID)
}

// ListActiveCategories gets only active categories for the public storefront
func (s *CategoryService) ListActiveCategories(storeID uuid.UUID) ([]models.Category, error) {
	return s.categoryRepo.ListActive(storeID)
}
