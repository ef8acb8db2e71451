package services

import (
	"github.com/Caosezar/ApiCrud/internal/models"
	"github.com/Caosezar/ApiCrud/internal/repositories"
)

// CategoryService handles business logic related to categories. Categories
// are a thin grouping surface; field validation happens at the handler via
// struct tags.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// GetCategoryByID retrieves a single category by its ID, or (nil, nil)
// when absent.
func (s *CategoryService) GetCategoryByID(id int) (*models.Category, error) {
	if id <= 0 {
		return nil, newValidationError("category id must be a positive integer")
	}
	return s.repo.GetByID(id)
}

// CreateCategory persists a new category.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	return s.repo.Create(category)
}

// DeleteCategory removes a category by its ID. Products referencing it
// keep existing with their category cleared by the store. Deleting an
// absent ID is (false, nil).
func (s *CategoryService) DeleteCategory(id int) (bool, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	if err := s.repo.Delete(id); err != nil {
		return false, err
	}
	return true, nil
}
