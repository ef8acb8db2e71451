package repositories

import "github.com/Caosezar/ApiCrud/internal/models"

// CategoryRepository defines the interface for category data access.
// Same contract as ProductRepository: no validation, absent rows are
// (nil, nil), Delete on an absent id is a no-op.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id int) (*models.Category, error)
	Create(category *models.Category) error
	Delete(id int) error
}
