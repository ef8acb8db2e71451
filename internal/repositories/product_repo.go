package repositories

import (
	"github.com/Caosezar/ApiCrud/internal/models"
)

// ProductRepository defines the interface for product data access.
//
// Implementations perform no validation and no defaulting: whatever the
// caller hands to Create/Update is persisted as-is. GetByID reports an
// absent row as (nil, nil), not as an error; Delete on an absent id is a
// no-op. Errors only surface for storage faults.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id int) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id int) error
}
