package services

import (
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Caosezar/ApiCrud/internal/models"
	"github.com/Caosezar/ApiCrud/internal/repositories"
	"github.com/Caosezar/ApiCrud/pkg/rabbitmq"
)

const maxProductNameLength = 200

// EventPublisher publishes product lifecycle events. The RabbitMQ client
// implements it; tests and broker-less deployments pass nil or a mock.
type EventPublisher interface {
	PublishProductEvent(event rabbitmq.ProductEvent) error
}

// ProductService handles business logic related to products. It is the
// gatekeeper for every product mutation: validation and defaulting happen
// here and nowhere else.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher
}

// NewProductService creates a new ProductService. events may be nil.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID. The result is
// (nil, nil) when no product with that ID exists.
func (s *ProductService) GetProductByID(id int) (*models.Product, error) {
	if id <= 0 {
		return nil, newValidationError("product id must be a positive integer")
	}
	return s.repo.GetByID(id)
}

// CreateProduct validates the request, applies defaults and persists a new
// product. Validation fails fast on the first violated rule.
func (s *ProductService) CreateProduct(req *models.CreateProductRequest) (*models.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, newValidationError("product name must not be empty")
	}
	if utf8.RuneCountInString(req.Name) > maxProductNameLength {
		return nil, newValidationError("product name must not exceed 200 characters")
	}
	if req.Price < 0 {
		return nil, newValidationError("product price must not be negative")
	}
	if req.StockQuantity != nil && *req.StockQuantity < 0 {
		return nil, newValidationError("product stock quantity must not be negative")
	}

	now := time.Now().UTC()
	product := &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: 0,
		CategoryID:    req.CategoryID,
		IsAvailable:   true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.IsAvailable != nil {
		product.IsAvailable = *req.IsAvailable
	}

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	s.publishEvent(rabbitmq.EventProductCreated, product.ID)
	return product, nil
}

// UpdateProduct overwrites the mutable fields of an existing product.
// It returns ErrProductNotFound when no product with that ID exists.
//
// Unlike CreateProduct, the stock quantity is not re-checked for
// negativity here; only the name and price rules apply on update.
func (s *ProductService) UpdateProduct(id int, req *models.UpdateProductRequest) (*models.Product, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, newValidationError("product name must not be empty")
	}
	if req.Price < 0 {
		return nil, newValidationError("product price must not be negative")
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Price = req.Price
	existing.StockQuantity = 0
	if req.StockQuantity != nil {
		existing.StockQuantity = *req.StockQuantity
	}
	existing.IsAvailable = true
	if req.IsAvailable != nil {
		existing.IsAvailable = *req.IsAvailable
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}

	s.publishEvent(rabbitmq.EventProductUpdated, existing.ID)
	return existing, nil
}

// DeleteProduct removes a product by its ID. It reports whether a product
// was actually deleted; deleting an absent ID is (false, nil), not an
// error.
func (s *ProductService) DeleteProduct(id int) (bool, error) {
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

	s.publishEvent(rabbitmq.EventProductDeleted, id)
	return true, nil
}

// publishEvent sends a lifecycle event on a best-effort basis. Broker
// failures are logged and never surfaced to the API caller.
func (s *ProductService) publishEvent(eventType string, productID int) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishProductEvent(rabbitmq.NewProductEvent(eventType, productID)); err != nil {
		log.Printf("Failed to publish %s event for product %d: %v", eventType, productID, err)
	}
}
