package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Caosezar/ApiCrud/internal/models"
	"github.com/Caosezar/ApiCrud/internal/services"
)

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id int) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestCategoryService_GetAllCategories(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)

	expectedCategories := []models.Category{
		{ID: 1, Name: "Peripherals"},
		{ID: 2, Name: "Audio"},
	}

	mockRepo.On("GetAll").Return(expectedCategories, nil).Once()

	categories, err := service.GetAllCategories()

	assert.NoError(t, err)
	assert.Equal(t, expectedCategories, categories)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_GetCategoryByID_InvalidID(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)

	category, err := service.GetCategoryByID(0)

	assert.Nil(t, category)
	var valErr *services.ValidationError
	assert.ErrorAs(t, err, &valErr)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)

	existing := &models.Category{ID: 1, Name: "Peripherals"}

	mockRepo.On("GetByID", 1).Return(existing, nil).Once()
	mockRepo.On("Delete", 1).Return(nil).Once()

	deleted, err := service.DeleteCategory(1)

	assert.NoError(t, err)
	assert.True(t, deleted)
	mockRepo.AssertExpectations(t)

	// Absent id is not performed, not an error
	mockRepo.On("GetByID", 42).Return(nil, nil).Once()
	deleted, err = service.DeleteCategory(42)
	assert.NoError(t, err)
	assert.False(t, deleted)
	mockRepo.AssertExpectations(t)
}
