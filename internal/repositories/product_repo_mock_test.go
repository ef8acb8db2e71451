package repositories_test

import (
	"testing"
	"time"

	"github.com/Caosezar/ApiCrud/internal/models"
	"github.com/Caosezar/ApiCrud/internal/repositories"
)

// The in-memory repository must honor the same store contract as the GORM
// implementation: ids are assigned on Create, absent rows read as
// (nil, nil) and deleting an absent id is a no-op.

func TestMockProductRepository_CreateAssignsID(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	now := time.Now().UTC()
	first := &models.Product{Name: "Mouse", Price: 50, IsAvailable: true, CreatedAt: now, UpdatedAt: now}
	second := &models.Product{Name: "Keyboard", Price: 100, IsAvailable: true, CreatedAt: now, UpdatedAt: now}

	if err := repo.Create(first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.Create(second); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if first.ID == 0 {
		t.Fatal("expected assigned id on the passed-in product")
	}
	if second.ID == first.ID {
		t.Fatalf("expected distinct ids, both got %d", first.ID)
	}

	products, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
}

func TestMockProductRepository_GetByIDAbsent(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	found, err := repo.GetByID(9999)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if found != nil {
		t.Fatalf("expected no result for absent id, got %+v", found)
	}
}

func TestMockProductRepository_UpdateOverwrites(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	product := &models.Product{Name: "Keyboard", Price: 100, StockQuantity: 10}
	if err := repo.Create(product); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	product.Name = "Keyboard V2"
	product.StockQuantity = 0
	if err := repo.Update(product); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	found, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if found.Name != "Keyboard V2" {
		t.Errorf("expected updated name, got %q", found.Name)
	}
	if found.StockQuantity != 0 {
		t.Errorf("expected zero stock to be persisted, got %d", found.StockQuantity)
	}
}

func TestMockProductRepository_DeleteAbsentIsNoop(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	if err := repo.Delete(9999); err != nil {
		t.Fatalf("Delete() on absent id should be a no-op, got error %v", err)
	}
}
