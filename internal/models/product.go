package models

import "time"

// Product represents a product in the catalog.
//
// CreatedAt and UpdatedAt are owned by the service layer, which stamps them
// in UTC; GORM's automatic timestamp tracking is therefore disabled so the
// stored values are exactly what the service decided.
type Product struct {
	ID            int       `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"type:varchar(200);not null;index"`
	Description   string    `json:"description,omitempty" gorm:"type:varchar(1000)"`
	Price         float64   `json:"price" gorm:"type:decimal(18,2);not null"`
	StockQuantity int       `json:"stockQuantity" gorm:"not null;default:0"`
	CategoryID    *int      `json:"categoryId,omitempty"`
	Category      *Category `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	IsAvailable   bool      `json:"isAvailable"`
	CreatedAt     time.Time `json:"createdAt" gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time `json:"updatedAt" gorm:"autoUpdateTime:false"`
}

// CreateProductRequest is the write payload for creating a product.
// Optional fields are pointers so that "absent" is distinguishable from the
// zero value; the service resolves them to concrete defaults.
type CreateProductRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity *int    `json:"stockQuantity"`
	CategoryID    *int    `json:"categoryId"`
	IsAvailable   *bool   `json:"isAvailable"`
}

// UpdateProductRequest is the write payload for updating a product.
// The category assignment is not part of the update surface.
type UpdateProductRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity *int    `json:"stockQuantity"`
	IsAvailable   *bool   `json:"isAvailable"`
}
