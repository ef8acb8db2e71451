package models

import "time"

// Category groups products. Deleting a category does not delete its
// products; the foreign key on Product nulls out instead.
type Category struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	Description string    `json:"description,omitempty" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
