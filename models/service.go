package models

import (
	"time"
)

// Service is a catalog item (haircut, shave, ...). Readable by anyone,
// writable by Admins only.
type Service struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	Name              string  `gorm:"not null" json:"name"`
	Price             float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationInMinutes int     `json:"durationInMinutes"`
	Category          string  `gorm:"default:'General'" json:"category"`
	Offer             int     `gorm:"default:0" json:"offer"` // promotional percentage
	Description       string  `json:"description"`
	ImageUrl          string  `json:"imageUrl"`

	CreatedAt time.Time  `json:"createdAt"`
	CreatedBy string     `json:"createdBy"`
	UpdatedAt *time.Time `json:"updatedAt"`
	UpdatedBy string     `json:"updatedBy"`
}
