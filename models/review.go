package models

import (
	"time"
)

type CustomerReview struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Review string `gorm:"type:varchar(500);not null" json:"review"`
	Rating int    `gorm:"not null" json:"rating"` // 1..5

	Image   string `json:"image"`
	Comment string `json:"comment"`
	Advice  string `json:"advice"`

	// Always set from the caller's token claims, never from the request body.
	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
