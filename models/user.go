package models

import (
	"time"
)

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	FullName     string `gorm:"not null" json:"fullName"`
	Username     string `json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	ContactNumber string `json:"contactNumber"`
	Avatar        string `json:"avatar"`

	// 'Admin' or 'User'; never client-settable after creation
	Role string `gorm:"type:varchar(20);not null;default:'User'" json:"role"`

	Age         *int       `json:"age"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Bio         string     `json:"bio"`
	Location    string     `json:"location"`
	State       string     `json:"state"`
	PinCode     string     `json:"pinCode"`
	Gender      string     `json:"gender"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`

	Reviews []CustomerReview `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
