package models

import (
	"time"
)

// CartItem links one user to one catalog service. At most one row per
// (user, service) pair; duplicate adds are rejected, not merged.
type CartItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_user_service,priority:1" json:"userId"`
	ServiceID uint `gorm:"not null;uniqueIndex:idx_user_service,priority:2" json:"serviceId"`

	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Service Service `gorm:"foreignKey:ServiceID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}
