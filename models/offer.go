package models

import (
	"fmt"
	"time"
)

const (
	OfferTypeDay      = "DayOffer"
	OfferTypeFestival = "FestivalOffer"
)

// ValidateOfferType rejects anything outside the two known offer kinds.
func ValidateOfferType(t string) error {
	if t != OfferTypeDay && t != OfferTypeFestival {
		return fmt.Errorf("invalid offer type %q", t)
	}
	return nil
}

type Offer struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Type          string    `gorm:"type:varchar(20);not null" json:"type"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `json:"description"`
	Discount      float64   `gorm:"type:decimal(10,2)" json:"discount"`
	ValidTillText string    `json:"validTillText"`
	ValidTillDate time.Time `json:"validTillDate"`
	NumberOfUses  int       `gorm:"default:0" json:"numberOfUses"`
	// No gorm default: GORM drops zero-value fields with a default tag
	// from INSERTs, which would silently turn a false into true.
	IsActive bool `json:"isActive"`

	// qualifier depends on Type
	FestivalName *string `json:"festivalName"`
	DayName      *string `json:"dayName"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
