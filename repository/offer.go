package repository

import (
	"time"

	"barbershop-backend/models"

	"gorm.io/gorm"
)

func ListOffers(db *gorm.DB) ([]models.Offer, error) {
	var offers []models.Offer
	if err := db.Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

func FindOfferByID(db *gorm.DB, id uint) (*models.Offer, error) {
	var offer models.Offer
	if err := db.First(&offer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &offer, nil
}

func CreateOffer(db *gorm.DB, offer *models.Offer) error {
	return db.Create(offer).Error
}

func SaveOffer(db *gorm.DB, offer *models.Offer) (int64, error) {
	result := db.Save(offer)
	return result.RowsAffected, result.Error
}

func DeleteOffer(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&models.Offer{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

// ListActiveOffers returns offers that are flagged active and not past their
// validity date. Used by the birthday notifier.
func ListActiveOffers(db *gorm.DB, now time.Time) ([]models.Offer, error) {
	var offers []models.Offer
	err := db.Where("is_active = ? AND valid_till_date >= ?", true, now).Find(&offers).Error
	if err != nil {
		return nil, err
	}
	return offers, nil
}
