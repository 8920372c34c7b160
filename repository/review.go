package repository

import (
	"barbershop-backend/models"

	"gorm.io/gorm"
)

func ListReviews(db *gorm.DB) ([]models.CustomerReview, error) {
	var reviews []models.CustomerReview
	err := db.Preload("User").Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func FindReviewByID(db *gorm.DB, id uint) (*models.CustomerReview, error) {
	var review models.CustomerReview
	if err := db.Preload("User").First(&review, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func ListReviewsByUser(db *gorm.DB, userID uint) ([]models.CustomerReview, error) {
	var reviews []models.CustomerReview
	err := db.Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func CreateReview(db *gorm.DB, review *models.CustomerReview) error {
	return db.Create(review).Error
}

// DeleteReviewOwned deletes the review only when it belongs to the user.
func DeleteReviewOwned(db *gorm.DB, userID, id uint) (int64, error) {
	result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.CustomerReview{})
	return result.RowsAffected, result.Error
}
