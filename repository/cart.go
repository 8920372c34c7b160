package repository

import (
	"barbershop-backend/models"

	"gorm.io/gorm"
)

// Every cart query filters by the owning user id in addition to any primary
// key, so one caller can never see or touch another caller's rows.

func ListCartItems(db *gorm.DB, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := db.Preload("Service").Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func FindCartItem(db *gorm.DB, userID, id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := db.Preload("Service").Where("id = ? AND user_id = ?", id, userID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// CartItemExists reports whether the user already has the service in their
// cart.
func CartItemExists(db *gorm.DB, userID, serviceID uint) (bool, error) {
	var count int64
	err := db.Model(&models.CartItem{}).
		Where("user_id = ? AND service_id = ?", userID, serviceID).
		Count(&count).Error
	return count > 0, err
}

func CreateCartItem(db *gorm.DB, item *models.CartItem) error {
	return db.Create(item).Error
}

func DeleteCartItem(db *gorm.DB, userID, id uint) (int64, error) {
	result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

// ClearCart removes every item owned by the user in one statement.
func ClearCart(db *gorm.DB, userID uint) (int64, error) {
	result := db.Where("user_id = ?", userID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}
