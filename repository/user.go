// Package repository holds the named query functions the controllers call.
// Each function takes the database handle explicitly so it can be exercised
// against a test database without an HTTP layer.
package repository

import (
	"errors"

	"barbershop-backend/models"

	"gorm.io/gorm"
)

func CreateUser(db *gorm.DB, user *models.User) error {
	return db.Create(user).Error
}

func FindUserByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailTaken reports whether any user already holds the email.
func EmailTaken(db *gorm.DB, email string) (bool, error) {
	_, err := FindUserByEmail(db, email)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

func SaveUser(db *gorm.DB, user *models.User) error {
	return db.Save(user).Error
}
