package repository

import (
	"barbershop-backend/models"

	"gorm.io/gorm"
)

func ListServices(db *gorm.DB) ([]models.Service, error) {
	var services []models.Service
	if err := db.Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func FindServiceByID(db *gorm.DB, id uint) (*models.Service, error) {
	var service models.Service
	if err := db.First(&service, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func CreateService(db *gorm.DB, service *models.Service) error {
	return db.Create(service).Error
}

// SaveService writes back a loaded service row. The affected-row count lets
// the caller detect a row that vanished between load and save.
func SaveService(db *gorm.DB, service *models.Service) (int64, error) {
	result := db.Save(service)
	return result.RowsAffected, result.Error
}

func DeleteService(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&models.Service{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
