// controllers/service.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"barbershop-backend/config"
	"barbershop-backend/models"
	"barbershop-backend/repository"
	"barbershop-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateServiceInput is the multipart form for creating or replacing a
// catalog service. The image part is read separately via FormFile.
type CreateServiceInput struct {
	Name              string  `form:"name" binding:"required"`
	Price             float64 `form:"price" binding:"min=0"`
	DurationInMinutes int     `form:"durationInMinutes" binding:"required,min=1"`
	Category          string  `form:"category"`
	Offer             int     `form:"offer" binding:"omitempty,min=0,max=100"`
	Description       string  `form:"description"`
}

// ServiceController manages the public catalog. Reads are anonymous; writes
// are Admin-only, enforced by the route table.
type ServiceController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewServiceController(db *gorm.DB, cfg *config.Config) *ServiceController {
	return &ServiceController{DB: db, Cfg: cfg}
}

// GetServices lists the whole catalog.
func (sc *ServiceController) GetServices(c *gin.Context) {
	services, err := repository.ListServices(sc.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetService retrieves a specific service by ID
func (sc *ServiceController) GetService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	service, err := repository.FindServiceByID(sc.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// CreateService adds a catalog entry, with an optional image upload.
func (sc *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil && file != nil {
		if err := utils.ValidateImage(file); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		stored, err := utils.SaveImage(c, file, sc.Cfg.UploadDir, utils.UploadKindServices)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store image")
			return
		}
		imageURL = utils.AbsoluteURL(c, stored)
	}

	service := models.Service{
		Name:              input.Name,
		Price:             input.Price,
		DurationInMinutes: input.DurationInMinutes,
		Category:          input.Category,
		Offer:             input.Offer,
		Description:       input.Description,
		ImageUrl:          imageURL,
		CreatedBy:         utils.CurrentEmail(c),
	}

	if err := repository.CreateService(sc.DB, &service); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// UpdateService replaces the mutable fields and optionally the image.
func (sc *ServiceController) UpdateService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input CreateServiceInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := repository.FindServiceByID(sc.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	service.Name = input.Name
	service.Price = input.Price
	service.DurationInMinutes = input.DurationInMinutes
	service.Category = input.Category
	service.Offer = input.Offer
	service.Description = input.Description
	service.UpdatedBy = utils.CurrentEmail(c)
	now := time.Now().UTC()
	service.UpdatedAt = &now

	if file, err := c.FormFile("image"); err == nil && file != nil {
		if err := utils.ValidateImage(file); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		stored, err := utils.SaveImage(c, file, sc.Cfg.UploadDir, utils.UploadKindServices)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store image")
			return
		}
		// Old image cleanup happens after the new file is accepted and
		// never blocks the update.
		utils.DeleteImage(sc.Cfg.UploadDir, utils.UploadKindServices, service.ImageUrl)
		service.ImageUrl = utils.AbsoluteURL(c, stored)
	}

	rows, err := repository.SaveService(sc.DB, service)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}
	if rows == 0 {
		// Row vanished between load and save. Deleted concurrently reads
		// as not found; anything else is a server error.
		if _, err := repository.FindServiceByID(sc.DB, id); errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService removes the row and best-effort deletes the stored image.
func (sc *ServiceController) DeleteService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	service, err := repository.FindServiceByID(sc.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	rows, err := repository.DeleteService(sc.DB, id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if rows == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	utils.DeleteImage(sc.Cfg.UploadDir, utils.UploadKindServices, service.ImageUrl)

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ID format")
		return 0, false
	}
	return uint(id), true
}
