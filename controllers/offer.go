// controllers/offer.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"barbershop-backend/config"
	"barbershop-backend/models"
	"barbershop-backend/repository"
	"barbershop-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OfferInput struct {
	ID            uint      `json:"id"`
	Type          string    `json:"type" binding:"required"`
	Name          string    `json:"name" binding:"required"`
	Description   string    `json:"description"`
	Discount      float64   `json:"discount" binding:"min=0,max=100"`
	ValidTillText string    `json:"validTillText"`
	ValidTillDate time.Time `json:"validTillDate"`
	NumberOfUses  int       `json:"numberOfUses" binding:"omitempty,min=0"`
	IsActive      bool      `json:"isActive"`
	FestivalName  *string   `json:"festivalName"`
	DayName       *string   `json:"dayName"`
}

// OfferController manages promotions. Reads are public; mutations require
// any authenticated user (not Admin — see the route table).
type OfferController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewOfferController(db *gorm.DB, cfg *config.Config) *OfferController {
	return &OfferController{DB: db, Cfg: cfg}
}

func (oc *OfferController) GetOffers(c *gin.Context) {
	offers, err := repository.ListOffers(oc.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve offers")
		return
	}

	c.JSON(http.StatusOK, offers)
}

func (oc *OfferController) GetOffer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	offer, err := repository.FindOfferByID(oc.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Offer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, offer)
}

func (oc *OfferController) CreateOffer(c *gin.Context) {
	var input OfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := models.ValidateOfferType(input.Type); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	offer := models.Offer{
		Type:          input.Type,
		Name:          input.Name,
		Description:   input.Description,
		Discount:      input.Discount,
		ValidTillText: input.ValidTillText,
		ValidTillDate: input.ValidTillDate,
		NumberOfUses:  input.NumberOfUses,
		IsActive:      input.IsActive,
		FestivalName:  input.FestivalName,
		DayName:       input.DayName,
	}

	if err := repository.CreateOffer(oc.DB, &offer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create offer")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Offer created successfully",
		"offer":   offer,
	})
}

func (oc *OfferController) UpdateOffer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input OfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.ID != 0 && input.ID != id {
		utils.RespondWithError(c, http.StatusBadRequest, "Offer ID mismatch")
		return
	}

	if err := models.ValidateOfferType(input.Type); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	offer, err := repository.FindOfferByID(oc.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Offer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	offer.Type = input.Type
	offer.Name = input.Name
	offer.Description = input.Description
	offer.Discount = input.Discount
	offer.ValidTillText = input.ValidTillText
	offer.ValidTillDate = input.ValidTillDate
	offer.NumberOfUses = input.NumberOfUses
	offer.IsActive = input.IsActive
	offer.FestivalName = input.FestivalName
	offer.DayName = input.DayName
	offer.UpdatedAt = time.Now().UTC()

	rows, err := repository.SaveOffer(oc.DB, offer)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update offer")
		return
	}
	if rows == 0 {
		if _, err := repository.FindOfferByID(oc.DB, id); errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Offer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update offer")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Offer updated successfully",
		"offer":   offer,
	})
}

func (oc *OfferController) DeleteOffer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rows, err := repository.DeleteOffer(oc.DB, id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete offer")
		return
	}
	if rows == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Offer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Offer deleted successfully"})
}

// ToggleOfferActive flips the active flag and stamps the update time.
func (oc *OfferController) ToggleOfferActive(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	offer, err := repository.FindOfferByID(oc.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Offer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	offer.IsActive = !offer.IsActive
	offer.UpdatedAt = time.Now().UTC()

	if _, err := repository.SaveOffer(oc.DB, offer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update offer")
		return
	}

	state := "Inactive"
	if offer.IsActive {
		state = "Active"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Offer is now " + state,
		"offer":   offer,
	})
}
