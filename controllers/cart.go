// controllers/cart.go
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

// CartItemDTO flattens a cart row with its service for the frontend.
type CartItemDTO struct {
	ID              uint    `json:"id"`
	ServiceID       uint    `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	ServiceImageUrl string    `json:"serviceImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CartController serves the caller's own cart. Every operation is scoped to
// the authenticated identity; rows owned by anyone else read as not found.
type CartController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCartController(db *gorm.DB, cfg *config.Config) *CartController {
	return &CartController{DB: db, Cfg: cfg}
}

func (cc *CartController) GetCartItems(c *gin.Context) {
	userID, exists := utils.CurrentUserID(c)
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	items, err := repository.ListCartItems(cc.DB, userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve cart")
		return
	}

	dtos := make([]CartItemDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, cartItemDTO(&items[i]))
	}

	c.JSON(http.StatusOK, dtos)
}

// AddToCart puts a service into the caller's cart. A duplicate add for the
// same service is a business-rule conflict, not a merge.
func (cc *CartController) AddToCart(c *gin.Context) {
	userID, exists := utils.CurrentUserID(c)
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("serviceId"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	service, err := repository.FindServiceByID(cc.DB, uint(serviceID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	duplicate, err := repository.CartItemExists(cc.DB, userID, service.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if duplicate {
		utils.RespondWithError(c, http.StatusBadRequest, "Service already in cart")
		return
	}

	item := models.CartItem{
		UserID:    userID,
		ServiceID: service.ID,
	}
	if err := repository.CreateCartItem(cc.DB, &item); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add to cart")
		return
	}

	item.Service = *service
	c.JSON(http.StatusCreated, cartItemDTO(&item))
}

func (cc *CartController) GetCartItem(c *gin.Context) {
	userID, exists := utils.CurrentUserID(c)
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	item, err := repository.FindCartItem(cc.DB, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Cart item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, cartItemDTO(item))
}

func (cc *CartController) DeleteCartItem(c *gin.Context) {
	userID, exists := utils.CurrentUserID(c)
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rows, err := repository.DeleteCartItem(cc.DB, userID, id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete cart item")
		return
	}
	if rows == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Cart item not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
}

// ClearCart removes every item the caller owns in one statement.
func (cc *CartController) ClearCart(c *gin.Context) {
	userID, exists := utils.CurrentUserID(c)
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	if _, err := repository.ClearCart(cc.DB, userID); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

func cartItemDTO(item *models.CartItem) CartItemDTO {
	return CartItemDTO{
		ID:              item.ID,
		ServiceID:       item.ServiceID,
		ServiceName:     item.Service.Name,
		ServicePrice:    item.Service.Price,
		ServiceImageUrl: item.Service.ImageUrl,
		CreatedAt:       item.CreatedAt,
	}
}
