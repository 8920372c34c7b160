// controllers/review.go
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

type CreateReviewInput struct {
	Review  string `json:"review" binding:"required,max=500"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Image   string `json:"image"`
	Comment string `json:"comment"`
	Advice  string `json:"advice"`
}

// ReviewDTO carries a review with the denormalized author block the
// frontend displays.
type ReviewDTO struct {
	ID        uint      `json:"id"`
	Review    string    `json:"review"`
	Rating    int       `json:"rating"`
	Image     string    `json:"image"`
	Comment   string    `json:"comment"`
	Advice    string    `json:"advice"`
	CreatedAt time.Time `json:"createdAt"`

	UserID       uint   `json:"userId"`
	UserFullName string `json:"userFullName"`
	UserAvatar   string `json:"userAvatar"`
}

// ReviewController: reads are public, writes belong to the caller. The owner
// id always comes from token claims, never from the request body.
type ReviewController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewReviewController(db *gorm.DB, cfg *config.Config) *ReviewController {
	return &ReviewController{DB: db, Cfg: cfg}
}

func (rc *ReviewController) GetReviews(c *gin.Context) {
	reviews, err := repository.ListReviews(rc.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	c.JSON(http.StatusOK, reviewDTOs(c, reviews))
}

func (rc *ReviewController) GetReview(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	review, err := repository.FindReviewByID(rc.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Review not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, reviewDTO(c, review))
}

// GetMyReviews lists the reviews the caller wrote.
func (rc *ReviewController) GetMyReviews(c *gin.Context) {
	userID, exists := utils.CurrentUserID(c)
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	reviews, err := repository.ListReviewsByUser(rc.DB, userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	c.JSON(http.StatusOK, reviewDTOs(c, reviews))
}

func (rc *ReviewController) CreateReview(c *gin.Context) {
	userID, exists := utils.CurrentUserID(c)
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	review := models.CustomerReview{
		Review:  input.Review,
		Rating:  input.Rating,
		Image:   input.Image,
		Comment: input.Comment,
		Advice:  input.Advice,
		UserID:  userID,
	}

	if err := repository.CreateReview(rc.DB, &review); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create review")
		return
	}

	// Reload so the author block is populated in the response.
	created, err := repository.FindReviewByID(rc.DB, review.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load created review")
		return
	}

	c.JSON(http.StatusCreated, reviewDTO(c, created))
}

func (rc *ReviewController) DeleteReview(c *gin.Context) {
	userID, exists := utils.CurrentUserID(c)
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rows, err := repository.DeleteReviewOwned(rc.DB, userID, id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete review")
		return
	}
	if rows == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Review not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

func reviewDTO(c *gin.Context, review *models.CustomerReview) ReviewDTO {
	return ReviewDTO{
		ID:           review.ID,
		Review:       review.Review,
		Rating:       review.Rating,
		Image:        review.Image,
		Comment:      review.Comment,
		Advice:       review.Advice,
		CreatedAt:    review.CreatedAt,
		UserID:       review.UserID,
		UserFullName: review.User.FullName,
		UserAvatar:   utils.AbsoluteURL(c, review.User.Avatar),
	}
}

func reviewDTOs(c *gin.Context, reviews []models.CustomerReview) []ReviewDTO {
	dtos := make([]ReviewDTO, 0, len(reviews))
	for i := range reviews {
		dtos = append(dtos, reviewDTO(c, &reviews[i]))
	}
	return dtos
}
