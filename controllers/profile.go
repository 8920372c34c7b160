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

type UpdateProfileInput struct {
	FullName        string     `form:"fullName" binding:"required"`
	Username        string     `form:"username"`
	Password        string     `form:"password" binding:"omitempty,min=6"`
	ConfirmPassword string     `form:"confirmPassword" binding:"omitempty,eqfield=Password"`
	Age             *int       `form:"age" binding:"omitempty,min=1,max=120"`
	DateOfBirth     *time.Time `form:"dateOfBirth" time_format:"2006-01-02"`
	MobileNumber    string     `form:"mobileNumber"`
	Bio             string     `form:"bio" binding:"omitempty,max=250"`
	Location        string     `form:"location"`
	State           string     `form:"state"`
	PinCode         string     `form:"pinCode"`
	Email           string     `form:"email" binding:"omitempty,email"`
	Gender          string     `form:"gender" binding:"omitempty,oneof=Male Female Other"`
}

// ProfileController serves the self-service profile endpoints. Both routes
// carry an :id, but a caller can only ever reach their own row; any other id
// reads as not found.
type ProfileController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProfileController(db *gorm.DB, cfg *config.Config) *ProfileController {
	return &ProfileController{DB: db, Cfg: cfg}
}

func (pc *ProfileController) GetProfile(c *gin.Context) {
	user, ok := pc.ownProfile(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User profile fetched successfully",
		"user":    profileDTO(c, user),
	})
}

func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	user, ok := pc.ownProfile(c)
	if !ok {
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.MobileNumber != "" && !utils.ValidatePhone(input.MobileNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid contact number")
		return
	}

	if input.Email != "" && input.Email != user.Email {
		taken, err := repository.EmailTaken(pc.DB, input.Email)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		if taken {
			utils.RespondWithError(c, http.StatusBadRequest, "Email already exists")
			return
		}
		user.Email = input.Email
	}

	user.FullName = input.FullName
	user.Username = input.Username
	user.Age = input.Age
	user.DateOfBirth = input.DateOfBirth
	user.ContactNumber = input.MobileNumber
	user.Bio = input.Bio
	user.Location = input.Location
	user.State = input.State
	user.PinCode = input.PinCode
	user.Gender = input.Gender
	// Role is deliberately untouched: it is never client-settable.

	if input.Password != "" {
		hashed, err := utils.HashPassword(input.Password)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		user.PasswordHash = hashed
	}

	if file, err := c.FormFile("avatar"); err == nil && file != nil {
		if err := utils.ValidateImage(file); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		stored, err := utils.SaveImage(c, file, pc.Cfg.UploadDir, utils.UploadKindAvatars)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store avatar")
			return
		}
		// Old avatar cleanup never blocks the update.
		utils.DeleteImage(pc.Cfg.UploadDir, utils.UploadKindAvatars, user.Avatar)
		user.Avatar = stored
	}

	now := time.Now().UTC()
	user.UpdatedAt = &now

	if err := repository.SaveUser(pc.DB, user); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    profileDTO(c, user),
	})
}

// ownProfile resolves the :id route param against the caller's identity and
// loads the row. A valid id belonging to someone else answers 404, the same
// as an unknown id, so existence is never confirmed to the wrong caller.
func (pc *ProfileController) ownProfile(c *gin.Context) (*models.User, bool) {
	callerID, exists := utils.CurrentUserID(c)
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return nil, false
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return nil, false
	}

	if uint(id) != callerID {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return nil, false
	}

	user, err := repository.FindUserByID(pc.DB, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}

	return user, true
}

func profileDTO(c *gin.Context, user *models.User) gin.H {
	return gin.H{
		"id":            user.ID,
		"fullName":      user.FullName,
		"username":      user.Username,
		"email":         user.Email,
		"contactNumber": user.ContactNumber,
		"avatar":        utils.AbsoluteURL(c, user.Avatar),
		"role":          user.Role,
		"age":           user.Age,
		"dateOfBirth":   user.DateOfBirth,
		"bio":           user.Bio,
		"location":      user.Location,
		"state":         user.State,
		"pinCode":       user.PinCode,
		"gender":        user.Gender,
		"createdAt":     user.CreatedAt,
		"updatedAt":     user.UpdatedAt,
	}
}
