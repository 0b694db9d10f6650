package users

import (
	"api/database"
	"api/middleware"
	"api/utils"
	"api/utils/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetUserProfile retrieves the authenticated user's profile
// @Summary Get User Profile
// @Description Get the profile information of the authenticated user
// @Tags Users
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /users/profile [get]
// @Security Bearer
func GetUserProfile(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    // Hide password from response for security
    user.Password = ""

    c.JSON(http.StatusOK, user)
}

// UpdateUserProfile updates the authenticated user's profile
// @Summary Update User Profile
// @Description Update the profile information of the authenticated user
// @Tags Users
// @Accept json
// @Produce json
// @Param user body ProfileUpdateRequest true "User Profile"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users/profile [put]
// @Security Bearer
func UpdateUserProfile(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    var req ProfileUpdateRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    // Update only allowed fields; the role is never self-served
    updatedFields := map[string]interface{}{
        "name":  req.Name,
        "phone": req.Phone,
    }
    if req.Email != "" {
        updatedFields["email"] = req.Email
    }

    if err := database.DB.Model(&user).Updates(updatedFields).Error; err != nil {
        if errors.Is(err, gorm.ErrDuplicatedKey) {
            response.Error(c, http.StatusBadRequest, ErrPhoneInUse)
            return
        }
        response.Error(c, http.StatusInternalServerError, "Failed to update profile")
        return
    }

    // Invalidate the cached session record
    middleware.InvalidateUserCache(c.Request.Context(), user.ID)

    if err := database.DB.Preload("Role").First(&user, "id = ?", user.ID).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, "Profile updated but failed to retrieve updated data")
        return
    }
    user.Password = ""

    c.JSON(http.StatusOK, user)
}

// UpdateUserPassword updates the current user's password
// @Summary Update User Password
// @Description Update the password of the current user
// @Tags Users
// @Accept json
// @Produce json
// @Param passwords body PasswordUpdate true "Password Update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users/profile/password [put]
// @Security Bearer
func UpdateUserPassword(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    var passwordUpdate PasswordUpdate
    if err := c.ShouldBindJSON(&passwordUpdate); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    if !utils.CheckPasswordHash(passwordUpdate.CurrentPassword, user.Password) {
        response.Error(c, http.StatusUnauthorized, "Current password is incorrect")
        return
    }

    // Validate password strength
    if len(passwordUpdate.NewPassword) < 8 {
        response.Error(c, http.StatusBadRequest, "New password must be at least 8 characters long")
        return
    }

    hashedPassword, err := utils.HashPassword(passwordUpdate.NewPassword)
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToHashPassword)
        return
    }

    if err := database.DB.Model(&user).Update("password", hashedPassword).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, "Failed to update password")
        return
    }

    middleware.InvalidateUserCache(c.Request.Context(), user.ID)

    c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
