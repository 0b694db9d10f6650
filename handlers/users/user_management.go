package users

import (
	"api/database"
	"api/metrics"
	"api/middleware"
	"api/models"
	"api/utils"
	"api/utils/response"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAllUsers retrieves all users
// @Summary Get all users
// @Description Get all users with their roles (admin only)
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Failure 401 {object} map[string]string
// @Router /users [get]
// @Security Bearer
func GetAllUsers(c *gin.Context) {
    start := time.Now()

    var users []models.User
    if err := database.DB.Preload("Role").Find(&users).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedFetchUsers)
        return
    }
    metrics.RecordDBOperation("select", "users", start)

    for i := range users {
        users[i].Password = ""
    }

    c.JSON(http.StatusOK, users)
}

// GetUserByID retrieves a user by ID
// @Summary Get a user by ID
// @Description Get a user with their role (admin only)
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]string
// @Router /users/{id} [get]
// @Security Bearer
func GetUserByID(c *gin.Context) {
    userID := c.Param("id")

    var user models.User
    if err := database.DB.Preload("Role").First(&user, "id = ?", userID).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrUserNotFound)
        return
    }

    user.Password = ""
    c.JSON(http.StatusOK, user)
}

// CreateUser creates a new user account
// @Summary Create a user
// @Description Manually add a user with a role (admin only)
// @Tags Users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User data"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]string
// @Router /users [post]
// @Security Bearer
func CreateUser(c *gin.Context) {
    var req CreateUserRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    var role models.Role
    if err := database.DB.First(&role, "id = ?", req.RoleID).Error; err != nil {
        response.Error(c, http.StatusBadRequest, ErrRoleNotFound)
        return
    }

    hashedPassword, err := utils.HashPassword(req.Password)
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToHashPassword)
        return
    }

    user := models.User{
        Name:     req.Name,
        Phone:    req.Phone,
        Password: hashedPassword,
        RoleID:   role.ID,
    }
    if req.Email != "" {
        user.Email = &req.Email
    }

    if err := database.DB.Create(&user).Error; err != nil {
        if errors.Is(err, gorm.ErrDuplicatedKey) {
            response.Error(c, http.StatusBadRequest, ErrPhoneInUse)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrFailedCreateUser)
        return
    }

    if err := database.DB.Preload("Role").First(&user, "id = ?", user.ID).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedCreateUser)
        return
    }
    user.Password = ""

    c.JSON(http.StatusCreated, user)
}

// UpdateUser updates a user by ID
// @Summary Update a user
// @Description Update a user's profile, role and optionally password (admin only)
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body UpdateUserRequest true "User update data"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id} [put]
// @Security Bearer
func UpdateUser(c *gin.Context) {
    userID := c.Param("id")

    var user models.User
    if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrUserNotFound)
        return
    }

    var req UpdateUserRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    var role models.Role
    if err := database.DB.First(&role, "id = ?", req.RoleID).Error; err != nil {
        response.Error(c, http.StatusBadRequest, ErrRoleNotFound)
        return
    }

    updatedFields := map[string]interface{}{
        "name":    req.Name,
        "phone":   req.Phone,
        "role_id": role.ID,
    }
    if req.Email != "" {
        updatedFields["email"] = req.Email
    }
    if req.Password != "" {
        hashedPassword, err := utils.HashPassword(req.Password)
        if err != nil {
            response.Error(c, http.StatusInternalServerError, ErrFailedToHashPassword)
            return
        }
        updatedFields["password"] = hashedPassword
    }

    if err := database.DB.Model(&user).Updates(updatedFields).Error; err != nil {
        if errors.Is(err, gorm.ErrDuplicatedKey) {
            response.Error(c, http.StatusBadRequest, ErrPhoneInUse)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrFailedUpdateUser)
        return
    }

    middleware.InvalidateUserCache(c.Request.Context(), user.ID)

    if err := database.DB.Preload("Role").First(&user, "id = ?", userID).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedUpdateUser)
        return
    }
    user.Password = ""

    c.JSON(http.StatusOK, user)
}

// DeleteUser deletes a user and cascades their participation
// @Summary Delete a user
// @Description Delete a user; their participant entry and its stored submission media are released as well (admin only)
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id} [delete]
// @Security Bearer
func DeleteUser(c *gin.Context) {
    userID := c.Param("id")

    var user models.User
    if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrUserNotFound)
        return
    }

    // Release the participant's stored media before dropping the rows
    var participant models.Participant
    hasParticipant := database.DB.Where("user_id = ?", userID).First(&participant).Error == nil

    tx := database.DB.Begin()

    if hasParticipant {
        if err := tx.Delete(&participant).Error; err != nil {
            tx.Rollback()
            response.Error(c, http.StatusInternalServerError, ErrFailedDeleteUser)
            return
        }
    }

    if err := tx.Where("user_id = ?", userID).Delete(&models.PasswordReset{}).Error; err != nil {
        tx.Rollback()
        response.Error(c, http.StatusInternalServerError, ErrFailedDeleteUser)
        return
    }

    if err := tx.Delete(&user).Error; err != nil {
        tx.Rollback()
        response.Error(c, http.StatusInternalServerError, ErrFailedDeleteUser)
        return
    }

    if err := tx.Commit().Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedTxCommit)
        return
    }

    if hasParticipant && Store != nil {
        for _, path := range participant.UploadPaths {
            if err := Store.Remove(c.Request.Context(), path); err != nil {
                // The record is gone; an orphaned file is only log-worthy
                log.Printf("Failed to release upload %s: %v", path, err)
            }
        }
    }

    middleware.InvalidateUserCache(c.Request.Context(), userID)

    c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
