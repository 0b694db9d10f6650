package roles

import (
	"api/database"
	"api/models"
	"api/utils/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

const ErrRoleNotFound = "Role not found"

// GetAllRoles retrieves all roles
// @Summary Get all Roles
// @Description Get the static role reference data (admin, school_student, college_student)
// @Tags Roles
// @Produce json
// @Success 200 {array} models.Role
// @Router /roles [get]
func GetAllRoles(c *gin.Context) {
    var roles []models.Role
    if err := database.DB.Find(&roles).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, "Failed to fetch roles")
        return
    }

    c.JSON(http.StatusOK, roles)
}

// GetRoleByID retrieves a role by its ID
// @Summary Get a Role by ID
// @Description Get a Role by ID
// @Tags Roles
// @Produce json
// @Param role_id path string true "Role ID"
// @Success 200 {object} models.Role
// @Failure 404 {object} map[string]string
// @Router /roles/{role_id} [get]
func GetRoleByID(c *gin.Context) {
    roleID := c.Param("role_id")

    var role models.Role
    if err := database.DB.First(&role, "id = ?", roleID).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrRoleNotFound)
        return
    }

    c.JSON(http.StatusOK, role)
}
