package roles

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the read-only role reference routes. Roles
// are seeded at startup and never mutated through the API.
func RegisterRoutes(r *gin.RouterGroup) {

	roles := r.Group("/roles")
	{
		roles.GET("", GetAllRoles)
		roles.GET("/:role_id", GetRoleByID)
	}
}
