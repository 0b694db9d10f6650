package users

import (
	"api/middleware"
	"api/services"
	"api/utils/access"

	"github.com/gin-gonic/gin"
)

// Store is the upload relay used to release a deleted user's submission
// media. Wired at startup; tests substitute a fake.
var Store services.FileStore

// RegisterRoutes registers all routes related to user management
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	users := r.Group("/users")
	{
		users.GET("/profile", GetUserProfile)
		users.PUT("/profile", UpdateUserProfile)
		users.PUT("/profile/password", UpdateUserPassword)

		admin := users.Group("", middleware.RequireTag(access.TagAdmin))
		{
			admin.GET("", GetAllUsers)
			admin.POST("", CreateUser)
			admin.POST("/import", ImportUsersFromXLSX)
			admin.GET("/:id", GetUserByID)
			admin.PUT("/:id", UpdateUser)
			admin.DELETE("/:id", DeleteUser)
		}
	}
}
