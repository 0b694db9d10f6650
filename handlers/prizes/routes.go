package prizes

import (
	"api/middleware"
	"api/utils/access"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to prizes
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	prizes := r.Group("/prizes")
	{
		prizes.GET("", GetAllPrizes)
		prizes.GET("/:id", GetPrizeByID)

		admin := prizes.Group("")
		admin.Use(middleware.RequireTag(access.TagAdmin))
		{
			admin.POST("", CreatePrize)
			admin.PUT("/:id", UpdatePrize)
			admin.DELETE("/:id", DeletePrize)
		}
	}
}
