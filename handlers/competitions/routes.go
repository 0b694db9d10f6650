package competitions

import (
	"api/middleware"
	"api/services"
	"api/utils/access"

	"github.com/gin-gonic/gin"
)

// Store is the upload relay holding competition images and, through the
// participant cascade, submission media. Wired at startup.
var Store services.FileStore

// RegisterRoutes registers all routes related to competitions
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	competitions := r.Group("/competitions")
	{
		competitions.GET("", GetAllCompetitions)
		competitions.GET("/:id", GetCompetitionByID)
		competitions.GET("/:id/scoreboard/ws", CompetitionScoreboard)

		admin := competitions.Group("", middleware.RequireTag(access.TagAdmin))
		{
			admin.POST("", CreateCompetition)
			admin.PUT("/:id", UpdateCompetition)
			admin.DELETE("/:id", DeleteCompetition)
			admin.GET("/:id/export", ExportCompetitionResults)
		}
	}
}
