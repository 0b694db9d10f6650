package participants

import (
	"api/services"

	"github.com/gin-gonic/gin"
)

// Store is the upload relay holding submission media. Wired at startup;
// tests substitute a fake.
var Store services.FileStore

// RegisterRoutes registers all routes related to the participant ledger
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	participants := r.Group("/participants")
	{
		participants.POST("", RegisterForCompetition)
		participants.GET("", GetAllParticipants)
		participants.GET("/:id", GetParticipantByID)
		participants.PUT("/:id", SubmitUploads)
		participants.PUT("/:id/score", ScoreParticipant)
		participants.DELETE("/:id", DeleteParticipant)
	}
}
