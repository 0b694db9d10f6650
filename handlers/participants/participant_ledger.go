package participants

import (
	"api/database"
	"api/metrics"
	"api/middleware"
	"api/models"
	"api/realtime"
	"api/services"
	"api/utils/response"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterForCompetition enters the caller (or, for admins, another user)
// into a competition
// @Summary Register for a competition
// @Description Enter a competition. A user holds at most one participant entry; registering again moves the entry to the new competition and releases any previous submissions. Admins may pass user_id to register somebody else.
// @Tags Participants
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration request"
// @Success 201 {object} models.Participant
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /participants [post]
// @Security Bearer
func RegisterForCompetition(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var req RegisterRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
        return
    }

    target := user
    if req.UserID != "" && req.UserID != user.ID {
        if !middleware.IsAdmin(user) {
            response.Error(c, http.StatusUnauthorized, ErrNoPermissionRegister)
            return
        }
        if err := database.DB.Preload("Role").First(&target, "id = ?", req.UserID).Error; err != nil {
            response.Error(c, http.StatusNotFound, ErrUserNotFound)
            return
        }
    }

    var competition models.Competition
    if err := database.DB.First(&competition, "id = ?", req.CompetitionID).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrCompetitionNotFound)
        return
    }

    // Competitions are scoped to a role; admins may override the gate
    if competition.RoleID != target.RoleID && !middleware.IsAdmin(user) {
        response.Error(c, http.StatusBadRequest, ErrRoleMismatch)
        return
    }

    var existing models.Participant
    if err := services.GetParticipantForUser(target.ID, &existing); err == nil {
        // Moving competitions resets the slate: submissions are released
        // and the score starts over
        if existing.CompetitionID != competition.ID {
            for _, path := range existing.UploadPaths {
                if err := Store.Remove(c.Request.Context(), path); err != nil {
                    log.Printf("Failed to release upload %s: %v", path, err)
                }
            }
            updates := map[string]interface{}{
                "competition_id": competition.ID,
                "upload_paths":   models.UploadPaths{},
                "total_marks":    0,
            }
            if err := database.DB.Model(&existing).Updates(updates).Error; err != nil {
                response.Error(c, http.StatusInternalServerError, ErrFailedRegister)
                return
            }
        }

        if err := database.DB.Preload("User").Preload("Competition").
            First(&existing, "id = ?", existing.ID).Error; err != nil {
            response.Error(c, http.StatusInternalServerError, ErrFailedRegister)
            return
        }
        c.JSON(http.StatusOK, gin.H{"message": "Registration updated", "participant": existing})
        return
    }

    participant := models.Participant{
        UserID:        target.ID,
        CompetitionID: competition.ID,
        UploadPaths:   models.UploadPaths{},
    }
    if err := database.DB.Create(&participant).Error; err != nil {
        // A concurrent registration for the same user loses the race on
        // the unique index and lands here
        if errors.Is(err, gorm.ErrDuplicatedKey) {
            response.Error(c, http.StatusBadRequest, ErrDuplicateParticipant)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrFailedRegister)
        return
    }

    if err := database.DB.Preload("User").Preload("Competition").
        First(&participant, "id = ?", participant.ID).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedRegister)
        return
    }

    c.JSON(http.StatusCreated, gin.H{"message": "Registered for competition", "participant": participant})
}

// GetAllParticipants lists every participant entry (admin only)
// @Summary Get all participants
// @Description Get all participant entries with their user and competition
// @Tags Participants
// @Produce json
// @Success 200 {array} models.Participant
// @Failure 401 {object} map[string]string
// @Router /participants [get]
// @Security Bearer
func GetAllParticipants(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }
    if !middleware.IsAdmin(user) {
        response.Error(c, http.StatusUnauthorized, ErrNoPermissionList)
        return
    }

    var participants []models.Participant
    if err := database.DB.Preload("User").Preload("Competition").Find(&participants).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedFetchParticipant)
        return
    }

    c.JSON(http.StatusOK, participants)
}

// GetParticipantByID retrieves a participant entry by ID
// @Summary Get a participant by ID
// @Description Get a participant entry; accessible to its owner and to admins
// @Tags Participants
// @Produce json
// @Param id path string true "Participant ID"
// @Success 200 {object} models.Participant
// @Failure 404 {object} map[string]string
// @Router /participants/{id} [get]
// @Security Bearer
func GetParticipantByID(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var participant models.Participant
    if err := database.DB.Preload("User").Preload("Competition").
        First(&participant, "id = ?", c.Param("id")).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrParticipantNotFound)
        return
    }

    if participant.UserID != user.ID && !middleware.IsAdmin(user) {
        response.Error(c, http.StatusUnauthorized, ErrNoPermissionView)
        return
    }

    c.JSON(http.StatusOK, participant)
}

// SubmitUploads attaches submission files to a participant entry
// @Summary Upload submission files
// @Description Attach submission media to a participant entry via multipart form field competition_image. Each file is capped at 20 MB and the running total is capped by the competition's upload quota.
// @Tags Participants
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Participant ID"
// @Param competition_image formData file true "Submission files"
// @Success 200 {object} models.Participant
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /participants/{id} [put]
// @Security Bearer
func SubmitUploads(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var participant models.Participant
    if err := database.DB.First(&participant, "id = ?", c.Param("id")).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrParticipantNotFound)
        return
    }

    if participant.UserID != user.ID && !middleware.IsAdmin(user) {
        response.Error(c, http.StatusUnauthorized, ErrNoPermissionUpload)
        return
    }

    var competition models.Competition
    if err := database.DB.First(&competition, "id = ?", participant.CompetitionID).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrCompetitionNotFound)
        return
    }

    form, err := c.MultipartForm()
    if err != nil {
        response.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
        return
    }
    files := form.File[uploadField]
    if len(files) == 0 {
        response.Error(c, http.StatusBadRequest, ErrNoFiles)
        return
    }

    for _, file := range files {
        if file.Size > MaxUploadFileSize {
            metrics.SubmissionsRejected.WithLabelValues("file_too_large").Inc()
            response.Error(c, http.StatusBadRequest,
                fmt.Sprintf("File %s exceeds the 20 MB limit", file.Filename))
            return
        }
    }

    quota := services.QuotaForCompetition(competition)
    if len(participant.UploadPaths)+len(files) > quota {
        metrics.SubmissionsRejected.WithLabelValues("quota_exceeded").Inc()
        response.Error(c, http.StatusBadRequest,
            fmt.Sprintf("Upload quota exceeded: this competition allows %d files", quota))
        return
    }

    paths := participant.UploadPaths
    for _, file := range files {
        path, err := Store.Save(c.Request.Context(), uploadDir, file)
        if err != nil {
            response.Error(c, http.StatusInternalServerError, ErrFailedStoreUpload)
            return
        }
        paths = append(paths, path)
    }

    if err := database.DB.Model(&participant).Update("upload_paths", paths).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedStoreUpload)
        return
    }
    metrics.SubmissionsStored.WithLabelValues(competition.Name).Add(float64(len(files)))

    if err := database.DB.Preload("User").Preload("Competition").
        First(&participant, "id = ?", participant.ID).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedFetchParticipant)
        return
    }

    c.JSON(http.StatusOK, gin.H{"message": "Files uploaded", "participant": participant})
}

// ScoreParticipant sets a participant's total marks (admin only)
// @Summary Score a participant
// @Description Set a participant's total marks. Marks are validated to the 0-100 range. The update is broadcast to the competition's live scoreboard.
// @Tags Participants
// @Accept json
// @Produce json
// @Param id path string true "Participant ID"
// @Param request body ScoreRequest true "Score request"
// @Success 200 {object} models.Participant
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /participants/{id}/score [put]
// @Security Bearer
func ScoreParticipant(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }
    if !middleware.IsAdmin(user) {
        response.Error(c, http.StatusUnauthorized, ErrNoPermissionScore)
        return
    }

    var req ScoreRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
        return
    }
    if *req.TotalMarks < 0 || *req.TotalMarks > 100 {
        response.Error(c, http.StatusBadRequest, ErrMarksOutOfRange)
        return
    }

    var participant models.Participant
    if err := database.DB.First(&participant, "id = ?", c.Param("id")).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrParticipantNotFound)
        return
    }

    if err := database.DB.Model(&participant).Update("total_marks", *req.TotalMarks).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, "Failed to update marks")
        return
    }

    if err := database.DB.Preload("User").Preload("Competition").
        First(&participant, "id = ?", participant.ID).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedFetchParticipant)
        return
    }

    realtime.BroadcastScoreUpdate(realtime.ScoreUpdate{
        CompetitionID: participant.CompetitionID,
        Participant:   participant,
        UpdateType:    "scored",
    })

    c.JSON(http.StatusOK, gin.H{"message": "Participant scored", "participant": participant})
}

// DeleteParticipant withdraws a participant entry
// @Summary Delete a participant
// @Description Withdraw a participant entry and release its stored submissions; accessible to its owner and to admins
// @Tags Participants
// @Produce json
// @Param id path string true "Participant ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /participants/{id} [delete]
// @Security Bearer
func DeleteParticipant(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var participant models.Participant
    if err := database.DB.First(&participant, "id = ?", c.Param("id")).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrParticipantNotFound)
        return
    }

    if participant.UserID != user.ID && !middleware.IsAdmin(user) {
        response.Error(c, http.StatusUnauthorized, ErrNoPermissionDelete)
        return
    }

    if err := database.DB.Delete(&participant).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, "Failed to delete participant")
        return
    }

    for _, path := range participant.UploadPaths {
        if err := Store.Remove(c.Request.Context(), path); err != nil {
            log.Printf("Failed to release upload %s: %v", path, err)
        }
    }

    realtime.BroadcastScoreUpdate(realtime.ScoreUpdate{
        CompetitionID: participant.CompetitionID,
        Participant:   participant,
        UpdateType:    "withdrawn",
    })

    c.JSON(http.StatusOK, gin.H{"message": "Participant deleted"})
}
