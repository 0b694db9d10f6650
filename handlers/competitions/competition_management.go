package competitions

import (
	"api/database"
	"api/models"
	"api/services"
	"api/utils/response"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetAllCompetitions retrieves all competitions
// @Summary Get all competitions
// @Description Get all competitions with their entry role
// @Tags Competitions
// @Produce json
// @Success 200 {array} models.Competition
// @Failure 401 {object} map[string]string
// @Router /competitions [get]
// @Security Bearer
func GetAllCompetitions(c *gin.Context) {
    var competitions []models.Competition
    if err := database.DB.Preload("Role").Find(&competitions).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedFetchCompetitions)
        return
    }

    c.JSON(http.StatusOK, competitions)
}

// GetCompetitionByID retrieves a competition by ID
// @Summary Get a competition by ID
// @Description Get a competition with its entry role and prizes
// @Tags Competitions
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {object} models.Competition
// @Failure 404 {object} map[string]string
// @Router /competitions/{id} [get]
// @Security Bearer
func GetCompetitionByID(c *gin.Context) {
    competitionID := c.Param("id")

    var competition models.Competition
    if err := database.DB.Preload("Role").Preload("Prizes").First(&competition, "id = ?", competitionID).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrCompetitionNotFound)
        return
    }

    c.JSON(http.StatusOK, competition)
}

// CreateCompetition creates a new competition
// @Summary Create a competition
// @Description Create a competition from a multipart form with an optional image. When upload_quota is omitted it defaults by category (photography 15, otherwise 3). Admin only.
// @Tags Competitions
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Competition name"
// @Param role_id formData string true "Role allowed to enter"
// @Param is_team_based formData bool false "Team based"
// @Param requires_upload formData bool false "Requires upload"
// @Param upload_quota formData int false "Maximum submission files per participant"
// @Param competition_image formData file false "Competition image"
// @Success 201 {object} models.Competition
// @Failure 400 {object} map[string]string
// @Router /competitions [post]
// @Security Bearer
func CreateCompetition(c *gin.Context) {
    form, err := bindCompetitionForm(c)
    if err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }
    if form.Name == "" || form.RoleID == "" {
        response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
        return
    }

    var role models.Role
    if err := database.DB.First(&role, "id = ?", form.RoleID).Error; err != nil {
        response.Error(c, http.StatusBadRequest, ErrRoleNotFound)
        return
    }

    // The quota is stored explicitly; the category name only seeds the
    // default when the form omits it
    quota := form.UploadQuota
    if quota == 0 {
        quota = services.DefaultQuotaForName(form.Name)
    }

    competition := models.Competition{
        Name:           form.Name,
        RoleID:         role.ID,
        IsTeamBased:    form.IsTeamBased,
        RequiresUpload: form.RequiresUpload,
        UploadQuota:    quota,
    }

    if file, err := c.FormFile(competitionImageField); err == nil {
        path, err := Store.Save(c.Request.Context(), imageDir, file)
        if err != nil {
            response.Error(c, http.StatusInternalServerError, ErrFailedStoreImage)
            return
        }
        competition.ImagePath = &path
    }

    if err := database.DB.Create(&competition).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedCreateCompetition)
        return
    }

    if err := database.DB.Preload("Role").First(&competition, "id = ?", competition.ID).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedCreateCompetition)
        return
    }

    c.JSON(http.StatusCreated, gin.H{"message": "Competition created", "competition": competition})
}

// UpdateCompetition updates a competition by ID
// @Summary Update a competition
// @Description Update a competition from a multipart form. A new image replaces the previous one, which is deleted from storage first. Admin only.
// @Tags Competitions
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {object} models.Competition
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /competitions/{id} [put]
// @Security Bearer
func UpdateCompetition(c *gin.Context) {
    competitionID := c.Param("id")

    var competition models.Competition
    if err := database.DB.First(&competition, "id = ?", competitionID).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrCompetitionNotFound)
        return
    }

    form, err := bindCompetitionForm(c)
    if err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }
    if form.Name == "" || form.RoleID == "" {
        response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
        return
    }

    var role models.Role
    if err := database.DB.First(&role, "id = ?", form.RoleID).Error; err != nil {
        response.Error(c, http.StatusBadRequest, ErrRoleNotFound)
        return
    }

    updatedFields := map[string]interface{}{
        "name":            form.Name,
        "role_id":         role.ID,
        "is_team_based":   form.IsTeamBased,
        "requires_upload": form.RequiresUpload,
    }
    if form.UploadQuota > 0 {
        updatedFields["upload_quota"] = form.UploadQuota
    }

    // A replacement image releases the previous one before storing
    if file, err := c.FormFile(competitionImageField); err == nil {
        if competition.ImagePath != nil {
            if err := Store.Remove(c.Request.Context(), *competition.ImagePath); err != nil {
                log.Printf("Failed to release previous competition image %s: %v", *competition.ImagePath, err)
            }
        }
        path, err := Store.Save(c.Request.Context(), imageDir, file)
        if err != nil {
            response.Error(c, http.StatusInternalServerError, ErrFailedStoreImage)
            return
        }
        updatedFields["image_path"] = path
    }

    if err := database.DB.Model(&competition).Updates(updatedFields).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedUpdateCompetition)
        return
    }

    if err := database.DB.Preload("Role").First(&competition, "id = ?", competitionID).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedUpdateCompetition)
        return
    }

    c.JSON(http.StatusOK, gin.H{"message": "Competition updated", "competition": competition})
}

// DeleteCompetition deletes a competition and its dependents
// @Summary Delete a competition
// @Description Delete a competition; its prizes, participant entries, stored image and stored submission media go with it. Admin only.
// @Tags Competitions
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /competitions/{id} [delete]
// @Security Bearer
func DeleteCompetition(c *gin.Context) {
    competitionID := c.Param("id")

    var competition models.Competition
    if err := database.DB.First(&competition, "id = ?", competitionID).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrCompetitionNotFound)
        return
    }

    // Collect participant media before the rows disappear
    var participants []models.Participant
    if err := database.DB.Where("competition_id = ?", competitionID).Find(&participants).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedDeleteCompetition)
        return
    }

    tx := database.DB.Begin()

    if err := tx.Where("competition_id = ?", competitionID).Delete(&models.Prize{}).Error; err != nil {
        tx.Rollback()
        response.Error(c, http.StatusInternalServerError, ErrFailedDeleteCompetition)
        return
    }

    if err := tx.Where("competition_id = ?", competitionID).Delete(&models.Participant{}).Error; err != nil {
        tx.Rollback()
        response.Error(c, http.StatusInternalServerError, ErrFailedDeleteCompetition)
        return
    }

    if err := tx.Delete(&competition).Error; err != nil {
        tx.Rollback()
        response.Error(c, http.StatusInternalServerError, ErrFailedDeleteCompetition)
        return
    }

    if err := tx.Commit().Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedDeleteCompetition)
        return
    }

    // Release stored media once the rows are gone
    if competition.ImagePath != nil {
        if err := Store.Remove(c.Request.Context(), *competition.ImagePath); err != nil {
            log.Printf("Failed to release competition image %s: %v", *competition.ImagePath, err)
        }
    }
    for _, participant := range participants {
        for _, path := range participant.UploadPaths {
            if err := Store.Remove(c.Request.Context(), path); err != nil {
                log.Printf("Failed to release upload %s: %v", path, err)
            }
        }
    }

    c.JSON(http.StatusOK, gin.H{"message": "Competition deleted"})
}
