package prizes

import (
	"api/database"
	"api/models"
	"api/utils"
	"api/utils/response"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

// GetAllPrizes lists prizes, optionally filtered to one competition
// @Summary Get all prizes
// @Description Get prizes ordered by the leading number of their rank label; labels without a number sort last. Filter with ?competition_id=.
// @Tags Prizes
// @Produce json
// @Param competition_id query string false "Competition ID"
// @Success 200 {array} models.Prize
// @Failure 500 {object} map[string]string
// @Router /prizes [get]
// @Security Bearer
func GetAllPrizes(c *gin.Context) {
    query := database.DB.Preload("Competition")
    if competitionID := c.Query("competition_id"); competitionID != "" {
        query = query.Where("competition_id = ?", competitionID)
    }

    var prizes []models.Prize
    if err := query.Find(&prizes).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedFetchPrizes)
        return
    }

    // Rank labels are free-form text, so the display order cannot come
    // from the database
    sort.SliceStable(prizes, func(i, j int) bool {
        return utils.RankOrder(prizes[i].Rank) < utils.RankOrder(prizes[j].Rank)
    })

    c.JSON(http.StatusOK, prizes)
}

// GetPrizeByID retrieves a prize by ID
// @Summary Get a prize by ID
// @Description Get a prize with its competition
// @Tags Prizes
// @Produce json
// @Param id path string true "Prize ID"
// @Success 200 {object} models.Prize
// @Failure 404 {object} map[string]string
// @Router /prizes/{id} [get]
// @Security Bearer
func GetPrizeByID(c *gin.Context) {
    var prize models.Prize
    if err := database.DB.Preload("Competition").First(&prize, "id = ?", c.Param("id")).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrPrizeNotFound)
        return
    }

    c.JSON(http.StatusOK, prize)
}

// CreatePrize creates a new prize (admin only)
// @Summary Create a prize
// @Description Create a prize for a competition rank
// @Tags Prizes
// @Accept json
// @Produce json
// @Param request body PrizeRequest true "Prize request"
// @Success 201 {object} models.Prize
// @Failure 400 {object} map[string]string
// @Router /prizes [post]
// @Security Bearer
func CreatePrize(c *gin.Context) {
    var req PrizeRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
        return
    }
    if req.Amount.IsNegative() {
        response.Error(c, http.StatusBadRequest, ErrNegativeAmount)
        return
    }

    var competition models.Competition
    if err := database.DB.First(&competition, "id = ?", req.CompetitionID).Error; err != nil {
        response.Error(c, http.StatusBadRequest, ErrCompetitionNotFound)
        return
    }

    prize := models.Prize{
        CompetitionID: competition.ID,
        Rank:          req.Rank,
        Amount:        req.Amount,
    }
    if err := database.DB.Create(&prize).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedCreatePrize)
        return
    }

    c.JSON(http.StatusCreated, gin.H{"message": "Prize created", "prize": prize})
}

// UpdatePrize updates a prize by ID (admin only)
// @Summary Update a prize
// @Description Update a prize's competition, rank and amount
// @Tags Prizes
// @Accept json
// @Produce json
// @Param id path string true "Prize ID"
// @Param request body PrizeRequest true "Prize request"
// @Success 200 {object} models.Prize
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /prizes/{id} [put]
// @Security Bearer
func UpdatePrize(c *gin.Context) {
    var prize models.Prize
    if err := database.DB.First(&prize, "id = ?", c.Param("id")).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrPrizeNotFound)
        return
    }

    var req PrizeRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
        return
    }
    if req.Amount.IsNegative() {
        response.Error(c, http.StatusBadRequest, ErrNegativeAmount)
        return
    }

    var competition models.Competition
    if err := database.DB.First(&competition, "id = ?", req.CompetitionID).Error; err != nil {
        response.Error(c, http.StatusBadRequest, ErrCompetitionNotFound)
        return
    }

    updates := map[string]interface{}{
        "competition_id": competition.ID,
        "rank":           req.Rank,
        "amount":         req.Amount,
    }
    if err := database.DB.Model(&prize).Updates(updates).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedUpdatePrize)
        return
    }

    c.JSON(http.StatusOK, gin.H{"message": "Prize updated", "prize": prize})
}

// DeletePrize deletes a prize by ID (admin only)
// @Summary Delete a prize
// @Description Delete a prize
// @Tags Prizes
// @Produce json
// @Param id path string true "Prize ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /prizes/{id} [delete]
// @Security Bearer
func DeletePrize(c *gin.Context) {
    var prize models.Prize
    if err := database.DB.First(&prize, "id = ?", c.Param("id")).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrPrizeNotFound)
        return
    }

    if err := database.DB.Delete(&prize).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedDeletePrize)
        return
    }

    c.JSON(http.StatusOK, gin.H{"message": "Prize deleted"})
}
