package competitions

import (
	"api/database"
	"api/models"
	"api/utils/response"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportCompetitionResults streams the competition results as XLSX
// @Summary Export competition results
// @Description Download an XLSX sheet of the competition's participants and marks (admin only)
// @Tags Competitions
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Competition ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /competitions/{id}/export [get]
// @Security Bearer
func ExportCompetitionResults(c *gin.Context) {
	competitionID := c.Param("id")

	var competition models.Competition
	if err := database.DB.First(&competition, "id = ?", competitionID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrCompetitionNotFound)
		return
	}

	var participants []models.Participant
	if err := database.DB.Where("competition_id = ?", competitionID).
		Preload("User").Order("total_marks DESC").Find(&participants).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch participants")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"Rank", "Name", "Phone", "Email", "Submissions", "Total Marks"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, participant := range participants {
		row := i + 2
		name, phone, email := "", "", ""
		if participant.User != nil {
			name = participant.User.Name
			phone = participant.User.Phone
			if participant.User.Email != nil {
				email = *participant.User.Email
			}
		}

		values := []interface{}{
			i + 1,
			name,
			phone,
			email,
			len(participant.UploadPaths),
			participant.TotalMarks,
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, value)
		}
	}

	filename := fmt.Sprintf("%s-results.xlsx", competition.Name)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := f.Write(c.Writer); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to write spreadsheet")
	}
}
