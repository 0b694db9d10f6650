package users

import (
	"api/database"
	"api/models"
	"api/utils"
	"api/utils/response"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ImportUsersFromXLSX bulk-registers users from a spreadsheet
// @Summary Import users from an XLSX file
// @Description Bulk-create user accounts from a spreadsheet with Name, Phone, Email and Role columns. Imported accounts get a random temporary password (admin only).
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "XLSX file"
// @Success 201 {array} models.User
// @Failure 400 {object} map[string]string
// @Router /users/import [post]
// @Security Bearer
func ImportUsersFromXLSX(c *gin.Context) {
	// Get the uploaded file
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to get file: "+err.Error())
		return
	}

	openedFile, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to open file: "+err.Error())
		return
	}
	defer openedFile.Close()

	xlsx, err := excelize.OpenReader(openedFile)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to parse XLSX file: "+err.Error())
		return
	}

	// Role names map to role ids once up front
	var roles []models.Role
	if err := database.DB.Find(&roles).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchUsers)
		return
	}
	roleIDsByName := make(map[string]string, len(roles))
	for _, role := range roles {
		roleIDsByName[role.Name] = role.ID
	}

	// Imported accounts share a random temporary password that must be
	// reset on first use
	hashedPassword, err := utils.CreateDefaultPassword()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to generate password")
		return
	}

	var users []models.User
	for _, sheetName := range xlsx.GetSheetList() {
		rows, err := xlsx.GetRows(sheetName)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to read sheet: "+err.Error())
			return
		}

		if len(rows) < 2 { // At least header and one data row
			continue
		}

		// Find column indices
		var nameIdx, phoneIdx, emailIdx, roleIdx int = -1, -1, -1, -1
		for i, cell := range rows[0] {
			switch cell {
			case "Name", "Full Name":
				nameIdx = i
			case "Phone", "Phone Number", "Mobile":
				phoneIdx = i
			case "Email", "E-mail":
				emailIdx = i
			case "Role", "User Type":
				roleIdx = i
			}
		}

		// Skip sheets missing the required columns
		if nameIdx == -1 || phoneIdx == -1 || roleIdx == -1 {
			continue
		}

		for i := 1; i < len(rows); i++ {
			row := rows[i]

			if len(row) <= phoneIdx || row[phoneIdx] == "" {
				continue
			}
			if len(row) <= nameIdx || len(row) <= roleIdx {
				continue
			}

			roleID, ok := roleIDsByName[row[roleIdx]]
			if !ok {
				continue
			}

			newUser := models.User{
				Name:     row[nameIdx],
				Phone:    row[phoneIdx],
				Password: hashedPassword,
				RoleID:   roleID,
			}
			if emailIdx != -1 && emailIdx < len(row) && row[emailIdx] != "" {
				email := row[emailIdx]
				newUser.Email = &email
			}

			users = append(users, newUser)
		}
	}

	if len(users) == 0 {
		response.Error(c, http.StatusBadRequest, "No valid user data found in the file")
		return
	}

	for i := range users {
		if err := database.DB.Create(&users[i]).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, fmt.Sprintf("Failed to create user %s (%s): %s", users[i].Name, users[i].Phone, err.Error()))
			return
		}
		users[i].Password = ""
	}

	c.JSON(http.StatusCreated, users)
}
