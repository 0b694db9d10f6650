package competitions

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrCompetitionNotFound     = "Competition not found"
	ErrRoleNotFound            = "Role not found"
	ErrFailedFetchCompetitions = "Failed to fetch competitions"
	ErrFailedCreateCompetition = "Failed to create competition"
	ErrFailedUpdateCompetition = "Failed to update competition"
	ErrFailedDeleteCompetition = "Failed to delete competition"
	ErrFailedStoreImage        = "Failed to store competition image"
	ErrInvalidRequest          = "Invalid request data"
)

// competitionImageField is the multipart field carrying the image on
// create and update
const competitionImageField = "competition_image"

// imageDir is the relay directory for competition images
const imageDir = "competitions"

// competitionForm is the multipart form on create and update. Booleans
// and the quota arrive as form values alongside the optional image file.
type competitionForm struct {
	Name           string
	RoleID         string
	IsTeamBased    bool
	RequiresUpload bool
	UploadQuota    int // 0 when the form omits it
}

func bindCompetitionForm(c *gin.Context) (competitionForm, error) {
	form := competitionForm{
		Name:           c.PostForm("name"),
		RoleID:         c.PostForm("role_id"),
		IsTeamBased:    c.PostForm("is_team_based") == "true",
		RequiresUpload: c.PostForm("requires_upload") == "true",
	}

	if quota := c.PostForm("upload_quota"); quota != "" {
		n, err := strconv.Atoi(quota)
		if err != nil || n < 1 {
			return form, errInvalidQuota
		}
		form.UploadQuota = n
	}

	return form, nil
}

var errInvalidQuota = &invalidQuotaError{}

type invalidQuotaError struct{}

func (e *invalidQuotaError) Error() string { return "upload_quota must be a positive integer" }
