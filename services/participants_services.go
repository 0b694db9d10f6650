package services

import (
	"api/database"
	"api/models"
	"strings"
)

const (
	// DefaultUploadQuota applies to competitions without an explicit quota
	DefaultUploadQuota = 3
	// PhotographyUploadQuota applies to photography-category competitions
	PhotographyUploadQuota = 15
)

// DefaultQuotaForName derives the upload quota from the competition
// category when a competition is created without an explicit quota.
func DefaultQuotaForName(name string) int {
    if strings.Contains(strings.ToLower(name), "photography") {
        return PhotographyUploadQuota
    }
    return DefaultUploadQuota
}

// QuotaForCompetition returns the competition's upload quota. The quota
// lives on the competition row; the name-based default only backfills
// rows created without one.
func QuotaForCompetition(competition models.Competition) int {
    if competition.UploadQuota > 0 {
        return competition.UploadQuota
    }
    return DefaultQuotaForName(competition.Name)
}

// CompetitionExists reports whether a competition with this id exists
func CompetitionExists(competitionID string) bool {
    var count int64
    database.DB.Model(&models.Competition{}).Where("id = ?", competitionID).Count(&count)
    return count > 0
}

// GetParticipantForUser loads the user's single participant row, if any
func GetParticipantForUser(userID string, participant *models.Participant) error {
    return database.DB.Where("user_id = ?", userID).First(participant).Error
}
