package services

import (
	"testing"

	"api/models"

	"github.com/stretchr/testify/assert"
)

func TestDefaultQuotaForName(t *testing.T) {
	assert.Equal(t, PhotographyUploadQuota, DefaultQuotaForName("Photography"))
	assert.Equal(t, PhotographyUploadQuota, DefaultQuotaForName("Wildlife photography contest"))
	assert.Equal(t, PhotographyUploadQuota, DefaultQuotaForName("PHOTOGRAPHY"))

	assert.Equal(t, DefaultUploadQuota, DefaultQuotaForName("Essay Writing"))
	assert.Equal(t, DefaultUploadQuota, DefaultQuotaForName("Photo walk")) // not the full word
	assert.Equal(t, DefaultUploadQuota, DefaultQuotaForName(""))
}

func TestQuotaForCompetition(t *testing.T) {
	t.Run("explicit quota wins over the name", func(t *testing.T) {
		competition := models.Competition{Name: "Photography", UploadQuota: 5}
		assert.Equal(t, 5, QuotaForCompetition(competition))
	})

	t.Run("zero quota falls back to the name default", func(t *testing.T) {
		assert.Equal(t, PhotographyUploadQuota,
			QuotaForCompetition(models.Competition{Name: "Photography"}))
		assert.Equal(t, DefaultUploadQuota,
			QuotaForCompetition(models.Competition{Name: "Debate"}))
	})
}
