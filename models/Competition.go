package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Competition represents a contest that users of a given role may enter.
// UploadQuota is the maximum number of submission files a participant may
// store for this competition.
type Competition struct {
    ID             string         `gorm:"type:uuid;primary_key" json:"id"`
    Name           string         `gorm:"type:varchar(100);not null" json:"name"`
    RoleID         string         `gorm:"type:uuid;not null;column:role_id" json:"role_id"`
    IsTeamBased    bool           `gorm:"not null;default:false" json:"is_team_based"`
    RequiresUpload bool           `gorm:"not null;default:false" json:"requires_upload"`
    UploadQuota    int            `gorm:"not null;default:3" json:"upload_quota"`
    ImagePath      *string        `gorm:"type:varchar(255);column:image_path" json:"image_path,omitempty"`
    Role           *Role          `gorm:"foreignKey:RoleID" json:"role"`
    Participants   []*Participant `gorm:"foreignKey:CompetitionID" json:"participants,omitempty"`
    Prizes         []*Prize       `gorm:"foreignKey:CompetitionID" json:"prizes,omitempty"`
    CreatedAt      time.Time      `json:"created_at"`
    UpdatedAt      time.Time      `json:"updated_at"`
}

func (comp *Competition) BeforeCreate(tx *gorm.DB) error {
    if comp.ID == "" {
        comp.ID = uuid.NewString()
    }
    return nil
}
