package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadPaths is the ordered list of stored file references for a
// participant, serialized as JSON in a single column.
type UploadPaths []string

func (p UploadPaths) Value() (driver.Value, error) {
    if len(p) == 0 {
        return "[]", nil
    }
    b, err := json.Marshal(p)
    return string(b), err
}

func (p *UploadPaths) Scan(value interface{}) error {
    switch v := value.(type) {
    case nil:
        *p = nil
        return nil
    case []byte:
        return json.Unmarshal(v, p)
    case string:
        return json.Unmarshal([]byte(v), p)
    default:
        return fmt.Errorf("unsupported upload_paths column type %T", value)
    }
}

// Participant links one user to the single competition they are currently
// entered in, plus their submissions and score. The unique index on
// UserID is the enforcement of "one active competition per user": under
// concurrent duplicate registrations exactly one insert succeeds and the
// other receives a uniqueness violation from the database.
type Participant struct {
    ID            string       `gorm:"type:uuid;primary_key" json:"id"`
    UserID        string       `gorm:"type:uuid;not null;uniqueIndex;column:user_id" json:"user_id"`
    CompetitionID string       `gorm:"type:uuid;not null;column:competition_id" json:"competition_id"`
    UploadPaths   UploadPaths  `gorm:"type:text;column:upload_paths" json:"upload_paths"`
    TotalMarks    float64      `gorm:"type:numeric(5,2);not null;default:0" json:"total_marks"`
    User          *User        `gorm:"foreignKey:UserID" json:"user"`
    Competition   *Competition `gorm:"foreignKey:CompetitionID" json:"competition"`
    CreatedAt     time.Time    `json:"created_at"`
    UpdatedAt     time.Time    `json:"updated_at"`
}

func (p *Participant) BeforeCreate(tx *gorm.DB) error {
    if p.ID == "" {
        p.ID = uuid.NewString()
    }
    return nil
}
