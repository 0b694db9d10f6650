package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Prize is an award for a rank in a competition. Rank is a free-form
// label ("1st", "2nd", "Top 10"); Amount is an exact decimal so currency
// never goes through a float.
type Prize struct {
    ID            string          `gorm:"type:uuid;primary_key" json:"id"`
    CompetitionID string          `gorm:"type:uuid;not null;column:competition_id" json:"competition_id"`
    Rank          string          `gorm:"type:varchar(50);not null" json:"rank"`
    Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
    Competition   *Competition    `gorm:"foreignKey:CompetitionID" json:"competition"`
    CreatedAt     time.Time       `json:"created_at"`
    UpdatedAt     time.Time       `json:"updated_at"`
}

func (p *Prize) BeforeCreate(tx *gorm.DB) error {
    if p.ID == "" {
        p.ID = uuid.NewString()
    }
    return nil
}
