package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PasswordReset struct {
    ID        string    `gorm:"type:uuid;primary_key" json:"id"`
    UserID    string    `gorm:"type:uuid;not null" json:"user_id"`
    User      User      `gorm:"foreignkey:UserID" json:"user"`
    Token     string    `gorm:"type:varchar(255);not null;unique" json:"token"`
    CreatedAt time.Time `json:"created_at"`
}

func (pr *PasswordReset) BeforeCreate(tx *gorm.DB) error {
    if pr.ID == "" {
        pr.ID = uuid.NewString()
    }
    return nil
}
