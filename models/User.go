package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered contestant or administrator. Phone is the
// primary login identifier and is globally unique; email is optional and
// unique only among users that supply one.
type User struct {
    ID        string    `gorm:"type:uuid;primary_key" json:"id"`
    Name      string    `gorm:"type:varchar(100);not null" json:"name"`
    Phone     string    `gorm:"type:varchar(20);not null;uniqueIndex" json:"phone"`
    Email     *string   `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty"`
    Password  string    `gorm:"type:varchar(255);not null" json:"password,omitempty"`
    RoleID    string    `gorm:"type:uuid;not null;column:role_id" json:"role_id"`
    Role      *Role     `gorm:"foreignKey:RoleID" json:"role"`
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
    if u.ID == "" {
        u.ID = uuid.NewString()
    }
    return nil
}
