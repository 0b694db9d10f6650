package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Known role names seeded at startup. Roles are static reference data
// and are never created or edited through the API.
const (
	RoleAdmin          = "admin"
	RoleSchoolStudent  = "school_student"
	RoleCollegeStudent = "college_student"
)

// Role is the user type controlling which routes and competitions a user may access
type Role struct {
    ID    string  `gorm:"type:uuid;primary_key" json:"id"`
    Name  string  `gorm:"type:varchar(50);not null;unique" json:"name"`
    Users []*User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (r *Role) BeforeCreate(tx *gorm.DB) error {
    if r.ID == "" {
        r.ID = uuid.NewString()
    }
    return nil
}
