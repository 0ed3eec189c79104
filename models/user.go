package models

import (
	"time"
)

// User roles.
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

// User is a registered person, optionally attached to a team.
type User struct {
	ID           string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(100)" json:"name"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(100)" json:"-"`
	Avatar       string    `gorm:"type:varchar(255)" json:"avatar,omitempty"`
	Role         string    `gorm:"type:varchar(20);default:employee" json:"role"`
	TeamID       *uint     `gorm:"index" json:"team_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) GetDisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// IsManager reports whether the user holds the manager role.
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}
