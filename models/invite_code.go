package models

import (
	"math/rand"
	"time"
)

// InviteCode lets a user join a team with a preset role.
type InviteCode struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	Code      string     `gorm:"type:varchar(8);uniqueIndex" json:"code"`
	TeamID    uint       `gorm:"index" json:"team_id"`
	Role      string     `gorm:"type:varchar(20);default:employee" json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	UsedAt    *time.Time `json:"used_at"`
	UserID    *string    `gorm:"index" json:"user_id"`
}

// GenerateInviteCode returns a 6 character random code.
func GenerateInviteCode() string {
	const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789" // ambiguous characters removed
	const codeLength = 6
	code := make([]byte, codeLength)
	for i := range code {
		code[i] = charset[rand.Intn(len(charset))]
	}
	return string(code)
}
