package models

import "time"

// EmotionRecord is one mood submission. UserID is nil when identity is not
// tracked; IsAnonymous is an independent display flag, a record can carry a
// known UserID and still be flagged anonymous.
type EmotionRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      *string   `gorm:"type:varchar(50);index" json:"user_id"`
	EmotionID   uint      `gorm:"index" json:"emotion_id"`
	Intensity   int       `json:"intensity"` // 1..5
	Notes       string    `gorm:"type:text" json:"notes"`
	IsAnonymous bool      `gorm:"default:false" json:"is_anonymous"`
	TeamID      uint      `gorm:"index" json:"team_id"`
	CreatedAt   time.Time `json:"created_at"`

	// Filled when serializing for managers / identified views, never stored.
	UserName string `gorm:"-" json:"user_name,omitempty"`
}

// Feedback is a manager's note on a specific emotion record.
type Feedback struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	EmotionRecordID uint      `gorm:"index" json:"emotion_record_id"`
	ManagerID       string    `gorm:"type:varchar(50)" json:"manager_id"`
	Message         string    `gorm:"type:text" json:"message"`
	IsAnonymous     bool      `gorm:"default:false" json:"is_anonymous"`
	CreatedAt       time.Time `json:"created_at"`
}
