package models

// TeamEmotionCount is the curated catalog size every team must keep.
const TeamEmotionCount = 6

// TeamEmotion is one entry of a team's emotion catalog.
type TeamEmotion struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"type:varchar(50)" json:"name"`
	Emoji      string `gorm:"type:varchar(10)" json:"emoji"`
	Color      string `gorm:"type:varchar(10)" json:"color"`
	TeamID     uint   `gorm:"index" json:"team_id"`
	IsNegative bool   `gorm:"default:false" json:"is_negative"`
}

// Label is the display name used across the dashboard aggregates.
func (e *TeamEmotion) Label() string {
	return e.Emoji + " " + e.Name
}
