package models

import "time"

// Team groups users under one manager.
type Team struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100)" json:"name"`
	ManagerID string    `gorm:"type:varchar(50);index" json:"manager_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TeamMessage is a broadcast message on the team board.
type TeamMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TeamID    uint      `gorm:"index" json:"team_id"`
	UserID    string    `gorm:"type:varchar(50)" json:"user_id"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Sprint is a named date window used to scope dashboards and exports.
type Sprint struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TeamID    uint      `gorm:"index" json:"team_id"`
	Name      string    `gorm:"type:varchar(100)" json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
}
