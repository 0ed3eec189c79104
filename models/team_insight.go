package models

import (
	"time"
)

// TeamInsight caches one generated wellness commentary for a team and period.
type TeamInsight struct {
	ID          string    `gorm:"primaryKey"`
	TeamID      uint      `gorm:"index:idx_team_period,unique"`
	PeriodStart time.Time `gorm:"index:idx_team_period,unique"`
	PeriodEnd   time.Time `gorm:"index:idx_team_period,unique"`
	Summary     string    `gorm:"type:text"`
	CreatedAt   time.Time
}

func (TeamInsight) TableName() string {
	return "team_insights"
}
