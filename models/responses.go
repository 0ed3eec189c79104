package models

import "time"

// TeamResponse is the full dashboard payload for GET /teams/:id.
type TeamResponse struct {
	TeamData        Team             `json:"team_data"`
	Members         []MemberResponse `json:"members"`
	EmotionsReports []EmotionRecord  `json:"emotions_reports"`
	Emotions        []TeamEmotion    `json:"emotions"`
	UserRole        string           `json:"user_role,omitempty"`
}

// MemberResponse is a team member without credentials.
type MemberResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	TeamID uint   `json:"team_id"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// UserResponse is the authenticated profile payload.
type UserResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
	Role   string `json:"role"`
	TeamID *uint  `json:"team_id,omitempty"`
}

// LoginResponse carries the bearer token plus the profile.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// TeamStatsResponse bundles every dashboard aggregate for one request.
type TeamStatsResponse struct {
	Distribution    DistributionResult    `json:"distribution"`
	Intensity       IntensityResult       `json:"intensity"`
	Anonymous       UserEmotionAnalysis   `json:"anonymous"`
	Members         []UserEmotionAnalysis `json:"members"`
	Summary         string                `json:"summary"`
	TotalReports    int                   `json:"total_reports"`
	FilteredReports int                   `json:"filtered_reports"`
	PeriodStart     *time.Time            `json:"period_start,omitempty"`
	PeriodEnd       *time.Time            `json:"period_end,omitempty"`
}

// MessageResponse is one board message with the author resolved.
type MessageResponse struct {
	ID        uint      `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
