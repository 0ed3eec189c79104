package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"AgileMoodGo/config"
	"AgileMoodGo/models"

	"github.com/gin-gonic/gin"
)

// currentUser loads the authenticated user or aborts with 401.
func currentUser(c *gin.Context) (*models.User, bool) {
	uid := c.GetString("uid")
	if uid == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return nil, false
	}

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		config.Logger.Errorw("user lookup failed", "error", err, "uid", uid)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return nil, false
	}
	return &user, true
}

// teamIDParam parses the :id route parameter.
func teamIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		return 0, false
	}
	return uint(id), true
}

// requireTeamMember checks that the user belongs to the team or manages it.
func requireTeamMember(c *gin.Context, user *models.User, teamID uint) (*models.Team, bool) {
	var team models.Team
	if err := config.DB.Where("id = ?", teamID).First(&team).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "team not found"})
		return nil, false
	}

	if team.ManagerID != user.ID && (user.TeamID == nil || *user.TeamID != teamID) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not a member of this team"})
		return nil, false
	}
	return &team, true
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want RFC3339 or YYYY-MM-DD", value)
}

// parseDateRange reads the optional from/to query parameters.
func parseDateRange(c *gin.Context) (*models.DateRange, error) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" && toStr == "" {
		return nil, nil
	}

	rng := &models.DateRange{}
	if fromStr != "" {
		t, err := parseDate(fromStr)
		if err != nil {
			return nil, err
		}
		rng.From = &t
	}
	if toStr != "" {
		t, err := parseDate(toStr)
		if err != nil {
			return nil, err
		}
		rng.To = &t
	}
	return rng, nil
}

// loadTeamResponse assembles the full dashboard payload. Anonymous reports
// lose their user identity unless the viewer manages the team.
func loadTeamResponse(team *models.Team, viewer *models.User) (*models.TeamResponse, error) {
	var members []models.User
	if err := config.DB.Where("team_id = ?", team.ID).Find(&members).Error; err != nil {
		return nil, err
	}

	var emotions []models.TeamEmotion
	if err := config.DB.Where("team_id = ?", team.ID).Order("id").Find(&emotions).Error; err != nil {
		return nil, err
	}

	var reports []models.EmotionRecord
	if err := config.DB.Where("team_id = ?", team.ID).Order("created_at").Find(&reports).Error; err != nil {
		return nil, err
	}

	memberResponses := make([]models.MemberResponse, 0, len(members))
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.GetDisplayName()
		memberResponses = append(memberResponses, models.MemberResponse{
			ID:     m.ID,
			Name:   m.GetDisplayName(),
			Email:  m.Email,
			TeamID: team.ID,
			Role:   m.Role,
			Avatar: m.Avatar,
		})
	}

	isManager := team.ManagerID == viewer.ID
	for i := range reports {
		if reports[i].IsAnonymous {
			if !isManager {
				reports[i].UserID = nil
			}
			continue
		}
		if reports[i].UserID != nil {
			reports[i].UserName = names[*reports[i].UserID]
		}
	}

	role := models.RoleEmployee
	if isManager {
		role = models.RoleManager
	}

	return &models.TeamResponse{
		TeamData:        *team,
		Members:         memberResponses,
		EmotionsReports: reports,
		Emotions:        emotions,
		UserRole:        role,
	}, nil
}
