package controllers

import (
	"net/http"
	"time"

	"AgileMoodGo/config"
	"AgileMoodGo/models"

	"github.com/gin-gonic/gin"
)

type SprintController struct{}

// ListSprints returns the team's sprints, most recent first.
func (sc *SprintController) ListSprints(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	if _, ok := requireTeamMember(c, user, teamID); !ok {
		return
	}

	var sprints []models.Sprint
	if err := config.DB.Where("team_id = ?", teamID).Order("start_date DESC").Find(&sprints).Error; err != nil {
		config.Logger.Errorw("sprint list failed", "error", err, "teamID", teamID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load sprints"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sprints": sprints})
}

// CreateSprint adds a date window. Managers only.
func (sc *SprintController) CreateSprint(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	team, ok := requireTeamMember(c, user, teamID)
	if !ok {
		return
	}
	if team.ManagerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the team manager can create sprints"})
		return
	}

	var req models.CreateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sprint := models.Sprint{
		TeamID:    teamID,
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		CreatedAt: time.Now(),
	}
	if err := config.DB.Create(&sprint).Error; err != nil {
		config.Logger.Errorw("sprint creation failed", "error", err, "teamID", teamID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create sprint"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"sprint": sprint})
}
