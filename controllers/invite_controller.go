package controllers

import (
	"net/http"
	"strconv"
	"time"

	"AgileMoodGo/config"
	"AgileMoodGo/models"
	"AgileMoodGo/utils"

	"github.com/gin-gonic/gin"
)

type InviteController struct{}

// CreateInviteCode mints a team invite. Internal route.
func (ic *InviteController) CreateInviteCode(c *gin.Context) {
	config.Logger.Infow("internal call: create invite code",
		"sourceIP", c.ClientIP(),
		"userAgent", c.Request.UserAgent(),
	)

	teamID, err := strconv.ParseUint(c.Query("team_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		return
	}

	role := c.DefaultQuery("role", models.RoleEmployee)
	if role != models.RoleEmployee && role != models.RoleManager {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}

	var team models.Team
	if err := config.DB.Where("id = ?", teamID).First(&team).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
		return
	}

	invite := models.InviteCode{
		ID:        utils.GenerateID(),
		Code:      models.GenerateInviteCode(),
		TeamID:    uint(teamID),
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := config.DB.Create(&invite).Error; err != nil {
		config.Logger.Errorw("invite creation failed", "error", err, "teamID", teamID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create invite code"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":    invite.Code,
		"team_id": invite.TeamID,
		"role":    invite.Role,
	})
}
