package controllers

import (
	"net/http"
	"time"

	"AgileMoodGo/config"
	"AgileMoodGo/models"

	"github.com/gin-gonic/gin"
)

type TeamController struct{}

// GetTeam returns the full dashboard payload for one team.
func (tc *TeamController) GetTeam(c *gin.Context) {
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

	resp, err := loadTeamResponse(team, user)
	if err != nil {
		config.Logger.Errorw("team load failed", "error", err, "teamID", teamID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load team"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// JoinTeam attaches the caller to a team through an invite code.
func (tc *TeamController) JoinTeam(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.JoinTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var invite models.InviteCode
	if err := config.DB.Where("code = ? AND used_at IS NULL", req.Code).First(&invite).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invite code"})
		return
	}

	now := time.Now()
	invite.UsedAt = &now
	invite.UserID = &user.ID

	tx := config.DB.Begin()
	if err := tx.Save(&invite).Error; err != nil {
		tx.Rollback()
		config.Logger.Errorw("invite update failed", "error", err, "code", invite.Code)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to join team"})
		return
	}
	updates := map[string]interface{}{"team_id": invite.TeamID}
	if invite.Role != "" {
		updates["role"] = invite.Role
	}
	if err := tx.Model(user).Updates(updates).Error; err != nil {
		tx.Rollback()
		config.Logger.Errorw("team join failed", "error", err, "uid", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to join team"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to join team"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "joined team", "team_id": invite.TeamID})
}

// ListMessages returns the team board, newest first.
func (tc *TeamController) ListMessages(c *gin.Context) {
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

	var messages []models.TeamMessage
	if err := config.DB.Where("team_id = ?", teamID).Order("created_at DESC").Find(&messages).Error; err != nil {
		config.Logger.Errorw("message list failed", "error", err, "teamID", teamID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
		return
	}

	var members []models.User
	if err := config.DB.Where("team_id = ?", teamID).Find(&members).Error; err != nil {
		config.Logger.Errorw("member list failed", "error", err, "teamID", teamID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
		return
	}
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.GetDisplayName()
	}

	resp := make([]models.MessageResponse, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, models.MessageResponse{
			ID:        m.ID,
			UserID:    m.UserID,
			UserName:  names[m.UserID],
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"messages": resp})
}

// CreateMessage posts to the team board.
func (tc *TeamController) CreateMessage(c *gin.Context) {
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

	var req models.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message := models.TeamMessage{
		TeamID:    teamID,
		UserID:    user.ID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := config.DB.Create(&message).Error; err != nil {
		config.Logger.Errorw("message creation failed", "error", err, "teamID", teamID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to post message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": message})
}
