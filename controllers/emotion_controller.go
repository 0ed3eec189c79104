package controllers

import (
	"net/http"
	"time"

	"AgileMoodGo/config"
	"AgileMoodGo/models"

	"github.com/gin-gonic/gin"
)

type EmotionController struct{}

// GetEmotions returns the team's emotion catalog.
func (ec *EmotionController) GetEmotions(c *gin.Context) {
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

	var emotions []models.TeamEmotion
	if err := config.DB.Where("team_id = ?", teamID).Order("id").Find(&emotions).Error; err != nil {
		config.Logger.Errorw("emotion catalog load failed", "error", err, "teamID", teamID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load emotions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"emotions": emotions})
}

// ReplaceEmotions swaps the whole catalog. Managers only, exactly six entries.
func (ec *EmotionController) ReplaceEmotions(c *gin.Context) {
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
		c.JSON(http.StatusForbidden, gin.H{"error": "only the team manager can edit the catalog"})
		return
	}

	var req models.ReplaceEmotionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("team_id = ?", teamID).Delete(&models.TeamEmotion{}).Error; err != nil {
		tx.Rollback()
		config.Logger.Errorw("emotion catalog clear failed", "error", err, "teamID", teamID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update emotions"})
		return
	}

	emotions := make([]models.TeamEmotion, 0, len(req.Emotions))
	for _, in := range req.Emotions {
		emotions = append(emotions, models.TeamEmotion{
			Name:       in.Name,
			Emoji:      in.Emoji,
			Color:      in.Color,
			TeamID:     teamID,
			IsNegative: in.IsNegative,
		})
	}
	if err := tx.Create(&emotions).Error; err != nil {
		tx.Rollback()
		config.Logger.Errorw("emotion catalog insert failed", "error", err, "teamID", teamID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update emotions"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update emotions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"emotions": emotions})
}

// CreateEmotionRecord stores one mood submission.
func (ec *EmotionController) CreateEmotionRecord(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.CreateEmotionRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := requireTeamMember(c, user, req.TeamID); !ok {
		return
	}

	var emotion models.TeamEmotion
	if err := config.DB.Where("id = ? AND team_id = ?", req.EmotionID, req.TeamID).First(&emotion).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "emotion not in team catalog"})
		return
	}

	uid := user.ID
	record := models.EmotionRecord{
		UserID:      &uid,
		EmotionID:   req.EmotionID,
		Intensity:   req.Intensity,
		Notes:       req.Notes,
		IsAnonymous: req.IsAnonymous,
		TeamID:      req.TeamID,
		CreatedAt:   time.Now(),
	}

	if err := config.DB.Create(&record).Error; err != nil {
		config.Logger.Errorw("emotion record creation failed", "error", err, "teamID", req.TeamID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save emotion record"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"emotion_record": record})
}
