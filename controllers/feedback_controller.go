package controllers

import (
	"net/http"
	"time"

	"AgileMoodGo/config"
	"AgileMoodGo/models"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct{}

// CreateFeedback lets a manager comment on one emotion record.
func (fc *FeedbackController) CreateFeedback(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var record models.EmotionRecord
	if err := config.DB.Where("id = ?", req.EmotionRecordID).First(&record).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "emotion record not found"})
		return
	}

	var team models.Team
	if err := config.DB.Where("id = ?", record.TeamID).First(&team).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
		return
	}
	if team.ManagerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the team manager can send feedback"})
		return
	}

	feedback := models.Feedback{
		EmotionRecordID: req.EmotionRecordID,
		ManagerID:       user.ID,
		Message:         req.Message,
		IsAnonymous:     req.IsAnonymous,
		CreatedAt:       time.Now(),
	}
	if err := config.DB.Create(&feedback).Error; err != nil {
		config.Logger.Errorw("feedback creation failed", "error", err, "recordID", req.EmotionRecordID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save feedback"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"feedback": feedback})
}
