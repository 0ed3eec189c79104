package controllers

import (
	"net/http"

	"AgileMoodGo/config"
	"AgileMoodGo/models"

	"github.com/gin-gonic/gin"
)

type UserController struct{}

// GetUser returns the authenticated profile.
func (uc *UserController) GetUser(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userResponse(user)})
}

// UpdateUser changes name and avatar.
func (uc *UserController) UpdateUser(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Avatar != "" {
		updates["avatar"] = req.Avatar
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	if err := config.DB.Model(user).Updates(updates).Error; err != nil {
		config.Logger.Errorw("profile update failed", "error", err, "uid", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userResponse(user)})
}
