package controllers

import (
	"net/http"
	"time"

	"AgileMoodGo/config"
	"AgileMoodGo/models"
	"AgileMoodGo/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthController handles registration and login.
type AuthController struct{}

// Register creates an account. An invite code attaches the user to a team
// with the code's role.
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		config.Logger.Errorw("password hash failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	user := models.User{
		ID:           utils.GenerateID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleEmployee,
		CreatedAt:    time.Now(),
	}

	// Consuming the invite and creating the user must stand or fall
	// together, otherwise a failed registration burns a one-time code.
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if req.InviteCode != "" {
		var invite models.InviteCode
		if err := tx.Where("code = ? AND used_at IS NULL", req.InviteCode).First(&invite).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invite code"})
			return
		}
		user.TeamID = &invite.TeamID
		if invite.Role != "" {
			user.Role = invite.Role
		}
		now := time.Now()
		invite.UsedAt = &now
		invite.UserID = &user.ID
		if err := tx.Save(&invite).Error; err != nil {
			tx.Rollback()
			config.Logger.Errorw("invite update failed", "error", err, "code", invite.Code)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
			return
		}
	}

	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		config.Logger.Errorw("user creation failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		config.Logger.Errorw("registration commit failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		config.Logger.Errorw("token generation failed", "error", err, "uid", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	c.JSON(http.StatusCreated, models.LoginResponse{
		Token: token,
		User:  userResponse(&user),
	})
}

// Login verifies credentials and issues a token.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		config.Logger.Errorw("token generation failed", "error", err, "uid", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Token: token,
		User:  userResponse(&user),
	})
}

func userResponse(u *models.User) models.UserResponse {
	return models.UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Avatar: u.Avatar,
		Role:   u.Role,
		TeamID: u.TeamID,
	}
}
