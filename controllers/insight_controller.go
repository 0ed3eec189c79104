package controllers

import (
	"fmt"
	"net/http"
	"time"

	"AgileMoodGo/config"
	"AgileMoodGo/models"
	"AgileMoodGo/services"
	"AgileMoodGo/utils"

	"github.com/gin-gonic/gin"
)

// insightCacheTTL bounds how long a generated commentary is reused.
const insightCacheTTL = time.Hour

type InsightController struct {
	insightService *services.InsightService
}

func NewInsightController(insightService *services.InsightService) *InsightController {
	return &InsightController{insightService: insightService}
}

func insightCacheKey(teamID uint, rng *models.DateRange) string {
	const layout = "2006-01-02"
	from, to := "open", "open"
	if rng != nil && rng.From != nil {
		from = rng.From.Format(layout)
	}
	if rng != nil && rng.To != nil {
		to = rng.To.Format(layout)
	}
	return fmt.Sprintf("team_insight:%d:%s:%s", teamID, from, to)
}

// GetInsight returns a wellness commentary over the period's aggregates,
// served from Redis when one was generated recently.
func (ic *InsightController) GetInsight(c *gin.Context) {
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
	rng, _, ok := resolveRange(c, teamID)
	if !ok {
		return
	}

	cacheKey := insightCacheKey(teamID, rng)
	if cached, err := config.RedisClient.Get(c.Request.Context(), cacheKey).Result(); err == nil && cached != "" {
		c.JSON(http.StatusOK, gin.H{"insight": cached, "cached": true})
		return
	}

	teamResp, err := loadTeamResponse(team, user)
	if err != nil {
		config.Logger.Errorw("team load failed", "error", err, "teamID", teamID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load team"})
		return
	}

	filtered := services.FilterReports(teamResp.EmotionsReports, rng)
	dist := services.ComputeDistribution(filtered, teamResp.Emotions)
	intensity := services.ComputeAverageIntensity(filtered, teamResp.Emotions)

	insight, err := ic.insightService.GenerateTeamInsight(c.Request.Context(), teamResp, dist, intensity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate insight"})
		return
	}

	if err := config.RedisClient.Set(c.Request.Context(), cacheKey, insight, insightCacheTTL).Err(); err != nil {
		config.Logger.Errorw("insight cache write failed", "error", err, "key", cacheKey)
	}

	record := models.TeamInsight{
		ID:        utils.GenerateID(),
		TeamID:    teamID,
		Summary:   insight,
		CreatedAt: time.Now(),
	}
	if rng != nil && rng.From != nil {
		record.PeriodStart = *rng.From
	}
	if rng != nil && rng.To != nil {
		record.PeriodEnd = *rng.To
	}
	if err := config.DB.Create(&record).Error; err != nil {
		// Duplicate periods hit the unique index, the cached text still serves.
		config.Logger.Debugw("insight persistence skipped", "error", err, "teamID", teamID)
	}

	c.JSON(http.StatusOK, gin.H{"insight": insight, "cached": false})
}
