package controllers

import (
	"net/http"
	"strconv"

	"AgileMoodGo/config"
	"AgileMoodGo/models"
	"AgileMoodGo/services"

	"github.com/gin-gonic/gin"
)

type StatsController struct{}

// resolveRange reads from/to query parameters, or the sprint window when
// sprint_id is given. Returns the sprint name for export filenames.
func resolveRange(c *gin.Context, teamID uint) (*models.DateRange, string, bool) {
	if sprintStr := c.Query("sprint_id"); sprintStr != "" {
		sprintID, err := strconv.ParseUint(sprintStr, 10, 32)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid sprint id"})
			return nil, "", false
		}
		var sprint models.Sprint
		if err := config.DB.Where("id = ? AND team_id = ?", sprintID, teamID).First(&sprint).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "sprint not found"})
			return nil, "", false
		}
		from, to := sprint.StartDate, sprint.EndDate
		return &models.DateRange{From: &from, To: &to}, sprint.Name, true
	}

	rng, err := parseDateRange(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, "", false
	}
	return rng, "", true
}

// GetStats computes every dashboard aggregate for the team.
func (sc *StatsController) GetStats(c *gin.Context) {
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

	teamResp, err := loadTeamResponse(team, user)
	if err != nil {
		config.Logger.Errorw("team load failed", "error", err, "teamID", teamID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load team"})
		return
	}

	filtered := services.FilterReports(teamResp.EmotionsReports, rng)

	resp := models.TeamStatsResponse{
		Distribution:    services.ComputeDistribution(filtered, teamResp.Emotions),
		Intensity:       services.ComputeAverageIntensity(filtered, teamResp.Emotions),
		Anonymous:       services.ComputeAnonymousRecords(filtered, teamResp.Emotions),
		Summary:         services.GenerateTeamSummary(teamResp),
		TotalReports:    len(teamResp.EmotionsReports),
		FilteredReports: len(filtered),
	}
	if rng != nil {
		resp.PeriodStart = rng.From
		resp.PeriodEnd = rng.To
	}

	// The member drill-down deliberately reads the unfiltered report set.
	if userID := c.Query("user_id"); userID != "" {
		analysis := services.ComputeUserEmotionAnalysis(teamResp.EmotionsReports, teamResp.Emotions, teamResp.Members, userID)
		if analysis == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
			return
		}
		resp.Members = []models.UserEmotionAnalysis{*analysis}
	} else {
		resp.Members = make([]models.UserEmotionAnalysis, 0, len(teamResp.Members))
		for _, m := range teamResp.Members {
			if analysis := services.ComputeUserEmotionAnalysis(teamResp.EmotionsReports, teamResp.Emotions, teamResp.Members, m.ID); analysis != nil {
				resp.Members = append(resp.Members, *analysis)
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

// ExportReports streams the filtered reports as CSV or XLSX.
func (sc *StatsController) ExportReports(c *gin.Context) {
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
	rng, sprintName, ok := resolveRange(c, teamID)
	if !ok {
		return
	}

	teamResp, err := loadTeamResponse(team, user)
	if err != nil {
		config.Logger.Errorw("team load failed", "error", err, "teamID", teamID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load team"})
		return
	}

	filtered := services.FilterReports(teamResp.EmotionsReports, rng)

	format := c.DefaultQuery("format", "csv")
	var (
		data        []byte
		contentType string
	)
	switch format {
	case "csv":
		data, err = services.ExportReportsCSV(filtered, teamResp.Emotions, teamResp.Members)
		contentType = "text/csv; charset=utf-8"
	case "xlsx":
		data, err = services.ExportReportsXLSX(filtered, teamResp.Emotions, teamResp.Members)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or xlsx"})
		return
	}
	if err != nil {
		config.Logger.Errorw("report export failed", "error", err, "teamID", teamID, "format", format)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export reports"})
		return
	}

	filename := services.ExportFilename(teamID, sprintName, rng, format)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}
