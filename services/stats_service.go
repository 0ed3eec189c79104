package services

import (
	"math"
	"sort"
	"time"

	"AgileMoodGo/models"
)

// NegativeAlert is shown when more than half of the filtered reports are
// negative emotions.
const NegativeAlert = "Atenção: mais da metade das emoções registradas no período são negativas."

// AnonymousUserName labels the anonymous breakdown bucket.
const AnonymousUserName = "Anônimo"

// EndOfDay pushes t to the last nanosecond of its day, keeping the location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// FilterReports keeps reports inside the inclusive range. A nil range or nil
// bound is open on that side. Reports with a zero creation time are dropped
// whenever any bound is set.
func FilterReports(reports []models.EmotionRecord, rng *models.DateRange) []models.EmotionRecord {
	if rng == nil || (rng.From == nil && rng.To == nil) {
		return reports
	}

	var to time.Time
	if rng.To != nil {
		to = EndOfDay(*rng.To)
	}

	filtered := make([]models.EmotionRecord, 0, len(reports))
	for _, r := range reports {
		if r.CreatedAt.IsZero() {
			continue
		}
		if rng.From != nil && r.CreatedAt.Before(*rng.From) {
			continue
		}
		if rng.To != nil && r.CreatedAt.After(to) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func indexCatalog(catalog []models.TeamEmotion) map[uint]models.TeamEmotion {
	byID := make(map[uint]models.TeamEmotion, len(catalog))
	for _, e := range catalog {
		byID[e.ID] = e
	}
	return byID
}

// negativeRatio divides negative-resolved reports by ALL reports. A report
// whose emotion id has no catalog entry still counts in the denominator;
// the dashboard has always computed it that way.
func negativeRatio(reports []models.EmotionRecord, byID map[uint]models.TeamEmotion) float64 {
	if len(reports) == 0 {
		return 0
	}
	negative := 0
	for _, r := range reports {
		if e, ok := byID[r.EmotionID]; ok && e.IsNegative {
			negative++
		}
	}
	return float64(negative) / float64(len(reports))
}

func ratioAlert(ratio float64) string {
	if ratio > 0.5 {
		return NegativeAlert
	}
	return ""
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ComputeDistribution counts filtered reports per catalog emotion. Emotions
// with no matching report are omitted, not zero-filled.
func ComputeDistribution(reports []models.EmotionRecord, catalog []models.TeamEmotion) models.DistributionResult {
	byID := indexCatalog(catalog)

	counts := make(map[uint]int, len(catalog))
	for _, r := range reports {
		counts[r.EmotionID]++
	}

	dist := make([]models.EmojiDistribution, 0, len(catalog))
	for _, e := range catalog {
		if c := counts[e.ID]; c > 0 {
			dist = append(dist, models.EmojiDistribution{EmotionName: e.Label(), Frequency: c})
		}
	}
	sort.SliceStable(dist, func(i, j int) bool {
		return dist[i].Frequency > dist[j].Frequency
	})

	ratio := negativeRatio(reports, byID)
	return models.DistributionResult{
		EmojiDistribution:    dist,
		NegativeEmotionRatio: ratio,
		Alert:                ratioAlert(ratio),
	}
}

// ComputeAverageIntensity averages report intensity per catalog emotion,
// rounded to one decimal and sorted by the average.
func ComputeAverageIntensity(reports []models.EmotionRecord, catalog []models.TeamEmotion) models.IntensityResult {
	byID := indexCatalog(catalog)

	sums := make(map[uint]int, len(catalog))
	counts := make(map[uint]int, len(catalog))
	for _, r := range reports {
		sums[r.EmotionID] += r.Intensity
		counts[r.EmotionID]++
	}

	averages := make([]models.AverageIntensity, 0, len(catalog))
	for _, e := range catalog {
		if c := counts[e.ID]; c > 0 {
			averages = append(averages, models.AverageIntensity{
				EmotionName:  e.Label(),
				AvgIntensity: round1(float64(sums[e.ID]) / float64(c)),
			})
		}
	}
	sort.SliceStable(averages, func(i, j int) bool {
		return averages[i].AvgIntensity > averages[j].AvgIntensity
	})

	ratio := negativeRatio(reports, byID)
	return models.IntensityResult{
		AverageIntensity:     averages,
		NegativeEmotionRatio: ratio,
		Alert:                ratioAlert(ratio),
	}
}

// ComputeAnonymousRecords aggregates only reports flagged anonymous into one
// shared bucket.
func ComputeAnonymousRecords(reports []models.EmotionRecord, catalog []models.TeamEmotion) models.UserEmotionAnalysis {
	counts := make(map[uint]int, len(catalog))
	sums := make(map[uint]int, len(catalog))
	for _, r := range reports {
		if !r.IsAnonymous {
			continue
		}
		counts[r.EmotionID]++
		sums[r.EmotionID] += r.Intensity
	}

	records := make([]models.UserEmotionRecord, 0, len(catalog))
	for _, e := range catalog {
		if c := counts[e.ID]; c > 0 {
			records = append(records, models.UserEmotionRecord{
				EmotionName:  e.Label(),
				Frequency:    c,
				AvgIntensity: round1(float64(sums[e.ID]) / float64(c)),
			})
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Frequency > records[j].Frequency
	})

	return models.UserEmotionAnalysis{
		UserName:              AnonymousUserName,
		AllUserEmotionRecords: records,
	}
}

// ComputeUserEmotionAnalysis builds the breakdown for one identified member.
// It reads the UNFILTERED report set: the member drill-down has never honored
// the dashboard date filter. Anonymous reports are excluded. Returns nil when
// userID is not a known member.
func ComputeUserEmotionAnalysis(allReports []models.EmotionRecord, catalog []models.TeamEmotion, members []models.MemberResponse, userID string) *models.UserEmotionAnalysis {
	var member *models.MemberResponse
	for i := range members {
		if members[i].ID == userID {
			member = &members[i]
			break
		}
	}
	if member == nil {
		return nil
	}

	// Seed every catalog emotion at zero, then keep only the ones used.
	counts := make(map[uint]int, len(catalog))
	sums := make(map[uint]int, len(catalog))
	for _, e := range catalog {
		counts[e.ID] = 0
	}
	for _, r := range allReports {
		if r.IsAnonymous || r.UserID == nil || *r.UserID != userID {
			continue
		}
		counts[r.EmotionID]++
		sums[r.EmotionID] += r.Intensity
	}

	records := make([]models.UserEmotionRecord, 0, len(catalog))
	for _, e := range catalog {
		if c := counts[e.ID]; c > 0 {
			records = append(records, models.UserEmotionRecord{
				EmotionName:  e.Label(),
				Frequency:    c,
				AvgIntensity: round1(float64(sums[e.ID]) / float64(c)),
			})
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Frequency > records[j].Frequency
	})

	return &models.UserEmotionAnalysis{
		UserName:              member.Name,
		AllUserEmotionRecords: records,
	}
}
