package models

import "time"

// DateRange bounds a dashboard filter, both ends inclusive. To is normalized
// to end of day before filtering.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// EmojiDistribution is one bar of the frequency chart.
type EmojiDistribution struct {
	EmotionName string `json:"emotion_name"`
	Frequency   int    `json:"frequency"`
}

// AverageIntensity is one bar of the intensity chart.
type AverageIntensity struct {
	EmotionName  string  `json:"emotion_name"`
	AvgIntensity float64 `json:"avg_intensity"`
}

// UserEmotionRecord is one row of a per-user (or anonymous) breakdown.
type UserEmotionRecord struct {
	EmotionName  string  `json:"emotion_name"`
	Frequency    int     `json:"frequency"`
	AvgIntensity float64 `json:"avg_intensity"`
}

// DistributionResult is the frequency chart payload.
type DistributionResult struct {
	EmojiDistribution    []EmojiDistribution `json:"emoji_distribution"`
	NegativeEmotionRatio float64             `json:"negative_emotion_ratio"`
	Alert                string              `json:"alert"`
}

// IntensityResult is the average-intensity chart payload.
type IntensityResult struct {
	AverageIntensity     []AverageIntensity `json:"average_intensity"`
	NegativeEmotionRatio float64            `json:"negative_emotion_ratio"`
	Alert                string             `json:"alert"`
}

// UserEmotionAnalysis is the breakdown for one member or the anonymous bucket.
type UserEmotionAnalysis struct {
	UserName              string              `json:"user_name"`
	AllUserEmotionRecords []UserEmotionRecord `json:"all_user_emotion_records"`
}
