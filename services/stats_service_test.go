package services

import (
	"testing"
	"time"

	"AgileMoodGo/models"
)

func strPtr(s string) *string { return &s }

func testCatalog() []models.TeamEmotion {
	return []models.TeamEmotion{
		{ID: 1, Name: "Feliz", Emoji: "😀", Color: "#FFD700", TeamID: 1, IsNegative: false},
		{ID: 2, Name: "Triste", Emoji: "😢", Color: "#4169E1", TeamID: 1, IsNegative: true},
	}
}

func report(emotionID uint, intensity int, createdAt time.Time) models.EmotionRecord {
	return models.EmotionRecord{EmotionID: emotionID, Intensity: intensity, CreatedAt: createdAt, TeamID: 1}
}

func TestFilterReportsIdentity(t *testing.T) {
	reports := []models.EmotionRecord{
		report(1, 3, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)),
		report(2, 5, time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)),
	}

	if got := FilterReports(reports, nil); len(got) != len(reports) {
		t.Fatalf("nil range: got %d reports, want %d", len(got), len(reports))
	}
	if got := FilterReports(reports, &models.DateRange{}); len(got) != len(reports) {
		t.Fatalf("empty range: got %d reports, want %d", len(got), len(reports))
	}
}

func TestFilterReportsBounds(t *testing.T) {
	mar1 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	mar2Late := time.Date(2025, 3, 2, 23, 30, 0, 0, time.UTC)
	mar3 := time.Date(2025, 3, 3, 0, 0, 1, 0, time.UTC)
	reports := []models.EmotionRecord{
		report(1, 3, mar1),
		report(1, 4, mar2Late),
		report(2, 2, mar3),
	}

	from := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		rng  *models.DateRange
		want int
	}{
		{"from only", &models.DateRange{From: &from}, 2},
		{"to end of day inclusive", &models.DateRange{To: &to}, 2},
		{"both bounds", &models.DateRange{From: &from, To: &to}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterReports(reports, tt.rng)
			if len(got) != tt.want {
				t.Errorf("got %d reports, want %d", len(got), tt.want)
			}
			for _, r := range got {
				if tt.rng.From != nil && r.CreatedAt.Before(*tt.rng.From) {
					t.Errorf("report at %v precedes from bound", r.CreatedAt)
				}
				if tt.rng.To != nil && r.CreatedAt.After(EndOfDay(*tt.rng.To)) {
					t.Errorf("report at %v exceeds to bound", r.CreatedAt)
				}
			}
		})
	}
}

func TestFilterReportsDropsZeroTimestamp(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	reports := []models.EmotionRecord{
		report(1, 3, time.Time{}),
		report(1, 3, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)),
	}

	got := FilterReports(reports, &models.DateRange{From: &from})
	if len(got) != 1 {
		t.Fatalf("got %d reports, want 1 (zero timestamp dropped)", len(got))
	}
}

func TestEndOfDay(t *testing.T) {
	in := time.Date(2025, 3, 2, 8, 15, 0, 0, time.UTC)
	got := EndOfDay(in)
	want := time.Date(2025, 3, 2, 23, 59, 59, 999999999, time.UTC)
	if !got.Equal(want) {
		t.Errorf("EndOfDay = %v, want %v", got, want)
	}
}

func TestComputeDistribution(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	catalog := testCatalog()

	t.Run("mixed reports", func(t *testing.T) {
		reports := []models.EmotionRecord{
			report(1, 3, now),
			report(1, 5, now),
			report(2, 2, now),
		}
		got := ComputeDistribution(reports, catalog)

		if len(got.EmojiDistribution) != 2 {
			t.Fatalf("got %d entries, want 2", len(got.EmojiDistribution))
		}
		if got.EmojiDistribution[0].EmotionName != "😀 Feliz" || got.EmojiDistribution[0].Frequency != 2 {
			t.Errorf("first entry = %+v, want 😀 Feliz with frequency 2", got.EmojiDistribution[0])
		}
		if got.EmojiDistribution[1].Frequency != 1 {
			t.Errorf("second entry frequency = %d, want 1", got.EmojiDistribution[1].Frequency)
		}
		if want := 1.0 / 3.0; got.NegativeEmotionRatio != want {
			t.Errorf("ratio = %v, want %v", got.NegativeEmotionRatio, want)
		}
		if got.Alert != "" {
			t.Errorf("alert = %q, want empty below the threshold", got.Alert)
		}
	})

	t.Run("all negative triggers alert", func(t *testing.T) {
		reports := []models.EmotionRecord{
			report(2, 1, now), report(2, 2, now), report(2, 3, now),
		}
		got := ComputeDistribution(reports, catalog)
		if got.NegativeEmotionRatio != 1.0 {
			t.Errorf("ratio = %v, want 1.0", got.NegativeEmotionRatio)
		}
		if got.Alert != NegativeAlert {
			t.Errorf("alert = %q, want the warning string", got.Alert)
		}
	})

	t.Run("empty reports", func(t *testing.T) {
		got := ComputeDistribution(nil, catalog)
		if len(got.EmojiDistribution) != 0 {
			t.Errorf("distribution = %v, want empty", got.EmojiDistribution)
		}
		if got.NegativeEmotionRatio != 0 {
			t.Errorf("ratio = %v, want 0", got.NegativeEmotionRatio)
		}
		if got.Alert != "" {
			t.Errorf("alert = %q, want empty", got.Alert)
		}
	})

	t.Run("unresolved emotion stays in denominator", func(t *testing.T) {
		reports := []models.EmotionRecord{
			report(2, 3, now),
			report(99, 3, now), // not in the catalog
		}
		got := ComputeDistribution(reports, catalog)
		if want := 0.5; got.NegativeEmotionRatio != want {
			t.Errorf("ratio = %v, want %v", got.NegativeEmotionRatio, want)
		}
		total := 0
		for _, d := range got.EmojiDistribution {
			total += d.Frequency
		}
		if total != 1 {
			t.Errorf("sum of frequencies = %d, want 1 (unresolved id excluded)", total)
		}
	})

	t.Run("ties keep catalog order", func(t *testing.T) {
		reports := []models.EmotionRecord{report(1, 3, now), report(2, 3, now)}
		got := ComputeDistribution(reports, catalog)
		if got.EmojiDistribution[0].EmotionName != "😀 Feliz" {
			t.Errorf("tie broken against catalog order: first = %q", got.EmojiDistribution[0].EmotionName)
		}
	})
}

func TestComputeAverageIntensity(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	catalog := testCatalog()
	reports := []models.EmotionRecord{
		report(1, 3, now),
		report(1, 4, now),
		report(1, 3, now),
		report(2, 5, now),
	}

	got := ComputeAverageIntensity(reports, catalog)

	if len(got.AverageIntensity) != 2 {
		t.Fatalf("got %d entries, want 2", len(got.AverageIntensity))
	}
	// 😢 Triste averages 5.0 and sorts first.
	if got.AverageIntensity[0].EmotionName != "😢 Triste" || got.AverageIntensity[0].AvgIntensity != 5.0 {
		t.Errorf("first entry = %+v, want 😢 Triste at 5.0", got.AverageIntensity[0])
	}
	// (3+4+3)/3 = 3.333... rounds to 3.3.
	if got.AverageIntensity[1].AvgIntensity != 3.3 {
		t.Errorf("second avg = %v, want 3.3", got.AverageIntensity[1].AvgIntensity)
	}
	for _, a := range got.AverageIntensity {
		if a.AvgIntensity < 1 || a.AvgIntensity > 5 {
			t.Errorf("avg %v outside [1,5]", a.AvgIntensity)
		}
	}
	if want := 0.25; got.NegativeEmotionRatio != want {
		t.Errorf("ratio = %v, want %v", got.NegativeEmotionRatio, want)
	}
}

func TestComputeAnonymousRecords(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	catalog := testCatalog()

	anon := report(1, 4, now)
	anon.IsAnonymous = true
	anon2 := report(1, 2, now)
	anon2.IsAnonymous = true
	identified := report(2, 5, now)
	identified.UserID = strPtr("u1")

	got := ComputeAnonymousRecords([]models.EmotionRecord{anon, anon2, identified}, catalog)

	if got.UserName != AnonymousUserName {
		t.Errorf("user name = %q, want %q", got.UserName, AnonymousUserName)
	}
	if len(got.AllUserEmotionRecords) != 1 {
		t.Fatalf("got %d records, want 1 (identified report excluded)", len(got.AllUserEmotionRecords))
	}
	r := got.AllUserEmotionRecords[0]
	if r.Frequency != 2 || r.AvgIntensity != 3.0 {
		t.Errorf("record = %+v, want frequency 2 avg 3.0", r)
	}
}

func TestComputeUserEmotionAnalysis(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	catalog := testCatalog()
	members := []models.MemberResponse{
		{ID: "u1", Name: "Ana", TeamID: 1, Role: models.RoleEmployee},
		{ID: "u2", Name: "Bruno", TeamID: 1, Role: models.RoleEmployee},
	}

	r1 := report(1, 4, now)
	r1.UserID = strPtr("u1")
	r2 := report(1, 2, now)
	r2.UserID = strPtr("u1")
	anon := report(2, 5, now)
	anon.UserID = strPtr("u1")
	anon.IsAnonymous = true
	other := report(2, 3, now)
	other.UserID = strPtr("u2")

	reports := []models.EmotionRecord{r1, r2, anon, other}

	t.Run("known member", func(t *testing.T) {
		got := ComputeUserEmotionAnalysis(reports, catalog, members, "u1")
		if got == nil {
			t.Fatal("got nil for a known member")
		}
		if got.UserName != "Ana" {
			t.Errorf("user name = %q, want Ana", got.UserName)
		}
		if len(got.AllUserEmotionRecords) != 1 {
			t.Fatalf("got %d records, want 1 (anonymous excluded)", len(got.AllUserEmotionRecords))
		}
		r := got.AllUserEmotionRecords[0]
		if r.EmotionName != "😀 Feliz" || r.Frequency != 2 || r.AvgIntensity != 3.0 {
			t.Errorf("record = %+v, want 😀 Feliz frequency 2 avg 3.0", r)
		}
	})

	t.Run("unknown member", func(t *testing.T) {
		if got := ComputeUserEmotionAnalysis(reports, catalog, members, "nobody"); got != nil {
			t.Errorf("got %+v, want nil", got)
		}
	})

	t.Run("member with only anonymous reports", func(t *testing.T) {
		onlyAnon := []models.EmotionRecord{anon}
		got := ComputeUserEmotionAnalysis(onlyAnon, catalog, members, "u1")
		if got == nil {
			t.Fatal("got nil, want an empty breakdown")
		}
		if len(got.AllUserEmotionRecords) != 0 {
			t.Errorf("got %d records, want 0", len(got.AllUserEmotionRecords))
		}
	})
}
