package services

import (
	"fmt"
	"strings"

	"AgileMoodGo/models"
)

// GenerateTeamSummary renders the natural-language paragraph shown on top of
// the manager dashboard. It always reads the full, unfiltered report set.
func GenerateTeamSummary(team *models.TeamResponse) string {
	memberCount := len(team.Members)
	totalReports := len(team.EmotionsReports)

	if totalReports == 0 {
		return fmt.Sprintf("A equipe %s possui %d membros e ainda não registrou nenhuma emoção.",
			team.TeamData.Name, memberCount)
	}

	anonymous := 0
	intensitySum := 0
	counts := make(map[uint]int, len(team.Emotions))
	for _, r := range team.EmotionsReports {
		if r.IsAnonymous {
			anonymous++
		}
		intensitySum += r.Intensity
		counts[r.EmotionID]++
	}
	identified := totalReports - anonymous

	// First catalog emotion holding the maximum wins ties.
	mostFrequent := ""
	best := 0
	for _, e := range team.Emotions {
		if c := counts[e.ID]; c > best {
			best = c
			mostFrequent = e.Label()
		}
	}

	byID := indexCatalog(team.Emotions)
	ratio := negativeRatio(team.EmotionsReports, byID)
	meanIntensity := round1(float64(intensitySum) / float64(totalReports))

	var b strings.Builder
	fmt.Fprintf(&b, "A equipe %s possui %d membros e registrou %d emoções, sendo %d anônimas e %d identificadas.",
		team.TeamData.Name, memberCount, totalReports, anonymous, identified)
	if mostFrequent != "" {
		fmt.Fprintf(&b, " A emoção mais frequente foi %s.", mostFrequent)
	}
	fmt.Fprintf(&b, " A intensidade média dos registros é %.1f.", meanIntensity)

	switch {
	case ratio > 0.5:
		b.WriteString(" Atenção: mais de 50% dos registros são de emoções negativas.")
	case ratio > 0.3:
		b.WriteString(" Cuidado: mais de 30% dos registros são de emoções negativas.")
	case ratio < 0.1:
		b.WriteString(" Ótimo sinal: menos de 10% dos registros são de emoções negativas.")
	}

	return b.String()
}
