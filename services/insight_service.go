package services

import (
	"context"
	"fmt"
	"strings"

	"AgileMoodGo/config"
	"AgileMoodGo/models"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// InsightService turns dashboard aggregates into a short wellness commentary.
// Without a configured AI client it degrades to the deterministic summary.
type InsightService struct {
	client *DeepseekClient
}

func NewInsightService(client *DeepseekClient) *InsightService {
	return &InsightService{client: client}
}

const insightSystemPrompt = `Você é um assistente de bem-estar de equipes. ` +
	`Receberá estatísticas agregadas de emoções registradas por uma equipe. ` +
	`Escreva um parágrafo curto, em português, para o gestor da equipe: ` +
	`destaque tendências, intensidades e proporção de emoções negativas, ` +
	`com tom construtivo. Não invente dados, não use markdown.`

// GenerateTeamInsight asks the model for a commentary over the aggregates.
func (s *InsightService) GenerateTeamInsight(ctx context.Context, team *models.TeamResponse, dist models.DistributionResult, intensity models.IntensityResult) (string, error) {
	if s.client == nil {
		return GenerateTeamSummary(team), nil
	}

	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(insightSystemPrompt)},
		},
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(formatStatsPrompt(team, dist, intensity))},
		},
	}

	resp, err := s.client.DsChat.GenerateContent(ctx, messages, llms.WithTemperature(0.7))
	if err != nil {
		config.Logger.Errorw("insight generation failed",
			"error", err,
			"teamID", team.TeamData.ID,
		)
		return "", fmt.Errorf("insight generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("insight generation returned no content")
	}

	return strings.TrimSpace(resp.Choices[0].Content), nil
}

func formatStatsPrompt(team *models.TeamResponse, dist models.DistributionResult, intensity models.IntensityResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Equipe: %s (%d membros, %d registros)\n",
		team.TeamData.Name, len(team.Members), len(team.EmotionsReports))

	b.WriteString("Frequência por emoção:\n")
	if len(dist.EmojiDistribution) == 0 {
		b.WriteString("- nenhum registro no período\n")
	}
	for _, d := range dist.EmojiDistribution {
		fmt.Fprintf(&b, "- %s: %d\n", d.EmotionName, d.Frequency)
	}

	b.WriteString("Intensidade média por emoção:\n")
	for _, a := range intensity.AverageIntensity {
		fmt.Fprintf(&b, "- %s: %.1f (%s)\n", a.EmotionName, a.AvgIntensity, intensityDescription(a.AvgIntensity))
	}

	fmt.Fprintf(&b, "Proporção de emoções negativas: %.0f%%\n", dist.NegativeEmotionRatio*100)

	return b.String()
}

func intensityDescription(intensity float64) string {
	switch {
	case intensity >= 4.5:
		return "muito intensa"
	case intensity >= 3.5:
		return "intensa"
	case intensity >= 2.5:
		return "moderada"
	case intensity >= 1.5:
		return "leve"
	default:
		return "muito leve"
	}
}
