// File: services/intelligence/geminiClient.go
package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"horselink/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient wraps the generative model used for care insights. The model
// is constrained to JSON output; the rest of the engine only ever sees the
// decoded models.CareInsight.
type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.ResponseMIMEType = "application/json"
	return &GeminiClient{model: model}, nil
}

// GenerateCareInsight asks the model for a structured care summary of one
// horse given its completed service history.
func (g *GeminiClient) GenerateCareInsight(ctx context.Context, horse models.Horse, history []models.Booking) (*models.CareInsight, error) {
	prompt := buildInsightPrompt(horse, history)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	var insight models.CareInsight
	if err := json.Unmarshal([]byte(sb.String()), &insight); err != nil {
		return nil, fmt.Errorf("gemini returned invalid insight JSON: %w", err)
	}
	insight.HorseID = horse.ID
	insight.GeneratedAt = time.Now()
	return &insight, nil
}

func buildInsightPrompt(horse models.Horse, history []models.Booking) string {
	var sb strings.Builder
	sb.WriteString("Summarise the care situation of a horse as JSON with fields ")
	sb.WriteString(`"summary" (string), "recommendations" (string array) and "riskFlags" (string array).` + "\n")
	fmt.Fprintf(&sb, "Horse: %s, breed %s, born %d.\n", horse.Name, horse.Breed, horse.BirthYear)
	if horse.Notes != "" {
		fmt.Fprintf(&sb, "Owner notes: %s\n", horse.Notes)
	}
	sb.WriteString("Completed services:\n")
	for _, b := range history {
		fmt.Fprintf(&sb, "- %s on %s\n", b.ServiceName, b.Date)
	}
	return sb.String()
}
