package insight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// ErrNoAPIKey is returned when the Gemini API key is missing
var ErrNoAPIKey = errors.New("gemini api key not set")

// contentGenerator is the slice of the genai Models service used here
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiProvider asks Gemini for a JSON-shaped monthly reflection
type GeminiProvider struct {
	models contentGenerator
	model  string
	logger *zap.Logger
}

// NewGeminiProvider creates a provider backed by the Gemini API
func NewGeminiProvider(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return newGeminiProvider(client.Models, model, logger), nil
}

func newGeminiProvider(models contentGenerator, model string, logger *zap.Logger) *GeminiProvider {
	return &GeminiProvider{
		models: models,
		model:  model,
		logger: logger,
	}
}

// Prompt builds the Spanish request text for the month
func Prompt(monthName string, year int) string {
	return fmt.Sprintf("Genera una breve reflexión profesional mensual para %s de %d. "+
		"Incluye una frase motivadora, un enfoque estratégico para el mes y un breve dato histórico interesante. "+
		"Todo el contenido debe estar en español.", monthName, year)
}

// responseSchema requires the three string fields of MonthlyInsight
func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"quote":          {Type: genai.TypeString},
			"focus":          {Type: genai.TypeString},
			"historicalNote": {Type: genai.TypeString},
		},
		Required: []string{"quote", "focus", "historicalNote"},
	}
}

// Insight performs a single GenerateContent round trip
func (p *GeminiProvider) Insight(ctx context.Context, monthName string, year int) (MonthlyInsight, error) {
	p.logger.Debug("Requesting monthly insight",
		zap.String("model", p.model),
		zap.String("month", monthName),
		zap.Int("year", year))

	resp, err := p.models.GenerateContent(ctx, p.model, genai.Text(Prompt(monthName, year)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(),
	})
	if err != nil {
		return MonthlyInsight{}, fmt.Errorf("gemini request failed: %w", err)
	}

	return parseInsight(resp.Text())
}

// parseInsight decodes the JSON body and checks the required fields
func parseInsight(text string) (MonthlyInsight, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return MonthlyInsight{}, fmt.Errorf("empty response")
	}

	var result MonthlyInsight
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return MonthlyInsight{}, fmt.Errorf("failed to decode insight: %w", err)
	}

	var missing []string
	if result.Quote == "" {
		missing = append(missing, "quote")
	}
	if result.Focus == "" {
		missing = append(missing, "focus")
	}
	if result.HistoricalNote == "" {
		missing = append(missing, "historicalNote")
	}
	if len(missing) > 0 {
		return MonthlyInsight{}, fmt.Errorf("insight missing fields: %s", strings.Join(missing, ", "))
	}

	return result, nil
}
