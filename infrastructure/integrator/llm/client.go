package llm

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/postpilot/postpilot-api/internal/config"
	"github.com/postpilot/postpilot-api/internal/domain"
	"google.golang.org/genai"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Generator is the model-facing surface used by content generation and
// engagement triage.
type Generator interface {
	GeneratePostVariants(ctx context.Context, brand *domain.Brand, req PostGenerationRequest) ([]PostVariant, error)
	DraftReply(ctx context.Context, brand *domain.Brand, item *domain.EngagementItem) (string, error)
	ClassifyEngagement(ctx context.Context, content string) (*Classification, error)
}

// PostGenerationRequest carries the user-provided inputs for a
// generation run. Brand voice comes from the brand profile.
type PostGenerationRequest struct {
	Topic        string          `json:"topic"`
	Platform     domain.Platform `json:"platform"`
	VariantCount int             `json:"variant_count"`
	ExtraContext string          `json:"extra_context,omitempty"`
}

type PostVariant struct {
	Content  string   `json:"content"`
	Hashtags []string `json:"hashtags"`
}

// Classification is the model's sentiment/intent read of an inbound
// engagement, consumed by the triage scorer.
type Classification struct {
	Sentiment domain.Sentiment        `json:"sentiment"`
	Intent    domain.EngagementIntent `json:"intent"`
}

type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGenerator(ctx context.Context, cfg *config.Config) (Generator, error) {
	if cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("LLM API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.LLM.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	model := cfg.LLM.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &GeminiGenerator{
		client: client,
		model:  model,
	}, nil
}

func (g *GeminiGenerator) generateJSON(ctx context.Context, system, prompt string, out any) error {
	result, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			ResponseMIMEType:  "application/json",
		},
	)
	if err != nil {
		return fmt.Errorf("generating content: %w", err)
	}

	text := result.Text()
	if text == "" {
		return fmt.Errorf("model returned an empty response")
	}

	if err := json.UnmarshalFromString(text, out); err != nil {
		return fmt.Errorf("decoding model response: %w", err)
	}

	return nil
}
