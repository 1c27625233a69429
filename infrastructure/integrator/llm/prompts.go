package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/postpilot/postpilot-api/internal/domain"
)

const (
	contentSystemPrompt = `You are a social media copywriter. Write platform-native posts in the brand's voice. Respond only with JSON matching the requested schema.`

	replySystemPrompt = `You are a community manager replying on behalf of a brand. Keep replies short, human and on-voice. Never promise refunds or commitments. Respond only with JSON: {"reply": "..."}.`

	classifySystemPrompt = `You classify inbound social media messages. Respond only with JSON: {"sentiment": "positive|neutral|negative|strongly_negative", "intent": "question|complaint|praise|lead|spam|other"}.`
)

func brandContext(brand *domain.Brand) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Brand: %s\n", brand.Name)
	if brand.Description != "" {
		fmt.Fprintf(&b, "About: %s\n", brand.Description)
	}
	if brand.Industry != "" {
		fmt.Fprintf(&b, "Industry: %s\n", brand.Industry)
	}
	if brand.ToneOfVoice != "" {
		fmt.Fprintf(&b, "Tone of voice: %s\n", brand.ToneOfVoice)
	}
	if brand.TargetAudience != "" {
		fmt.Fprintf(&b, "Target audience: %s\n", brand.TargetAudience)
	}
	if len(brand.Keywords) > 0 {
		fmt.Fprintf(&b, "Keywords: %s\n", strings.Join(brand.Keywords, ", "))
	}
	return b.String()
}

func (g *GeminiGenerator) GeneratePostVariants(ctx context.Context, brand *domain.Brand, req PostGenerationRequest) ([]PostVariant, error) {
	count := req.VariantCount
	if count <= 0 {
		count = 3
	}

	var prompt strings.Builder
	prompt.WriteString(brandContext(brand))
	fmt.Fprintf(&prompt, "\nWrite %d distinct %s post variants about: %s\n", count, req.Platform, req.Topic)
	if req.ExtraContext != "" {
		fmt.Fprintf(&prompt, "Additional context: %s\n", req.ExtraContext)
	}
	prompt.WriteString(`Respond with JSON: {"variants": [{"content": "...", "hashtags": ["#..."]}]}`)

	var out struct {
		Variants []PostVariant `json:"variants"`
	}
	if err := g.generateJSON(ctx, contentSystemPrompt, prompt.String(), &out); err != nil {
		return nil, err
	}

	if len(out.Variants) == 0 {
		return nil, fmt.Errorf("model returned no variants")
	}

	return out.Variants, nil
}

func (g *GeminiGenerator) DraftReply(ctx context.Context, brand *domain.Brand, item *domain.EngagementItem) (string, error) {
	var prompt strings.Builder
	prompt.WriteString(brandContext(brand))
	fmt.Fprintf(&prompt, "\nA %s on %s from @%s", item.Type, item.Platform, item.AuthorHandle)
	if item.Sentiment != "" {
		fmt.Fprintf(&prompt, " (sentiment: %s, intent: %s)", item.Sentiment, item.Intent)
	}
	fmt.Fprintf(&prompt, ":\n%q\n\nDraft a reply.", item.Content)

	var out struct {
		Reply string `json:"reply"`
	}
	if err := g.generateJSON(ctx, replySystemPrompt, prompt.String(), &out); err != nil {
		return "", err
	}

	if out.Reply == "" {
		return "", fmt.Errorf("model returned an empty reply")
	}

	return out.Reply, nil
}

func (g *GeminiGenerator) ClassifyEngagement(ctx context.Context, content string) (*Classification, error) {
	prompt := fmt.Sprintf("Classify this message:\n%q", content)

	var out Classification
	if err := g.generateJSON(ctx, classifySystemPrompt, prompt, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
