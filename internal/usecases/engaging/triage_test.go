package engaging

import (
	"testing"

	"github.com/postpilot/postpilot-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestScorePriority(t *testing.T) {
	tests := []struct {
		name     string
		item     *domain.EngagementItem
		expected int
	}{
		{
			name:     "plain comment gets the base priority",
			item:     &domain.EngagementItem{Sentiment: domain.SentimentNeutral, Intent: domain.IntentOther},
			expected: 5,
		},
		{
			name:     "influencer gets boosted",
			item:     &domain.EngagementItem{IsInfluencer: true, Sentiment: domain.SentimentPositive},
			expected: 8,
		},
		{
			name:     "strongly negative complaint gets both boosts",
			item:     &domain.EngagementItem{Sentiment: domain.SentimentStronglyNegative, Intent: domain.IntentComplaint},
			expected: 9,
		},
		{
			name: "priority is capped at ten",
			item: &domain.EngagementItem{
				IsInfluencer: true,
				Sentiment:    domain.SentimentStronglyNegative,
				Intent:       domain.IntentComplaint,
			},
			expected: 10,
		},
		{
			name:     "merely negative sentiment gets no boost",
			item:     &domain.EngagementItem{Sentiment: domain.SentimentNegative, Intent: domain.IntentQuestion},
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scorePriority(tt.item))
		})
	}
}

func TestIsSpam(t *testing.T) {
	tests := []struct {
		name     string
		item     *domain.EngagementItem
		expected bool
	}{
		{
			name:     "spam intent is always spam",
			item:     &domain.EngagementItem{Intent: domain.IntentSpam, Content: "great content, love your page"},
			expected: true,
		},
		{
			name: "three links is still acceptable",
			item: &domain.EngagementItem{
				Content: "check https://a.io https://b.io and https://c.io for details",
			},
			expected: false,
		},
		{
			name: "more than three links is spam",
			item: &domain.EngagementItem{
				Content: "https://a.io https://b.io https://c.io http://d.io www.e.io free stuff",
			},
			expected: true,
		},
		{
			name:     "too short content is spam",
			item:     &domain.EngagementItem{Content: "  ok "},
			expected: true,
		},
		{
			name:     "normal question is not spam",
			item:     &domain.EngagementItem{Intent: domain.IntentQuestion, Content: "do you ship to Portugal?"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isSpam(tt.item))
		})
	}
}
