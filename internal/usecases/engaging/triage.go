package engaging

import (
	"strings"

	"github.com/postpilot/postpilot-api/internal/domain"
	"github.com/postpilot/postpilot-api/pkg/utils"
)

const (
	basePriority          = 5
	influencerBoost       = 3
	stronglyNegativeBoost = 2
	complaintBoost        = 2
	maxPriority           = 10

	spamURLThreshold    = 3
	minMeaningfulLength = 3
)

// scorePriority ranks an item for the triage inbox: influencers and
// angry complaints float to the top.
func scorePriority(item *domain.EngagementItem) int {
	priority := basePriority

	if item.IsInfluencer {
		priority += influencerBoost
	}

	if item.Sentiment == domain.SentimentStronglyNegative {
		priority += stronglyNegativeBoost
	}

	if item.Intent == domain.IntentComplaint {
		priority += complaintBoost
	}

	if priority > maxPriority {
		priority = maxPriority
	}

	return priority
}

// isSpam applies the cheap heuristics that run before (and regardless
// of) the model classification.
func isSpam(item *domain.EngagementItem) bool {
	if item.Intent == domain.IntentSpam {
		return true
	}

	if utils.CountURLs(item.Content) > spamURLThreshold {
		return true
	}

	if len(strings.TrimSpace(item.Content)) < minMeaningfulLength {
		return true
	}

	return false
}
