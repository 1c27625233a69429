package domain

import "time"

type EngagementType string

const (
	EngagementTypeComment EngagementType = "comment"
	EngagementTypeDM      EngagementType = "dm"
	EngagementTypeMention EngagementType = "mention"
)

type Sentiment string

const (
	SentimentPositive         Sentiment = "positive"
	SentimentNeutral          Sentiment = "neutral"
	SentimentNegative         Sentiment = "negative"
	SentimentStronglyNegative Sentiment = "strongly_negative"
)

type EngagementIntent string

const (
	IntentQuestion  EngagementIntent = "question"
	IntentComplaint EngagementIntent = "complaint"
	IntentPraise    EngagementIntent = "praise"
	IntentLead      EngagementIntent = "lead"
	IntentSpam      EngagementIntent = "spam"
	IntentOther     EngagementIntent = "other"
)

type EngagementStatus string

const (
	EngagementStatusPending   EngagementStatus = "pending"
	EngagementStatusDrafted   EngagementStatus = "drafted"
	EngagementStatusResponded EngagementStatus = "responded"
	EngagementStatusIgnored   EngagementStatus = "ignored"
)

// EngagementItem is an inbound comment/DM/mention to be triaged and
// optionally answered. Priority and the spam flag are filled in by the
// triage pass.
type EngagementItem struct {
	ID           string           `json:"id"`
	BrandID      string           `json:"brand_id"`
	Platform     Platform         `json:"platform"`
	ExternalID   string           `json:"external_id"`
	Type         EngagementType   `json:"type"`
	AuthorHandle string           `json:"author_handle"`
	AuthorName   string           `json:"author_name,omitempty"`
	IsInfluencer bool             `json:"is_influencer"`
	Content      string           `json:"content"`
	Sentiment    Sentiment        `json:"sentiment,omitempty"`
	Intent       EngagementIntent `json:"intent,omitempty"`
	Priority     int              `json:"priority"`
	IsSpam       bool             `json:"is_spam"`
	Status       EngagementStatus `json:"status"`
	ReceivedAt   time.Time        `json:"received_at"`
	CreatedAt    *time.Time       `json:"created_at,omitempty"`
	UpdatedAt    *time.Time       `json:"updated_at,omitempty"`
}

type GeneratedResponseStatus string

const (
	GeneratedResponseStatusPending  GeneratedResponseStatus = "pending"
	GeneratedResponseStatusApproved GeneratedResponseStatus = "approved"
	GeneratedResponseStatusRejected GeneratedResponseStatus = "rejected"
	GeneratedResponseStatusSent     GeneratedResponseStatus = "sent"
)

// GeneratedResponse is an AI-drafted reply awaiting human approval.
type GeneratedResponse struct {
	ID               string                  `json:"id"`
	EngagementItemID string                  `json:"engagement_item_id"`
	BrandID          string                  `json:"brand_id"`
	Content          string                  `json:"content"`
	EditedContent    *string                 `json:"edited_content,omitempty"`
	Status           GeneratedResponseStatus `json:"status"`
	ApprovedBy       *int                    `json:"approved_by,omitempty"`
	SentAt           *time.Time              `json:"sent_at,omitempty"`
	CreatedAt        *time.Time              `json:"created_at,omitempty"`
	UpdatedAt        *time.Time              `json:"updated_at,omitempty"`
}
