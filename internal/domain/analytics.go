package domain

import "time"

// AnalyticsOverview is the dashboard summary for one brand.
type AnalyticsOverview struct {
	BrandID          string                  `json:"brand_id"`
	Month            string                  `json:"month"`
	PublishedPosts   int                     `json:"published_posts"`
	FailedPosts      int                     `json:"failed_posts"`
	PendingPosts     int                     `json:"pending_posts"`
	EngagementTotals map[Sentiment]int       `json:"engagement_totals"`
	SpamItems        int                     `json:"spam_items"`
	Usage            map[UsageMetricKind]int `json:"usage"`
	Limits           PlanLimits              `json:"limits"`
	Plan             Plan                    `json:"plan"`
}

// PostPublishRecord is one row of the per-post publish history view.
type PostPublishRecord struct {
	ScheduledPostID string              `json:"scheduled_post_id"`
	PostID          string              `json:"post_id"`
	Platform        Platform            `json:"platform"`
	Status          ScheduledPostStatus `json:"status"`
	ScheduledFor    time.Time           `json:"scheduled_for"`
	PublishedAt     *time.Time          `json:"published_at,omitempty"`
	RetryCount      int                 `json:"retry_count"`
	LastError       *string             `json:"last_error,omitempty"`
}
