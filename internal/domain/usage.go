package domain

import "time"

type UsageMetricKind string

const (
	UsageMetricGenerations    UsageMetricKind = "ai_generations"
	UsageMetricScheduledPosts UsageMetricKind = "scheduled_posts"
	UsageMetricResponses      UsageMetricKind = "ai_responses"
)

// UsageMetric is a per-brand, per-calendar-month (UTC) counter. Month is
// stored as "2006-01" so the unique key (brand_id, kind, month) makes
// increments race-free in the database.
type UsageMetric struct {
	BrandID   string          `json:"brand_id"`
	Kind      UsageMetricKind `json:"kind"`
	Month     string          `json:"month"`
	Count     int             `json:"count"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
}

// UsageMonth formats t as the usage bucket key.
func UsageMonth(t time.Time) string {
	return t.UTC().Format("2006-01")
}
