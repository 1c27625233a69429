package domain

import "time"

type ScheduledPostStatus string

const (
	ScheduledPostStatusScheduled         ScheduledPostStatus = "scheduled"
	ScheduledPostStatusProcessing        ScheduledPostStatus = "processing"
	ScheduledPostStatusPublished         ScheduledPostStatus = "published"
	ScheduledPostStatusFailed            ScheduledPostStatus = "failed"
	ScheduledPostStatusPermanentlyFailed ScheduledPostStatus = "permanently_failed"
	ScheduledPostStatusCancelled         ScheduledPostStatus = "cancelled"
)

const (
	// MaxPublishAttempts is the total number of publish attempts before a
	// scheduled post is marked permanently failed.
	MaxPublishAttempts = 5

	// RetryBaseDelay and RetryMaxDelay bound the exponential backoff
	// applied between failed publish attempts: 5m, 10m, 20m, 40m, 80m,
	// never more than 4h.
	RetryBaseDelay = 5 * time.Minute
	RetryMaxDelay  = 4 * time.Hour
)

// ScheduledPost pairs a post with a target social account and a future
// publish time. It doubles as the durable queue row the publish queue
// works through.
type ScheduledPost struct {
	ID              string              `json:"id"`
	PostID          string              `json:"post_id"`
	BrandID         string              `json:"brand_id"`
	SocialAccountID string              `json:"social_account_id"`
	Platform        Platform            `json:"platform"`
	ScheduledFor    time.Time           `json:"scheduled_for"`
	Status          ScheduledPostStatus `json:"status"`
	RetryCount      int                 `json:"retry_count"`
	NextAttemptAt   *time.Time          `json:"next_attempt_at,omitempty"`
	LastError       *string             `json:"last_error,omitempty"`
	ExternalPostID  *string             `json:"external_post_id,omitempty"`
	PublishedAt     *time.Time          `json:"published_at,omitempty"`
	CreatedAt       *time.Time          `json:"created_at,omitempty"`
	UpdatedAt       *time.Time          `json:"updated_at,omitempty"`
}

// NextRetryDelay returns the backoff delay to wait before attempt
// number retryCount+1 (5min doubled per previous attempt, capped at 4h).
func NextRetryDelay(retryCount int) time.Duration {
	delay := RetryBaseDelay
	for i := 0; i < retryCount; i++ {
		delay *= 2
		if delay >= RetryMaxDelay {
			return RetryMaxDelay
		}
	}
	if delay > RetryMaxDelay {
		return RetryMaxDelay
	}
	return delay
}

type UpdateScheduledPostRequest struct {
	ID           string     `json:"id"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
	Cancelled    *bool      `json:"cancelled,omitempty"`
}
