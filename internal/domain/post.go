package domain

import "time"

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPublished PostStatus = "published"
	PostStatusArchived  PostStatus = "archived"
)

type Post struct {
	ID          string     `json:"id"`
	BrandID     string     `json:"brand_id"`
	Content     string     `json:"content"`
	Hashtags    []string   `json:"hashtags,omitempty"`
	MediaURLs   []string   `json:"media_urls,omitempty"`
	Platform    Platform   `json:"platform"`
	Status      PostStatus `json:"status"`
	AIGenerated bool       `json:"ai_generated"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type UpdatePostRequest struct {
	ID        string      `json:"id"`
	Content   *string     `json:"content,omitempty"`
	Hashtags  *[]string   `json:"hashtags,omitempty"`
	MediaURLs *[]string   `json:"media_urls,omitempty"`
	Platform  *Platform   `json:"platform,omitempty"`
	Status    *PostStatus `json:"status,omitempty"`
}
