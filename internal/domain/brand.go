package domain

import "time"

// Brand is a tenant's marketing identity. Everything the content
// generator produces is grounded on these fields.
type Brand struct {
	ID             string     `json:"id"`
	OwnerID        int        `json:"owner_id"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	Industry       string     `json:"industry,omitempty"`
	ToneOfVoice    string     `json:"tone_of_voice,omitempty"`
	TargetAudience string     `json:"target_audience,omitempty"`
	Keywords       []string   `json:"keywords,omitempty"`
	Deleted        bool       `json:"-"`
	DeletedAt      *time.Time `json:"-"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type UpdateBrandRequest struct {
	ID             string    `json:"id"`
	Name           *string   `json:"name,omitempty"`
	Description    *string   `json:"description,omitempty"`
	Industry       *string   `json:"industry,omitempty"`
	ToneOfVoice    *string   `json:"tone_of_voice,omitempty"`
	TargetAudience *string   `json:"target_audience,omitempty"`
	Keywords       *[]string `json:"keywords,omitempty"`
}
