package domain

import "time"

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformLinkedin  Platform = "linkedin"
	PlatformX         Platform = "x"
)

// KnownPlatforms lists every platform the publisher can target, in the
// order they appear in the connect UI.
var KnownPlatforms = []Platform{
	PlatformInstagram,
	PlatformFacebook,
	PlatformLinkedin,
	PlatformX,
}

func (p Platform) Valid() bool {
	for _, known := range KnownPlatforms {
		if p == known {
			return true
		}
	}
	return false
}

type SocialAccountStatus string

const (
	SocialAccountStatusConnected    SocialAccountStatus = "connected"
	SocialAccountStatusTokenExpired SocialAccountStatus = "token_expired"
	SocialAccountStatusRevoked      SocialAccountStatus = "revoked"
)

// SocialAccount is a connected platform account (result of an OAuth
// flow) that scheduled posts are published through.
type SocialAccount struct {
	ID             string              `json:"id"`
	BrandID        string              `json:"brand_id"`
	Platform       Platform            `json:"platform"`
	ExternalID     string              `json:"external_id"`
	Username       string              `json:"username"`
	AccessToken    string              `json:"-"`
	RefreshToken   string              `json:"-"`
	TokenExpiresAt *time.Time          `json:"token_expires_at,omitempty"`
	Status         SocialAccountStatus `json:"status"`
	CreatedAt      *time.Time          `json:"created_at,omitempty"`
	UpdatedAt      *time.Time          `json:"updated_at,omitempty"`
}
