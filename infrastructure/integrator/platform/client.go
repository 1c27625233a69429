package platform

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/postpilot/postpilot-api/internal/config"
	"github.com/postpilot/postpilot-api/internal/domain"
)

// ErrTokenExpired is returned when a platform rejects the stored access
// token. Callers flip the account to token_expired and stop retrying.
var ErrTokenExpired = errors.New("platform access token expired")

type Client interface {
	PublishPost(ctx context.Context, account *domain.SocialAccount, post *domain.Post) (string, error)
	AuthorizeURL(platform domain.Platform, state string) (string, error)
	ExchangeCode(ctx context.Context, platform domain.Platform, code string) (*TokenResponse, error)
	FetchProfile(ctx context.Context, platform domain.Platform, accessToken string) (*Profile, error)
	FetchEngagements(ctx context.Context, account *domain.SocialAccount, since time.Time) ([]RemoteEngagement, error)
	SendReply(ctx context.Context, account *domain.SocialAccount, engagementExternalID, message string) error
}

// TokenResponse is the normalized result of an OAuth code exchange.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// Profile identifies the platform account the token belongs to.
type Profile struct {
	ExternalID string `json:"id"`
	Username   string `json:"username"`
}

// RemoteEngagement is a comment/DM/mention as fetched from a platform,
// before triage.
type RemoteEngagement struct {
	ExternalID   string                `json:"id"`
	Type         domain.EngagementType `json:"type"`
	AuthorHandle string                `json:"author_handle"`
	AuthorName   string                `json:"author_name"`
	IsInfluencer bool                  `json:"is_influencer"`
	Content      string                `json:"content"`
	ReceivedAt   time.Time             `json:"received_at"`
}

// endpoints holds the per-network API roots. The publish and engagement
// paths follow each network's current v-latest API.
type endpoints struct {
	AuthURL    string
	TokenURL   string
	APIBaseURL string
}

var platformEndpoints = map[domain.Platform]endpoints{
	domain.PlatformInstagram: {
		AuthURL:    "https://api.instagram.com/oauth/authorize",
		TokenURL:   "https://api.instagram.com/oauth/access_token",
		APIBaseURL: "https://graph.instagram.com/v21.0",
	},
	domain.PlatformFacebook: {
		AuthURL:    "https://www.facebook.com/v21.0/dialog/oauth",
		TokenURL:   "https://graph.facebook.com/v21.0/oauth/access_token",
		APIBaseURL: "https://graph.facebook.com/v21.0",
	},
	domain.PlatformLinkedin: {
		AuthURL:    "https://www.linkedin.com/oauth/v2/authorization",
		TokenURL:   "https://www.linkedin.com/oauth/v2/accessToken",
		APIBaseURL: "https://api.linkedin.com/v2",
	},
	domain.PlatformX: {
		AuthURL:    "https://twitter.com/i/oauth2/authorize",
		TokenURL:   "https://api.twitter.com/2/oauth2/token",
		APIBaseURL: "https://api.twitter.com/2",
	},
}

type credentials struct {
	ClientID     string
	ClientSecret string
}

type PlatformClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &PlatformClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *PlatformClient) credentialsFor(platform domain.Platform) (credentials, error) {
	switch platform {
	case domain.PlatformInstagram:
		return credentials{c.cfg.Platforms.InstagramClientID, c.cfg.Platforms.InstagramClientSecret}, nil
	case domain.PlatformFacebook:
		return credentials{c.cfg.Platforms.FacebookClientID, c.cfg.Platforms.FacebookClientSecret}, nil
	case domain.PlatformLinkedin:
		return credentials{c.cfg.Platforms.LinkedinClientID, c.cfg.Platforms.LinkedinClientSecret}, nil
	case domain.PlatformX:
		return credentials{c.cfg.Platforms.XClientID, c.cfg.Platforms.XClientSecret}, nil
	default:
		return credentials{}, errors.New("unsupported platform: " + string(platform))
	}
}

func (c *PlatformClient) endpointsFor(platform domain.Platform) (endpoints, error) {
	eps, ok := platformEndpoints[platform]
	if !ok {
		return endpoints{}, errors.New("unsupported platform: " + string(platform))
	}
	return eps, nil
}
