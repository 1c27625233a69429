package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/postpilot/postpilot-api/internal/domain"
)

// AuthorizeURL builds the URL the frontend redirects the user to so
// they can grant access on the platform side.
func (c *PlatformClient) AuthorizeURL(platform domain.Platform, state string) (string, error) {
	eps, err := c.endpointsFor(platform)
	if err != nil {
		return "", err
	}

	creds, err := c.credentialsFor(platform)
	if err != nil {
		return "", err
	}

	authorize, err := url.Parse(eps.AuthURL)
	if err != nil {
		return "", fmt.Errorf("parsing authorize URL: %w", err)
	}

	query := authorize.Query()
	query.Set("client_id", creds.ClientID)
	query.Set("redirect_uri", c.redirectURI(platform))
	query.Set("response_type", "code")
	query.Set("state", state)
	authorize.RawQuery = query.Encode()

	return authorize.String(), nil
}

// ExchangeCode trades the OAuth authorization code for access tokens.
func (c *PlatformClient) ExchangeCode(ctx context.Context, platform domain.Platform, code string) (*TokenResponse, error) {
	eps, err := c.endpointsFor(platform)
	if err != nil {
		return nil, err
	}

	creds, err := c.credentialsFor(platform)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("client_id", creds.ClientID)
	form.Set("client_secret", creds.ClientSecret)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", c.redirectURI(platform))
	form.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, eps.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exchanging code on %s: %w", platform, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("code exchange on %s failed with status %s: %s", platform, resp.Status, string(raw))
	}

	var token TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("decoding token response: %w", err)
	}

	return &token, nil
}

// FetchProfile resolves the external account id and handle for a fresh
// token, so the account can be stored under a stable key.
func (c *PlatformClient) FetchProfile(ctx context.Context, platform domain.Platform, accessToken string) (*Profile, error) {
	eps, err := c.endpointsFor(platform)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, eps.APIBaseURL+"/me", nil)
	if err != nil {
		return nil, fmt.Errorf("creating profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching profile on %s: %w", platform, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrTokenExpired
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile fetch on %s failed with status: %s", platform, resp.Status)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decoding profile response: %w", err)
	}

	return &profile, nil
}

func (c *PlatformClient) redirectURI(platform domain.Platform) string {
	return fmt.Sprintf("%s/api/oauth/%s/callback", c.cfg.Platforms.OAuthRedirectBaseURL, platform)
}
