package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/postpilot/postpilot-api/internal/domain"
)

type engagementListResponse struct {
	Data []RemoteEngagement `json:"data"`
}

// FetchEngagements pulls comments, DMs and mentions newer than since
// for the account. The sync scheduler calls this per connected account.
func (c *PlatformClient) FetchEngagements(ctx context.Context, account *domain.SocialAccount, since time.Time) ([]RemoteEngagement, error) {
	eps, err := c.endpointsFor(account.Platform)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s/engagements?since=%d", eps.APIBaseURL, account.ExternalID, since.Unix())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating engagements request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+account.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching engagements on %s: %w", account.Platform, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrTokenExpired
	}

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("engagements fetch on %s failed with status %s: %s", account.Platform, resp.Status, string(raw))
	}

	var list engagementListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decoding engagements response: %w", err)
	}

	return list.Data, nil
}
