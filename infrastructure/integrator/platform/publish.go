package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/postpilot/postpilot-api/internal/domain"
	"github.com/postpilot/postpilot-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type publishRequest struct {
	Message   string   `json:"message"`
	MediaURLs []string `json:"media_urls,omitempty"`
}

type publishResponse struct {
	ID string `json:"id"`
}

// PublishPost pushes the post content to the account's platform and
// returns the platform-side post id.
func (c *PlatformClient) PublishPost(ctx context.Context, account *domain.SocialAccount, post *domain.Post) (string, error) {
	eps, err := c.endpointsFor(account.Platform)
	if err != nil {
		return "", err
	}

	message := post.Content
	if len(post.Hashtags) > 0 {
		message = message + "\n\n" + strings.Join(post.Hashtags, " ")
	}

	body, err := json.Marshal(publishRequest{
		Message:   message,
		MediaURLs: post.MediaURLs,
	})
	if err != nil {
		return "", fmt.Errorf("encoding publish request: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"platform": account.Platform,
		"post_id":  post.ID,
	}).Debug("publish payload: ", utils.PrettyJson(body))

	url := fmt.Sprintf("%s/%s/posts", eps.APIBaseURL, account.ExternalID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating publish request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+account.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("publishing to %s: %w", account.Platform, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", ErrTokenExpired
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("publish to %s failed with status %s: %s", account.Platform, resp.Status, string(raw))
	}

	var published publishResponse
	if err := json.NewDecoder(resp.Body).Decode(&published); err != nil {
		return "", fmt.Errorf("decoding publish response: %w", err)
	}

	return published.ID, nil
}

// SendReply posts an approved response back to the originating
// comment/DM thread.
func (c *PlatformClient) SendReply(ctx context.Context, account *domain.SocialAccount, engagementExternalID, message string) error {
	eps, err := c.endpointsFor(account.Platform)
	if err != nil {
		return err
	}

	body, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return fmt.Errorf("encoding reply: %w", err)
	}

	url := fmt.Sprintf("%s/%s/replies", eps.APIBaseURL, engagementExternalID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating reply request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+account.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending reply on %s: %w", account.Platform, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrTokenExpired
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("reply on %s failed with status %s: %s", account.Platform, resp.Status, string(raw))
	}

	return nil
}
