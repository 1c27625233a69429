package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/postpilot/postpilot-api/infrastructure/integrator/stripeclient"
	"github.com/postpilot/postpilot-api/infrastructure/repository"
	"github.com/postpilot/postpilot-api/internal/config"
	"github.com/postpilot/postpilot-api/internal/domain"
	"github.com/postpilot/postpilot-api/internal/usecases/billing"
	"github.com/postpilot/postpilot-api/internal/usecases/engaging"
	"github.com/postpilot/postpilot-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// maxWebhookBody bounds how much of a webhook payload is read.
const maxWebhookBody = 1 << 20

// StripeWebhook verifies the Stripe-Signature header, deduplicates by
// event id and applies the event to the subscription state.
func StripeWebhook(biller billing.Biller, eventRepo repository.WebhookEventRepository, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - StripeWebhook")

		payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "could not read payload", nil)
			return
		}

		signature := r.Header.Get("Stripe-Signature")
		if err := stripeclient.VerifySignature(payload, signature, cfg.Stripe.WebhookSecret, stripeclient.DefaultSignatureTolerance, time.Now()); err != nil {
			logrus.WithError(err).Warn("stripe webhook signature rejected")
			apiErrors.WriteError(w, apiErrors.ErrInvalidSignature, "invalid signature", nil)
			return
		}

		event, err := stripeclient.ParseEvent(payload)
		if err != nil || event.ID == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "malformed event payload", nil)
			return
		}

		firstDelivery, err := eventRepo.RecordEvent(event.ID, "stripe", event.Type)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "could not record event", nil)
			return
		}
		if !firstDelivery {
			// Retried delivery of an event already applied.
			w.WriteHeader(http.StatusOK)
			return
		}

		if err := biller.HandleStripeEvent(r.Context(), event); err != nil {
			logrus.WithError(err).WithField("event_id", event.ID).Error("failed to apply stripe event")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "event processing failed", nil)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// N8NEngagementEvent is the payload the n8n workflows deliver when a
// new comment, DM or mention is captured.
type N8NEngagementEvent struct {
	EventID      string    `json:"event_id"`
	BrandID      string    `json:"brand_id"`
	Platform     string    `json:"platform"`
	ExternalID   string    `json:"external_id"`
	Type         string    `json:"type"`
	AuthorHandle string    `json:"author_handle"`
	AuthorName   string    `json:"author_name"`
	IsInfluencer bool      `json:"is_influencer"`
	Content      string    `json:"content"`
	ReceivedAt   time.Time `json:"received_at"`
}

// N8NWebhook ingests engagement events pushed by n8n workflows. The
// payload is authenticated with an HMAC-SHA256 hex digest of the body.
func N8NWebhook(engager engaging.Engager, eventRepo repository.WebhookEventRepository, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - N8NWebhook")

		payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "could not read payload", nil)
			return
		}

		if !verifyN8NSignature(payload, r.Header.Get("X-N8N-Signature"), cfg.N8N.WebhookSecret) {
			logrus.Warn("n8n webhook signature rejected")
			apiErrors.WriteError(w, apiErrors.ErrInvalidSignature, "invalid signature", nil)
			return
		}

		var event N8NEngagementEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "malformed event payload", nil)
			return
		}

		if event.EventID == "" || event.BrandID == "" || event.ExternalID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "event_id, brand_id and external_id are required", nil)
			return
		}

		platform := domain.Platform(event.Platform)
		if !platform.Valid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "unsupported platform", nil)
			return
		}

		firstDelivery, err := eventRepo.RecordEvent(event.EventID, "n8n", "engagement.received")
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "could not record event", nil)
			return
		}
		if !firstDelivery {
			w.WriteHeader(http.StatusOK)
			return
		}

		item, inserted, err := engager.IngestItem(r.Context(), &domain.EngagementItem{
			BrandID:      event.BrandID,
			Platform:     platform,
			ExternalID:   event.ExternalID,
			Type:         domain.EngagementType(event.Type),
			AuthorHandle: event.AuthorHandle,
			AuthorName:   event.AuthorName,
			IsInfluencer: event.IsInfluencer,
			Content:      event.Content,
			ReceivedAt:   event.ReceivedAt,
		})
		if err != nil {
			logrus.WithError(err).WithField("event_id", event.EventID).Error("failed to ingest engagement event")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "event processing failed", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"item_id":  item.ID,
			"inserted": inserted,
		})
	}
}

func verifyN8NSignature(payload []byte, header, secret string) bool {
	if header == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := mac.Sum(nil)

	received, err := hex.DecodeString(header)
	if err != nil {
		return false
	}

	return hmac.Equal(received, expected)
}
