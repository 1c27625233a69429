package engaging

import (
	"context"
	"errors"
	"time"

	"github.com/postpilot/postpilot-api/infrastructure/integrator/llm"
	"github.com/postpilot/postpilot-api/infrastructure/integrator/platform"
	"github.com/postpilot/postpilot-api/infrastructure/repository"
	"github.com/postpilot/postpilot-api/internal/domain"
	"github.com/postpilot/postpilot-api/internal/usecases/billing"
	"github.com/postpilot/postpilot-api/internal/usecases/branding"
	"github.com/sirupsen/logrus"
)

var (
	ErrItemNotFound     = errors.New("engagement item not found")
	ErrResponseNotFound = errors.New("generated response not found")
	ErrItemIsSpam       = errors.New("spam items do not get responses")
	ErrAlreadyResolved  = errors.New("response already approved or rejected")
)

type Engager interface {
	IngestItem(ctx context.Context, item *domain.EngagementItem) (*domain.EngagementItem, bool, error)
	ListItems(ownerID int, brandID string, statuses []domain.EngagementStatus) ([]*domain.EngagementItem, error)
	GenerateResponse(ctx context.Context, ownerID int, itemID string) (*domain.GeneratedResponse, error)
	ApproveResponse(ctx context.Context, ownerID int, req *ApproveRequest) (*domain.GeneratedResponse, error)
	IgnoreItem(ownerID int, itemID string) error
}

// ApproveRequest is the input of POST /api/engagement/approve. Approve
// false rejects the draft; EditedContent overrides the drafted text.
type ApproveRequest struct {
	ResponseID    string  `json:"response_id"`
	Approve       bool    `json:"approve"`
	EditedContent *string `json:"edited_content,omitempty"`
}

type Service struct {
	engagementRepo    repository.EngagementRepository
	socialAccountRepo repository.SocialAccountRepository
	brander           branding.Brander
	biller            billing.Biller
	generator         llm.Generator
	publisher         platform.Client
}

func NewService(
	engagementRepo repository.EngagementRepository,
	socialAccountRepo repository.SocialAccountRepository,
	brander branding.Brander,
	biller billing.Biller,
	generator llm.Generator,
	publisher platform.Client,
) Engager {
	return &Service{
		engagementRepo:    engagementRepo,
		socialAccountRepo: socialAccountRepo,
		brander:           brander,
		biller:            biller,
		generator:         generator,
		publisher:         publisher,
	}
}

// IngestItem triages and stores one inbound engagement. Returns false
// when the item was already ingested (same platform + external id).
func (s *Service) IngestItem(ctx context.Context, item *domain.EngagementItem) (*domain.EngagementItem, bool, error) {
	if item.ReceivedAt.IsZero() {
		item.ReceivedAt = time.Now().UTC()
	}

	s.triage(ctx, item)

	inserted, err := s.engagementRepo.InsertEngagementItem(item)
	if err != nil {
		return nil, false, err
	}
	if !inserted {
		logrus.WithFields(logrus.Fields{
			"platform":    item.Platform,
			"external_id": item.ExternalID,
		}).Info("engagement item already ingested, skipping")
		return item, false, nil
	}

	return item, true, nil
}

// triage fills sentiment, intent, priority and the spam flag. The spam
// heuristics run first so obvious junk never reaches the model.
func (s *Service) triage(ctx context.Context, item *domain.EngagementItem) {
	if item.Sentiment == "" {
		item.Sentiment = domain.SentimentNeutral
	}
	if item.Intent == "" {
		item.Intent = domain.IntentOther
	}

	if !isSpam(item) {
		classification, err := s.generator.ClassifyEngagement(ctx, item.Content)
		if err != nil {
			logrus.WithError(err).Warn("engagement classification failed, keeping defaults")
		} else {
			item.Sentiment = classification.Sentiment
			item.Intent = classification.Intent
		}
	}

	item.IsSpam = isSpam(item)
	item.Priority = scorePriority(item)
	if item.IsSpam {
		item.Status = domain.EngagementStatusIgnored
	} else {
		item.Status = domain.EngagementStatusPending
	}
}

func (s *Service) ListItems(ownerID int, brandID string, statuses []domain.EngagementStatus) ([]*domain.EngagementItem, error) {
	if _, err := s.brander.GetBrand(ownerID, brandID); err != nil {
		return nil, err
	}

	return s.engagementRepo.ListEngagementItemsByBrand(brandID, statuses)
}

// GenerateResponse drafts an AI reply for the item. The draft stays
// pending until a human approves it.
func (s *Service) GenerateResponse(ctx context.Context, ownerID int, itemID string) (*domain.GeneratedResponse, error) {
	item, brand, err := s.loadOwnedItem(ownerID, itemID)
	if err != nil {
		return nil, err
	}

	if item.IsSpam {
		return nil, ErrItemIsSpam
	}

	if err := s.biller.CheckAllowance(ownerID, brand.ID, domain.UsageMetricResponses); err != nil {
		return nil, err
	}

	// Reuse an existing pending draft instead of stacking new ones.
	if existing, err := s.engagementRepo.GetPendingResponseByItem(item.ID); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	reply, err := s.generator.DraftReply(ctx, brand, item)
	if err != nil {
		return nil, err
	}

	response, err := s.engagementRepo.CreateGeneratedResponse(&domain.GeneratedResponse{
		EngagementItemID: item.ID,
		BrandID:          brand.ID,
		Content:          reply,
		Status:           domain.GeneratedResponseStatusPending,
	})
	if err != nil {
		return nil, err
	}

	if err := s.engagementRepo.UpdateEngagementStatus(item.ID, domain.EngagementStatusDrafted); err != nil {
		logrus.WithError(err).WithField("item_id", item.ID).Error("failed to flag item as drafted")
	}

	if err := s.biller.ConsumeUsage(brand.ID, domain.UsageMetricResponses); err != nil {
		logrus.WithError(err).WithField("brand_id", brand.ID).Error("failed to record response usage")
	}

	return response, nil
}

// ApproveResponse resolves a pending draft. Approval sends the reply
// through the platform; rejection just closes the draft.
func (s *Service) ApproveResponse(ctx context.Context, ownerID int, req *ApproveRequest) (*domain.GeneratedResponse, error) {
	response, err := s.engagementRepo.GetGeneratedResponseByID(req.ResponseID)
	if err != nil {
		return nil, err
	}
	if response == nil {
		return nil, ErrResponseNotFound
	}

	if _, err := s.brander.GetBrand(ownerID, response.BrandID); err != nil {
		return nil, ErrResponseNotFound
	}

	if response.Status != domain.GeneratedResponseStatusPending {
		return nil, ErrAlreadyResolved
	}

	item, err := s.engagementRepo.GetEngagementItemByID(response.EngagementItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	if !req.Approve {
		response.Status = domain.GeneratedResponseStatusRejected
		response.ApprovedBy = &ownerID
		if err := s.engagementRepo.UpdateGeneratedResponse(response); err != nil {
			return nil, err
		}
		return response, nil
	}

	message := response.Content
	if req.EditedContent != nil && *req.EditedContent != "" {
		message = *req.EditedContent
		response.EditedContent = req.EditedContent
	}

	account, err := s.sendableAccount(item)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.SendReply(ctx, account, item.ExternalID, message); err != nil {
		if errors.Is(err, platform.ErrTokenExpired) {
			if updateErr := s.socialAccountRepo.UpdateStatus(account.ID, domain.SocialAccountStatusTokenExpired); updateErr != nil {
				logrus.WithError(updateErr).Error("failed to flag account token as expired")
			}
		}
		return nil, err
	}

	now := time.Now().UTC()
	response.Status = domain.GeneratedResponseStatusSent
	response.ApprovedBy = &ownerID
	response.SentAt = &now
	if err := s.engagementRepo.UpdateGeneratedResponse(response); err != nil {
		return nil, err
	}

	if err := s.engagementRepo.UpdateEngagementStatus(item.ID, domain.EngagementStatusResponded); err != nil {
		logrus.WithError(err).WithField("item_id", item.ID).Error("failed to flag item as responded")
	}

	return response, nil
}

func (s *Service) IgnoreItem(ownerID int, itemID string) error {
	item, _, err := s.loadOwnedItem(ownerID, itemID)
	if err != nil {
		return err
	}

	return s.engagementRepo.UpdateEngagementStatus(item.ID, domain.EngagementStatusIgnored)
}

func (s *Service) loadOwnedItem(ownerID int, itemID string) (*domain.EngagementItem, *domain.Brand, error) {
	item, err := s.engagementRepo.GetEngagementItemByID(itemID)
	if err != nil {
		return nil, nil, err
	}
	if item == nil {
		return nil, nil, ErrItemNotFound
	}

	brand, err := s.brander.GetBrand(ownerID, item.BrandID)
	if err != nil {
		return nil, nil, ErrItemNotFound
	}

	return item, brand, nil
}

// sendableAccount finds the connected account of the item's platform to
// send the reply through.
func (s *Service) sendableAccount(item *domain.EngagementItem) (*domain.SocialAccount, error) {
	accounts, err := s.socialAccountRepo.ListSocialAccountsByBrand(item.BrandID)
	if err != nil {
		return nil, err
	}

	for _, account := range accounts {
		if account.Platform == item.Platform && account.Status == domain.SocialAccountStatusConnected {
			return account, nil
		}
	}

	return nil, errors.New("no connected account for platform " + string(item.Platform))
}
