package analytics

import (
	"time"

	"github.com/postpilot/postpilot-api/infrastructure/repository"
	"github.com/postpilot/postpilot-api/internal/domain"
	"github.com/postpilot/postpilot-api/internal/usecases/billing"
	"github.com/postpilot/postpilot-api/internal/usecases/branding"
)

type Analyzer interface {
	Overview(ownerID int, brandID string) (*domain.AnalyticsOverview, error)
	PublishHistory(ownerID int, brandID string, since *time.Time) ([]*domain.PostPublishRecord, error)
}

type Service struct {
	scheduledPostRepo repository.ScheduledPostRepository
	engagementRepo    repository.EngagementRepository
	usageRepo         repository.UsageMetricsRepository
	brander           branding.Brander
	biller            billing.Biller
}

func NewService(
	scheduledPostRepo repository.ScheduledPostRepository,
	engagementRepo repository.EngagementRepository,
	usageRepo repository.UsageMetricsRepository,
	brander branding.Brander,
	biller billing.Biller,
) Analyzer {
	return &Service{
		scheduledPostRepo: scheduledPostRepo,
		engagementRepo:    engagementRepo,
		usageRepo:         usageRepo,
		brander:           brander,
		biller:            biller,
	}
}

// Overview assembles the dashboard summary for the current calendar
// month (UTC).
func (s *Service) Overview(ownerID int, brandID string) (*domain.AnalyticsOverview, error) {
	brand, err := s.brander.GetBrand(ownerID, brandID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	published, err := s.scheduledPostRepo.CountByBrandStatusSince(brand.ID, domain.ScheduledPostStatusPublished, monthStart)
	if err != nil {
		return nil, err
	}

	failed, err := s.scheduledPostRepo.CountByBrandStatusSince(brand.ID, domain.ScheduledPostStatusPermanentlyFailed, monthStart)
	if err != nil {
		return nil, err
	}

	pending, err := s.scheduledPostRepo.CountPendingByBrand(brand.ID)
	if err != nil {
		return nil, err
	}

	engagementTotals, spamItems, err := s.engagementRepo.CountByBrandSentiment(brand.ID)
	if err != nil {
		return nil, err
	}

	month := domain.UsageMonth(now)
	usage, err := s.usageRepo.GetMonthUsage(brand.ID, month)
	if err != nil {
		return nil, err
	}

	plan, limits, err := s.biller.LimitsForUser(ownerID)
	if err != nil {
		return nil, err
	}

	return &domain.AnalyticsOverview{
		BrandID:          brand.ID,
		Month:            month,
		PublishedPosts:   published,
		FailedPosts:      failed,
		PendingPosts:     pending,
		EngagementTotals: engagementTotals,
		SpamItems:        spamItems,
		Usage:            usage,
		Limits:           limits,
		Plan:             plan,
	}, nil
}

// PublishHistory lists recent publish attempts, optionally only those
// scheduled on or after since.
func (s *Service) PublishHistory(ownerID int, brandID string, since *time.Time) ([]*domain.PostPublishRecord, error) {
	brand, err := s.brander.GetBrand(ownerID, brandID)
	if err != nil {
		return nil, err
	}

	records, err := s.scheduledPostRepo.ListPublishHistory(brand.ID)
	if err != nil {
		return nil, err
	}

	if since == nil {
		return records, nil
	}

	filtered := make([]*domain.PostPublishRecord, 0, len(records))
	for _, record := range records {
		if !record.ScheduledFor.Before(*since) {
			filtered = append(filtered, record)
		}
	}

	return filtered, nil
}
