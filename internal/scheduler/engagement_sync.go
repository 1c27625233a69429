package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/postpilot/postpilot-api/infrastructure/integrator/platform"
	"github.com/postpilot/postpilot-api/infrastructure/repository"
	"github.com/postpilot/postpilot-api/internal/config"
	"github.com/postpilot/postpilot-api/internal/domain"
	"github.com/postpilot/postpilot-api/internal/usecases/engaging"
	"github.com/sirupsen/logrus"
)

// syncLookback bounds how far back the engagement fetch reaches. The
// unique (platform, external_id) key makes overlap harmless.
const syncLookback = 48 * time.Hour

type EngagementSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	Enabled             bool
}

// EngagementSyncService polls every connected account for new comments,
// DMs and mentions and pushes them through triage.
type EngagementSyncService struct {
	scheduler           *gocron.Scheduler
	config              EngagementSyncConfig
	socialAccountRepo   repository.SocialAccountRepository
	engagingService     engaging.Engager
	client              platform.Client
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewEngagementSyncService(
	socialAccountRepo repository.SocialAccountRepository,
	engagingService engaging.Engager,
	client platform.Client,
	appConfig *config.Config,
) *EngagementSyncService {
	syncConfig := EngagementSyncConfig{
		CronSchedule:        appConfig.EngagementSync.CronSchedule,
		RequestDelaySeconds: appConfig.EngagementSync.RequestDelaySeconds,
		Enabled:             appConfig.EngagementSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"enabled":               syncConfig.Enabled,
	}).Info("engagement sync scheduler configuration loaded")

	return &EngagementSyncService{
		scheduler:         gocron.NewScheduler(time.UTC),
		config:            syncConfig,
		socialAccountRepo: socialAccountRepo,
		engagingService:   engagingService,
		client:            client,
	}
}

func (s *EngagementSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("engagement sync scheduler disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting engagement sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAccounts()
	})
	if err != nil {
		return fmt.Errorf("scheduling engagement sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping engagement sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *EngagementSyncService) syncAllAccounts() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("engagement sync already in progress, skipping")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	accounts, err := s.socialAccountRepo.ListConnectedAccounts()
	if err != nil {
		logrus.WithError(err).Error("failed to list accounts for engagement sync")
		return
	}

	if len(accounts) == 0 {
		logrus.Info("no connected accounts, nothing to sync")
		return
	}

	logrus.WithField("accounts", len(accounts)).Info("starting engagement sync for connected accounts")

	var ingested int
	for _, account := range accounts {
		ingested += s.syncAccount(account)

		// Space out the platform calls to avoid API throttling.
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"accounts": len(accounts),
		"ingested": ingested,
	}).Info("engagement sync completed")
}

func (s *EngagementSyncService) syncAccount(account *domain.SocialAccount) int {
	log := logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"brand_id":   account.BrandID,
		"platform":   account.Platform,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	remote, err := s.client.FetchEngagements(ctx, account, time.Now().Add(-syncLookback))
	if err != nil {
		if err == platform.ErrTokenExpired {
			if updateErr := s.socialAccountRepo.UpdateStatus(account.ID, domain.SocialAccountStatusTokenExpired); updateErr != nil {
				log.WithError(updateErr).Error("failed to flag account token as expired")
			}
		}
		log.WithError(err).Error("failed to fetch engagements for account")
		return 0
	}

	var ingested int
	for _, engagement := range remote {
		_, inserted, err := s.engagingService.IngestItem(ctx, &domain.EngagementItem{
			BrandID:      account.BrandID,
			Platform:     account.Platform,
			ExternalID:   engagement.ExternalID,
			Type:         engagement.Type,
			AuthorHandle: engagement.AuthorHandle,
			AuthorName:   engagement.AuthorName,
			IsInfluencer: engagement.IsInfluencer,
			Content:      engagement.Content,
			ReceivedAt:   engagement.ReceivedAt,
		})
		if err != nil {
			log.WithError(err).WithField("external_id", engagement.ExternalID).Error("failed to ingest engagement")
			continue
		}
		if inserted {
			ingested++
		}
	}

	if ingested > 0 {
		log.WithField("ingested", ingested).Info("new engagements ingested for account")
	}

	return ingested
}

// TriggerManualSync starts one sync sweep outside the cron schedule.
func (s *EngagementSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("engagement sync already in progress, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("starting manual engagement sync")
	go s.syncAllAccounts()
}

func (s *EngagementSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.Enabled,
		"cron":                   s.config.CronSchedule,
		"request_delay_s":        s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
