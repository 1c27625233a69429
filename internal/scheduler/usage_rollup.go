package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/postpilot/postpilot-api/infrastructure/repository"
	"github.com/postpilot/postpilot-api/internal/config"
	"github.com/sirupsen/logrus"
)

// webhookEventRetention is how long processed webhook dedup records are
// kept. Stripe retries for at most 3 days, n8n far less.
const webhookEventRetention = 90 * 24 * time.Hour

type UsageRollupConfig struct {
	CronSchedule string
	Enabled      bool
}

// UsageRollupService is the monthly housekeeping job: usage counters
// are keyed by month so they never need resetting, but old webhook
// dedup records are pruned here.
type UsageRollupService struct {
	scheduler          *gocron.Scheduler
	config             UsageRollupConfig
	webhookEventRepo   repository.WebhookEventRepository
	runRunning         bool
	runMutex           sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

func NewUsageRollupService(webhookEventRepo repository.WebhookEventRepository, appConfig *config.Config) *UsageRollupService {
	rollupConfig := UsageRollupConfig{
		CronSchedule: appConfig.UsageRollup.CronSchedule,
		Enabled:      appConfig.UsageRollup.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": rollupConfig.CronSchedule,
		"enabled":       rollupConfig.Enabled,
	}).Info("usage rollup scheduler configuration loaded")

	return &UsageRollupService{
		scheduler:        gocron.NewScheduler(time.UTC),
		config:           rollupConfig,
		webhookEventRepo: webhookEventRepo,
	}
}

func (s *UsageRollupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("usage rollup scheduler disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting usage rollup scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runRollup()
	})
	if err != nil {
		return fmt.Errorf("scheduling usage rollup: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping usage rollup scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *UsageRollupService) runRollup() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("usage rollup already in progress, skipping")
		return
	}
	s.runRunning = true
	startTime := time.Now()
	s.lastRunStartedAt = startTime
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.runRunning = false
		s.runMutex.Unlock()
	}()

	logrus.Info("starting usage rollup run")

	cutoff := time.Now().Add(-webhookEventRetention)
	pruned, err := s.webhookEventRepo.DeleteEventsBefore(cutoff)
	if err != nil {
		logrus.WithError(err).Error("failed to prune old webhook events")
		return
	}

	s.runMutex.Lock()
	s.lastRunCompletedAt = time.Now()
	s.runMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration":      time.Since(startTime).String(),
		"pruned_events": pruned,
		"event_cutoff":  cutoff.Format(time.DateOnly),
	}).Info("usage rollup run completed")
}

// TriggerManualRun starts one rollup run outside the cron schedule.
func (s *UsageRollupService) TriggerManualRun() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("usage rollup already in progress, ignoring manual trigger")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("starting manual usage rollup run")
	go s.runRollup()
}

func (s *UsageRollupService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}
