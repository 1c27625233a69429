package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/postpilot/postpilot-api/internal/config"
	"github.com/postpilot/postpilot-api/internal/usecases/scheduling"
	"github.com/sirupsen/logrus"
)

// PublishQueueConfig holds the queue processor schedule settings.
type PublishQueueConfig struct {
	CronSchedule string
	BatchSize    int
	Enabled      bool
}

// PublishQueueService runs the due-post publishing loop on a cron, with
// single-flight protection so overlapping runs never double-publish.
type PublishQueueService struct {
	scheduler          *gocron.Scheduler
	config             PublishQueueConfig
	schedulingService  scheduling.Scheduler
	runRunning         bool
	runMutex           sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRunResult      *scheduling.ProcessResult
}

func NewPublishQueueService(schedulingService scheduling.Scheduler, appConfig *config.Config) *PublishQueueService {
	queueConfig := PublishQueueConfig{
		CronSchedule: appConfig.PublishQueue.CronSchedule,
		BatchSize:    appConfig.PublishQueue.BatchSize,
		Enabled:      appConfig.PublishQueue.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": queueConfig.CronSchedule,
		"batch_size":    queueConfig.BatchSize,
		"enabled":       queueConfig.Enabled,
	}).Info("publish queue scheduler configuration loaded")

	return &PublishQueueService{
		scheduler:         gocron.NewScheduler(time.UTC),
		config:            queueConfig,
		schedulingService: schedulingService,
	}
}

func (s *PublishQueueService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("publish queue scheduler disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting publish queue scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runQueue()
	})
	if err != nil {
		return fmt.Errorf("scheduling publish queue run: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping publish queue scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *PublishQueueService) runQueue() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("publish queue run already in progress, skipping")
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

	result, err := s.schedulingService.ProcessQueue(time.Now().UTC())
	if err != nil {
		logrus.WithError(err).Error("publish queue run failed")
		return
	}

	s.runMutex.Lock()
	s.lastRunResult = result
	s.lastRunCompletedAt = time.Now()
	s.runMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"claimed":   result.Claimed,
		"published": result.Published,
	}).Info("publish queue run completed")
}

// TriggerManualRun starts one queue run outside the cron schedule.
func (s *PublishQueueService) TriggerManualRun() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("publish queue run already in progress, ignoring manual trigger")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("starting manual publish queue run")
	go s.runQueue()
}

// GetStatus reads the last-run fields under the same mutex the run loop
// writes them with.
func (s *PublishQueueService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	status := map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"batch_size":            s.config.BatchSize,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}

	if s.lastRunResult != nil {
		status["last_run_result"] = s.lastRunResult
	}

	return status
}
