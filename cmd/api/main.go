package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/postpilot/postpilot-api/infrastructure/database/postgres"
	"github.com/postpilot/postpilot-api/infrastructure/integrator/llm"
	"github.com/postpilot/postpilot-api/infrastructure/integrator/platform"
	"github.com/postpilot/postpilot-api/infrastructure/integrator/stripeclient"
	"github.com/postpilot/postpilot-api/infrastructure/repository"
	"github.com/postpilot/postpilot-api/internal/api"
	"github.com/postpilot/postpilot-api/internal/config"
	"github.com/postpilot/postpilot-api/internal/scheduler"
	"github.com/postpilot/postpilot-api/internal/usecases/analytics"
	"github.com/postpilot/postpilot-api/internal/usecases/authenticating"
	"github.com/postpilot/postpilot-api/internal/usecases/billing"
	"github.com/postpilot/postpilot-api/internal/usecases/branding"
	"github.com/postpilot/postpilot-api/internal/usecases/connecting"
	"github.com/postpilot/postpilot-api/internal/usecases/contenting"
	"github.com/postpilot/postpilot-api/internal/usecases/engaging"
	"github.com/postpilot/postpilot-api/internal/usecases/scheduling"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	brandRepo := repository.NewBrandRepository(pgConn)
	postRepo := repository.NewPostRepository(pgConn)
	scheduledPostRepo := repository.NewScheduledPostRepository(pgConn)
	socialAccountRepo := repository.NewSocialAccountRepository(pgConn)
	engagementRepo := repository.NewEngagementRepository(pgConn)
	subscriptionRepo := repository.NewSubscriptionRepository(pgConn)
	usageRepo := repository.NewUsageMetricsRepository(pgConn)
	webhookEventRepo := repository.NewWebhookEventRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	platformClient := platform.NewClient(cfg)
	stripeClient := stripeclient.NewClient(cfg)

	generator, err := llm.NewGenerator(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize content generator")
	}

	brander := branding.NewService(brandRepo)
	biller := billing.NewService(subscriptionRepo, usageRepo, stripeClient, cfg)
	contenter := contenting.NewService(postRepo, brander, biller, generator)
	schedulingService := scheduling.NewService(
		scheduledPostRepo,
		postRepo,
		socialAccountRepo,
		brander,
		biller,
		platformClient,
		cfg,
	)
	engager := engaging.NewService(
		engagementRepo,
		socialAccountRepo,
		brander,
		biller,
		generator,
		platformClient,
	)
	connector := connecting.NewService(socialAccountRepo, brander, biller, platformClient, cfg)
	analyzer := analytics.NewService(scheduledPostRepo, engagementRepo, usageRepo, brander, biller)

	publishQueueService := scheduler.NewPublishQueueService(schedulingService, cfg)
	engagementSyncService := scheduler.NewEngagementSyncService(
		socialAccountRepo,
		engager,
		platformClient,
		cfg,
	)
	usageRollupService := scheduler.NewUsageRollupService(webhookEventRepo, cfg)

	if err := publishQueueService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start publish queue scheduler")
	} else {
		logrus.Info("publish queue scheduler started")
	}

	if err := engagementSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start engagement sync scheduler")
	} else {
		logrus.Info("engagement sync scheduler started")
	}

	if err := usageRollupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start usage rollup scheduler")
	} else {
		logrus.Info("usage rollup scheduler started")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator:         authenticator,
		Brander:               brander,
		Contenter:             contenter,
		Scheduler:             schedulingService,
		Engager:               engager,
		Connector:             connector,
		Analyzer:              analyzer,
		Biller:                biller,
		WebhookEventRepo:      webhookEventRepo,
		PublishQueueService:   publishQueueService,
		EngagementSyncService: engagementSyncService,
		UsageRollupService:    usageRollupService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
