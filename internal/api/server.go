package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/postpilot/postpilot-api/infrastructure/repository"
	"github.com/postpilot/postpilot-api/internal/api/handler"
	"github.com/postpilot/postpilot-api/internal/api/handler/router"
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
	"github.com/postpilot/postpilot-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

// Services groups everything the route table needs.
type Services struct {
	Authenticator authenticating.Authenticator
	Brander       branding.Brander
	Contenter     contenting.Contenter
	Scheduler     scheduling.Scheduler
	Engager       engaging.Engager
	Connector     connecting.Connector
	Analyzer      analytics.Analyzer
	Biller        billing.Biller

	WebhookEventRepo repository.WebhookEventRepository

	PublishQueueService   *scheduler.PublishQueueService
	EngagementSyncService *scheduler.EngagementSyncService
	UsageRollupService    *scheduler.UsageRollupService
}

func New(cfg *config.Config, services Services) (*Server, error) {
	cronServices := handler.CronJobServices{
		PublishQueueService:   services.PublishQueueService,
		EngagementSyncService: services.EngagementSyncService,
		UsageRollupService:    services.UsageRollupService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Brands(services.Brander)...),
		router.WithRoutes(handler.Content(services.Contenter)...),
		router.WithRoutes(handler.Scheduler(services.Scheduler, cfg)...),
		router.WithRoutes(handler.Engagement(services.Engager)...),
		router.WithRoutes(handler.OAuth(services.Connector)...),
		router.WithRoutes(handler.Analytics(services.Analyzer)...),
		router.WithRoutes(handler.Billing(services.Biller)...),
		router.WithRoutes(handler.Webhooks(services.Biller, services.Engager, services.WebhookEventRepo, cfg)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(services.Authenticator),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("error while running server")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("starting graceful server shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("http server stopped")
	return nil
}
