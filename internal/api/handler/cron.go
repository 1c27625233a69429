package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/postpilot/postpilot-api/internal/scheduler"
	"github.com/postpilot/postpilot-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// Cron job names accepted by the manual trigger endpoint.
const (
	CronJobTypePublishQueue   = "publish-queue"
	CronJobTypeEngagementSync = "engagement-sync"
	CronJobTypeUsageRollup    = "usage-rollup"
	CronJobTypeAll            = "all"
)

// CronJobServices holds the background services the cron endpoints can
// trigger and inspect.
type CronJobServices struct {
	PublishQueueService   *scheduler.PublishQueueService
	EngagementSyncService *scheduler.EngagementSyncService
	UsageRollupService    *scheduler.UsageRollupService
}

// RunCronJob triggers one background job manually. Admin only.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		userClaims, ok := userFromContext(r)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "only administrators can run cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type not specified", nil)
			return
		}

		switch cronType {
		case CronJobTypePublishQueue:
			if services.PublishQueueService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "publish queue service not available", nil)
				return
			}
			services.PublishQueueService.TriggerManualRun()

		case CronJobTypeEngagementSync:
			if services.EngagementSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "engagement sync service not available", nil)
				return
			}
			services.EngagementSyncService.TriggerManualSync()

		case CronJobTypeUsageRollup:
			if services.UsageRollupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "usage rollup service not available", nil)
				return
			}
			services.UsageRollupService.TriggerManualRun()

		case CronJobTypeAll:
			if services.PublishQueueService != nil {
				services.PublishQueueService.TriggerManualRun()
			}
			if services.EngagementSyncService != nil {
				services.EngagementSyncService.TriggerManualSync()
			}
			if services.UsageRollupService != nil {
				services.UsageRollupService.TriggerManualRun()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type. accepted values: publish-queue, engagement-sync, usage-rollup, all", nil)
			return
		}

		response := map[string]any{
			"message": "cron job started",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus reports the last run of every background job. Admin
// only.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := userFromContext(r)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "only administrators can check cron job status", nil)
			return
		}

		status := map[string]any{
			"publish-queue":   services.PublishQueueService.GetStatus(),
			"engagement-sync": services.EngagementSyncService.GetStatus(),
			"usage-rollup":    services.UsageRollupService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
