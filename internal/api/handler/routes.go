package handler

import (
	"net/http"

	"github.com/postpilot/postpilot-api/infrastructure/repository"
	"github.com/postpilot/postpilot-api/internal/api/handler/router"
	"github.com/postpilot/postpilot-api/internal/config"
	"github.com/postpilot/postpilot-api/internal/usecases/analytics"
	"github.com/postpilot/postpilot-api/internal/usecases/authenticating"
	"github.com/postpilot/postpilot-api/internal/usecases/billing"
	"github.com/postpilot/postpilot-api/internal/usecases/branding"
	"github.com/postpilot/postpilot-api/internal/usecases/connecting"
	"github.com/postpilot/postpilot-api/internal/usecases/contenting"
	"github.com/postpilot/postpilot-api/internal/usecases/engaging"
	"github.com/postpilot/postpilot-api/internal/usecases/scheduling"
	"github.com/postpilot/postpilot-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/api/auth/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/api/auth/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Brands(service branding.Brander) []router.Route {
	return []router.Route{
		{
			Path:        "/api/brands",
			Method:      http.MethodPost,
			Handler:     CreateBrand(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/brands",
			Method:      http.MethodGet,
			Handler:     ListBrands(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/brands/:id",
			Method:      http.MethodGet,
			Handler:     GetBrand(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/brands/:id",
			Method:      http.MethodPatch,
			Handler:     UpdateBrand(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/brands/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteBrand(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Content(service contenting.Contenter) []router.Route {
	return []router.Route{
		{
			Path:        "/api/content/generate",
			Method:      http.MethodPost,
			Handler:     GenerateContent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/posts",
			Method:      http.MethodPost,
			Handler:     CreatePost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/posts",
			Method:      http.MethodGet,
			Handler:     ListPosts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/posts/:id",
			Method:      http.MethodGet,
			Handler:     GetPost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/posts/:id",
			Method:      http.MethodPatch,
			Handler:     UpdatePost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/posts/:id",
			Method:      http.MethodDelete,
			Handler:     DeletePost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Scheduler(service scheduling.Scheduler, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:        "/api/scheduler/schedule",
			Method:      http.MethodPost,
			Handler:     SchedulePost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/scheduler/schedules",
			Method:      http.MethodGet,
			Handler:     ListSchedules(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/scheduler/schedule/:id",
			Method:      http.MethodGet,
			Handler:     GetSchedule(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/scheduler/schedule/:id",
			Method:      http.MethodPatch,
			Handler:     UpdateSchedule(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/scheduler/schedule/:id",
			Method:      http.MethodDelete,
			Handler:     CancelSchedule(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/scheduler/process",
			Method:      http.MethodPost,
			Handler:     ProcessQueue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ServiceToken(cfg.Auth.ServiceToken)},
		},
	}
}

func Engagement(service engaging.Engager) []router.Route {
	return []router.Route{
		{
			Path:        "/api/engagement/items",
			Method:      http.MethodGet,
			Handler:     ListEngagements(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/engagement/generate",
			Method:      http.MethodPost,
			Handler:     GenerateEngagementResponse(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/engagement/approve",
			Method:      http.MethodPost,
			Handler:     ApproveEngagementResponse(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/engagement/items/:id",
			Method:      http.MethodDelete,
			Handler:     IgnoreEngagement(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Webhooks skip JWT auth; Stripe authenticates with its signature
// header alone, n8n with the service token plus an HMAC body signature.
func Webhooks(
	biller billing.Biller,
	engager engaging.Engager,
	eventRepo repository.WebhookEventRepository,
	cfg *config.Config,
) []router.Route {
	return []router.Route{
		{
			Path:    "/api/webhooks/stripe",
			Method:  http.MethodPost,
			Handler: StripeWebhook(biller, eventRepo, cfg),
		},
		{
			Path:        "/api/webhooks/n8n",
			Method:      http.MethodPost,
			Handler:     N8NWebhook(engager, eventRepo, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.ServiceToken(cfg.Auth.ServiceToken)},
		},
	}
}

func OAuth(service connecting.Connector) []router.Route {
	return []router.Route{
		{
			Path:        "/api/oauth/:platform/connect",
			Method:      http.MethodPost,
			Handler:     StartOAuthConnect(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:    "/api/oauth/:platform/callback",
			Method:  http.MethodGet,
			Handler: OAuthCallback(service),
		},
		{
			Path:        "/api/accounts",
			Method:      http.MethodGet,
			Handler:     ListSocialAccounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/accounts/:id",
			Method:      http.MethodDelete,
			Handler:     DisconnectSocialAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Analytics(service analytics.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/api/analytics/overview",
			Method:      http.MethodGet,
			Handler:     AnalyticsOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/analytics/history",
			Method:      http.MethodGet,
			Handler:     PublishHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Billing(service billing.Biller) []router.Route {
	return []router.Route{
		{
			Path:        "/api/billing/subscription",
			Method:      http.MethodGet,
			Handler:     GetSubscription(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/api/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/api/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
