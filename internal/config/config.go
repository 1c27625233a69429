package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	LLM            LLM            `mapstructure:",squash"`
	Stripe         Stripe         `mapstructure:",squash"`
	N8N            N8N            `mapstructure:",squash"`
	Platforms      Platforms      `mapstructure:",squash"`
	PublishQueue   PublishQueue   `mapstructure:",squash"`
	EngagementSync EngagementSync `mapstructure:",squash"`
	UsageRollup    UsageRollup    `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	SecretKey string `mapstructure:"auth_secret_key"`
	// ServiceToken authorizes service-to-service calls such as
	// POST /api/scheduler/process triggered by an external cron.
	ServiceToken string `mapstructure:"auth_service_token"`
}

type LLM struct {
	APIKey string `mapstructure:"llm_api_key"`
	Model  string `mapstructure:"llm_model"`
}

type Stripe struct {
	APIKey        string `mapstructure:"stripe_api_key"`
	BaseURL       string `mapstructure:"stripe_base_url"`
	WebhookSecret string `mapstructure:"stripe_webhook_secret"`
	// Price IDs map a Stripe price to a plan when a checkout completes.
	PriceStarter string `mapstructure:"stripe_price_starter"`
	PricePro     string `mapstructure:"stripe_price_pro"`
}

type N8N struct {
	WebhookSecret string `mapstructure:"n8n_webhook_secret"`
}

// Platforms carries the per-network OAuth apps plus the publish rate
// caps enforced by the queue processor.
type Platforms struct {
	InstagramClientID     string  `mapstructure:"instagram_client_id"`
	InstagramClientSecret string  `mapstructure:"instagram_client_secret"`
	FacebookClientID      string  `mapstructure:"facebook_client_id"`
	FacebookClientSecret  string  `mapstructure:"facebook_client_secret"`
	LinkedinClientID      string  `mapstructure:"linkedin_client_id"`
	LinkedinClientSecret  string  `mapstructure:"linkedin_client_secret"`
	XClientID             string  `mapstructure:"x_client_id"`
	XClientSecret         string  `mapstructure:"x_client_secret"`
	OAuthRedirectBaseURL  string  `mapstructure:"oauth_redirect_base_url"`
	PublishRatePerMinute  float64 `mapstructure:"platform_publish_rate_per_minute"`
	PublishBurst          int     `mapstructure:"platform_publish_burst"`
}

type PublishQueue struct {
	CronSchedule string `mapstructure:"publish_queue_cron"`
	BatchSize    int    `mapstructure:"publish_queue_batch_size"`
	Enabled      bool   `mapstructure:"publish_queue_enabled"`
}

type EngagementSync struct {
	CronSchedule        string `mapstructure:"engagement_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"engagement_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"engagement_sync_enabled"`
}

type UsageRollup struct {
	CronSchedule string `mapstructure:"usage_rollup_cron"`
	Enabled      bool   `mapstructure:"usage_rollup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/postpilot")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SERVICE_TOKEN", "your_service_token")

	viper.SetDefault("LLM_API_KEY", "")
	viper.SetDefault("LLM_MODEL", "gemini-2.0-flash")

	viper.SetDefault("STRIPE_API_KEY", "")
	viper.SetDefault("STRIPE_BASE_URL", "https://api.stripe.com/v1")
	viper.SetDefault("STRIPE_WEBHOOK_SECRET", "")
	viper.SetDefault("STRIPE_PRICE_STARTER", "")
	viper.SetDefault("STRIPE_PRICE_PRO", "")

	viper.SetDefault("N8N_WEBHOOK_SECRET", "")

	viper.SetDefault("OAUTH_REDIRECT_BASE_URL", "http://localhost:8000")
	viper.SetDefault("PLATFORM_PUBLISH_RATE_PER_MINUTE", 10.0) // per platform
	viper.SetDefault("PLATFORM_PUBLISH_BURST", 5)

	viper.SetDefault("PUBLISH_QUEUE_CRON", "*/5 * * * *") // every 5 minutes
	viper.SetDefault("PUBLISH_QUEUE_BATCH_SIZE", 50)
	viper.SetDefault("PUBLISH_QUEUE_ENABLED", true)

	viper.SetDefault("ENGAGEMENT_SYNC_CRON", "*/15 * * * *") // every 15 minutes
	viper.SetDefault("ENGAGEMENT_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("ENGAGEMENT_SYNC_ENABLED", false)

	viper.SetDefault("USAGE_ROLLUP_CRON", "0 1 1 * *") // first day of month, 1am
	viper.SetDefault("USAGE_ROLLUP_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile loads .env via godotenv, trying the usual locations so the
// API can be started from the repo root or from cmd/api.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not resolve current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from:", location)
			return
		}
	}

	logrus.Warn("no .env file found in any known location")
}
