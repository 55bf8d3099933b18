package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"development"`

	// Record store (Supabase Postgres) and auth
	DBConnectionString string `envconfig:"DB_CONNECTION_STRING" required:"true" validate:"required"`
	JWTSecret          string `envconfig:"SUPABASE_JWT_SECRET" required:"true" validate:"required"`

	// Stripe
	StripeSecretKey     string `envconfig:"STRIPE_SECRET_KEY" required:"true" validate:"required"`
	StripeWebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET" required:"true" validate:"required"`
	StripePriceEnhanced string `envconfig:"STRIPE_PRICE_ENHANCED" required:"true" validate:"required"`

	// Public URL of the web app, used as the base of every Stripe redirect
	AppURL string `envconfig:"APP_URL" required:"true" validate:"url"`

	MaxAudioBytes      int64    `envconfig:"MAX_AUDIO_BYTES" default:"10485760" validate:"gt=0"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// Optional audio archive on Supabase storage (S3 compatible). Leave the
	// bucket empty to disable.
	S3URL       string `envconfig:"SUPABASE_S3_URL"`
	S3Bucket    string `envconfig:"SUPABASE_S3_BUCKET"`
	S3Region    string `envconfig:"SUPABASE_S3_REGION"`
	S3AccessKey string `envconfig:"SUPABASE_S3_ACCESS_KEY"`
	S3SecretKey string `envconfig:"SUPABASE_S3_SECRET_KEY"`

	// Optional tier change notifications. Leave the topic empty to disable.
	GCPProjectID       string `envconfig:"GCP_PROJECT_ID"`
	PubSubTierTopic    string `envconfig:"PUBSUB_TIER_TOPIC"`
	PubSubEmulatorHost string `envconfig:"PUBSUB_EMULATOR_HOST"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field formats and the all-or-nothing optional groups, and
// normalises AppURL.
func (c *Config) Validate() error {
	c.AppURL = strings.TrimRight(c.AppURL, "/")

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.ArchiveEnabled() {
		var missing []string
		for _, f := range []struct{ name, value string }{
			{"SUPABASE_S3_URL", c.S3URL},
			{"SUPABASE_S3_REGION", c.S3Region},
			{"SUPABASE_S3_ACCESS_KEY", c.S3AccessKey},
			{"SUPABASE_S3_SECRET_KEY", c.S3SecretKey},
		} {
			if f.value == "" {
				missing = append(missing, f.name)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("invalid config: audio archive enabled but missing %s", strings.Join(missing, ", "))
		}
	}

	if c.NotificationsEnabled() && c.GCPProjectID == "" {
		return errors.New("invalid config: PUBSUB_TIER_TOPIC set without GCP_PROJECT_ID")
	}
	return nil
}

// ArchiveEnabled reports whether uploaded clips are copied to object storage.
func (c *Config) ArchiveEnabled() bool {
	return c.S3Bucket != ""
}

// NotificationsEnabled reports whether tier changes are published to Pub/Sub.
func (c *Config) NotificationsEnabled() bool {
	return c.PubSubTierTopic != ""
}

// IsDevelopment reports whether the service runs locally.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
