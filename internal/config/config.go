package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Port       uint16 `env:"PORT" envDefault:"4000"`
	IsTestMode bool   `env:"TEST_MODE"`
	Secret     string `env:"SECRET,required"`

	// SupabaseURL is the Postgres connection string of the Supabase
	// project. When it carries no password, SupabaseKey is injected as one.
	SupabaseURL string `env:"SUPABASE_URL,required"`
	SupabaseKey string `env:"SUPABASE_KEY"`

	RedisURL    string `env:"REDIS_URL,required"`
	RabbitmqURL string `env:"RABBITMQ_URL,required"`

	RabbitmqEmailExchange string `env:"RABBITMQ_EMAIL_EXCHANGE" envDefault:"just2kleen.emails"`
	RabbitmqEmailQueue    string `env:"RABBITMQ_EMAIL_QUEUE" envDefault:"confirmation-emails"`

	// BaseURL is the public address embedded into email links.
	BaseURL url.URL `env:"BASE_URL,required"`

	EmailBackend  string `env:"EMAIL_BACKEND" envDefault:"smtp"`
	EmailHost     string `env:"EMAIL_HOST"`
	EmailPort     int    `env:"EMAIL_PORT" envDefault:"465"`
	EmailUser     string `env:"EMAIL_USER"`
	EmailPassword string `env:"EMAIL_PASS"`
	EmailFrom     string `env:"EMAIL_FROM"`

	AwsRegion    string `env:"AWS_REGION"`
	AwsAccessKey string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey string `env:"AWS_SECRET_KEY"`

	SweepInterval           time.Duration `env:"SWEEP_INTERVAL" envDefault:"20m"`
	ResetTokenValidDuration time.Duration `env:"RESET_TOKEN_VALID_DURATION" envDefault:"2h"`

	PasswordHasher   string `env:"PASSWORD_HASHER" envDefault:"sha256"`
	BcryptHasherCost int    `env:"BCRYPT_HASHER_COST" envDefault:"10"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	SentryDSN string `env:"SENTRY_DSN"`
}

const (
	EmailBackendSMTP = "smtp"
	EmailBackendSES  = "ses"

	PasswordHasherSHA256 = "sha256"
	PasswordHasherBcrypt = "bcrypt"
)

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	switch cfg.EmailBackend {
	case EmailBackendSMTP:
		if cfg.EmailHost == "" || cfg.EmailUser == "" {
			return nil, fmt.Errorf("EMAIL_HOST and EMAIL_USER must be set for the smtp backend")
		}
	case EmailBackendSES:
		if cfg.AwsRegion == "" || cfg.AwsAccessKey == "" || cfg.AwsSecretKey == "" {
			return nil, fmt.Errorf("AWS_REGION, AWS_ACCESS_KEY and AWS_SECRET_KEY must be set for the ses backend")
		}
	default:
		return nil, fmt.Errorf("invalid EMAIL_BACKEND value: %s", cfg.EmailBackend)
	}

	switch cfg.PasswordHasher {
	case PasswordHasherSHA256, PasswordHasherBcrypt:
	default:
		return nil, fmt.Errorf("invalid PASSWORD_HASHER value: %s", cfg.PasswordHasher)
	}

	if cfg.EmailFrom == "" {
		cfg.EmailFrom = cfg.EmailUser
	}

	return cfg, nil
}

// PostgresqlURL builds the connection string for the Supabase database.
// Hosted Supabase hands out a URL without the password inlined, so the
// service key is set as the password when the URL does not carry one.
func (c *Config) PostgresqlURL() (string, error) {
	u, err := url.Parse(c.SupabaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid SUPABASE_URL value: %w", err)
	}
	if u.User != nil {
		if _, hasPassword := u.User.Password(); !hasPassword && c.SupabaseKey != "" {
			u.User = url.UserPassword(u.User.Username(), c.SupabaseKey)
		}
	}
	return u.String(), nil
}
