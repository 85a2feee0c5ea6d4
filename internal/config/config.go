package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Plan sources accepted by PLAN_SOURCE
const (
	PlanSourceTemplate = "template"
	PlanSourceRemote   = "remote"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Plan engine
	PlanSource        string `mapstructure:"PLAN_SOURCE"`
	RoleTemplatesPath string `mapstructure:"ROLE_TEMPLATES_PATH"`
	Timezone          string `mapstructure:"TIMEZONE"`

	// YandexGPT remote plan generation
	YandexGPTIAMToken    string  `mapstructure:"YANDEX_GPT_IAM_TOKEN"`
	YandexGPTCatalogID   string  `mapstructure:"YANDEX_GPT_CATALOG_ID"`
	YandexGPTTemperature float64 `mapstructure:"YANDEX_GPT_TEMPERATURE"`
	YandexGPTMaxTokens   int     `mapstructure:"YANDEX_GPT_MAX_TOKENS"`
	YandexGPTTimeoutSec  int     `mapstructure:"YANDEX_GPT_TIMEOUT_SEC"`

	// Redis: completion cache and refresh tokens
	RedisAddr             string `mapstructure:"REDIS_ADDR"`
	RedisPassword         string `mapstructure:"REDIS_PASSWORD"`
	RedisDB               int    `mapstructure:"REDIS_DB"`
	CompletionCacheTTLMin int    `mapstructure:"COMPLETION_CACHE_TTL_MIN"`

	// S3-compatible document storage
	S3Endpoint        string `mapstructure:"S3_ENDPOINT"`
	S3AccessKeyID     string `mapstructure:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `mapstructure:"S3_SECRET_ACCESS_KEY"`
	S3Bucket          string `mapstructure:"S3_BUCKET"`
	S3Region          string `mapstructure:"S3_REGION"`
	S3UseSSL          bool   `mapstructure:"S3_USE_SSL"`
	MaxUploadMB       int    `mapstructure:"MAX_UPLOAD_MB"`

	// RabbitMQ event bus
	RabbitMQURL string `mapstructure:"RABBITMQ_URL"`

	// SMTP notifications
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`

	// LDAP configuration
	LDAPHost               string `mapstructure:"LDAP_HOST"`
	LDAPPort               string `mapstructure:"LDAP_PORT"`
	LDAPBindDN             string `mapstructure:"LDAP_BIND_DN"`
	LDAPBindPW             string `mapstructure:"LDAP_BIND_PW"`
	LDAPBaseDN             string `mapstructure:"LDAP_BASE_DN"`
	LDAPInsecureSkipVerify bool   `mapstructure:"LDAP_INSECURE_SKIP_VERIFY"`
	LDAPTimeoutSec         int    `mapstructure:"LDAP_TIMEOUT_SEC"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "onboarding")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Plan engine defaults
	viper.SetDefault("PLAN_SOURCE", PlanSourceTemplate)
	viper.SetDefault("ROLE_TEMPLATES_PATH", "")
	viper.SetDefault("TIMEZONE", "UTC")

	// YandexGPT defaults
	viper.SetDefault("YANDEX_GPT_IAM_TOKEN", "")
	viper.SetDefault("YANDEX_GPT_CATALOG_ID", "")
	viper.SetDefault("YANDEX_GPT_TEMPERATURE", 0.3)
	viper.SetDefault("YANDEX_GPT_MAX_TOKENS", 2000)
	viper.SetDefault("YANDEX_GPT_TIMEOUT_SEC", 30)

	// Redis defaults - empty address keeps everything in memory
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("COMPLETION_CACHE_TTL_MIN", 24*60)

	// S3 defaults - empty endpoint disables documents
	viper.SetDefault("S3_ENDPOINT", "")
	viper.SetDefault("S3_ACCESS_KEY_ID", "")
	viper.SetDefault("S3_SECRET_ACCESS_KEY", "")
	viper.SetDefault("S3_BUCKET", "onboarding-documents")
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("S3_USE_SSL", false)
	viper.SetDefault("MAX_UPLOAD_MB", 20)

	// RabbitMQ defaults - empty URL drops events
	viper.SetDefault("RABBITMQ_URL", "")

	// SMTP defaults - empty host drops mail
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM", "onboarding@example.com")

	// LDAP defaults - empty host disables directory search
	viper.SetDefault("LDAP_HOST", "")
	viper.SetDefault("LDAP_PORT", "636")
	viper.SetDefault("LDAP_BIND_DN", "")
	viper.SetDefault("LDAP_BIND_PW", "")
	viper.SetDefault("LDAP_BASE_DN", "")
	viper.SetDefault("LDAP_INSECURE_SKIP_VERIFY", false)
	viper.SetDefault("LDAP_TIMEOUT_SEC", 10)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.PlanSource {
	case PlanSourceTemplate:
	case PlanSourceRemote:
		if !config.RemoteGeneratorEnabled() {
			return fmt.Errorf("PLAN_SOURCE=remote requires YANDEX_GPT_IAM_TOKEN and YANDEX_GPT_CATALOG_ID")
		}
	default:
		return fmt.Errorf("unknown PLAN_SOURCE %q: expected %q or %q", config.PlanSource, PlanSourceTemplate, PlanSourceRemote)
	}

	if config.Timezone != "" {
		if _, err := time.LoadLocation(config.Timezone); err != nil {
			return fmt.Errorf("invalid TIMEZONE %q: %w", config.Timezone, err)
		}
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// RemoteGeneratorEnabled reports whether YandexGPT credentials are present
func (c *Config) RemoteGeneratorEnabled() bool {
	return c.YandexGPTIAMToken != "" && c.YandexGPTCatalogID != ""
}

// RedisEnabled reports whether a Redis server is configured
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// ObjectStorageEnabled reports whether document storage is configured
func (c *Config) ObjectStorageEnabled() bool {
	return c.S3Endpoint != ""
}

// EventsEnabled reports whether a message broker is configured
func (c *Config) EventsEnabled() bool {
	return c.RabbitMQURL != ""
}

// MailEnabled reports whether an SMTP relay is configured
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != ""
}

// DirectoryEnabled reports whether an LDAP directory is configured
func (c *Config) DirectoryEnabled() bool {
	return c.LDAPHost != ""
}

// CompletionCacheTTL is the lifetime of cached remote plan answers
func (c *Config) CompletionCacheTTL() time.Duration {
	return time.Duration(c.CompletionCacheTTLMin) * time.Minute
}

// MaxUploadBytes is the largest accepted document upload
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}
