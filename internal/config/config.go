package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// It is built once in main and passed by pointer; nothing below main reads the
// environment directly.
type Config struct {
	// Server
	Port               int      `mapstructure:"PORT"`
	Env                string   `mapstructure:"APP_ENV"` // development | production
	RateLimitPerMinute int      `mapstructure:"RATE_LIMIT_PER_MINUTE"`
	AdminStaticDir     string   `mapstructure:"ADMIN_STATIC_DIR"`
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"` // comma separated

	// Store
	StoreDriver     string        `mapstructure:"STORE_DRIVER"` // mongo | postgres | sqlite
	MongoURI        string        `mapstructure:"MONGODB_URI"`
	MongoDatabase   string        `mapstructure:"MONGODB_DATABASE"`
	DatabaseURL     string        `mapstructure:"DATABASE_URL"`
	RedisURL        string        `mapstructure:"REDIS_URL"`
	CatalogCacheTTL time.Duration `mapstructure:"CATALOG_CACHE_TTL"`

	// Admin credentials and session
	AdminUsername     string `mapstructure:"ADMIN_USERNAME"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`
	SessionSecret     string `mapstructure:"SESSION_SECRET"`
	SessionTTLHours   int    `mapstructure:"SESSION_TTL_HOURS"`

	// Cloudinary
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
	CloudinaryFolder    string `mapstructure:"CLOUDINARY_FOLDER"`
	UploadMaxBytes      int64  `mapstructure:"UPLOAD_MAX_BYTES"`

	// SMTP (contact form)
	SMTPHost         string `mapstructure:"SMTP_HOST"`
	SMTPPort         int    `mapstructure:"SMTP_PORT"`
	SMTPUser         string `mapstructure:"SMTP_USER"`
	SMTPPassword     string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom         string `mapstructure:"SMTP_FROM"` // defaults to SMTP_USER
	ContactRecipient string `mapstructure:"CONTACT_RECIPIENT"`
}

// AuthConfigured reports whether both admin credentials are present.
func (c *Config) AuthConfigured() bool {
	return c.AdminUsername != "" && c.AdminPasswordHash != ""
}

// CloudinaryConfigured reports whether all three image host credentials are present.
func (c *Config) CloudinaryConfigured() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

// SessionTTL returns the session lifetime as a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

var keys = []string{
	"PORT", "APP_ENV", "RATE_LIMIT_PER_MINUTE", "ADMIN_STATIC_DIR", "CORS_ALLOWED_ORIGINS",
	"STORE_DRIVER", "MONGODB_URI", "MONGODB_DATABASE", "DATABASE_URL", "REDIS_URL", "CATALOG_CACHE_TTL",
	"ADMIN_USERNAME", "ADMIN_PASSWORD_HASH", "SESSION_SECRET", "SESSION_TTL_HOURS",
	"CLOUDINARY_CLOUD_NAME", "CLOUDINARY_API_KEY", "CLOUDINARY_API_SECRET", "CLOUDINARY_FOLDER", "UPLOAD_MAX_BYTES",
	"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASSWORD", "SMTP_FROM", "CONTACT_RECIPIENT",
}

// Load reads configuration from environment variables (and optional .env.local / .env files).
func Load() (*Config, error) {
	// The site historically kept its secrets in .env.local; godotenv never
	// overrides variables that are already set in the process environment.
	_ = godotenv.Load(".env.local")

	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	// Unmarshal only sees keys viper knows about; AutomaticEnv alone does not register them.
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	v.SetDefault("PORT", 8080)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 600)
	v.SetDefault("STORE_DRIVER", "mongo")
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DATABASE", "calo")
	v.SetDefault("CATALOG_CACHE_TTL", "10m")
	v.SetDefault("SESSION_TTL_HOURS", 24)
	v.SetDefault("CLOUDINARY_FOLDER", "calo-products")
	v.SetDefault("UPLOAD_MAX_BYTES", 5<<20)
	v.SetDefault("SMTP_PORT", 587)

	// Optional .env file for local development; missing is fine
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.SessionTTLHours <= 0 {
		return nil, fmt.Errorf("SESSION_TTL_HOURS must be positive, got %d", cfg.SessionTTLHours)
	}
	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = cfg.SMTPUser
	}
	return cfg, nil
}
