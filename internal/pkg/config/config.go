package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments and have no safe default
// - default: Values common across all environments (timezone, delays, etc.)
// - Optional integrations (DB archive, SMTP) are off unless explicitly enabled
// -----------------------------------------------------------------------------

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	Session   SessionConfig
	Cookie    CookieConfig
	Booking   BookingConfig
	Catalog   CatalogConfig
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
	DB        DBConfig
	Mail      MailConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Session-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location,X-Session-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
	File           string `envconfig:"LOG_FILE"`
	FileMaxSizeMB  int    `envconfig:"LOG_FILE_MAX_SIZE_MB" default:"100"`
	FileMaxBackups int    `envconfig:"LOG_FILE_MAX_BACKUPS" default:"3"`
	FileMaxAgeDays int    `envconfig:"LOG_FILE_MAX_AGE_DAYS" default:"28"`
}

type SessionConfig struct {
	Backend       string        `envconfig:"SESSION_BACKEND" default:"memory"`
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix     string        `envconfig:"SESSION_KEY_PREFIX" default:"wl:session"`
	TTL           time.Duration `envconfig:"SESSION_TTL" default:"0s"` // 0 = no expiry
}

type CookieConfig struct {
	Name     string        `envconfig:"COOKIE_NAME" default:"wl_session"`
	Domain   string        `envconfig:"COOKIE_DOMAIN"`
	Secure   bool          `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string        `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
	MaxAge   time.Duration `envconfig:"COOKIE_MAX_AGE" default:"720h"`
}

type BookingConfig struct {
	ProcessingDelay     time.Duration `envconfig:"BOOKING_PROCESSING_DELAY" default:"2s"`
	StepValidation      bool          `envconfig:"WIZARD_STEP_VALIDATION" default:"true"`
	ConfirmationPrefix  string        `envconfig:"BOOKING_CONFIRMATION_PREFIX" default:"WL"`
	PackagePriceMinor   int64         `envconfig:"BOOKING_PACKAGE_PRICE_MINOR" default:"29900"`
	PackageCurrency     string        `envconfig:"BOOKING_PACKAGE_CURRENCY" default:"USD"`
	WizardPath          string        `envconfig:"BOOKING_WIZARD_PATH" default:"/booking/details"`
	ConfirmationPath    string        `envconfig:"BOOKING_CONFIRMATION_PATH" default:"/booking/confirmation"`
	MissingSessionRoute string        `envconfig:"BOOKING_MISSING_SESSION_ROUTE" default:"/"`
}

type CatalogConfig struct {
	Latency      time.Duration `envconfig:"CATALOG_LATENCY" default:"200ms"`
	RelatedLimit int           `envconfig:"CATALOG_RELATED_LIMIT" default:"3"`
}

type RateLimitConfig struct {
	Enabled bool   `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Rate    string `envconfig:"RATE_LIMIT_RATE" default:"30-M"` // ulule/limiter format
	Prefix  string `envconfig:"RATE_LIMIT_PREFIX" default:"wl:ratelimit"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"METRICS_PATH" default:"/metrics"`
}

type DBConfig struct {
	Enabled  bool   `envconfig:"DB_ENABLED" default:"false"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"wanderlust"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"wanderlust"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type MailConfig struct {
	Enabled  bool   `envconfig:"MAIL_ENABLED" default:"false"`
	Host     string `envconfig:"SMTP_HOST" default:"localhost"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USERNAME"`
	Password string `envconfig:"SMTP_PASSWORD"`
	From     string `envconfig:"MAIL_FROM" default:"bookings@wanderlust.example"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Session.Backend {
	case SessionBackendMemory, SessionBackendRedis:
	default:
		return fmt.Errorf("unsupported SESSION_BACKEND %q", c.Session.Backend)
	}
	if c.Booking.ProcessingDelay < 0 {
		return errors.New("BOOKING_PROCESSING_DELAY cannot be negative")
	}
	if c.Booking.ConfirmationPrefix == "" {
		return errors.New("BOOKING_CONFIRMATION_PREFIX cannot be empty")
	}
	if c.DB.Enabled && c.DB.Password == "" {
		return errors.New("DB_PASSWORD is required when DB_ENABLED=true")
	}
	return nil
}

// LoadConfig reads an optional .env file before processing the environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		Session: SessionConfig{
			Backend:   SessionBackendMemory,
			KeyPrefix: "wl:test",
		},
		Cookie: CookieConfig{
			Name:     "wl_session",
			SameSite: "Lax",
			MaxAge:   time.Hour,
		},
		Booking: BookingConfig{
			ProcessingDelay:     0,
			StepValidation:      true,
			ConfirmationPrefix:  "WL",
			PackagePriceMinor:   29900,
			PackageCurrency:     "USD",
			WizardPath:          "/booking/details",
			ConfirmationPath:    "/booking/confirmation",
			MissingSessionRoute: "/",
		},
		Catalog: CatalogConfig{
			Latency:      0,
			RelatedLimit: 3,
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
			Rate:    "1000-M",
			Prefix:  "wl:test:ratelimit",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}
