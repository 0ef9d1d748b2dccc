package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Cache     CacheConfig
	Jobs      JobsConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns int32  `envconfig:"DB_MIN_CONNS" default:"2"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// Empty RedisURL disables the cache; aggregates are then recomputed per request.
type CacheConfig struct {
	RedisURL         string        `envconfig:"REDIS_URL" default:""`
	StatsTTL         time.Duration `envconfig:"STATS_CACHE_TTL" default:"5m"`
	AnalyticsTTL     time.Duration `envconfig:"ANALYTICS_CACHE_TTL" default:"10m"`
	OperationTimeout time.Duration `envconfig:"CACHE_OPERATION_TIMEOUT" default:"200ms"`
}

type JobsConfig struct {
	Embedded         bool   `envconfig:"JOBS_EMBEDDED" default:"false"`
	MaxWorkers       int    `envconfig:"JOBS_MAX_WORKERS" default:"10"`
	RetentionDays    int    `envconfig:"RETENTION_DAYS" default:"365"`
	ExportDir        string `envconfig:"EXPORT_DIR" default:"./exports"`
	ReminderIdleDays int    `envconfig:"REMINDER_IDLE_DAYS" default:"7"`
}

// AdminConfig is read only by the create-admin command.
type AdminConfig struct {
	Email    string `envconfig:"ADMIN_EMAIL" required:"true"`
	Password string `envconfig:"ADMIN_PASSWORD" required:"true"`
	FullName string `envconfig:"ADMIN_FULL_NAME" default:"Administrator"`
}

type TelemetryConfig struct {
	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"parking-core"`
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c JobsConfig) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

func (c JobsConfig) ReminderIdle() time.Duration {
	return time.Duration(c.ReminderIdleDays) * 24 * time.Hour
}

func LoadAdminConfig() (AdminConfig, error) {
	var cfg AdminConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return AdminConfig{}, fmt.Errorf("failed to process admin env config: %w", err)
	}
	return cfg, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: 5 * time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
			MinConns: 1,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-parking-core",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{SameSite: "Lax"},
		Cache: CacheConfig{
			StatsTTL:         5 * time.Minute,
			AnalyticsTTL:     10 * time.Minute,
			OperationTimeout: 200 * time.Millisecond,
		},
		Jobs: JobsConfig{
			MaxWorkers:       2,
			RetentionDays:    365,
			ExportDir:        "exports",
			ReminderIdleDays: 7,
		},
		Telemetry: TelemetryConfig{ServiceName: "parking-core-test"},
	}
}
