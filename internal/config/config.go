package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type Config struct {
	AppEnv    string
	LogLevel  string
	Port      string
	StaticDir string

	Store     StoreConfig
	RateLimit RateLimitConfig
	Kafka     KafkaConfig

	ListQueryTimeout time.Duration
	ShutdownTimeout  time.Duration
}

type StoreConfig struct {
	Driver         string
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

func (r RateLimitConfig) Enabled() bool {
	return r.RPS > 0 && r.Burst > 0
}

type KafkaConfig struct {
	Broker  string
	Topic   string
	GroupID string
}

func (k KafkaConfig) Enabled() bool {
	return k.Broker != ""
}

// MissingEnvError reports a required environment variable that is unset.
type MissingEnvError struct {
	Name    string
	Example string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("%s environment variable is not set", e.Name)
}

// Load reads configuration from the environment. Callers load .env first.
// Only malformed values fail here; a missing connection string is reported
// by RequireStore so binaries that never touch the store can still start.
func Load() (Config, error) {
	cfg := Config{
		AppEnv:    getenv("APP_ENV", "production"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
		Port:      getenv("PORT", "3000"),
		StaticDir: getenv("STATIC_DIR", "dist/FrontEnd"),
		Kafka: KafkaConfig{
			Broker:  strings.TrimSpace(os.Getenv("KAFKA_BROKER")),
			Topic:   getenv("KAFKA_TOPIC", "employees.lifecycle.v1"),
			GroupID: getenv("KAFKA_GROUP_ID", "employee-audit"),
		},
	}

	driver := strings.ToLower(getenv("STORE_DRIVER", DriverMongo))
	switch driver {
	case DriverMongo:
		cfg.Store.URI = strings.TrimSpace(os.Getenv("MONGO_URI"))
	case DriverPostgres:
		cfg.Store.URI = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	default:
		return Config{}, fmt.Errorf("config: STORE_DRIVER must be one of %q, %q; got %q", DriverMongo, DriverPostgres, driver)
	}
	cfg.Store.Driver = driver
	cfg.Store.Database = getenv("MONGO_DATABASE", databaseFromURI(cfg.Store.URI))

	var err error
	if cfg.ListQueryTimeout, err = durationEnv("LIST_QUERY_TIMEOUT", 20*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.Store.ConnectTimeout, err = durationEnv("DB_CONNECT_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = durationEnv("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}

	if raw := os.Getenv("RATE_LIMIT_RPS"); raw != "" {
		rps, err := strconv.ParseFloat(raw, 64)
		if err != nil || rps < 0 {
			return Config{}, fmt.Errorf("config: RATE_LIMIT_RPS must be a non-negative number")
		}
		cfg.RateLimit.RPS = rps
	}
	if raw := os.Getenv("RATE_LIMIT_BURST"); raw != "" {
		burst, err := strconv.Atoi(raw)
		if err != nil || burst < 0 {
			return Config{}, fmt.Errorf("config: RATE_LIMIT_BURST must be a non-negative integer")
		}
		cfg.RateLimit.Burst = burst
	}

	return cfg, nil
}

// RequireStore fails with a *MissingEnvError when the connection string for
// the selected driver is absent.
func (c Config) RequireStore() error {
	if c.Store.URI != "" {
		return nil
	}
	if c.Store.Driver == DriverPostgres {
		return &MissingEnvError{
			Name:    "DATABASE_URL",
			Example: `DATABASE_URL="postgres://<user>:<password>@<host>:5432/employees?sslmode=disable"`,
		}
	}
	return &MissingEnvError{
		Name:    "MONGO_URI",
		Example: `MONGO_URI="mongodb+srv://<username>:<password>@<cluster>.mongodb.net/employeeDB?retryWrites=true&w=majority"`,
	}
}

func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: %s must be positive", key)
	}
	return d, nil
}

// databaseFromURI returns the database named in a mongodb URI path, or
// "test", the driver-side default.
func databaseFromURI(raw string) string {
	if raw == "" {
		return "test"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "test"
	}
	name := strings.Trim(u.Path, "/")
	if name == "" {
		return "test"
	}
	return name
}
