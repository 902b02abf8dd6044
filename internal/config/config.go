package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the launch service configuration loaded from the environment
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	BasePath string `env:"BASE_PATH" envDefault:"/gifting-campaign-api"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Gifting backend
	APIBaseURL         string        `env:"GIFTING_API_BASE_URL,required,notEmpty"`
	APITimeout         time.Duration `env:"GIFTING_API_TIMEOUT" envDefault:"0s"` // 0 keeps the backend calls unbounded
	TimelineAPIBaseURL string        `env:"TIMELINE_API_BASE_URL"`

	// Orchestration
	ParallelConfigSteps bool   `env:"PARALLEL_CONFIG_STEPS" envDefault:"true"`
	LaunchQueue         string `env:"LAUNCH_QUEUE" envDefault:"campaign_launches"`

	// LaunchTimeout bounds a run once it is detached from its request; 0 leaves it unbounded.
	// A non-terminal run untouched for StaleRunAfter is treated as abandoned and may be retried.
	LaunchTimeout time.Duration `env:"LAUNCH_TIMEOUT" envDefault:"5m"`
	StaleRunAfter time.Duration `env:"STALE_RUN_AFTER" envDefault:"30m"`

	JWTSecret string `env:"JWT_SECRET"`
	SentryDSN string `env:"SENTRY_DSN"`

	Database DatabaseConfig
	RabbitMQ RabbitMQConfig
}

// DatabaseConfig holds postgres connection settings
type DatabaseConfig struct {
	Host     string `env:"DB_HOST"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// Enabled reports whether enough settings are present to open a connection
func (c DatabaseConfig) Enabled() bool {
	return c.Host != "" && c.User != "" && c.Name != ""
}

// DSN builds the postgres connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// RabbitMQConfig holds broker connection settings
type RabbitMQConfig struct {
	Host string `env:"RABBITMQ_HOST"`
	Port string `env:"RABBITMQ_PORT" envDefault:"5672"`
	User string `env:"RABBITMQ_USER" envDefault:"guest"`
	Pass string `env:"RABBITMQ_PASS" envDefault:"guest"`
}

// Enabled reports whether a broker host was configured
func (c RabbitMQConfig) Enabled() bool {
	return c.Host != ""
}

// URL builds the amqp connection url (guest user automatically uses / vhost)
func (c RabbitMQConfig) URL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", c.User, c.Pass, c.Host, c.Port)
}

// Load reads .env (if present) and parses the environment into a Config
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return Parse()
}

// Parse parses the current environment into a Config
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TimelineAPIBaseURL == "" {
		cfg.TimelineAPIBaseURL = cfg.APIBaseURL
	}
	return cfg, nil
}
