package config

import (
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents an app config.
type Config struct {
	App         App
	ExchangeAPI ExchangeAPI
	Telegram    Telegram
	PostgreSQL  PostgreSQL
	Metrics     Metrics
	Logger      Logger
}

// State storage types.
const (
	StateStorageMemory   = "memory"
	StateStoragePostgres = "postgres"
)

// App represents a general application configuration.
type App struct {
	// StateStorage represents a place where chat flow states are kept. (memory | postgres)
	StateStorage string `env:"STATE_STORAGE" env-default:"memory"`
	// WorkersCount represents a number of chats whose updates are handled in parallel.
	WorkersCount int `env:"WORKERS_COUNT" env-default:"4"`
}

// ExchangeAPI represents a configuration of the remote exchange REST service.
type ExchangeAPI struct {
	Host    string        `env:"EXCHANGE_API_HOST" env-default:"http://localhost:8080"`
	Timeout time.Duration `env:"EXCHANGE_API_TIMEOUT" env-default:"10s"`
}

// Telegram represents a telegram bot configuration.
type Telegram struct {
	BotToken      string `env:"BOT_TOKEN"`
	UpdatesType   string `env:"BOT_UPDATES_TYPE" env-default:"polling"`
	WebhookURL    string `env:"WEBHOOK_URL"`
	ServerAddress string `env:"SERVER_ADDRESS" env-default:":8443"`
}

// PostgreSQL represents a PostgreSQL database configuration.
type PostgreSQL struct {
	User     string `env:"POSTGRES_USER" env-default:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" env-default:"postgres"`
	Database string `env:"POSTGRES_DATABASE" env-default:"currency_exchange"`
	Host     string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `env:"POSTGRES_PORT" env-default:"5432"`
	SSLMode  string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
}

// Metrics represents a configuration of the prometheus metrics server.
type Metrics struct {
	// Address is empty when metrics server must not be started.
	Address string `env:"METRICS_ADDRESS" env-default:""`
}

// Logger represents a logger configuration.
type Logger struct {
	LogLevel        string `env:"LOGGER_LOG_LEVEL" env-default:"debug"`
	LogFilename     string `env:"LOGGER_LOG_FILENAME" env-default:""`
	PrettyLogOutput bool   `env:"LOGGER_PRETTY_LOG_OUTPUT" env-default:"false"`
}

var (
	config Config
	once   sync.Once
)

// Get returns a new config.
func Get() *Config {
	once.Do(func() {
		err := cleanenv.ReadEnv(&config)
		if err != nil {
			log.Fatalf("read env: %v", err)
		}
	})

	return &config
}
