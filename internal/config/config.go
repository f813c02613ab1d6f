package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig    `yaml:"app"`
	Log    LogConfig    `yaml:"log"`
	Http   HttpConfig   `yaml:"http"`
	Ingest IngestConfig `yaml:"ingest"`
	Store  StoreConfig  `yaml:"store"`

	Clients ClientsConfig `yaml:"clients"`
}

type AppConfig struct {
	Name string `yaml:"name" env:"APP_NAME" env-default:"rework-tracker"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

type HttpConfig struct {
	Addr string `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
	// BodyLimit must stay above Ingest.MaxUploadBytes so oversized uploads reach the
	// size check and get a descriptive error.
	BodyLimit int `yaml:"body_limit" env:"HTTP_BODY_LIMIT" env-default:"57671680"`
}

type IngestConfig struct {
	MaxUploadBytes int64  `yaml:"max_upload_bytes" env:"INGEST_MAX_UPLOAD_BYTES" env-default:"52428800"`
	HeaderScanRows int    `yaml:"header_scan_rows" env:"INGEST_HEADER_SCAN_ROWS" env-default:"35"`
	StorageKey     string `yaml:"storage_key" env:"INGEST_STORAGE_KEY" env-default:"rework-dashboard-data-v13"`
}

type StoreConfig struct {
	// memory | redis | postgres | mysql | sqlite
	Driver string `yaml:"driver" env:"STORE_DRIVER" env-default:"memory"`
	DSN    string `yaml:"dsn" env:"STORE_DSN"`
	// QuotaBytes caps a single blob; 0 disables the cap.
	QuotaBytes int64 `yaml:"quota_bytes" env:"STORE_QUOTA_BYTES" env-default:"0"`
}

type ClientsConfig struct {
	Redis      RedisConfig      `yaml:"redis"`
	RabbitMQ   RabbitMQConfig   `yaml:"rabbitmq"`
	OpenSearch OpenSearchConfig `yaml:"opensearch"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Insights   InsightsConfig   `yaml:"insights"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type RabbitMQConfig struct {
	// Empty Url disables event publishing.
	Url      string `yaml:"url" env:"RABBITMQ_URL"`
	Exchange string `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"rework.events"`
}

type OpenSearchConfig struct {
	Addresses []string `yaml:"addresses" env:"OPENSEARCH_ADDRESSES" env-separator:","`
	Username  string   `yaml:"username" env:"OPENSEARCH_USERNAME"`
	Password  string   `yaml:"password" env:"OPENSEARCH_PASSWORD"`
	Insecure  bool     `yaml:"insecure" env:"OPENSEARCH_INSECURE" env-default:"false"`
	Index     string   `yaml:"index" env:"OPENSEARCH_INDEX" env-default:"rework-records"`
}

type OpenAIConfig struct {
	ApiKey string `yaml:"api_key" env:"OPENAI_API_KEY"`
	Model  string `yaml:"model" env:"OPENAI_MODEL" env-default:"gpt-5-nano"`
	// BaseUrl points at an OpenAI-compatible endpoint; empty uses the public API.
	BaseUrl string `yaml:"base_url" env:"OPENAI_BASE_URL"`
}

type InsightsConfig struct {
	// http | openai | local
	Provider       string        `yaml:"provider" env:"INSIGHTS_PROVIDER" env-default:"local"`
	Url            string        `yaml:"url" env:"INSIGHTS_URL"`
	HealthUrl      string        `yaml:"health_url" env:"INSIGHTS_HEALTH_URL"`
	Timeout        time.Duration `yaml:"timeout" env:"INSIGHTS_TIMEOUT" env-default:"8s"`
	RequestsPerSec float64       `yaml:"requests_per_sec" env:"INSIGHTS_REQUESTS_PER_SEC" env-default:"1"`
}

// Load reads an optional .env file, then either the yaml file named by CONFIG_PATH or
// the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Default returns the configuration built from defaults and the current environment,
// without reading .env or a config file.
func Default() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic(err)
	}
	return &cfg
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "memory", "redis", "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Store.Driver != "memory" && c.Store.Driver != "redis" && c.Store.DSN == "" {
		return fmt.Errorf("store driver %q requires STORE_DSN", c.Store.Driver)
	}

	switch c.Clients.Insights.Provider {
	case "http", "openai", "local":
	default:
		return fmt.Errorf("unknown insights provider %q", c.Clients.Insights.Provider)
	}
	if c.Clients.Insights.Provider == "http" && c.Clients.Insights.Url == "" {
		return errors.New("insights provider http requires INSIGHTS_URL")
	}
	if c.Clients.Insights.Provider == "openai" && c.Clients.OpenAI.ApiKey == "" {
		return errors.New("insights provider openai requires OPENAI_API_KEY")
	}

	if c.Ingest.MaxUploadBytes <= 0 {
		return errors.New("max upload bytes must be positive")
	}
	if c.Ingest.HeaderScanRows <= 0 {
		return errors.New("header scan rows must be positive")
	}
	if c.Ingest.StorageKey == "" {
		return errors.New("storage key is required")
	}
	if int64(c.Http.BodyLimit) <= c.Ingest.MaxUploadBytes {
		return errors.New("http body limit must exceed max upload bytes")
	}
	return nil
}
