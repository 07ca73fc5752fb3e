package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Datasets - Vendor dataset sources
	Datasets DatasetsConfig

	// Enrichment - Deterministic vendor enrichment
	Enrichment EnrichmentConfig

	// Analytics - Aggregation knobs
	Analytics AnalyticsConfig

	// OpenAI - LLM analysis gateway
	OpenAI OpenAIConfig

	// Analysis - Analysis domain knobs
	Analysis AnalysisConfig

	// Redis - Analysis result caching (optional)
	Redis RedisConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// DatasetsConfig lists the vendor dataset sources. The primary source
// is mandatory; optional sources are best effort.
type DatasetsConfig struct {
	PrimaryURL   string
	OptionalURLs []string
	Timeout      time.Duration
}

// EnrichmentConfig is the configuration for vendor enrichment
type EnrichmentConfig struct {
	Seed int64
}

// AnalyticsConfig is the configuration for the analytics aggregator
type AnalyticsConfig struct {
	TopLocations int
}

// OpenAIConfig is the configuration for the completion client. Same shape as pkg/openai.OpenAIConfig.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// AnalysisConfig is the configuration for the analysis domain
type AnalysisConfig struct {
	CacheTTL time.Duration
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("procurement-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/procurement/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Datasets - Vendor sources
	cfg.Datasets.PrimaryURL = viper.GetString("datasets.primary_url")
	cfg.Datasets.OptionalURLs = viper.GetStringSlice("datasets.optional_urls")
	cfg.Datasets.Timeout = viper.GetDuration("datasets.timeout")

	// Enrichment
	cfg.Enrichment.Seed = viper.GetInt64("enrichment.seed")

	// Analytics
	cfg.Analytics.TopLocations = viper.GetInt("analytics.top_locations")

	// OpenAI - LLM
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	cfg.OpenAI.Model = viper.GetString("openai.model")

	// Analysis
	cfg.Analysis.CacheTTL = viper.GetDuration("analysis.cache_ttl")

	// Redis - Analysis result caching
	cfg.Redis.Enabled = viper.GetBool("redis.enabled")
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// 1. Datasets
	viper.SetDefault("datasets.optional_urls", []string{})
	viper.SetDefault("datasets.timeout", "30s")

	// 2. Enrichment
	viper.SetDefault("enrichment.seed", 1)

	// 3. Analytics
	viper.SetDefault("analytics.top_locations", 5)

	// 4. OpenAI
	viper.SetDefault("openai.base_url", "https://api.openai.com/v1")
	viper.SetDefault("openai.model", "gpt-5-turbo")

	// 5. Analysis
	viper.SetDefault("analysis.cache_ttl", "1h")

	// 6. Redis
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
}

func validate(cfg *Config) error {
	if cfg.OpenAI.APIKey == "" {
		return fmt.Errorf("openai.api_key is required")
	}
	if cfg.Datasets.PrimaryURL == "" {
		return fmt.Errorf("datasets.primary_url is required")
	}
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be a valid port")
	}
	return nil
}
