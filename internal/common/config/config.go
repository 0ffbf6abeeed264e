package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Search  SearchConfig  `mapstructure:"search"`
	Reviews ReviewsConfig `mapstructure:"reviews"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// SearchConfig holds the outbound search-provider settings. An empty APIKey
// selects the deterministic fallback source; the provider is never contacted.
type SearchConfig struct {
	APIBaseURL string `mapstructure:"api_base_url"`
	APIKey     string `mapstructure:"api_key"`
	EngineID   string `mapstructure:"engine_id"`
	MaxResults int    `mapstructure:"max_results"`
	Timeout    int    `mapstructure:"timeout"` // milliseconds
}

// ProviderConfigured reports whether an outbound provider credential is set.
func (s SearchConfig) ProviderConfigured() bool {
	return s.APIKey != ""
}

// HTTPTimeout returns the outbound call timeout as a duration.
func (s SearchConfig) HTTPTimeout() time.Duration {
	return time.Duration(s.Timeout) * time.Millisecond
}

// ReviewsConfig controls best-effort review collection from result pages.
type ReviewsConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	MaxReviews int    `mapstructure:"max_reviews"`
	Timeout    int    `mapstructure:"timeout"` // milliseconds
	UserAgent  string `mapstructure:"user_agent"`
}

func (r ReviewsConfig) HTTPTimeout() time.Duration {
	return time.Duration(r.Timeout) * time.Millisecond
}

// CacheConfig holds the Redis settings for the provider result cache.
type CacheConfig struct {
	Enabled bool        `mapstructure:"enabled"`
	TTL     int         `mapstructure:"ttl"` // seconds
	Redis   RedisConfig `mapstructure:"redis"`
}

func (c CacheConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
