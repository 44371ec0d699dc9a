package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/fangate-io/fangate/internal/shared/config"
)

type Config struct {
	Server       sharedConfig.ServerConfig       `mapstructure:"server"`
	Database     sharedConfig.DatabaseConfig     `mapstructure:"database"`
	Logger       sharedConfig.LoggerConfig       `mapstructure:"logger"`
	Auth         sharedConfig.AuthConfig         `mapstructure:"auth"`
	OAuth        sharedConfig.OAuthConfig        `mapstructure:"oauth"`
	Redis        sharedConfig.RedisConfig        `mapstructure:"redis"`
	ChatPlatform sharedConfig.ChatPlatformConfig `mapstructure:"chat_platform"`
	Verification sharedConfig.VerificationConfig `mapstructure:"verification"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	// Set environment variable prefix and replacer
	viper.SetEnvPrefix("FANGATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.base_url", "http://localhost:8080")

	// Database defaults
	viper.SetDefault("database.driver", "mysql")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "fangate_dev")
	viper.SetDefault("database.path", "fangate.db")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	viper.SetDefault("auth.service_token_secret", "change-me-in-production")
	viper.SetDefault("auth.service_token_ttl_hours", 24)

	// OAuth defaults (empty by default, must be configured)
	viper.SetDefault("oauth.youtube.client_id", "")
	viper.SetDefault("oauth.youtube.client_secret", "")
	viper.SetDefault("oauth.youtube.redirect_url", "http://localhost:8080/api/auth/youtube/callback")
	viper.SetDefault("oauth.youtube.api_key", "")
	viper.SetDefault("oauth.twitch.client_id", "")
	viper.SetDefault("oauth.twitch.client_secret", "")
	viper.SetDefault("oauth.twitch.redirect_url", "http://localhost:8080/api/auth/twitch/callback")

	// Redis defaults
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Chat platform defaults
	viper.SetDefault("chat_platform.api_base_url", "https://discord.com/api/v10")
	viper.SetDefault("chat_platform.bot_token", "")

	// Verification defaults
	viper.SetDefault("verification.check_timeout_seconds", 8)
	viper.SetDefault("verification.link_state_ttl_minutes", 10)
	viper.SetDefault("verification.sweep_interval_minutes", 60)
	viper.SetDefault("verification.channel_cache_ttl_hours", 12)
}
