package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/avelichko/rss-channel-bot/internal/shared/errors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

type Config struct {
	TelegramBotToken string `koanf:"telegram_bot_token"`
	TelegramAPIURL   string `koanf:"telegram_api_url"`
	ChannelID        int64  `koanf:"channel_id"`
	FeedURL          string `koanf:"feed_url"`
	StoragePath      string `koanf:"storage_path"`
	HTTPPort         string `koanf:"http_port"`
	CheckInterval    int    `koanf:"check_interval"`
	PostCooldown     int    `koanf:"post_cooldown"`
	MaxRetries       int    `koanf:"max_retries"`
	AppEnv           AppEnv `koanf:"app_env"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try to load config file from various formats
	configFiles := []string{
		"config.yaml",
		"config.yml",
		"config.json",
		"config.toml",
	}

	// Use lo.Find to find the first existing config file
	configFile, found := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Load environment variables (they override config file values)
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	// Set defaults
	if !k.Exists("telegram_api_url") {
		k.Set("telegram_api_url", "https://api.telegram.org")
	}
	if !k.Exists("storage_path") {
		k.Set("storage_path", "./data")
	}
	if !k.Exists("http_port") {
		k.Set("http_port", "8080")
	}
	if !k.Exists("check_interval") {
		k.Set("check_interval", 300)
	}
	if !k.Exists("post_cooldown") {
		k.Set("post_cooldown", 60)
	}
	if !k.Exists("max_retries") {
		k.Set("max_retries", 3)
	}
	if !k.Exists("app_env") {
		k.Set("app_env", "production")
	}

	// Unmarshal into struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	// Parse AppEnv from string if needed
	if appEnvStr := k.String("app_env"); appEnvStr != "" {
		if env, err := ParseAppEnv(appEnvStr); err == nil {
			cfg.AppEnv = env
		} else {
			cfg.AppEnv = AppEnvProduction
		}
	} else {
		cfg.AppEnv = AppEnvProduction
	}

	// Validate required fields
	if cfg.TelegramBotToken == "" {
		return nil, errors.ErrMissingBotToken
	}
	if cfg.ChannelID == 0 {
		return nil, errors.ErrMissingChannelID
	}
	if cfg.FeedURL == "" {
		return nil, errors.ErrMissingFeedURL
	}

	return &cfg, nil
}
