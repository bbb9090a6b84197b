// Load envs from .env
// Load YAML config
// Override with env vars
// Validate and provide default values

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	TelegramToken  string `yaml:"telegram_token"`
	TelegramChatID int64  `yaml:"telegram_chat_id"`

	//Paths
	DataDir string `yaml:"data_dir"`

	//Politeness delay before each page fetch, in seconds
	FetchDelaySeconds int `yaml:"fetch_delay_seconds"`
}

// Load builds the configuration from configs/config.yaml (optional) and
// the process environment. Missing Telegram credentials are a fatal
// configuration error: the monitor must not start a run it cannot report.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config.yaml: %w", err)
		}
	}

	//Override with env vars
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}

	if dir := os.Getenv("DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}

	//Set default values if not set
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}

	if cfg.FetchDelaySeconds == 0 {
		cfg.FetchDelaySeconds = 2
	}

	//Validate required fields
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	if cfg.TelegramChatID == 0 {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID is required")
	}

	return cfg, nil
}
