package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/kettari/driver-status/internal/entity"
	"github.com/spf13/viper"
)

const envPrefix = "DRIVER"

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Debug               bool
	LogLevel            slog.Level
	DriverName          string
	InitialStatus       entity.Status
	Customers           []string
	DbConnectionString  string
	BotToken            string
	NotificationChatID  string
	OpenAIApiKey        string
	OpenAILanguageModel string
	MetricsAddr         string
}

var config *Config

// GetConfig loads the configuration from the environment once and exits on error
func GetConfig() *Config {
	if config != nil {
		return config
	}

	conf, err := Load(viper.New())
	if err != nil {
		slog.Error("unable to load configuration", "error", err)
		os.Exit(1)
	}
	config = conf
	slog.SetLogLoggerLevel(config.LogLevel)

	slog.Debug("Configuration parameters",
		"DRIVER_DEBUG", config.Debug,
		"DRIVER_LOG_LEVEL", config.LogLevel,
		"DRIVER_NAME", config.DriverName,
		"DRIVER_INITIAL_STATUS", config.InitialStatus,
		"DRIVER_CUSTOMERS", config.Customers,
		"DRIVER_DB_STRING", config.DbConnectionString != "",
		"DRIVER_TELEGRAM_TOKEN", config.BotToken != "",
		"DRIVER_NOTIFICATION_CHAT_ID", config.NotificationChatID,
		"DRIVER_OPENAI_API_KEY", config.OpenAIApiKey != "",
		"DRIVER_OPENAI_LANGUAGE_MODEL", config.OpenAILanguageModel,
		"DRIVER_METRICS_ADDR", config.MetricsAddr)

	return config
}

// Load reads DRIVER_* environment variables through v
func Load(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("debug", false)
	v.SetDefault("log_level", "warn")
	v.SetDefault("name", "John Doe")
	v.SetDefault("initial_status", string(entity.StatusAvailable))
	v.SetDefault("customers", "Acme Logistics")
	v.SetDefault("openai_language_model", "gpt-4o-mini")

	conf := &Config{
		Debug:               v.GetBool("debug"),
		DriverName:          strings.TrimSpace(v.GetString("name")),
		Customers:           splitList(v.GetString("customers")),
		DbConnectionString:  v.GetString("db_string"),
		BotToken:            v.GetString("telegram_token"),
		NotificationChatID:  v.GetString("notification_chat_id"),
		OpenAIApiKey:        v.GetString("openai_api_key"),
		OpenAILanguageModel: v.GetString("openai_language_model"),
		MetricsAddr:         v.GetString("metrics_addr"),
	}

	// Debug mode
	if conf.Debug {
		conf.LogLevel = slog.LevelDebug
	} else if err := conf.LogLevel.UnmarshalText([]byte(v.GetString("log_level"))); err != nil {
		return nil, fmt.Errorf("%w: DRIVER_LOG_LEVEL: %v", ErrInvalidConfig, err)
	}

	if len(conf.DriverName) == 0 {
		return nil, fmt.Errorf("%w: DRIVER_NAME is empty", ErrInvalidConfig)
	}

	status, err := entity.ParseStatus(v.GetString("initial_status"))
	if err != nil {
		return nil, fmt.Errorf("%w: DRIVER_INITIAL_STATUS: %v", ErrInvalidConfig, err)
	}
	conf.InitialStatus = status

	// Telegram needs both the token and the recipients
	if (conf.BotToken == "") != (conf.NotificationChatID == "") {
		return nil, fmt.Errorf("%w: DRIVER_TELEGRAM_TOKEN and DRIVER_NOTIFICATION_CHAT_ID must be set together", ErrInvalidConfig)
	}

	return conf, nil
}

func (c *Config) TelegramEnabled() bool {
	return c.BotToken != "" && c.NotificationChatID != ""
}

func (c *Config) OpenAIEnabled() bool {
	return c.OpenAIApiKey != ""
}

func (c *Config) DatabaseEnabled() bool {
	return c.DbConnectionString != ""
}

func splitList(s string) []string {
	var result []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
