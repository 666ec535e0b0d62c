package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port              string   `mapstructure:"PORT"`
	Env               string   `mapstructure:"ENV"`
	RedisURL          string   `mapstructure:"REDIS_URL"`
	ChatHistoryKey    string   `mapstructure:"CHAT_HISTORY_KEY"`
	ChatTypingDelayMS int      `mapstructure:"CHAT_TYPING_DELAY_MS"`
	HorizonDays       int      `mapstructure:"AVAILABILITY_HORIZON_DAYS"`
	SlotStartHour     int      `mapstructure:"SLOT_START_HOUR"`
	SlotEndHour       int      `mapstructure:"SLOT_END_HOUR"`
	SlotStepMinutes   int      `mapstructure:"SLOT_STEP_MINUTES"`
	CORSOrigins       []string `mapstructure:"CORS_ORIGINS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("CHAT_HISTORY_KEY", "medical_chat_history")
	v.SetDefault("CHAT_TYPING_DELAY_MS", 1500)
	v.SetDefault("AVAILABILITY_HORIZON_DAYS", 14)
	v.SetDefault("SLOT_START_HOUR", 9)
	v.SetDefault("SLOT_END_HOUR", 17)
	v.SetDefault("SLOT_STEP_MINUTES", 30)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("REDIS_URL")
	v.BindEnv("CHAT_HISTORY_KEY")
	v.BindEnv("CHAT_TYPING_DELAY_MS")
	v.BindEnv("AVAILABILITY_HORIZON_DAYS")
	v.BindEnv("SLOT_START_HOUR")
	v.BindEnv("SLOT_END_HOUR")
	v.BindEnv("SLOT_STEP_MINUTES")
	v.BindEnv("CORS_ORIGINS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.SlotEndHour <= cfg.SlotStartHour {
		return nil, fmt.Errorf("SLOT_END_HOUR (%d) must be after SLOT_START_HOUR (%d)", cfg.SlotEndHour, cfg.SlotStartHour)
	}
	if cfg.SlotStepMinutes <= 0 || 60%cfg.SlotStepMinutes != 0 {
		return nil, fmt.Errorf("SLOT_STEP_MINUTES must divide an hour, got %d", cfg.SlotStepMinutes)
	}
	if cfg.HorizonDays <= 0 {
		return nil, fmt.Errorf("AVAILABILITY_HORIZON_DAYS must be positive, got %d", cfg.HorizonDays)
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}
