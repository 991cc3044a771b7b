package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/mehidihasan1/twixdbot/pkg/telco"
)

type Config struct {
	Telegram Telegram     `mapstructure:"telegram"`
	Provider telco.Config `mapstructure:"provider"`
	API      API          `mapstructure:"api"`
	Owner    Owner        `mapstructure:"owner"`
}

type Telegram struct {
	Token       string        `mapstructure:"token"`
	PollTimeout time.Duration `mapstructure:"poll_timeout"`
	AdminIDs    []int64       `mapstructure:"admin_ids"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Owner struct {
	InfoText string `mapstructure:"info_text"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("twixd")
	viper.AutomaticEnv()
	_ = viper.BindEnv("telegram.token", "TWIXD_TELEGRAM_TOKEN")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	// The bot cannot run without its access token.
	if cfg.Telegram.Token == "" {
		return nil, errors.New("telegram token is not set")
	}

	if cfg.Telegram.PollTimeout == 0 {
		cfg.Telegram.PollTimeout = 10 * time.Second
	}
	if cfg.Provider.Timeout == 0 {
		cfg.Provider.Timeout = 30 * time.Second
	}
	if cfg.Provider.BaseURL == "" {
		cfg.Provider.BaseURL = "https://api.twilio.com"
	}

	return cfg, nil
}

// IsAdmin reports whether userID is in the configured admin allow-set.
func (t Telegram) IsAdmin(userID int64) bool {
	for _, id := range t.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}
