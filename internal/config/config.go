package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// AlertGateway holds the SMS-over-email gateway settings. An empty Server
// disables the gateway and alerts fall back to the log.
type AlertGateway struct {
	Server       string
	Port         string
	From         string
	To           string
	User         string
	Password     string
	AuthDisabled bool
}

type Config struct {
	HTTPAddr      string
	DatabaseURL   string
	RedisAddr     string
	JWTSecret     string
	LogFormat     string
	AlertCooldown time.Duration
	Alert         AlertGateway
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("ALERT_COOLDOWN", "1h")
	v.SetDefault("SMTP_PORT", "587")

	cfg := Config{
		HTTPAddr:      v.GetString("HTTP_ADDR"),
		DatabaseURL:   v.GetString("DATABASE_URL"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		LogFormat:     v.GetString("LOG_FORMAT"),
		AlertCooldown: v.GetDuration("ALERT_COOLDOWN"),
		Alert: AlertGateway{
			Server:       v.GetString("SMTP_SERVER"),
			Port:         v.GetString("SMTP_PORT"),
			From:         v.GetString("ALERT_FROM"),
			To:           v.GetString("ALERT_TO"),
			User:         v.GetString("SMTP_USER"),
			Password:     v.GetString("SMTP_PASS"),
			AuthDisabled: v.GetBool("SMTP_AUTH_DISABLED"),
		},
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("environment variable DATABASE_URL not found")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("environment variable JWT_SECRET not found")
	}

	return cfg, nil
}
