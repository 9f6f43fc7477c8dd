package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration (session cache).
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Session store: "memory" or "redis". Sessions in Redis expire after
	// SessionTTLMinutes; the in-memory store never evicts on its own.
	SessionBackend    string `mapstructure:"SESSION_BACKEND"`
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`

	// Scheduling window.
	WorkStartHour       int `mapstructure:"WORK_START_HOUR"`
	WorkEndHour         int `mapstructure:"WORK_END_HOUR"`
	DefaultSlotMinutes  int `mapstructure:"DEFAULT_SLOT_MINUTES"`
	CalendarTimeoutSecs int `mapstructure:"CALENDAR_TIMEOUT_SECS"`

	// Google Calendar. When CalendarBackend is "static" the service runs
	// against a fixed in-memory calendar and needs no credentials.
	CalendarBackend  string `mapstructure:"CALENDAR_BACKEND"`
	GoogleCalendarID string `mapstructure:"GOOGLE_CALENDAR_ID"`
	GoogleTokenFile  string `mapstructure:"GOOGLE_TOKEN_FILE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("SESSION_BACKEND", "memory")
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("WORK_START_HOUR", 9)
	viper.SetDefault("WORK_END_HOUR", 17)
	viper.SetDefault("DEFAULT_SLOT_MINUTES", 60)
	viper.SetDefault("CALENDAR_TIMEOUT_SECS", 5)
	viper.SetDefault("CALENDAR_BACKEND", "static")
	viper.SetDefault("GOOGLE_CALENDAR_ID", "primary")
	viper.SetDefault("GOOGLE_TOKEN_FILE", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
