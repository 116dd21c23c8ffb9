package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Hosted collaborators
	Store          StoreConfig
	Gemini         GeminiConfig
	GoogleCalendar GoogleCalendarConfig

	// Assistant
	Assistant AssistantConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StoreConfig points at the hosted Supabase project. The same URL and
// anon key serve both the data API and the auth API.
type StoreConfig struct {
	URL    string
	APIKey string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type AssistantConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Supabase project
	cfg.Store.URL = viper.GetString("store.url")
	cfg.Store.APIKey = viper.GetString("store.api_key")
	if storeURL := viper.GetString("supabase_url"); storeURL != "" {
		cfg.Store.URL = storeURL
	}
	if storeKey := viper.GetString("supabase_anon_key"); storeKey != "" {
		cfg.Store.APIKey = storeKey
	}

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Assistant
	cfg.Assistant.RateLimitPerMin = viper.GetInt("assistant.rate_limit_per_min")

	if cfg.Store.URL == "" {
		return nil, fmt.Errorf("store.url is required - set store.url in config.yaml or SUPABASE_URL")
	}
	if cfg.Store.APIKey == "" {
		return nil, fmt.Errorf("store.api_key is required - set store.api_key in config.yaml or SUPABASE_ANON_KEY")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("gemini.model", "gemini-1.5-flash")
	viper.SetDefault("assistant.rate_limit_per_min", 10)
}
