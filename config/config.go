package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig
	Frontend    FrontendConfig
	Google      GoogleConfig
	Auth        AuthConfig
	Smoke       SmokeConfig
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

// FrontendConfig locates the static frontend served at /.
type FrontendConfig struct {
	StaticDir string
}

// GoogleConfig is the OAuth application registration. All three fields can
// be supplied through GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET and
// GOOGLE_REDIRECT_URI environment variables.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Scopes       []string
}

type AuthConfig struct {
	SessionTTLMinutes int
	RateLimitPerMin   int
}

// SmokeConfig configures the integration smoke test binary.
type SmokeConfig struct {
	BaseURL      string
	FrontendPath string
	StatusPath   string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
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

	// Environment & server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Frontend
	cfg.Frontend.StaticDir = viper.GetString("frontend.static_dir")

	// Google OAuth application
	cfg.Google.ClientID = viper.GetString("google.client_id")
	cfg.Google.ClientSecret = viper.GetString("google.client_secret")
	cfg.Google.RedirectURI = viper.GetString("google.redirect_uri")
	cfg.Google.Scopes = viper.GetStringSlice("google.scopes")
	if rawScopes := viper.GetString("google_scopes"); rawScopes != "" {
		var scopes []string
		for _, s := range strings.Split(rawScopes, ",") {
			s = strings.TrimSpace(s)
			if s != "" {
				scopes = append(scopes, s)
			}
		}
		cfg.Google.Scopes = scopes
	}

	// Auth
	cfg.Auth.SessionTTLMinutes = viper.GetInt("auth.session_ttl_minutes")
	cfg.Auth.RateLimitPerMin = viper.GetInt("auth.rate_limit_per_min")

	// Smoke test
	cfg.Smoke.BaseURL = viper.GetString("smoke.base_url")
	cfg.Smoke.FrontendPath = viper.GetString("smoke.frontend_path")
	cfg.Smoke.StatusPath = viper.GetString("smoke.status_path")

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

	viper.SetDefault("frontend.static_dir", "./web/static")

	viper.SetDefault("google.redirect_uri", "http://localhost:8080/api/v1/auth/callback")
	viper.SetDefault("google.scopes", []string{
		"https://www.googleapis.com/auth/calendar.readonly",
		"https://www.googleapis.com/auth/userinfo.email",
	})

	viper.SetDefault("auth.session_ttl_minutes", 60)
	viper.SetDefault("auth.rate_limit_per_min", 60)

	viper.SetDefault("smoke.base_url", "http://localhost:8080")
	viper.SetDefault("smoke.frontend_path", "/")
	viper.SetDefault("smoke.status_path", "/api/v1/auth/status")
}
