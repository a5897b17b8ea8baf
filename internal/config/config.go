package config

import (
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// AppConfig bundles everything the server needs at startup. Values come
// from CLINIC_* environment variables, with a .env file loaded first when
// present.
type AppConfig struct {
	ListenAddr    string `koanf:"listen_addr"`
	Port          string `koanf:"port"`
	DatabaseURL   string `koanf:"database_url"`
	SessionSecret string `koanf:"session_secret"`
	GinMode       string `koanf:"gin_mode"`

	UploadDir     string `koanf:"upload_dir"`
	UploadURLPath string `koanf:"upload_url_path"`
	SiteBaseURL   string `koanf:"site_base_url"`
	PublicBaseURL string `koanf:"public_base_url"`

	AdminUsername string `koanf:"admin_username"`
	AdminPassword string `koanf:"admin_password"`

	SMTP      SMTPConfig      `koanf:"smtp"`
	RateLimit RateLimitConfig `koanf:"ratelimit"`

	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// SMTPConfig holds the outbound mail provider credentials.
type SMTPConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	To       string `koanf:"to"`
}

// RateLimitConfig controls the per-IP limiters. Form limits only count
// unsuccessful submissions.
type RateLimitConfig struct {
	GeneralWindow string `koanf:"general_window"`
	GeneralMax    int64  `koanf:"general_max"`
	FormWindow    string `koanf:"form_window"`
	FormMax       int64  `koanf:"form_max"`
}

const envPrefix = "CLINIC_"

// Load reads the application configuration from the environment and fills
// in safe defaults for anything missing.
func Load() (AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil); err != nil {
		return AppConfig{}, err
	}

	cfg := AppConfig{}
	if err := k.Unmarshal("", &cfg); err != nil {
		return AppConfig{}, err
	}

	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Port = strings.TrimSpace(cfg.Port); cfg.Port == "" {
		cfg.Port = "4000"
	}
	if cfg.ListenAddr = strings.TrimSpace(cfg.ListenAddr); cfg.ListenAddr == "" {
		cfg.ListenAddr = ":" + cfg.Port
	}
	if cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL); cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "clinic.db"
	}
	if cfg.SessionSecret = strings.TrimSpace(cfg.SessionSecret); cfg.SessionSecret == "" {
		cfg.SessionSecret = "clinic-dev-secret"
	}
	if cfg.GinMode = strings.TrimSpace(cfg.GinMode); cfg.GinMode == "" {
		cfg.GinMode = "release"
	}
	if cfg.UploadDir = strings.TrimSpace(cfg.UploadDir); cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.UploadURLPath = strings.TrimSpace(cfg.UploadURLPath); cfg.UploadURLPath == "" {
		cfg.UploadURLPath = "/uploads"
	}
	if cfg.SiteBaseURL = strings.TrimSpace(cfg.SiteBaseURL); cfg.SiteBaseURL == "" {
		cfg.SiteBaseURL = "https://anatolianspine.com"
	}
	if cfg.PublicBaseURL = strings.TrimSpace(cfg.PublicBaseURL); cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://localhost:" + cfg.Port
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
	}
	if cfg.RateLimit.GeneralWindow == "" {
		cfg.RateLimit.GeneralWindow = "15m"
	}
	if cfg.RateLimit.GeneralMax == 0 {
		cfg.RateLimit.GeneralMax = 999999
	}
	if cfg.RateLimit.FormWindow == "" {
		cfg.RateLimit.FormWindow = "3m"
	}
	if cfg.RateLimit.FormMax == 0 {
		cfg.RateLimit.FormMax = 999999
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}
}
