package config

import (
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Config carries every runtime knob of the service. Default page
// limits are deliberately per endpoint: product, review and comment
// lists historically use different window sizes.
type Config struct {
	HTTPAddr    string `mapstructure:"http_addr"`
	DatabaseURL string `mapstructure:"database_url"`
	JWTSecret   string `mapstructure:"jwt_secret"`
	LogLevel    string `mapstructure:"log_level"`

	ProductPageLimit int `mapstructure:"product_page_limit"`
	ReviewPageLimit  int `mapstructure:"review_page_limit"`
	CommentPageLimit int `mapstructure:"comment_page_limit"`
	PopularCount     int `mapstructure:"popular_count"`
}

// Load reads configuration from the environment (MARKET_ prefixed
// variables, e.g. MARKET_DATABASE_URL) on top of built-in defaults.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("database_url", "")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("product_page_limit", 10)
	v.SetDefault("review_page_limit", 5)
	v.SetDefault("comment_page_limit", 5)
	v.SetDefault("popular_count", 10)

	v.SetEnvPrefix("MARKET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SlogLevel maps the configured level string onto slog levels,
// defaulting to info for unknown values.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
