package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/vrcreative/seo-codex/internal/validate"
	tagsystem "github.com/vrcreative/seo-codex/tag-system"
)

type Config struct {
	HTTP struct {
		Addr            string
		ShutdownTimeout time.Duration
	}
	DB struct {
		Driver string
		DSN    string
	}
	Log struct {
		Level string
	}
	Env          string
	RegistryPath string
	Rules        validate.Rules
}

// Load reads config from environment (SEO_ prefix) and an optional
// seo-codex.yaml in the working directory.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SEO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("seo-codex")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	rules := validate.DefaultRules()

	v.SetDefault("http.addr", ":3000")
	v.SetDefault("http.shutdown_timeout", "10s")
	v.SetDefault("env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("db.dsn", "seo-codex.db")
	v.SetDefault("registry.path", tagsystem.DefaultPath)
	v.SetDefault("rules.title_max", rules.TitleMax)
	v.SetDefault("rules.meta_title_max", rules.MetaTitleMax)
	v.SetDefault("rules.meta_description_min", rules.MetaDescriptionMin)
	v.SetDefault("rules.meta_description_max", rules.MetaDescriptionMax)
	v.SetDefault("rules.tags_min", rules.TagsMin)
	v.SetDefault("rules.tags_max", rules.TagsMax)

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	// A bare PORT variable wins over http.addr.
	if port := os.Getenv("PORT"); port != "" {
		cfg.HTTP.Addr = ":" + port
	}
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Env = v.GetString("env")
	cfg.RegistryPath = v.GetString("registry.path")

	timeout, err := time.ParseDuration(v.GetString("http.shutdown_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEO_HTTP_SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.HTTP.ShutdownTimeout = timeout

	rules.TitleMax = v.GetInt("rules.title_max")
	rules.MetaTitleMax = v.GetInt("rules.meta_title_max")
	rules.MetaDescriptionMin = v.GetInt("rules.meta_description_min")
	rules.MetaDescriptionMax = v.GetInt("rules.meta_description_max")
	rules.TagsMin = v.GetInt("rules.tags_min")
	rules.TagsMax = v.GetInt("rules.tags_max")
	if err := rules.Check(); err != nil {
		return nil, err
	}
	cfg.Rules = rules

	if cfg.DB.Driver == "" {
		return nil, fmt.Errorf("SEO_DB_DRIVER is required (sqlite3, mysql, postgres)")
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("SEO_DB_DSN is required")
	}
	if cfg.RegistryPath == "" {
		return nil, fmt.Errorf("SEO_REGISTRY_PATH is required")
	}

	return cfg, nil
}
