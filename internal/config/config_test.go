package config

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/vrcreative/seo-codex/internal/validate"
)

func TestFromViper_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := fromViper(viper.New())
	if err != nil {
		t.Fatalf("fromViper: %v", err)
	}
	if cfg.HTTP.Addr != ":3000" {
		t.Errorf("HTTP.Addr = %q, want :3000", cfg.HTTP.Addr)
	}
	if cfg.HTTP.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.HTTP.ShutdownTimeout)
	}
	if cfg.DB.Driver != "sqlite3" || cfg.DB.DSN != "seo-codex.db" {
		t.Errorf("DB = %+v", cfg.DB)
	}
	if cfg.RegistryPath != "tag-system/tag-registry.md" {
		t.Errorf("RegistryPath = %q", cfg.RegistryPath)
	}
	want := validate.DefaultRules()
	if cfg.Rules.TagsMin != want.TagsMin || cfg.Rules.MetaDescriptionMax != want.MetaDescriptionMax {
		t.Errorf("Rules = %+v, want defaults", cfg.Rules)
	}
}

func TestFromViper_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")

	v := viper.New()
	v.Set("rules.tags_min", 3)
	v.Set("rules.tags_max", 8)
	v.Set("db.driver", "postgres")
	v.Set("db.dsn", "postgres://localhost/seo")

	cfg, err := fromViper(v)
	if err != nil {
		t.Fatalf("fromViper: %v", err)
	}
	if cfg.HTTP.Addr != ":8081" {
		t.Errorf("HTTP.Addr = %q, want :8081", cfg.HTTP.Addr)
	}
	if cfg.Rules.TagsMin != 3 || cfg.Rules.TagsMax != 8 {
		t.Errorf("tag bounds = [%d,%d], want [3,8]", cfg.Rules.TagsMin, cfg.Rules.TagsMax)
	}
	if cfg.DB.Driver != "postgres" {
		t.Errorf("DB.Driver = %q", cfg.DB.Driver)
	}
}

func TestFromViper_Invalid(t *testing.T) {
	t.Setenv("PORT", "")

	tests := []struct {
		name    string
		key     string
		value   any
		wantErr error
	}{
		{name: "bad duration", key: "http.shutdown_timeout", value: "soon"},
		{name: "inverted tag bounds", key: "rules.tags_min", value: 50, wantErr: validate.ErrInvalidRules},
		{name: "empty driver", key: "db.driver", value: ""},
		{name: "empty registry", key: "registry.path", value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.value)
			_, err := fromViper(v)
			if err == nil {
				t.Fatalf("fromViper(%s=%v) = nil error", tt.key, tt.value)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("fromViper(%s=%v) = %v, want %v", tt.key, tt.value, err, tt.wantErr)
			}
		})
	}
}
