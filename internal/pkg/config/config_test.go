package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %s, want 24h", cfg.TokenTTL)
	}
	if cfg.Mongo.Database != "zerosmoke" {
		t.Errorf("Mongo.Database = %q", cfg.Mongo.Database)
	}
	if cfg.Email.Provider != EmailProviderLog || cfg.Email.Workers != 4 {
		t.Errorf("unexpected email config %+v", cfg.Email)
	}
	if cfg.Contact.DedupWindow != time.Hour {
		t.Errorf("DedupWindow = %s, want 1h", cfg.Contact.DedupWindow)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
	if cfg.IsProduction() {
		t.Errorf("default env must not be production")
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":     "s3cret",
		"PORT":           "9000",
		"ENV":            "production",
		"TOKEN_TTL":      "2h",
		"EMAIL_PROVIDER": "ses",
		"MAIL_WORKERS":   "8",
		"REDIS_DB":       "3",
		"CORS_ORIGINS":   "https://zerosmoke.org,http://localhost:3000",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9000" || cfg.TokenTTL != 2*time.Hour || cfg.Redis.DB != 3 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Email.Provider != EmailProviderSES || cfg.Email.Workers != 8 {
		t.Errorf("unexpected email config %+v", cfg.Email)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://localhost:3000" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if !cfg.IsProduction() {
		t.Errorf("expected production")
	}
}

func TestLoadWith_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{}},
		{"unknown provider", map[string]string{"JWT_SECRET": "x", "EMAIL_PROVIDER": "smtp"}},
		{"zero workers", map[string]string{"JWT_SECRET": "x", "MAIL_WORKERS": "0"}},
		{"bad duration", map[string]string{"JWT_SECRET": "x", "TOKEN_TTL": "soon"}},
		{"admin without password", map[string]string{"JWT_SECRET": "x", "ADMIN_EMAIL": "root@x.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadWith(context.Background(), envconfig.MapLookuper(tt.env)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
