package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.EmailProvider != "sendgrid" {
		t.Errorf("expected default email provider sendgrid, got %s", cfg.EmailProvider)
	}
	if cfg.BrandFile != "brand.yaml" {
		t.Errorf("expected default brand file brand.yaml, got %s", cfg.BrandFile)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DATABASE_URL", "postgres://localhost/leads")
	t.Setenv("NOTIFICATION_EMAIL", "owner@example.com")
	t.Setenv("EMAIL_PROVIDER", " SES ")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg := Load()

	if cfg.Port != "9999" {
		t.Errorf("expected port 9999, got %s", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://localhost/leads" {
		t.Errorf("unexpected database url %s", cfg.DatabaseURL)
	}
	if cfg.NotificationEmail != "owner@example.com" {
		t.Errorf("unexpected notification email %s", cfg.NotificationEmail)
	}
	if cfg.EmailProvider != "ses" {
		t.Errorf("expected normalized provider ses, got %q", cfg.EmailProvider)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[0] != "https://a.example" || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Errorf("unexpected origins %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_DBMaxConnsIgnoresGarbage(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "not-a-number")
	cfg := Load()
	if cfg.DBMaxConns != 4 {
		t.Errorf("expected fallback 4, got %d", cfg.DBMaxConns)
	}
}
