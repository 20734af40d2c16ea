package config

import (
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "host=localhost user=test password=test dbname=test port=5432 sslmode=disable")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("MAIL_API_URL", "https://api.mail.test")
	t.Setenv("MAIL_API_KEY", "test-key")
	t.Setenv("ADMIN_NOTIFY_EMAILS", "staff1@lighthouse.test, staff2@lighthouse.test")
	t.Setenv("LLM_API_URL", "https://api.llm.test/v1")
	t.Setenv("LLM_API_KEY", "llm-key")
	t.Setenv("S3_BUCKET", "lighthouse-assets")
	t.Setenv("ADMIN_EMAIL", "admin@lighthouse.test")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIPort != 8080 {
		t.Errorf("APIPort = %d, want 8080", cfg.APIPort)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
	if cfg.RateLimitPerMin != 30 {
		t.Errorf("RateLimitPerMin = %d, want 30", cfg.RateLimitPerMin)
	}
	if cfg.SessionTTLMin != 720 {
		t.Errorf("SessionTTLMin = %d, want 720", cfg.SessionTTLMin)
	}
	if cfg.S3Region != "ap-northeast-2" {
		t.Errorf("S3Region = %s, want ap-northeast-2", cfg.S3Region)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("API_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_PER_MIN", "120")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIPort != 9090 {
		t.Errorf("APIPort = %d, want 9090", cfg.APIPort)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
	if cfg.RateLimitPerMin != 120 {
		t.Errorf("RateLimitPerMin = %d, want 120", cfg.RateLimitPerMin)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_DSN", "host=localhost")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing required env vars, got nil")
	}
}

func TestAdminRecipients(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recipients := cfg.AdminRecipients()
	if len(recipients) != 2 {
		t.Fatalf("len(recipients) = %d, want 2", len(recipients))
	}
	if recipients[0] != "staff1@lighthouse.test" || recipients[1] != "staff2@lighthouse.test" {
		t.Fatalf("recipients = %v, want trimmed addresses", recipients)
	}
}
