package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/portfolio/backend/internal/validation"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Store.Path != "contact_messages.json" {
		t.Errorf("expected default store path, got %q", cfg.Store.Path)
	}
	if cfg.Mail.Host != "smtp.gmail.com" || cfg.Mail.Port != 587 {
		t.Errorf("expected default SMTP endpoint, got %s:%d", cfg.Mail.Host, cfg.Mail.Port)
	}
	if cfg.Validation.Policy != "lenient" {
		t.Errorf("expected lenient default policy, got %q", cfg.Validation.Policy)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: 9090
store:
  path: /var/lib/portfolio/messages.json
validation:
  policy: strict
rate_limit:
  rps: 2
  burst: 4
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090 from file, got %d", cfg.Server.Port)
	}
	if cfg.Store.Path != "/var/lib/portfolio/messages.json" {
		t.Errorf("expected store path from file, got %q", cfg.Store.Path)
	}
	if cfg.RateLimit.RPS != 2 || cfg.RateLimit.Burst != 4 {
		t.Errorf("expected rate limit from file, got %+v", cfg.RateLimit)
	}
	if cfg.Policy().FailFast != true {
		t.Error("expected strict policy to fail fast")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not be an error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected defaults, got port %d", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("EMAIL_ADDRESS", "me@example.com")
	t.Setenv("EMAIL_PASSWORD", "secret")
	t.Setenv("RECIPIENT_EMAIL", "inbox@example.com")
	t.Setenv("VALIDATION_POLICY", "strict")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("expected PORT override, got %d", cfg.Server.Port)
	}
	if cfg.Mail.Address != "me@example.com" || cfg.Mail.Password != "secret" {
		t.Errorf("expected mail credentials from env, got %+v", cfg.Mail)
	}
	if cfg.Mail.Recipient != "inbox@example.com" {
		t.Errorf("expected recipient from env, got %q", cfg.Mail.Recipient)
	}
	if cfg.Policy().MinMessageLen != validation.Strict.MinMessageLen {
		t.Error("expected strict policy from env")
	}
}

func TestLoad_InvalidPolicy(t *testing.T) {
	t.Setenv("VALIDATION_POLICY", "relaxed")
	if _, err := Load(""); err == nil {
		t.Error("expected error for unknown validation policy")
	}
}

func TestLoad_CorruptYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unparseable config file")
	}
}

func TestAddr(t *testing.T) {
	cfg := Default()
	if got := cfg.Addr(); got != ":8080" {
		t.Errorf("expected :8080, got %q", got)
	}
	cfg.Server.Address = "127.0.0.1"
	cfg.Server.Port = 9000
	if got := cfg.Addr(); got != "127.0.0.1:9000" {
		t.Errorf("expected 127.0.0.1:9000, got %q", got)
	}
}
