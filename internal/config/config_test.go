package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.AppEnv != "development" {
		t.Errorf("expected default AppEnv 'development', got %s", cfg.AppEnv)
	}
	if cfg.AppPort != 8080 {
		t.Errorf("expected default AppPort 8080, got %d", cfg.AppPort)
	}
	if !cfg.UseMockData {
		t.Error("expected mock data by default")
	}
	if cfg.BackendURL != "http://localhost:8080" {
		t.Errorf("expected default BackendURL, got %s", cfg.BackendURL)
	}
	if cfg.HTTPTimeout != 0 {
		t.Errorf("expected no client timeout by default, got %s", cfg.HTTPTimeout)
	}
	if cfg.SessionKeyPrefix != "fitai:" {
		t.Errorf("expected default SessionKeyPrefix 'fitai:', got %s", cfg.SessionKeyPrefix)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default LogLevel 'info', got %s", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("expected default LogFormat 'text', got %s", cfg.LogFormat)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("expected default ShutdownTimeout 30s, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoad_LiveMode(t *testing.T) {
	t.Setenv("USE_MOCK_DATA", "false")
	t.Setenv("BACKEND_URL", "https://api.fitai.app")
	t.Setenv("HTTP_TIMEOUT", "15s")
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.UseMockData {
		t.Error("expected live mode")
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("expected HTTPTimeout 15s, got %s", cfg.HTTPTimeout)
	}
	if cfg.RedisURL != "redis://localhost:6379" {
		t.Errorf("expected RedisURL to be set, got %s", cfg.RedisURL)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unparseable bool", map[string]string{"USE_MOCK_DATA": "maybe"}},
		{"relative backend url", map[string]string{"USE_MOCK_DATA": "false", "BACKEND_URL": "/api"}},
		{"ftp backend url", map[string]string{"USE_MOCK_DATA": "false", "BACKEND_URL": "ftp://host"}},
		{"negative timeout", map[string]string{"HTTP_TIMEOUT": "-1s"}},
		{"zero burst", map[string]string{"RATE_LIMIT_AUTH_BURST": "0"}},
		{"zero body size", map[string]string{"MAX_REQUEST_BODY_SIZE": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestLoad_MockModeIgnoresBackendURL(t *testing.T) {
	t.Setenv("USE_MOCK_DATA", "true")
	t.Setenv("BACKEND_URL", "not a url")

	if _, err := Load(); err != nil {
		t.Fatalf("expected no error in mock mode, got %v", err)
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{AppEnv: "development"}
	if !cfg.IsDevelopment() {
		t.Error("expected IsDevelopment to return true")
	}

	cfg.AppEnv = "production"
	if cfg.IsDevelopment() {
		t.Error("expected IsDevelopment to return false")
	}
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{AppEnv: "production"}
	if !cfg.IsProduction() {
		t.Error("expected IsProduction to return true")
	}

	cfg.AppEnv = "development"
	if cfg.IsProduction() {
		t.Error("expected IsProduction to return false")
	}
}

func TestConfig_GetCORSAllowedOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: " https://a.example , ,https://b.example"}
	got := cfg.GetCORSAllowedOrigins()
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Errorf("GetCORSAllowedOrigins() = %v", got)
	}

	if (&Config{}).GetCORSAllowedOrigins() != nil {
		t.Error("expected nil for empty origins")
	}
}

func TestConfig_SessionFile(t *testing.T) {
	cfg := &Config{SessionPath: "/tmp/fitai-test/session.db"}
	if got, err := cfg.SessionFile(); err != nil || got != "/tmp/fitai-test/session.db" {
		t.Errorf("SessionFile() = %q, %v; want SESSION_PATH", got, err)
	}

	t.Setenv("XDG_CONFIG_HOME", "/tmp/fitai-config")
	t.Setenv("HOME", "/tmp/fitai-home")
	want, err := DefaultSessionPath()
	if err != nil {
		t.Fatalf("DefaultSessionPath() error = %v", err)
	}
	got, err := (&Config{}).SessionFile()
	if err != nil || got != want {
		t.Errorf("SessionFile() = %q, %v; want %q", got, err, want)
	}
	if filepath.Base(got) != "session.db" || filepath.Base(filepath.Dir(got)) != "fitai" {
		t.Errorf("default session path = %q, want .../fitai/session.db", got)
	}
}
