package config

import "testing"

func TestLoadServerConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := loadServerConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.Addr)
	}
}

func TestLoadServerConfigFullAddr(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:9090")
	cfg, err := loadServerConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9090" {
		t.Fatalf("unexpected addr %s", cfg.Addr)
	}
}

func TestLoadAIConfigRejectsUnknownProvider(t *testing.T) {
	t.Setenv("GEN_PROVIDER", "acme")
	if _, err := loadAIConfig(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestLoadAIConfigFailsFastOnIncompleteProvider(t *testing.T) {
	t.Setenv("GEN_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := loadAIConfig(); err == nil {
		t.Fatal("expected error when provider selected without credentials")
	}
}

func TestLoadAIConfigDegradedModeWithoutProvider(t *testing.T) {
	t.Setenv("GEN_PROVIDER", "")
	t.Setenv("ARK_API_KEY", "")
	t.Setenv("ARK_ACCESS_KEY", "")
	t.Setenv("ARK_SECRET_KEY", "")
	t.Setenv("GEN_MODEL", "")
	cfg, err := loadAIConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Enabled() {
		t.Fatal("expected generation disabled without credentials")
	}
	if cfg.TimeoutSeconds != 30 {
		t.Fatalf("expected default 30s timeout, got %d", cfg.TimeoutSeconds)
	}
}

func TestLoadStoreConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongodb")
	if _, err := loadStoreConfig(); err == nil {
		t.Fatal("expected error for unknown store driver")
	}
}
