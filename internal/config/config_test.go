package config

import (
	"testing"
	"time"
)

func TestLoadConfig_FailsClosedWithoutSessionSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/codesmart_test")
	t.Setenv("ADMIN_SESSION_SECRET", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when ADMIN_SESSION_SECRET is missing")
	}
}

func TestLoadConfig_FailsWithoutDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ADMIN_SESSION_SECRET", "s3cret")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when DATABASE_URL is missing")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/codesmart_test")
	t.Setenv("ADMIN_SESSION_SECRET", "s3cret")
	t.Setenv("PORT", "")
	t.Setenv("ADMIN_ROOT_PATH", "")
	t.Setenv("ADMIN_SESSION_MAX_AGE", "")
	t.Setenv("DATA_SOURCE", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.AdminRootPath != "/admin" {
		t.Errorf("AdminRootPath = %q, want /admin", cfg.AdminRootPath)
	}
	if cfg.AdminSessionMaxAge != 24*time.Hour {
		t.Errorf("AdminSessionMaxAge = %v, want 24h", cfg.AdminSessionMaxAge)
	}
	if cfg.DataSource != "live" {
		t.Errorf("DataSource = %q, want live", cfg.DataSource)
	}
}

func TestLoadConfig_RejectsUnknownDataSource(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/codesmart_test")
	t.Setenv("ADMIN_SESSION_SECRET", "s3cret")
	t.Setenv("DATA_SOURCE", "offline")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unknown DATA_SOURCE")
	}
}

func TestLoadConfig_KafkaBrokers(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/codesmart_test")
	t.Setenv("ADMIN_SESSION_SECRET", "s3cret")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[0] != "broker1:9092" {
		t.Errorf("KafkaBrokers = %v", cfg.KafkaBrokers)
	}
}
