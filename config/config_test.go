package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadConfigDefaultsWithoutEnvFile(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig without a .env file: %v", err)
	}
	if cfg.App.TurnLogPath != "appointments.txt" {
		t.Errorf("TurnLogPath = %q, want the default", cfg.App.TurnLogPath)
	}
	if cfg.App.AssignWaitTimeout != 5*time.Second {
		t.Errorf("AssignWaitTimeout = %v, want 5s", cfg.App.AssignWaitTimeout)
	}
	if cfg.App.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.App.LogLevel)
	}
}

func TestLoadConfigReadsEnvFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	env := "DB_HOST=db.internal\n" +
		"DB_PORT=5433\n" +
		"DB_NAME=turnos\n" +
		"TURN_LOG_PATH=/var/log/turnos.txt\n" +
		"ASSIGN_WAIT_TIMEOUT=250ms\n" +
		"LOG_LEVEL=debug\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644); err != nil {
		t.Fatalf("writing .env: %v", err)
	}
	t.Chdir(dir)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DB.Host != "db.internal" || cfg.DB.Port != "5433" || cfg.DB.Name != "turnos" {
		t.Errorf("DB config = %+v", cfg.DB)
	}
	if cfg.App.TurnLogPath != "/var/log/turnos.txt" {
		t.Errorf("TurnLogPath = %q", cfg.App.TurnLogPath)
	}
	if cfg.App.AssignWaitTimeout != 250*time.Millisecond {
		t.Errorf("AssignWaitTimeout = %v, want 250ms", cfg.App.AssignWaitTimeout)
	}
	if cfg.App.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.App.LogLevel)
	}
}

func TestLoadConfigRejectsMalformedTimeout(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("ASSIGN_WAIT_TIMEOUT=soon\n"), 0o644); err != nil {
		t.Fatalf("writing .env: %v", err)
	}
	t.Chdir(dir)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.App.AssignWaitTimeout != 5*time.Second {
		t.Errorf("malformed timeout should fall back to 5s, got %v", cfg.App.AssignWaitTimeout)
	}
}
