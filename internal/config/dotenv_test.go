package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/acmecorp/finboard/internal/config"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	return path
}

func TestLoadDotEnv(t *testing.T) {
	path := writeEnvFile(t, `
# local overrides
MONGO_URL="mongodb://localhost:27017"
export LOG_LEVEL=debug
PORT = 9090
not a pair
=nokey
`)
	for _, key := range []string{"MONGO_URL", "LOG_LEVEL", "PORT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	if err := config.LoadDotEnv(path); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if got := os.Getenv("MONGO_URL"); got != "mongodb://localhost:27017" {
		t.Errorf("expected quotes stripped, got %q", got)
	}
	if got := os.Getenv("LOG_LEVEL"); got != "debug" {
		t.Errorf("expected export prefix accepted, got %q", got)
	}
	if got := os.Getenv("PORT"); got != "9090" {
		t.Errorf("expected whitespace trimmed, got %q", got)
	}
}

func TestLoadDotEnv_EnvironmentWins(t *testing.T) {
	path := writeEnvFile(t, "LOG_LEVEL=debug\n")
	t.Setenv("LOG_LEVEL", "info")

	if err := config.LoadDotEnv(path); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := os.Getenv("LOG_LEVEL"); got != "info" {
		t.Errorf("file entry must not override the environment, got %q", got)
	}
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	err := config.LoadDotEnv(filepath.Join(t.TempDir(), "absent.env"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
