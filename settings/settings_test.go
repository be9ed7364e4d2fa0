package settings

import (
	"os"
	"testing"
)

func TestNewSettingsDefaults(t *testing.T) {
	t.Setenv("MONGO_DB", "catalog")
	t.Setenv("JWT_SECRET_KEY", "secret")

	s, err := newSettings()
	if err != nil {
		t.Fatalf("newSettings() error = %v", err)
	}
	if s.PORT != "8080" || s.RATE_LIMIT != 7 || s.MONGO_CONNECTION != "mongodb://localhost:27017" {
		t.Fatalf("unexpected defaults %+v", s)
	}
	if s.IsProd() {
		t.Fatal("default environment must not be prod")
	}
}

func TestNewSettingsRequired(t *testing.T) {
	for _, key := range []string{"MONGO_DB", "JWT_SECRET_KEY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	if _, err := newSettings(); err == nil {
		t.Fatal("expected error for missing required keys")
	}
}
