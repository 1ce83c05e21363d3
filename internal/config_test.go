package internal

import (
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestHTTPConfig_PortBounds(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := HTTPConfig{Port: port}
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d should fail validation", port)
		}
	}

	cfg := HTTPConfig{Port: 3000}
	if err := cfg.Validate(); err != nil {
		t.Errorf("port 3000 should pass: %v", err)
	}
}

func TestHTTPConfig_Address(t *testing.T) {
	cfg := HTTPConfig{Port: 3000}
	if got := cfg.Address(); got != ":3000" {
		t.Errorf("address = %q, want :3000", got)
	}
}

func TestSQLiteConfig_PathRequired(t *testing.T) {
	cfg := SQLiteConfig{Path: ""}
	if err := cfg.Validate(); err == nil {
		t.Error("empty sqlite path should fail validation")
	}
}

func TestFullConfig_ValidationPropagates(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.SQLite.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch the sqlite error")
	}
}
