package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("missing config must not error: %v", err)
	}
	if cfg.RequestTimeoutSec != 120 || cfg.Theme != "light" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.yml")
	in := Config{
		GeminiAPIKey:      "test-key",
		StorageRoot:       "/tmp/adib",
		RequestTimeoutSec: 45,
		Theme:             "dark",
		Location:          &LatLng{Latitude: 41.3, Longitude: 69.25},
	}
	if err := SaveConfig(in, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.GeminiAPIKey != in.GeminiAPIKey || out.Theme != in.Theme || out.RequestTimeoutSec != 45 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if out.Location == nil || out.Location.Latitude != 41.3 {
		t.Fatalf("location did not survive: %+v", out.Location)
	}
}

func TestLoadConfigClampsBadTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("request_timeout_sec: -5\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RequestTimeoutSec != 120 {
		t.Fatalf("timeout must clamp to default, got %d", cfg.RequestTimeoutSec)
	}
}
