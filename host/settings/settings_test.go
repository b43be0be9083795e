package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("KEYGLOW_CONFIG", "")

	s, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Serial.Device != "/dev/ttyACM0" || s.Serial.Baud != 115200 || s.Serial.ReadTimeout != 100 {
		t.Errorf("Unexpected serial defaults %+v", s.Serial)
	}
	if s.Log.Level != "info" || s.Profile != "" {
		t.Errorf("Unexpected defaults %+v", s)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keyglow.toml")
	data := []byte("profile = \"gmmk.json\"\n\n[serial]\ndevice = \"/dev/ttyUSB3\"\nread_timeout = 250\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("KEYGLOW_LOG_LEVEL", "debug")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Serial.Device != "/dev/ttyUSB3" || s.Serial.ReadTimeout != 250 {
		t.Errorf("Expected file values, got %+v", s.Serial)
	}
	if s.Serial.Baud != 115200 {
		t.Errorf("Expected default baud, got %d", s.Serial.Baud)
	}
	if s.Profile != "gmmk.json" {
		t.Errorf("Expected profile from file, got %q", s.Profile)
	}
	if s.Log.Level != "debug" {
		t.Errorf("Expected env override, got %q", s.Log.Level)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Expected error for missing explicit settings file")
	}
}
