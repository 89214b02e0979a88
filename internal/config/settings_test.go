package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/watchfire-io/turboboost/internal/models"
)

func TestLoadSettingsFromMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	s, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("LoadSettingsFrom() error: %v", err)
	}
	if *s != *models.NewSettings() {
		t.Errorf("LoadSettingsFrom() = %+v, want defaults", s)
	}
}

func TestLoadSettingsFromPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "log:\n  level: debug\npowercfg:\n  path: C:\\Windows\\System32\\powercfg.exe\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("LoadSettingsFrom() error: %v", err)
	}
	if s.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", s.Log.Level)
	}
	if s.Log.MaxSizeMB != 5 || s.Log.MaxBackups != 3 {
		t.Errorf("rotation defaults lost: %+v", s.Log)
	}
	if !s.Notifications.Enabled {
		t.Error("Notifications.Enabled default lost")
	}
	if s.PowercfgPath() != `C:\Windows\System32\powercfg.exe` {
		t.Errorf("PowercfgPath() = %q", s.PowercfgPath())
	}
}

func TestLoadSettingsFromInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("log: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSettingsFrom(path); err == nil {
		t.Error("LoadSettingsFrom() expected error for invalid YAML")
	}
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	want := models.NewSettings()
	want.Notifications.Enabled = false
	want.Log.MaxBackups = 7

	if err := SaveSettings(path, want); err != nil {
		t.Fatalf("SaveSettings() error: %v", err)
	}
	got, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("LoadSettingsFrom() error: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestPathsUseAppDir(t *testing.T) {
	state, err := StateFile()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	if filepath.Base(state) != StateFileName {
		t.Errorf("StateFile() = %q", state)
	}
	if filepath.Base(filepath.Dir(state)) != AppDirName {
		t.Errorf("StateFile() not under %s: %q", AppDirName, state)
	}

	logFile, err := LogFile()
	if err != nil {
		t.Skipf("no user cache dir: %v", err)
	}
	if filepath.Base(filepath.Dir(logFile)) != LogsDirName {
		t.Errorf("LogFile() not under logs dir: %q", logFile)
	}
}
