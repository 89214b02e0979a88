package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	l, err := New(Options{FilePath: path, Level: "info"})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	l.Info().Str("context", "PLUGGED_IN").Msg("hello")
	l.Debug().Msg("hidden")
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, `"message":"hello"`) {
		t.Errorf("log file missing info entry: %s", content)
	}
	if strings.Contains(content, "hidden") {
		t.Errorf("debug entry written at info level: %s", content)
	}
}

func TestFileRotatesWhileWriting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	l, err := New(Options{FilePath: path, Level: "info", MaxSizeMB: 1, MaxBackups: 3})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	payload := strings.Repeat("x", 1024)
	for i := 0; i < 3000; i++ {
		l.Info().Int("n", i).Msg(payload)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if limit := int64(1024 * 1024); info.Size() > limit {
		t.Errorf("active log size = %d, want <= %d", info.Size(), limit)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) < 2 {
		t.Errorf("expected rotated backups next to %s, found %d file(s)", filepath.Base(path), len(entries))
	}
}

func TestCloseTwice(t *testing.T) {
	l, err := New(Options{FilePath: filepath.Join(t.TempDir(), "app.log")})
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("first Close() error: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}
