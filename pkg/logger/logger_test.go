package logger

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		logFile string
		wantErr bool
	}{
		{name: "debug level, no file", level: "debug"},
		{name: "info level, no file", level: "info"},
		{name: "warn level, no file", level: "warn"},
		{name: "error level, no file", level: "error"},
		{name: "unknown level falls back to info", level: "verbose"},
		{name: "empty level falls back to info", level: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Init(tt.level, tt.logFile)
			if (err != nil) != tt.wantErr {
				t.Errorf("Init() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && Log == nil {
				t.Error("Init() succeeded but Log is nil")
			}
		})
	}
}

func TestInitWithFile(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "app.log")

	if err := Init("info", logFile); err != nil {
		t.Fatalf("Init() with file error = %v", err)
	}

	Log.Info("write something so the file is created")
	_ = Sync()

	if _, err := os.Stat(logFile); err != nil {
		t.Errorf("expected log file to exist: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"nonsense", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSyncWithoutInit(t *testing.T) {
	saved := Log
	Log = nil
	defer func() { Log = saved }()

	if err := Sync(); err != nil {
		t.Errorf("Sync() with nil logger should be a no-op, got %v", err)
	}
}
