package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_WritesToOutputPath(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	path := filepath.Join(t.TempDir(), "hangman.log")
	if err := Init("info", []string{path}); err != nil {
		t.Fatalf("Init should not fail, got: %v", err)
	}

	Log.Infof("round started with %d letters", 6)
	Log.Debugf("debug entries are below the level")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "round started with 6 letters") {
		t.Errorf("Expected info entry in log file, got %q", data)
	}
	if strings.Contains(string(data), "debug entries") {
		t.Errorf("Debug entry should be filtered at info level, got %q", data)
	}
}

func TestInit_RejectsUnknownLevel(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	if err := Init("chatty", nil); err == nil {
		t.Fatal("Expected an error for an unknown level")
	}
	if Log != prev {
		t.Error("Log should be left untouched when Init fails")
	}
}
