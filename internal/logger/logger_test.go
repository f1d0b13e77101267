package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitCreatesLogDir(t *testing.T) {
	oldLogger := Logger
	defer func() { Logger = oldLogger }()

	dir := t.TempDir()
	if err := Init(dir, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	if Logger == nil {
		t.Fatal("expected a configured global logger")
	}
	if _, err := os.Stat(filepath.Join(dir, "logs")); err != nil {
		t.Errorf("expected logs directory to exist: %v", err)
	}
}

func TestHelpersTolerateNilLogger(t *testing.T) {
	oldLogger := Logger
	defer func() { Logger = oldLogger }()

	Logger = nil
	Debug("quiet")
	Info("quiet")
	Warn("quiet")
	Error("quiet")
}
