package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestSetup_DisabledByDefault(t *testing.T) {
	logFile, err := Setup(false, t.TempDir())
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}

	if output := log.Writer(); output != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", output)
	}
	if slog.Default().Enabled(t.Context(), slog.LevelError) {
		t.Error("Expected slog to be disabled")
	}
}

func TestSetup_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), DefaultDir)

	logFile, err := Setup(true, dir)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()
	defer Setup(false, "")

	logPath := filepath.Join(dir, FileName)
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Fatal("Expected log file to be created")
	}

	slog.Debug("test message", "key", 1)

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}

	output := log.Writer()
	if output == os.Stdout || output == os.Stderr {
		t.Error("Log output should not be stdout or stderr")
	}
}

func TestSetup_Rotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, FileName)

	if err := os.WriteFile(logPath, make([]byte, MaxSize+1), 0644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	logFile, err := Setup(true, dir)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	defer logFile.Close()
	defer Setup(false, "")

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != FileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > MaxSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", MaxSize, info.Size())
	}
}
