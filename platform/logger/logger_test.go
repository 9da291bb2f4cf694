package logger

import (
	"encoding/json"
	"go.uber.org/zap/zapcore"
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")

	log, err := New("Notes-Test", path)
	if err != nil {
		t.Fatalf("Test New: should build a logger: %v", err)
	}
	log.Infow("upload", "object", "notes_pdfs/1-a")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Test New: should have written the log file: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("Test New: should write json lines: %v %s", err, data)
	}
	if entry["service"] != "Notes-Test" || entry["object"] != "notes_pdfs/1-a" {
		t.Fatalf("Test New: should carry the service and the fields: %v", entry)
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Fatalf("Test New: should use timestamp as time key: %v", entry)
	}
}

func TestNewAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")

	log, err := NewAt("Notes-Test", zapcore.DebugLevel, path)
	if err != nil {
		t.Fatalf("Test NewAt: should build a logger: %v", err)
	}
	log.Debugw("draft", "status", "loaded")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Test NewAt: should have written the log file: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("Test NewAt: should have written the debug entry: %v %s", err, data)
	}
	if entry["level"] != "debug" {
		t.Fatalf("Test NewAt: should write debug entries: %v", entry)
	}
}
