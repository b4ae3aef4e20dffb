package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log, closer := New(Config{Level: "debug", Format: "json", Output: &buf})
	defer closer.Close()

	log.With(String("scenario", "308")).Debug(context.Background(), "zero found",
		Float("pitch_mrad", 1.25), Int("iterations", 14), Err(errors.New("boom")))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if entry["msg"] != "zero found" || entry["scenario"] != "308" || entry["error"] != "boom" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry["pitch_mrad"] != 1.25 || entry["iterations"] != float64(14) {
		t.Fatalf("unexpected numeric fields %v", entry)
	}
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log, _ := New(Config{Level: "warn", Output: &buf})
	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solver.log")
	log, closer := New(Config{File: path})
	log.Info(context.Background(), "written to file")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Fatalf("unexpected file content %q", data)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_FILE", "")
	t.Setenv("LOG_MAX_SIZE_MB", "8")
	cfg := ConfigFromEnv()
	if cfg.Level != "debug" || cfg.Format != "json" || cfg.MaxSizeMB != 8 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestNoop(t *testing.T) {
	log := Noop().With(String("a", "b"))
	log.Error(context.Background(), "dropped")
}
