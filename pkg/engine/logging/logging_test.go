package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
)

func TestSetup_InvalidLevel(t *testing.T) {
	if err := Setup(&bytes.Buffer{}, "loud"); err == nil {
		t.Error("Setup(loud) succeeded, want error")
	}
}

func TestSetup_WritesAtLevel(t *testing.T) {
	var buf bytes.Buffer
	if err := Setup(&buf, "info"); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	log.Debug().Msg("hidden")
	log.Info().Str("round", "abc").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message written at info level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "round=") {
		t.Errorf("info message missing or without field: %q", out)
	}
}

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	closer, err := SetupFile(path, "debug", false)
	if err != nil {
		t.Fatalf("SetupFile: %v", err)
	}
	log.Info().Msg("to file")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file = %q, want message", data)
	}
}
