package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/segmaster/internal/config"
	"github.com/backmassage/segmaster/internal/term"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = ""
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(dir, "segmaster.log")
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("to file")
	l.Warn("warned")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("INFO")) || !bytes.Contains(b, []byte("to file")) {
		t.Errorf("log file content: %s", string(b))
	}
	if !bytes.Contains(b, []byte("WARN")) {
		t.Errorf("log file missing WARN line: %s", string(b))
	}
}

func TestNewLogger_FileDirCreated(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(dir, "logs", "nested", "segmaster.log")
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("nested")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(cfg.LogFile); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

func TestColorModes(t *testing.T) {
	cfg := config.DefaultConfig()

	cfg.ColorMode = config.ColorAlways
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.Close()
	if !term.Enabled() {
		t.Error("ColorAlways did not enable colors")
	}

	cfg.ColorMode = config.ColorNever
	l, err = NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.Close()
	if term.Enabled() || term.Red != "" {
		t.Error("ColorNever left colors enabled")
	}
}
