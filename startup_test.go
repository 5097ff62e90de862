package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/olivier-w/dotstar/internal/config"
	"github.com/olivier-w/dotstar/internal/show"
)

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if opts.cfg != config.Default() {
		t.Fatalf("cfg = %+v, want defaults", opts.cfg)
	}
	if opts.mirror {
		t.Fatal("mirror enabled by default")
	}
}

func TestParseFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dotstar.yaml")
	if err := os.WriteFile(path, []byte("lights: 60\nmode: wave\nsink: spi\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	opts, err := parseFlags([]string{"-config", path, "-mode", "strobe", "-spi-hz", "8000000", "-mirror"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	cfg := opts.cfg
	if cfg.Lights != 60 {
		t.Errorf("lights = %d, want 60 from file", cfg.Lights)
	}
	if cfg.InitialMode() != show.ModeStrobe {
		t.Errorf("mode = %q, want strobe from flag", cfg.Mode)
	}
	if cfg.Sink != config.SinkSPI {
		t.Errorf("sink = %q", cfg.Sink)
	}
	if cfg.SPI.Hz != 8_000_000 {
		t.Errorf("hz = %d", cfg.SPI.Hz)
	}
	if !opts.mirror {
		t.Error("mirror flag ignored")
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := [][]string{
		{"-lights", "0"},
		{"-sink", "hdmi"},
		{"-mode", "disco"},
		{"-log-level", "loud"},
		{"extra"},
		{"-config", "/nonexistent/dotstar.yaml"},
	}
	for _, args := range tests {
		if _, err := parseFlags(args); err == nil {
			t.Errorf("parseFlags(%q) succeeded", args)
		}
	}
}

func TestReadEvents(t *testing.T) {
	log, _, _ := newLogger(config.Default(), true)
	events := readEvents(strings.NewReader("m 3\nqx?c"), log)
	want := []show.Event{
		{Kind: show.ModeNext},
		show.Select(show.ModeWave),
		show.Left(show.Knob0),
		show.Right(show.Knob2),
		show.Button(show.Knob2),
	}
	for i, w := range want {
		select {
		case got := <-events:
			if got != w {
				t.Fatalf("event %d = %v, want %v", i, got, w)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}
	select {
	case ev, ok := <-events:
		t.Fatalf("unexpected event %v (open=%v) after EOF", ev, ok)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNewLoggerFile(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "dotstar.log")
	cfg.LogLevel = "debug"
	log, closeLog, err := newLogger(cfg, true)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	if log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v", log.GetLevel())
	}
	log.WithField("mode", show.ModeWave).Info("mode changed")
	closeLog()

	data, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "mode changed") || !strings.Contains(string(data), "mode=wave") {
		t.Fatalf("log file = %q", data)
	}
}
