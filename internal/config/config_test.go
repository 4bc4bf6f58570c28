package config

import (
	"testing"
)

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.Input = "clip.mp4"
	cfg.OutputDir = "./out"
	cfg.BitrateKbps = 400
	return cfg
}

func TestValidate_Request(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid minimal request", func(c *Config) {}, false},
		{"missing input", func(c *Config) { c.Input = "" }, true},
		{"missing output", func(c *Config) { c.OutputDir = "" }, true},
		{"zero bitrate", func(c *Config) { c.BitrateKbps = 0 }, true},
		{"negative bitrate", func(c *Config) { c.BitrateKbps = -100 }, true},
		{"zero segment length", func(c *Config) { c.SegmentLength = 0 }, true},
		{"negative segment length", func(c *Config) { c.SegmentLength = -1 }, true},
		{"negative width", func(c *Config) { c.Width = -1280 }, true},
		{"negative height", func(c *Config) { c.Height = -720 }, true},
		{"width only", func(c *Config) { c.Width = 1280 }, false},
		{"height only", func(c *Config) { c.Height = 480 }, false},
		{"both dimensions", func(c *Config) { c.Width = 1280; c.Height = 720 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_CheckOnlySkipsRequest(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CheckOnly = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() in check mode should not require a request: %v", err)
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "rainbow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SegmentLength != 2 {
		t.Errorf("SegmentLength default = %d, want 2", cfg.SegmentLength)
	}
	if cfg.Profile != "baseline" || cfg.Tune != "zerolatency" {
		t.Errorf("fixed encoder params: profile=%q tune=%q", cfg.Profile, cfg.Tune)
	}
	if !cfg.Analyze {
		t.Error("Analyze should default to true")
	}
	if cfg.Width != 0 || cfg.Height != 0 {
		t.Errorf("dimensions should default to unset, got %dx%d", cfg.Width, cfg.Height)
	}
}
