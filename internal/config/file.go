package config

// This file implements the optional YAML preset file (--config). Presets sit
// between built-in defaults and CLI flags: a value from the file wins over
// the default, and any flag passed on the command line wins over the file.

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// filePresets mirrors the subset of Config that makes sense to persist
// between runs. Zero values mean "not set" and leave the default in place.
type filePresets struct {
	Bitrate       int    `yaml:"bitrate"`
	SegmentLength int    `yaml:"segment_length"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Output        string `yaml:"output"`
	LogFile       string `yaml:"log_file"`
	Verbose       bool   `yaml:"verbose"`
}

// ApplyPresetFile reads the YAML file at path and overlays its non-zero
// values onto cfg. Unknown keys are rejected so typos surface immediately.
func ApplyPresetFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read preset file: %w", err)
	}

	var p filePresets
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return fmt.Errorf("parse preset file %s: %w", path, err)
	}

	if p.Bitrate != 0 {
		cfg.BitrateKbps = p.Bitrate
	}
	if p.SegmentLength != 0 {
		cfg.SegmentLength = p.SegmentLength
	}
	if p.Width != 0 {
		cfg.Width = p.Width
	}
	if p.Height != 0 {
		cfg.Height = p.Height
	}
	if p.Output != "" {
		cfg.OutputDir = p.Output
	}
	if p.LogFile != "" {
		cfg.LogFile = p.LogFile
	}
	if p.Verbose {
		cfg.Verbose = true
	}
	return nil
}
