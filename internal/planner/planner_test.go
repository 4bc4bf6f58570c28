package planner

import (
	"path/filepath"
	"testing"

	"github.com/backmassage/segmaster/internal/config"
	"github.com/backmassage/segmaster/internal/probe"
)

func TestGOPSize(t *testing.T) {
	tests := []struct {
		name    string
		fps     float64
		seconds int
		want    int
	}{
		{"30fps x 2s", 30, 2, 60},
		{"NTSC 29.97 x 2s", 30000.0 / 1001.0, 2, 60},
		{"film 23.976 x 2s", 24000.0 / 1001.0, 2, 48},
		{"25fps x 3s", 25, 3, 75},
		{"default fps x 2s", probe.DefaultFPS, 2, 60},
		{"59.94 x 1s rounds up", 60000.0 / 1001.0, 1, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GOPSize(tt.fps, tt.seconds); got != tt.want {
				t.Errorf("GOPSize(%v, %d) = %d, want %d", tt.fps, tt.seconds, got, tt.want)
			}
		})
	}
}

func TestScaleFilter(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want string
	}{
		{"both dimensions", 1280, 720, "scale=1280:720"},
		{"width only", 1280, 0, "scale=1280:-2"},
		{"height only", 0, 480, "scale=-2:480"},
		{"neither", 0, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScaleFilter(tt.w, tt.h); got != tt.want {
				t.Errorf("ScaleFilter(%d, %d) = %q, want %q", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestResolveDimensions(t *testing.T) {
	tests := []struct {
		name         string
		reqW, reqH   int
		srcW, srcH   int
		wantW, wantH int
	}{
		{"both requested win exactly", 1280, 720, 1920, 1080, 1280, 720},
		{"width only preserves 16:9", 1280, 0, 1920, 1080, 1280, 720},
		{"height only preserves 16:9", 0, 480, 1920, 1080, 854, 480},
		{"neither keeps source", 0, 0, 1920, 1080, 1920, 1080},
		{"odd result rounds to even", 640, 0, 1920, 817, 640, 272},
		{"width only with unknown source", 1280, 0, 0, 0, 1280, 0},
		{"height only with unknown source", 0, 480, 0, 0, 0, 480},
		{"neither with unknown source", 0, 0, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ResolveDimensions(tt.reqW, tt.reqH, tt.srcW, tt.srcH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("ResolveDimensions(%d, %d, %d, %d) = %dx%d, want %dx%d",
					tt.reqW, tt.reqH, tt.srcW, tt.srcH, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestEvenRound(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{720, 720},
		{719, 720},
		{718.2, 718},
		{853.33, 854},
		{721, 722}, // exact odd tie rounds up
	}
	for _, tt := range tests {
		if got := evenRound(tt.in); got != tt.want {
			t.Errorf("evenRound(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestBuildPlan(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.OutputDir = "/tmp/out"
	cfg.BitrateKbps = 400
	cfg.Width = 1280

	info := probe.VideoInfo{Duration: 10, Width: 1920, Height: 1080, FPS: 30}
	plan := BuildPlan(&cfg, &info)

	if plan.PlaylistPath != filepath.Join("/tmp/out", "index.m3u8") {
		t.Errorf("PlaylistPath = %q", plan.PlaylistPath)
	}
	if plan.SegmentPattern != filepath.Join("/tmp/out", "index_%03d.ts") {
		t.Errorf("SegmentPattern = %q", plan.SegmentPattern)
	}
	if plan.GOPSize != 60 {
		t.Errorf("GOPSize = %d, want 60", plan.GOPSize)
	}
	if plan.ScaleFilter != "scale=1280:-2" {
		t.Errorf("ScaleFilter = %q", plan.ScaleFilter)
	}
	if plan.TargetWidth != 1280 || plan.TargetHeight != 720 {
		t.Errorf("target = %dx%d, want 1280x720", plan.TargetWidth, plan.TargetHeight)
	}
	if plan.BitrateKbps != 400 || plan.SegmentLength != 2 {
		t.Errorf("bitrate=%d segment=%d", plan.BitrateKbps, plan.SegmentLength)
	}
}

func TestBuildPlan_NoScaling(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.OutputDir = "/tmp/out"
	cfg.BitrateKbps = 400

	info := probe.VideoInfo{Width: 1920, Height: 1080, FPS: 30}
	plan := BuildPlan(&cfg, &info)

	if plan.ScaleFilter != "" {
		t.Errorf("ScaleFilter = %q, want empty (source dimensions kept)", plan.ScaleFilter)
	}
	if plan.TargetWidth != 1920 || plan.TargetHeight != 1080 {
		t.Errorf("target = %dx%d, want source 1920x1080", plan.TargetWidth, plan.TargetHeight)
	}
}
