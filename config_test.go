package sapling

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.NodeWidth = 0 }},
		{"negative height", func(c *Config) { c.NodeHeight = -1 }},
		{"negative hgap", func(c *Config) { c.HorizontalGap = -2 }},
		{"negative vgap", func(c *Config) { c.VerticalGap = -2 }},
		{"negative canvas", func(c *Config) { c.CanvasWidth = -10 }},
		{"negative throttle", func(c *Config) { c.MoveThrottle = -time.Millisecond }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig([]byte("node_width: 200\nmove_throttle: 16ms\ncenter_offset: {x: 5, y: 6}\n"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.NodeWidth != 200 {
		t.Errorf("NodeWidth = %v, want 200", cfg.NodeWidth)
	}
	if cfg.MoveThrottle != 16*time.Millisecond {
		t.Errorf("MoveThrottle = %v, want 16ms", cfg.MoveThrottle)
	}
	if cfg.CenterOffset != (Vec2{5, 6}) {
		t.Errorf("CenterOffset = %v", cfg.CenterOffset)
	}
	if cfg.NodeHeight != DefaultConfig().NodeHeight || !cfg.DragEnabled {
		t.Error("omitted keys should keep their defaults")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig([]byte("node_width: [")); err == nil {
		t.Error("expected parse error")
	}
	if _, err := LoadConfig([]byte("node_width: 0")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestConfigToPixels(t *testing.T) {
	cfg := Config{NodeWidth: 100, NodeHeight: 30, HorizontalGap: 20, VerticalGap: 10, CenterOffset: Vec2{50, 15}}
	got := cfg.ToPixels(Vec2{2, 3})
	want := Vec2{50 + 2*120, 15 + 3*40}
	if got != want {
		t.Errorf("ToPixels = %v, want %v", got, want)
	}
}

func TestLoadConfigOverKeepsBase(t *testing.T) {
	base := DefaultConfig()
	base.NodeWidth = 12
	base.NodeHeight = 3
	cfg, err := LoadConfigOver(base, []byte("vertical_gap: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.NodeWidth != 12 || cfg.NodeHeight != 3 || cfg.VerticalGap != 2 {
		t.Errorf("got %+v", cfg)
	}
}
