package sapling

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Config.Validate and LoadConfig for
// configurations that cannot be laid out.
var ErrInvalidConfig = errors.New("invalid sapling config")

// Config holds the host-supplied settings fixed at editor construction.
// Sizes are in pixels (cells for the terminal host).
type Config struct {
	NodeWidth     float64 `yaml:"node_width"`
	NodeHeight    float64 `yaml:"node_height"`
	HorizontalGap float64 `yaml:"horizontal_gap"`
	VerticalGap   float64 `yaml:"vertical_gap"`
	CanvasWidth   float64 `yaml:"canvas_width"`
	CanvasHeight  float64 `yaml:"canvas_height"`

	// CenterOffset is added to every pixel position.
	CenterOffset Vec2 `yaml:"center_offset"`

	DragEnabled      bool `yaml:"drag_enabled"`
	ShowPlaceholders bool `yaml:"show_placeholders"`

	// MoveThrottle is the minimum interval between forwarded pointer moves.
	// Zero forwards every move.
	MoveThrottle time.Duration `yaml:"move_throttle"`

	// AllowDeactivate lets a background click clear the selection.
	AllowDeactivate bool `yaml:"allow_deactivate"`
}

// DefaultConfig returns the settings used when the host supplies none.
func DefaultConfig() Config {
	return Config{
		NodeWidth:        120,
		NodeHeight:       40,
		HorizontalGap:    16,
		VerticalGap:      48,
		CanvasWidth:      960,
		CanvasHeight:     640,
		CenterOffset:     Vec2{X: 80, Y: 40},
		DragEnabled:      true,
		ShowPlaceholders: true,
		AllowDeactivate:  true,
	}
}

// Validate reports the first setting that makes layout impossible.
func (c Config) Validate() error {
	switch {
	case c.NodeWidth <= 0:
		return fmt.Errorf("%w: node_width must be positive, got %v", ErrInvalidConfig, c.NodeWidth)
	case c.NodeHeight <= 0:
		return fmt.Errorf("%w: node_height must be positive, got %v", ErrInvalidConfig, c.NodeHeight)
	case c.HorizontalGap < 0:
		return fmt.Errorf("%w: horizontal_gap must not be negative, got %v", ErrInvalidConfig, c.HorizontalGap)
	case c.VerticalGap < 0:
		return fmt.Errorf("%w: vertical_gap must not be negative, got %v", ErrInvalidConfig, c.VerticalGap)
	case c.CanvasWidth < 0 || c.CanvasHeight < 0:
		return fmt.Errorf("%w: canvas size must not be negative, got %vx%v", ErrInvalidConfig, c.CanvasWidth, c.CanvasHeight)
	case c.MoveThrottle < 0:
		return fmt.Errorf("%w: move_throttle must not be negative, got %v", ErrInvalidConfig, c.MoveThrottle)
	}
	return nil
}

// LoadConfig decodes YAML over DefaultConfig, so omitted keys keep their
// defaults, and validates the result.
func LoadConfig(data []byte) (Config, error) {
	return LoadConfigOver(DefaultConfig(), data)
}

// LoadConfigOver is LoadConfig with host-specific defaults in base.
func LoadConfigOver(base Config, data []byte) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// CellWidth is the horizontal distance between adjacent leaf columns.
func (c Config) CellWidth() float64 {
	return c.NodeWidth + c.HorizontalGap
}

// CellHeight is the vertical distance between adjacent levels.
func (c Config) CellHeight() float64 {
	return c.NodeHeight + c.VerticalGap
}

// ToPixels converts a grid center to a pixel center.
func (c Config) ToPixels(grid Vec2) Vec2 {
	return Vec2{
		X: c.CenterOffset.X + grid.X*c.CellWidth(),
		Y: c.CenterOffset.Y + grid.Y*c.CellHeight(),
	}
}
