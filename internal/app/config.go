package app

import (
	"flag"
	"fmt"
	"time"

	"ledray/internal/led"
)

// Config represents the command-line parameters for the application. It is
// read once at startup and never re-read.
type Config struct {
	DeviceHost     string
	MatrixW        int
	MatrixH        int
	Wiring         string
	StreamInterval time.Duration
	StreamTimeout  time.Duration

	Level   string
	RenderW int
	RenderH int
	Scale   int
	TPS     int
	Debug   bool
}

// NewConfig returns a Config populated with sensible defaults. The matrix
// defaults match a 16x8 WLED panel pair; the stream interval caps device
// updates at about 20 fps.
func NewConfig() *Config {
	return &Config{
		MatrixW:        16,
		MatrixH:        8,
		Wiring:         "row",
		StreamInterval: 50 * time.Millisecond,
		StreamTimeout:  100 * time.Millisecond,
		Level:          "rooms",
		RenderW:        320,
		RenderH:        200,
		Scale:          3,
		TPS:            35,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.DeviceHost, "device", c.DeviceHost, "WLED device IP or hostname")
	fs.IntVar(&c.MatrixW, "matrix-w", c.MatrixW, "LED matrix width in pixels")
	fs.IntVar(&c.MatrixH, "matrix-h", c.MatrixH, "LED matrix height in pixels")
	fs.StringVar(&c.Wiring, "wiring", c.Wiring, "matrix wiring layout (row, row-serpentine, col, col-serpentine, split)")
	fs.DurationVar(&c.StreamInterval, "stream-interval", c.StreamInterval, "minimum time between device frames")
	fs.DurationVar(&c.StreamTimeout, "stream-timeout", c.StreamTimeout, "per-frame device request timeout")
	fs.StringVar(&c.Level, "level", c.Level, "level to play")
	fs.IntVar(&c.RenderW, "render-w", c.RenderW, "render resolution width")
	fs.IntVar(&c.RenderH, "render-h", c.RenderH, "render resolution height")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "game ticks per second")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "show FPS and stream statistics overlay")
}

// Validate checks the configuration before the game loop starts. Any error
// here is fatal.
func (c *Config) Validate() error {
	if c.DeviceHost == "" {
		return fmt.Errorf("config: -device is required")
	}
	if c.MatrixW <= 0 || c.MatrixH <= 0 {
		return fmt.Errorf("config: matrix dimensions %dx%d must be positive", c.MatrixW, c.MatrixH)
	}
	if c.RenderW <= 0 || c.RenderH <= 0 {
		return fmt.Errorf("config: render resolution %dx%d must be positive", c.RenderW, c.RenderH)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("config: scale %d must be positive", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("config: tps %d must be positive", c.TPS)
	}
	if c.StreamInterval <= 0 {
		return fmt.Errorf("config: stream interval %v must be positive", c.StreamInterval)
	}
	if c.StreamTimeout <= 0 {
		return fmt.Errorf("config: stream timeout %v must be positive", c.StreamTimeout)
	}
	if _, err := led.ParseLayout(c.Wiring); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Layout returns the parsed wiring layout. Validate must have succeeded.
func (c *Config) Layout() led.Layout {
	l, _ := led.ParseLayout(c.Wiring)
	return l
}
