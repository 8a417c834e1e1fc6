// Package config loads sawtooth.toml files.
//
// A config file describes the canvas and the animation options:
//
//	theme = "palette.toml"   # optional, layered over the default theme
//
//	[canvas]
//	width = 1200
//	height = 800
//	background = "bg.100"
//
//	[saw]
//	n = 20
//	stroke_color = "bg.600"
//	time_interval = "3s"
//
//	[saw.height_wave]
//	min = 20
//	max = 45
//	ticks = 12
//	easing = "in-out-sine"
//
//	[saw.start_y_cycle]
//	values = [100, 120, 140]
//
// Zero values are kept as zero so package animate applies its own defaults.
// Colors may be theme references ("bg.600") or CSS colors.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sawtooth/pkg/animate"
	"github.com/matzehuels/sawtooth/pkg/errors"
	"github.com/matzehuels/sawtooth/pkg/theme"
)

// FileName is the config file looked up in the working directory.
const FileName = "sawtooth.toml"

// Config is the decoded form of a config file.
type Config struct {
	Theme  string `toml:"theme"`
	Canvas Canvas `toml:"canvas"`
	Saw    Saw    `toml:"saw"`
}

// Canvas sizes the document the loop draws into.
type Canvas struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Background string  `toml:"background"`
}

// Saw mirrors animate.Options.
type Saw struct {
	N            int       `toml:"n"`
	StrokeWidth  float64   `toml:"stroke_width"`
	StrokeColor  string    `toml:"stroke_color"`
	StartY       float64   `toml:"start_y"`
	IntervalY    float64   `toml:"interval_y"`
	Width        float64   `toml:"width"`
	Height       float64   `toml:"height"`
	Period       int       `toml:"period"`
	RestartY     float64   `toml:"restart_y"`
	TimeInterval Duration  `toml:"time_interval"`
	HeightWave   *Wave     `toml:"height_wave"`
	StartYCycle  *Sequence `toml:"start_y_cycle"`
}

// Wave drives HeightFn with animate.Oscillate.
type Wave struct {
	Min    float64 `toml:"min"`
	Max    float64 `toml:"max"`
	Ticks  int     `toml:"ticks"`
	Easing string  `toml:"easing"`
}

// Sequence drives StartYFn with animate.Cycle.
type Sequence struct {
	Values []float64 `toml:"values"`
}

// Duration is a time.Duration written as a string such as "1.5s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	opts := animate.DefaultOptions()
	return &Config{
		Canvas: Canvas{
			Width:      1200,
			Height:     800,
			Background: "bg.100",
		},
		Saw: Saw{
			N:            opts.N,
			StrokeWidth:  opts.StrokeWidth,
			StrokeColor:  opts.StrokeColor,
			StartY:       opts.StartY,
			IntervalY:    opts.IntervalY,
			Width:        opts.Width,
			Height:       opts.Height,
			Period:       opts.Period,
			RestartY:     opts.RestartY,
			TimeInterval: Duration{opts.TimeInterval},
		},
	}
}

// Load decodes path over the defaults. Keys missing from the file keep their
// default values. A relative theme path is resolved against the file's
// directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read config %s", path)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if cfg.Theme != "" && !filepath.IsAbs(cfg.Theme) {
		cfg.Theme = filepath.Join(filepath.Dir(path), cfg.Theme)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the parts of the config that cannot fall back to a
// default: easing names and negative durations.
func (c *Config) Validate() error {
	if c.Saw.TimeInterval.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "saw.time_interval must not be negative")
	}
	if w := c.Saw.HeightWave; w != nil {
		if _, err := animate.EasingByName(w.Easing); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "saw.height_wave.easing")
		}
	}
	return nil
}

// LoadTheme returns the theme named by the config, or the default theme.
func (c *Config) LoadTheme() (*theme.Theme, error) {
	if c.Theme == "" {
		return theme.Default(), nil
	}
	return theme.Load(c.Theme)
}

// Background resolves the canvas background against th.
func (c *Config) Background(th *theme.Theme) (string, error) {
	return th.Resolve(c.Canvas.Background)
}

// AnimateOptions converts the [saw] table into loop options, resolving the
// stroke color against th and building the preset functions.
func (c *Config) AnimateOptions(th *theme.Theme) (animate.Options, error) {
	s := c.Saw
	color, err := th.Resolve(s.StrokeColor)
	if err != nil {
		return animate.Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "saw.stroke_color")
	}

	opts := animate.Options{
		N:            s.N,
		StrokeWidth:  s.StrokeWidth,
		StrokeColor:  color,
		StartY:       s.StartY,
		IntervalY:    s.IntervalY,
		Width:        s.Width,
		Height:       s.Height,
		Period:       s.Period,
		RestartY:     s.RestartY,
		TimeInterval: s.TimeInterval.Duration,
	}

	if w := s.HeightWave; w != nil {
		easing, err := animate.EasingByName(w.Easing)
		if err != nil {
			return animate.Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "saw.height_wave.easing")
		}
		opts.HeightFn = animate.Oscillate(w.Min, w.Max, w.Ticks, easing)
	}
	if seq := s.StartYCycle; seq != nil && len(seq.Values) > 0 {
		opts.StartYFn = animate.Cycle(seq.Values...)
	}
	return opts, nil
}
