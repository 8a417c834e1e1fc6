package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/sawtooth/pkg/errors"
	"github.com/matzehuels/sawtooth/pkg/theme"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Canvas.Width != 1200 || cfg.Canvas.Height != 800 {
		t.Errorf("canvas = %vx%v, want 1200x800", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Saw.N != 20 || cfg.Saw.TimeInterval.Duration != 3*time.Second {
		t.Errorf("saw defaults not applied: %+v", cfg.Saw)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
theme = "palette.toml"

[canvas]
width = 640
background = "bg.200"

[saw]
n = 5
stroke_color = "bg.600"
start_y = 0
time_interval = "250ms"

[saw.height_wave]
min = 10
max = 50
ticks = 4
easing = "in-out-sine"

[saw.start_y_cycle]
values = [100, 150]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Canvas.Width != 640 {
		t.Errorf("canvas.width = %v, want 640", cfg.Canvas.Width)
	}
	if cfg.Canvas.Height != 800 {
		t.Errorf("canvas.height = %v, want default 800", cfg.Canvas.Height)
	}
	if cfg.Saw.N != 5 || cfg.Saw.StartY != 0 {
		t.Errorf("saw = %+v", cfg.Saw)
	}
	if cfg.Saw.TimeInterval.Duration != 250*time.Millisecond {
		t.Errorf("time_interval = %v", cfg.Saw.TimeInterval)
	}
	if want := filepath.Join(filepath.Dir(path), "palette.toml"); cfg.Theme != want {
		t.Errorf("theme = %q, want %q", cfg.Theme, want)
	}
	if cfg.Saw.HeightWave == nil || cfg.Saw.HeightWave.Ticks != 4 {
		t.Fatalf("height_wave = %+v", cfg.Saw.HeightWave)
	}

	opts, err := cfg.AnimateOptions(theme.Default())
	if err != nil {
		t.Fatalf("AnimateOptions: %v", err)
	}
	if opts.StrokeColor != "#c9c0a1" {
		t.Errorf("stroke color = %q, want resolved hex", opts.StrokeColor)
	}
	if opts.TimeInterval != 250*time.Millisecond {
		t.Errorf("TimeInterval = %v", opts.TimeInterval)
	}
	if opts.HeightFn == nil || opts.StartYFn == nil {
		t.Fatal("preset functions not built")
	}
	if got := opts.HeightFn(); got != 10 {
		t.Errorf("first height = %v, want 10", got)
	}
	if got := opts.StartYFn(1); got != 150 {
		t.Errorf("StartYFn(1) = %v, want 150", got)
	}

	bg, err := cfg.Background(theme.Default())
	if err != nil || bg != "#f5f4ef" {
		t.Errorf("Background() = %q, %v", bg, err)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"bad toml", "[saw\n", errors.ErrCodeInvalidConfig},
		{"bad duration", "[saw]\ntime_interval = \"soon\"\n", errors.ErrCodeInvalidConfig},
		{"negative duration", "[saw]\ntime_interval = \"-1s\"\n", errors.ErrCodeInvalidConfig},
		{"bad easing", "[saw.height_wave]\neasing = \"wobble\"\n", errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want %s", err, tt.code)
			}
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file: %v", err)
	}
}

func TestAnimateOptionsBadColor(t *testing.T) {
	cfg := Default()
	cfg.Saw.StrokeColor = "bg.999"
	if _, err := cfg.AnimateOptions(theme.Default()); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("AnimateOptions() error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadTheme(t *testing.T) {
	th, err := Default().LoadTheme()
	if err != nil || th == nil {
		t.Fatalf("LoadTheme() = %v, %v", th, err)
	}

	cfg := Default()
	cfg.Theme = filepath.Join(t.TempDir(), "missing.toml")
	if _, err := cfg.LoadTheme(); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LoadTheme() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestDurationText(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("1m30s")); err != nil {
		t.Fatal(err)
	}
	if d.Duration != 90*time.Second {
		t.Errorf("got %v", d.Duration)
	}
	b, _ := d.MarshalText()
	if string(b) != "1m30s" {
		t.Errorf("MarshalText() = %q", b)
	}
}
