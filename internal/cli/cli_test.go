package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/sawtooth/pkg/errors"
)

// execute runs the root command with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	want := []string{"path", "render", "play", "theme", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing %q", name)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("root command missing --config flag")
	}
}

func TestPathCommand(t *testing.T) {
	out, err := execute(t, "path", "--cycles", "1")
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	if want := "M0 100 L1500 85 L1500 115 L3000 100\n"; out != want {
		t.Errorf("path output = %q, want %q", out, want)
	}
}

func TestPathCommandJSON(t *testing.T) {
	out, err := execute(t, "path", "--cycles", "2", "--width", "100", "--json")
	if err != nil {
		t.Fatalf("path --json: %v", err)
	}

	var cmds []jsonCommand
	if err := json.Unmarshal([]byte(out), &cmds); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if len(cmds) != 7 {
		t.Fatalf("got %d commands, want 7", len(cmds))
	}
	if cmds[0].Op != "M" || cmds[6].X != 100 {
		t.Errorf("unexpected commands: %+v", cmds)
	}
}

func TestRenderCommandSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.svg")
	if _, err := execute(t, "render", "--ticks", "3", "-o", path); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), `class="sawtooth"`); got != 3 {
		t.Errorf("frame has %d shapes, want 3", got)
	}
}

func TestRenderCommandMultipleFormats(t *testing.T) {
	base := filepath.Join(t.TempDir(), "out", "frame")
	if _, err := execute(t, "render", "--ticks", "2", "-f", "svg,json,png", "-o", base); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, ext := range []string{".svg", ".json", ".png"} {
		if _, err := os.Stat(base + ext); err != nil {
			t.Errorf("missing %s: %v", base+ext, err)
		}
	}
}

func TestRenderCommandConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sawtooth.toml")
	cfg := `
[canvas]
width = 400
height = 300
background = "bg.300"

[saw]
n = 2
stroke_color = "bg.600"
`
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--config", cfgPath, "render", "--ticks", "5", "-f", "json", "-o", "-")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var doc struct {
		Width   float64 `json:"width"`
		Visible int     `json:"visible"`
		Shapes  []struct {
			Attributes map[string]string `json:"attributes"`
		} `json:"shapes"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Width != 400 || doc.Visible != 2 || len(doc.Shapes) != 5 {
		t.Errorf("width/visible/shapes = %v/%d/%d, want 400/2/5", doc.Width, doc.Visible, len(doc.Shapes))
	}
	if got := doc.Shapes[0].Attributes["stroke"]; got != "#c9c0a1" {
		t.Errorf("stroke = %q, want theme color", got)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	if _, err := execute(t, "render", "-f", "gif"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("bad format error = %v", err)
	}
	if _, err := execute(t, "render", "--ticks=-1"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("negative ticks error = %v", err)
	}
	missing := filepath.Join(t.TempDir(), "nope.toml")
	if _, err := execute(t, "--config", missing, "render"); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing config error = %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "png", []string{"png"}},
		{"multiple formats", "svg,png,json", []string{"svg", "png", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"", "sawtooth"},
		{"frame.svg", "frame"},
		{"out/frame.png", "out/frame"},
		{"frame.v2", "frame.v2"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output); got != tt.want {
			t.Errorf("basePath(%q) = %q, want %q", tt.output, got, tt.want)
		}
	}
}

func TestThemeCommand(t *testing.T) {
	out, err := execute(t, "theme")
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	for _, want := range []string{"bg.100", "bg.600", "#c9c0a1", "Montserrat"} {
		if !strings.Contains(out, want) {
			t.Errorf("theme output missing %q", want)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out, "sawtooth") {
		t.Error("bash completion should mention the program name")
	}
}

func TestPlayPlainWritesFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "live.svg")
	_, err := execute(t, "play", "--plain", "--interval", "10ms", "--duration", "300ms", "-o", path)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("frame not written: %v", err)
	}
	if !strings.Contains(string(data), `class="sawtooth"`) {
		t.Error("frame has no shapes")
	}
}

func TestPlayModel(t *testing.T) {
	m := newPlayModel("0123456789abcdef", time.Second, "live.svg")

	for i := 1; i <= recentTicks+2; i++ {
		next, _ := m.Update(tickMsg{total: i, visible: min(i, 3)})
		m = next.(playModel)
	}
	if len(m.recent) != recentTicks {
		t.Errorf("recent = %d, want %d", len(m.recent), recentTicks)
	}

	view := m.View()
	for _, want := range []string{"01234567", "3 of 10", "live.svg"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	_, cmd := m.Update(stopMsg{})
	if cmd == nil {
		t.Error("stopMsg should quit the program")
	}
}
