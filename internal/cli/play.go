package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sawtooth/pkg/animate"
	"github.com/matzehuels/sawtooth/pkg/sink"
	"github.com/matzehuels/sawtooth/pkg/svg"
)

const recentTicks = 8

// playOpts holds the command-line flags for the play command.
type playOpts struct {
	output   string        // SVG file rewritten after every tick
	interval time.Duration // overrides saw.time_interval
	duration time.Duration // stop after this long; 0 runs until interrupted
	plain    bool          // log ticks instead of drawing the status view
}

// playCommand runs the loop in real time.
func (c *CLI) playCommand() *cobra.Command {
	var opts playOpts

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run the loop in real time",
		Long: `Run the sawtooth loop on its timer and show a live status view.

With --output the SVG frame is rewritten after every tick, so a browser or
image viewer pointed at the file follows the animation. Press q to stop.
When stdout is not a terminal, or with --plain, each tick is logged instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				opts.plain = true
			}
			return c.runPlay(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "SVG file to rewrite after every tick")
	cmd.Flags().DurationVar(&opts.interval, "interval", 0, "tick interval (overrides config)")
	cmd.Flags().DurationVar(&opts.duration, "duration", 0, "stop after this long (0 runs until interrupted)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "log ticks instead of showing the status view")

	return cmd
}

func (c *CLI) runPlay(ctx context.Context, opts *playOpts) error {
	logger := loggerFromContext(ctx)

	cfg, th, err := c.loadConfig()
	if err != nil {
		return err
	}
	doc, err := newDocument(cfg, th)
	if err != nil {
		return err
	}
	loopOpts, err := cfg.AnimateOptions(th)
	if err != nil {
		return err
	}
	if opts.interval > 0 {
		loopOpts.TimeInterval = opts.interval
	}

	// A --duration timeout ends runCtx only; ctx.Err() still reports SIGINT.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if opts.duration > 0 {
		runCtx, cancel = context.WithTimeout(runCtx, opts.duration)
		defer cancel()
	}

	frames := &frameWriter{path: opts.output, doc: doc}
	var program *tea.Program

	onTick := func(st animate.State) {
		if err := frames.write(runCtx); err != nil {
			logger.Warn("frame not written", "path", opts.output, "err", err)
		}
		if program != nil {
			program.Send(tickMsg{state: st, total: doc.Len(), visible: doc.VisibleLen()})
			return
		}
		logger.Info("tick", "tick", st.Tick, "slot", st.Slot, "start_y", st.LastStartY, "visible", doc.VisibleLen())
	}

	loop, err := animate.New(doc, loopOpts, animate.WithLogger(logger), animate.WithOnTick(onTick))
	if err != nil {
		return err
	}

	interval := loopOpts.TimeInterval
	if interval == 0 {
		interval = animate.DefaultTimeInterval
	}

	if opts.plain {
		h, err := loop.Start(runCtx)
		if err != nil {
			return err
		}
		logger.Infof("Playing loop %s every %s", h.ID(), interval)
		if err := h.Wait(); err != nil {
			return err
		}
		return ctx.Err()
	}

	program = tea.NewProgram(newPlayModel(loop.ID(), interval, opts.output))
	h, err := loop.Start(runCtx)
	if err != nil {
		return err
	}
	go func() {
		select {
		case <-h.Done():
			program.Send(stopMsg{err: h.Err()})
		case <-runCtx.Done():
			program.Send(stopMsg{})
		}
	}()

	if _, err := program.Run(); err != nil {
		h.Stop()
		return err
	}
	h.Stop()
	if err := h.Wait(); err != nil {
		return err
	}
	printSuccess("Stopped after %d ticks (%d visible)", loop.State().Tick, doc.VisibleLen())
	if opts.output != "" {
		printFile(opts.output)
	}
	return ctx.Err()
}

// frameWriter rewrites the SVG frame file after every tick.
type frameWriter struct {
	path string
	doc  *svg.Document
}

func (f *frameWriter) write(ctx context.Context) error {
	if f.path == "" {
		return nil
	}
	data, err := sink.Render(ctx, f.doc, sink.FormatSVG, sink.Options{})
	if err != nil {
		return err
	}
	return writeFile(f.path, data)
}

// =============================================================================
// playModel - Live status view
// =============================================================================

type tickMsg struct {
	state   animate.State
	total   int
	visible int
}

type stopMsg struct{ err error }

type playModel struct {
	id       string
	interval time.Duration
	output   string
	started  time.Time

	state   animate.State
	total   int
	visible int
	recent  []animate.State
	err     error
}

func newPlayModel(id string, interval time.Duration, output string) playModel {
	return playModel{id: id, interval: interval, output: output, started: time.Now()}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tickMsg:
		m.state = msg.state
		m.total = msg.total
		m.visible = msg.visible
		m.recent = append(m.recent, msg.state)
		if len(m.recent) > recentTicks {
			m.recent = m.recent[len(m.recent)-recentTicks:]
		}
	case stopMsg:
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m playModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("sawtooth") + " " + StyleDim.Render(shortID(m.id)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("every %s · q quit", m.interval)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(10)
	line := func(k, v string) {
		b.WriteString(keyStyle.Render(k) + " " + StyleValue.Render(v) + "\n")
	}
	line("ticks", StyleNumber.Render(fmt.Sprint(m.state.Tick)))
	line("visible", fmt.Sprintf("%d of %d", m.visible, m.total))
	line("slot", fmt.Sprint(m.state.Slot))
	line("elapsed", time.Since(m.started).Round(time.Second).String())
	if m.output != "" {
		line("frame", m.output)
	}
	b.WriteString("\n")

	if len(m.recent) > 0 {
		rows := make([][]string, 0, len(m.recent))
		for i := len(m.recent) - 1; i >= 0; i-- {
			st := m.recent[i]
			rows = append(rows, []string{fmt.Sprint(st.Tick), fmt.Sprint(st.Slot), fmt.Sprintf("%g", st.LastStartY)})
		}
		headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
			Headers("Tick", "Next slot", "Start Y").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == -1 {
					return headerStyle
				}
				if row == 0 {
					return lipgloss.NewStyle().Foreground(colorAccent).Padding(0, 1)
				}
				return lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
			})
		b.WriteString(t.Render())
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(styleIconError.Render(iconError) + " " + m.err.Error() + "\n")
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
