package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sawtooth/pkg/animate"
	"github.com/matzehuels/sawtooth/pkg/saw"
)

// pathOpts holds the command-line flags for the path command.
type pathOpts struct {
	startY float64
	width  float64
	height float64
	cycles int
	asJSON bool
}

type jsonCommand struct {
	Op string  `json:"op"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// pathCommand prints the drawing commands for a single sawtooth line.
func (c *CLI) pathCommand() *cobra.Command {
	opts := pathOpts{
		startY: animate.DefaultStartY,
		width:  animate.DefaultWidth,
		height: animate.DefaultHeight,
		cycles: animate.DefaultPeriod,
	}

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print a sawtooth path string",
		Long: `Print the drawing commands for one sawtooth line.

The output is an SVG path string such as "M0 100 L1500 85 L1500 115 L3000 100".
With --json the commands are printed as a list of {op, x, y} objects.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmds := saw.Commands(opts.startY, opts.width, opts.height, opts.cycles)
			out := cmd.OutOrStdout()

			if !opts.asJSON {
				_, err := fmt.Fprintln(out, saw.Format(cmds))
				return err
			}

			list := make([]jsonCommand, len(cmds))
			for i, sc := range cmds {
				list[i] = jsonCommand{Op: string(sc.Op), X: sc.X, Y: sc.Y}
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(list)
		},
	}

	cmd.Flags().Float64Var(&opts.startY, "start-y", opts.startY, "vertical baseline")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "horizontal span")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "peak-to-trough height")
	cmd.Flags().IntVar(&opts.cycles, "cycles", opts.cycles, "number of zig-zag cycles")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print structured commands as JSON")

	return cmd
}
