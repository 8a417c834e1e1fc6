package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// themeCommand prints the palette with color swatches.
func (c *CLI) themeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "Show the color palette and font stacks",
		Long: `Show every color of the active theme with a swatch, its value and the
resolved hex code. Colors can be used in the config as "scale.shade", for
example stroke_color = "bg.600".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, th, err := c.loadConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, StyleTitle.Render("Colors"))
			for _, sw := range th.Scales() {
				swatch := lipgloss.NewStyle().Background(lipgloss.Color(sw.Hex)).Render("    ")
				fmt.Fprintf(out, "  %s %s %s %s\n",
					swatch,
					StyleHighlight.Width(8).Render(sw.Ref),
					StyleValue.Render(sw.Hex),
					StyleDim.Render(sw.Value))
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, StyleTitle.Render("Fonts"))
			printFonts(out, th.Fonts, th.Font)
			return nil
		},
	}
}

func printFonts(out io.Writer, fonts map[string][]string, family func(string) string) {
	names := make([]string, 0, len(fonts))
	for name := range fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(8)
	for _, name := range names {
		fmt.Fprintf(out, "  %s %s\n", keyStyle.Render(name), StyleValue.Render(family(name)))
	}
}
