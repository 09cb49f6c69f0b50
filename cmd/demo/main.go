// demo renders the dashboard for a fixed sample snapshot without touching
// the host, for screenshots and layout checks.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/sysfetch/collectors"
	"gitlab.com/tinyland/lab/sysfetch/display/color"
	"gitlab.com/tinyland/lab/sysfetch/display/render"
)

// modeSizes is one terminal size per layout mode.
var modeSizes = [][2]int{
	{59, 20},
	{80, 30},
	{160, 45},
}

func newDemoCmd(out io.Writer) *cobra.Command {
	var (
		width    int
		height   int
		allModes bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render the dashboard for sample data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			color.Apply(out)
			snap := collectors.SampleSnapshot()

			sizes := [][2]int{{width, height}}
			if allModes {
				sizes = modeSizes
			}
			for _, size := range sizes {
				if err := renderDemo(out, &snap, size[0], size[1]); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 160, "Terminal width")
	cmd.Flags().IntVar(&height, "height", 45, "Terminal height")
	cmd.Flags().BoolVar(&allModes, "all-modes", false, "Render one frame per layout mode")
	return cmd
}

func renderDemo(out io.Writer, snap *collectors.SystemSnapshot, width, height int) error {
	frame := render.Render(width, height, snap)
	_, err := fmt.Fprintf(out, "=== sysfetch demo: %dx%d (%s) ===\n%s\n\n",
		width, height, frame.Mode, render.Draw(frame))
	return err
}

func main() {
	if err := newDemoCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}
}
