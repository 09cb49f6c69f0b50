// sysfetch captures a single snapshot of host facts and shows it as a
// responsive terminal dashboard.
//
// Usage:
//
//	sysfetch [flags]
//
// Flags:
//
//	--config string   Path to configuration file (default: ~/.config/sysfetch/config.yaml)
//	--once            Print one frame to stdout and exit
//	--width int       Width override for --once (0 = auto-detect)
//	--height int      Height override for --once (0 = auto-detect)
//	--verbose         Enable debug logging
//	--version         Print version and exit
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// options holds the parsed command-line flags.
type options struct {
	configPath string
	verbose    bool
	once       bool
	width      int
	height     int
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "sysfetch",
		Short: "Show host facts as a responsive terminal dashboard",
		Long: `Capture OS, kernel, host, user, uptime, CPU, memory, GPU and local IP once
and display them in a dashboard that adapts to the terminal size.

Press q or Esc to quit.

Examples:
  sysfetch
  sysfetch --once
  sysfetch --once --width 120 --height 40`,
		Version:       versionString(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "Path to configuration file (default: ~/.config/sysfetch/config.yaml)")
	flags.BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")
	flags.BoolVar(&opts.once, "once", false, "Print one frame to stdout and exit")
	flags.IntVar(&opts.width, "width", 0, "Width override for --once (0 = auto-detect)")
	flags.IntVar(&opts.height, "height", 0, "Height override for --once (0 = auto-detect)")

	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "sysfetch: %v\n", err)
		stop()
		os.Exit(1)
	}
}
