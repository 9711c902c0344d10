package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/phasebounce/internal/viz"
)

var (
	configFile string
	integrator string
	dt         float64
	fps        int
	scale      int
	ticks      int
	sampleRate int
	compare    []string
	lyapunov   bool
	theme      string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "phasebounce",
})

// main is the entry point for the phasebounce CLI; it opens the scene window
// when no subcommand is given and exits with status 1 on error.
func main() {
	rootCmd := newRootCmd()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phasebounce [scene]",
		Short: "particles bouncing in a circular arena",
		Long: `Simulates point masses under gravity inside a circular arena and draws
them, or a color map of their position or velocity, into a pixel buffer.

Scenes 1-5: single ball, chaotic 10 balls, ball per pixel, position phase
space, velocity phase space. Unknown scenes fall back to 1.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runWindow,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	pf.StringVar(&integrator, "integrator", "", "integrator (semi_implicit, euler, verlet)")
	pf.Float64Var(&dt, "dt", 0, "timestep per frame")
	rootCmd.Flags().IntVar(&scale, "scale", 0, "window pixel scale")
	rootCmd.Flags().IntVar(&fps, "fps", 0, "frame rate")

	termCmd := &cobra.Command{
		Use:   "term [scene]",
		Short: "play a scene in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTerm,
	}
	termCmd.Flags().IntVar(&fps, "fps", 0, "frame rate")
	termCmd.Flags().StringVar(&theme, "theme", "", fmt.Sprintf("color theme (%s)", strings.Join(viz.ThemeNames(), ", ")))

	statsCmd := &cobra.Command{
		Use:   "stats [scene]",
		Short: "run a scene headless and print metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStats,
	}
	statsCmd.Flags().IntVar(&ticks, "ticks", 1000, "number of ticks")
	statsCmd.Flags().IntVar(&sampleRate, "sample", 1, "sample metrics every n ticks")
	statsCmd.Flags().StringSliceVar(&compare, "compare", nil, "integrators to compare on the same scene")
	statsCmd.Flags().BoolVar(&lyapunov, "lyapunov", false, "estimate the Lyapunov exponent of every particle")

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list available scenes",
		Args:  cobra.NoArgs,
		RunE:  listScenes,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE:  printConfig,
	}

	rootCmd.AddCommand(termCmd, statsCmd, scenesCmd, configCmd)
	return rootCmd
}
