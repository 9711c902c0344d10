package main

import (
	"fmt"
	"io"
	"slices"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/phasebounce/internal/analysis"
	"github.com/san-kum/phasebounce/internal/config"
	"github.com/san-kum/phasebounce/internal/display"
	"github.com/san-kum/phasebounce/internal/metrics"
	"github.com/san-kum/phasebounce/internal/physics"
	"github.com/san-kum/phasebounce/internal/scene"
	"github.com/san-kum/phasebounce/internal/sim"
	"github.com/san-kum/phasebounce/internal/viz"
)

// loadConfig reads --config over the defaults and applies flags the user
// set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("integrator") {
		cfg.Physics.Integrator = integrator
	}
	if flags.Changed("dt") {
		cfg.Physics.Dt = dt
	}
	if flags.Changed("fps") {
		cfg.Screen.FPS = fps
	}
	if flags.Changed("scale") {
		cfg.Screen.Scale = scale
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// selectScene resolves the optional scene argument. Unknown selectors are
// not an error; they fall back to the default scene with a warning.
func selectScene(cfg *config.Config, args []string) (string, config.Scene) {
	selector := ""
	if len(args) > 0 {
		selector = args[0]
	}
	key, sc, ok := cfg.Resolve(selector)
	if !ok && selector != "" {
		logger.Warn("unknown scene, using default", "selector", selector, "scene", key)
	}
	return key, sc
}

func buildScene(cmd *cobra.Command, args []string) (*config.Config, string, *scene.Scene, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, "", nil, err
	}
	key, sc := selectScene(cfg, args)
	s, err := scene.Build(cfg, sc)
	if err != nil {
		return nil, "", nil, fmt.Errorf("scene %s: %w", key, err)
	}
	return cfg, key, s, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, key, s, err := buildScene(cmd, args)
	if err != nil {
		return err
	}
	logger.Info("running scene", "scene", key, "title", s.Title(), "particles", s.Len(), "backend", display.Backend)

	return display.Run(cmd.Context(), s, display.Options{
		Title: s.Title(),
		Scale: cfg.Screen.Scale,
		Dt:    cfg.Physics.Dt,
		FPS:   cfg.Screen.FPS,
	})
}

func runTerm(cmd *cobra.Command, args []string) error {
	cfg, key, s, err := buildScene(cmd, args)
	if err != nil {
		return err
	}
	logger.Debug("running scene in terminal", "scene", key, "particles", s.Len())
	return viz.Run(s, cfg.Physics.Dt, cfg.Screen.FPS, resolveTheme(theme))
}

// resolveTheme checks a --theme value. Unknown names are not an error; they
// fall back to the classic theme with a warning.
func resolveTheme(name string) string {
	if name == "" {
		return ""
	}
	if !slices.Contains(viz.ThemeNames(), name) {
		fallback := viz.GetTheme(name).Name
		logger.Warn("unknown theme, using default", "theme", name, "fallback", fallback)
		return fallback
	}
	return name
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, key, s, err := buildScene(cmd, args)
	if err != nil {
		return err
	}
	simCfg := sim.Config{Ticks: ticks, Dt: cfg.Physics.Dt, SampleEvery: sampleRate}
	out := cmd.OutOrStdout()

	if len(compare) > 0 {
		return compareIntegrators(cmd, cfg, key, simCfg)
	}

	initial := s.Particles()
	r := newRunner(key, s)
	logger.Info("running scene", "scene", key, "title", s.Title(), "particles", s.Len(), "ticks", ticks)
	result, err := r.Run(cmd.Context(), simCfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s: %d ticks, %.1fs simulated, integrator %s\n\n",
		s.Title(), result.TicksTaken, result.Elapsed, cfg.Physics.Integrator)
	printMetrics(out, result)

	for _, name := range []string{"kinetic_energy", "max_speed"} {
		plot(out, result.Series[name], name)
	}

	if lyapunov {
		printLyapunov(out, s, initial, simCfg)
	}
	return nil
}

// lyapunovLimit caps the particles analyzed in per-pixel scenes.
const lyapunovLimit = 16

func printLyapunov(out io.Writer, s *scene.Scene, particles []physics.Particle, cfg sim.Config) {
	if len(particles) > lyapunovLimit {
		particles = particles[:lyapunovLimit]
	}
	tr := analysis.Trajectory{
		Stepper: s.Stepper(),
		Arena:   s.Arena(),
		Gravity: s.Gravity(),
		Dt:      cfg.Dt,
	}
	spectrum := analysis.LyapunovSpectrum(tr, particles, cfg.Ticks, 1e-8)

	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARTICLE\tLYAPUNOV")
	for i, lambda := range spectrum {
		fmt.Fprintf(w, "%d\t%.4f\n", i, lambda)
	}
	w.Flush()
}

func compareIntegrators(cmd *cobra.Command, cfg *config.Config, key string, simCfg sim.Config) error {
	runners := make([]*sim.Runner, 0, len(compare))
	for _, name := range compare {
		c := *cfg
		c.Physics.Integrator = name
		s, err := scene.Build(&c, cfg.Scenes[key])
		if err != nil {
			return fmt.Errorf("integrator %s: %w", name, err)
		}
		runners = append(runners, newRunner(name, s))
	}

	results, err := sim.RunAll(cmd.Context(), runners, simCfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "comparing integrators for scene %s (dt=%.4f, ticks=%d)\n\n", key, simCfg.Dt, simCfg.Ticks)
	names := metricNames(results[0])
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "INTEGRATOR")
	for _, n := range names {
		fmt.Fprintf(w, "\t%s", n)
	}
	fmt.Fprintln(w)
	for _, res := range results {
		fmt.Fprint(w, res.Name)
		for _, n := range names {
			fmt.Fprintf(w, "\t%.6g", res.Metrics[n])
		}
		fmt.Fprintln(w)
	}
	w.Flush()

	series := make([][]float64, 0, len(results))
	for _, res := range results {
		if data := res.Series["kinetic_energy"]; len(data) > 0 {
			series = append(series, data)
		}
	}
	if len(series) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.PlotMany(series,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("kinetic_energy per integrator"),
		))
	}
	return nil
}

func newRunner(name string, s *scene.Scene) *sim.Runner {
	r := sim.New(name, s)
	for _, m := range metrics.Default() {
		r.AddMetric(m)
	}
	return r
}

func metricNames(res *sim.Result) []string {
	names := make([]string, 0, len(res.Metrics))
	for n := range res.Metrics {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func printMetrics(out io.Writer, res *sim.Result) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, n := range metricNames(res) {
		fmt.Fprintf(w, "%s\t%.6g\n", n, res.Metrics[n])
	}
	w.Flush()
}

func plot(out io.Writer, data []float64, caption string) {
	if len(data) == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	))
}

func listScenes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENE\tTITLE\tPOPULATION\tPOLICY")
	for _, key := range cfg.ListScenes() {
		sc := cfg.Scenes[key]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", key, sc.Title, sc.Population, sc.Policy)
	}
	return w.Flush()
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
