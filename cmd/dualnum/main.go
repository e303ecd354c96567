package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/dualnum/internal/analysis"
	"github.com/san-kum/dualnum/internal/config"
	"github.com/san-kum/dualnum/internal/curve"
	"github.com/san-kum/dualnum/internal/dual"
	"github.com/san-kum/dualnum/internal/plot"
	"github.com/san-kum/dualnum/internal/storage"
	"github.com/san-kum/dualnum/internal/tui"
)

type options struct {
	dataDir    string
	configFile string
	preset     string
	out        string
	points     int
	samples    int
	normalize  bool
	color      string
	width      int
	height     int
	params     map[string]float64
	noSave     bool
	withPath   bool
	step       float64
	tol        float64
}

// main registers the dualnum commands and exits with status 1 if the
// selected command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}

	rootCmd := &cobra.Command{
		Use:          "dualnum",
		Short:        "forward-mode differentiation with dual numbers",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&o.dataDir, "data", ".dualnum", "data directory")

	spiralCmd := &cobra.Command{
		Use:   "spiral [curve]",
		Short: "sample a curve and render its tangent field",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpiral(cmd, o, args)
		},
	}
	addSamplingFlags(spiralCmd, o)
	spiralCmd.Flags().StringVarP(&o.out, "out", "o", config.DefaultOutput, "output file (.png, .svg, .pdf or .txt)")
	spiralCmd.Flags().StringVar(&o.color, "color", config.DefaultColor, "stroke color")
	spiralCmd.Flags().IntVar(&o.width, "width", config.DefaultWidth, "image width")
	spiralCmd.Flags().IntVar(&o.height, "height", config.DefaultHeight, "image height")
	spiralCmd.Flags().BoolVar(&o.noSave, "no-save", false, "do not record the run")

	evalCmd := &cobra.Command{
		Use:   "eval [func] [x]",
		Short: "evaluate a function and its derivative at x",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return evalFunc(cmd.OutOrStdout(), args[0], args[1])
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check [func] [x...]",
		Short: "compare dual-number derivatives with finite differences",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkFunc(cmd.OutOrStdout(), o, args)
		},
	}
	checkCmd.Flags().Float64Var(&o.step, "h", 1e-6, "finite difference step")
	checkCmd.Flags().Float64Var(&o.tol, "tol", 1e-6, "relative tolerance")

	funcsCmd := &cobra.Command{
		Use:   "funcs",
		Short: "list functions known to eval and check",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range analysis.FunctionNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	curvesCmd := &cobra.Command{
		Use:   "curves",
		Short: "list available curves",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range curve.NewRegistry().List() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRuns(cmd.OutOrStdout(), o)
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run coordinates and tangents in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return plotRun(cmd.OutOrStdout(), o, args[0])
		},
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a run's path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return analyzeRun(cmd.OutOrStdout(), o, args[0])
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [curve]",
		Short: "list available presets for a curve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Fprintf(out, "no presets for curve: %s\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Fprintf(out, "  %s\n", p)
			}
			return nil
		},
	}

	exploreCmd := &cobra.Command{
		Use:   "explore [curve]",
		Short: "step along a curve interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, o, args)
			if err != nil {
				return err
			}
			c, err := curve.NewRegistry().Get(cfg.Curve, cfg.Params)
			if err != nil {
				return err
			}
			m, err := tui.New(cmd.Context(), c, cfg.SampleOptions())
			if err != nil {
				return err
			}
			return tui.Run(m)
		},
	}
	addSamplingFlags(exploreCmd, o)

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := storage.New(o.dataDir)
			meta, err := st.Load(args[0])
			if err != nil {
				return err
			}
			s, err := st.LoadSamples(args[0])
			if err != nil {
				return err
			}
			return storage.ExportJSON(cmd.OutOrStdout(), meta, s, o.withPath)
		},
	}
	exportCmd.Flags().BoolVar(&o.withPath, "path", false, "include every path point")

	rootCmd.AddCommand(spiralCmd, evalCmd, checkCmd, funcsCmd, curvesCmd, listCmd, plotCmd, analyzeCmd, exportCmd, presetsCmd, exploreCmd)
	return rootCmd
}

func addSamplingFlags(cmd *cobra.Command, o *options) {
	cmd.Flags().IntVar(&o.points, "points", config.DefaultPoints, "path evaluations over t in [0, 1)")
	cmd.Flags().IntVar(&o.samples, "samples", config.DefaultSamples, "tangent markers")
	cmd.Flags().BoolVar(&o.normalize, "normalize", false, "scale tangents to unit length")
	cmd.Flags().StringToFloat64Var(&o.params, "param", nil, "curve parameters (name=value)")
	cmd.Flags().StringVar(&o.configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&o.preset, "preset", "", "use preset configuration")
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command, o *options, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.Curve = args[0]
	}

	if o.preset != "" {
		p := config.GetPreset(cfg.Curve, o.preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", o.preset, config.ListPresets(cfg.Curve))
		}
		cfg = p
	}

	if o.configFile != "" {
		loaded, err := config.Load(o.configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if len(args) > 0 {
			cfg.Curve = args[0]
		}
	}

	flags := cmd.Flags()
	if flags.Changed("points") {
		cfg.Sampling.Points = o.points
	}
	if flags.Changed("samples") {
		cfg.Sampling.Samples = o.samples
	}
	if flags.Changed("normalize") {
		cfg.Sampling.Normalize = o.normalize
	}
	if flags.Changed("param") {
		if cfg.Params == nil {
			cfg.Params = make(map[string]float64)
		}
		for k, v := range o.params {
			cfg.Params[k] = v
		}
	}
	if flags.Lookup("out") != nil {
		if flags.Changed("out") {
			cfg.Output.Path = o.out
		}
		if flags.Changed("color") {
			cfg.Output.Color = o.color
		}
		if flags.Changed("width") {
			cfg.Output.Width = o.width
		}
		if flags.Changed("height") {
			cfg.Output.Height = o.height
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSpiral(cmd *cobra.Command, o *options, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := resolveConfig(cmd, o, args)
	if err != nil {
		return err
	}

	c, err := curve.NewRegistry().Get(cfg.Curve, cfg.Params)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Fprintf(out, "sampling %s...\n", c.Name())
	start := time.Now()

	samples, err := curve.Sample(ctx, c, cfg.SampleOptions())
	if err != nil {
		return err
	}
	if !samples.Valid() {
		fmt.Fprintln(out, "warning: non-finite values in samples")
	}

	sink, err := plot.Open(cfg.Output.Path, cfg.PlotOptions())
	if err != nil {
		return err
	}
	plot.Draw(sink, samples)
	if err := sink.Save(cfg.Output.Path); err != nil {
		return fmt.Errorf("failed to save %s: %w", cfg.Output.Path, err)
	}

	fmt.Fprintf(out, "completed in %v\n", time.Since(start))
	fmt.Fprintf(out, "points: %d, markers: %d\n", len(samples.Path), len(samples.Markers))
	if length, err := curve.ArcLength(c, cfg.Sampling.Points); err == nil {
		fmt.Fprintf(out, "arc length: %.6f\n", length)
	}
	fmt.Fprintf(out, "image: %s\n", cfg.Output.Path)

	if o.noSave {
		return nil
	}

	st := storage.New(o.dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	output := cfg.Output.Path
	if abs, err := filepath.Abs(output); err == nil {
		output = abs
	}
	runID, err := st.Save(storage.RunMetadata{
		Curve:     c.Name(),
		Params:    cfg.Params,
		Points:    cfg.Sampling.Points,
		Samples:   cfg.Sampling.Samples,
		Normalize: cfg.Sampling.Normalize,
		Output:    output,
	}, samples)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "run id: %s\n", runID)
	return nil
}

func evalFunc(out io.Writer, name, arg string) error {
	fn, err := analysis.Lookup(name)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, analysis.FunctionNames())
	}
	x, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return fmt.Errorf("invalid x %q: %w", arg, err)
	}

	r := fn(dual.Var(x))
	fmt.Fprintf(out, "%s(%s) = %v\n", name, dual.Var(x), r)
	if !r.IsFinite() {
		fmt.Fprintln(out, "warning: result is not finite")
	}
	return nil
}

func checkFunc(out io.Writer, o *options, args []string) error {
	fn, err := analysis.Lookup(args[0])
	if err != nil {
		return err
	}

	xs := []float64{0.1, 0.3, 0.5, 0.7, 0.9}
	if len(args) > 1 {
		xs = xs[:0]
		for _, a := range args[1:] {
			x, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return fmt.Errorf("invalid x %q: %w", a, err)
			}
			xs = append(xs, x)
		}
	}

	failed := 0
	for _, x := range xs {
		c := analysis.CheckDerivative(fn, x, o.step, o.tol)
		if !c.OK {
			failed++
		}
		fmt.Fprintln(out, c)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d points disagree", failed, len(xs))
	}
	return nil
}

func listRuns(out io.Writer, o *options) error {
	runs, err := storage.New(o.dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCURVE\tPOINTS\tSAMPLES\tNORMALIZE\tVALID\tTIME")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%v\t%v\t%s\n",
			r.ID, r.Curve, r.Points, r.Samples, r.Normalize, r.Valid, r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(out io.Writer, o *options, runID string) error {
	st := storage.New(o.dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	s, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(s.Path) == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "curve: %s\n\n", meta.Curve)

	xs := make([]float64, len(s.Path))
	ys := make([]float64, len(s.Path))
	for i, p := range s.Path {
		xs[i], ys[i] = p.X, p.Y
	}
	dxs := make([]float64, len(s.Tangents))
	dys := make([]float64, len(s.Tangents))
	for i, v := range s.Tangents {
		dxs[i], dys[i] = v.DX, v.DY
	}

	series := []struct {
		data    []float64
		caption string
	}{
		{xs, "x(t)"},
		{ys, "y(t)"},
		{dxs, "dx/dt at markers"},
		{dys, "dy/dt at markers"},
	}
	for _, sr := range series {
		graph := asciigraph.Plot(sr.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(sr.caption),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}
	return nil
}

func analyzeRun(out io.Writer, o *options, runID string) error {
	st := storage.New(o.dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	s, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(s.Path) < 2 {
		return fmt.Errorf("no data")
	}

	fmt.Fprintf(out, "frequency analysis: %s\n", meta.ID)
	fmt.Fprintf(out, "curve: %s\n\n", meta.Curve)

	xs := make([]float64, len(s.Path))
	for i, p := range s.Path {
		xs[i] = p.X
	}
	w := analysis.Winding(xs)

	plotData := w.Power
	if len(plotData) > 64 {
		plotData = plotData[:64]
	}
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (x)"),
	)
	fmt.Fprintln(out, graph)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "dominant frequency: %d cycles per t\n", w.Bin)
	return nil
}
