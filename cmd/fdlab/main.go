package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/san-kum/fdlab/internal/config"
	"github.com/san-kum/fdlab/internal/export"
	"github.com/san-kum/fdlab/internal/fdiff"
	"github.com/san-kum/fdlab/internal/logging"
	"github.com/san-kum/fdlab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logJSON  bool

	targetName string
	x0         float64
	epsilon    float64
	minExp     int
	maxExp     int
	numPoints  int
	configFile string
	preset     string

	outFile   string
	svgWidth  int
	svgHeight int

	log zerolog.Logger
)

// main registers the fdlab commands and runs the explorer when no
// subcommand is given. It exits with status 1 on any command error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "fdlab",
		Short:         "finite-difference error lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logging.New(os.Stderr, logLevel, logJSON)
		},
		RunE: runExplorer,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as JSON")
	addAnalysisFlags(rootCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive error explorer",
		RunE:  runExplorer,
	}
	addAnalysisFlags(tuiCmd)

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "plot error against step size for both methods",
		RunE:  runAnalyze,
	}
	addAnalysisFlags(analyzeCmd)

	optimalCmd := &cobra.Command{
		Use:   "optimal",
		Short: "optimal step size and minimum error per method",
		RunE:  runOptimal,
	}
	addAnalysisFlags(optimalCmd)

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "print every error record",
		RunE:  runTable,
	}
	addAnalysisFlags(tableCmd)

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export error records to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, export.WriteCSV)
		},
	}
	addAnalysisFlags(exportCSVCmd)
	addOutFlag(exportCSVCmd)

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export the full report to JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, export.WriteJSON)
		},
	}
	addAnalysisFlags(exportJSONCmd)
	addOutFlag(exportJSONCmd)

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "export log-log error plots to SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, func(w io.Writer, r *fdiff.Report) error {
				return export.WriteSVG(w, r, svgWidth, svgHeight)
			})
		},
	}
	addAnalysisFlags(exportSVGCmd)
	addOutFlag(exportSVGCmd)
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", export.DefaultSVGWidth, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", export.DefaultSVGHeight, "image height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTARGET\tX0\tEPSILON\tRANGE\tPOINTS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%g\t%.3e\t1e%d..1e%d\t%d\n",
					name, p.Target, p.X0, p.Epsilon, p.MinExp, p.MaxExp, p.NumPoints)
			}
			return w.Flush()
		},
	}

	targetsCmd := &cobra.Command{
		Use:   "targets",
		Short: "list target functions",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range fdiff.TargetNames() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(tuiCmd, analyzeCmd, optimalCmd, tableCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, targetsCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addAnalysisFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&targetName, "target", config.DefaultTarget, "target function")
	cmd.Flags().Float64Var(&x0, "x0", fdiff.DefaultX0, "evaluation point")
	cmd.Flags().Float64Var(&epsilon, "eps", fdiff.DefaultEpsilon, "machine epsilon")
	cmd.Flags().IntVar(&minExp, "min-exp", fdiff.DefaultMinExp, "smallest step exponent (h = 10^min-exp)")
	cmd.Flags().IntVar(&maxExp, "max-exp", fdiff.DefaultMaxExp, "largest step exponent")
	cmd.Flags().IntVar(&numPoints, "points", fdiff.DefaultNumPoints, "number of step sizes")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func addOutFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
}

// loadConfig layers the preset, then the config file, then any flags set
// on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if preset != "" {
			overlay(cfg, fileCfg, configFile)
		} else {
			cfg = fileCfg
		}
	}

	flags := cmd.Flags()
	if flags.Changed("target") {
		cfg.Target = targetName
	}
	if flags.Changed("x0") {
		cfg.X0 = x0
	}
	if flags.Changed("eps") {
		cfg.Epsilon = epsilon
	}
	if flags.Changed("min-exp") {
		cfg.MinExp = minExp
	}
	if flags.Changed("max-exp") {
		cfg.MaxExp = maxExp
	}
	if flags.Changed("points") {
		cfg.NumPoints = numPoints
	}
	return cfg, nil
}

// overlay copies the keys present in the config file at path over the
// preset. Loaded values equal to the defaults are treated as absent.
func overlay(dst, src *config.Config, path string) {
	def := config.DefaultConfig()
	if src.Target != def.Target {
		dst.Target = src.Target
	}
	if src.X0 != def.X0 {
		dst.X0 = src.X0
	}
	if src.Epsilon != def.Epsilon {
		dst.Epsilon = src.Epsilon
	}
	if src.MinExp != def.MinExp {
		dst.MinExp = src.MinExp
	}
	if src.MaxExp != def.MaxExp {
		dst.MaxExp = src.MaxExp
	}
	if src.NumPoints != def.NumPoints {
		dst.NumPoints = src.NumPoints
	}
	if src.Plot.Width != def.Plot.Width {
		dst.Plot.Width = src.Plot.Width
	}
	if src.Plot.Height != def.Plot.Height {
		dst.Plot.Height = src.Plot.Height
	}
	log.Debug().Str("file", path).Msg("config file applied over preset")
}

func analyze(cmd *cobra.Command) (*config.Config, *fdiff.Report, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	target, p, err := cfg.Resolve()
	if err != nil {
		return nil, nil, err
	}

	start := time.Now()
	report, err := fdiff.Analyze(target, p)
	if err != nil {
		return cfg, nil, fmt.Errorf("analyze %s at x0=%g: %w", target.Name, p.X0, err)
	}
	log.Info().
		Str("target", target.Name).
		Float64("x0", p.X0).
		Float64("epsilon", p.Epsilon).
		Int("points", p.Range.NumPoints).
		Dur("elapsed", time.Since(start)).
		Msg("analysis complete")
	return cfg, report, nil
}

func runExplorer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return viz.RunExplorer(*cfg, logging.Component(log, "explorer"))
}

// runAnalyze still draws the error curves when the optimum is undefined.
func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, report, err := analyze(cmd)
	if errors.Is(err, fdiff.ErrDegenerateInput) {
		return runCurves(cmd, cfg, err)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), viz.Render(report, cfg.Plot.Width, cfg.Plot.Height))
	return nil
}

func runCurves(cmd *cobra.Command, cfg *config.Config, reason error) error {
	target, p, err := cfg.Resolve()
	if err != nil {
		return err
	}
	forward, central, err := fdiff.Curves(target, p)
	if err != nil {
		return err
	}
	log.Warn().Err(reason).Msg("optimum undefined, plotting curves only")
	fmt.Fprintln(cmd.OutOrStdout(), viz.RenderCurves(target.Name, p, forward, central, reason, cfg.Plot.Width, cfg.Plot.Height))
	return nil
}

func runOptimal(cmd *cobra.Command, args []string) error {
	_, report, err := analyze(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Summary(report))
	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.OptimumTable(report))
	return nil
}

func runTable(cmd *cobra.Command, args []string) error {
	_, report, err := analyze(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tH\tAPPROX\tACTUAL\tTRUNCATION\tROUNDING\tTOTAL")
	for _, m := range []fdiff.Method{fdiff.Forward, fdiff.Central} {
		for _, r := range viz.SortedByH(report.Records(m)) {
			fmt.Fprintf(w, "%s\t%.3e\t%.15g\t%.3e\t%.3e\t%.3e\t%.3e\n",
				m, r.H, r.Approx, r.Actual, r.Truncation, r.Rounding, r.Total())
		}
	}
	return w.Flush()
}

func runExport(cmd *cobra.Command, write func(io.Writer, *fdiff.Report) error) error {
	_, report, err := analyze(cmd)
	if err != nil {
		return err
	}

	if outFile == "" {
		return write(cmd.OutOrStdout(), report)
	}
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	if err := write(f, report); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Info().Str("file", outFile).Msg("exported")
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", outFile)
	return nil
}
