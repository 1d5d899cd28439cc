package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/physutil/internal/calc"
	"github.com/san-kum/physutil/internal/config"
	"github.com/san-kum/physutil/internal/export"
	"github.com/san-kum/physutil/internal/log"
	"github.com/san-kum/physutil/internal/storage"
	"github.com/san-kum/physutil/internal/vecmath"
	"github.com/san-kum/physutil/internal/viz"
)

var (
	dataDir    string
	verbose    bool
	logLevel   string
	strict     bool
	format     string
	save       bool
	theme      string
	figure     bool
	configFile string
	preset     string
	saveConfig string
	// plot output
	cycles     float64
	plotSVG    string
	plotWidth  int
	plotHeight int
	// arrow output
	arrowSVG    string
	arrowWidth  int
	arrowHeight int

	registry = calc.NewRegistry()
	logger   = log.Nop()
)

// main loads .env, builds the command tree and runs it. It exits with
// status 1 when the command fails.
func main() {
	logger = log.New(log.LevelWarn, os.Stderr)
	if err := config.LoadEnv(".env"); err != nil {
		logger.Warn("could not load .env", log.Err(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.Error("command failed", log.Err(err))
	}
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "physutil",
		Short: "vector, coordinate and spring calculator",
		Long: `physutil evaluates closed-form physics formulas.

Negative positional values go after "--", e.g.:
  physutil spring -- 4 -2`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.LevelDebug
			if !verbose {
				var err error
				if level, err = log.ParseLevel(logLevel); err != nil {
					return err
				}
			}
			logger = log.New(level, cmd.ErrOrStderr())

			if err := viz.SetTheme(theme); err != nil {
				return err
			}
			cfg := config.Config{Format: format}
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunInteractive()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DataDir(), "history directory (env "+config.EnvDataDir+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging, same as --log-level debug")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.LogLevel(), "debug, info, warn or error (env "+config.EnvLogLevel+")")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "reject inputs that yield NaN or Inf")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "o", config.DefaultFormat, "output format: "+strings.Join(config.Formats, ", "))
	rootCmd.PersistentFlags().BoolVar(&save, "save", false, "store results in history")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", viz.ThemeDefault.Name, "colour theme: "+strings.Join(viz.ThemeNames(), ", "))
	rootCmd.PersistentFlags().BoolVar(&figure, "figure", false, "draw vector results below the panel")

	for _, name := range registry.List() {
		c, _ := registry.Get(name)
		rootCmd.AddCommand(calcCmd(c))
	}

	runCmd := &cobra.Command{
		Use:   "run [calculation]",
		Short: "run a calculation from a config file or preset",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCalculation,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset inputs")
	runCmd.Flags().StringVar(&saveConfig, "save-config", "", "write the effective config to this path")

	batchCmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "evaluate a yaml batch of calculations concurrently",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [calculation]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored calculations",
		Args:  cobra.NoArgs,
		RunE:  listRecords,
	}

	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "show a stored calculation",
		Args:  cobra.ExactArgs(1),
		RunE:  showRecord,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "delete a stored calculation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := storage.New(dataDir).Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [id]",
		Short: "export a stored calculation as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportRecord(cmd, args[0], storage.ExportJSON)
		},
	}

	exportYAMLCmd := &cobra.Command{
		Use:   "export-yaml [id]",
		Short: "export a stored calculation as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportRecord(cmd, args[0], storage.ExportYAML)
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot K X0",
		Short: "plot spring displacement over time",
		Args:  cobra.ExactArgs(2),
		RunE:  plotSpring,
	}
	plotCmd.Flags().Float64Var(&cycles, "cycles", config.DefaultCycles, "number of periods")
	plotCmd.Flags().StringVar(&plotSVG, "svg", "", "also write an SVG to this path")
	plotCmd.Flags().IntVar(&plotWidth, "width", 70, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 12, "plot height")

	arrowCmd := &cobra.Command{
		Use:   "arrow X Y",
		Short: "draw a 2d vector as SVG",
		Args:  cobra.ExactArgs(2),
		RunE:  drawArrow,
	}
	arrowCmd.Flags().StringVar(&arrowSVG, "svg", "vector.svg", "output path")
	arrowCmd.Flags().IntVar(&arrowWidth, "width", 400, "image width")
	arrowCmd.Flags().IntVar(&arrowHeight, "height", 400, "image height")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunInteractive()
		},
	}

	rootCmd.AddCommand(runCmd, batchCmd, presetsCmd, listCmd, showCmd, deleteCmd, exportJSONCmd, exportYAMLCmd, plotCmd, arrowCmd, tuiCmd)
	return rootCmd
}

// calcCmd exposes one registry entry as "physutil <name> ARGS...".
func calcCmd(c calc.Calculation) *cobra.Command {
	return &cobra.Command{
		Use:   c.Name + " " + strings.ToUpper(strings.Join(c.Params, " ")),
		Short: c.Description,
		Args:  cobra.ExactArgs(len(c.Params)),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(c.Params, args)
			if err != nil {
				return err
			}
			l := logger.With(log.String("calculation", c.Name))
			res, err := c.EvalArgs(vals, calc.Options{Strict: strict})
			if err != nil {
				l.Debug("evaluation rejected", log.Err(err))
				return err
			}
			l.Debug("evaluated", log.Bool("strict", strict))
			return finish(cmd, res)
		},
	}
}

func parseFloats(names, args []string) ([]float64, error) {
	vals := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %q", names[i], a)
		}
		vals[i] = v
	}
	return vals, nil
}

// finish prints the result and stores it when --save is set.
func finish(cmd *cobra.Command, res *calc.Result) error {
	if err := emit(cmd.OutOrStdout(), res); err != nil {
		return err
	}
	if figure && format == config.DefaultFormat {
		if v, planar, ok := viz.VectorFor(res); ok {
			fmt.Fprintln(cmd.OutOrStdout(), viz.RenderVector(v, planar, nil, 30, 12))
		}
	}
	if !save {
		return nil
	}
	return saveResult(cmd, res)
}

// saveResult stores res and tells the user whether a new record was
// written or an identical one already existed.
func saveResult(cmd *cobra.Command, res *calc.Result) error {
	id, existed, err := persist(res)
	if err != nil {
		return err
	}
	if existed {
		fmt.Fprintf(cmd.ErrOrStderr(), "already stored: %s\n", id)
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "saved: %s\n", id)
	}
	return nil
}

func emit(w io.Writer, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	switch v := v.(type) {
	case *calc.Result:
		_, err := fmt.Fprintln(w, viz.RenderResult(v))
		return err
	case []*calc.Result:
		return writeResultTable(w, v)
	}
	_, err := fmt.Fprintln(w, v)
	return err
}

// persist stores res unless an identical calculation is already in the
// history, in which case the existing id is returned with existed set.
func persist(res *calc.Result) (id string, existed bool, err error) {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return "", false, err
	}

	fp := storage.Fingerprint(res)
	existing, err := st.FindByFingerprint(fp)
	if err != nil {
		return "", false, err
	}
	if existing != nil {
		logger.Info("identical calculation already stored", log.String("id", existing.ID), log.String("fingerprint", fp))
		return existing.ID, true, nil
	}

	id, err = st.Save(res)
	if err != nil {
		return "", false, err
	}
	logger.Debug("stored calculation", log.String("id", id), log.String("fingerprint", fp))
	return id, false, nil
}

func runCalculation(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.Calculation = args[0]
	}

	// Load preset if specified
	if preset != "" {
		if cfg.Calculation == "" {
			return errors.New("--preset requires a calculation argument")
		}
		p := config.GetPreset(cfg.Calculation, preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Calculation))
		}
		cfg = p
	}

	// Load config file if specified (overrides preset)
	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if len(args) > 0 && fileCfg.Calculation != "" && fileCfg.Calculation != args[0] {
			return fmt.Errorf("config file is for %q, not %q", fileCfg.Calculation, args[0])
		}
		if fileCfg.Calculation == "" {
			fileCfg.Calculation = cfg.Calculation
		}
		if fileCfg.Inputs == nil {
			fileCfg.Inputs = map[string]float64{}
		}
		for k, v := range cfg.Inputs {
			if _, ok := fileCfg.Inputs[k]; !ok {
				fileCfg.Inputs[k] = v
			}
		}
		cfg = fileCfg
		// CLI flags override config
		if !cmd.Flags().Changed("strict") {
			strict = cfg.Strict
		}
		if !cmd.Flags().Changed("format") && cfg.Format != "" {
			format = cfg.Format
		}
	}

	if cfg.Calculation == "" {
		return errors.New("no calculation given")
	}
	c, err := registry.Get(cfg.Calculation)
	if err != nil {
		return err
	}
	logger.Debug("running", log.String("calculation", c.Name), log.Any("inputs", cfg.Inputs))
	res, err := c.Eval(cfg.Inputs, calc.Options{Strict: strict})
	if err != nil {
		return err
	}

	if saveConfig != "" {
		cfg.Strict, cfg.Format = strict, format
		if err := config.Save(saveConfig, cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", saveConfig)
	}
	return finish(cmd, res)
}

func runBatch(cmd *cobra.Command, args []string) error {
	bf, err := config.LoadBatch(args[0])
	if err != nil {
		return err
	}
	if len(bf.Jobs) == 0 {
		return fmt.Errorf("%s: no jobs", args[0])
	}

	jobs := make([]calc.Job, len(bf.Jobs))
	for i, j := range bf.Jobs {
		jobs[i] = calc.Job{Calculation: j.Calculation, Inputs: j.Inputs, Strict: j.Strict}
	}

	logger.Debug("running batch", log.String("file", args[0]), log.Int("jobs", len(jobs)))
	results, err := calc.Batch(cmd.Context(), registry, jobs, calc.Options{Strict: strict})
	if err != nil {
		return err
	}

	if logger.Enabled(log.LevelDebug) {
		for i, res := range results {
			logger.Debug("job done", log.Int("job", i), log.String("calculation", res.Calculation), log.String("fingerprint", storage.Fingerprint(res)))
		}
	}

	if !cmd.Flags().Changed("format") {
		format = bf.Defaults.Format
	}
	if err := emit(cmd.OutOrStdout(), results); err != nil {
		return err
	}

	if save {
		for _, res := range results {
			if err := saveResult(cmd, res); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeResultTable(out io.Writer, results []*calc.Result) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tCALCULATION\tINPUTS\tOUTPUTS\tEQUATION")
	for i, res := range results {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i, res.Calculation, joinValues(res.Inputs), joinValues(res.Outputs), res.Equation)
	}
	return w.Flush()
}

func joinValues(vals []calc.Value) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.Name + "=" + vecmath.FormatFloat(v.Value)
	}
	return strings.Join(parts, " ")
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	names := registry.List()
	if len(args) > 0 {
		if _, err := registry.Get(args[0]); err != nil {
			return err
		}
		names = args
	}

	for _, name := range names {
		presets := config.ListPresets(name)
		if len(presets) == 0 {
			fmt.Fprintf(out, "no presets for calculation: %s\n", name)
			continue
		}
		fmt.Fprintf(out, "presets for %s:\n", name)
		for _, p := range presets {
			fmt.Fprintf(out, "  %-10s %s\n", p, joinInputs(name, config.GetPreset(name, p)))
		}
	}
	return nil
}

func joinInputs(name string, cfg *config.Config) string {
	c, err := registry.Get(name)
	if err != nil {
		return ""
	}
	vals := make([]calc.Value, 0, len(c.Params))
	for _, p := range c.Params {
		vals = append(vals, calc.Value{Name: p, Value: cfg.Inputs[p]})
	}
	return joinValues(vals)
}

func listRecords(cmd *cobra.Command, args []string) error {
	records, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "no calculations stored")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCALCULATION\tTIME\tFINGERPRINT")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			rec.ID,
			rec.Calculation,
			rec.Timestamp.Format("2006-01-02 15:04:05"),
			rec.Fingerprint,
		)
	}
	return w.Flush()
}

func showRecord(cmd *cobra.Command, args []string) error {
	rec, err := storage.New(dataDir).Load(args[0])
	if err != nil {
		return err
	}
	switch format {
	case "json":
		return storage.ExportJSON(cmd.OutOrStdout(), rec)
	case "yaml":
		return storage.ExportYAML(cmd.OutOrStdout(), rec)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "id: %s\n", rec.ID)
	fmt.Fprintf(out, "time: %s\n", rec.Timestamp.Format("2006-01-02 15:04:05"))
	return emit(out, rec.Result())
}

func exportRecord(cmd *cobra.Command, id string, fn func(io.Writer, *storage.Record) error) error {
	rec, err := storage.New(dataDir).Load(id)
	if err != nil {
		return err
	}
	return fn(cmd.OutOrStdout(), rec)
}

func plotSpring(cmd *cobra.Command, args []string) error {
	vals, err := parseFloats([]string{"k", "x0"}, args)
	if err != nil {
		return err
	}
	if strict {
		if err := vecmath.CheckSpring(vals[0]); err != nil {
			return err
		}
	}

	h := vecmath.NewHarmonic(vals[0], vals[1])
	logger.Debug("plotting", log.Float64("period", h.Period), log.Float64("cycles", cycles))
	plot := viz.PlotDisplacement(h, cycles, plotWidth, plotHeight)
	if plot == "" {
		return fmt.Errorf("period is %s; nothing to plot", vecmath.FormatFloat(h.Period))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, plot)
	fmt.Fprintf(out, "\namplitude: %s\nperiod: %s\nfrequency: %.6g hz\n",
		vecmath.FormatFloat(h.Amplitude), vecmath.FormatFloat(h.Period), h.Frequency())

	if plotSVG != "" {
		svg := export.DisplacementToSVG(h, cycles, 400, 800, 300)
		if err := os.WriteFile(plotSVG, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", plotSVG)
	}
	return nil
}

func drawArrow(cmd *cobra.Command, args []string) error {
	vals, err := parseFloats([]string{"x", "y"}, args)
	if err != nil {
		return err
	}
	svg := export.VectorToSVG(vals[0], vals[1], arrowWidth, arrowHeight)
	if svg == "" {
		return errors.New("vector is not drawable")
	}
	if err := os.WriteFile(arrowSVG, []byte(svg), 0644); err != nil {
		return err
	}

	mag, dir := vecmath.VectorMagnitudeDirection(vals[0], vals[1])
	fmt.Fprintf(cmd.OutOrStdout(), "magnitude: %s\ndirection: %s deg\nwrote %s\n",
		vecmath.FormatFloat(mag), vecmath.FormatFloat(dir), arrowSVG)
	return nil
}
