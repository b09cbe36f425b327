package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/geodels/biolec/lec"
	"github.com/geodels/biolec/lecio"
)

var (
	rootCmd = &cobra.Command{
		Use:   "biolec",
		Short: "Landscape elevational connectivity over regular elevation grids",
		Long: `biolec scores every node of an elevation grid by its closeness to
other sites of similar elevation, aggregating shortest-path costs
inside per-node elevation niches.`,
		SilenceUsage: true,
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Compute LEC for a CSV point grid and write the results",
		RunE:  runLEC,
	}

	// run flags
	inputPath  string
	outputPath string
	vtkPath    string
	configPath string
	delimiter  string
	verbose    bool

	flagPeriodic  bool
	flagSymmetric bool
	flagSigmap    float64
	flagSigmav    float64
	flagDiagonals bool
	flagSeaLevel  float64
	flagDx        float64
	flagWorkers   int
)

func init() {
	f := runCmd.Flags()
	f.StringVarP(&inputPath, "input", "i", "", "input CSV point file (X Y Z rows, no header)")
	f.StringVarP(&outputPath, "output", "o", "", "output CSV file (X Y Z LEC rows)")
	f.StringVar(&vtkPath, "vtk", "", "optional VTK structured-grid output file")
	f.StringVarP(&configPath, "config", "c", "", "optional YAML config file")
	f.StringVar(&delimiter, "delimiter", " ", "input/output field delimiter")
	f.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	def := lec.DefaultConfig()
	f.BoolVar(&flagPeriodic, "periodic", def.Periodic, "periodic (wraparound) grid edges")
	f.BoolVar(&flagSymmetric, "symmetric", def.Symmetric, "symmetric (mirrored) grid edges")
	f.Float64Var(&flagSigmap, "sigmap", def.Sigmap, "niche half-width as a fraction of the elevation range")
	f.Float64Var(&flagSigmav, "sigmav", 0, "fixed niche half-width in elevation units (overrides sigmap)")
	f.BoolVar(&flagDiagonals, "diagonals", def.Diagonals, "include diagonal (8-connectivity) moves")
	f.Float64Var(&flagSeaLevel, "sl", def.SeaLevel, "sea level; nodes below are masked out")
	f.Float64Var(&flagDx, "dx", 0, "cell spacing (0 = infer from input coordinates)")
	f.IntVarP(&flagWorkers, "workers", "w", 0, "worker pool size (0 = one per CPU)")

	_ = runCmd.MarkFlagRequired("input")
	_ = runCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(runCmd)
}

// buildConfig layers the YAML file (when given) over defaults, then CLI
// flags over the file, so explicit flags always win.
func buildConfig(cmd *cobra.Command) (lec.Config, error) {
	cfg := lec.DefaultConfig()
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	f := cmd.Flags()
	if f.Changed("periodic") {
		cfg.Periodic = flagPeriodic
	}
	if f.Changed("symmetric") {
		cfg.Symmetric = flagSymmetric
	}
	if f.Changed("sigmap") {
		cfg.Sigmap = flagSigmap
	}
	if f.Changed("sigmav") {
		v := flagSigmav
		cfg.Sigmav = &v
	}
	if f.Changed("diagonals") {
		cfg.Diagonals = flagDiagonals
	}
	if f.Changed("sl") {
		cfg.SeaLevel = flagSeaLevel
	}
	if f.Changed("dx") {
		cfg.Dx = flagDx
	}
	if f.Changed("workers") {
		cfg.Workers = flagWorkers
	}

	return cfg, cfg.Validate()
}

func runLEC(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if len(delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", delimiter)
	}
	delim := rune(delimiter[0])

	start := time.Now()
	ps, err := lecio.ReadPointsCSV(inputPath, delim)
	if err != nil {
		return err
	}
	log.Info("grid loaded",
		slog.String("input", inputPath),
		slog.Int("nx", ps.Nx), slog.Int("ny", ps.Ny),
		slog.Float64("dx", ps.Dx))

	g, err := ps.Grid(cfg.GridOptions(ps.Dx))
	if err != nil {
		return err
	}

	sess, err := lec.NewSession(g, cfg, lec.WithLogger(log))
	if err != nil {
		return err
	}
	if err = sess.Compute(cmd.Context()); err != nil {
		return err
	}

	vals, err := sess.LEC()
	if err != nil {
		return err
	}
	rep, err := sess.Report()
	if err != nil {
		return err
	}
	if len(rep.EmptyNiche) > 0 {
		log.Warn("nodes with empty niches scored 0",
			slog.Int("count", len(rep.EmptyNiche)),
			slog.Any("nodes", rep.EmptyNiche))
	}
	if len(rep.Failed) > 0 {
		log.Warn("nodes failed and carry NaN",
			slog.Int("count", len(rep.Failed)),
			slog.Any("nodes", rep.Failed))
	}

	if err = lecio.WriteCSV(outputPath, g, vals, delim); err != nil {
		return err
	}
	log.Info("csv written", slog.String("output", outputPath))
	if vtkPath != "" {
		if err = lecio.WriteVTK(vtkPath, g, vals); err != nil {
			return err
		}
		log.Info("vtk written", slog.String("output", vtkPath))
	}

	log.Info("done", slog.Duration("elapsed", time.Since(start)))

	return nil
}
