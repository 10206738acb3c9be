package main

import (
	"io"

	"github.com/spf13/cobra"
)

// options holds the flag values of one invocation.
type options struct {
	configPath  string
	outDir      string
	prefix      string
	precision   int
	capacity    int
	optimize    string
	svg         bool
	verify      bool
	jobs        int
	metricsFile string
	trace       bool
	logLevel    string
	logFormat   string
}

// newRootCmd builds the command tree. The root command solves the files it is
// given, like the solve subcommand.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	def := DefaultConfig()

	root := &cobra.Command{
		Use:           "sepline [FILE...]",
		Short:         "Separate 2D points with axis-parallel lines",
		Long:          "sepline reads point-set instances and writes, per instance, a small set of\nvertical and horizontal lines that separates every pair of points.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args, stdout, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&opts.outDir, "out-dir", def.Output.Dir, "directory for solution files")
	pf.StringVar(&opts.prefix, "prefix", def.Output.Prefix, "solution file name prefix")
	pf.IntVar(&opts.precision, "precision", def.Output.Precision, "decimals per line coordinate")
	pf.IntVar(&opts.capacity, "capacity", def.Solver.Capacity, "maximum points per instance (<= 0: unbounded)")
	pf.StringVar(&opts.optimize, "optimize", def.Solver.Optimize, "redundancy elimination: single, fixed or off")
	pf.BoolVar(&opts.svg, "svg", def.Output.SVG, "also write an SVG drawing per instance")
	pf.BoolVar(&opts.verify, "verify", def.Solver.Verify, "re-check separation of every solution")
	pf.IntVarP(&opts.jobs, "jobs", "j", def.Solver.Jobs, "instances solved concurrently (0: GOMAXPROCS)")
	pf.StringVar(&opts.metricsFile, "metrics-file", def.Telemetry.MetricsFile, "write Prometheus metrics to this textfile")
	pf.BoolVar(&opts.trace, "trace", def.Telemetry.Trace, "print OpenTelemetry spans to stderr")
	pf.StringVar(&opts.logLevel, "log-level", def.Log.Level, "debug, info, warn or error")
	pf.StringVar(&opts.logFormat, "log-format", def.Log.Format, "auto, text or json")

	root.AddCommand(newSolveCmd(opts, stdout, stderr), newGenCmd(stdout))

	return root
}

// resolveConfig loads the config file, if any, and applies the flags the user
// set explicitly on top of it.
func resolveConfig(cmd *cobra.Command, opts *options) (Config, error) {
	cfg := DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = LoadConfig(opts.configPath); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	set("out-dir", func() { cfg.Output.Dir = opts.outDir })
	set("prefix", func() { cfg.Output.Prefix = opts.prefix })
	set("precision", func() { cfg.Output.Precision = opts.precision })
	set("svg", func() { cfg.Output.SVG = opts.svg })
	set("capacity", func() { cfg.Solver.Capacity = opts.capacity })
	set("optimize", func() { cfg.Solver.Optimize = opts.optimize })
	set("verify", func() { cfg.Solver.Verify = opts.verify })
	set("jobs", func() { cfg.Solver.Jobs = opts.jobs })
	set("metrics-file", func() { cfg.Telemetry.MetricsFile = opts.metricsFile })
	set("trace", func() { cfg.Telemetry.Trace = opts.trace })
	set("log-level", func() { cfg.Log.Level = opts.logLevel })
	set("log-format", func() { cfg.Log.Format = opts.logFormat })

	return cfg, cfg.Validate()
}
