package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sepline/core"
	"github.com/katalvlaran/sepline/instance"
	"github.com/katalvlaran/sepline/render"
	"github.com/katalvlaran/sepline/separate"
)

func newSolveCmd(opts *options, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "solve FILE...",
		Short: "Solve instance files in order, stopping at the first failure",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args, stdout, stderr)
		},
	}
}

// runSolve resolves configuration and telemetry, then solves every file.
func runSolve(cmd *cobra.Command, opts *options, files []string, stdout, stderr io.Writer) error {
	if len(files) == 0 {
		return errNoInput
	}
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}
	mode, err := separate.ParseOptimizeMode(cfg.Solver.Optimize)
	if err != nil {
		return err
	}
	tel, err := newTelemetry(cfg.Telemetry, stderr)
	if err != nil {
		return err
	}

	s := &solver{
		cfg:     cfg,
		mode:    mode,
		logger:  logger,
		metrics: separate.NewMetrics(tel.registry),
		tracer:  tel,
		stdout:  stdout,
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	err = s.solveAll(ctx, files)
	if cerr := tel.close(context.Background()); cerr != nil {
		logger.Warn("telemetry shutdown failed", slog.String("error", cerr.Error()))
	}

	return err
}

// solver carries the resolved settings of one CLI run across files.
type solver struct {
	cfg     Config
	mode    separate.OptimizeMode
	logger  *slog.Logger
	metrics *separate.Metrics
	tracer  *telemetry
	stdout  io.Writer
}

// solveAll handles files in order and stops at the first failure. With more
// than one job, instances are solved concurrently but their outputs are still
// written in order, and nothing past the first failing file is written.
func (s *solver) solveAll(ctx context.Context, files []string) error {
	jobs := s.cfg.Solver.Jobs
	if jobs == 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs == 1 || len(files) == 1 {
		for _, path := range files {
			sol, err := s.prepare(ctx, path)
			if err == nil {
				err = s.emit(sol)
			}
			if err != nil {
				return &fileError{path: path, err: err}
			}
		}

		return nil
	}

	var (
		sols      = make([]*solution, len(files))
		errs      = make([]error, len(files))
		firstFail atomic.Int64
		g         errgroup.Group
	)
	firstFail.Store(math.MaxInt64)
	g.SetLimit(jobs)
	for i, path := range files {
		g.Go(func() error {
			if int64(i) > firstFail.Load() {
				errs[i] = errSkipped
				return nil
			}
			sols[i], errs[i] = s.prepare(ctx, path)
			if errs[i] != nil {
				for cur := firstFail.Load(); int64(i) < cur; cur = firstFail.Load() {
					if firstFail.CompareAndSwap(cur, int64(i)) {
						break
					}
				}
			}

			return nil
		})
	}
	_ = g.Wait()

	for i, path := range files {
		err := errs[i]
		if err == nil {
			err = s.emit(sols[i])
		}
		if err != nil {
			return &fileError{path: path, err: err}
		}
	}

	return nil
}

// errSkipped marks files not solved because an earlier one failed. It never
// reaches the user: the earlier failure is reported first.
var errSkipped = errors.New("skipped after earlier failure")

// solution is a solved instance waiting to be written.
type solution struct {
	inst *instance.Instance
	res  *separate.Result
	log  *slog.Logger
}

// prepare loads, solves and optionally verifies one instance.
func (s *solver) prepare(ctx context.Context, path string) (*solution, error) {
	log := s.logger.With(slog.String("run_id", uuid.NewString()), slog.String("file", path))

	inst, err := instance.Load(path, s.cfg.Solver.Capacity)
	if err != nil {
		log.Error("load failed", slog.String("error", err.Error()))
		return nil, err
	}
	log.Debug("instance loaded", slog.Int("points", len(inst.Points)), slog.Int("number", inst.Number))

	res, err := separate.Solve(ctx, inst.Points,
		separate.WithLogger(log),
		separate.WithCapacity(s.cfg.Solver.Capacity),
		separate.WithOptimizeMode(s.mode),
		separate.WithMetrics(s.metrics),
		separate.WithTracer(s.tracer.tracer),
	)
	if err != nil {
		return nil, err
	}

	if s.cfg.Solver.Verify {
		if err = separate.Verify(inst.Points, res.Lines); err != nil {
			return nil, fmt.Errorf("verification: %w: %w", core.ErrInvariantViolation, err)
		}
		log.Debug("solution verified")
	}

	return &solution{inst: inst, res: res, log: log}, nil
}

// emit writes the solution file, and the SVG when enabled, then reports the
// file as solved.
func (s *solver) emit(sol *solution) error {
	name := instance.OutputName(s.cfg.Output.Prefix, sol.inst.Name)
	if err := os.MkdirAll(s.cfg.Output.Dir, 0o755); err != nil {
		return err
	}
	out, err := instance.WriteFile(s.cfg.Output.Dir, name, sol.res.Lines, s.cfg.Output.Precision)
	if err != nil {
		return err
	}
	sol.log.Info("solution written", slog.String("output", out), slog.Int("lines", len(sol.res.Lines)))

	if s.cfg.Output.SVG {
		if err = writeSVG(filepath.Join(s.cfg.Output.Dir, name+".svg"), sol.inst, sol.res); err != nil {
			return err
		}
	}
	fmt.Fprintf(s.stdout, "Solved %s\n", sol.inst.Path)

	return nil
}

func writeSVG(path string, inst *instance.Instance, res *separate.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = render.SVG(f, inst.Points, res.Lines, render.DefaultOptions()); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
