// Command gridastar is an interactive A* visualizer for the terminal.
//
// Usage:
//
//	gridastar [-config file] [-size n] [-delay d] [-metrics-addr addr] [-log-level lvl]
//	gridastar -grid file        solve an ASCII grid (.#SE) and print the path
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/term"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/config"
	"github.com/katalvlaran/gridastar/gridgraph"
	"github.com/katalvlaran/gridastar/observability"
	"github.com/katalvlaran/gridastar/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "gridastar:", err)
		os.Exit(1)
	}
}

// run parses args, builds the ambient stack and starts either the
// interactive session or a one-shot solve of an ASCII grid file.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("gridastar", flag.ContinueOnError)
	var (
		configFile  = fs.String("config", "", "Path to config JSON file")
		gridFile    = fs.String("grid", "", "Solve an ASCII grid file and print the path instead of starting the UI")
		size        = fs.Int("size", 0, "Grid size N (overrides config)")
		delay       = fs.Duration("delay", -1, "Delay between animation steps (overrides config)")
		metricsAddr = fs.String("metrics-addr", "", "Serve Prometheus metrics on this address (overrides config)")
		logLevel    = fs.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	if *size > 0 {
		cfg.GridSize = *size
	}
	if *delay >= 0 {
		cfg.StepDelay = config.Duration(*delay)
	}
	if *metricsAddr != "" {
		cfg.MetricsAddr = *metricsAddr
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(&cfg, *gridFile != "")
	if err != nil {
		return err
	}
	defer closeLog()

	base, err := observability.Resolve(cfg.Observer, logger)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	observer := observability.NewMultiObserver(base, observability.NewMetricsObserver(reg))

	if cfg.MetricsAddr != "" {
		shutdown := serveMetrics(cfg.MetricsAddr, reg, logger)
		defer shutdown()
	}

	if *gridFile != "" {
		return solveFile(ctx, *gridFile, observer, stdout)
	}

	grid, err := gridgraph.NewGrid(cfg.GridSize)
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("%w: %w", tui.ErrScreenInit, err)
	}
	session, err := tui.NewSession(screen, grid,
		tui.WithStepDelay(cfg.StepDelay.Std()),
		tui.WithDensity(cfg.Density),
		tui.WithCellWidth(cfg.CellWidth),
		tui.WithObserver(observer),
	)
	if err != nil {
		return err
	}

	return session.Run(ctx)
}

// newLogger builds the slog logger. While the UI owns the terminal, logs go
// to cfg.LogFile or are discarded; otherwise they go to stderr.
func newLogger(cfg *config.Config, headless bool) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return slog.New(slog.NewTextHandler(f, opts)), func() { _ = f.Close() }, nil
	case headless || !term.IsTerminal(int(os.Stderr.Fd())):
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), func() {}, nil
	default:
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}, nil
	}
}

// serveMetrics exposes reg on addr/metrics and returns a shutdown func.
func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

// solveFile reads an ASCII grid, solves it and prints the grid with the
// path drawn as '*'.
func solveFile(ctx context.Context, path string, obs observability.Observer, w io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read grid file: %w", err)
	}
	grid, err := gridgraph.Parse(strings.Split(string(data), "\n")...)
	if err != nil {
		return err
	}

	res, err := astar.Solve(ctx, grid, astar.WithObserver(obs))
	if err != nil {
		return err
	}

	switch res.Outcome {
	case astar.Found:
		fmt.Fprintf(w, "found: cost %d, %d cells expanded\n", res.Cost, res.Expanded)
	case astar.Exhausted:
		fmt.Fprintf(w, "no path: %d cells expanded\n", res.Expanded)
	default:
		fmt.Fprintln(w, "cancelled")
	}
	fmt.Fprint(w, render(grid, res.Overlay))

	return nil
}

// render is Grid.String with path cells drawn as '*'.
func render(g *gridgraph.Grid, ov *astar.Overlay) string {
	rows := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	var b strings.Builder
	for r, line := range rows {
		row := []byte(line)
		for c := range row {
			if ov.At(gridgraph.Coordinate{Row: r, Col: c}) == astar.MarkPath {
				row[c] = '*'
			}
		}
		b.Write(row)
		b.WriteByte('\n')
	}

	return b.String()
}
