package main

import (
	// stdlib
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	// internal
	"github.com/corvid-vision/mottrack/pkg/config"
	"github.com/corvid-vision/mottrack/pkg/detection"
	"github.com/corvid-vision/mottrack/pkg/eventlog"
	"github.com/corvid-vision/mottrack/pkg/indexed"
	"github.com/corvid-vision/mottrack/pkg/rpath"
	"github.com/corvid-vision/mottrack/pkg/track"
	"github.com/corvid-vision/mottrack/pkg/tracker"

	// external
	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"
)

const (
	default_cfg_path string = "../cfg/config.default.toml"
)

var cfg_path string
var exe_dir string

func init() {
	// I have to this or compiler goes crazy on the next line YIKES!
	var err error

	exe_dir, err = rpath.ExecutableDir()
	if err != nil {
		slog.Error("Can't find the executable's location", "error", err)
		return
	}

	flag.StringVar(
		&cfg_path, "config",
		default_cfg_path,
		"Path to config file")
}

func main() {

	// Configuration init

	flag.Parse()

	cfg, err := config.Unmarshal(cfg_path)
	if err != nil {
		slog.Error("Config file not loaded. Shutting down...", "provided path", cfg_path, "error", err)
		return
	}

	var log_level slog.Level

	switch cfg.Logging.Level {
	case config.LoggingLevelDebug:
		log_level = slog.LevelDebug
	case config.LoggingLevelInfo:
		log_level = slog.LevelInfo
	case config.LoggingLevelWarn:
		log_level = slog.LevelWarn
	case config.LoggingLevelError:
		log_level = slog.LevelError
	default:
		slog.Warn(
			"No valid logging level provided. Defaulting to LevelError",
			"provided value", cfg.Logging.Level)
		log_level = slog.LevelError
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      log_level,
		TimeFormat: time.RFC3339,
		AddSource:  true, // change to false on release version
	}))

	logger.Info("Starting...")

	events, err := eventlog.Open(rpath.Convert(exe_dir, cfg.EventLog.Path))
	if err != nil {
		logger.Error("Can't open event log. Shutting down...", "path", cfg.EventLog.Path, "error", err)
		return
	}
	defer events.Close()

	ctx := context.Background()
	eg, child_ctx := errgroup.WithContext(ctx)

	unsorted_chan := make(chan indexed.Indexed[[]detection.Detection])
	sorted_chan := make(chan indexed.Indexed[[]detection.Detection])
	stats_chan := make(chan Statistics, 8)
	snapshots_chan := make(chan []*track.ExportedTrack, 8)

	eg.Go(func() error {
		return sourceFeed(child_ctx, logger, cfg.Source, unsorted_chan)
	})

	eg.Go(func() error {
		return sorter(child_ctx, logger, unsorted_chan, sorted_chan)
	})

	eg.Go(func() error {
		return run(
			child_ctx, logger,
			tracker.Config{
				MaxIOUDistance:   cfg.Tracker.MaxIOUDistance,
				MaxAge:           int(cfg.Tracker.MaxAge),
				MinHits:          int(cfg.Tracker.MinHits),
				UseOptimalSolver: cfg.Tracker.UseOptimalSolver,
			},
			sorted_chan, events, stats_chan, snapshots_chan)
	})

	eg.Go(func() error {
		return stat(child_ctx, logger, stats_chan, cfg.Stat.PeriodSec)
	})

	eg.Go(func() error {
		return telemetryPublisher(child_ctx, logger, cfg.MQTT, snapshots_chan)
	})

	eg.Go(func() error {
		return control(child_ctx, logger)
	})

	if err := eg.Wait(); err != nil {
		logger.Error("Stopped with error", "error", err)
		return
	}

	logger.Info("Stopped")
}

func control(ctx context.Context, logger *slog.Logger) error {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt,
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGINT)

	select {
	case <-ctx.Done():
		logger.Info("Control cancelled by context")
		return context.Canceled
	case <-interrupt:
		logger.Info("Cancelled by user")
		return ERR_INTERRUPTED_BY_USER
	}
}
