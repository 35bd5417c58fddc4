package main

import (
	"context"
	"log/slog"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Statistics is one frame's worth of measurements fed to stat.
type Statistics struct {
	processing_time time.Duration
	tracks_surfaced int
}

const statWindow = 128

// stat aggregates per-frame processing latency and surfaced-track
// counts into a rolling mean/stddev, logged every stat_period_sec.
// The window is a plain ring slice; gonum/stat computes the moments
// over whatever is currently in it.
func stat(ctx context.Context, logger *slog.Logger, stats <-chan Statistics, stat_period_sec uint) error {
	var frames uint
	var frames_since_last_tick uint
	latencies_ms := make([]float64, 0, statWindow)
	track_counts := make([]float64, 0, statWindow)

	ticker := time.NewTicker(time.Second * time.Duration(stat_period_sec))
	defer ticker.Stop()

	push := func(buf []float64, v float64) []float64 {
		if len(buf) >= statWindow {
			buf = buf[1:]
		}
		return append(buf, v)
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stat cancelled by context")
			return context.Canceled
		case s := <-stats:
			frames++
			frames_since_last_tick++
			latencies_ms = push(latencies_ms, float64(s.processing_time.Microseconds())/1000)
			track_counts = push(track_counts, float64(s.tracks_surfaced))
		case <-ticker.C:
			var latency_mean, latency_stddev, tracks_mean float64
			if len(latencies_ms) > 0 {
				latency_mean, latency_stddev = stat.MeanStdDev(latencies_ms, nil)
				tracks_mean = stat.Mean(track_counts, nil)
			}
			logger.Info(
				"Stats",
				"frames processed", frames,
				"frames per second", frames_since_last_tick/stat_period_sec,
				"latency mean ms", latency_mean,
				"latency stddev ms", latency_stddev,
				"tracks surfaced mean", tracks_mean,
			)
			frames_since_last_tick = 0
		}
	}
}
