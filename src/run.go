package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/corvid-vision/mottrack/pkg/detection"
	"github.com/corvid-vision/mottrack/pkg/eventlog"
	"github.com/corvid-vision/mottrack/pkg/indexed"
	"github.com/corvid-vision/mottrack/pkg/track"
	"github.com/corvid-vision/mottrack/pkg/tracker"
)

// run drives one Tracker across the sorted detection stream, diffing
// each frame's live track set against the previous one to emit
// created/confirmed/reaped events, and fans the frame's latency and
// the confirmed-track snapshot out to stat and the telemetry
// publisher.
func run(
	ctx context.Context,
	parent_logger *slog.Logger,
	cfg tracker.Config,
	sorted_chan <-chan indexed.Indexed[[]detection.Detection],
	events *eventlog.Store,
	stats chan<- Statistics,
	snapshots chan<- []*track.ExportedTrack,
) error {
	logger := parent_logger.With("coroutine", "run")

	trk := tracker.New(cfg)
	defer trk.Close()

	seen := make(map[int]seenTrack)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Cancelled by context")
			return context.Canceled
		case frame := <-sorted_chan:
			start := time.Now()
			surfaced := trk.Update(frame.Value())

			diffLifecycle(logger, events, seen, trk.Tracks())

			exported := make([]*track.ExportedTrack, len(surfaced))
			for i, t := range surfaced {
				exported[i] = t.Export()
			}

			sample := Statistics{processing_time: time.Since(start), tracks_surfaced: len(surfaced)}
			select {
			case stats <- sample:
			default:
				logger.Warn("Stat channel full, dropping sample")
			}
			select {
			case snapshots <- exported:
			default:
				logger.Warn("Snapshot channel full, dropping frame", "frame_id", frame.Id())
			}
		}
	}
}

type seenTrack struct {
	state     track.State
	classID   int
	className string
}

// diffLifecycle compares live against the previously observed track
// states, records created/confirmed/reaped transitions to events, and
// updates seen in place to reflect the new observation.
func diffLifecycle(logger *slog.Logger, events *eventlog.Store, seen map[int]seenTrack, live []*track.Track) {
	now := time.Now()
	present := make(map[int]bool, len(live))

	for _, t := range live {
		present[t.ID()] = true
		prev, tracked := seen[t.ID()]
		switch {
		case !tracked:
			if err := events.Record(t.ID(), t.ClassID(), t.ClassName(), eventlog.TransitionCreated, now); err != nil {
				logger.Warn("Can't record created event", "track_id", t.ID(), "error", err)
			}
		case prev.state == track.Tentative && t.State() == track.Confirmed:
			if err := events.Record(t.ID(), t.ClassID(), t.ClassName(), eventlog.TransitionConfirmed, now); err != nil {
				logger.Warn("Can't record confirmed event", "track_id", t.ID(), "error", err)
			}
		}
		seen[t.ID()] = seenTrack{state: t.State(), classID: t.ClassID(), className: t.ClassName()}
	}

	for id, info := range seen {
		if present[id] {
			continue
		}
		if err := events.Record(id, info.classID, info.className, eventlog.TransitionReaped, now); err != nil {
			logger.Warn("Can't record reaped event", "track_id", id, "error", err)
		}
		delete(seen, id)
	}
}
