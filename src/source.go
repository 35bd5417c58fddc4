package main

import (
	"context"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/corvid-vision/mottrack/pkg/config"
	"github.com/corvid-vision/mottrack/pkg/detection"
	"github.com/corvid-vision/mottrack/pkg/geom"
	"github.com/corvid-vision/mottrack/pkg/indexed"
	"github.com/google/uuid"
)

// syntheticObject moves on a fixed circle, standing in for a detector's
// output when no real video source is configured.
type syntheticObject struct {
	classID       int
	className     string
	centerX       float64
	centerY       float64
	radius        float64
	angularSpeed  float64
	angle         float64
	width, height int
}

func newSyntheticObjects(n uint) []*syntheticObject {
	objects := make([]*syntheticObject, 0, n)
	for i := uint(0); i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		objects = append(objects, &syntheticObject{
			classID:      0,
			className:    "object",
			centerX:      320,
			centerY:      240,
			radius:       120 + float64(i)*15,
			angularSpeed: 0.05 + 0.01*float64(i),
			angle:        angle,
			width:        40,
			height:       40,
		})
	}
	return objects
}

func (o *syntheticObject) step() detection.Detection {
	o.angle += o.angularSpeed
	x := o.centerX + o.radius*math.Cos(o.angle)
	y := o.centerY + o.radius*math.Sin(o.angle)
	return detection.Detection{
		BBox: geom.BBox{
			X: int(x) - o.width/2,
			Y: int(y) - o.height/2,
			W: o.width,
			H: o.height,
		},
		Confidence: 1,
		ClassID:    o.classID,
		ClassName:  o.className,
	}
}

// sourceFeed produces synthetic detection batches on a fixed tick and
// dispatches each batch through a short jittered delay, simulating a
// detector whose per-frame inference time varies enough to reorder
// frames in flight — the condition sorter exists to correct.
func sourceFeed(
	ctx context.Context,
	parent_logger *slog.Logger,
	cfg config.SourceConfig,
	unsorted_chan chan<- indexed.Indexed[[]detection.Detection],
) error {
	logger := parent_logger.With("coroutine", "source")

	if cfg.FrameIntervalMs == 0 {
		return ERR_BAD_SOURCE
	}
	objects := newSyntheticObjects(cfg.ObjectCount)

	ticker := time.NewTicker(time.Duration(cfg.FrameIntervalMs) * time.Millisecond)
	defer ticker.Stop()

	var frame_id uint64
	for {
		select {
		case <-ctx.Done():
			logger.Info("Cancelled by context")
			return context.Canceled
		case <-ticker.C:
			dets := make([]detection.Detection, len(objects))
			for i, obj := range objects {
				dets[i] = obj.step()
			}
			id := frame_id
			frame_id++
			correlation_id := uuid.New()
			logger.Debug("Frame generated", "frame_id", id, "correlation_id", correlation_id)

			go func() {
				jitter := time.Duration(rand.Intn(20)) * time.Millisecond
				timer := time.NewTimer(jitter)
				defer timer.Stop()
				select {
				case <-timer.C:
				case <-ctx.Done():
					return
				}
				select {
				case unsorted_chan <- indexed.NewIndexed(id, dets):
				case <-ctx.Done():
				}
			}()
		}
	}
}
