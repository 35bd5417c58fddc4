package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/corvid-vision/mottrack/pkg/detection"
	"github.com/corvid-vision/mottrack/pkg/gheap"
	"github.com/corvid-vision/mottrack/pkg/indexed"
)

// sortingTick is how often the queue is checked for the next expected
// frame; a frame that arrives early waits in the queue until every
// lower frame id has been forwarded.
const sortingTick = 5 * time.Millisecond

// sorter reorders detection batches that source's jittered dispatch
// may have delivered out of sequence, so the tracker always sees
// strictly increasing frame ids. Grounded on the teacher's own
// sorter.go, generalized from decoded video frames to detection
// batches.
func sorter(
	ctx context.Context,
	parent_logger *slog.Logger,
	unsorted_chan <-chan indexed.Indexed[[]detection.Detection],
	sorted_chan chan<- indexed.Indexed[[]detection.Detection],
) error {
	logger := parent_logger.With("coroutine", "sorter")

	queue := gheap.Heap[indexed.Indexed[[]detection.Detection]]{}
	queue.Init()

	ticker := time.NewTicker(sortingTick)
	defer ticker.Stop()

	var expected_frame uint64

	for {
		select {
		case <-ctx.Done():
			logger.Info("Cancelled by context")
			return context.Canceled
		case frame := <-unsorted_chan:
			if frame.Id() < expected_frame {
				logger.Warn("Stale frame dropped", "expected", expected_frame, "got", frame.Id())
				continue
			}
			queue.Push(frame)
		case <-ticker.C:
			if queue.IsEmpty() {
				continue
			}
			if queue.Peek().Id() > expected_frame {
				continue
			}
			frame := queue.Pop()
			select {
			case <-ctx.Done():
				logger.Info("Cancelled by context")
				return context.Canceled
			case sorted_chan <- frame:
				expected_frame = frame.Id() + 1
			}
		}
	}
}
