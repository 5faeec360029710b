// pkg/split/progress.go
package split

import (
	"github.com/Juniorduc44/chunks/pkg/chunks"
)

// ProgressEvent is emitted once per completed chunk, after that chunk's file
// is closed. UnitsDone is cumulative (bytes consumed or pages placed) and is
// monotonically non-decreasing within one run.
type ProgressEvent struct {
	UnitsDone  int64
	UnitsTotal int64

	// Label is a short human string, e.g. "Chunk 3/10" or "Pages 120/400"
	Label string
}

// ProgressCallback is called for progress updates during a split
type ProgressCallback func(event ProgressEvent)

// ProgressBarCallback creates a progress callback that renders a terminal
// progress bar. Call the returned finish function after the run completes.
func ProgressBarCallback() (ProgressCallback, func()) {
	update, finish := chunks.ProgressBar()

	callback := func(event ProgressEvent) {
		update(event.UnitsDone, event.UnitsTotal, event.Label)
	}
	return callback, finish
}
