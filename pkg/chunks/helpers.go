// pkg/chunks/helpers.go
package chunks

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressBar creates a single terminal progress bar driven by generic
// (done, total, label) updates, one update per completed chunk.
// Returns the update function and a finish function that completes the bar
// (if one was ever created) and waits for the render goroutine.
func ProgressBar() (func(done, total int64, label string), func()) {
	progress := mpb.New(
		mpb.WithWidth(60),
		mpb.WithRefreshRate(100),
	)

	var mu sync.Mutex
	var bar *mpb.Bar
	var label string

	update := func(done, total int64, lbl string) {
		mu.Lock()
		label = lbl
		if bar == nil {
			bar = progress.AddBar(total,
				mpb.PrependDecorators(
					decor.Any(func(decor.Statistics) string {
						mu.Lock()
						defer mu.Unlock()
						return label
					}, decor.WC{W: 16, C: decor.DindentRight | decor.DextraSpace}),
				),
				mpb.AppendDecorators(
					decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
					decor.Percentage(decor.WC{W: 5}),
				),
			)
		}
		b := bar
		mu.Unlock()

		b.SetTotal(total, false)
		b.SetCurrent(done)
	}

	finish := func() {
		mu.Lock()
		b := bar
		mu.Unlock()
		if b != nil {
			// Negative total pins the total to the current value and completes the bar.
			b.SetTotal(-1, true)
		}
		progress.Wait()
	}

	return update, finish
}

// FormatSize formats bytes into human-readable string
func FormatSize(bytes uint64) string {
	const (
		KB = 1024
		MB = 1024 * KB
		GB = 1024 * MB
		TB = 1024 * GB
	)

	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.2f TB", float64(bytes)/float64(TB))
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// TruncateLeft truncates a path from the left to fit maxLen, preserving the filename
func TruncateLeft(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}

	filename := filepath.Base(path)
	if len(filename) >= maxLen-3 {
		return "..." + filename[len(filename)-(maxLen-3):]
	}

	return "..." + path[len(path)-(maxLen-3):]
}
