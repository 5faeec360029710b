// pkg/split/split.go
package split

import (
	"fmt"
	"os"
	"path/filepath"
)

// progressBuffer bounds the progress channel. One event is emitted per
// chunk; the worker never blocks on a slow observer — events beyond the
// buffer are dropped rather than queued.
const progressBuffer = 1024

// Run is a split executing on its own worker goroutine. Only one run per
// source/output pair should be active at a time; callers must serialize.
type Run struct {
	// Progress delivers one event per completed chunk, in production order.
	// Closed when the run finishes.
	Progress <-chan ProgressEvent

	events chan ProgressEvent
	done   chan struct{}
	result *Result
	err    error
}

// Start validates the options, resolves the source and launches the split on
// a dedicated worker goroutine. Configuration, not-found and codec errors
// surface here, before any I/O on the output side.
func Start(opts *Options) (*Run, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	pol, err := opts.policy()
	if err != nil {
		return nil, err
	}
	src, err := describeSource(opts.InputPath)
	if err != nil {
		return nil, err
	}
	if src.Class == ClassPaged && opts.Codec != CodecNone {
		return nil, ErrCodecPaged
	}

	r := &Run{
		events: make(chan ProgressEvent, progressBuffer),
		done:   make(chan struct{}),
	}
	r.Progress = r.events

	go r.run(opts, src, pol)
	return r, nil
}

// Wait blocks until the run finishes and returns the manifest or the error.
// On failure, chunks already written are left on disk and the manifest is nil.
func (r *Run) Wait() (*Result, error) {
	<-r.done
	return r.result, r.err
}

func (r *Run) run(opts *Options, src *SourceDescriptor, pol Policy) {
	defer close(r.done)
	defer close(r.events)
	r.result, r.err = execute(opts, src, pol, r.emit)
}

func (r *Run) emit(ev ProgressEvent) {
	select {
	case r.events <- ev:
	default:
		// Observer is lagging past the buffer; drop rather than block the worker.
	}
}

// Split runs a split synchronously, invoking cb for every progress event.
func Split(opts *Options, cb ProgressCallback) (*Result, error) {
	run, err := Start(opts)
	if err != nil {
		return nil, err
	}
	for ev := range run.Progress {
		if cb != nil {
			cb(ev)
		}
	}
	return run.Wait()
}

func execute(opts *Options, src *SourceDescriptor, pol Policy, emit func(ProgressEvent)) (*Result, error) {
	if err := ensureOutputDir(opts.OutputDir); err != nil {
		return nil, err
	}

	records, srcHash, err := splitterFor(src.Class).split(src, opts.OutputDir, pol, opts.Codec, emit)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Source:     *src,
		Strategy:   src.Class.String(),
		Codec:      opts.Codec,
		Chunks:     records,
		SourceHash: srcHash,
	}

	if opts.WriteManifest {
		path, err := writeManifest(opts.OutputDir, result)
		if err != nil {
			return nil, err
		}
		result.ManifestPath = path
	}
	return result, nil
}

// describeSource resolves the source path to an absolute path, its size and
// its content class. The source must be an existing regular file.
func describeSource(path string) (*SourceDescriptor, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	fi, err := os.Stat(abs)
	if err != nil || !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	return &SourceDescriptor{
		Path:  abs,
		Size:  fi.Size(),
		Class: Classify(abs),
	}, nil
}

// ensureOutputDir creates the output directory if absent and proves it is
// writable before any chunk is written.
func ensureOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %s", ErrOutputNotWritable, dir)
	}
	probe, err := os.CreateTemp(dir, ".chunks-probe-*")
	if err != nil {
		return fmt.Errorf("%w: %s", ErrOutputNotWritable, dir)
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}
