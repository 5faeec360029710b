// pkg/verify/verify.go
package verify

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/Juniorduc44/chunks/pkg/split"
)

// ProgressCallback is called for progress updates during verification
type ProgressCallback func(event ProgressEvent)

// ProgressEvent contains progress information
type ProgressEvent struct {
	Type      EventType
	ChunkPath string
	Index     int
	Total     int
}

// EventType indicates the type of progress event
type EventType int

const (
	EventStart EventType = iota
	EventChunk
	EventComplete
)

// Verify re-checks a chunk set against the manifest written by a split run.
// Check failures are collected in the result rather than aborting; only an
// unreadable manifest is fatal.
func Verify(opts *Options, progressCb ProgressCallback) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	m, err := split.LoadManifest(opts.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestInvalid, err)
	}
	codec, err := split.ParseCodec(m.Codec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestInvalid, err)
	}

	result := &Result{
		ManifestPath: opts.ManifestPath,
		ChunksTotal:  len(m.Chunks),
	}
	manifestDir := filepath.Dir(opts.ManifestPath)

	// Replaying the chunk sequence through one hasher re-checks the
	// round-trip law at runtime: chunks concatenated in index order must
	// hash back to the source. Only meaningful for byte-oriented splits.
	var srcHash *blake3.Hasher
	if opts.Deep && m.SourceHash != "" {
		srcHash = blake3.New()
	}

	if progressCb != nil {
		progressCb(ProgressEvent{Type: EventStart, Total: result.ChunksTotal})
	}

	for _, rec := range m.Chunks {
		path := resolveChunk(manifestDir, rec.Path)
		ok := true

		fi, err := os.Stat(path)
		switch {
		case err != nil:
			result.Errors = append(result.Errors, fmt.Errorf("%w: %s", ErrChunkMissing, path))
			ok = false
		case fi.Size() != rec.ByteSize:
			result.Errors = append(result.Errors,
				fmt.Errorf("%w: %s: have %d bytes, recorded %d", ErrSizeMismatch, path, fi.Size(), rec.ByteSize))
			ok = false
		case opts.Deep:
			if err := checkChunk(path, rec, codec, srcHash); err != nil {
				result.Errors = append(result.Errors, err)
				ok = false
			}
		}

		if ok {
			result.ChunksVerified++
			result.BytesVerified += rec.ByteSize
		}
		if progressCb != nil {
			progressCb(ProgressEvent{
				Type:      EventChunk,
				ChunkPath: path,
				Index:     rec.Index,
				Total:     result.ChunksTotal,
			})
		}
	}

	// The source comparison only holds if every chunk was fed to the hasher.
	if srcHash != nil && result.ChunksVerified == result.ChunksTotal {
		result.SourceHashChecked = true
		if sum := hex.EncodeToString(srcHash.Sum(nil)); sum != m.SourceHash {
			result.Errors = append(result.Errors, ErrSourceHashMismatch)
		}
	}

	if progressCb != nil {
		progressCb(ProgressEvent{Type: EventComplete, Total: result.ChunksTotal})
	}
	return result, nil
}

// checkChunk re-hashes the on-disk bytes against the record and, when
// srcHash is non-nil, streams the decoded chunk bytes into it.
func checkChunk(path string, rec split.ChunkRecord, codec split.Codec, srcHash *blake3.Hasher) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrChunkMissing, path)
	}
	defer f.Close()

	diskHash := blake3.New()
	tee := io.TeeReader(f, diskHash)

	if srcHash != nil {
		decoded, release, err := codec.NewReader(tee)
		if err != nil {
			return fmt.Errorf("decode chunk %s: %w", path, err)
		}
		defer release()
		if _, err := io.Copy(srcHash, decoded); err != nil {
			return fmt.Errorf("decode chunk %s: %w", path, err)
		}
	} else {
		if _, err := io.Copy(io.Discard, tee); err != nil {
			return fmt.Errorf("read chunk %s: %w", path, err)
		}
	}

	if rec.Checksum != "" {
		if sum := hex.EncodeToString(diskHash.Sum(nil)); sum != rec.Checksum {
			return fmt.Errorf("%w: %s", ErrChecksumMismatch, path)
		}
	}
	return nil
}

// resolveChunk prefers the recorded path and falls back to the manifest's
// directory, so a chunk set moved as a whole still verifies.
func resolveChunk(manifestDir, recorded string) string {
	if _, err := os.Stat(recorded); err == nil {
		return recorded
	}
	return filepath.Join(manifestDir, filepath.Base(recorded))
}
