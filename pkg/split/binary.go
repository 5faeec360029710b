// pkg/split/binary.go
package split

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/Juniorduc44/chunks/pkg/chunks"
)

// binarySplitter streams the source once, sequentially, cutting it into
// exact byte ranges per the plan. Every non-final chunk reads exactly
// UnitsPerChunk bytes; the final chunk reads the exact remainder and never
// past end-of-file. Empty chunks are still created to preserve index
// continuity.
type binarySplitter struct{}

func (binarySplitter) split(src *SourceDescriptor, outDir string, pol Policy, codec Codec, emit func(ProgressEvent)) ([]ChunkRecord, string, error) {
	in, err := os.Open(src.Path)
	if err != nil {
		return nil, "", fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	plan := pol.Plan(src.Size)
	srcHash := blake3.New()
	records := make([]ChunkRecord, 0, plan.ChunkCount)

	var consumed int64
	for i := 1; i <= plan.ChunkCount; i++ {
		// Never request past end-of-file: the tail chunk takes the exact
		// remainder, and a part count larger than the extent fills leaves
		// trailing chunks empty rather than failing.
		want := plan.UnitsPerChunk
		if remaining := src.Size - consumed; want > remaining {
			want = remaining
		}

		name := ChunkName(src.Path, i, plan.ChunkCount) + codec.Ext()
		path := filepath.Join(outDir, name)

		written, sum, err := writeChunk(in, path, want, codec, srcHash)
		if err != nil {
			// Fail fast; chunks already written are left on disk.
			return nil, "", err
		}
		consumed += want

		records = append(records, ChunkRecord{
			Index:         i,
			TotalDeclared: plan.ChunkCount,
			Path:          path,
			ByteSize:      written,
			Checksum:      sum,
		})
		emit(ProgressEvent{
			UnitsDone:  consumed,
			UnitsTotal: src.Size,
			Label:      fmt.Sprintf("Chunk %d/%d", i, plan.ChunkCount),
		})
	}

	return records, hex.EncodeToString(srcHash.Sum(nil)), nil
}

// writeChunk copies exactly want bytes from in into a new file at path,
// optionally through a codec, and returns the on-disk size and the blake3
// hex of the on-disk bytes. The source bytes are also fed to srcHash.
func writeChunk(in io.Reader, path string, want int64, codec Codec, srcHash io.Writer) (int64, string, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, "", fmt.Errorf("create chunk %s: %w", path, err)
	}

	diskHash := blake3.New()
	counter := &chunks.CountingWriter{Writer: io.MultiWriter(f, diskHash)}

	var dst io.Writer = counter
	enc, err := codec.NewWriter(counter)
	if err != nil {
		f.Close()
		return 0, "", fmt.Errorf("init %s codec: %w", codec, err)
	}
	if enc != nil {
		dst = enc
	}

	if want > 0 {
		n, err := io.Copy(dst, io.TeeReader(io.LimitReader(in, want), srcHash))
		if err != nil {
			f.Close()
			return 0, "", fmt.Errorf("write chunk %s: %w", path, err)
		}
		if n != want {
			f.Close()
			return 0, "", fmt.Errorf("write chunk %s: %w", path, io.ErrUnexpectedEOF)
		}
	}

	if enc != nil {
		if err := enc.Close(); err != nil {
			f.Close()
			return 0, "", fmt.Errorf("flush chunk %s: %w", path, err)
		}
	}
	if err := f.Close(); err != nil {
		return 0, "", fmt.Errorf("close chunk %s: %w", path, err)
	}

	return counter.Count, hex.EncodeToString(diskHash.Sum(nil)), nil
}
