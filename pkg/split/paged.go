// pkg/split/paged.go
package split

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/zeebo/blake3"
)

// pagedSplitter groups whole pages of a PDF into contiguous runs, each
// re-encoded as a standalone document. Page order is preserved; the final
// run takes whatever pages remain.
type pagedSplitter struct{}

func (pagedSplitter) split(src *SourceDescriptor, outDir string, pol Policy, _ Codec, emit func(ProgressEvent)) ([]ChunkRecord, string, error) {
	pageCount, err := api.PageCountFile(src.Path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", ErrDecode, src.Path, err)
	}
	// A document with no pages yields no chunks at all; there is no content
	// to put in a minimum chunk.
	if pageCount == 0 {
		return nil, "", nil
	}

	per := pagesPerChunk(pageCount, pol)

	// Under a size-based policy the chunk total is not predetermined; names
	// carry the "??" placeholder instead of a denominator.
	totalDeclared := 0
	if !pol.SizeBased() {
		totalDeclared = pol.Parts()
	}

	runs := pageRuns(pageCount, per)
	records := make([]ChunkRecord, 0, len(runs))
	for i, run := range runs {
		index := i + 1
		start, end := run[0], run[1]

		path := filepath.Join(outDir, ChunkName(src.Path, index, totalDeclared))
		selection := []string{fmt.Sprintf("%d-%d", start, end)}
		if err := api.TrimFile(src.Path, path, selection, nil); err != nil {
			return nil, "", fmt.Errorf("write pages %d-%d to %s: %w", start, end, path, err)
		}

		size, sum, err := statAndHash(path)
		if err != nil {
			return nil, "", err
		}
		records = append(records, ChunkRecord{
			Index:         index,
			TotalDeclared: totalDeclared,
			Path:          path,
			ByteSize:      size,
			Checksum:      sum,
		})
		emit(ProgressEvent{
			UnitsDone:  int64(end),
			UnitsTotal: int64(pageCount),
			Label:      fmt.Sprintf("Pages %d/%d", end, pageCount),
		})
	}

	return records, "", nil
}

// pageRuns partitions pages 1..pageCount into contiguous inclusive [start,
// end] runs of per pages; the final run takes whatever pages remain.
func pageRuns(pageCount, per int) [][2]int {
	var runs [][2]int
	for start := 1; start <= pageCount; start += per {
		end := start + per - 1
		if end > pageCount {
			end = pageCount
		}
		runs = append(runs, [2]int{start, end})
	}
	return runs
}

// pagesPerChunk computes the run length in pages. A byte-size target has no
// direct page-count meaning, so size-based policies fall back to a
// tenth-of-the-document heuristic; this is an approximation kept for
// behavioral parity, not an exact mapping of the byte target.
func pagesPerChunk(totalPages int, pol Policy) int {
	if !pol.SizeBased() {
		n := pol.Parts()
		if n < 1 {
			n = 1
		}
		return int(ceilDiv(int64(totalPages), int64(n)))
	}
	if per := totalPages / 10; per > 1 {
		return per
	}
	return 1
}

// statAndHash returns the size and blake3 hex of a written file.
func statAndHash(path string) (int64, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, "", fmt.Errorf("reopen chunk %s: %w", path, err)
	}
	defer f.Close()

	h := blake3.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return 0, "", fmt.Errorf("hash chunk %s: %w", path, err)
	}
	return n, hex.EncodeToString(h.Sum(nil)), nil
}
