// pkg/split/split_test.go
package split

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// testSource writes n patterned bytes to a file and returns path and content.
func testSource(t *testing.T, name string, n int) (string, []byte) {
	t.Helper()
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i*31 + 7)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path, data
}

func concatChunks(t *testing.T, records []ChunkRecord) []byte {
	t.Helper()
	var buf bytes.Buffer
	for _, rec := range records {
		data, err := os.ReadFile(rec.Path)
		if err != nil {
			t.Fatalf("read chunk %s: %v", rec.Path, err)
		}
		buf.Write(data)
	}
	return buf.Bytes()
}

func TestSplitBySizeRoundTrip(t *testing.T) {
	src, data := testSource(t, "data.bin", 2500)

	opts := DefaultOptions()
	opts.InputPath = src
	opts.OutputDir = t.TempDir()
	opts.ChunkBytes = 1024

	var events []ProgressEvent
	result, err := Split(opts, func(ev ProgressEvent) { events = append(events, ev) })
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	if result.ChunkCount() != 3 {
		t.Fatalf("expected 3 chunks, got %d", result.ChunkCount())
	}
	wantSizes := []int64{1024, 1024, 452}
	for i, rec := range result.Chunks {
		if rec.Index != i+1 {
			t.Errorf("chunk %d has index %d", i, rec.Index)
		}
		if rec.TotalDeclared != 3 {
			t.Errorf("chunk %d declares total %d", i, rec.TotalDeclared)
		}
		if rec.ByteSize != wantSizes[i] {
			t.Errorf("chunk %d size = %d, want %d", i, rec.ByteSize, wantSizes[i])
		}
		if rec.Checksum == "" {
			t.Errorf("chunk %d has no checksum", i)
		}
	}

	// Concatenating all chunks in order reproduces the source exactly
	if !bytes.Equal(concatChunks(t, result.Chunks), data) {
		t.Error("concatenated chunks do not reproduce the source")
	}
	if result.SourceHash == "" {
		t.Error("binary split should record a source hash")
	}

	// One event per chunk, cumulative and ordered
	if len(events) != 3 {
		t.Fatalf("expected 3 progress events, got %d", len(events))
	}
	wantDone := []int64{1024, 2048, 2500}
	for i, ev := range events {
		if ev.UnitsDone != wantDone[i] || ev.UnitsTotal != 2500 {
			t.Errorf("event %d = %d/%d, want %d/2500", i, ev.UnitsDone, ev.UnitsTotal, wantDone[i])
		}
	}
	if events[0].Label != "Chunk 1/3" {
		t.Errorf("unexpected label %q", events[0].Label)
	}
}

func TestSplitByPartsRoundTrip(t *testing.T) {
	src, data := testSource(t, "data.bin", 10)

	opts := DefaultOptions()
	opts.InputPath = src
	opts.OutputDir = t.TempDir()
	opts.Parts = 3

	result, err := Split(opts, nil)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	if result.ChunkCount() != 3 {
		t.Fatalf("expected 3 chunks, got %d", result.ChunkCount())
	}
	// Ceiling extent: 4, 4, then the 2-byte remainder
	wantSizes := []int64{4, 4, 2}
	for i, rec := range result.Chunks {
		if rec.ByteSize != wantSizes[i] {
			t.Errorf("chunk %d size = %d, want %d", i, rec.ByteSize, wantSizes[i])
		}
	}
	if !bytes.Equal(concatChunks(t, result.Chunks), data) {
		t.Error("concatenated chunks do not reproduce the source")
	}

	// Names are pairwise distinct
	seen := map[string]bool{}
	for _, rec := range result.Chunks {
		if seen[rec.Path] {
			t.Errorf("duplicate chunk path %s", rec.Path)
		}
		seen[rec.Path] = true
	}
}

func TestSplitByPartsMoreThanExtentFills(t *testing.T) {
	// 10 bytes over 7 parts: the 2-byte ceiling extent is exhausted after
	// chunk 5, so the trailing parts come out empty instead of failing.
	src, data := testSource(t, "data.bin", 10)

	opts := DefaultOptions()
	opts.InputPath = src
	opts.OutputDir = t.TempDir()
	opts.Parts = 7

	result, err := Split(opts, nil)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	if result.ChunkCount() != 7 {
		t.Fatalf("expected 7 chunks, got %d", result.ChunkCount())
	}
	wantSizes := []int64{2, 2, 2, 2, 2, 0, 0}
	for i, rec := range result.Chunks {
		if rec.ByteSize != wantSizes[i] {
			t.Errorf("chunk %d size = %d, want %d", i, rec.ByteSize, wantSizes[i])
		}
		if _, err := os.Stat(rec.Path); err != nil {
			t.Errorf("chunk %d file should exist even when empty: %v", i, err)
		}
	}
	if !bytes.Equal(concatChunks(t, result.Chunks), data) {
		t.Error("concatenated chunks do not reproduce the source")
	}
}

func TestSplitEmptySource(t *testing.T) {
	t.Run("by size yields one empty chunk", func(t *testing.T) {
		src, _ := testSource(t, "empty.bin", 0)
		opts := DefaultOptions()
		opts.InputPath = src
		opts.OutputDir = t.TempDir()
		opts.ChunkBytes = 1024

		result, err := Split(opts, nil)
		if err != nil {
			t.Fatalf("Split failed: %v", err)
		}
		if result.ChunkCount() != 1 || result.Chunks[0].ByteSize != 0 {
			t.Fatalf("expected a single empty chunk, got %+v", result.Chunks)
		}
		if _, err := os.Stat(result.Chunks[0].Path); err != nil {
			t.Errorf("empty chunk file should exist: %v", err)
		}
	})

	t.Run("by parts yields n empty chunks", func(t *testing.T) {
		src, _ := testSource(t, "empty.bin", 0)
		opts := DefaultOptions()
		opts.InputPath = src
		opts.OutputDir = t.TempDir()
		opts.Parts = 3

		result, err := Split(opts, nil)
		if err != nil {
			t.Fatalf("Split failed: %v", err)
		}
		if result.ChunkCount() != 3 {
			t.Fatalf("expected 3 chunks, got %d", result.ChunkCount())
		}
		for _, rec := range result.Chunks {
			if rec.ByteSize != 0 {
				t.Errorf("chunk %d should be empty, has %d bytes", rec.Index, rec.ByteSize)
			}
		}
	})
}

func TestSplitValidationErrors(t *testing.T) {
	src, _ := testSource(t, "data.bin", 100)
	out := t.TempDir()

	cases := []struct {
		name string
		opts *Options
		want error
	}{
		{"no input", &Options{OutputDir: out, Parts: 2}, ErrInputRequired},
		{"no output", &Options{InputPath: src, Parts: 2}, ErrOutputRequired},
		{"no policy", &Options{InputPath: src, OutputDir: out}, ErrPolicyRequired},
		{"both policies", &Options{InputPath: src, OutputDir: out, Parts: 2, ChunkBytes: 2048}, ErrPolicyConflict},
		{"size too small", &Options{InputPath: src, OutputDir: out, ChunkBytes: 500}, ErrChunkSizeTooSmall},
		{"negative parts", &Options{InputPath: src, OutputDir: out, Parts: -1}, ErrPartCountInvalid},
		{"bad codec", &Options{InputPath: src, OutputDir: out, Parts: 2, Codec: Codec("lz4")}, ErrUnknownCodec},
	}
	for _, c := range cases {
		if _, err := Split(c.opts, nil); !errors.Is(err, c.want) {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, err)
		}
	}

	// No file may be created by a rejected configuration
	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("rejected configurations wrote %d files", len(entries))
	}
}

func TestSplitMissingSource(t *testing.T) {
	opts := DefaultOptions()
	opts.InputPath = filepath.Join(t.TempDir(), "nope.bin")
	opts.OutputDir = t.TempDir()
	opts.Parts = 2

	if _, err := Split(opts, nil); !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("expected ErrSourceNotFound, got %v", err)
	}

	// A directory is not a splittable source either
	opts.InputPath = t.TempDir()
	if _, err := Split(opts, nil); !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("directory source: expected ErrSourceNotFound, got %v", err)
	}
}

func TestSplitPagedRejectsCodec(t *testing.T) {
	// Classification is by extension only, so a placeholder .pdf is enough;
	// the codec check fires before any decode.
	src, _ := testSource(t, "doc.pdf", 64)
	opts := DefaultOptions()
	opts.InputPath = src
	opts.OutputDir = t.TempDir()
	opts.Parts = 2
	opts.Codec = CodecZstd

	if _, err := Split(opts, nil); !errors.Is(err, ErrCodecPaged) {
		t.Errorf("expected ErrCodecPaged, got %v", err)
	}
}

func TestSplitWritesManifest(t *testing.T) {
	src, _ := testSource(t, "data.bin", 4000)
	opts := DefaultOptions()
	opts.InputPath = src
	opts.OutputDir = t.TempDir()
	opts.ChunkBytes = 1500
	opts.WriteManifest = true

	result, err := Split(opts, nil)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if result.ManifestPath == "" {
		t.Fatal("manifest path not set")
	}

	m, err := LoadManifest(result.ManifestPath)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if m.SourceSize != 4000 || m.Strategy != "binary" || m.SourceHash != result.SourceHash {
		t.Errorf("manifest metadata mismatch: %+v", m)
	}
	if len(m.Chunks) != result.ChunkCount() {
		t.Errorf("manifest lists %d chunks, result has %d", len(m.Chunks), result.ChunkCount())
	}
}

func TestSplitCodecRoundTrip(t *testing.T) {
	decode := map[Codec]func(io.Reader) (io.Reader, error){
		CodecZstd: func(r io.Reader) (io.Reader, error) {
			dec, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			return dec, nil
		},
		CodecXz: func(r io.Reader) (io.Reader, error) { return xz.NewReader(r) },
	}

	for codec, open := range decode {
		t.Run(string(codec), func(t *testing.T) {
			src, data := testSource(t, "data.bin", 5000)
			opts := DefaultOptions()
			opts.InputPath = src
			opts.OutputDir = t.TempDir()
			opts.ChunkBytes = 2048
			opts.Codec = codec

			result, err := Split(opts, nil)
			if err != nil {
				t.Fatalf("Split failed: %v", err)
			}
			if result.ChunkCount() != 3 {
				t.Fatalf("expected 3 chunks, got %d", result.ChunkCount())
			}

			var restored bytes.Buffer
			for _, rec := range result.Chunks {
				if filepath.Ext(rec.Path) != codec.Ext() {
					t.Errorf("chunk %s missing %s suffix", rec.Path, codec.Ext())
				}
				f, err := os.Open(rec.Path)
				if err != nil {
					t.Fatalf("open chunk: %v", err)
				}
				r, err := open(f)
				if err != nil {
					f.Close()
					t.Fatalf("open decoder: %v", err)
				}
				if _, err := io.Copy(&restored, r); err != nil {
					f.Close()
					t.Fatalf("decompress chunk: %v", err)
				}
				f.Close()
			}
			if !bytes.Equal(restored.Bytes(), data) {
				t.Error("decompressed chunks do not reproduce the source")
			}
		})
	}
}

func TestStartDeliversOrderedProgress(t *testing.T) {
	src, _ := testSource(t, "data.bin", 10240)
	opts := DefaultOptions()
	opts.InputPath = src
	opts.OutputDir = t.TempDir()
	opts.ChunkBytes = 1024

	run, err := Start(opts)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	var last int64 = -1
	count := 0
	for ev := range run.Progress {
		if ev.UnitsDone < last {
			t.Errorf("progress went backwards: %d after %d", ev.UnitsDone, last)
		}
		last = ev.UnitsDone
		count++
	}

	result, err := run.Wait()
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if count != result.ChunkCount() {
		t.Errorf("got %d events for %d chunks", count, result.ChunkCount())
	}
	if last != 10240 {
		t.Errorf("final progress %d, expected 10240", last)
	}
}
