// pkg/split/result.go
package split

// SourceDescriptor describes the resolved source at split start.
// Read-only for the duration of a run.
type SourceDescriptor struct {
	// Absolute path to the source file
	Path string `json:"path"`

	// Size in bytes
	Size int64 `json:"size"`

	// Content classification derived from the extension
	Class Class `json:"-"`
}

// ChunkRecord describes one produced chunk file. Records are created the
// moment a chunk is fully written and closed, in strictly increasing index
// order, and are never mutated afterwards.
type ChunkRecord struct {
	// Index is 1-based
	Index int `json:"index"`

	// TotalDeclared is the denominator used in the file name;
	// 0 when the total was unknown at naming time (rendered as "??")
	TotalDeclared int `json:"total_declared"`

	// Path of the written chunk file
	Path string `json:"path"`

	// ByteSize of the chunk file on disk
	ByteSize int64 `json:"byte_size"`

	// Checksum is the blake3 hex of the chunk file on disk
	Checksum string `json:"checksum,omitempty"`
}

// Result is the manifest of a completed split run
type Result struct {
	// Source as resolved at split start
	Source SourceDescriptor

	// Strategy that ran: "binary", "text" or "paged"
	Strategy string

	// Codec applied to the chunks (binary strategy only)
	Codec Codec

	// Chunks in index order
	Chunks []ChunkRecord

	// SourceHash is the blake3 hex of the source bytes, computed during the
	// binary streaming pass; "" for paged sources
	SourceHash string

	// ManifestPath is the written manifest file, "" unless requested
	ManifestPath string
}

// ChunkCount returns the number of chunks produced
func (r *Result) ChunkCount() int {
	return len(r.Chunks)
}

// BytesWritten returns the total size of all chunk files on disk
func (r *Result) BytesWritten() int64 {
	var n int64
	for _, c := range r.Chunks {
		n += c.ByteSize
	}
	return n
}
