// pkg/split/plan.go
package split

// MinChunkBytes is the smallest accepted size-based chunk target.
const MinChunkBytes = 1024

// Policy is the user-chosen chunk sizing rule: either a target byte size per
// chunk or a fixed number of parts. A Policy is only obtainable through
// BySize or ByParts, so a Policy value in circulation is always well-formed.
type Policy struct {
	chunkBytes int64
	parts      int
}

// BySize creates a size-based policy targeting the given number of bytes per chunk.
func BySize(bytes int64) (Policy, error) {
	if bytes < MinChunkBytes {
		return Policy{}, ErrChunkSizeTooSmall
	}
	return Policy{chunkBytes: bytes}, nil
}

// ByParts creates a count-based policy producing exactly n parts.
func ByParts(n int) (Policy, error) {
	if n < 1 {
		return Policy{}, ErrPartCountInvalid
	}
	return Policy{parts: n}, nil
}

// SizeBased reports whether the policy targets a byte size rather than a part count.
func (p Policy) SizeBased() bool {
	return p.parts == 0
}

// Parts returns the requested part count, or 0 for a size-based policy.
func (p Policy) Parts() int {
	return p.parts
}

// ChunkBytes returns the requested bytes per chunk, or 0 for a count-based policy.
func (p Policy) ChunkBytes() int64 {
	return p.chunkBytes
}

// Plan is the derived split arithmetic over a total number of addressable
// units (bytes or pages). ChunkCount is always at least 1; UnitsPerChunk is 0
// only for an empty count-based source, where the parts are written empty.
type Plan struct {
	UnitCount     int64
	ChunkCount    int
	UnitsPerChunk int64
}

// Plan computes the chunk count and per-chunk extent for the given total.
// Pure arithmetic, no side effects.
func (p Policy) Plan(total int64) Plan {
	if p.parts > 0 {
		count := p.parts
		return Plan{
			UnitCount:     total,
			ChunkCount:    count,
			UnitsPerChunk: ceilDiv(total, int64(count)),
		}
	}
	per := p.chunkBytes
	if per < 1 {
		// Unreachable through the constructors; keep the arithmetic total anyway.
		return Plan{UnitCount: total, ChunkCount: 1, UnitsPerChunk: total}
	}
	count := ceilDiv(total, per)
	if count < 1 {
		count = 1
	}
	return Plan{
		UnitCount:     total,
		ChunkCount:    int(count),
		UnitsPerChunk: per,
	}
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}
