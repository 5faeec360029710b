// pkg/split/strategy.go
package split

import (
	"path/filepath"
	"strings"
)

// Class is a source content classification derived from the file extension.
// Text sources split exactly like binary ones; the distinction is kept for
// display and the manifest only.
type Class int

const (
	ClassBinary Class = iota
	ClassText
	ClassPaged
)

var (
	pagedExts = map[string]bool{
		".pdf": true,
	}
	textExts = map[string]bool{
		".txt": true, ".log": true, ".csv": true, ".json": true, ".md": true,
	}
)

// Classify maps a path to a content class by extension only, no content
// sniffing. Total: every extension, including none, resolves to a class.
func Classify(path string) Class {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case pagedExts[ext]:
		return ClassPaged
	case textExts[ext]:
		return ClassText
	default:
		return ClassBinary
	}
}

func (c Class) String() string {
	switch c {
	case ClassText:
		return "text"
	case ClassPaged:
		return "paged"
	default:
		return "binary"
	}
}

// splitter is the closed strategy set: byte-range slicing or page grouping.
type splitter interface {
	// split writes the chunk files and returns the ordered records plus the
	// blake3 hex of the source bytes ("" when not computed).
	split(src *SourceDescriptor, outDir string, pol Policy, codec Codec, emit func(ProgressEvent)) ([]ChunkRecord, string, error)
}

func splitterFor(c Class) splitter {
	if c == ClassPaged {
		return pagedSplitter{}
	}
	return binarySplitter{}
}
