// pkg/split/codec.go
package split

import (
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Codec is an optional per-chunk compression codec for the binary strategy.
type Codec string

const (
	CodecNone Codec = ""
	CodecZstd Codec = "zstd"
	CodecXz   Codec = "xz"
)

// ParseCodec resolves a codec name ("" and "none" both mean no compression).
func ParseCodec(s string) (Codec, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CodecNone, nil
	case "zstd":
		return CodecZstd, nil
	case "xz":
		return CodecXz, nil
	}
	return CodecNone, ErrUnknownCodec
}

// Ext returns the file name suffix appended to chunk names for this codec.
func (c Codec) Ext() string {
	switch c {
	case CodecZstd:
		return ".zst"
	case CodecXz:
		return ".xz"
	}
	return ""
}

// NewWriter wraps w with this codec's compressor. Returns nil for CodecNone;
// callers must Close the returned writer to flush before closing w.
func (c Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	switch c {
	case CodecZstd:
		return zstd.NewWriter(w)
	case CodecXz:
		return xz.NewWriter(w)
	}
	return nil, nil
}

// NewReader wraps r with this codec's decompressor. The returned close
// function releases decoder resources and is always safe to call.
func (c Codec) NewReader(r io.Reader) (io.Reader, func(), error) {
	switch c {
	case CodecZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, func() {}, err
		}
		return dec, dec.Close, nil
	case CodecXz:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, func() {}, err
		}
		return xr, func() {}, nil
	}
	return r, func() {}, nil
}
