// pkg/split/options.go
package split

// Options configures a split run
type Options struct {
	// Input file to split (required)
	InputPath string

	// Output directory for the chunk files (required)
	// Created if absent; must be writable
	OutputDir string

	// ChunkBytes is the size-based policy target in bytes
	// Mutually exclusive with Parts; minimum MinChunkBytes
	ChunkBytes int64

	// Parts is the count-based policy target
	// Mutually exclusive with ChunkBytes; minimum 1
	Parts int

	// Codec optionally compresses every chunk on the way out
	// Byte-oriented sources only; "" (none), "zstd" or "xz"
	// Default: none
	Codec Codec

	// WriteManifest writes a JSON manifest next to the chunks
	// (source hash, per-chunk checksums); consumed by the verify command
	// Default: false
	WriteManifest bool

	// Verbose enables detailed logging
	Verbose bool

	// Quiet suppresses all output except errors (overrides Verbose)
	Quiet bool
}

// DefaultOptions returns options with sensible defaults
func DefaultOptions() *Options {
	return &Options{
		Codec: CodecNone,
	}
}

// Validate checks if options are valid. Every failure here is a
// configuration error and surfaces before any I/O is attempted.
func (o *Options) Validate() error {
	if o.InputPath == "" {
		return ErrInputRequired
	}
	if o.OutputDir == "" {
		return ErrOutputRequired
	}

	// Exactly one policy must be set
	if o.ChunkBytes == 0 && o.Parts == 0 {
		return ErrPolicyRequired
	}
	if o.ChunkBytes != 0 && o.Parts != 0 {
		return ErrPolicyConflict
	}

	if o.ChunkBytes != 0 {
		if _, err := BySize(o.ChunkBytes); err != nil {
			return err
		}
	}
	if o.Parts != 0 {
		if _, err := ByParts(o.Parts); err != nil {
			return err
		}
	}

	switch o.Codec {
	case CodecNone, CodecZstd, CodecXz:
		// valid
	default:
		return ErrUnknownCodec
	}

	if o.Quiet {
		o.Verbose = false
	}
	return nil
}

// policy builds the validated Policy for this run.
func (o *Options) policy() (Policy, error) {
	if o.Parts != 0 {
		return ByParts(o.Parts)
	}
	return BySize(o.ChunkBytes)
}
