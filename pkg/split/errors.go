// pkg/split/errors.go
package split

import "errors"

var (
	// ErrInputRequired is returned when the source path is not specified
	ErrInputRequired = errors.New("input path is required")

	// ErrOutputRequired is returned when the output directory is not specified
	ErrOutputRequired = errors.New("output directory is required")

	// ErrPolicyRequired is returned when neither a chunk size nor a part count is given
	ErrPolicyRequired = errors.New("either a chunk size or a number of parts is required")

	// ErrPolicyConflict is returned when both a chunk size and a part count are given
	ErrPolicyConflict = errors.New("chunk size and number of parts are mutually exclusive")

	// ErrChunkSizeTooSmall is returned when the chunk size is below the 1 KiB minimum
	ErrChunkSizeTooSmall = errors.New("chunk size must be at least 1 KiB")

	// ErrPartCountInvalid is returned when the number of parts is below 1
	ErrPartCountInvalid = errors.New("number of parts must be at least 1")

	// ErrUnknownUnit is returned when a size unit is not one of MB, GB, Mb, Gb
	ErrUnknownUnit = errors.New("unknown size unit")

	// ErrUnknownCodec is returned when the chunk codec is not one of zstd or xz
	ErrUnknownCodec = errors.New("unknown chunk codec")

	// ErrCodecPaged is returned when chunk compression is requested for a
	// page-structured source; compressed chunks would no longer be standalone documents
	ErrCodecPaged = errors.New("chunk compression applies to byte-oriented sources only")

	// ErrSourceNotFound is returned when the source path is not an existing regular file
	ErrSourceNotFound = errors.New("source file not found")

	// ErrOutputNotWritable is returned when the output directory cannot be created or written to
	ErrOutputNotWritable = errors.New("output directory is not writable")

	// ErrDecode is returned when a page-structured source cannot be parsed
	ErrDecode = errors.New("source document cannot be decoded")
)
