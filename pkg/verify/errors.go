// pkg/verify/errors.go
package verify

import "errors"

var (
	// ErrInputRequired is returned when the manifest path is not specified
	ErrInputRequired = errors.New("manifest path is required")

	// ErrManifestInvalid is returned when the manifest cannot be read or parsed
	ErrManifestInvalid = errors.New("invalid manifest")

	// ErrChunkMissing is returned when a recorded chunk file does not exist
	ErrChunkMissing = errors.New("chunk file missing")

	// ErrSizeMismatch is returned when a chunk file size differs from the record
	ErrSizeMismatch = errors.New("chunk size mismatch")

	// ErrChecksumMismatch is returned when a chunk's content hash differs from the record
	ErrChecksumMismatch = errors.New("chunk checksum mismatch")

	// ErrSourceHashMismatch is returned when the replayed chunk sequence does
	// not hash back to the recorded source hash
	ErrSourceHashMismatch = errors.New("reassembled data does not match source hash")
)
