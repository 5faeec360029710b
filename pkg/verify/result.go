// pkg/verify/result.go
package verify

// Result contains verification results for one chunk set
type Result struct {
	// ManifestPath is the manifest that was checked
	ManifestPath string

	// ChunksTotal is the number of chunks recorded in the manifest
	ChunksTotal int

	// ChunksVerified is the number of chunks that passed every check
	ChunksVerified int

	// BytesVerified is the total on-disk size of the chunks that passed
	BytesVerified int64

	// SourceHashChecked reports whether the round-trip hash was replayed
	// (deep mode, byte-oriented split with a recorded source hash)
	SourceHashChecked bool

	// Errors lists every check failure; empty on success
	Errors []error
}

// Success returns true if every chunk passed every check
func (r *Result) Success() bool {
	return len(r.Errors) == 0 && r.ChunksVerified == r.ChunksTotal
}
