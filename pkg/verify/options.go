// pkg/verify/options.go
package verify

// Options configures the verify operation
type Options struct {
	// ManifestPath is the manifest file written by a split run (required)
	ManifestPath string

	// Deep re-hashes every chunk and, for byte-oriented splits, replays the
	// chunk sequence through one hasher to re-check the round-trip against
	// the recorded source hash.
	// When false, only existence and sizes are checked (faster)
	// Default: false
	Deep bool

	// Verbose enables detailed logging during verification
	Verbose bool

	// Quiet suppresses all output except errors
	Quiet bool
}

// Validate checks if options are valid
func (o *Options) Validate() error {
	if o.ManifestPath == "" {
		return ErrInputRequired
	}
	if o.Quiet {
		o.Verbose = false
	}
	return nil
}
